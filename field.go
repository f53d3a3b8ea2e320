package rbf

import "strings"

// Field is one fixed-width slot within a record: a declared length, a field
// type, and the current row's raw and stripped values. Position metadata
// (index, offset, bounds) is assigned by the owning Record when the field is
// appended and is never recomputed unless the record is explicitly
// re-indexed.
type Field struct {
	element
	fieldType FieldType

	rawValue      string
	strippedValue string

	index      int
	offset     int
	lowerBound int
	upperBound int
}

// NewField returns a field with the given name, description, type and fixed
// width. It never fails.
func NewField(name, description string, fieldType FieldType, length int) Field {
	return Field{
		element:   element{name: name, description: description, length: length},
		fieldType: fieldType,
	}
}

// SetValue stores s verbatim as the raw value and derives the stripped value
// by trimming ASCII spaces from both ends. Field does not enforce that s is
// exactly the declared width; the owning Record supplies correctly sized
// slices.
func (f *Field) SetValue(s string) {
	f.rawValue = s
	f.strippedValue = strings.Trim(s, " ")
}

// Value returns the stripped value of the current row.
func (f *Field) Value() string { return f.strippedValue }

// RawValue returns the unmodified slice of the current row.
func (f *Field) RawValue() string { return f.rawValue }

// Type returns the field's type.
func (f *Field) Type() FieldType { return f.fieldType }

// Index returns the field's position within its record.
func (f *Field) Index() int { return f.index }

// Offset returns the field's byte offset within its record.
func (f *Field) Offset() int { return f.offset }

// LowerBound returns the first byte position covered by the field.
func (f *Field) LowerBound() int { return f.lowerBound }

// UpperBound returns the byte position one past the field's last byte.
func (f *Field) UpperBound() int { return f.upperBound }

// Equal reports whether both fields have the same name, description, length
// and field type. Current values and position metadata do not participate.
func (f *Field) Equal(other Field) bool {
	return f.element.equal(other.element) && f.fieldType.Equal(other.fieldType)
}
