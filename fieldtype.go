package rbf

// DataType is the kind of data held by a field.
type DataType int

const (
	Void DataType = iota
	Decimal
	Integer
	Date
	String
)

// String returns the schema spelling of the data type.
func (dt DataType) String() string {
	switch dt {
	case Decimal:
		return "decimal"
	case Integer:
		return "integer"
	case Date:
		return "date"
	case String:
		return "string"
	default:
		return ""
	}
}

// ParseDataType maps a type description to its DataType. The empty string is
// Void. Descriptions outside the recognized set return Void with ok false.
func ParseDataType(description string) (dt DataType, ok bool) {
	switch description {
	case "decimal":
		return Decimal, true
	case "integer":
		return Integer, true
	case "date":
		return Date, true
	case "string":
		return String, true
	case "":
		return Void, true
	default:
		return Void, false
	}
}

// defaultDateFormat is the layout used to convert DATE fields when the schema
// does not declare one. Legacy feeds almost universally carry YYYYMMDD.
const defaultDateFormat = "20060102"

// FieldType describes the kind of data a field holds. The data type is
// derived once, at construction, from the type description.
type FieldType struct {
	element
	dataType   DataType
	dateFormat string
}

// NewFieldType returns a field type named name with the given type
// description. It never fails: descriptions outside the recognized set yield
// the Void data type. Layout construction is stricter, see NewLayout.
func NewFieldType(name, description string) FieldType {
	dt, _ := ParseDataType(description)
	return FieldType{
		element:  element{name: name, description: description},
		dataType: dt,
	}
}

// DataType returns the data type derived from the type description.
func (ft FieldType) DataType() DataType { return ft.dataType }

// DateFormat returns the time layout used to convert DATE fields.
func (ft FieldType) DateFormat() string {
	if ft.dateFormat == "" {
		return defaultDateFormat
	}
	return ft.dateFormat
}

// SetDateFormat overrides the time layout used to convert DATE fields.
func (ft *FieldType) SetDateFormat(layout string) { ft.dateFormat = layout }

// Equal reports whether both field types have the same name, description,
// length and data type.
func (ft FieldType) Equal(other FieldType) bool {
	return ft.element.equal(other.element) && ft.dataType == other.dataType
}
