package rbf

import "strings"

// Record is one declared row shape: an ordered, contiguous sequence of
// fixed-width fields. Fields are appended during layout construction; each
// parsed line then overwrites every field's value in place via SetValue.
type Record struct {
	element
	fields []Field
	byName map[string][]int
}

// NewRecord returns an empty record with the given name and description.
func NewRecord(name, description string) *Record {
	return &Record{
		element: element{name: name, description: description},
		byName:  make(map[string][]int),
	}
}

// Append copies f to the end of the record and assigns the copy's position
// metadata: its index is the current field count, its offset the current
// record length, and its bounds [offset, offset+length). The record's length
// grows by the field's length. Duplicate field names are legal; each name
// maps to the indices sharing it, in append order.
func (r *Record) Append(f Field) {
	f.index = len(r.fields)
	f.offset = r.length
	f.lowerBound = f.offset
	f.upperBound = f.offset + f.length
	r.fields = append(r.fields, f)
	r.length += f.length
	r.byName[f.name] = append(r.byName[f.name], f.index)
}

// NumFields returns the number of fields in the record.
func (r *Record) NumFields() int { return len(r.fields) }

// At returns the field at index i. It returns an *IndexOutOfRangeError when
// i is negative or beyond the field count.
func (r *Record) At(i int) (*Field, error) {
	if i < 0 || i >= len(r.fields) {
		return nil, &IndexOutOfRangeError{Record: r.name, Index: i, Size: len(r.fields)}
	}
	return &r.fields[i], nil
}

// Fields returns the record's fields in append order. The pointers alias the
// record's storage, so the slice supports both read-only and mutating
// traversal; the sequence is restartable because the record's structure does
// not change after layout construction.
func (r *Record) Fields() []*Field {
	fields := make([]*Field, len(r.fields))
	for i := range r.fields {
		fields[i] = &r.fields[i]
	}
	return fields
}

// FieldsNamed returns copies of every field named name, in append order. An
// unknown name yields an empty slice, not an error.
func (r *Record) FieldsNamed(name string) []Field {
	indices := r.byName[name]
	fields := make([]Field, 0, len(indices))
	for _, i := range indices {
		fields = append(fields, r.fields[i])
	}
	return fields
}

// Value returns the stripped value of the first (lowest-index) field named
// name. It returns an *UnknownFieldError when no field matches.
func (r *Record) Value(name string) (string, error) {
	indices, ok := r.byName[name]
	if !ok || len(indices) == 0 {
		return "", &UnknownFieldError{Record: r.name, Field: name}
	}
	return r.fields[indices[0]].strippedValue, nil
}

// Contains reports whether at least one field is named name.
func (r *Record) Contains(name string) bool {
	_, ok := r.byName[name]
	return ok
}

// Values returns every field's stripped value, each followed by sep, in
// append order.
func (r *Record) Values(sep byte) string {
	var b strings.Builder
	for i := range r.fields {
		b.WriteString(r.fields[i].strippedValue)
		b.WriteByte(sep)
	}
	return b.String()
}

// RawValue returns the concatenation of every field's raw value in append
// order, with no separator.
func (r *Record) RawValue() string {
	var b strings.Builder
	b.Grow(r.length)
	for i := range r.fields {
		b.WriteString(r.fields[i].rawValue)
	}
	return b.String()
}

// SetValue slices line into the record's fields. Lines shorter than the
// record length are right-padded with spaces first; bytes beyond the record
// length are ignored. Field offsets never change.
func (r *Record) SetValue(line string) {
	if len(line) < r.length {
		line += strings.Repeat(" ", r.length-len(line))
	}
	for i := range r.fields {
		f := &r.fields[i]
		f.SetValue(line[f.lowerBound : f.lowerBound+f.length])
	}
}

// Remove deletes every field named name from the record and from the name
// index. With reindex true the append algorithm is re-run over the remaining
// fields in their original relative order, restoring indices, offsets,
// bounds, total length and the name index. With reindex false the remaining
// fields keep their now-stale position metadata and the record its stale
// total length; the caller owns that inconsistency. Name lookups stay valid
// either way: the name index always tracks the new physical positions.
func (r *Record) Remove(name string, reindex bool) {
	if _, ok := r.byName[name]; !ok {
		return
	}
	kept := make([]Field, 0, len(r.fields))
	for _, f := range r.fields {
		if f.name != name {
			kept = append(kept, f)
		}
	}

	if reindex {
		r.fields = nil
		r.length = 0
		r.byName = make(map[string][]int)
		for _, f := range kept {
			r.Append(f)
		}
		return
	}

	r.fields = kept
	r.byName = make(map[string][]int, len(kept))
	for i := range kept {
		r.byName[kept[i].name] = append(r.byName[kept[i].name], i)
	}
}

// Clone returns a deep copy of the record. The copy's fields and name index
// are independent of the original, so a caller can snapshot a record yielded
// by a Reader before the next advance overwrites it.
func (r *Record) Clone() *Record {
	dup := &Record{
		element: r.element,
		fields:  make([]Field, len(r.fields)),
		byName:  make(map[string][]int, len(r.byName)),
	}
	copy(dup.fields, r.fields)
	for name, indices := range r.byName {
		dup.byName[name] = append([]int(nil), indices...)
	}
	return dup
}
