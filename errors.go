package rbf

import "strconv"

// An IndexOutOfRangeError reports a field index beyond a record's field
// count.
type IndexOutOfRangeError struct {
	Record string
	Index  int
	Size   int
}

func (e *IndexOutOfRangeError) Error() string {
	return "rbf: field index " + strconv.Itoa(e.Index) + " out of range in record " +
		e.Record + " (" + strconv.Itoa(e.Size) + " fields)"
}

// An UnknownFieldError reports a field name with no match in a record.
type UnknownFieldError struct {
	Record string
	Field  string
}

func (e *UnknownFieldError) Error() string {
	return "rbf: no field named " + e.Field + " in record " + e.Record
}

// An UnknownRecordTypeError reports a line whose classified record type is
// absent from the layout. It is local to that line: the Reader that returned
// it remains usable for subsequent lines.
type UnknownRecordTypeError struct {
	Name string // record type produced by the classifier
	Line int    // 1-based line number in the input
}

func (e *UnknownRecordTypeError) Error() string {
	return "rbf: line " + strconv.Itoa(e.Line) + ": record type " +
		strconv.Quote(e.Name) + " not in layout"
}

// A ConvertError reports a field value that could not be converted to its
// field type's native representation.
type ConvertError struct {
	Field string
	Value string
	Type  DataType
	Err   error
}

func (e *ConvertError) Error() string {
	s := "rbf: cannot convert " + strconv.Quote(e.Value) + " in field " +
		e.Field + " to " + e.Type.String()
	if e.Err != nil {
		return s + ": " + e.Err.Error()
	}
	return s
}

func (e *ConvertError) Unwrap() error { return e.Err }
