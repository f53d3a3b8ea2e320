package rbf

import (
	"strconv"
	"strings"
	"time"
)

// Convert returns the field's current value in its type's native
// representation: int64 for INTEGER, float64 for DECIMAL, time.Time for DATE
// (using the field type's date format), and the stripped string for STRING
// and VOID. Numeric fields tolerate the zero padding common in legacy feeds,
// including trailing signs buried behind zeros ("00000-6"). An all-blank
// numeric field converts to zero.
func (f *Field) Convert() (interface{}, error) {
	s := f.strippedValue
	switch f.fieldType.dataType {
	case Integer:
		s = trimNumericPadding(s)
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, &ConvertError{Field: f.name, Value: f.strippedValue, Type: Integer, Err: err}
		}
		return n, nil
	case Decimal:
		s = trimNumericPadding(s)
		x, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, &ConvertError{Field: f.name, Value: f.strippedValue, Type: Decimal, Err: err}
		}
		return x, nil
	case Date:
		t, err := time.Parse(f.fieldType.DateFormat(), s)
		if err != nil {
			return nil, &ConvertError{Field: f.name, Value: f.strippedValue, Type: Date, Err: err}
		}
		return t, nil
	default:
		return s, nil
	}
}

// trimNumericPadding strips leading zeros so values like "00042" and
// "00000-6" parse. A value that was nothing but zeros collapses to "0".
func trimNumericPadding(s string) string {
	trimmed := strings.TrimLeft(s, "0")
	if trimmed == "" {
		return "0"
	}
	switch trimmed[0] {
	case '.', 'e', 'E':
		// keep one zero so ".5" style leftovers still parse
		return "0" + trimmed
	}
	return trimmed
}
