package rbf

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// Format renders v into the field's declared width and stores it as the
// field's current value. Strings are left-aligned and space-padded, integers
// zero-padded, decimals formatted with as much precision as the width
// allows, dates rendered with the field type's date format. Rendered values
// longer than the width are truncated.
func (f *Field) Format(v interface{}) error {
	s, err := formatValue(f.fieldType, f.length, v)
	if err != nil {
		return err
	}
	f.SetValue(fit(s, f.length))
	return nil
}

func formatValue(ft FieldType, width int, v interface{}) (string, error) {
	switch ft.dataType {
	case Integer:
		n, ok := asInt64(v)
		if !ok {
			return "", errors.Errorf("rbf: cannot format %T into integer field", v)
		}
		return fmt.Sprintf("%0*d", width, n), nil
	case Decimal:
		x, ok := asFloat64(v)
		if !ok {
			return "", errors.Errorf("rbf: cannot format %T into decimal field", v)
		}
		return formatDecimal(x, width)
	case Date:
		t, ok := v.(time.Time)
		if !ok {
			return "", errors.Errorf("rbf: cannot format %T into date field", v)
		}
		return t.Format(ft.DateFormat()), nil
	default:
		return fmt.Sprint(v), nil
	}
}

// formatDecimal renders x in fixed-point notation with the precision that
// exactly fills width.
func formatDecimal(x float64, width int) (string, error) {
	var l int
	switch {
	case x > 0:
		l = int(math.Log10(x)) + 2
	case x < 0:
		l = int(math.Log10(math.Abs(x))) + 3
	default:
		l = 2
	}
	if l-1 > width {
		return "", errors.New("rbf: formatted decimal with 0 precision longer than field width")
	}
	p := width - l
	if p < 0 {
		p = 0
	}
	s := strconv.FormatFloat(x, 'f', p, 64)
	// magnitudes below 0.1 render one byte wider than computed; give the
	// overflow back out of the precision rather than truncating a digit
	if over := len(s) - width; over > 0 {
		p -= over
		if p < 0 {
			return "", errors.New("rbf: formatted decimal with 0 precision longer than field width")
		}
		s = strconv.FormatFloat(x, 'f', p, 64)
	}
	return s, nil
}

func asInt64(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return int64(n), true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return int64(n), true
	default:
		return 0, false
	}
}

func asFloat64(v interface{}) (float64, bool) {
	switch x := v.(type) {
	case float32:
		return float64(x), true
	case float64:
		return x, true
	default:
		if n, ok := asInt64(v); ok {
			return float64(n), true
		}
		return 0, false
	}
}

// fit forces s to exactly width bytes: longer values are truncated, shorter
// ones right-padded with spaces.
func fit(s string, width int) string {
	if len(s) > width {
		return s[:width]
	}
	for len(s) < width {
		s += " "
	}
	return s
}

// Encode assembles the record's current field values into one raw line of
// exactly the record's length. Every field occupies its declared byte range;
// positions not covered by any value remain spaces.
func (r *Record) Encode() string {
	line := make([]byte, r.length)
	for i := range line {
		line[i] = ' '
	}
	for i := range r.fields {
		f := &r.fields[i]
		copy(line[f.lowerBound:f.upperBound], fit(f.rawValue, f.length))
	}
	return string(line)
}
