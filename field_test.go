package rbf

import (
	"testing"
	"time"
)

func TestFieldSetValue(t *testing.T) {
	for _, tt := range []struct {
		name             string
		value            string
		expectedStripped string
	}{
		{"Surrounding spaces", " 45 ", "45"},
		{"No spaces", "HELLO", "HELLO"},
		{"All spaces", "     ", ""},
		{"Empty", "", ""},
		{"Inner spaces kept", " a b ", "a b"},
		{"Tabs are not trimmed", "\tx\t", "\tx\t"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			f := NewField("F1", "field one", NewFieldType("A/N", "string"), 5)
			f.SetValue(tt.value)
			if f.RawValue() != tt.value {
				t.Errorf("RawValue: have %q, want %q", f.RawValue(), tt.value)
			}
			if f.Value() != tt.expectedStripped {
				t.Errorf("Value: have %q, want %q", f.Value(), tt.expectedStripped)
			}
		})
	}
}

func TestFieldEqual(t *testing.T) {
	an := NewFieldType("A/N", "string")
	n := NewFieldType("N", "decimal")
	for _, tt := range []struct {
		name     string
		a, b     Field
		expected bool
	}{
		{"Equal", NewField("F1", "d", an, 5), NewField("F1", "d", an, 5), true},
		{"Different length", NewField("F1", "d", an, 5), NewField("F1", "d", an, 6), false},
		{"Different type", NewField("F1", "d", an, 5), NewField("F1", "d", n, 5), false},
		{"Different name", NewField("F1", "d", an, 5), NewField("F2", "d", an, 5), false},
	} {
		t.Run(tt.name, func(t *testing.T) {
			if have := tt.a.Equal(tt.b); have != tt.expected {
				t.Errorf("Equal: have %v, want %v", have, tt.expected)
			}
		})
	}

	// values and position metadata do not participate in equality
	a := NewField("F1", "d", an, 5)
	b := NewField("F1", "d", an, 5)
	a.SetValue("HELLO")
	if !a.Equal(b) {
		t.Error("Equal: values should not participate")
	}
}

func TestFieldConvert(t *testing.T) {
	for _, tt := range []struct {
		name      string
		ftype     FieldType
		value     string
		expected  interface{}
		shouldErr bool
	}{
		{"Integer", NewFieldType("I", "integer"), "00042", int64(42), false},
		{"Integer all zeros", NewFieldType("I", "integer"), "00000", int64(0), false},
		{"Integer blank", NewFieldType("I", "integer"), "     ", int64(0), false},
		{"Integer sign behind zeros", NewFieldType("I", "integer"), "00000-6", int64(-6), false},
		{"Integer garbage", NewFieldType("I", "integer"), "4x", nil, true},
		{"Decimal", NewFieldType("N", "decimal"), "003.14", 3.14, false},
		{"Decimal blank", NewFieldType("N", "decimal"), "   ", float64(0), false},
		{"String", NewFieldType("A/N", "string"), " txt ", "txt", false},
		{"Void", NewFieldType("X", ""), "abc", "abc", false},
		{"Date", NewFieldType("D", "date"), "20240229", time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), false},
		{"Date garbage", NewFieldType("D", "date"), "2024zz29", nil, true},
	} {
		t.Run(tt.name, func(t *testing.T) {
			f := NewField("F", "d", tt.ftype, len(tt.value))
			f.SetValue(tt.value)
			v, err := f.Convert()
			if tt.shouldErr {
				if err == nil {
					t.Fatal("Convert: expected error, have nil")
				}
				if _, ok := err.(*ConvertError); !ok {
					t.Errorf("Convert: error is %T, want *ConvertError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Convert: unexpected error %v", err)
			}
			if tm, ok := tt.expected.(time.Time); ok {
				if !v.(time.Time).Equal(tm) {
					t.Errorf("Convert: have %v, want %v", v, tm)
				}
				return
			}
			if v != tt.expected {
				t.Errorf("Convert: have %#v, want %#v", v, tt.expected)
			}
		})
	}
}

func TestFieldFormat(t *testing.T) {
	for _, tt := range []struct {
		name      string
		ftype     FieldType
		length    int
		value     interface{}
		expected  string
		shouldErr bool
	}{
		{"String left aligned", NewFieldType("A/N", "string"), 8, "HI", "HI      ", false},
		{"String truncated", NewFieldType("A/N", "string"), 3, "HELLO", "HEL", false},
		{"Integer zero padded", NewFieldType("I", "integer"), 5, 42, "00042", false},
		{"Integer negative", NewFieldType("I", "integer"), 5, -6, "-0006", false},
		{"Integer wrong type", NewFieldType("I", "integer"), 5, "42", "", true},
		{"Decimal fills width", NewFieldType("N", "decimal"), 5, 3.14, "3.140", false},
		{"Decimal below point one", NewFieldType("N", "decimal"), 5, 0.05, "0.050", false},
		{"Decimal negative below point one", NewFieldType("N", "decimal"), 6, -0.05, "-0.050", false},
		{"Decimal too wide", NewFieldType("N", "decimal"), 2, 12345.0, "", true},
		{"Date", NewFieldType("D", "date"), 8, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), "20240229", false},
	} {
		t.Run(tt.name, func(t *testing.T) {
			f := NewField("F", "d", tt.ftype, tt.length)
			err := f.Format(tt.value)
			if tt.shouldErr {
				if err == nil {
					t.Fatal("Format: expected error, have nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Format: unexpected error %v", err)
			}
			if f.RawValue() != tt.expected {
				t.Errorf("Format: have %q, want %q", f.RawValue(), tt.expected)
			}
			if len(f.RawValue()) != tt.length {
				t.Errorf("Format: width %d, want %d", len(f.RawValue()), tt.length)
			}
		})
	}
}
