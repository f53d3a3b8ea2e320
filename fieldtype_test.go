package rbf

import "testing"

func TestParseDataType(t *testing.T) {
	for _, tt := range []struct {
		name        string
		description string
		expected    DataType
		ok          bool
	}{
		{"Decimal", "decimal", Decimal, true},
		{"Integer", "integer", Integer, true},
		{"Date", "date", Date, true},
		{"String", "string", String, true},
		{"Empty is Void", "", Void, true},
		{"Unrecognized", "money", Void, false},
		{"Case sensitive", "Decimal", Void, false},
	} {
		t.Run(tt.name, func(t *testing.T) {
			dt, ok := ParseDataType(tt.description)
			if dt != tt.expected || ok != tt.ok {
				t.Errorf("ParseDataType(%q): have (%v, %v), want (%v, %v)",
					tt.description, dt, ok, tt.expected, tt.ok)
			}
		})
	}
}

func TestNewFieldType(t *testing.T) {
	ft := NewFieldType("A/N", "string")
	if ft.Name() != "A/N" {
		t.Errorf("Name: have %q, want %q", ft.Name(), "A/N")
	}
	if ft.Description() != "string" {
		t.Errorf("Description: have %q, want %q", ft.Description(), "string")
	}
	if ft.DataType() != String {
		t.Errorf("DataType: have %v, want %v", ft.DataType(), String)
	}

	// empty description is the Void type
	void := NewFieldType("X", "")
	if void.DataType() != Void {
		t.Errorf("DataType: have %v, want %v", void.DataType(), Void)
	}

	// unrecognized descriptions never fail, they default to Void
	odd := NewFieldType("X", "money")
	if odd.DataType() != Void {
		t.Errorf("DataType: have %v, want %v", odd.DataType(), Void)
	}
}

func TestFieldTypeEqual(t *testing.T) {
	for _, tt := range []struct {
		name     string
		a, b     FieldType
		expected bool
	}{
		{"Equal", NewFieldType("A/N", "string"), NewFieldType("A/N", "string"), true},
		{"Different name", NewFieldType("A/N", "string"), NewFieldType("A", "string"), false},
		{"Different description", NewFieldType("A/N", "string"), NewFieldType("A/N", "integer"), false},
	} {
		t.Run(tt.name, func(t *testing.T) {
			if have := tt.a.Equal(tt.b); have != tt.expected {
				t.Errorf("Equal: have %v, want %v", have, tt.expected)
			}
		})
	}
}

func TestFieldTypeDateFormat(t *testing.T) {
	ft := NewFieldType("D", "date")
	if ft.DateFormat() != "20060102" {
		t.Errorf("DateFormat: have %q, want %q", ft.DateFormat(), "20060102")
	}
	ft.SetDateFormat("2006-01-02")
	if ft.DateFormat() != "2006-01-02" {
		t.Errorf("DateFormat: have %q, want %q", ft.DateFormat(), "2006-01-02")
	}
}
