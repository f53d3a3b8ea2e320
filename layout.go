package rbf

import (
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"
)

// Layout is the compiled schema: every record shape declared by a schema
// document, keyed by record name. A layout is built once and meant to be
// read-only afterward; Record returns a mutable handle because the Reader
// rewrites record values in place, so a single layout must not be shared by
// concurrent readers without external synchronization.
type Layout struct {
	records    map[string]*Record
	order      []string
	fieldTypes map[string]FieldType
}

// NewLayout builds a layout from the schema document at path. Files with a
// .yml or .yaml extension are decoded as YAML; everything else as XML.
func NewLayout(path string) (*Layout, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "rbf: open schema")
	}
	defer f.Close()

	switch filepath.Ext(path) {
	case ".yml", ".yaml":
		return NewLayoutFromYAML(f)
	default:
		return NewLayoutFromXML(f)
	}
}

// NewLayoutFromXML builds a layout from an XML schema document.
func NewLayoutFromXML(r io.Reader) (*Layout, error) {
	doc, err := decodeXMLSchema(r)
	if err != nil {
		return nil, err
	}
	return buildLayout(doc)
}

// NewLayoutFromYAML builds a layout from a YAML schema document.
func NewLayoutFromYAML(r io.Reader) (*Layout, error) {
	doc, err := decodeYAMLSchema(r)
	if err != nil {
		return nil, err
	}
	return buildLayout(doc)
}

// buildLayout resolves the fieldtype table first, then materializes every
// record declaration in document order, so field offsets follow declaration
// order exactly.
func buildLayout(doc *schemaDoc) (*Layout, error) {
	l := &Layout{
		records:    make(map[string]*Record),
		fieldTypes: make(map[string]FieldType),
	}

	for _, decl := range doc.FieldTypes {
		if _, ok := ParseDataType(decl.Type); !ok {
			return nil, errors.Errorf("rbf: fieldtype %q declares unknown data type %q", decl.Name, decl.Type)
		}
		ft := NewFieldType(decl.Name, decl.Type)
		if decl.Format != "" {
			ft.SetDateFormat(decl.Format)
		}
		l.fieldTypes[decl.Name] = ft
	}

	for _, decl := range doc.Records {
		if _, dup := l.records[decl.Name]; dup {
			return nil, errors.Errorf("rbf: record %q declared twice", decl.Name)
		}
		rec := NewRecord(decl.Name, decl.Description)
		for _, fd := range decl.Fields {
			ft, ok := l.fieldTypes[fd.Type]
			if !ok {
				return nil, errors.Errorf("rbf: record %q field %q references undeclared fieldtype %q",
					decl.Name, fd.Name, fd.Type)
			}
			length, err := strconv.Atoi(fd.Length)
			if err != nil || length < 0 {
				return nil, errors.Errorf("rbf: record %q field %q has invalid length %q",
					decl.Name, fd.Name, fd.Length)
			}
			rec.Append(NewField(fd.Name, fd.Description, ft, length))
		}
		l.records[decl.Name] = rec
		l.order = append(l.order, decl.Name)
	}

	return l, nil
}

// Record returns the record template named name. The returned handle is
// mutable: the Reader rewrites its values on every matching input line.
func (l *Layout) Record(name string) (*Record, bool) {
	rec, ok := l.records[name]
	return rec, ok
}

// Contains reports whether the layout declares a record named name.
func (l *Layout) Contains(name string) bool {
	_, ok := l.records[name]
	return ok
}

// Records returns every record template in schema declaration order.
func (l *Layout) Records() []*Record {
	records := make([]*Record, 0, len(l.order))
	for _, name := range l.order {
		records = append(records, l.records[name])
	}
	return records
}

// NumRecords returns the number of record shapes in the layout.
func (l *Layout) NumRecords() int { return len(l.records) }

// FieldType returns the declared fieldtype named name.
func (l *Layout) FieldType(name string) (FieldType, bool) {
	ft, ok := l.fieldTypes[name]
	return ft, ok
}
