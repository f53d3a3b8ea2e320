package rbf

import (
	"encoding/xml"
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// schemaDoc is the neutral shape of a decoded schema document: fieldtype
// declarations followed by record declarations, both in document order.
type schemaDoc struct {
	FieldTypes []fieldTypeDecl
	Records    []recordDecl
}

type fieldTypeDecl struct {
	Name   string
	Type   string
	Format string
}

type recordDecl struct {
	Name        string
	Description string
	Fields      []fieldDecl
}

type fieldDecl struct {
	Name        string
	Description string
	Type        string
	Length      string
}

// xmlSchema mirrors the original layout document format:
//
//	<rbfile>
//	    <fieldtype name="A/N" type="string"/>
//	    <record name="R1" description="...">
//	        <field name="F1" description="..." type="A/N" length="5"/>
//	    </record>
//	</rbfile>
type xmlSchema struct {
	XMLName    xml.Name `xml:"rbfile"`
	FieldTypes []struct {
		Name   string `xml:"name,attr"`
		Type   string `xml:"type,attr"`
		Format string `xml:"format,attr"`
	} `xml:"fieldtype"`
	Records []struct {
		Name        string `xml:"name,attr"`
		Description string `xml:"description,attr"`
		Fields      []struct {
			Name        string `xml:"name,attr"`
			Description string `xml:"description,attr"`
			Type        string `xml:"type,attr"`
			Length      string `xml:"length,attr"`
		} `xml:"field"`
	} `xml:"record"`
}

func decodeXMLSchema(r io.Reader) (*schemaDoc, error) {
	var raw xmlSchema
	if err := xml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, errors.Wrap(err, "rbf: decode xml schema")
	}
	doc := &schemaDoc{}
	for _, ft := range raw.FieldTypes {
		doc.FieldTypes = append(doc.FieldTypes, fieldTypeDecl{
			Name:   ft.Name,
			Type:   ft.Type,
			Format: ft.Format,
		})
	}
	for _, rec := range raw.Records {
		rd := recordDecl{Name: rec.Name, Description: rec.Description}
		for _, f := range rec.Fields {
			rd.Fields = append(rd.Fields, fieldDecl{
				Name:        f.Name,
				Description: f.Description,
				Type:        f.Type,
				Length:      f.Length,
			})
		}
		doc.Records = append(doc.Records, rd)
	}
	return doc, nil
}

// yamlSchema is the YAML flavor of the same document:
//
//	fieldtypes:
//	  - name: A/N
//	    type: string
//	records:
//	  - name: R1
//	    description: ...
//	    fields:
//	      - {name: F1, description: ..., type: A/N, length: 5}
type yamlSchema struct {
	FieldTypes []struct {
		Name   string `yaml:"name"`
		Type   string `yaml:"type"`
		Format string `yaml:"format"`
	} `yaml:"fieldtypes"`
	Records []struct {
		Name        string `yaml:"name"`
		Description string `yaml:"description"`
		Fields      []struct {
			Name        string `yaml:"name"`
			Description string `yaml:"description"`
			Type        string `yaml:"type"`
			Length      string `yaml:"length"`
		} `yaml:"fields"`
	} `yaml:"records"`
}

func decodeYAMLSchema(r io.Reader) (*schemaDoc, error) {
	var raw yamlSchema
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, errors.Wrap(err, "rbf: decode yaml schema")
	}
	doc := &schemaDoc{}
	for _, ft := range raw.FieldTypes {
		doc.FieldTypes = append(doc.FieldTypes, fieldTypeDecl{
			Name:   ft.Name,
			Type:   ft.Type,
			Format: ft.Format,
		})
	}
	for _, rec := range raw.Records {
		rd := recordDecl{Name: rec.Name, Description: rec.Description}
		for _, f := range rec.Fields {
			rd.Fields = append(rd.Fields, fieldDecl{
				Name:        f.Name,
				Description: f.Description,
				Type:        f.Type,
				Length:      f.Length,
			})
		}
		doc.Records = append(doc.Records, rd)
	}
	return doc, nil
}
