// Package rbf reads and writes record-based files: line-oriented text files
// where every line is a fixed-width record described by a declarative layout.
//
// A Layout compiles a schema document into Record templates. A Reader pairs a
// Layout with a line source and a caller-supplied Classifier and decodes the
// stream one record per line. Records can be re-encoded into raw lines for
// byte-for-byte compatible output.
package rbf

// element is the atom shared by FieldType, Field and Record: a named,
// described, fixed-size schema entity.
type element struct {
	name        string
	description string
	length      int
}

// Name returns the entity's name.
func (e element) Name() string { return e.name }

// Description returns the entity's description.
func (e element) Description() string { return e.description }

// Len returns the entity's length in bytes.
func (e element) Len() int { return e.length }

func (e element) equal(other element) bool {
	return e.name == other.name &&
		e.description == other.description &&
		e.length == other.length
}
