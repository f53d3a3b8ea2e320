package writer

import (
	"database/sql"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/rbfkit/rbf"
)

// execer is the slice of *sql.DB the writer needs.
type execer interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
}

// SQLWriter inserts records into a database, one table per record type. The
// table is created on the first record of its type, with one column per
// field; duplicate field names get a numeric suffix. The caller owns the
// database handle and the driver choice.
type SQLWriter struct {
	db      execer
	created map[string]bool
}

// NewSQL returns a SQL writer over db.
func NewSQL(db *sql.DB) *SQLWriter {
	return newSQLWriter(db)
}

func newSQLWriter(db execer) *SQLWriter {
	return &SQLWriter{db: db, created: make(map[string]bool)}
}

func (sw *SQLWriter) Write(rec *rbf.Record) error {
	if !sw.created[rec.Name()] {
		if _, err := sw.db.Exec(createTableStmt(rec)); err != nil {
			return errors.Wrapf(err, "writer: create table %s", rec.Name())
		}
		sw.created[rec.Name()] = true
	}

	fields := rec.Fields()
	args := make([]interface{}, len(fields))
	for i, f := range fields {
		args[i] = f.Value()
	}
	if _, err := sw.db.Exec(insertStmt(rec), args...); err != nil {
		return errors.Wrapf(err, "writer: insert into %s", rec.Name())
	}
	return nil
}

func (sw *SQLWriter) Close() error { return nil }

// createTableStmt builds the CREATE TABLE statement for a record type.
func createTableStmt(rec *rbf.Record) string {
	var b strings.Builder
	b.WriteString("CREATE TABLE IF NOT EXISTS ")
	b.WriteString(quoteIdent(rec.Name()))
	b.WriteString(" (")
	for i, name := range columnNames(rec) {
		if i > 0 {
			b.WriteString(", ")
		}
		f, _ := rec.At(i)
		b.WriteString(quoteIdent(name))
		b.WriteByte(' ')
		b.WriteString(columnType(f.Type().DataType()))
	}
	b.WriteString(")")
	return b.String()
}

// insertStmt builds the parameterized INSERT statement for a record type.
func insertStmt(rec *rbf.Record) string {
	var b strings.Builder
	b.WriteString("INSERT INTO ")
	b.WriteString(quoteIdent(rec.Name()))
	b.WriteString(" VALUES (")
	for i := 0; i < rec.NumFields(); i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('?')
	}
	b.WriteString(")")
	return b.String()
}

// columnNames returns one column name per field, deduplicating repeated
// field names with a numeric suffix ("NAME", "NAME_2", "NAME_3", ...).
func columnNames(rec *rbf.Record) []string {
	counts := make(map[string]int)
	names := make([]string, 0, rec.NumFields())
	for _, f := range rec.Fields() {
		counts[f.Name()]++
		if n := counts[f.Name()]; n > 1 {
			names = append(names, f.Name()+"_"+strconv.Itoa(n))
		} else {
			names = append(names, f.Name())
		}
	}
	return names
}

func columnType(dt rbf.DataType) string {
	switch dt {
	case rbf.Integer:
		return "INTEGER"
	case rbf.Decimal:
		return "REAL"
	default:
		return "TEXT"
	}
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
