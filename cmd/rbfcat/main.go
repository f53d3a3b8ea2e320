// Command rbfcat reads a record-based file and converts it to a
// human-readable format: an ASCII table, tagged lines, CSV, HTML, a SQLite
// database, or JSON filtered through a jq expression.
//
// Usage:
//
//	rbfcat -l layout.xml -i data.txt [-k 0:4] [-o text|tag|csv|html|sqlite3]
//	       [-f out] [-only R1,R2] [-s n] [-q '.NAME'] [-strict] [-raw] [-punch]
package main

import (
	"database/sql"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/itchyny/gojq"
	_ "modernc.org/sqlite"

	"github.com/rbfkit/rbf"
	"github.com/rbfkit/rbf/writer"
)

var (
	flagLayout  string
	flagInput   string
	flagKey     string
	flagStyle   string
	flagOutput  string
	flagOnly    string
	flagSample  int
	flagQuery   string
	flagStrict  bool
	flagRaw     bool
	flagPunch   bool
	flagVerbose bool
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("rbfcat: ")

	flag.StringVar(&flagLayout, "l", "", "layout file (XML or YAML)")
	flag.StringVar(&flagInput, "i", "", "record-based input file (.gz accepted)")
	flag.StringVar(&flagKey, "k", "0:4", "byte range of the record key, as start:end")
	flag.StringVar(&flagStyle, "o", "text", "output style: text, tag, csv, html, sqlite3")
	flag.StringVar(&flagOutput, "f", "", "output file (default stdout; required for sqlite3)")
	flag.StringVar(&flagOnly, "only", "", "comma-separated record names to keep")
	flag.IntVar(&flagSample, "s", 0, "stop after n records (0 = all)")
	flag.StringVar(&flagQuery, "q", "", "jq expression applied to each record; results as JSON lines")
	flag.BoolVar(&flagStrict, "strict", false, "stop on a record type missing from the layout")
	flag.BoolVar(&flagRaw, "raw", false, "use raw values instead of stripped values")
	flag.BoolVar(&flagPunch, "punch", false, "decode signed-overpunch numeric fields")
	flag.BoolVar(&flagVerbose, "v", false, "report skipped lines and totals")
	flag.Parse()

	if flagLayout == "" || flagInput == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	layout, err := rbf.NewLayout(flagLayout)
	if err != nil {
		return err
	}

	classify, err := rangeClassifier(flagKey)
	if err != nil {
		return err
	}

	reader := rbf.NewFileReader(flagInput, layout, classify)
	defer reader.Close()
	if flagOnly != "" {
		reader.SetRecordFilter(strings.Split(flagOnly, ",")...)
	}

	emit, done, err := newSink()
	if err != nil {
		return err
	}

	var n, skipped int
	for {
		rec, err := reader.Next()
		if err == io.EOF {
			break
		}
		if uerr, ok := err.(*rbf.UnknownRecordTypeError); ok {
			if flagStrict {
				return uerr
			}
			skipped++
			if flagVerbose {
				log.Printf("skipping: %v", uerr)
			}
			continue
		}
		if err != nil {
			return err
		}
		if flagPunch {
			rbf.ApplyOverpunch(rec)
		}
		if err := emit(rec); err != nil {
			return err
		}
		n++
		if flagSample > 0 && n >= flagSample {
			break
		}
	}

	if flagVerbose {
		log.Printf("%d records written, %d lines skipped", n, skipped)
	}
	return done()
}

// newSink builds the record consumer selected by the flags: a jq query
// pipeline or one of the output writers.
func newSink() (emit func(*rbf.Record) error, done func() error, err error) {
	if flagQuery != "" {
		return newQuerySink()
	}

	style, err := writer.ParseStyle(flagStyle)
	if err != nil {
		return nil, nil, err
	}

	if style == writer.SQL {
		if flagOutput == "" {
			return nil, nil, fmt.Errorf("sqlite3 output requires -f")
		}
		db, err := sql.Open("sqlite", flagOutput)
		if err != nil {
			return nil, nil, err
		}
		w := writer.NewSQL(db)
		return w.Write, func() error {
			if err := w.Close(); err != nil {
				db.Close()
				return err
			}
			return db.Close()
		}, nil
	}

	out := io.WriteCloser(os.Stdout)
	closeOut := func() error { return nil }
	if flagOutput != "" {
		f, err := os.Create(flagOutput)
		if err != nil {
			return nil, nil, err
		}
		out = f
		closeOut = f.Close
	}

	w, err := writer.New(style, out)
	if err != nil {
		closeOut()
		return nil, nil, err
	}
	if flagRaw {
		switch tw := w.(type) {
		case *writer.TextWriter:
			tw.SetRaw(true)
		case *writer.CSVWriter:
			tw.SetRaw(true)
		}
	}
	return w.Write, func() error {
		if err := w.Close(); err != nil {
			closeOut()
			return err
		}
		return closeOut()
	}, nil
}

// newQuerySink compiles the jq expression and prints each result as one JSON
// line on stdout.
func newQuerySink() (func(*rbf.Record) error, func() error, error) {
	query, err := gojq.Parse(flagQuery)
	if err != nil {
		return nil, nil, fmt.Errorf("parse query: %w", err)
	}
	code, err := gojq.Compile(query)
	if err != nil {
		return nil, nil, fmt.Errorf("compile query: %w", err)
	}

	enc := json.NewEncoder(os.Stdout)
	emit := func(rec *rbf.Record) error {
		iter := code.Run(recordToJSON(rec))
		for {
			v, ok := iter.Next()
			if !ok {
				return nil
			}
			if err, isErr := v.(error); isErr {
				return fmt.Errorf("query: %w", err)
			}
			if err := enc.Encode(v); err != nil {
				return err
			}
		}
	}
	return emit, func() error { return nil }, nil
}

// recordToJSON converts a record to a jq-compatible object. Numeric fields
// convert to numbers when they parse; duplicate field names collect into
// arrays in append order.
func recordToJSON(rec *rbf.Record) map[string]interface{} {
	m := make(map[string]interface{}, rec.NumFields())
	for _, f := range rec.Fields() {
		var v interface{}
		if flagRaw {
			v = f.RawValue()
		} else {
			v = f.Value()
			switch f.Type().DataType() {
			case rbf.Integer:
				if c, err := f.Convert(); err == nil {
					v = int(c.(int64))
				}
			case rbf.Decimal:
				if c, err := f.Convert(); err == nil {
					v = c.(float64)
				}
			}
		}
		if prev, dup := m[f.Name()]; dup {
			if list, ok := prev.([]interface{}); ok {
				m[f.Name()] = append(list, v)
			} else {
				m[f.Name()] = []interface{}{prev, v}
			}
		} else {
			m[f.Name()] = v
		}
	}
	return m
}

// rangeClassifier builds a classifier that keys each line on the byte range
// start:end, with trailing spaces trimmed so short keys classify cleanly.
func rangeClassifier(spec string) (rbf.Classifier, error) {
	parts := strings.SplitN(spec, ":", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid key range %q, want start:end", spec)
	}
	start, err := strconv.Atoi(parts[0])
	if err != nil {
		return nil, fmt.Errorf("invalid key range %q: %w", spec, err)
	}
	end, err := strconv.Atoi(parts[1])
	if err != nil {
		return nil, fmt.Errorf("invalid key range %q: %w", spec, err)
	}
	if start < 0 || end <= start {
		return nil, fmt.Errorf("invalid key range %q, want 0 <= start < end", spec)
	}
	return func(line string) string {
		if start >= len(line) {
			return ""
		}
		e := end
		if e > len(line) {
			e = len(line)
		}
		return strings.TrimRight(line[start:e], " ")
	}, nil
}
