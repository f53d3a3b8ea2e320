package writer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rbfkit/rbf"
)

func TestCSVWriter(t *testing.T) {
	var buf strings.Builder
	cw := NewCSV(&buf)

	rec := newTestRecord(t)
	require.NoError(t, cw.Write(rec))
	rec.SetValue("WORLDxyz")
	require.NoError(t, cw.Write(rec))
	require.NoError(t, cw.Close())

	// one header per record type, then one row per record
	expected := "F1;ID\n" +
		"HELLO;abc\n" +
		"WORLD;xyz\n"
	assert.Equal(t, expected, buf.String())
}

func TestCSVWriterNoHeader(t *testing.T) {
	var buf strings.Builder
	cw := NewCSV(&buf)
	cw.SetHeader(false)

	require.NoError(t, cw.Write(newTestRecord(t)))
	require.NoError(t, cw.Close())

	assert.Equal(t, "HELLO;abc\n", buf.String())
}

func TestCSVWriterTwoRecordTypes(t *testing.T) {
	var buf strings.Builder
	cw := NewCSV(&buf)

	an := rbf.NewFieldType("A/N", "string")
	r1 := rbf.NewRecord("R1", "")
	r1.Append(rbf.NewField("A", "", an, 2))
	r1.SetValue("aa")
	r2 := rbf.NewRecord("R2", "")
	r2.Append(rbf.NewField("B", "", an, 2))
	r2.SetValue("bb")

	require.NoError(t, cw.Write(r1))
	require.NoError(t, cw.Write(r2))
	require.NoError(t, cw.Write(r1))
	require.NoError(t, cw.Close())

	expected := "A\naa\nB\nbb\naa\n"
	assert.Equal(t, expected, buf.String())
}

func TestCSVWriterRaw(t *testing.T) {
	var buf strings.Builder
	cw := NewCSV(&buf)
	cw.SetRaw(true)
	cw.SetHeader(false)

	rec := newTestRecord(t)
	rec.SetValue("HI")
	require.NoError(t, cw.Write(rec))
	require.NoError(t, cw.Close())

	// raw values keep their padding, so the csv layer quotes nothing extra
	assert.Equal(t, "HI   ;   \n", buf.String())
}
