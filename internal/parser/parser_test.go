package parser

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dump(lines ...string) []byte {
	var b bytes.Buffer
	for _, l := range lines {
		b.WriteString(l)
		b.WriteString(RecordSeparator)
	}
	return b.Bytes()
}

func TestParse_Basic(t *testing.T) {
	data := dump(`0,""""Motor_Start`, `1,""""0A1B`, `2,""""Drehzahl: Soll`)

	records := Parse(data)
	require.Len(t, records, 3)
	assert.Equal(t, Record{Index: 0, Text: "Motor_Start"}, records[0])
	assert.Equal(t, Record{Index: 1, Text: "0A1B"}, records[1])
	assert.Equal(t, Record{Index: 2, Text: "Drehzahl: Soll"}, records[2])
}

func TestParse_SkipsMalformed(t *testing.T) {
	data := dump(`header without fields`, `x,""""not an index`, `4,""""kept`)
	data = append(data, []byte("trailing fragment")...)

	records := Parse(data)
	require.Len(t, records, 1)
	assert.Equal(t, Record{Index: 4, Text: "kept"}, records[0])
}

func TestParse_IndexWhitespaceTrimmed(t *testing.T) {
	records := Parse(dump(" 7 ,\"\"\"\"value"))
	require.Len(t, records, 1)
	assert.Equal(t, 7, records[0].Index)
}

func TestParse_PreservesOrderAndDuplicates(t *testing.T) {
	records := Parse(dump(`5,""""b`, `2,""""a`, `5,""""c`))
	require.Len(t, records, 3)
	assert.Equal(t, []int{5, 2, 5}, []int{records[0].Index, records[1].Index, records[2].Index})
}

func TestParse_Empty(t *testing.T) {
	assert.Empty(t, Parse(nil))
}

func TestWrite_SortedByIndex(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, map[int]string{2: "c", 0: "a", 1: "b"})
	require.NoError(t, err)
	assert.Equal(t, "0,\"a\"\n1,\"b\"\n2,\"c\"\n", buf.String())
}

func TestReadWriteFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "strings.csv")
	require.NoError(t, os.WriteFile(in, dump(`0,""""Hallo_Welt`), 0o644))

	records, err := ReadFile(in)
	require.NoError(t, err)
	require.Len(t, records, 1)

	out := OutputPath(in)
	assert.Equal(t, in+"_translated", out)
	require.NoError(t, WriteFile(out, map[int]string{0: "Hello_World"}))

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "0,\"Hello_World\"\n", string(got))
}

func TestReadFile_Missing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}
