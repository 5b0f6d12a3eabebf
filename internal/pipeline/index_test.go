package pipeline

import (
	"testing"

	"cbf-translator/internal/parser"
	"cbf-translator/internal/symbols"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslatable(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"0A1B", false},
		{"12 34 56", false},
		{"-17", false},
		{"ab", false},
		{"Öl", false},
		{"Motor", false},
		{"Motor aus", true},
		{"Start_Menu", true},
		{"a_b", true},
		{"Nr.5", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Translatable(tt.text), tt.text)
	}
}

func TestFilter_KeepsOrder(t *testing.T) {
	got := Filter([]parser.Record{
		{Index: 0, Text: "Motor aus"},
		{Index: 1, Text: "FF00"},
		{Index: 2, Text: "Start_Menu"},
	})
	assert.Equal(t, []parser.Record{{Index: 0, Text: "Motor aus"}, {Index: 2, Text: "Start_Menu"}}, got)
}

func TestBuildIndex_GroupsInFirstOccurrenceOrder(t *testing.T) {
	si := BuildIndex([]parser.Record{
		{Index: 7, Text: "B_x"},
		{Index: 3, Text: "A_x"},
		{Index: 9, Text: "B_x"},
	})
	assert.Equal(t, []string{"B_x", "A_x"}, si.Strings())
	assert.Equal(t, []int{7, 9}, si.Indices("B_x"))
	assert.Equal(t, []int{3}, si.Indices("A_x"))
	assert.Equal(t, 2, si.Len())
}

func TestReassemble_KeyedByOriginal(t *testing.T) {
	si := BuildIndex([]parser.Record{
		{Index: 0, Text: "Start_Menu"},
		{Index: 1, Text: "Beginn_Menu"},
	})
	// Both originals translate to the same text; each keeps its own indices.
	lookup := symbols.Lookup{"Start": "Begin", "Beginn": "Begin", "Menu": "Menu"}

	got := Reassemble(si, lookup)
	assert.Equal(t, map[string]string{"Start_Menu": "Begin_Menu", "Beginn_Menu": "Begin_Menu"}, got)

	lines := Complete([]parser.Record{{Index: 0, Text: "Start_Menu"}, {Index: 1, Text: "Beginn_Menu"}}, si, got)
	assert.Equal(t, map[int]string{0: "Begin_Menu", 1: "Begin_Menu"}, lines)
}

func TestComplete_FillsEveryIndexOnce(t *testing.T) {
	records := []parser.Record{
		{Index: 0, Text: "0A1B"},
		{Index: 1, Text: "Start_Menu"},
		{Index: 2, Text: "Motor"},
		{Index: 3, Text: "Start_Menu"},
	}
	si := BuildIndex(Filter(records))
	lines := Complete(records, si, map[string]string{"Start_Menu": "Begin_Menu"})

	require.Len(t, lines, 4)
	assert.Equal(t, "0A1B", lines[0])
	assert.Equal(t, "Begin_Menu", lines[1])
	assert.Equal(t, "Motor", lines[2])
	assert.Equal(t, "Begin_Menu", lines[3])
}

func TestComplete_DuplicateIndexFirstRecordWins(t *testing.T) {
	records := []parser.Record{
		{Index: 4, Text: "FF"},
		{Index: 4, Text: "EE"},
	}
	lines := Complete(records, BuildIndex(nil), nil)
	assert.Equal(t, map[int]string{4: "FF"}, lines)
}
