package textutil

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
	}{
		{"0A1B", KindHex},
		{"0a 1b ff", KindHex},
		{"", KindHex},
		{"1234", KindHex},
		{"123", KindInteger},
		{"-42", KindInteger},
		{"1_000", KindInteger},
		{"-12_345_6", KindInteger},
		{"1__000", KindText},
		{"_100", KindText},
		{"1 000 0", KindInteger},
		{"123456789012345678901234567890123", KindInteger},
		{"Start_Menu", KindText},
		{"0x1F", KindText},
		{"ABC", KindText},
		{"12.5", KindText},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.in))
		})
	}
}

func TestClassify_Idempotent(t *testing.T) {
	for _, s := range []string{"0A1B", "99", "Motor aus", "Ölstand"} {
		first := Classify(s)
		for i := 0; i < 3; i++ {
			assert.Equal(t, first, Classify(s), s)
		}
	}
}

func TestIsAlpha(t *testing.T) {
	assert.True(t, IsAlpha("Motor"))
	assert.True(t, IsAlpha("Öldruck"))
	assert.False(t, IsAlpha(""))
	assert.False(t, IsAlpha("Motor_aus"))
	assert.False(t, IsAlpha("Motor2"))
}

func TestLen_CountsRunes(t *testing.T) {
	assert.Equal(t, 2, Len("Öl"))
	assert.Equal(t, 3, Len("abc"))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "hex", KindHex.String())
	assert.Equal(t, "integer", KindInteger.String())
	assert.Equal(t, "text", KindText.String())
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 5))
	assert.Equal(t, "ab...", Truncate("abcdef", 2))
	assert.Equal(t, "abc", Truncate("abc", 3))
}

func TestTruncate_RuneBoundary(t *testing.T) {
	got := Truncate("Ölstand prüfen", 2)
	assert.Equal(t, "Öl...", got)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, "Öl", Truncate("Öl", 2))
}

func TestHash_Stable(t *testing.T) {
	assert.Equal(t, Hash("Motor"), Hash("Motor"))
	assert.NotEqual(t, Hash("Motor"), Hash("motor"))
	assert.Len(t, Hash("x"), 64)
}
