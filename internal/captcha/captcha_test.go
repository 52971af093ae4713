package captcha

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCode_LengthAndAlphabet(t *testing.T) {
	code, err := NewCode()
	require.NoError(t, err)
	require.Len(t, code, CodeLength)

	for _, r := range code {
		assert.True(t, strings.ContainsRune(alphabet, r), "unexpected character %q", r)
	}
}

func TestNewCode_NoAmbiguousCharacters(t *testing.T) {
	for _, forbidden := range "0O1Il" {
		assert.False(t, strings.ContainsRune(alphabet, forbidden), "alphabet contains %q", forbidden)
	}
}

func TestRender_ProducesExpectedPNG(t *testing.T) {
	data, err := Render("AB12cd")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)

	bounds := img.Bounds()
	assert.Equal(t, 150, bounds.Dx())
	assert.Equal(t, 50, bounds.Dy())
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name      string
		submitted string
		stored    string
		want      bool
	}{
		{name: "exact match", submitted: "AB12cd", stored: "AB12cd", want: true},
		{name: "case insensitive", submitted: "ab12CD", stored: "AB12cd", want: true},
		{name: "whitespace trimmed", submitted: "  AB12cd ", stored: "AB12cd", want: true},
		{name: "mismatch", submitted: "XXXXXX", stored: "AB12cd", want: false},
		{name: "empty submission", submitted: "", stored: "AB12cd", want: false},
		{name: "empty stored code never matches", submitted: "", stored: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Check(tt.submitted, tt.stored))
		})
	}
}
