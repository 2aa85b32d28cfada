package textcrop

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func words(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = "w"
	}
	return strings.Join(parts, " ")
}

func TestCropShortInputUnchanged(t *testing.T) {
	out, truncated := Crop("hello world", DefaultWordLimit)
	assert.False(t, truncated)
	assert.Equal(t, "hello world", out)
}

func TestCropEmptyInput(t *testing.T) {
	out, truncated := Crop("", DefaultWordLimit)
	assert.False(t, truncated)
	assert.Equal(t, "", out)
}

func TestCropPreservesNewlines(t *testing.T) {
	out, truncated := Crop("line one\n\nline two\n", DefaultWordLimit)
	assert.False(t, truncated)
	assert.Equal(t, "line one\n\nline two\n", out)
}

func TestCropNormalizesLineEndings(t *testing.T) {
	out, _ := Crop("a\r\nb\rc", DefaultWordLimit)
	assert.Equal(t, "a\nb\nc", out)
}

func TestCropCollapsesHorizontalWhitespace(t *testing.T) {
	out, truncated := Crop("a  \t b\n\t c", DefaultWordLimit)
	assert.False(t, truncated)
	assert.Equal(t, "a b\n c", out)
}

func TestCropExactlyAtLimitNoMarker(t *testing.T) {
	input := words(DefaultWordLimit)
	out, truncated := Crop(input, DefaultWordLimit)
	assert.False(t, truncated)
	assert.Equal(t, input, out)
}

func TestCropOneWordOverLimit(t *testing.T) {
	out, truncated := Crop(words(DefaultWordLimit+1), DefaultWordLimit)
	require.True(t, truncated)
	assert.True(t, strings.HasSuffix(out, "..."))
	kept := strings.Fields(strings.TrimSuffix(out, "..."))
	assert.Len(t, kept, DefaultWordLimit)
}

func TestCropKeepsWhitespaceLayoutWhenTruncating(t *testing.T) {
	input := "one\ntwo three four"
	out, truncated := Crop(input, 2)
	require.True(t, truncated)
	assert.Equal(t, "one\ntwo ...", out)
}

func TestCropIdempotentBelowLimit(t *testing.T) {
	input := "the quick\nbrown   fox\t jumps"
	once, _ := Crop(input, DefaultWordLimit)
	twice, _ := Crop(once, DefaultWordLimit)
	assert.Equal(t, once, twice)
}

func TestCropSmallLimits(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		limit     int
		want      string
		truncated bool
	}{
		{"zero limit drops everything", "a b", 0, "...", true},
		{"limit one", "a b", 1, "a ...", true},
		{"whitespace only", "  \n ", 3, " \n ", false},
		{"unicode words", "héllo wörld extra", 2, "héllo wörld ...", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, truncated := Crop(tt.input, tt.limit)
			assert.Equal(t, tt.want, out)
			assert.Equal(t, tt.truncated, truncated)
		})
	}
}
