package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRgbColorRoundTrip(t *testing.T) {
	cases := []string{"#000000", "#ffffff", "#c0ffee", "#1a2b3c"}
	for _, s := range cases {
		c, err := ParseRgbColor(s)
		require.NoError(t, err)
		assert.Equal(t, s, c.String())
	}
}

func TestParseRgbColorShortForm(t *testing.T) {
	c, err := ParseRgbColor("#fed")
	require.NoError(t, err)
	assert.Equal(t, RgbColor{R: 0xff, G: 0xee, B: 0xdd}, c)
}

func TestParseRgbColorErrors(t *testing.T) {
	_, err := ParseRgbColor("123")
	assert.Error(t, err)
	_, err = ParseRgbColor("#12")
	assert.Error(t, err)
	_, err = ParseRgbColor("#coffee")
	assert.Error(t, err)
}

func TestParseNamedColor(t *testing.T) {
	n, err := ParseNamedColor("Red")
	require.NoError(t, err)
	assert.Equal(t, Red, n)

	_, err = ParseNamedColor("puce")
	assert.Error(t, err)
}

func TestColorSpecDefault(t *testing.T) {
	assert.True(t, DefaultColor().IsDefault())
	assert.False(t, NamedSpec(Red, false).IsDefault())
}
