package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaletteResolveNamed(t *testing.T) {
	p := PaletteGJM8
	assert.Equal(t, p.Colors[Red], p.Resolve(NamedSpec(Red, false), false))
	assert.Equal(t, p.IntenseColors[Red], p.Resolve(NamedSpec(Red, true), false))
	assert.NotEqual(t,
		p.Resolve(NamedSpec(Red, false), false),
		p.Resolve(NamedSpec(Red, true), false),
	)
}

func TestPaletteResolveDefault(t *testing.T) {
	p := PaletteXterm
	assert.Equal(t, p.Colors[White], p.Resolve(DefaultColor(), false))
	assert.Equal(t, p.Colors[Black], p.Resolve(DefaultColor(), true))
}

func TestPaletteResolveIndexedStandard(t *testing.T) {
	p := PaletteUbuntu
	assert.Equal(t, p.Colors[Green], p.Resolve(IndexedSpec(2), false))
	assert.Equal(t, p.IntenseColors[Green], p.Resolve(IndexedSpec(10), false))
}

func TestPaletteResolveIndexedCube(t *testing.T) {
	p := PaletteXterm
	// Index 16 is the cube origin: (0,0,0) -> black.
	assert.Equal(t, RgbColor{}, p.Resolve(IndexedSpec(16), false))
	// Index 231 is the cube's far corner: (5,5,5) -> 255,255,255.
	assert.Equal(t, RgbColor{R: 255, G: 255, B: 255}, p.Resolve(IndexedSpec(231), false))
}

func TestPaletteResolveIndexedGrayscale(t *testing.T) {
	p := PaletteXterm
	assert.Equal(t, RgbColor{R: 8, G: 8, B: 8}, p.Resolve(IndexedSpec(232), false))
	assert.Equal(t, RgbColor{R: 238, G: 238, B: 238}, p.Resolve(IndexedSpec(255), false))
}

func TestPaletteResolveRGB(t *testing.T) {
	p := PaletteGJM8
	c := RgbColor{R: 1, G: 2, B: 3}
	assert.Equal(t, c, p.Resolve(RGBSpec(c), false))
}

func TestByName(t *testing.T) {
	p, err := ByName("ubuntu")
	require.NoError(t, err)
	assert.Equal(t, PaletteUbuntu, p)

	_, err = ByName("nonexistent")
	assert.Error(t, err)
}
