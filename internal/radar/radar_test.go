package radar

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/dossier-builder/internal/types"
)

func sampleCategories() []types.CompetencyCategory {
	return []types.CompetencyCategory{
		{
			Name:  "Selbst",
			Color: "#1E3799",
			Competencies: []types.Competency{
				{Name: "Eigenverantwortung", Level: 3},
				{Name: "Zeitmanagement", Level: 4},
			},
		},
		{
			Name:  "Sozial",
			Color: "#16A085",
			Competencies: []types.Competency{
				{Name: "Teamarbeit", Level: 2},
			},
		},
		{
			Name:         "MINT",
			Color:        "#E67E22",
			Competencies: nil,
		},
	}
}

func TestWedgeRadius_MaxLevelReachesOuter(t *testing.T) {
	assert.InDelta(t, 100.0, wedgeRadius(4, 20, 100), 1e-9)
}

func TestWedgeRadius_ZeroLevelStaysAtInner(t *testing.T) {
	assert.InDelta(t, 20.0, wedgeRadius(0, 20, 100), 1e-9)
}

func TestWedgeRadius_Midpoint(t *testing.T) {
	assert.InDelta(t, 60.0, wedgeRadius(2, 20, 100), 1e-9)
}

func TestWedgeRadius_ClampsOutOfRange(t *testing.T) {
	assert.InDelta(t, 100.0, wedgeRadius(7, 20, 100), 1e-9)
	assert.InDelta(t, 20.0, wedgeRadius(-1, 20, 100), 1e-9)
}

func TestWedgeAlpha_Bounds(t *testing.T) {
	assert.InDelta(t, 0.15, wedgeAlpha(0), 1e-9)
	assert.InDelta(t, 0.80, wedgeAlpha(4), 1e-9)
}

func TestParseHexColor(t *testing.T) {
	r, g, b, ok := parseHexColor("#FF8000")
	require.True(t, ok)
	assert.InDelta(t, 1.0, r, 1e-9)
	assert.InDelta(t, 128.0/255, g, 1e-9)
	assert.InDelta(t, 0.0, b, 1e-9)

	_, _, _, ok = parseHexColor("not-a-color")
	assert.False(t, ok)
}

func TestRender_EmptyCategories(t *testing.T) {
	img := Render(nil, Options{Size: 64})
	bounds := img.Bounds()
	assert.Equal(t, 64, bounds.Dx())
	assert.Equal(t, 64, bounds.Dy())
}

func TestRender_DefaultSize(t *testing.T) {
	img := Render(sampleCategories(), Options{})
	assert.Equal(t, DefaultSize, img.Bounds().Dx())
}

func TestRenderPNG_ProducesDecodableImage(t *testing.T) {
	data, err := RenderPNG(sampleCategories(), Options{Size: 128})
	require.NoError(t, err)
	require.NotEmpty(t, data)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 128, img.Bounds().Dx())
	assert.Equal(t, 128, img.Bounds().Dy())
}

func TestRenderPNG_EmptyCategories(t *testing.T) {
	data, err := RenderPNG(nil, Options{Size: 32})
	require.NoError(t, err)

	_, err = png.Decode(bytes.NewReader(data))
	assert.NoError(t, err)
}
