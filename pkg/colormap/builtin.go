package colormap

import "image/color"

// Names of the built-in series.
const (
	Rainbow = "rainbow"
	Viridis = "viridis"
	Plasma  = "plasma"
	Inferno = "inferno"
	Magma   = "magma"
	Seurat  = "seurat"
)

// rainbowSeries is matplotlib's nipy_spectral segment data: 21 points at 0.05
// spacing. Colors returned for the default series depend on these values.
var rainbowSeries = Series{
	{0.00, RGB{0.0000, 0.0000, 0.0000}},
	{0.05, RGB{0.4667, 0.0000, 0.5333}},
	{0.10, RGB{0.5333, 0.0000, 0.6000}},
	{0.15, RGB{0.0000, 0.0000, 0.6667}},
	{0.20, RGB{0.0000, 0.0000, 0.8667}},
	{0.25, RGB{0.0000, 0.4667, 0.8667}},
	{0.30, RGB{0.0000, 0.6000, 0.8667}},
	{0.35, RGB{0.0000, 0.6667, 0.6667}},
	{0.40, RGB{0.0000, 0.6667, 0.5333}},
	{0.45, RGB{0.0000, 0.6000, 0.0000}},
	{0.50, RGB{0.0000, 0.7333, 0.0000}},
	{0.55, RGB{0.0000, 0.8667, 0.0000}},
	{0.60, RGB{0.0000, 1.0000, 0.0000}},
	{0.65, RGB{0.7333, 1.0000, 0.0000}},
	{0.70, RGB{0.9333, 0.9333, 0.0000}},
	{0.75, RGB{1.0000, 0.8000, 0.0000}},
	{0.80, RGB{1.0000, 0.6000, 0.0000}},
	{0.85, RGB{1.0000, 0.0000, 0.0000}},
	{0.90, RGB{0.8667, 0.0000, 0.0000}},
	{0.95, RGB{0.8000, 0.0000, 0.0000}},
	{1.00, RGB{0.8000, 0.8000, 0.8000}},
}

// viridisSeries follows matplotlib viridis.
var viridisSeries = Uniform(
	color.RGBA{68, 1, 84, 255},
	color.RGBA{72, 35, 116, 255},
	color.RGBA{64, 67, 135, 255},
	color.RGBA{52, 94, 141, 255},
	color.RGBA{41, 120, 142, 255},
	color.RGBA{32, 144, 140, 255},
	color.RGBA{34, 167, 132, 255},
	color.RGBA{68, 190, 112, 255},
	color.RGBA{121, 209, 81, 255},
	color.RGBA{189, 222, 38, 255},
	color.RGBA{253, 231, 37, 255},
)

var plasmaSeries = Uniform(
	color.RGBA{13, 8, 135, 255},
	color.RGBA{75, 3, 161, 255},
	color.RGBA{125, 3, 168, 255},
	color.RGBA{168, 34, 150, 255},
	color.RGBA{203, 70, 121, 255},
	color.RGBA{229, 107, 93, 255},
	color.RGBA{248, 148, 65, 255},
	color.RGBA{253, 195, 40, 255},
	color.RGBA{240, 249, 33, 255},
)

var infernoSeries = Uniform(
	color.RGBA{0, 0, 4, 255},
	color.RGBA{40, 11, 84, 255},
	color.RGBA{101, 21, 110, 255},
	color.RGBA{159, 42, 99, 255},
	color.RGBA{212, 72, 66, 255},
	color.RGBA{245, 125, 21, 255},
	color.RGBA{250, 193, 39, 255},
	color.RGBA{252, 255, 164, 255},
)

var magmaSeries = Uniform(
	color.RGBA{0, 0, 4, 255},
	color.RGBA{28, 16, 68, 255},
	color.RGBA{79, 18, 123, 255},
	color.RGBA{129, 37, 129, 255},
	color.RGBA{181, 54, 122, 255},
	color.RGBA{229, 80, 100, 255},
	color.RGBA{251, 135, 97, 255},
	color.RGBA{254, 194, 135, 255},
	color.RGBA{252, 253, 191, 255},
)

// seuratSeries is the light grey to red gradient of Seurat's FeaturePlot.
var seuratSeries = Uniform(
	color.RGBA{211, 211, 211, 255},
	color.RGBA{255, 0, 0, 255},
)

func builtinEntries() []Entry {
	return []Entry{
		{Name: Rainbow, Series: rainbowSeries},
		{Name: Viridis, Series: viridisSeries},
		{Name: Plasma, Series: plasmaSeries},
		{Name: Inferno, Series: infernoSeries},
		{Name: Magma, Series: magmaSeries},
		{Name: Seurat, Series: seuratSeries},
	}
}
