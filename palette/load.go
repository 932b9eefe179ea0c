package palette

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Load resolves a palette specifier: a path ending in .toml or .pal loads
// that file, anything else names a builtin palette.
func Load(spec string) (*Palette, error) {
	switch strings.ToLower(filepath.Ext(spec)) {
	case ".toml":
		return FromTOMLFile(spec)
	case ".pal":
		return FromRIFFFile(spec)
	default:
		return Builtin(spec)
	}
}

type tomlPalette struct {
	Name   string      `toml:"name"`
	Colors []tomlColor `toml:"colors"`
}

type tomlColor struct {
	Name string `toml:"name"`
	RGB  []int  `toml:"rgb"`
	Hex  string `toml:"hex"`
}

// FromTOML parses a palette definition. Each [[colors]] entry carries a
// name and either rgb = [r, g, b] or hex = "#rrggbb".
func FromTOML(data []byte, fallbackName string) (*Palette, error) {
	var def tomlPalette
	if err := toml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("could not parse palette: %w", err)
	}

	name := def.Name
	if name == "" {
		name = fallbackName
	}

	colors := make([]Color, 0, len(def.Colors))
	for i, tc := range def.Colors {
		c, err := tc.toColor()
		if err != nil {
			return nil, fmt.Errorf("palette %q color %d: %w", name, i, err)
		}
		colors = append(colors, c)
	}

	return New(name, colors)
}

// FromTOMLFile loads a TOML palette from disk. The file name stands in for
// a missing name field.
func FromTOMLFile(path string) (*Palette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read palette file %q: %w", path, err)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return FromTOML(data, name)
}

func (tc tomlColor) toColor() (Color, error) {
	switch {
	case len(tc.RGB) > 0 && tc.Hex != "":
		return Color{}, fmt.Errorf("has both rgb and hex")
	case len(tc.RGB) > 0:
		if len(tc.RGB) != 3 {
			return Color{}, fmt.Errorf("rgb needs exactly 3 channels, got %d", len(tc.RGB))
		}
		for _, ch := range tc.RGB {
			if ch < 0 || ch > 255 {
				return Color{}, fmt.Errorf("channel value %d outside 0-255", ch)
			}
		}
		return Color{
			Name: tc.Name,
			R:    uint8(tc.RGB[0]),
			G:    uint8(tc.RGB[1]),
			B:    uint8(tc.RGB[2]),
		}, nil
	case tc.Hex != "":
		hc, err := colorful.Hex(tc.Hex)
		if err != nil {
			return Color{}, fmt.Errorf("invalid hex color %q: %w", tc.Hex, err)
		}
		return Color{
			Name: tc.Name,
			R:    uint8(math.Round(hc.R * 255)),
			G:    uint8(math.Round(hc.G * 255)),
			B:    uint8(math.Round(hc.B * 255)),
		}, nil
	default:
		return Color{}, fmt.Errorf("needs either rgb or hex")
	}
}
