package palette

import (
	"fmt"
	"sort"
	"strings"
)

var builtins = map[string]*Palette{
	"bw": {
		name: "bw",
		colors: []Color{
			{Name: "black", R: 0x00, G: 0x00, B: 0x00},
			{Name: "white", R: 0xff, G: 0xff, B: 0xff},
		},
	},
	"gray4": {
		name: "gray4",
		colors: []Color{
			{Name: "black", R: 0x00, G: 0x00, B: 0x00},
			{Name: "dark gray", R: 0x55, G: 0x55, B: 0x55},
			{Name: "light gray", R: 0xaa, G: 0xaa, B: 0xaa},
			{Name: "white", R: 0xff, G: 0xff, B: 0xff},
		},
	},
	// Classic injection-brick colors.
	"brick12": {
		name: "brick12",
		colors: []Color{
			{Name: "white", R: 0xf4, G: 0xf4, B: 0xf4},
			{Name: "black", R: 0x1b, G: 0x2a, B: 0x34},
			{Name: "red", R: 0xb4, G: 0x00, B: 0x00},
			{Name: "blue", R: 0x1e, G: 0x5a, B: 0xa8},
			{Name: "yellow", R: 0xfa, G: 0xc8, B: 0x0a},
			{Name: "green", R: 0x00, G: 0x85, B: 0x2b},
			{Name: "orange", R: 0xd6, G: 0x70, B: 0x23},
			{Name: "brown", R: 0x5c, G: 0x40, B: 0x32},
			{Name: "tan", R: 0xde, G: 0xc6, B: 0x9c},
			{Name: "dark gray", R: 0x54, G: 0x5c, B: 0x64},
			{Name: "light gray", R: 0xa3, G: 0xa2, B: 0xa4},
			{Name: "dark blue", R: 0x19, G: 0x32, B: 0x5a},
		},
	},
	// Sweetie 16 by GrafxKid.
	"sweet16": {
		name: "sweet16",
		colors: []Color{
			{Name: "black", R: 0x1a, G: 0x1c, B: 0x2c},
			{Name: "plum", R: 0x5d, G: 0x27, B: 0x5d},
			{Name: "crimson", R: 0xb1, G: 0x3e, B: 0x53},
			{Name: "coral", R: 0xef, G: 0x7d, B: 0x57},
			{Name: "gold", R: 0xff, G: 0xcd, B: 0x75},
			{Name: "lime", R: 0xa7, G: 0xf0, B: 0x70},
			{Name: "emerald", R: 0x38, G: 0xb7, B: 0x64},
			{Name: "teal", R: 0x25, G: 0x71, B: 0x79},
			{Name: "navy", R: 0x29, G: 0x36, B: 0x6f},
			{Name: "royal", R: 0x3b, G: 0x5d, B: 0xc9},
			{Name: "sky", R: 0x41, G: 0xa6, B: 0xf6},
			{Name: "ice", R: 0x73, G: 0xef, B: 0xf7},
			{Name: "white", R: 0xf4, G: 0xf4, B: 0xf4},
			{Name: "silver", R: 0x94, G: 0xb0, B: 0xc2},
			{Name: "slate", R: 0x56, G: 0x6c, B: 0x86},
			{Name: "charcoal", R: 0x33, G: 0x3c, B: 0x57},
		},
	},
}

// Builtin returns the named builtin palette.
func Builtin(name string) (*Palette, error) {
	p, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("unknown palette %q (choose from %s)", name, strings.Join(BuiltinNames(), ", "))
	}
	return p, nil
}

// BuiltinNames lists the builtin palette names in sorted order.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
