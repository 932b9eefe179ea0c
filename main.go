// picgrid converts pictures into fixed-palette grid mosaics.
package main

import (
	"fmt"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/alecthomas/kong"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/vp8l"
	_ "golang.org/x/image/webp"

	"picgrid/convert"
	"picgrid/palette"
	"picgrid/parallel"
)

var cli struct {
	Convert  convert.CLICmd `cmd:"" help:"Quantize images in a folder onto a palette grid and render them as PNG"`
	Palettes palettesCmd    `cmd:"" help:"List the builtin palettes"`
	Workers  int            `help:"Number of parallel workers, 0 means one per CPU" short:"j" default:"0"`
}

type palettesCmd struct{}

func (palettesCmd) Run() error {
	for _, name := range palette.BuiltinNames() {
		pal, err := palette.Builtin(name)
		if err != nil {
			return err
		}
		fmt.Printf("%s (%d colors)\n", name, pal.Len())
		for _, c := range pal.Colors() {
			fmt.Printf("  %-12s %s\n", c.Name, c.Hex())
		}
	}
	return nil
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Name("picgrid"),
		kong.Description("Convert pictures into fixed-palette grid mosaics."),
	)

	pool := parallel.Start(cli.Workers)
	kctx.FatalIfErrorf(kctx.Run(parallel.WorkerFunc(pool.Do), parallel.WaitFunc(pool.Wait)))
}
