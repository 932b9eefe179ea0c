/*
Package convert implements the convert command: scan a folder of images,
quantize each one onto a palette grid, and save the rendered grids as PNG.
*/
package convert

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/huh"
	colorful "github.com/lucasb-eyer/go-colorful"

	"picgrid/grid"
	"picgrid/palette"
	"picgrid/parallel"
	"picgrid/render"
)

type CLICmd struct {
	Scan        string `help:"Source folder to scan for images" default:"."`
	Dest        string `help:"Destination folder for rendered grids. Relative to scan dir if not absolute." default:"grids"`
	Size        int    `help:"Grid dimension" default:"32"`
	Cell        int    `help:"Rendered pixel size of one grid cell" default:"16"`
	Palette     string `help:"Builtin palette name, a .toml palette file or a RIFF .pal file" default:"brick12"`
	Fit         string `help:"Square pre-fit applied before sampling" enum:"none,crop,fill" default:"none"`
	FillColor   string `help:"Background color for --fit=fill as #rrggbb" default:"#ffffff"`
	Smooth      bool   `help:"Downscale the source to the grid dimension with a smoothing filter before sampling" default:"false"`
	Interactive bool   `help:"Ask before overwriting existing output files" default:"false"`
	Force       bool   `help:"Overwrite existing output files without asking" default:"false"`

	pal  *palette.Palette
	fill color.Color
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	scanDir, err := filepath.Abs(c.Scan)
	var info os.FileInfo
	if err == nil {
		if info, err = os.Stat(scanDir); err == nil && !info.IsDir() {
			err = fmt.Errorf("not a directory")
		}
	}
	if err != nil {
		return fmt.Errorf("invalid scan path %q: %w", c.Scan, err)
	}
	c.Scan = scanDir

	if !filepath.IsAbs(c.Dest) {
		c.Dest = filepath.Join(scanDir, c.Dest)
	}

	if !grid.SizeSupported(c.Size) {
		return fmt.Errorf("invalid grid size %d, supported sizes are %v", c.Size, grid.Sizes())
	}

	if c.Cell < 1 {
		return fmt.Errorf("invalid cell pixel size: %d", c.Cell)
	}

	if c.pal, err = palette.Load(c.Palette); err != nil {
		return err
	}

	if c.Fit == "fill" {
		fill, err := colorful.Hex(c.FillColor)
		if err != nil {
			return fmt.Errorf("invalid fill color %q: %w", c.FillColor, err)
		}
		c.fill = fill
	}

	return nil
}

func (c *CLICmd) Run(worker parallel.WorkerFunc, wait parallel.WaitFunc) error {
	if err := os.MkdirAll(c.Dest, 0o755); err != nil {
		return fmt.Errorf("unable to create destination folder %q: %w", c.Dest, err)
	}

	files, err := os.ReadDir(c.Scan)
	if err != nil {
		return fmt.Errorf("unable to read folder %q: %w", c.Scan, err)
	}

	var processedCount, errCount atomic.Uint64
	for _, file := range files {
		if file.IsDir() {
			continue
		}

		destName := outName(file.Name())
		destPath := filepath.Join(c.Dest, destName)

		// Existing outputs are resolved here, before fan-out, so
		// workers never compete for the terminal.
		if _, err := os.Stat(destPath); err == nil {
			if ok, rerr := c.resolveExisting(destName); rerr != nil {
				errCount.Add(1)
				slog.Error("could not overwrite output", "file", destPath, "error", rerr)
				continue
			} else if !ok {
				slog.Info("skipping existing output", "file", destPath)
				continue
			}
		} else if !errors.Is(err, fs.ErrNotExist) {
			errCount.Add(1)
			slog.Error("could not stat output", "file", destPath, "error", err)
			continue
		}

		worker(func(fileName, destName string) func() {
			return func() {
				filePath := filepath.Join(c.Scan, fileName)
				logger := slog.Default().With("file", filePath)

				if err := c.process(logger, filePath, destName); err != nil {
					errCount.Add(1)
					logger.Error("could not convert image", "error", err)
					return
				}
				processedCount.Add(1)
			}
		}(file.Name(), destName))
	}

	wait(true)

	processed := processedCount.Load()
	failed := errCount.Load()
	slog.Info("stats", "processed", processed, "errors", failed,
		"total", processed+failed)

	if failed > 0 {
		return fmt.Errorf("error processing %d files", failed)
	}
	return nil
}

func (c *CLICmd) process(logger *slog.Logger, filePath, destName string) error {
	imgFile, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("could not open image: %w", err)
	}
	img, _, err := image.Decode(imgFile)
	imgFile.Close()
	if err != nil {
		return fmt.Errorf("could not decode image: %w", err)
	}

	img = fitSquare(logger, img, c.Fit, c.fill)
	if c.Smooth {
		img = smoothScale(logger, img, c.Size)
	}

	doc, err := grid.New(c.pal, c.Size)
	if err != nil {
		return err
	}
	if err := doc.FromImage(img); err != nil {
		return err
	}
	logger.Info("quantized", "size", doc.Size(), "palette", c.pal.Name(), "filled", fmt.Sprintf("%.0f%%", doc.Progress()*100))

	out, err := render.Image(doc, c.Cell)
	if err != nil {
		return err
	}

	return save(out, c.Dest, destName)
}

func outName(srcName string) string {
	oldExt := filepath.Ext(srcName)
	return fmt.Sprintf("%s.grid.png", srcName[:len(srcName)-len(oldExt)])
}

// resolveExisting decides whether an existing destination file may be
// overwritten: --force always wins, --interactive asks, and a headless run
// treats the collision as a per-file error.
func (c *CLICmd) resolveExisting(destName string) (bool, error) {
	switch {
	case c.Force:
		return true, nil
	case c.Interactive:
		return confirm(destName)
	default:
		return false, fmt.Errorf("destination file already exists: %q", destName)
	}
}

// confirm is swappable so the decision logic tests without a terminal.
var confirm = confirmOverwrite

func confirmOverwrite(destName string) (bool, error) {
	overwrite := false
	err := huh.NewConfirm().
		Title(fmt.Sprintf("Overwrite %s?", destName)).
		Value(&overwrite).
		Run()
	return overwrite, err
}
