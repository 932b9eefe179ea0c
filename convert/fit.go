package convert

import (
	"image"
	"image/color"
	"log/slog"

	"golang.org/x/image/draw"
)

// fitSquare makes the source square before grid sampling. "crop" keeps the
// centered square of the shorter side; "fill" pads the longer side with a
// background color. Already-square input passes through untouched.
func fitSquare(logger *slog.Logger, img image.Image, mode string, fill color.Color) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == h {
		return img
	}

	switch mode {
	case "crop":
		side := min(w, h)
		logger.Info("cropping to square", "side", side)

		src := image.Pt(b.Min.X+(w-side)/2, b.Min.Y+(h-side)/2)
		dst := image.NewRGBA(image.Rect(0, 0, side, side))
		draw.Draw(dst, dst.Bounds(), img, src, draw.Src)
		return dst
	case "fill":
		side := max(w, h)
		logger.Info("padding to square", "side", side)

		dst := image.NewRGBA(image.Rect(0, 0, side, side))
		draw.Draw(dst, dst.Bounds(), image.NewUniform(fill), image.Point{}, draw.Src)

		off := image.Pt((side-w)/2, (side-h)/2)
		draw.Draw(dst, image.Rectangle{Min: off, Max: off.Add(image.Pt(w, h))}, img, b.Min, draw.Over)
		return dst
	}

	return img
}

// smoothScale downscales the source to side x side with a CatmullRom
// filter so the subsequent one-pixel-per-cell sampling averages detail
// instead of picking it. Opt-in; plain sampling is the default contract.
func smoothScale(logger *slog.Logger, img image.Image, side int) image.Image {
	b := img.Bounds()
	if b.Dx() == side && b.Dy() == side {
		return img
	}

	logger.Info("smoothing", "width", side, "height", side)
	dst := image.NewRGBA(image.Rect(0, 0, side, side))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
