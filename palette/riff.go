package palette

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/riff"
)

/*
typedef struct tagLOGPALETTE {
  WORD         palVersion;
  WORD         palNumEntries;
  PALETTEENTRY palPalEntry[1];
} LOGPALETTE;

typedef struct tagPALETTEENTRY {
  BYTE peRed;
  BYTE peGreen;
  BYTE peBlue;
  BYTE peFlags;
} PALETTEENTRY;
*/

var (
	palType  = riff.FourCC{'P', 'A', 'L', ' '}
	dataType = riff.FourCC{'d', 'a', 't', 'a'}
)

// FromRIFF reads a RIFF PAL stream. PAL entries have no labels, so colors
// are named by their hex value.
func FromRIFF(r io.Reader, name string) (*Palette, error) {
	formType, rd, err := riff.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("could not open RIFF stream: %w", err)
	} else if formType != palType {
		return nil, fmt.Errorf("unsupported RIFF content type: %s", string(formType[:]))
	}

	colors, err := readChunks(rd, name)
	if err != nil {
		return nil, err
	}

	return New(name, colors)
}

// FromRIFFFile loads a RIFF PAL file from disk.
func FromRIFFFile(path string) (*Palette, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open palette file %q: %w", path, err)
	}
	defer f.Close()

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return FromRIFF(f, name)
}

func readChunks(r *riff.Reader, ident string) ([]Color, error) {
	var colors []Color

	for n := 0; ; n++ {
		id, size, data, err := r.Next()
		if err != nil {
			if err == io.EOF {
				break
			}
			return colors, fmt.Errorf("could not read chunk %q#%d: %w", ident, n, err)
		}

		if id == riff.LIST {
			listType, list, lerr := riff.NewListReader(size, data)
			if lerr != nil {
				return colors, fmt.Errorf("could not read list from chunk %q#%d: %w", ident, n, lerr)
			} else if listType != palType {
				return colors, fmt.Errorf("chunk %q#%d unsupported list type: %s", ident, n, string(listType[:]))
			}

			nested, lerr := readChunks(list, fmt.Sprintf("%s#%d", ident, n))
			colors = append(colors, nested...)
			if lerr != nil {
				return colors, lerr
			}
			continue
		} else if id != dataType {
			return colors, fmt.Errorf("unsupported chunk type in %q#%d: %s", ident, n, string(id[:]))
		}

		chunk, err := readLogPalette(data, fmt.Sprintf("%s#%d", ident, n))
		if err != nil {
			return colors, err
		}
		colors = append(colors, chunk...)
	}

	return colors, nil
}

func readLogPalette(r io.Reader, ident string) ([]Color, error) {
	var buf [4]byte

	if _, err := io.ReadFull(r, buf[:2]); err != nil {
		return nil, fmt.Errorf("could not read version from chunk %s: %w", ident, err)
	}
	if ver := binary.BigEndian.Uint16(buf[:2]); ver != 3 {
		return nil, fmt.Errorf("unsupported palette version in chunk %s: %d", ident, ver)
	}

	if _, err := io.ReadFull(r, buf[:2]); err != nil {
		return nil, fmt.Errorf("could not read number of entries from chunk %s: %w", ident, err)
	}
	count := binary.LittleEndian.Uint16(buf[:2])

	colors := make([]Color, count)
	for i := uint16(0); i < count; i++ {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return colors, fmt.Errorf("could not read color %d/%d from chunk %s: %w", i, count, ident, err)
		}
		c := Color{R: buf[0], G: buf[1], B: buf[2]}
		c.Name = c.Hex()
		colors[i] = c
	}

	return colors, nil
}
