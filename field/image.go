package field

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/draw"
	"golang.org/x/image/webp"
)

// decoders is keyed by lower-case extension. TGA has no magic number, so
// formats are picked by name rather than sniffed.
var decoders = map[string]func(io.Reader) (image.Image, error){
	".png":  png.Decode,
	".jpg":  jpeg.Decode,
	".jpeg": jpeg.Decode,
	".tga":  tga.Decode,
	".webp": webp.Decode,
}

// LoadImage decodes a PNG, JPEG, TGA or WebP field image and scales it to
// width x height when its size differs.
func LoadImage(path string, width, height int) (image.Image, error) {
	decode, ok := decoders[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return nil, fmt.Errorf("field: unsupported image format: %s", path)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("field: read image %s: %w", path, err)
	}

	img, err := decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("field: decode image %s: %w", path, err)
	}

	return fitImage(img, width, height), nil
}

func fitImage(src image.Image, width, height int) image.Image {
	sb := src.Bounds()
	if width <= 0 || height <= 0 || (sb.Dx() == width && sb.Dy() == height) {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, sb, draw.Src, nil)
	return dst
}
