package photo

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

type TranscodeOptions struct {
	MaxWidth       int
	JPEGQuality    int
	PNGCompression png.CompressionLevel
	WebPQuality    float32
}

// DefaultTranscodeOptions: max 1000px width, JPEG/WebP quality 75, PNG at
// the strongest zlib level Go exposes.
func DefaultTranscodeOptions() TranscodeOptions {
	return TranscodeOptions{
		MaxWidth:       1000,
		JPEGQuality:    75,
		PNGCompression: png.BestCompression,
		WebPQuality:    75,
	}
}

type Transcoder struct {
	opts TranscodeOptions
}

func NewTranscoder(opts TranscodeOptions) *Transcoder {
	return &Transcoder{opts: opts}
}

// Transcode decodes data, shrinks it to MaxWidth keeping aspect ratio, and
// encodes it as PNG or WebP when outName says so. Every other extension,
// gif/bmp/tiff included, is encoded as JPEG; the name itself is kept.
func (t *Transcoder) Transcode(data []byte, outName string) ([]byte, string, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, "", fmt.Errorf("decode image: %w", err)
	}

	img = t.resize(img)

	var out bytes.Buffer
	switch strings.ToLower(filepath.Ext(outName)) {
	case ".webp":
		if err := webp.Encode(&out, img, &webp.Options{Quality: t.opts.WebPQuality}); err != nil {
			return nil, "", fmt.Errorf("encode webp: %w", err)
		}
		return out.Bytes(), "image/webp", nil
	case ".png":
		if err := imaging.Encode(&out, img, imaging.PNG, imaging.PNGCompressionLevel(t.opts.PNGCompression)); err != nil {
			return nil, "", fmt.Errorf("encode png: %w", err)
		}
		return out.Bytes(), "image/png", nil
	default:
		if err := imaging.Encode(&out, img, imaging.JPEG, imaging.JPEGQuality(t.opts.JPEGQuality)); err != nil {
			return nil, "", fmt.Errorf("encode jpeg: %w", err)
		}
		return out.Bytes(), "image/jpeg", nil
	}
}

func (t *Transcoder) resize(img image.Image) image.Image {
	if t.opts.MaxWidth <= 0 || img.Bounds().Dx() <= t.opts.MaxWidth {
		return img
	}
	// height 0 = pertahankan aspect ratio
	return imaging.Resize(img, t.opts.MaxWidth, 0, imaging.Lanczos)
}
