package photo

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/chai2010/webp"
	"github.com/gabriel-vasile/mimetype"

	"github.com/riooastfu/pastimobile-be/internal/shared/apperror"
)

const (
	DefaultMaxBytes int64 = 5 * 1024 * 1024

	// DefaultMaxDimension membatasi lebar/tinggi yang dideklarasikan header
	// gambar; decode penuh dilakukan hanya setelah lolos batas ini.
	DefaultMaxDimension = 8000
)

var ErrInvalidFile = apperror.New(
	apperror.CodeInvalidFile,
	"File gambar wajib diunggah dengan format JPG, PNG, atau WEBP.",
	http.StatusBadRequest,
)

var allowedMIME = []string{"image/jpeg", "image/png", "image/webp"}

// Upload adalah file yang sudah lolos validasi dan dibaca ke memori.
type Upload struct {
	Filename string
	MIME     string
	Data     []byte
}

// ValidateImageFile checks presence, size, sniffed content type and the
// pixel dimensions declared in the image header. The declared Content-Type
// header is ignored; only the bytes count.
func ValidateImageFile(fh *multipart.FileHeader, maxBytes int64, maxDimension int) (Upload, error) {
	if fh == nil || fh.Filename == "" {
		return Upload{}, ErrInvalidFile
	}
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	if maxDimension <= 0 {
		maxDimension = DefaultMaxDimension
	}
	if fh.Size > maxBytes {
		return Upload{}, ErrInvalidFile.WithMessage(
			fmt.Sprintf("Ukuran file melebihi batas %d KB.", maxBytes/1024),
		)
	}

	src, err := fh.Open()
	if err != nil {
		return Upload{}, apperror.Wrap(err, ErrInvalidFile.Code, ErrInvalidFile.Message, ErrInvalidFile.HTTPStatus)
	}
	defer src.Close()

	var buf bytes.Buffer
	n, err := io.Copy(&buf, io.LimitReader(src, maxBytes+1))
	if err != nil {
		return Upload{}, apperror.Wrap(err, ErrInvalidFile.Code, ErrInvalidFile.Message, ErrInvalidFile.HTTPStatus)
	}
	if n == 0 {
		return Upload{}, ErrInvalidFile
	}
	if n > maxBytes {
		return Upload{}, ErrInvalidFile.WithMessage(
			fmt.Sprintf("Ukuran file melebihi batas %d KB.", maxBytes/1024),
		)
	}

	mt := mimetype.Detect(buf.Bytes())
	if !mimetype.EqualsAny(mt.String(), allowedMIME...) {
		return Upload{}, ErrInvalidFile
	}

	cfg, err := decodeConfig(buf.Bytes(), mt.String())
	if err != nil {
		return Upload{}, apperror.Wrap(err, ErrInvalidFile.Code, ErrInvalidFile.Message, ErrInvalidFile.HTTPStatus)
	}
	if cfg.Width > maxDimension || cfg.Height > maxDimension {
		return Upload{}, ErrInvalidFile.WithMessage(
			fmt.Sprintf("Dimensi gambar melebihi batas %dx%d piksel.", maxDimension, maxDimension),
		)
	}

	return Upload{Filename: fh.Filename, MIME: mt.String(), Data: buf.Bytes()}, nil
}

// decodeConfig hanya membaca header, tidak mengalokasikan raster.
func decodeConfig(data []byte, mime string) (image.Config, error) {
	if mime == "image/webp" {
		return webp.DecodeConfig(bytes.NewReader(data))
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	return cfg, err
}
