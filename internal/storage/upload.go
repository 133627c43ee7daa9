package storage

import (
	"io"
	"mime/multipart"
	"net/http"

	"github.com/washapp/carwash-api/internal/validation"
)

const MaxUploadBytes = 2 * 1024 * 1024

// DetectContentType normaliza image/jpg para image/jpeg
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
}

// ReadImageUpload lê um arquivo multipart validando tamanho (2 MB) e tipo
// (JPEG/PNG/JPG/GIF) pelo conteúdo, não pela extensão.
func ReadImageUpload(fh *multipart.FileHeader) ([]byte, error) {
	if fh.Size > MaxUploadBytes {
		return nil, &validation.Error{Message: "Ukuran file maksimal 2 MB"}
	}

	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, MaxUploadBytes+1))
	if err != nil {
		return nil, err
	}
	if len(data) > MaxUploadBytes {
		return nil, &validation.Error{Message: "Ukuran file maksimal 2 MB"}
	}

	if !allowedImageTypes[http.DetectContentType(data)] {
		return nil, &validation.Error{Message: "Hanya file gambar (JPG, PNG, GIF) yang diperbolehkan"}
	}

	return data, nil
}
