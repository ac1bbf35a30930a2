package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/rpupo63/portfolio-cms-backend/errs"
	"github.com/rpupo63/portfolio-cms-backend/services"
)

// Asset bounds enforced before any upload leaves the process.
const (
	maxImageSize = 5 << 20   // 5MB
	maxVideoSize = 100 << 20 // 100MB

	// memory threshold for multipart parsing; larger parts spill to disk
	multipartMemory = 32 << 20
)

var (
	allowedImageTypes = []string{"image/jpeg", "image/png", "image/webp"}
	allowedVideoTypes = []string{"video/mp4", "video/webm"}
)

// formFile is one validated file field pulled out of a multipart request.
type formFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// parseMultipart parses the request's multipart body. Must be called once
// before formValue/formFileField.
func parseMultipart(r *http.Request) error {
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		return errs.NewBadRequestError("malformed multipart body")
	}
	return nil
}

// formValue returns the trimmed value of a text field.
func formValue(r *http.Request, key string) string {
	return strings.TrimSpace(r.FormValue(key))
}

// formIntValue returns the integer value of a text field, or fallback if
// the field is absent or not numeric.
func formIntValue(r *http.Request, key string, fallback int) int {
	v := formValue(r, key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// formFileField extracts one file field, enforcing the size bound and the
// MIME allow-list before any bytes reach the blob store. A missing or
// empty field returns (nil, nil): file fields are optional unless the
// handler says otherwise.
func formFileField(r *http.Request, key string, maxSize int64, allowedTypes []string) (*formFile, error) {
	file, header, err := r.FormFile(key)
	if err == http.ErrMissingFile {
		return nil, nil
	}
	if err != nil {
		return nil, errs.NewBadRequestError(fmt.Sprintf("could not read file field %s", key))
	}
	defer file.Close()

	if header.Size == 0 {
		return nil, nil
	}
	if header.Size > maxSize {
		return nil, errs.NewPayloadTooLargeError(key, maxSize)
	}

	contentType := header.Header.Get("Content-Type")
	allowed := false
	for _, t := range allowedTypes {
		if contentType == t {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, errs.NewUnsupportedMediaTypeError(contentType, allowedTypes)
	}

	// header.Size bounds the read; the extra byte guards a lying header
	data, err := io.ReadAll(io.LimitReader(file, maxSize+1))
	if err != nil {
		return nil, errs.NewBadRequestError(fmt.Sprintf("could not read file field %s", key))
	}
	if int64(len(data)) > maxSize {
		return nil, errs.NewPayloadTooLargeError(key, maxSize)
	}

	return &formFile{
		Filename:    header.Filename,
		ContentType: contentType,
		Data:        data,
	}, nil
}

// uploadFormFile sends a validated file to the blob store and returns
// its public URL.
func uploadFormFile(r *http.Request, uploader services.Uploader, prefix string, f *formFile) (string, error) {
	url, err := uploader.Upload(r.Context(), prefix, f.Filename, f.ContentType, bytes.NewReader(f.Data))
	if err != nil {
		return "", errs.NewUploadError("upload to "+prefix, err)
	}
	return url, nil
}

// decodeJSON reads and unmarshals a JSON request body.
func decodeJSON(r *http.Request, dst any) error {
	bodyBytes, err := io.ReadAll(r.Body)
	if err != nil {
		return errs.NewBadRequestError("failed to read request body")
	}
	if err := json.Unmarshal(bodyBytes, dst); err != nil {
		return errs.NewInvalidJSONError(err)
	}
	return nil
}
