package handler

import (
	"io"
	"strconv"

	"heritageloom/internal/domain/entity"
	"heritageloom/internal/rest"
	"heritageloom/pkg/errors"

	"github.com/gorilla/schema"
	"github.com/labstack/echo/v4"
)

// formDecoder maps posted multipart values onto the catalog form structs by
// their schema tags.
var formDecoder = newFormDecoder()

func newFormDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}

func paramID(c echo.Context) (entity.ID, error) {
	raw := c.Param("id")
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n <= 0 {
		return 0, errors.BadRequest("invalid id: "+raw, err)
	}
	return entity.ID(n), nil
}

// bindForm decodes the multipart (or urlencoded) fields of the request into
// dst and returns every uploaded file, field names preserved, bytes
// untouched.
func bindForm(c echo.Context, dst interface{}) ([]rest.File, error) {
	req := c.Request()
	if err := req.ParseMultipartForm(32 << 20); err != nil {
		// fall back to urlencoded bodies for file-less submissions
		if err := req.ParseForm(); err != nil {
			return nil, errors.BadRequest("malformed form body", err)
		}
	}

	values := req.Form
	if req.MultipartForm != nil {
		values = req.MultipartForm.Value
	}
	if err := formDecoder.Decode(dst, values); err != nil {
		return nil, errors.BadRequest("malformed form fields", err)
	}

	if req.MultipartForm == nil {
		return nil, nil
	}
	var files []rest.File
	for field, headers := range req.MultipartForm.File {
		for _, header := range headers {
			src, err := header.Open()
			if err != nil {
				return nil, errors.BadRequest("unreadable file "+field, err)
			}
			data, err := io.ReadAll(src)
			src.Close()
			if err != nil {
				return nil, errors.BadRequest("unreadable file "+field, err)
			}
			files = append(files, rest.File{Field: field, Name: header.Filename, Data: data})
		}
	}
	return files, nil
}
