package handlers

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"

	"coursehub/internal/application/usecase"

	"github.com/gin-gonic/gin"
)

type openedFile struct {
	multipart.File
	header *multipart.FileHeader
}

func (f *openedFile) upload() *usecase.Upload {
	return &usecase.Upload{
		Filename:    f.header.Filename,
		ContentType: f.header.Header.Get("Content-Type"),
		Body:        f.File,
	}
}

// formFile returns nil, nil when the field is absent.
func formFile(c *gin.Context, field string) (*openedFile, error) {
	header, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read form file %s: %w", field, err)
	}
	f, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("open form file %s: %w", field, err)
	}
	return &openedFile{File: f, header: header}, nil
}
