package usecase

import (
	"io"
	"math/rand/v2"
	"strings"
)

// Upload is a file received from a multipart form.
type Upload struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

// fileExt returns the text after the last dot, or the whole name when there
// is no dot.
func fileExt(name string) string {
	return name[strings.LastIndex(name, ".")+1:]
}

const base36 = "abcdefghijklmnopqrstuvwxyz0123456789"

func randomSuffix(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = base36[rand.IntN(len(base36))]
	}
	return string(b)
}
