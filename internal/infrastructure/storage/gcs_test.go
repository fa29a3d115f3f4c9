package storage

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublicURLEscapesKey(t *testing.T) {
	got := PublicURL("https://storage.googleapis.com", "resumes", "1700000000000-my cv.pdf")
	assert.Equal(t, "https://storage.googleapis.com/resumes/1700000000000-my%20cv.pdf", got)
}

func TestContentTypeForKey(t *testing.T) {
	assert.Equal(t, "image/png", ContentTypeForKey("u_profile_1.PNG"))
	assert.Equal(t, "application/pdf", ContentTypeForKey("cv.pdf"))
	assert.Equal(t, "application/octet-stream", ContentTypeForKey("noext"))
}

func TestBucketByCategory(t *testing.T) {
	s := &GCSStore{buckets: Buckets{Profile: "p", Course: "c"}}

	name, err := s.bucket(CategoryProfile)
	assert.NoError(t, err)
	assert.Equal(t, "p", name)

	_, err = s.bucket(CategoryResume)
	assert.Error(t, err, "empty bucket name")

	_, err = s.bucket("other")
	assert.Error(t, err)
}

func TestUnavailableAlwaysFails(t *testing.T) {
	var store BlobStore = Unavailable{Err: assert.AnError}
	_, err := store.Upload(context.Background(), CategoryCourse, "k", "", strings.NewReader("x"))
	assert.ErrorIs(t, err, assert.AnError)
}
