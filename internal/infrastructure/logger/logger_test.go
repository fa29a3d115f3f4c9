package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedactMasksSecretKeys(t *testing.T) {
	in := []interface{}{"user_id", "u1", "access_token", "abc", "Password", "hunter2", "dangling"}
	out := redact(in)

	assert.Equal(t, []interface{}{"user_id", "u1", "access_token", "[REDACTED]", "Password", "[REDACTED]", "dangling"}, out)
	assert.Equal(t, "abc", in[3], "input slice is not modified")
}

func TestNewModes(t *testing.T) {
	for _, mode := range []string{"production", "development"} {
		l, err := New(mode)
		assert.NoError(t, err)
		l.With("service", "test").Info("hello", "token", "x")
	}
}
