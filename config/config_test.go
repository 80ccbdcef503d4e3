package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("BLOGIFY_TEST_VAR", "set")

	assert.Equal(t, "set", GetEnv("BLOGIFY_TEST_VAR", "fallback"))
	assert.Equal(t, "fallback", GetEnv("BLOGIFY_TEST_MISSING", "fallback"))
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("BLOGIFY_TEST_PORT", "2525")
	t.Setenv("BLOGIFY_TEST_BAD_PORT", "not-a-port")

	assert.Equal(t, 2525, GetEnvInt("BLOGIFY_TEST_PORT", 587))
	assert.Equal(t, 587, GetEnvInt("BLOGIFY_TEST_BAD_PORT", 587))
	assert.Equal(t, 587, GetEnvInt("BLOGIFY_TEST_MISSING", 587))
}
