package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Hello World", "hello-world"},
		{"Hello,  World!", "hello-world"},
		{"  Go 1.24 released  ", "go-1-24-released"},
		{"UPPER case", "upper-case"},
		{"already-a-slug", "already-a-slug"},
		{"!!!", ""},
		{"", ""},
		{"trailing punctuation...", "trailing-punctuation"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.input), "input %q", tt.input)
	}
}
