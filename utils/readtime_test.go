package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateReadTime(t *testing.T) {
	assert.Equal(t, 0, CalculateReadTime(""))
	assert.Equal(t, 0, CalculateReadTime("   "))
	assert.Equal(t, 1, CalculateReadTime("just a few words"))

	// 200 words per minute, so 250 words round up to 2 minutes.
	long := strings.Repeat("word ", 250)
	assert.Equal(t, 2, CalculateReadTime(long))
}

func TestCalculateReadTimeStripsMarkup(t *testing.T) {
	html := "<p>one two three</p><div>four five</div>"
	plain := "one two three four five"
	assert.Equal(t, CalculateReadTime(plain), CalculateReadTime(html))

	// Tags alone carry no words.
	assert.Equal(t, 0, CalculateReadTime("<p></p><br/>"))
}
