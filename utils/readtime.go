package utils

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// wordsPerMinute is the reading speed assumed for the readTime estimate.
const wordsPerMinute = 200

// CalculateReadTime estimates reading time in minutes for a blog description.
// Descriptions come from a rich-text editor and usually contain HTML, so the
// markup is stripped before counting words. Falls back to the raw text when
// parsing fails.
func CalculateReadTime(description string) int {
	if strings.TrimSpace(description) == "" {
		return 0
	}

	text := description
	if doc, err := goquery.NewDocumentFromReader(strings.NewReader(description)); err == nil {
		text = doc.Text()
	}

	words := len(strings.Fields(text))
	if words == 0 {
		return 0
	}
	return (words + wordsPerMinute - 1) / wordsPerMinute
}
