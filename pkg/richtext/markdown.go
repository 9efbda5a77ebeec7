package richtext

import (
	"fmt"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// Markdown renders doc and converts the result to Markdown.
func Markdown(doc Document) (string, error) {
	rendered := Render(doc)
	if rendered == "" {
		return "", nil
	}
	md, err := htmltomarkdown.ConvertString(string(rendered))
	if err != nil {
		return "", fmt.Errorf("failed to convert document to markdown: %w", err)
	}
	return strings.TrimSpace(md), nil
}
