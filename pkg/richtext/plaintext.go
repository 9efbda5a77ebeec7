package richtext

import (
	"strings"
)

// PlainText returns the text of the document with one line per textblock.
func PlainText(doc Document) string {
	var b strings.Builder
	for _, n := range doc.Content {
		writePlain(&b, n)
	}
	return strings.TrimSpace(b.String())
}

// Excerpt returns at most max runes of the document text on a single line,
// cut at a word boundary and suffixed with an ellipsis when truncated.
func Excerpt(doc Document, max int) string {
	text := strings.Join(strings.Fields(PlainText(doc)), " ")
	runes := []rune(text)
	if max <= 0 || len(runes) <= max {
		return text
	}
	cut := string(runes[:max])
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, " ,.;:") + "…"
}

func plainNode(n Node) string {
	var b strings.Builder
	writePlain(&b, n)
	return b.String()
}

func writePlain(b *strings.Builder, n Node) {
	switch n.Type {
	case NodeText:
		b.WriteString(n.Text)
	case NodeHardBreak:
		b.WriteByte('\n')
	case NodeImage, NodeHorizontalRule:
	default:
		b.WriteString(n.Text)
		for _, c := range n.Content {
			writePlain(b, c)
		}
		if n.Type.IsTextblock() {
			b.WriteByte('\n')
		}
	}
}
