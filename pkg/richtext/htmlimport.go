package richtext

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"golang.org/x/net/html"
)

// FromHTML converts an HTML fragment or page into a normalized document.
// Tags outside the vocabulary are unwrapped and their text kept.
func FromHTML(r io.Reader) (Document, error) {
	rootNode, err := html.Parse(r)
	if err != nil {
		return EmptyDocument(), fmt.Errorf("failed to parse html: %w", err)
	}

	body := findElementByTagName(rootNode, "body")
	if body == nil {
		return EmptyDocument(), nil
	}
	return Normalize(NewDocument(convertChildren(body, nil, false)...)), nil
}

func convertChildren(parent *html.Node, marks []Mark, inline bool) []Node {
	var out []Node
	for el := parent.FirstChild; el != nil; el = el.NextSibling {
		out = append(out, convertNode(el, marks, inline)...)
	}
	return out
}

func convertNode(el *html.Node, marks []Mark, inline bool) []Node {
	switch el.Type {
	case html.TextNode:
		text := collapseSpace(el.Data)
		if strings.TrimSpace(text) == "" && !inline {
			return nil
		}
		return []Node{Text(text, copyMarks(marks)...)}
	case html.ElementNode:
	default:
		return nil
	}

	switch el.Data {
	case "p":
		return []Node{Paragraph(convertChildren(el, marks, true)...)}
	case "h1", "h2", "h3", "h4", "h5", "h6":
		return []Node{Heading(int(el.Data[1]-'0'), convertChildren(el, marks, true)...)}
	case "ul":
		return []Node{BulletList(convertChildren(el, marks, false)...)}
	case "ol":
		list := OrderedList(convertChildren(el, marks, false)...)
		if start := getAttrValue("start", el.Attr); start != "" {
			list.Attrs = map[string]any{"start": start}
		}
		return []Node{list}
	case "li":
		return []Node{ListItem(convertChildren(el, marks, false)...)}
	case "blockquote":
		return []Node{Blockquote(convertChildren(el, marks, false)...)}
	case "pre":
		return []Node{CodeBlock(textContent(el))}
	case "hr":
		return []Node{HorizontalRule()}
	case "br":
		return []Node{HardBreak()}
	case "img":
		return []Node{Image(getAttrValue("src", el.Attr), getAttrValue("alt", el.Attr))}
	case "strong", "b":
		return convertChildren(el, withMark(marks, Bold()), true)
	case "em", "i":
		return convertChildren(el, withMark(marks, Italic()), true)
	case "u":
		return convertChildren(el, withMark(marks, Underline()), true)
	case "s", "strike", "del":
		return convertChildren(el, withMark(marks, Strike()), true)
	case "code":
		return convertChildren(el, withMark(marks, Code()), true)
	case "a":
		if href := getAttrValue("href", el.Attr); href != "" {
			return convertChildren(el, withMark(marks, Link(href)), true)
		}
		return convertChildren(el, marks, true)
	case "script", "style", "head", "template", "noscript":
		return nil
	default:
		return convertChildren(el, marks, inline)
	}
}

func withMark(marks []Mark, m Mark) []Mark {
	out := copyMarks(marks)
	return append(out, m)
}

func copyMarks(marks []Mark) []Mark {
	if len(marks) == 0 {
		return nil
	}
	out := make([]Mark, len(marks))
	copy(out, marks)
	return out
}

func textContent(root *html.Node) string {
	var sb strings.Builder
	iterNodes(root, func(child *html.Node) bool {
		if child.Type == html.TextNode {
			sb.WriteString(child.Data)
		}
		return false
	})
	return strings.TrimRight(sb.String(), "\n")
}

func collapseSpace(s string) string {
	var sb strings.Builder
	space := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			if !space {
				sb.WriteByte(' ')
			}
			space = true
			continue
		}
		space = false
		sb.WriteRune(r)
	}
	return sb.String()
}

func findElementByTagName(rootNode *html.Node, tagName string) *html.Node {
	var el *html.Node
	iterNodes(rootNode, func(child *html.Node) bool {
		if el != nil {
			return true
		}
		if child.Type == html.ElementNode && child.Data == tagName {
			el = child
			return true
		}
		return false
	})
	return el
}

func iterNodes(node *html.Node, f func(child *html.Node) bool) {
	if f(node) {
		return
	}
	for p := node.FirstChild; p != nil; p = p.NextSibling {
		iterNodes(p, f)
	}
}

func getAttrValue(key string, attrs []html.Attribute) string {
	for _, attr := range attrs {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}
