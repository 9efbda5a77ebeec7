package richtext

import (
	"fmt"
	"html"
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Renderer turns documents into display HTML. It is safe for concurrent use.
type Renderer struct {
	policy *bluemonday.Policy
}

// NewRenderer creates a renderer using the default sanitization policy.
func NewRenderer() *Renderer {
	return &Renderer{policy: NewPolicy()}
}

var defaultRenderer = NewRenderer()

// Render renders doc with the default renderer.
func Render(doc Document) template.HTML {
	return defaultRenderer.Render(doc)
}

// Render returns the sanitized HTML for doc. The empty document renders as "".
func (r *Renderer) Render(doc Document) template.HTML {
	if len(doc.Content) == 0 {
		return ""
	}

	var sb strings.Builder
	for _, node := range doc.Content {
		r.walkNode(node, &sb)
	}
	return template.HTML(r.policy.Sanitize(sb.String()))
}

func (r *Renderer) walkNode(node Node, sb *strings.Builder) {
	switch node.Type {
	case NodeParagraph:
		r.wrap("p", node, sb)

	case NodeHeading:
		r.wrap(fmt.Sprintf("h%d", HeadingLevel(node)), node, sb)

	case NodeBulletList:
		r.wrap("ul", node, sb)

	case NodeOrderedList:
		if start, ok := node.AttrInt("start"); ok && start > 1 {
			fmt.Fprintf(sb, `<ol start="%d">`, start)
			r.walkChildren(node, sb)
			sb.WriteString("</ol>")
			return
		}
		r.wrap("ol", node, sb)

	case NodeListItem:
		r.wrap("li", node, sb)

	case NodeBlockquote:
		r.wrap("blockquote", node, sb)

	case NodeCodeBlock:
		sb.WriteString("<pre><code>")
		sb.WriteString(html.EscapeString(plainNode(node)))
		sb.WriteString("</code></pre>")

	case NodeHorizontalRule:
		sb.WriteString("<hr>")

	case NodeHardBreak:
		sb.WriteString("<br>")

	case NodeImage:
		r.handleImage(node, sb)

	case NodeText:
		r.handleText(node, sb)

	default:
		// Unknown nodes degrade to their own text followed by whatever their children render.
		if node.Text != "" {
			r.handleText(node, sb)
		}
		r.walkChildren(node, sb)
	}
}

func (r *Renderer) wrap(tag string, node Node, sb *strings.Builder) {
	sb.WriteString("<" + tag + ">")
	r.walkChildren(node, sb)
	sb.WriteString("</" + tag + ">")
}

func (r *Renderer) walkChildren(node Node, sb *strings.Builder) {
	for _, child := range node.Content {
		r.walkNode(child, sb)
	}
}

func (r *Renderer) handleImage(node Node, sb *strings.Builder) {
	src := node.AttrString("src")
	if src == "" {
		return
	}
	sb.WriteString(`<img src="` + html.EscapeString(src) + `"`)
	if alt := node.AttrString("alt"); alt != "" {
		sb.WriteString(` alt="` + html.EscapeString(alt) + `"`)
	}
	if title := node.AttrString("title"); title != "" {
		sb.WriteString(` title="` + html.EscapeString(title) + `"`)
	}
	sb.WriteString(">")
}

func (r *Renderer) handleText(node Node, sb *strings.Builder) {
	var closers []string
	for _, t := range markOrder {
		mark, ok := node.Mark(t)
		if !ok {
			continue
		}
		open, close := markTags(mark)
		if open == "" {
			continue
		}
		sb.WriteString(open)
		closers = append(closers, close)
	}

	sb.WriteString(html.EscapeString(node.Text))

	for i := len(closers) - 1; i >= 0; i-- {
		sb.WriteString(closers[i])
	}
}

func markTags(mark Mark) (string, string) {
	switch mark.Type {
	case MarkBold:
		return "<strong>", "</strong>"
	case MarkItalic:
		return "<em>", "</em>"
	case MarkUnderline:
		return "<u>", "</u>"
	case MarkStrike:
		return "<s>", "</s>"
	case MarkCode:
		return "<code>", "</code>"
	case MarkLink:
		href := mark.AttrString("href")
		if href == "" {
			return "", ""
		}
		return fmt.Sprintf(`<a href="%s" target="%s" rel="%s">`, html.EscapeString(href), LinkTarget, LinkRel), "</a>"
	}
	return "", ""
}
