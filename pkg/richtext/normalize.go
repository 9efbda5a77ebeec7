package richtext

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrMalformed is wrapped by every error Inspect reports.
var ErrMalformed = errors.New("malformed document")

const maxDepth = 128

// Normalize returns a well-formed document for any candidate value.
// Candidates that cannot be repaired become the empty document.
func Normalize(candidate any) Document {
	doc, _ := Inspect(candidate)
	return doc
}

// Inspect is Normalize that also reports why a candidate was replaced by the empty document.
// The returned document is always usable, even when err is non-nil.
func Inspect(candidate any) (doc Document, err error) {
	defer func() {
		if r := recover(); r != nil {
			doc = EmptyDocument()
			err = fmt.Errorf("%w: %v", ErrMalformed, r)
		}
	}()

	raw, err := decodeCandidate(candidate)
	if err != nil {
		return EmptyDocument(), err
	}
	if raw == nil {
		return EmptyDocument(), nil
	}
	return normalizeDocument(*raw)
}

func decodeCandidate(candidate any) (*Document, error) {
	switch v := candidate.(type) {
	case nil:
		return nil, nil
	case Document:
		return &v, nil
	case *Document:
		return v, nil
	case json.RawMessage:
		return unmarshalDocument(v)
	case []byte:
		return unmarshalDocument(v)
	case string:
		return unmarshalDocument([]byte(v))
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		return unmarshalDocument(b)
	}
}

func unmarshalDocument(b []byte) (*Document, error) {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil, nil
	}
	var d Document
	if err := json.Unmarshal(b, &d); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return &d, nil
}

func normalizeDocument(d Document) (Document, error) {
	if d.Type != NodeDoc {
		return EmptyDocument(), fmt.Errorf("%w: root type %q", ErrMalformed, d.Type)
	}
	content, err := normalizeChildren(d.Content, NodeDoc, 1)
	if err != nil {
		return EmptyDocument(), err
	}
	return Document{Type: NodeDoc, Content: content}, nil
}

func normalizeChildren(children []Node, parent NodeType, depth int) ([]Node, error) {
	if depth > maxDepth {
		return nil, fmt.Errorf("%w: nesting deeper than %d", ErrMalformed, maxDepth)
	}

	var out, pending []Node
	flush := func() {
		if len(pending) == 0 {
			return
		}
		if parent.IsList() {
			out = append(out, ListItem(Paragraph(pending...)))
		} else {
			out = append(out, Paragraph(pending...))
		}
		pending = nil
	}

	children, err := spliceNestedDocs(children, depth)
	if err != nil {
		return nil, err
	}

	for _, child := range children {
		if child.Type == "" {
			return nil, fmt.Errorf("%w: node without type under %q", ErrMalformed, parent)
		}
		n, keep, err := normalizeNode(child, depth)
		if err != nil {
			return nil, err
		}
		if !keep {
			continue
		}

		if !parent.IsTextblock() {
			if pieces := liftImages(n); pieces != nil {
				flush()
				if parent.IsList() {
					out = append(out, ListItem(pieces...))
				} else {
					out = append(out, pieces...)
				}
				continue
			}
		}

		switch {
		case n.Type.IsInline() && acceptsBlocks(parent):
			pending = append(pending, n)
		case AllowedIn(n.Type, parent):
			flush()
			out = append(out, n)
		case parent == NodeCodeBlock:
			if s := plainNode(n); s != "" {
				out = append(out, Text(s))
			}
		case parent.IsTextblock():
			out = append(out, inlineDescendants(n)...)
		case parent.IsList():
			flush()
			out = append(out, ListItem(n))
		case n.Type == NodeListItem:
			flush()
			out = append(out, n.Content...)
		default:
			flush()
			out = append(out, n)
		}
	}
	flush()

	if parent == NodeCodeBlock {
		for i := range out {
			out[i].Marks = nil
		}
	}
	return out, nil
}

// spliceNestedDocs replaces every doc node below the root with its children.
func spliceNestedDocs(children []Node, depth int) ([]Node, error) {
	nested := false
	for _, c := range children {
		if c.Type == NodeDoc {
			nested = true
			break
		}
	}
	if !nested {
		return children, nil
	}
	if depth > maxDepth {
		return nil, fmt.Errorf("%w: nesting deeper than %d", ErrMalformed, maxDepth)
	}

	out := make([]Node, 0, len(children))
	for _, c := range children {
		if c.Type != NodeDoc {
			out = append(out, c)
			continue
		}
		inner, err := spliceNestedDocs(c.Content, depth+1)
		if err != nil {
			return nil, err
		}
		out = append(out, inner...)
	}
	return out, nil
}

// liftImages splits a paragraph or heading around the images it holds so that each image
// becomes a block of its own. It returns nil when there is nothing to lift.
func liftImages(n Node) []Node {
	if n.Type != NodeParagraph && n.Type != NodeHeading {
		return nil
	}

	var out, run []Node
	lifted := false
	flush := func() {
		if len(run) == 0 {
			return
		}
		out = append(out, Node{Type: n.Type, Attrs: canonicalAttrs(cloneAttrs(n.Attrs)), Content: run})
		run = nil
	}
	for _, c := range n.Content {
		if c.Type != NodeImage {
			run = append(run, c)
			continue
		}
		lifted = true
		flush()
		out = append(out, c)
	}
	if !lifted {
		return nil
	}
	flush()
	return out
}

// normalizeNode repairs a single node and its subtree. keep is false when the node carries
// nothing renderable and should be dropped.
func normalizeNode(n Node, depth int) (Node, bool, error) {
	out := Node{Type: n.Type}

	if n.Type == NodeText {
		if n.Text == "" {
			return Node{}, false, nil
		}
		out.Text = n.Text
		out.Marks = normalizeMarks(n.Marks)
		return out, true, nil
	}

	if !n.Type.IsKnown() {
		out.Attrs = canonicalAttrs(cloneAttrs(n.Attrs))
		out.Text = n.Text
		out.Marks = normalizeMarks(n.Marks)
		content, err := normalizeChildren(n.Content, n.Type, depth+1)
		if err != nil {
			return Node{}, false, err
		}
		out.Content = content
		return out, true, nil
	}

	attrs := cloneAttrs(n.Attrs)
	switch n.Type {
	case NodeHeading:
		if attrs == nil {
			attrs = map[string]any{}
		}
		attrs["level"] = HeadingLevel(n)
	case NodeImage:
		src := strings.TrimSpace(n.AttrString("src"))
		if src == "" || !safeURL(src, true) {
			return Node{}, false, nil
		}
		attrs["src"] = src
		for _, key := range []string{"alt", "title"} {
			if _, ok := attrs[key].(string); !ok {
				delete(attrs, key)
			}
		}
	case NodeOrderedList:
		if _, present := attrs["start"]; present {
			if start, ok := n.AttrInt("start"); ok && start >= 1 {
				attrs["start"] = start
			} else {
				delete(attrs, "start")
			}
		}
	}
	out.Attrs = canonicalAttrs(attrs)

	if n.Type.IsLeaf() {
		return out, true, nil
	}
	content, err := normalizeChildren(n.Content, n.Type, depth+1)
	if err != nil {
		return Node{}, false, err
	}
	out.Content = content
	return out, true, nil
}

func normalizeMarks(marks []Mark) []Mark {
	if len(marks) == 0 {
		return nil
	}
	var out []Mark
	seen := make(map[MarkType]bool, len(marks))
	for _, m := range marks {
		if !m.Type.IsKnown() || seen[m.Type] {
			continue
		}
		attrs := cloneAttrs(m.Attrs)
		if m.Type == MarkLink {
			href := strings.TrimSpace(m.AttrString("href"))
			if href == "" || !safeURL(href, false) {
				continue
			}
			attrs["href"] = href
		}
		seen[m.Type] = true
		out = append(out, Mark{Type: m.Type, Attrs: canonicalAttrs(attrs)})
	}
	return out
}

func acceptsBlocks(parent NodeType) bool {
	switch parent {
	case NodeDoc, NodeListItem, NodeBlockquote, NodeBulletList, NodeOrderedList:
		return true
	}
	return false
}

func canonicalAttrs(attrs map[string]any) map[string]any {
	if len(attrs) == 0 {
		return nil
	}
	return attrs
}

// inlineDescendants flattens a block into the inline nodes it contains. Images are kept
// so the enclosing container can lift them back to block level.
func inlineDescendants(n Node) []Node {
	if n.Type.IsInline() || n.Type == NodeImage {
		return []Node{n}
	}
	var out []Node
	for _, c := range n.Content {
		out = append(out, inlineDescendants(c)...)
	}
	if len(out) == 0 && n.Text != "" {
		out = append(out, Text(n.Text))
	}
	return out
}

func safeURL(raw string, image bool) bool {
	if strings.IndexFunc(raw, unicode.IsControl) >= 0 {
		return false
	}
	switch urlScheme(raw) {
	case "", "http", "https":
		return true
	case "mailto", "tel":
		return !image
	case "data":
		return image && strings.HasPrefix(strings.ToLower(raw), "data:image/")
	}
	return false
}

func urlScheme(raw string) string {
	for i, r := range raw {
		switch {
		case r == ':':
			return strings.ToLower(raw[:i])
		case r == '/' || r == '?' || r == '#':
			return ""
		case i == 0 && !isASCIILetter(r):
			return ""
		case !isASCIILetter(r) && !(r >= '0' && r <= '9') && r != '+' && r != '-' && r != '.':
			return ""
		}
	}
	return ""
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// IsSafeLinkURL reports whether raw may be used as a link target.
func IsSafeLinkURL(raw string) bool {
	return safeURL(raw, false)
}

// IsSafeImageURL reports whether raw may be used as an image source.
func IsSafeImageURL(raw string) bool {
	return safeURL(raw, true)
}
