package richtext

import (
	"bytes"
	"encoding/json"
	"math"
	"reflect"
	"strconv"
)

// Document is the root of a rich-text tree.
type Document struct {
	Type    NodeType `json:"type"`
	Content []Node   `json:"content"`
}

// Node is one element of the tree. Container nodes use Content, text runs use Text and Marks.
type Node struct {
	Type    NodeType       `json:"type"`
	Attrs   map[string]any `json:"attrs,omitempty"`
	Content []Node         `json:"content,omitempty"`
	Marks   []Mark         `json:"marks,omitempty"`
	Text    string         `json:"text,omitempty"`
}

// Mark is an inline annotation applied to a text run.
type Mark struct {
	Type  MarkType       `json:"type"`
	Attrs map[string]any `json:"attrs,omitempty"`
}

// EmptyDocument returns a new document with no content.
func EmptyDocument() Document {
	return Document{Type: NodeDoc}
}

// NewDocument builds a document from block nodes.
func NewDocument(blocks ...Node) Document {
	d := EmptyDocument()
	if len(blocks) > 0 {
		d.Content = blocks
	}
	return d
}

func (d Document) MarshalJSON() ([]byte, error) {
	type alias Document
	out := alias(d)
	if out.Type == "" {
		out.Type = NodeDoc
	}
	if out.Content == nil {
		out.Content = []Node{}
	}
	return json.Marshal(out)
}

// IsEmpty reports whether the document has no visible content.
func (d Document) IsEmpty() bool {
	for _, n := range d.Content {
		if !n.isBlank() {
			return false
		}
	}
	return true
}

func (n Node) isBlank() bool {
	switch n.Type {
	case NodeText:
		return n.Text == ""
	case NodeParagraph:
		for _, c := range n.Content {
			if !c.isBlank() {
				return false
			}
		}
		return true
	}
	return false
}

// Equal reports whether two documents serialize identically.
func Equal(a, b Document) bool {
	ja, errA := json.Marshal(a)
	jb, errB := json.Marshal(b)
	if errA != nil || errB != nil {
		return reflect.DeepEqual(a, b)
	}
	return bytes.Equal(ja, jb)
}

// Clone returns a deep copy of the document.
func (d Document) Clone() Document {
	return Document{Type: d.Type, Content: cloneNodes(d.Content)}
}

// Clone returns a deep copy of the node.
func (n Node) Clone() Node {
	out := Node{Type: n.Type, Text: n.Text}
	out.Attrs = cloneAttrs(n.Attrs)
	out.Content = cloneNodes(n.Content)
	if n.Marks != nil {
		out.Marks = make([]Mark, len(n.Marks))
		for i, m := range n.Marks {
			out.Marks[i] = Mark{Type: m.Type, Attrs: cloneAttrs(m.Attrs)}
		}
	}
	return out
}

func cloneNodes(nodes []Node) []Node {
	if nodes == nil {
		return nil
	}
	out := make([]Node, len(nodes))
	for i, c := range nodes {
		out[i] = c.Clone()
	}
	return out
}

func cloneAttrs(attrs map[string]any) map[string]any {
	if attrs == nil {
		return nil
	}
	out := make(map[string]any, len(attrs))
	for k, v := range attrs {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return cloneAttrs(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}

// AttrString returns a string attribute or "".
func (n Node) AttrString(key string) string {
	return attrString(n.Attrs, key)
}

// AttrInt returns an integer attribute. Floats are rounded and numeric strings are parsed.
func (n Node) AttrInt(key string) (int, bool) {
	return attrInt(n.Attrs, key)
}

// AttrString returns a string attribute of the mark or "".
func (m Mark) AttrString(key string) string {
	return attrString(m.Attrs, key)
}

// HasMark reports whether the run carries a mark of type t.
func (n Node) HasMark(t MarkType) bool {
	_, ok := n.Mark(t)
	return ok
}

// Mark returns the first mark of type t.
func (n Node) Mark(t MarkType) (Mark, bool) {
	for _, m := range n.Marks {
		if m.Type == t {
			return m, true
		}
	}
	return Mark{}, false
}

func attrString(attrs map[string]any, key string) string {
	if v, ok := attrs[key].(string); ok {
		return v
	}
	return ""
}

func attrInt(attrs map[string]any, key string) (int, bool) {
	switch v := attrs[key].(type) {
	case int:
		return v, true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case float32:
		return roundInt(float64(v))
	case float64:
		return roundInt(v)
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		return roundInt(f)
	case string:
		i, err := strconv.Atoi(v)
		if err != nil {
			return 0, false
		}
		return i, true
	}
	return 0, false
}

func roundInt(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	if f > math.MaxInt32 {
		return math.MaxInt32, true
	}
	if f < math.MinInt32 {
		return math.MinInt32, true
	}
	return int(math.Round(f)), true
}

// HeadingLevel returns the heading level of n clamped to the supported range.
func HeadingLevel(n Node) int {
	return ClampHeadingLevel(n.AttrInt("level"))
}

// ClampHeadingLevel maps any level to 1..3. A missing level is 1.
func ClampHeadingLevel(level int, ok bool) int {
	if !ok || level < MinHeadingLevel {
		return MinHeadingLevel
	}
	if level > MaxHeadingLevel {
		return MaxHeadingLevel
	}
	return level
}

func Text(s string, marks ...Mark) Node {
	n := Node{Type: NodeText, Text: s}
	if len(marks) > 0 {
		n.Marks = marks
	}
	return n
}

func Paragraph(inline ...Node) Node {
	return container(NodeParagraph, inline)
}

func Heading(level int, inline ...Node) Node {
	n := container(NodeHeading, inline)
	n.Attrs = map[string]any{"level": ClampHeadingLevel(level, true)}
	return n
}

func BulletList(items ...Node) Node {
	return container(NodeBulletList, items)
}

func OrderedList(items ...Node) Node {
	return container(NodeOrderedList, items)
}

func ListItem(blocks ...Node) Node {
	return container(NodeListItem, blocks)
}

func Blockquote(blocks ...Node) Node {
	return container(NodeBlockquote, blocks)
}

func CodeBlock(code string) Node {
	if code == "" {
		return Node{Type: NodeCodeBlock}
	}
	return container(NodeCodeBlock, []Node{Text(code)})
}

func Image(src, alt string) Node {
	attrs := map[string]any{"src": src}
	if alt != "" {
		attrs["alt"] = alt
	}
	return Node{Type: NodeImage, Attrs: attrs}
}

func HardBreak() Node {
	return Node{Type: NodeHardBreak}
}

func HorizontalRule() Node {
	return Node{Type: NodeHorizontalRule}
}

func Bold() Mark      { return Mark{Type: MarkBold} }
func Italic() Mark    { return Mark{Type: MarkItalic} }
func Underline() Mark { return Mark{Type: MarkUnderline} }
func Strike() Mark    { return Mark{Type: MarkStrike} }
func Code() Mark      { return Mark{Type: MarkCode} }

// Link returns a link mark that opens href in a new context.
func Link(href string) Mark {
	return Mark{Type: MarkLink, Attrs: map[string]any{
		"href":   href,
		"target": LinkTarget,
		"rel":    LinkRel,
	}}
}

func container(t NodeType, children []Node) Node {
	n := Node{Type: t}
	if len(children) > 0 {
		n.Content = children
	}
	return n
}
