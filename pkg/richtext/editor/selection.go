package editor

import (
	"industrial-site-be/pkg/richtext"
)

// Selection addresses a range inside one textblock. Path indexes from the document root
// down to the textblock; From and To are offsets into its inline content where every
// text rune and every non-text inline node counts as one position.
type Selection struct {
	Path []int `json:"path"`
	From int   `json:"from"`
	To   int   `json:"to"`
}

// Empty reports whether the selection is a cursor.
func (s Selection) Empty() bool {
	return s.From == s.To
}

func (s Selection) clone() Selection {
	out := Selection{From: s.From, To: s.To}
	if s.Path != nil {
		out.Path = append([]int(nil), s.Path...)
	}
	return out
}

func (s Selection) clamped(size int) Selection {
	out := s.clone()
	if out.From > out.To {
		out.From, out.To = out.To, out.From
	}
	out.From = clamp(out.From, 0, size)
	out.To = clamp(out.To, 0, size)
	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// resolve returns a pointer to the node at path inside doc.
func resolve(doc *richtext.Document, path []int) *richtext.Node {
	if len(path) == 0 {
		return nil
	}
	nodes := doc.Content
	var node *richtext.Node
	for _, i := range path {
		if i < 0 || i >= len(nodes) {
			return nil
		}
		node = &nodes[i]
		nodes = node.Content
	}
	return node
}

func resolveTextblock(doc *richtext.Document, path []int) *richtext.Node {
	node := resolve(doc, path)
	if node == nil || !node.Type.IsTextblock() {
		return nil
	}
	return node
}

// container returns the slice holding the last element of path.
func container(doc *richtext.Document, path []int) *[]richtext.Node {
	if len(path) == 1 {
		return &doc.Content
	}
	parent := resolve(doc, path[:len(path)-1])
	if parent == nil {
		return nil
	}
	return &parent.Content
}

// firstTextblock places a cursor at the start of the first textblock in document order.
func firstTextblock(doc richtext.Document) Selection {
	var walk func(nodes []richtext.Node, prefix []int) []int
	walk = func(nodes []richtext.Node, prefix []int) []int {
		for i, n := range nodes {
			path := append(append([]int(nil), prefix...), i)
			if n.Type.IsTextblock() {
				return path
			}
			if found := walk(n.Content, path); found != nil {
				return found
			}
		}
		return nil
	}
	return Selection{Path: walk(doc.Content, nil)}
}

// ensureTextblock resolves the selected textblock. An empty document gains an empty
// paragraph so typing into a fresh editor works.
func ensureTextblock(doc *richtext.Document, sel *Selection) *richtext.Node {
	if block := resolveTextblock(doc, sel.Path); block != nil {
		*sel = sel.clamped(inlineLen(block.Content))
		return block
	}
	if len(doc.Content) != 0 {
		return nil
	}
	doc.Content = []richtext.Node{richtext.Paragraph()}
	*sel = Selection{Path: []int{0}}
	return &doc.Content[0]
}
