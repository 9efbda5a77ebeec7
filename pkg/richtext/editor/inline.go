package editor

import (
	"reflect"
	"unicode/utf8"

	"industrial-site-be/pkg/richtext"
)

func inlineSize(n richtext.Node) int {
	if n.Type == richtext.NodeText {
		return utf8.RuneCountInString(n.Text)
	}
	return 1
}

func inlineLen(nodes []richtext.Node) int {
	size := 0
	for _, n := range nodes {
		size += inlineSize(n)
	}
	return size
}

// splitInline cuts inline content at offset, splitting a text run when needed.
func splitInline(nodes []richtext.Node, at int) (left, right []richtext.Node) {
	pos := 0
	for _, n := range nodes {
		size := inlineSize(n)
		switch {
		case pos+size <= at:
			left = append(left, n)
		case pos >= at:
			right = append(right, n)
		default:
			runes := []rune(n.Text)
			k := at - pos
			l, r := n.Clone(), n.Clone()
			l.Text = string(runes[:k])
			r.Text = string(runes[k:])
			left = append(left, l)
			right = append(right, r)
		}
		pos += size
	}
	return left, right
}

func splitRange(nodes []richtext.Node, from, to int) (before, middle, after []richtext.Node) {
	before, rest := splitInline(nodes, from)
	middle, after = splitInline(rest, to-from)
	return before, middle, after
}

func join(parts ...[]richtext.Node) []richtext.Node {
	var out []richtext.Node
	for _, p := range parts {
		out = append(out, p...)
	}
	return mergeRuns(out)
}

// mergeRuns drops empty text runs and joins neighbours that carry the same marks.
func mergeRuns(nodes []richtext.Node) []richtext.Node {
	var out []richtext.Node
	for _, n := range nodes {
		if n.Type == richtext.NodeText && n.Text == "" {
			continue
		}
		if last := len(out) - 1; last >= 0 && n.Type == richtext.NodeText &&
			out[last].Type == richtext.NodeText && sameMarks(out[last].Marks, n.Marks) {
			out[last].Text += n.Text
			continue
		}
		out = append(out, n)
	}
	return out
}

func sameMarks(a, b []richtext.Mark) bool {
	if len(a) != len(b) {
		return false
	}
	for _, m := range a {
		found := false
		for _, o := range b {
			if m.Type == o.Type && reflect.DeepEqual(m.Attrs, o.Attrs) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func withoutMark(marks []richtext.Mark, t richtext.MarkType) []richtext.Mark {
	var out []richtext.Mark
	for _, m := range marks {
		if m.Type != t {
			out = append(out, m)
		}
	}
	return out
}

func withMark(marks []richtext.Mark, m richtext.Mark) []richtext.Mark {
	return append(withoutMark(marks, m.Type), m)
}

// marksAt returns the marks a character typed at offset inherits from the character before it.
// Links do not extend past their end.
func marksAt(nodes []richtext.Node, offset int) []richtext.Mark {
	pos := 0
	for _, n := range nodes {
		size := inlineSize(n)
		if offset > pos && offset <= pos+size {
			if n.Type != richtext.NodeText {
				return nil
			}
			marks := append([]richtext.Mark(nil), n.Marks...)
			if offset == pos+size {
				marks = withoutMark(marks, richtext.MarkLink)
			}
			if len(marks) == 0 {
				return nil
			}
			return marks
		}
		pos += size
	}
	return nil
}
