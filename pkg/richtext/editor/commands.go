package editor

import (
	"strings"
	"unicode/utf8"

	"industrial-site-be/pkg/richtext"
)

var toggleableMarks = map[richtext.MarkType]bool{
	richtext.MarkBold:      true,
	richtext.MarkItalic:    true,
	richtext.MarkUnderline: true,
	richtext.MarkStrike:    true,
	richtext.MarkCode:      true,
}

// ToggleMark adds mark to every text run in the selection, or removes it when every run
// already carries it. A cursor selection is left alone.
func (s *Surface) ToggleMark(mark richtext.MarkType) {
	if !toggleableMarks[mark] {
		return
	}
	s.apply(func(doc *richtext.Document, sel *Selection) bool {
		block := resolveTextblock(doc, sel.Path)
		if block == nil || block.Type == richtext.NodeCodeBlock {
			return false
		}
		*sel = sel.clamped(inlineLen(block.Content))
		if sel.Empty() {
			return false
		}

		before, middle, after := splitRange(block.Content, sel.From, sel.To)
		all := true
		for _, n := range middle {
			if n.Type == richtext.NodeText && !n.HasMark(mark) {
				all = false
				break
			}
		}
		for i := range middle {
			if middle[i].Type != richtext.NodeText {
				continue
			}
			if all {
				middle[i].Marks = withoutMark(middle[i].Marks, mark)
			} else {
				middle[i].Marks = withMark(middle[i].Marks, richtext.Mark{Type: mark})
			}
		}
		block.Content = join(before, middle, after)
		return true
	})
}

// SetBlockType turns the selected textblock into a paragraph or a heading of the given level.
func (s *Surface) SetBlockType(blockType richtext.NodeType, level int) {
	if blockType != richtext.NodeParagraph && blockType != richtext.NodeHeading {
		return
	}
	s.apply(func(doc *richtext.Document, sel *Selection) bool {
		block := ensureTextblock(doc, sel)
		if block == nil {
			return false
		}
		block.Type = blockType
		if blockType == richtext.NodeHeading {
			block.Attrs = map[string]any{"level": richtext.ClampHeadingLevel(level, true)}
		} else {
			block.Attrs = nil
		}
		return true
	})
}

// InsertList wraps the selected block in a list of kind. A block already inside a list of the
// other kind switches that list; a block already inside a list of the same kind is unchanged.
func (s *Surface) InsertList(kind richtext.NodeType) {
	if !kind.IsList() {
		return
	}
	s.apply(func(doc *richtext.Document, sel *Selection) bool {
		if ensureTextblock(doc, sel) == nil {
			return false
		}
		path := sel.Path

		if len(path) >= 3 {
			item := resolve(doc, path[:len(path)-1])
			list := resolve(doc, path[:len(path)-2])
			if item != nil && list != nil && item.Type == richtext.NodeListItem && list.Type.IsList() {
				if list.Type == kind {
					return false
				}
				list.Type = kind
				return true
			}
		}

		siblings := container(doc, path)
		if siblings == nil {
			return false
		}
		i := path[len(path)-1]
		block := (*siblings)[i]
		(*siblings)[i] = richtext.Node{
			Type:    kind,
			Content: []richtext.Node{richtext.ListItem(block)},
		}
		sel.Path = append(append([]int(nil), path...), 0, 0)
		return true
	})
}

// InsertLink applies a link to the selected text. An empty href removes links from the
// selection. Nothing happens without selected text.
func (s *Surface) InsertLink(href string) {
	href = strings.TrimSpace(href)
	if href != "" && !richtext.IsSafeLinkURL(href) {
		return
	}
	s.apply(func(doc *richtext.Document, sel *Selection) bool {
		block := resolveTextblock(doc, sel.Path)
		if block == nil || block.Type == richtext.NodeCodeBlock {
			return false
		}
		*sel = sel.clamped(inlineLen(block.Content))
		if sel.Empty() {
			return false
		}

		before, middle, after := splitRange(block.Content, sel.From, sel.To)
		for i := range middle {
			if middle[i].Type != richtext.NodeText {
				continue
			}
			if href == "" {
				middle[i].Marks = withoutMark(middle[i].Marks, richtext.MarkLink)
			} else {
				middle[i].Marks = withMark(middle[i].Marks, richtext.Link(href))
			}
		}
		block.Content = join(before, middle, after)
		return true
	})
}

// InsertImage places an image block after the selected block.
func (s *Surface) InsertImage(src, alt string) {
	src = strings.TrimSpace(src)
	if src == "" || !richtext.IsSafeImageURL(src) {
		return
	}
	image := richtext.Image(src, strings.TrimSpace(alt))
	s.apply(func(doc *richtext.Document, sel *Selection) bool {
		if resolveTextblock(doc, sel.Path) == nil {
			doc.Content = append(doc.Content, image)
			return true
		}
		siblings := container(doc, sel.Path)
		if siblings == nil {
			return false
		}
		i := sel.Path[len(sel.Path)-1] + 1
		*siblings = append((*siblings)[:i], append([]richtext.Node{image}, (*siblings)[i:]...)...)
		return true
	})
}

// InsertText replaces the selection with text carrying the marks of the preceding character.
func (s *Surface) InsertText(text string) {
	s.apply(func(doc *richtext.Document, sel *Selection) bool {
		block := ensureTextblock(doc, sel)
		if block == nil || (text == "" && sel.Empty()) {
			return false
		}

		var marks []richtext.Mark
		if block.Type != richtext.NodeCodeBlock {
			marks = marksAt(block.Content, sel.From)
		}
		before, _, after := splitRange(block.Content, sel.From, sel.To)
		block.Content = join(before, []richtext.Node{richtext.Text(text, marks...)}, after)

		cursor := sel.From + utf8.RuneCountInString(text)
		sel.From, sel.To = cursor, cursor
		return true
	})
}

// InsertHardBreak replaces the selection with a line break.
func (s *Surface) InsertHardBreak() {
	s.apply(func(doc *richtext.Document, sel *Selection) bool {
		block := ensureTextblock(doc, sel)
		if block == nil {
			return false
		}
		lineBreak := richtext.HardBreak()
		if block.Type == richtext.NodeCodeBlock {
			lineBreak = richtext.Text("\n")
		}
		before, _, after := splitRange(block.Content, sel.From, sel.To)
		block.Content = join(before, []richtext.Node{lineBreak}, after)
		sel.From++
		sel.To = sel.From
		return true
	})
}

// SplitBlock ends the selected block at the cursor and moves the remainder into a new block.
// Inside a list the remainder starts a new list item. Splitting a heading at its end starts
// a paragraph.
func (s *Surface) SplitBlock() {
	s.apply(func(doc *richtext.Document, sel *Selection) bool {
		block := ensureTextblock(doc, sel)
		if block == nil {
			return false
		}

		before, _, after := splitRange(block.Content, sel.From, sel.To)
		head := block.Clone()
		head.Content = mergeRuns(before)
		tail := richtext.Node{Type: block.Type, Attrs: block.Clone().Attrs, Content: mergeRuns(after)}
		if block.Type == richtext.NodeHeading && len(tail.Content) == 0 {
			tail = richtext.Paragraph()
		}

		path := sel.Path
		i := path[len(path)-1]
		if len(path) >= 2 {
			item := resolve(doc, path[:len(path)-1])
			if item != nil && item.Type == richtext.NodeListItem {
				items := container(doc, path[:len(path)-1])
				if items == nil {
					return false
				}
				j := path[len(path)-2]
				rest := append([]richtext.Node{tail}, item.Content[i+1:]...)
				item.Content = append(item.Content[:i:i], head)
				newItem := richtext.ListItem(rest...)
				*items = append((*items)[:j+1], append([]richtext.Node{newItem}, (*items)[j+1:]...)...)

				next := append([]int(nil), path[:len(path)-2]...)
				sel.Path = append(next, j+1, 0)
				sel.From, sel.To = 0, 0
				return true
			}
		}

		siblings := container(doc, path)
		if siblings == nil {
			return false
		}
		(*siblings)[i] = head
		*siblings = append((*siblings)[:i+1], append([]richtext.Node{tail}, (*siblings)[i+1:]...)...)

		next := append([]int(nil), path[:len(path)-1]...)
		sel.Path = append(next, i+1)
		sel.From, sel.To = 0, 0
		return true
	})
}
