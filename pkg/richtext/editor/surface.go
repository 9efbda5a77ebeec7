// Package editor implements an editable document surface driven by structured commands.
//
// A Surface may be created before its engine is mounted. Until Mount is called every
// command is ignored, so callers can forward input without tracking the mount state.
// A Surface is not safe for concurrent use; it is owned by a single input loop.
package editor

import (
	"industrial-site-be/pkg/richtext"
)

// ChangeFunc receives the complete document after every change.
type ChangeFunc func(doc richtext.Document)

// Surface is an editable view over a document.
type Surface struct {
	initial     richtext.Document
	placeholder string
	onChange    ChangeFunc
	engine      *engine
}

type engine struct {
	doc richtext.Document
	sel Selection
}

// NewSurface creates an unmounted surface. A nil doc starts from the empty document.
func NewSurface(doc *richtext.Document, placeholder string, onChange ChangeFunc) *Surface {
	initial := richtext.EmptyDocument()
	if doc != nil {
		initial = richtext.Normalize(*doc)
	}
	return &Surface{
		initial:     initial,
		placeholder: placeholder,
		onChange:    onChange,
	}
}

// Mount initializes the engine. Mounting twice keeps the existing engine.
func (s *Surface) Mount() {
	if s.engine != nil {
		return
	}
	s.engine = &engine{
		doc: s.initial.Clone(),
		sel: firstTextblock(s.initial),
	}
}

// Unmount drops the engine. The last document becomes the initial value for a later Mount.
func (s *Surface) Unmount() {
	if s.engine == nil {
		return
	}
	s.initial = s.engine.doc
	s.engine = nil
}

func (s *Surface) Mounted() bool {
	return s.engine != nil
}

func (s *Surface) Placeholder() string {
	return s.placeholder
}

// Document returns a copy of the current document.
func (s *Surface) Document() richtext.Document {
	if s.engine == nil {
		return s.initial.Clone()
	}
	return s.engine.doc.Clone()
}

// IsEmpty reports whether the placeholder should be shown.
func (s *Surface) IsEmpty() bool {
	if s.engine == nil {
		return s.initial.IsEmpty()
	}
	return s.engine.doc.IsEmpty()
}

// Selection returns the current selection, or the zero value when unmounted.
func (s *Surface) Selection() Selection {
	if s.engine == nil {
		return Selection{}
	}
	return s.engine.sel.clone()
}

// SetSelection moves the selection. Selections that do not address a textblock are ignored.
func (s *Surface) SetSelection(sel Selection) bool {
	if s.engine == nil {
		return false
	}
	block := resolveTextblock(&s.engine.doc, sel.Path)
	if block == nil {
		return false
	}
	s.engine.sel = sel.clamped(inlineLen(block.Content))
	return true
}

// apply runs edit against a copy of the current state. onChange fires once when the
// resulting document differs from the current one.
func (s *Surface) apply(edit func(doc *richtext.Document, sel *Selection) bool) {
	if s.engine == nil {
		return
	}

	next := s.engine.doc.Clone()
	sel := s.engine.sel.clone()
	if !edit(&next, &sel) {
		return
	}

	if richtext.Equal(next, s.engine.doc) {
		s.engine.sel = sel
		return
	}
	s.engine.doc = next
	s.engine.sel = sel

	if s.onChange != nil {
		s.onChange(next.Clone())
	}
}
