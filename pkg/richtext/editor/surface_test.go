package editor

import (
	"testing"

	"industrial-site-be/pkg/richtext"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	calls []richtext.Document
}

func (r *recorder) onChange(doc richtext.Document) {
	r.calls = append(r.calls, doc)
}

func (r *recorder) last(t *testing.T) richtext.Document {
	t.Helper()
	require.NotEmpty(t, r.calls)
	return r.calls[len(r.calls)-1]
}

func mounted(t *testing.T, doc richtext.Document) (*Surface, *recorder) {
	t.Helper()
	rec := &recorder{}
	s := NewSurface(&doc, "Start writing...", rec.onChange)
	s.Mount()
	return s, rec
}

func TestUnmountedSurfaceIgnoresCommands(t *testing.T) {
	rec := &recorder{}
	doc := richtext.NewDocument(richtext.Paragraph(richtext.Text("hello")))
	s := NewSurface(&doc, "", rec.onChange)

	assert.NotPanics(t, func() {
		assert.False(t, s.SetSelection(Selection{Path: []int{0}, From: 0, To: 5}))
		s.ToggleMark(richtext.MarkBold)
		s.SetBlockType(richtext.NodeHeading, 2)
		s.InsertList(richtext.NodeBulletList)
		s.InsertLink("https://example.com")
		s.InsertImage("https://example.com/a.png", "a")
		s.InsertText("x")
		s.InsertHardBreak()
		s.SplitBlock()
	})

	assert.Empty(t, rec.calls)
	assert.False(t, s.Mounted())
	assert.Equal(t, doc, s.Document())
}

func TestNilDocumentStartsEmpty(t *testing.T) {
	rec := &recorder{}
	s := NewSurface(nil, "Start writing...", rec.onChange)

	assert.True(t, s.IsEmpty())
	assert.Equal(t, "Start writing...", s.Placeholder())
	assert.Equal(t, richtext.EmptyDocument(), s.Document())

	s.Mount()
	s.InsertText("First words")

	require.Len(t, rec.calls, 1)
	assert.Equal(t, richtext.NewDocument(richtext.Paragraph(richtext.Text("First words"))), rec.calls[0])
	assert.False(t, s.IsEmpty())
}

func TestToggleMark(t *testing.T) {
	s, rec := mounted(t, richtext.NewDocument(richtext.Paragraph(richtext.Text("Safety first"))))
	require.True(t, s.SetSelection(Selection{Path: []int{0}, From: 0, To: 6}))

	s.ToggleMark(richtext.MarkBold)
	require.Len(t, rec.calls, 1)
	assert.Equal(t, richtext.NewDocument(richtext.Paragraph(
		richtext.Text("Safety", richtext.Bold()),
		richtext.Text(" first"),
	)), rec.last(t))

	s.ToggleMark(richtext.MarkBold)
	require.Len(t, rec.calls, 2)
	assert.Equal(t, richtext.NewDocument(richtext.Paragraph(richtext.Text("Safety first"))), rec.last(t))
}

func TestToggleMarkPartiallyMarkedSelectionAddsMark(t *testing.T) {
	s, rec := mounted(t, richtext.NewDocument(richtext.Paragraph(
		richtext.Text("ab", richtext.Italic()),
		richtext.Text("cd"),
	)))
	s.SetSelection(Selection{Path: []int{0}, From: 1, To: 4})

	s.ToggleMark(richtext.MarkItalic)

	require.Len(t, rec.calls, 1)
	assert.Equal(t, richtext.NewDocument(richtext.Paragraph(richtext.Text("abcd", richtext.Italic()))), rec.last(t))
}

func TestToggleMarkWithCursorIsNoop(t *testing.T) {
	s, rec := mounted(t, richtext.NewDocument(richtext.Paragraph(richtext.Text("text"))))
	s.SetSelection(Selection{Path: []int{0}, From: 2, To: 2})

	s.ToggleMark(richtext.MarkUnderline)
	s.ToggleMark(richtext.MarkLink)

	assert.Empty(t, rec.calls)
}

func TestSetBlockType(t *testing.T) {
	s, rec := mounted(t, richtext.NewDocument(richtext.Paragraph(richtext.Text("Title"))))

	s.SetBlockType(richtext.NodeHeading, 2)
	require.Len(t, rec.calls, 1)
	assert.Equal(t, richtext.NewDocument(richtext.Heading(2, richtext.Text("Title"))), rec.last(t))

	s.SetBlockType(richtext.NodeHeading, 2)
	assert.Len(t, rec.calls, 1, "same block type must not notify")

	s.SetBlockType(richtext.NodeHeading, 9)
	require.Len(t, rec.calls, 2)
	assert.Equal(t, 3, richtext.HeadingLevel(rec.last(t).Content[0]))

	s.SetBlockType(richtext.NodeParagraph, 0)
	require.Len(t, rec.calls, 3)
	assert.Equal(t, richtext.NewDocument(richtext.Paragraph(richtext.Text("Title"))), rec.last(t))
}

func TestInsertList(t *testing.T) {
	s, rec := mounted(t, richtext.NewDocument(richtext.Paragraph(richtext.Text("Scaffolding"))))

	s.InsertList(richtext.NodeBulletList)
	require.Len(t, rec.calls, 1)
	assert.Equal(t, richtext.NewDocument(richtext.BulletList(
		richtext.ListItem(richtext.Paragraph(richtext.Text("Scaffolding"))),
	)), rec.last(t))
	assert.Equal(t, []int{0, 0, 0}, s.Selection().Path)

	s.InsertList(richtext.NodeBulletList)
	assert.Len(t, rec.calls, 1, "same list kind must not notify")

	s.InsertList(richtext.NodeOrderedList)
	require.Len(t, rec.calls, 2)
	assert.Equal(t, richtext.NewDocument(richtext.OrderedList(
		richtext.ListItem(richtext.Paragraph(richtext.Text("Scaffolding"))),
	)), rec.last(t))
}

func TestInsertLinkRequiresSelection(t *testing.T) {
	original := richtext.NewDocument(richtext.Paragraph(richtext.Text("Contact us")))
	s, rec := mounted(t, original)
	s.SetSelection(Selection{Path: []int{0}, From: 3, To: 3})

	s.InsertLink("https://example.com/contact")

	assert.Empty(t, rec.calls)
	assert.Equal(t, original, s.Document())
}

func TestInsertLink(t *testing.T) {
	s, rec := mounted(t, richtext.NewDocument(richtext.Paragraph(richtext.Text("Contact us today"))))
	s.SetSelection(Selection{Path: []int{0}, From: 0, To: 10})

	s.InsertLink("https://example.com/contact")
	require.Len(t, rec.calls, 1)
	assert.Equal(t, richtext.NewDocument(richtext.Paragraph(
		richtext.Text("Contact us", richtext.Link("https://example.com/contact")),
		richtext.Text(" today"),
	)), rec.last(t))

	s.InsertLink("javascript:alert(1)")
	assert.Len(t, rec.calls, 1)

	s.InsertLink("")
	require.Len(t, rec.calls, 2)
	assert.Equal(t, richtext.NewDocument(richtext.Paragraph(richtext.Text("Contact us today"))), rec.last(t))
}

func TestInsertImage(t *testing.T) {
	s, rec := mounted(t, richtext.NewDocument(
		richtext.Paragraph(richtext.Text("Before")),
		richtext.Paragraph(richtext.Text("After")),
	))

	s.InsertImage("", "nothing")
	assert.Empty(t, rec.calls)

	s.InsertImage("https://cdn.example.com/crane.jpg", "Crane lift")
	require.Len(t, rec.calls, 1)
	assert.Equal(t, richtext.NewDocument(
		richtext.Paragraph(richtext.Text("Before")),
		richtext.Image("https://cdn.example.com/crane.jpg", "Crane lift"),
		richtext.Paragraph(richtext.Text("After")),
	), rec.last(t))
}

func TestInsertTextInheritsMarks(t *testing.T) {
	s, rec := mounted(t, richtext.NewDocument(richtext.Paragraph(
		richtext.Text("bold", richtext.Bold()),
		richtext.Text(" plain"),
	)))
	s.SetSelection(Selection{Path: []int{0}, From: 4, To: 4})

	s.InsertText("er")

	require.Len(t, rec.calls, 1)
	assert.Equal(t, richtext.NewDocument(richtext.Paragraph(
		richtext.Text("bolder", richtext.Bold()),
		richtext.Text(" plain"),
	)), rec.last(t))
	assert.Equal(t, Selection{Path: []int{0}, From: 6, To: 6}, s.Selection())
}

func TestInsertTextDoesNotExtendLinks(t *testing.T) {
	s, rec := mounted(t, richtext.NewDocument(richtext.Paragraph(
		richtext.Text("site", richtext.Link("https://example.com")),
	)))
	s.SetSelection(Selection{Path: []int{0}, From: 4, To: 4})

	s.InsertText("!")

	assert.Equal(t, richtext.NewDocument(richtext.Paragraph(
		richtext.Text("site", richtext.Link("https://example.com")),
		richtext.Text("!"),
	)), rec.last(t))
}

func TestSplitBlock(t *testing.T) {
	s, rec := mounted(t, richtext.NewDocument(richtext.Heading(1, richtext.Text("HeadBody"))))
	s.SetSelection(Selection{Path: []int{0}, From: 4, To: 4})

	s.SplitBlock()
	require.Len(t, rec.calls, 1)
	assert.Equal(t, richtext.NewDocument(
		richtext.Heading(1, richtext.Text("Head")),
		richtext.Heading(1, richtext.Text("Body")),
	), rec.last(t))
	assert.Equal(t, []int{1}, s.Selection().Path)

	s.SetSelection(Selection{Path: []int{1}, From: 4, To: 4})
	s.SplitBlock()
	require.Len(t, rec.calls, 2)
	assert.Equal(t, richtext.NewDocument(
		richtext.Heading(1, richtext.Text("Head")),
		richtext.Heading(1, richtext.Text("Body")),
		richtext.Paragraph(),
	), rec.last(t))
}

func TestSplitBlockInListCreatesItem(t *testing.T) {
	s, rec := mounted(t, richtext.NewDocument(richtext.BulletList(
		richtext.ListItem(richtext.Paragraph(richtext.Text("onetwo"))),
	)))
	s.SetSelection(Selection{Path: []int{0, 0, 0}, From: 3, To: 3})

	s.SplitBlock()
	s.InsertText("2: ")

	require.Len(t, rec.calls, 2)
	assert.Equal(t, richtext.NewDocument(richtext.BulletList(
		richtext.ListItem(richtext.Paragraph(richtext.Text("one"))),
		richtext.ListItem(richtext.Paragraph(richtext.Text("2: two"))),
	)), rec.last(t))
}

func TestCallbackReceivesIndependentCopies(t *testing.T) {
	s, rec := mounted(t, richtext.NewDocument(richtext.Paragraph(richtext.Text("abc"))))
	s.SetSelection(Selection{Path: []int{0}, From: 3, To: 3})

	s.InsertText("d")
	emitted := rec.last(t)
	emitted.Content[0].Content[0].Text = "tampered"

	assert.Equal(t, "abcd", s.Document().Content[0].Content[0].Text)
}

func TestSetSelectionRejectsNonTextblocks(t *testing.T) {
	s, _ := mounted(t, richtext.NewDocument(
		richtext.Image("https://example.com/a.png", ""),
		richtext.Paragraph(richtext.Text("abc")),
	))

	assert.False(t, s.SetSelection(Selection{Path: []int{0}}))
	assert.False(t, s.SetSelection(Selection{Path: []int{5}}))
	assert.True(t, s.SetSelection(Selection{Path: []int{1}, From: 10, To: -2}))
	assert.Equal(t, Selection{Path: []int{1}, From: 0, To: 3}, s.Selection())
}

func TestMountSelectsFirstTextblock(t *testing.T) {
	s, _ := mounted(t, richtext.NewDocument(
		richtext.Image("https://example.com/a.png", ""),
		richtext.BulletList(richtext.ListItem(richtext.Paragraph(richtext.Text("item")))),
	))

	assert.Equal(t, Selection{Path: []int{1, 0, 0}}, s.Selection())
}
