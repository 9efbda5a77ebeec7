package richtext

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromHTML(t *testing.T) {
	tests := []struct {
		name string
		html string
		want Document
	}{
		{
			name: "paragraph with marks and link",
			html: `<p>Call <strong>now</strong> or <a href="https://example.com/contact">write</a></p>`,
			want: NewDocument(Paragraph(
				Text("Call "),
				Text("now", Bold()),
				Text(" or "),
				Text("write", Link("https://example.com/contact")),
			)),
		},
		{
			name: "headings above three are clamped",
			html: `<h2>Markets</h2><h5>Fine print</h5>`,
			want: NewDocument(Heading(2, Text("Markets")), Heading(3, Text("Fine print"))),
		},
		{
			name: "lists with bare text items",
			html: "<ul>\n  <li>Refining</li>\n  <li><p>Chemicals</p></li>\n</ul>",
			want: NewDocument(BulletList(
				ListItem(Paragraph(Text("Refining"))),
				ListItem(Paragraph(Text("Chemicals"))),
			)),
		},
		{
			name: "unknown wrappers are unwrapped and scripts removed",
			html: `<div class="hero"><section><p>Kept</p></section><script>alert(1)</script></div>`,
			want: NewDocument(Paragraph(Text("Kept"))),
		},
		{
			name: "loose text becomes a paragraph",
			html: `Just text with <em>emphasis</em>`,
			want: NewDocument(Paragraph(Text("Just text with "), Text("emphasis", Italic()))),
		},
		{
			name: "images and rules",
			html: `<img src="/uploads/1.png" alt="Crane"><hr>`,
			want: NewDocument(Image("/uploads/1.png", "Crane"), HorizontalRule()),
		},
		{
			name: "images inside paragraphs become blocks",
			html: `<p>Before<img src="/uploads/2.png">After</p>`,
			want: NewDocument(Paragraph(Text("Before")), Image("/uploads/2.png", ""), Paragraph(Text("After"))),
		},
		{
			name: "preformatted code",
			html: "<pre><code>line 1\nline 2\n</code></pre>",
			want: NewDocument(CodeBlock("line 1\nline 2")),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromHTML(strings.NewReader(tt.html))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFromHTMLEmpty(t *testing.T) {
	got, err := FromHTML(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, EmptyDocument(), got)
}

func TestPlainTextAndExcerpt(t *testing.T) {
	doc := NewDocument(
		Heading(1, Text("Turnarounds")),
		Paragraph(Text("Planned shutdown "), Text("execution", Bold()), Text(" across the Gulf Coast.")),
		BulletList(ListItem(Paragraph(Text("Scaffolding")))),
		Image("/x.png", "ignored"),
	)

	assert.Equal(t, "Turnarounds\nPlanned shutdown execution across the Gulf Coast.\nScaffolding", PlainText(doc))
	assert.Equal(t, "", PlainText(EmptyDocument()))

	assert.Equal(t, "Turnarounds Planned…", Excerpt(doc, 24))
	assert.Equal(t, "Turnarounds Planned shutdown execution across the Gulf Coast. Scaffolding", Excerpt(doc, 500))
	assert.Equal(t, "", Excerpt(EmptyDocument(), 10))
}
