package richtext

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderEmptyDocument(t *testing.T) {
	assert.Equal(t, "", string(Render(EmptyDocument())))
	assert.Equal(t, "", string(Render(Normalize(nil))))
	assert.Equal(t, "", string(Render(Normalize(`{"type":"doc","content":[]}`))))
}

func TestRenderNodes(t *testing.T) {
	tests := []struct {
		name string
		doc  Document
		want []string
	}{
		{
			name: "paragraph with marks",
			doc:  NewDocument(Paragraph(Text("plain "), Text("strong", Bold()), Text("slanted", Italic()))),
			want: []string{"<p>plain <strong>strong</strong><em>slanted</em></p>"},
		},
		{
			name: "mark nesting is independent of mark order",
			doc:  NewDocument(Paragraph(Text("both", Italic(), Bold()))),
			want: []string{"<strong><em>both</em></strong>"},
		},
		{
			name: "underline strike code",
			doc:  NewDocument(Paragraph(Text("u", Underline()), Text("s", Strike()), Text("c", Code()))),
			want: []string{"<u>u</u>", "<s>s</s>", "<code>c</code>"},
		},
		{
			name: "headings",
			doc:  NewDocument(Heading(1, Text("One")), Heading(2, Text("Two")), Heading(3, Text("Three"))),
			want: []string{"<h1>One</h1>", "<h2>Two</h2>", "<h3>Three</h3>"},
		},
		{
			name: "lists",
			doc: NewDocument(
				BulletList(ListItem(Paragraph(Text("a")))),
				OrderedList(ListItem(Paragraph(Text("b")))),
			),
			want: []string{"<ul><li><p>a</p></li></ul>", "<ol><li><p>b</p></li></ol>"},
		},
		{
			name: "blockquote and code block",
			doc:  NewDocument(Blockquote(Paragraph(Text("quoted"))), CodeBlock("x < y")),
			want: []string{"<blockquote><p>quoted</p></blockquote>", "<pre><code>x &lt; y</code></pre>"},
		},
		{
			name: "image",
			doc:  NewDocument(Image("https://cdn.example.com/a.png", "Flare stack")),
			want: []string{`src="https://cdn.example.com/a.png"`, `alt="Flare stack"`, "<img"},
		},
		{
			name: "text is escaped",
			doc:  NewDocument(Paragraph(Text("<script>alert(1)</script>"))),
			want: []string{"&lt;script&gt;"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := string(Render(tt.doc))
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
			assert.NotContains(t, out, "<script>")
		})
	}
}

func TestRenderHeadingLevelMatchesNormalizer(t *testing.T) {
	raw := `{"type":"doc","content":[{"type":"heading","attrs":{"level":5},"content":[{"type":"text","text":"Deep"}]}]}`

	var unnormalized Document
	require.NoError(t, json.Unmarshal([]byte(raw), &unnormalized))

	assert.Equal(t, "<h3>Deep</h3>", string(Render(unnormalized)))
	assert.Equal(t, "<h3>Deep</h3>", string(Render(Normalize(raw))))
}

func TestRenderLinksOpenInNewContextWithoutOpener(t *testing.T) {
	doc := NewDocument(Paragraph(Text("site", Link("https://example.com"))))
	out := string(Render(doc))

	assert.Contains(t, out, `href="https://example.com"`)
	assert.Contains(t, out, `target="_blank"`)
	assert.Contains(t, out, "noopener")
	assert.Contains(t, out, "noreferrer")
	assert.Contains(t, out, ">site</a>")
}

func TestRenderLinkPolicyAppliesToStoredAttrs(t *testing.T) {
	// A stored link mark whose attrs ask for a same-window, opener-granting link still renders safely.
	doc := NewDocument(Paragraph(Node{Type: NodeText, Text: "x", Marks: []Mark{{
		Type:  MarkLink,
		Attrs: map[string]any{"href": "/careers", "target": "_self", "rel": "opener"},
	}}}))
	out := string(Render(doc))

	assert.Contains(t, out, `target="_blank"`)
	assert.Contains(t, out, "noopener")
	assert.Contains(t, out, "noreferrer")
	assert.NotContains(t, out, "_self")
}

func TestRenderDropsScriptableURLs(t *testing.T) {
	doc := NewDocument(Paragraph(Node{Type: NodeText, Text: "click", Marks: []Mark{{
		Type:  MarkLink,
		Attrs: map[string]any{"href": "javascript:alert(1)"},
	}}}))
	out := string(Render(doc))

	assert.NotContains(t, out, "javascript")
	assert.Contains(t, out, "click")
}

func TestRenderUnknownNodeDegradesToText(t *testing.T) {
	stored := `{"type":"doc","content":[
		{"type":"paragraph","content":[{"type":"text","text":"intro"}]},
		{"type":"futureWidget","attrs":{"mode":"x"},"text":"legacy note"},
		{"type":"panel","content":[{"type":"paragraph","content":[{"type":"text","text":"nested text"}]}]}
	]}`

	out := string(Render(Normalize(stored)))

	assert.Contains(t, out, "intro")
	assert.Contains(t, out, "legacy note")
	assert.Contains(t, out, "<p>nested text</p>")
}

func TestRenderIsIdempotent(t *testing.T) {
	stored := sampleDocument()
	first := Render(Normalize(stored))
	second := Render(Normalize(stored))

	assert.Equal(t, first, second)
	assert.NotEmpty(t, first)
	assert.Equal(t, sampleDocument(), stored, "render must not mutate its input")
}

func TestRenderHardBreakAndRule(t *testing.T) {
	out := string(Render(NewDocument(Paragraph(Text("a"), HardBreak(), Text("b")), HorizontalRule())))

	assert.True(t, strings.Contains(out, "<br>") || strings.Contains(out, "<br/>"), out)
	assert.True(t, strings.Contains(out, "<hr>") || strings.Contains(out, "<hr/>"), out)
}

func TestMarkdown(t *testing.T) {
	md, err := Markdown(NewDocument(Heading(2, Text("Safety")), Paragraph(Text("Zero", Bold()), Text(" incidents"))))
	require.NoError(t, err)

	assert.Contains(t, md, "## Safety")
	assert.Contains(t, md, "**Zero** incidents")

	empty, err := Markdown(EmptyDocument())
	require.NoError(t, err)
	assert.Empty(t, empty)
}
