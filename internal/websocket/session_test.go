package websocket

import (
	"encoding/json"
	"testing"

	"industrial-site-be/pkg/richtext"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type outbox struct {
	messages []map[string]any
}

func (o *outbox) emit(data []byte) {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err == nil {
		o.messages = append(o.messages, m)
	}
}

func (o *outbox) reset() {
	o.messages = nil
}

func newSession() (*EditorSession, *outbox) {
	out := &outbox{}
	render := func(doc richtext.Document) string { return string(richtext.Render(doc)) }
	return NewEditorSession(render, out.emit), out
}

func loadCommand(t *testing.T, doc richtext.Document, placeholder string) []byte {
	t.Helper()
	raw, err := json.Marshal(doc)
	require.NoError(t, err)
	cmd, err := json.Marshal(Command{Op: "load", Document: raw, Placeholder: placeholder})
	require.NoError(t, err)
	return cmd
}

func TestEditorSessionIgnoresCommandsBeforeLoad(t *testing.T) {
	session, out := newSession()

	session.Handle([]byte(`{"op":"insertText","text":"hello"}`))
	session.Handle([]byte(`{"op":"splitBlock"}`))
	session.Handle([]byte(`{"op":"toggleMark","mark":"bold"}`))

	assert.Empty(t, out.messages)
}

func TestEditorSessionLoadReportsState(t *testing.T) {
	session, out := newSession()

	session.Handle(loadCommand(t, richtext.EmptyDocument(), "Describe the service"))

	require.Len(t, out.messages, 1)
	assert.Equal(t, "state", out.messages[0]["type"])
	assert.Equal(t, true, out.messages[0]["empty"])
	assert.Equal(t, "Describe the service", out.messages[0]["placeholder"])
}

func TestEditorSessionEmitsOneChangePerEdit(t *testing.T) {
	session, out := newSession()
	doc := richtext.NewDocument(richtext.Paragraph(richtext.Text("Hello")))
	session.Handle(loadCommand(t, doc, ""))
	out.reset()

	session.Handle([]byte(`{"op":"select","path":[0],"from":0,"to":5}`))
	assert.Empty(t, out.messages, "moving the selection is not a change")

	session.Handle([]byte(`{"op":"toggleMark","mark":"bold"}`))
	require.Len(t, out.messages, 1)
	assert.Equal(t, "change", out.messages[0]["type"])
	assert.Contains(t, out.messages[0]["html"], "<strong>Hello</strong>")

	out.reset()
	session.Handle([]byte(`{"op":"select","path":[0],"from":5,"to":5}`))
	session.Handle([]byte(`{"op":"insertText","text":" world"}`))
	require.Len(t, out.messages, 1)
	assert.Contains(t, out.messages[0]["html"], "world")
}

func TestEditorSessionNoopCommandDoesNotEmit(t *testing.T) {
	session, out := newSession()
	session.Handle(loadCommand(t, richtext.NewDocument(richtext.Paragraph(richtext.Text("Hello"))), ""))
	out.reset()

	// A cursor selection cannot be marked.
	session.Handle([]byte(`{"op":"toggleMark","mark":"bold"}`))
	assert.Empty(t, out.messages)
}

func TestEditorSessionErrors(t *testing.T) {
	session, out := newSession()

	session.Handle([]byte(`not json`))
	session.Handle([]byte(`{"op":"explode"}`))
	session.Handle([]byte(`{"op":"load","document":[1,2]}`))

	require.Len(t, out.messages, 3)
	for _, m := range out.messages {
		assert.Equal(t, "error", m["type"])
		assert.NotEmpty(t, m["message"])
	}
}

func TestEditorSessionCloseUnmounts(t *testing.T) {
	session, out := newSession()
	session.Handle(loadCommand(t, richtext.NewDocument(richtext.Paragraph(richtext.Text("Hello"))), ""))
	session.Close()
	out.reset()

	session.Handle([]byte(`{"op":"insertText","text":"!"}`))
	assert.Empty(t, out.messages)
}
