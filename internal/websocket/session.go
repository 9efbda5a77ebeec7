package websocket

import (
	"encoding/json"

	"industrial-site-be/pkg/richtext"
	"industrial-site-be/pkg/richtext/editor"
)

// Command is a client instruction for the editor session. Fields other than Op are
// interpreted per operation.
type Command struct {
	Op          string          `json:"op"`
	Document    json.RawMessage `json:"document,omitempty"`
	Placeholder string          `json:"placeholder,omitempty"`
	Path        []int           `json:"path,omitempty"`
	From        int             `json:"from,omitempty"`
	To          int             `json:"to,omitempty"`
	Mark        string          `json:"mark,omitempty"`
	Block       string          `json:"block,omitempty"`
	Level       int             `json:"level,omitempty"`
	List        string          `json:"list,omitempty"`
	Href        string          `json:"href,omitempty"`
	Src         string          `json:"src,omitempty"`
	Alt         string          `json:"alt,omitempty"`
	Text        string          `json:"text,omitempty"`
}

type changeMessage struct {
	Type     string            `json:"type"`
	Document richtext.Document `json:"document"`
	HTML     string            `json:"html"`
}

type stateMessage struct {
	Type        string           `json:"type"`
	Empty       bool             `json:"empty"`
	Placeholder string           `json:"placeholder"`
	Selection   editor.Selection `json:"selection"`
}

type errorMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// EditorSession drives one editor.Surface from client commands. Until a load command arrives
// the surface is unmounted and every command is a no-op.
type EditorSession struct {
	surface *editor.Surface
	render  func(richtext.Document) string
	emit    func([]byte)
}

func NewEditorSession(render func(richtext.Document) string, emit func([]byte)) *EditorSession {
	s := &EditorSession{render: render, emit: emit}
	s.surface = editor.NewSurface(nil, "", s.onChange)
	return s
}

func (s *EditorSession) send(v any) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	s.emit(data)
}

func (s *EditorSession) sendError(message string) {
	s.send(errorMessage{Type: "error", Message: message})
}

func (s *EditorSession) onChange(doc richtext.Document) {
	s.send(changeMessage{Type: "change", Document: doc, HTML: s.render(doc)})
}

// Close unmounts the surface.
func (s *EditorSession) Close() {
	s.surface.Unmount()
}

// Handle applies one raw client message.
func (s *EditorSession) Handle(raw []byte) {
	var cmd Command
	if err := json.Unmarshal(raw, &cmd); err != nil {
		s.sendError("invalid command: " + err.Error())
		return
	}

	switch cmd.Op {
	case "load":
		s.load(cmd)
	case "select":
		s.surface.SetSelection(editor.Selection{Path: cmd.Path, From: cmd.From, To: cmd.To})
	case "toggleMark":
		s.surface.ToggleMark(richtext.MarkType(cmd.Mark))
	case "setBlockType":
		s.surface.SetBlockType(richtext.NodeType(cmd.Block), cmd.Level)
	case "insertList":
		s.surface.InsertList(richtext.NodeType(cmd.List))
	case "insertLink":
		s.surface.InsertLink(cmd.Href)
	case "insertImage":
		s.surface.InsertImage(cmd.Src, cmd.Alt)
	case "insertText":
		s.surface.InsertText(cmd.Text)
	case "hardBreak":
		s.surface.InsertHardBreak()
	case "splitBlock":
		s.surface.SplitBlock()
	default:
		s.sendError("unknown op: " + cmd.Op)
	}
}

func (s *EditorSession) load(cmd Command) {
	doc, err := richtext.Inspect(cmd.Document)
	if err != nil {
		s.sendError("malformed document: " + err.Error())
		return
	}

	s.surface.Unmount()
	s.surface = editor.NewSurface(&doc, cmd.Placeholder, s.onChange)
	s.surface.Mount()

	s.send(stateMessage{
		Type:        "state",
		Empty:       s.surface.IsEmpty(),
		Placeholder: s.surface.Placeholder(),
		Selection:   s.surface.Selection(),
	})
}
