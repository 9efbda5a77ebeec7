package commands

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"industrial-site-be/pkg/richtext"
	"industrial-site-be/pkg/slug"
)

var ErrMalformedDocument = errors.New("document is malformed")

// SlugCmd implements the 'slug' command.
type SlugCmd struct {
	Title []string `arg:"" help:"Title words"`
}

func (c *SlugCmd) Run(g *Global) error {
	s := slug.Derive(strings.Join(c.Title, " "))
	if s == "" {
		return errors.New("title produces an empty slug")
	}
	fmt.Fprintln(g.Out, s)
	return nil
}

// DocCmd groups the document subcommands.
type DocCmd struct {
	Check      DocCheckCmd      `cmd:"" help:"Report whether a stored document is malformed and what normalization repairs"`
	Render     DocRenderCmd     `cmd:"" help:"Render a document as HTML, Markdown or plain text"`
	ImportHTML DocImportHTMLCmd `cmd:"" name:"import-html" help:"Convert an HTML fragment into a document"`
}

// DocCheckCmd implements 'doc check'.
type DocCheckCmd struct {
	File string `arg:"" help:"Document JSON file, or - for stdin"`
}

func (c *DocCheckCmd) Run(g *Global) error {
	data, err := readDocumentFile(c.File)
	if err != nil {
		return err
	}

	doc, err := richtext.Inspect(json.RawMessage(data))
	if err != nil {
		fmt.Fprintf(g.Out, "malformed: %v\n", err)
		fmt.Fprintln(g.Out, "the document would be replaced by the empty document")
		return ErrMalformedDocument
	}

	var stored richtext.Document
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null")) {
		// Inspect already accepted the bytes, so this cannot fail.
		_ = json.Unmarshal(trimmed, &stored)
	} else {
		stored = richtext.EmptyDocument()
	}

	if richtext.Equal(stored, doc) {
		fmt.Fprintln(g.Out, "ok: document is well-formed")
		return nil
	}

	fmt.Fprintln(g.Out, "repaired: normalization changes the document to")
	return writeJSON(g.Out, doc)
}

// DocRenderCmd implements 'doc render'.
type DocRenderCmd struct {
	File   string `arg:"" help:"Document JSON file, or - for stdin"`
	Format string `short:"f" enum:"html,markdown,text" default:"html" help:"Output format (html, markdown, text)"`
}

func (c *DocRenderCmd) Run(g *Global) error {
	data, err := readDocumentFile(c.File)
	if err != nil {
		return err
	}
	doc := richtext.Normalize(json.RawMessage(data))

	switch c.Format {
	case "markdown":
		md, err := richtext.Markdown(doc)
		if err != nil {
			return err
		}
		fmt.Fprintln(g.Out, md)
	case "text":
		fmt.Fprintln(g.Out, richtext.PlainText(doc))
	default:
		fmt.Fprintln(g.Out, string(richtext.Render(doc)))
	}
	return nil
}

// DocImportHTMLCmd implements 'doc import-html'.
type DocImportHTMLCmd struct {
	File string `arg:"" help:"HTML file, or - for stdin"`
}

func (c *DocImportHTMLCmd) Run(g *Global) error {
	data, err := readDocumentFile(c.File)
	if err != nil {
		return err
	}
	doc, err := richtext.FromHTML(bytes.NewReader(data))
	if err != nil {
		return err
	}
	return writeJSON(g.Out, doc)
}
