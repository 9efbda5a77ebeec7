package service

import (
	"context"
	"strings"

	"industrial-site-be/internal/dto"
	"industrial-site-be/internal/pkg/apperror"
	"industrial-site-be/pkg/richtext"
	"industrial-site-be/pkg/slug"
)

// IDocumentService backs the editor tooling: preview rendering, HTML import and slug preview.
type IDocumentService interface {
	Preview(ctx context.Context, req *dto.DocumentPreviewRequest) (*dto.DocumentPreviewResponse, error)
	ImportHTML(ctx context.Context, req *dto.ImportHTMLRequest) (*dto.DocumentPreviewResponse, error)
	SlugPreview(ctx context.Context, title string) (*dto.SlugResponse, error)
}

type documentService struct {
	presenter *Presenter
}

func NewDocumentService(presenter *Presenter) IDocumentService {
	return &documentService{presenter: presenter}
}

func (s *documentService) preview(doc richtext.Document) *dto.DocumentPreviewResponse {
	return &dto.DocumentPreviewResponse{
		Document: doc,
		HTML:     s.presenter.HTML(doc),
		Text:     richtext.PlainText(doc),
		Empty:    doc.IsEmpty(),
	}
}

func (s *documentService) Preview(ctx context.Context, req *dto.DocumentPreviewRequest) (*dto.DocumentPreviewResponse, error) {
	doc, err := parseDocument(req.Document, "document")
	if err != nil {
		return nil, err
	}
	return s.preview(doc), nil
}

func (s *documentService) ImportHTML(ctx context.Context, req *dto.ImportHTMLRequest) (*dto.DocumentPreviewResponse, error) {
	doc, err := richtext.FromHTML(strings.NewReader(req.HTML))
	if err != nil {
		return nil, apperror.Validation("html could not be parsed", map[string]string{"html": err.Error()})
	}
	return s.preview(doc), nil
}

func (s *documentService) SlugPreview(ctx context.Context, title string) (*dto.SlugResponse, error) {
	derived := slug.Derive(title)
	if derived == "" {
		return nil, apperror.Validation("slug cannot be derived from title", map[string]string{
			"title": "must contain letters or digits",
		})
	}
	return &dto.SlugResponse{Title: title, Slug: derived}, nil
}
