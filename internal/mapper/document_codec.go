package mapper

import (
	"encoding/json"

	"industrial-site-be/internal/pkg/logger"
	"industrial-site-be/internal/pkg/metrics"
	"industrial-site-be/pkg/richtext"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// DocumentCodec moves documents between storage columns and richtext.Document. A stored
// document that fails structural validation is replaced by the empty document, logged and
// counted so that a bad row never breaks a page.
type DocumentCodec struct {
	logger  logger.ILogger
	metrics *metrics.Registry
}

func NewDocumentCodec(log logger.ILogger, m *metrics.Registry) *DocumentCodec {
	return &DocumentCodec{logger: log, metrics: m}
}

func (c *DocumentCodec) Encode(doc richtext.Document) datatypes.JSON {
	b, err := json.Marshal(doc)
	if err != nil {
		b, _ = json.Marshal(richtext.EmptyDocument())
	}
	return datatypes.JSON(b)
}

func (c *DocumentCodec) EncodeOptional(doc *richtext.Document) datatypes.JSON {
	if doc == nil {
		return nil
	}
	return c.Encode(*doc)
}

func (c *DocumentCodec) Decode(raw datatypes.JSON, contentType string, id uuid.UUID, field string) richtext.Document {
	doc, err := richtext.Inspect([]byte(raw))
	if err == nil {
		return doc
	}
	if c == nil {
		return richtext.EmptyDocument()
	}
	if c.logger != nil {
		c.logger.Warn("DOCUMENT", "Malformed document replaced with empty document", map[string]interface{}{
			"content_type": contentType,
			"id":           id.String(),
			"field":        field,
			"reason":       err.Error(),
		})
	}
	if c.metrics != nil {
		c.metrics.MalformedDocuments.WithLabelValues(contentType, field).Inc()
	}
	return richtext.EmptyDocument()
}

func (c *DocumentCodec) DecodeOptional(raw datatypes.JSON, contentType string, id uuid.UUID, field string) *richtext.Document {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	doc := c.Decode(raw, contentType, id, field)
	return &doc
}
