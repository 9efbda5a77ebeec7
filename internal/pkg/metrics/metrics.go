package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds the CMS collectors. Each instance owns its own prometheus registry so tests can
// build several without duplicate registration panics.
type Registry struct {
	registry *prometheus.Registry

	MalformedDocuments *prometheus.CounterVec
	DocumentsRendered  prometheus.Counter
	PageCacheRequests  *prometheus.CounterVec
	ContentEvents      *prometheus.CounterVec
}

func New() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
		MalformedDocuments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cms_malformed_documents_total",
			Help: "Stored documents that failed structural validation and were replaced by the empty document.",
		}, []string{"content_type", "field"}),
		DocumentsRendered: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cms_documents_rendered_total",
			Help: "Documents rendered to HTML.",
		}),
		PageCacheRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cms_page_cache_requests_total",
			Help: "Public page cache lookups by result.",
		}, []string{"result"}),
		ContentEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cms_content_events_total",
			Help: "Content change events handled by the consumer.",
		}, []string{"action"}),
	}
	r.registry.MustRegister(
		r.MalformedDocuments,
		r.DocumentsRendered,
		r.PageCacheRequests,
		r.ContentEvents,
		collectors.NewGoCollector(),
	)
	return r
}

func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}
