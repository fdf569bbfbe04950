// Package render turns the raw markup of the long-form project fields into HTML.
package render

import (
	"fmt"
	"html"
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/russross/blackfriday/v2"

	"github.com/GoSim-25-26J-441/project-admin/internal/monitoring"
)

// Format identifies the markup language of a raw text field.
type Format string

const FormatMarkdown Format = "markdown"

const DefaultCacheSize = 256

type cacheKey struct {
	format Format
	raw    string
}

// Renderer renders markup to HTML and memoises the result.
// It is safe for concurrent use.
type Renderer struct {
	cache *lru.Cache[cacheKey, string]
}

// New creates a Renderer whose cache holds up to size entries.
func New(size int) (*Renderer, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.New[cacheKey, string](size)
	if err != nil {
		return nil, fmt.Errorf("render cache: %w", err)
	}
	return &Renderer{cache: cache}, nil
}

// Render converts raw into HTML. It never fails: if the markup engine cannot
// handle the input, the escaped raw text is returned inside a <pre> block.
func (r *Renderer) Render(raw string, format Format) string {
	if raw == "" {
		return ""
	}
	key := cacheKey{format: format, raw: raw}
	if out, ok := r.cache.Get(key); ok {
		return out
	}

	out, ok := r.render(raw, format)
	if ok {
		r.cache.Add(key, out)
	}
	return out
}

func (r *Renderer) render(raw string, format Format) (out string, ok bool) {
	defer func() {
		if rec := recover(); rec != nil {
			slog.Warn("markup rendering failed, falling back to escaped text", "format", format, "panic", rec)
			monitoring.RenderDegradedAmount.Inc()
			out, ok = degrade(raw), false
		}
	}()

	switch format {
	case FormatMarkdown:
		return string(blackfriday.Run([]byte(raw), blackfriday.WithExtensions(blackfriday.CommonExtensions))), true
	default:
		slog.Warn("unsupported markup format", "format", format)
		monitoring.RenderDegradedAmount.Inc()
		return degrade(raw), false
	}
}

func degrade(raw string) string {
	return "<pre>" + html.EscapeString(raw) + "</pre>\n"
}
