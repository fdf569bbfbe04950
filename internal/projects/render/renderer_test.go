package render

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/project-admin/internal/monitoring"
)

func newRenderer(t *testing.T) *Renderer {
	r, err := New(8)
	require.NoError(t, err)
	return r
}

func TestRender_Markdown(t *testing.T) {
	r := newRenderer(t)

	out := r.Render("# Spring Boot\n\nTakes an *opinionated* view.", FormatMarkdown)

	assert.Contains(t, out, "<h1>Spring Boot</h1>")
	assert.Contains(t, out, "<em>opinionated</em>")
}

func TestRender_Empty(t *testing.T) {
	assert.Equal(t, "", newRenderer(t).Render("", FormatMarkdown))
}

func TestRender_MalformedMarkupDoesNotFail(t *testing.T) {
	r := newRenderer(t)

	assert.NotPanics(t, func() {
		out := r.Render("```java\nunterminated fence\n* [broken](", FormatMarkdown)
		assert.NotEmpty(t, out)
	})
}

func TestRender_UnknownFormatDegrades(t *testing.T) {
	r := newRenderer(t)
	before := testutil.ToFloat64(monitoring.RenderDegradedAmount)

	out := r.Render("= Title\n<b>", Format("asciidoc"))

	assert.Equal(t, "<pre>= Title\n&lt;b&gt;</pre>\n", out)
	assert.Equal(t, before+1, testutil.ToFloat64(monitoring.RenderDegradedAmount))
}

func TestRender_Cached(t *testing.T) {
	r := newRenderer(t)

	first := r.Render("hello *world*", FormatMarkdown)
	assert.Equal(t, 1, r.cache.Len())

	second := r.Render("hello *world*", FormatMarkdown)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, r.cache.Len())
}

func TestNew_DefaultSize(t *testing.T) {
	r, err := New(0)
	require.NoError(t, err)
	assert.NotNil(t, r.cache)
}
