package views

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := NewRenderer()
	require.NoError(t, err)
	return r
}

func TestRendererHome(t *testing.T) {
	r := newTestRenderer(t)

	t.Run("items", func(t *testing.T) {
		out, err := r.Home(HomeView{
			Heading:  "Latest posts",
			ReadMore: "Read more",
			Items: []PostItem{
				{Href: "#/post/a", Title: "A", Excerpt: "first", Date: DateView{Raw: "2025-01-02", Display: "1/2/2025"}},
			},
		})
		require.NoError(t, err)
		assert.Contains(t, out, `<a href="#/post/a">A</a>`)
		assert.Contains(t, out, `<time class="post-date" datetime="2025-01-02">1/2/2025</time>`)
		assert.Contains(t, out, `<a href="#/post/a">Read more</a>`)
		assert.Contains(t, out, "first")
	})

	t.Run("empty list", func(t *testing.T) {
		out, err := r.Home(HomeView{Heading: "Latest posts"})
		require.NoError(t, err)
		assert.Contains(t, out, "<ul class=\"post-list\">\n</ul>")
		assert.NotContains(t, out, "post-card")
	})
}

func TestRendererEscapesContent(t *testing.T) {
	r := newTestRenderer(t)

	out, err := r.Post(PostView{
		Title:   `<script>alert("x")</script>`,
		Content: "a & b",
	})
	require.NoError(t, err)
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")
	assert.Contains(t, out, "a &amp; b")
	assert.Contains(t, out, `onclick="history.back()"`)
}

func TestRendererNotFound(t *testing.T) {
	r := newTestRenderer(t)

	v := NotFoundView{Heading: "404", Message: "gone", HomeHref: "#/", HomeLabel: "Go home"}
	first, err := r.NotFound(v)
	require.NoError(t, err)
	second, err := r.NotFound(v)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Contains(t, first, `<a href="#/">Go home</a>`)
}

func TestRendererShell(t *testing.T) {
	r := newTestRenderer(t)

	out, err := r.Shell(ShellView{Lang: "en-US", Title: "Blog", ContainerID: "app", Initial: "<p>hi</p>"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, `<main id="app"><p>hi</p></main>`)
	assert.Contains(t, out, "hashchange")
}
