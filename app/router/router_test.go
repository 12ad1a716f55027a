package router

import (
	"testing"

	"hashblog/app/models"
	"hashblog/app/repositories"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		fragment string
		want     models.Route
	}{
		{"empty", "", models.HomeRoute()},
		{"home", "#/", models.HomeRoute()},
		{"bare marker", "#", models.HomeRoute()},
		{"only slashes", "#///", models.HomeRoute()},
		{"post", "#/post/hello-world", models.PostRoute("hello-world")},
		{"post without marker", "/post/hello-world", models.PostRoute("hello-world")},
		{"post trailing slash", "#/post/hello-world/", models.PostRoute("hello-world")},
		{"post double slashes", "#//post//hello-world", models.PostRoute("hello-world")},
		{"extra segments ignored", "#/post/a/b", models.PostRoute("a")},
		{"missing slug", "#/post/", models.NotFoundRoute()},
		{"missing slug no slash", "#/post", models.NotFoundRoute()},
		{"unknown", "#/unknown", models.NotFoundRoute()},
		{"unknown with slug", "#/posts/hello-world", models.NotFoundRoute()},
		{"case sensitive prefix", "#/Post/hello-world", models.NotFoundRoute()},
		{"only one marker stripped", "##/post/x", models.NotFoundRoute()},
		{"unknown slug still routes", "#/post/nonexistent-slug", models.PostRoute("nonexistent-slug")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.fragment))
		})
	}
}

func TestParseIsTotal(t *testing.T) {
	inputs := []string{"", "#", "/", "#/post", "#/post/ ", "#/\x00", "post/x", "#/post/x/y/z", "?q=1", "#/%20"}
	for _, in := range inputs {
		route := Parse(in)
		assert.Contains(t, []models.RouteKind{models.RouteHome, models.RoutePost, models.RouteNotFound}, route.Kind, in)
		if route.Kind != models.RoutePost {
			assert.Empty(t, route.Slug, in)
		}
	}
}

func TestEmptyAndHomeAgree(t *testing.T) {
	assert.Equal(t, Parse(""), Parse("#/"))
}

func TestRoundTrip(t *testing.T) {
	for _, post := range repositories.SamplePosts() {
		route := Parse(models.PostFragment(post.Slug))
		assert.Equal(t, models.PostRoute(post.Slug), route)
		assert.Equal(t, models.PostFragment(post.Slug), route.Fragment())
	}
}

func TestSegments(t *testing.T) {
	assert.Empty(t, Segments(""))
	assert.Equal(t, []string{"post", "a", "b"}, Segments("#/post/a/b"))
}
