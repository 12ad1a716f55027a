// Package router turns navigation fragments into routes.
//
// Fragments look like "#/" (home) and "#/post/<slug>" (single post).
// Anything else is NotFound. Parsing is pure and total: every input maps to
// exactly one route.
package router

import (
	"strings"

	"hashblog/app/models"
)

// Marker is the character that introduces a fragment.
const Marker = "#"

const postSegment = "post"

// Parse maps a fragment to a route. Segments after the slug are ignored, so
// "#/post/a/b" routes to post "a".
func Parse(fragment string) models.Route {
	segments := Segments(fragment)

	if len(segments) == 0 {
		return models.HomeRoute()
	}
	if segments[0] == postSegment && len(segments) > 1 {
		return models.PostRoute(segments[1])
	}
	return models.NotFoundRoute()
}

// Segments normalizes a fragment and splits it into non-empty path
// segments. An empty fragment is treated as the home fragment.
func Segments(fragment string) []string {
	if fragment == "" {
		fragment = models.HomeFragment
	}
	fragment = strings.TrimPrefix(fragment, Marker)

	parts := strings.Split(fragment, "/")
	segments := parts[:0]
	for _, p := range parts {
		if p != "" {
			segments = append(segments, p)
		}
	}
	return segments
}
