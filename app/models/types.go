package models

// Post is a single blog entry. The full set is fixed at startup and never
// mutated afterwards.
type Post struct {
	ID      int    `json:"id" yaml:"id" validate:"gte=0"`
	Slug    string `json:"slug" yaml:"slug" validate:"required,slug"`
	Title   string `json:"title" yaml:"title" validate:"required"`
	Date    string `json:"date" yaml:"date" validate:"required"`
	Excerpt string `json:"excerpt" yaml:"excerpt"`
	Content string `json:"content" yaml:"content"`
}

// RouteKind identifies which view a route selects.
type RouteKind int

const (
	RouteNotFound RouteKind = iota
	RouteHome
	RoutePost
)

// Route is the parsed form of a navigation fragment.
type Route struct {
	Kind RouteKind `json:"kind"`
	Slug string    `json:"slug,omitempty"`
}
