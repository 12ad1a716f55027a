package views

import "html/template"

// DateView carries a post date both as written and as displayed.
type DateView struct {
	Raw     string
	Display string
}

// PostItem is one entry of the home list.
type PostItem struct {
	Href    string
	Title   string
	Excerpt string
	Date    DateView
}

// HomeView is the list of posts, most recent first.
type HomeView struct {
	Heading    string
	Subheading string
	ReadMore   string
	Items      []PostItem
}

// PostView is a single post page.
type PostView struct {
	BackLabel string
	Title     string
	Date      DateView
	Content   string
}

// NotFoundView is the fallback page for unknown routes and slugs.
type NotFoundView struct {
	Heading   string
	Message   string
	HomeHref  string
	HomeLabel string
}

// ShellView is the full document served to browsers. Initial is markup that
// was already produced by a render cycle.
type ShellView struct {
	Lang        string
	Title       string
	ContainerID string
	Initial     template.HTML
}
