package repositories

import "hashblog/app/models"

// SamplePosts returns the built-in demo content. Each call returns fresh
// records.
func SamplePosts() []*models.Post {
	return []*models.Post{
		{
			ID:      1,
			Slug:    "hello-world",
			Title:   "Hello World",
			Date:    "2025-11-01",
			Excerpt: "Kicking off our tiny blog with a classic first post.",
			Content: "Welcome to the simplest blog! Edit the posts array in script.js to change content. Each post has a slug, title, date, excerpt, and content.",
		},
		{
			ID:      2,
			Slug:    "vanilla-routing",
			Title:   "Vanilla JS Hash Routing",
			Date:    "2025-11-03",
			Excerpt: "No frameworks needed: just listen to hashchange and render.",
			Content: "We use location.hash (e.g., #/post/slug) and a tiny router. The home route is #/. A 404 renders when no post matches.",
		},
		{
			ID:      3,
			Slug:    "why-we-blog",
			Title:   "Why We Blog",
			Date:    "2025-11-07",
			Excerpt: "Share ideas, keep notes, learn in public.",
			Content: "Blogging helps organize thinking and share knowledge. Keep posts short and consistent for momentum.",
		},
	}
}
