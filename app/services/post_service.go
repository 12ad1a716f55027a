package services

import (
	"fmt"
	"html/template"
	"sort"

	"golang.org/x/text/language"

	"hashblog/app/models"
	"hashblog/app/repositories"
	"hashblog/app/views"
)

// PostService builds view-models from the content store and hands them to
// the markup renderer. None of its methods mutate the store or perform I/O.
type PostService struct {
	postRepo repositories.PostRepository
	renderer *views.Renderer
	dates    views.DateFormatter
	labels   views.Labels
	locale   language.Tag
}

// NewPostService creates a PostService that displays dates and labels for
// locale.
func NewPostService(postRepo repositories.PostRepository, locale language.Tag) (*PostService, error) {
	renderer, err := views.NewRenderer()
	if err != nil {
		return nil, err
	}
	labels, err := views.LoadLabels(locale)
	if err != nil {
		return nil, fmt.Errorf("failed to load labels: %w", err)
	}
	return &PostService{
		postRepo: postRepo,
		renderer: renderer,
		dates:    views.NewDateFormatter(locale),
		labels:   labels,
		locale:   locale,
	}, nil
}

// Posts returns every post in store order.
func (s *PostService) Posts() []*models.Post {
	return s.postRepo.All()
}

// GetPost looks a post up by slug.
func (s *PostService) GetPost(slug string) (*models.Post, error) {
	post, ok := s.postRepo.FindBySlug(slug)
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return post, nil
}

// HomeView lists every post, most recent first.
func (s *PostService) HomeView() views.HomeView {
	posts := SortByDateDesc(s.postRepo.All())

	items := make([]views.PostItem, 0, len(posts))
	for _, p := range posts {
		items = append(items, views.PostItem{
			Href:    models.PostFragment(p.Slug),
			Title:   p.Title,
			Excerpt: p.Excerpt,
			Date:    s.dates.View(p.Date),
		})
	}
	return views.HomeView{
		Heading:    s.labels.HomeHeading,
		Subheading: s.labels.HomeSubheading,
		ReadMore:   s.labels.ReadMore,
		Items:      items,
	}
}

// PostView builds the page for slug. ok is false when no post matches.
func (s *PostService) PostView(slug string) (v views.PostView, ok bool) {
	post, ok := s.postRepo.FindBySlug(slug)
	if !ok {
		return views.PostView{}, false
	}
	return views.PostView{
		BackLabel: s.labels.Back,
		Title:     post.Title,
		Date:      s.dates.View(post.Date),
		Content:   post.Content,
	}, true
}

func (s *PostService) NotFoundView() views.NotFoundView {
	return views.NotFoundView{
		Heading:   s.labels.NotFoundHeading,
		Message:   s.labels.NotFoundMessage,
		HomeHref:  models.HomeFragment,
		HomeLabel: s.labels.GoHome,
	}
}

// RenderHome renders the post list.
func (s *PostService) RenderHome() (string, error) {
	return s.renderer.Home(s.HomeView())
}

// RenderPost renders the post with slug, or exactly the not-found page when
// there is none.
func (s *PostService) RenderPost(slug string) (string, error) {
	v, ok := s.PostView(slug)
	if !ok {
		return s.RenderNotFound()
	}
	return s.renderer.Post(v)
}

// RenderNotFound renders the fixed not-found page.
func (s *PostService) RenderNotFound() (string, error) {
	return s.renderer.NotFound(s.NotFoundView())
}

// Render selects the view for route.
func (s *PostService) Render(route models.Route) (string, error) {
	switch route.Kind {
	case models.RouteHome:
		return s.RenderHome()
	case models.RoutePost:
		return s.RenderPost(route.Slug)
	default:
		return s.RenderNotFound()
	}
}

// RenderShell renders the browser document with initial already mounted in
// the output container.
func (s *PostService) RenderShell(title, containerID, initial string) (string, error) {
	return s.renderer.Shell(views.ShellView{
		Lang:        s.locale.String(),
		Title:       title,
		ContainerID: containerID,
		Initial:     template.HTML(initial),
	})
}

// SortByDateDesc returns a copy of posts ordered most recent first. Equal
// dates keep their relative order, and posts whose date does not parse go
// last in store order.
func SortByDateDesc(posts []*models.Post) []*models.Post {
	type keyed struct {
		post  *models.Post
		unix  int64
		dated bool
	}
	ks := make([]keyed, len(posts))
	for i, p := range posts {
		d, ok := p.ParsedDate()
		ks[i] = keyed{post: p, unix: d.Unix(), dated: ok}
	}

	sort.SliceStable(ks, func(i, j int) bool {
		if ks[i].dated != ks[j].dated {
			return ks[i].dated
		}
		return ks[i].unix > ks[j].unix
	})

	out := make([]*models.Post, len(ks))
	for i, k := range ks {
		out[i] = k.post
	}
	return out
}
