package controllers

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"hashblog/app/models"
	"hashblog/app/mount"
	"hashblog/app/repositories"
	"hashblog/app/router"
	"hashblog/app/services"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
	"golang.org/x/crypto/sha3"
)

// PostController serves the browser shell, server-side render cycles and
// a read-only JSON view of the content store.
type PostController struct {
	postService *services.PostService
	title       string
	logger      *zap.Logger
}

// NewPostController creates a PostController. title is the document title
// of the shell page.
func NewPostController(postService *services.PostService, title string, logger *zap.Logger) *PostController {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PostController{
		postService: postService,
		title:       title,
		logger:      logger,
	}
}

// Shell serves the full page with the home view already mounted. The page
// script re-renders through Render whenever the fragment changes.
func (pc *PostController) Shell(w http.ResponseWriter, r *http.Request) {
	initial, err := pc.postService.Render(models.HomeRoute())
	if err != nil {
		pc.sendError(w, r, "Render error", http.StatusInternalServerError, err)
		return
	}
	page, err := pc.postService.RenderShell(pc.title, mount.ContainerID, initial)
	if err != nil {
		pc.sendError(w, r, "Template error", http.StatusInternalServerError, err)
		return
	}
	pc.sendHTML(w, r, page)
}

// Render runs one render cycle for the fragment query parameter.
func (pc *PostController) Render(w http.ResponseWriter, r *http.Request) {
	fragment := r.URL.Query().Get("fragment")
	route := router.Parse(fragment)

	markup, err := pc.postService.Render(route)
	if err != nil {
		pc.sendError(w, r, "Render error", http.StatusInternalServerError, err)
		return
	}
	pc.logger.Debug("rendered fragment",
		zap.String("fragment", fragment),
		zap.Stringer("route", route.Kind))
	pc.sendHTML(w, r, markup)
}

// Route reports how a fragment parses.
func (pc *PostController) Route(w http.ResponseWriter, r *http.Request) {
	fragment := r.URL.Query().Get("fragment")
	route := router.Parse(fragment)
	pc.sendJSON(w, map[string]interface{}{
		"fragment":  fragment,
		"route":     route,
		"canonical": route.Fragment(),
	})
}

// Index lists every post in store order.
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	pc.sendJSON(w, pc.postService.Posts())
}

// Show returns a single post by slug.
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	post, err := pc.postService.GetPost(slug)
	if errors.Is(err, repositories.ErrNotFound) {
		pc.sendError(w, r, "not found", http.StatusNotFound, nil)
		return
	}
	if err != nil {
		pc.sendError(w, r, "Failed to fetch post", http.StatusInternalServerError, err)
		return
	}
	pc.sendJSON(w, post)
}

// Helper methods for consistent response handling

// ETag returns a strong validator for markup.
func ETag(markup string) string {
	sum := sha3.Sum256([]byte(markup))
	return `"` + hex.EncodeToString(sum[:16]) + `"`
}

func (pc *PostController) sendHTML(w http.ResponseWriter, r *http.Request, markup string) {
	etag := ETag(markup)
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "no-cache")
	if etagMatches(r.Header.Values("If-None-Match"), etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write([]byte(markup)); err != nil {
		pc.logger.Warn("write response", zap.Error(err))
	}
}

// etagMatches reports whether any If-None-Match value names etag. Weak
// tags compare equal to their strong form.
func etagMatches(headers []string, etag string) bool {
	for _, header := range headers {
		for _, tag := range strings.Split(header, ",") {
			tag = strings.TrimPrefix(strings.TrimSpace(tag), "W/")
			if tag == "*" || tag == etag {
				return true
			}
		}
	}
	return false
}

func (pc *PostController) sendJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		pc.logger.Warn("encode response", zap.Error(err))
	}
}

func (pc *PostController) sendError(w http.ResponseWriter, r *http.Request, message string, status int, cause error) {
	if cause != nil {
		pc.logger.Error(message, zap.String("path", r.URL.Path), zap.Error(cause))
	}
	if isAPI(r) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(map[string]string{"error": message})
	} else {
		http.Error(w, message, status)
	}
}

func isAPI(r *http.Request) bool {
	return r.Header.Get("Accept") == "application/json" || strings.HasPrefix(r.URL.Path, "/api")
}
