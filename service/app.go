package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"hashblog/app/config"
	"hashblog/app/controllers"
	"hashblog/app/repositories"
	"hashblog/app/routes"
	"hashblog/app/services"
)

// App holds the wired components shared by every command.
type App struct {
	Config      *config.Config
	Logger      *zap.Logger
	Store       *repositories.MemoryPostRepository
	PostService *services.PostService
}

// NewBaseApp wires configuration and logging only. Commands that manage
// the snapshot directly use it so a broken store cannot lock them out.
func NewBaseApp(cfg *config.Config, logger *zap.Logger) *App {
	return &App{Config: cfg, Logger: logger}
}

// BuildApp loads the content store and the render service.
func BuildApp(cfg *config.Config, logger *zap.Logger) (*App, error) {
	locale, err := cfg.LocaleTag()
	if err != nil {
		return nil, err
	}
	store, err := repositories.Open(cfg.ContentOptions(), logger.Named("content"))
	if err != nil {
		return nil, err
	}
	postService, err := services.NewPostService(store, locale)
	if err != nil {
		return nil, fmt.Errorf("failed to build renderer: %w", err)
	}
	app := NewBaseApp(cfg, logger)
	app.Store = store
	app.PostService = postService
	return app, nil
}

// RunAppServer serves the blog over HTTP until ctx is cancelled.
func RunAppServer(ctx context.Context, app *App) error {
	logger := app.Logger.Named("http")
	postController := controllers.NewPostController(app.PostService, app.Config.Title, logger)
	router := routes.SetupRoutes(postController, logger)
	return routes.StartServer(ctx, app.Config.HTTPAddr, router, logger)
}
