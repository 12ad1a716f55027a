// Package mount connects a navigation source to an output sink. Each
// navigation event runs one render cycle: read the current fragment, parse
// it, render the selected view and replace the sink's contents.
package mount

import (
	"fmt"
	"sync"

	"go.uber.org/atomic"
	"go.uber.org/zap"

	"hashblog/app/models"
	"hashblog/app/router"
)

// ContainerID identifies the single output container in a browser page.
const ContainerID = "app"

// NavigationSource supplies the current fragment and change notifications.
// A browser location, a line-oriented stream and a test harness feeding
// synthetic fragments all fit.
type NavigationSource interface {
	// Current returns the current fragment, which may be empty.
	Current() string
	// SetCurrent changes the current fragment. Sources notify subscribers
	// of the change the same way they notify any other navigation.
	SetCurrent(fragment string)
	// Subscribe registers fn for navigation changes and returns a function
	// that cancels the subscription.
	Subscribe(fn func(fragment string)) (cancel func())
}

// Sink is the output container. Replace swaps its entire contents.
type Sink interface {
	Replace(markup string) error
}

// Renderer produces markup for a route.
type Renderer interface {
	Render(route models.Route) (string, error)
}

// Controller owns the output sink and runs render cycles.
type Controller struct {
	source   NavigationSource
	sink     Sink
	renderer Renderer
	logger   *zap.Logger

	mu     sync.Mutex
	cycles atomic.Int64
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for render cycles.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a Controller. Nothing is rendered until Start.
func New(source NavigationSource, sink Sink, renderer Renderer, opts ...Option) *Controller {
	c := &Controller{
		source:   source,
		sink:     sink,
		renderer: renderer,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start establishes the home fragment if none is set, renders once and
// then re-renders on every navigation change until the returned stop
// function is called.
func (c *Controller) Start() (stop func(), err error) {
	if c.source.Current() == "" {
		c.source.SetCurrent(models.HomeFragment)
	}
	// Subscribe first so a navigation racing the initial cycle still
	// renders.
	cancel := c.source.Subscribe(func(string) {
		// Failures are logged in RenderCycle; the subscription stays up.
		_ = c.RenderCycle()
	})
	if err := c.RenderCycle(); err != nil {
		cancel()
		return nil, err
	}
	return cancel, nil
}

// RenderCycle renders the source's current fragment into the sink. Cycles
// never overlap.
func (c *Controller) RenderCycle() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	fragment := c.source.Current()
	route := router.Parse(fragment)

	markup, err := c.renderer.Render(route)
	if err != nil {
		c.logger.Error("render failed", zap.String("fragment", fragment), zap.Error(err))
		return fmt.Errorf("render %q: %w", fragment, err)
	}
	if err := c.sink.Replace(markup); err != nil {
		c.logger.Error("sink replace failed", zap.String("fragment", fragment), zap.Error(err))
		return fmt.Errorf("replace output: %w", err)
	}

	n := c.cycles.Inc()
	c.logger.Debug("render cycle",
		zap.Int64("cycle", n),
		zap.String("fragment", fragment),
		zap.Stringer("route", route.Kind),
		zap.Int("bytes", len(markup)))
	return nil
}

// Cycles reports how many render cycles have completed.
func (c *Controller) Cycles() int64 {
	return c.cycles.Load()
}
