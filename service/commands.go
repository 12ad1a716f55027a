package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"hashblog/app/config"
	"hashblog/app/logging"
	"hashblog/app/models"
	"hashblog/app/mount"
	"hashblog/app/router"
)

// Version is set at build time with -ldflags.
var Version = "dev"

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the command tree. Configuration and the app are loaded
// once in PersistentPreRunE and shared through the closure.
func NewRootCmd() *cobra.Command {
	var (
		cfgPath string
		app     *App
	)

	cmd := &cobra.Command{
		Use:           "hashblog",
		Short:         "A tiny fragment-routed blog renderer",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			v := viper.New()
			if cfgPath != "" {
				v.SetConfigFile(cfgPath)
			}
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			logger, err := logging.New(cfg.Log.Level, cfg.Log.Development)
			if err != nil {
				return err
			}
			if skipsStore(cmd) {
				app = NewBaseApp(cfg, logger)
				return nil
			}
			app, err = BuildApp(cfg, logger)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil {
				_ = app.Logger.Sync()
			}
		},
	}

	cmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (yaml|toml)")

	getApp := func() *App { return app }
	cmd.AddCommand(newServeCmd(getApp))
	cmd.AddCommand(newRenderCmd(getApp))
	cmd.AddCommand(newWatchCmd(getApp))
	cmd.AddCommand(newPostsCmd(getApp))
	cmd.AddCommand(newSnapshotCmd(getApp))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// skipStoreAnnotation marks a command subtree that must run without the
// content store being loaded.
const skipStoreAnnotation = "hashblog/skip-store"

func skipsStore(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations[skipStoreAnnotation] == "true" {
			return true
		}
	}
	return false
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "hashblog version %s\n", Version)
		},
	}
}

func newServeCmd(getApp func() *App) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the blog over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp()
			if addr != "" {
				app.Config.HTTPAddr = addr
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return RunAppServer(ctx, app)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides http_addr)")
	return cmd
}

func newRenderCmd(getApp func() *App) *cobra.Command {
	return &cobra.Command{
		Use:   "render [fragment]",
		Short: "Run one render cycle and print the markup",
		Long: `Render parses the fragment (default "#/"), renders the selected view and
prints the markup to stdout.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fragment := ""
			if len(args) == 1 {
				fragment = args[0]
			}
			source := mount.NewChannelSource(fragment)
			controller := mount.New(source, mount.NewWriterSink(cmd.OutOrStdout()), getApp().PostService,
				mount.WithLogger(getApp().Logger.Named("mount")))
			stop, err := controller.Start()
			if err != nil {
				return err
			}
			stop()
			return nil
		},
	}
}

func newWatchCmd(getApp func() *App) *cobra.Command {
	var (
		out         string
		clearScreen bool
	)
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-render on every fragment read from stdin",
		Long: `Watch reads one fragment per line from stdin and re-renders on every
change. Output goes to stdout, or replaces the file given with --out.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp()

			var sink mount.Sink
			if out != "" {
				sink = mount.NewFileSink(out)
			} else {
				ws := mount.NewWriterSink(cmd.OutOrStdout())
				ws.Clear = clearScreen
				sink = ws
			}

			source := mount.NewLineSource(cmd.InOrStdin())
			controller := mount.New(source, sink, app.PostService, mount.WithLogger(app.Logger.Named("mount")))
			stop, err := controller.Start()
			if err != nil {
				return err
			}
			defer stop()

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()
			err = source.Run(ctx)
			app.Logger.Info("watch finished", zap.Int64("cycles", controller.Cycles()))
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "file whose contents are replaced on each render")
	cmd.Flags().BoolVar(&clearScreen, "clear", false, "clear the terminal before each render")
	return cmd
}

func newPostsCmd(getApp func() *App) *cobra.Command {
	return &cobra.Command{
		Use:   "posts",
		Short: "List posts and their fragments in store order",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			for _, p := range getApp().Store.All() {
				route := router.Parse(models.PostFragment(p.Slug))
				fmt.Fprintf(w, "%-24s %-12s %s\n", route.Fragment(), p.Date, p.Title)
			}
		},
	}
}
