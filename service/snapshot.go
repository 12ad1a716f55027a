package service

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"hashblog/app/repositories"
)

func newSnapshotCmd(getApp func() *App) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:         "snapshot",
		Short:       "Manage the Badger content snapshot",
		Annotations: map[string]string{skipStoreAnnotation: "true"},
	}
	cmd.PersistentFlags().StringVar(&dir, "dir", "", "snapshot directory (defaults to content.badger_dir)")

	withSnapshot := func(fn func(app *App, snapshot *repositories.BadgerPostSnapshot) error) error {
		app := getApp()
		target := dir
		if target == "" {
			target = app.Config.Content.BadgerDir
		}
		if target == "" {
			return errors.New("no snapshot directory: pass --dir or set content.badger_dir")
		}
		db, err := repositories.OpenBadger(target)
		if err != nil {
			return err
		}
		defer db.Close()
		return fn(app, repositories.NewBadgerPostSnapshot(db))
	}

	seed := &cobra.Command{
		Use:   "seed [content-file]",
		Short: "Replace the snapshot with posts from a content file",
		Long: `Seed validates the posts of the given YAML content file (or content.file,
or the built-in posts) and replaces the snapshot with them.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSnapshot(func(app *App, snapshot *repositories.BadgerPostSnapshot) error {
				file := app.Config.Content.File
				if len(args) == 1 {
					file = args[0]
				}
				posts := repositories.SamplePosts()
				if file != "" {
					var err error
					if posts, err = repositories.LoadPostsFile(file); err != nil {
						return err
					}
				}
				if _, err := repositories.NewMemoryPostRepository(posts); err != nil {
					return fmt.Errorf("invalid content: %w", err)
				}
				if err := snapshot.Seed(posts); err != nil {
					return err
				}
				app.Logger.Info("snapshot seeded", zap.Int("posts", len(posts)))
				fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d posts\n", len(posts))
				return nil
			})
		},
	}

	export := &cobra.Command{
		Use:   "export",
		Short: "Print the snapshot as a YAML content file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSnapshot(func(app *App, snapshot *repositories.BadgerPostSnapshot) error {
				posts, err := snapshot.Load()
				if err != nil {
					return err
				}
				return repositories.EncodePosts(cmd.OutOrStdout(), posts)
			})
		},
	}

	backup := &cobra.Command{
		Use:   "backup <file>",
		Short: "Write a Badger backup of the snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSnapshot(func(app *App, snapshot *repositories.BadgerPostSnapshot) error {
				f, err := os.Create(args[0])
				if err != nil {
					return fmt.Errorf("failed to create backup file: %w", err)
				}
				if err := snapshot.Backup(f); err != nil {
					f.Close()
					return err
				}
				if err := f.Close(); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Snapshot backed up to %s\n", args[0])
				return nil
			})
		},
	}

	restore := &cobra.Command{
		Use:   "restore <file>",
		Short: "Replace the snapshot with a backup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open backup file: %w", err)
			}
			defer f.Close()
			if fi, err := f.Stat(); err != nil {
				return err
			} else if fi.Size() == 0 {
				return fmt.Errorf("backup file is empty: %s", args[0])
			}

			return withSnapshot(func(app *App, snapshot *repositories.BadgerPostSnapshot) error {
				posts, err := snapshot.ReplaceFromBackup(f)
				if err != nil {
					return err
				}
				app.Logger.Info("snapshot restored", zap.Int("posts", len(posts)))
				fmt.Fprintf(cmd.OutOrStdout(), "Restored %d posts\n", len(posts))
				return nil
			})
		},
	}

	cmd.AddCommand(seed, export, backup, restore)
	return cmd
}
