package main

import (
	"time"

	"github.com/averlane/bankist/internal/common"
	"github.com/averlane/bankist/internal/config"
	"github.com/averlane/bankist/internal/directory"
	"github.com/averlane/bankist/internal/journal"
	"github.com/averlane/bankist/internal/tui"
	"github.com/averlane/bankist/internal/tui/themes"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open the banking dashboard",
		Long: `Start the interactive dashboard over the seeded demo accounts.

Try logging in as "ad" with PIN 1111, or "jd" with PIN 2222.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			opts := []tui.Option{
				tui.WithDirectory(directory.Seed(time.Now())),
				tui.WithTheme(themes.GetTheme(viper.GetString("theme"))),
				tui.WithIdleTimeout(viper.GetInt("idle_timeout")),
			}

			if viper.GetBool("journal.enabled") {
				path := config.ExpandPath(viper.GetString("journal.path"))
				if path == "" {
					path = config.DefaultJournalPath()
				}

				store, err := journal.Open(path)
				if err != nil {
					return common.NewUserError("could not open the session journal", err)
				}
				defer func() { _ = store.Close() }()

				if err := store.Migrate(ctx); err != nil {
					return common.NewUserError("could not migrate the session journal", err)
				}
				opts = append(opts, tui.WithRecorder(store))
			}

			return tui.Run(ctx, opts...)
		},
	}

	cmd.Flags().String("theme", "default", "visual theme (default, catppuccin-mocha)")
	cmd.Flags().Int("idle-timeout", 300, "seconds of inactivity before auto-logout")
	cmd.Flags().Bool("journal", false, "record session events to the journal database")
	cmd.Flags().String("journal-path", "", "journal database path (default: ~/.local/share/bankist/journal.db)")

	_ = viper.BindPFlag("theme", cmd.Flags().Lookup("theme"))
	_ = viper.BindPFlag("idle_timeout", cmd.Flags().Lookup("idle-timeout"))
	_ = viper.BindPFlag("journal.enabled", cmd.Flags().Lookup("journal"))
	_ = viper.BindPFlag("journal.path", cmd.Flags().Lookup("journal-path"))

	return cmd
}
