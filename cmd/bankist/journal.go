package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/averlane/bankist/internal/common"
	"github.com/averlane/bankist/internal/config"
	"github.com/averlane/bankist/internal/journal"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func journalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Show recorded session events",
		Long:  `List the session events recorded by past runs started with --journal.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			path, _ := cmd.Flags().GetString("journal-path")
			if path == "" {
				path = viper.GetString("journal.path")
			}
			path = config.ExpandPath(path)
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

			entries, err := store.Events(ctx)
			if err != nil {
				return fmt.Errorf("failed to load events: %w", err)
			}

			if len(entries) == 0 {
				infoStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
				fmt.Println(infoStyle.Render("No events recorded yet. Run 'bankist run --journal' first."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				headerStyle.Render("When"),
				headerStyle.Render("Event"),
				headerStyle.Render("Handle"),
				headerStyle.Render("Counterparty"),
				headerStyle.Render("Amount"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 19),
				strings.Repeat("-", 8),
				strings.Repeat("-", 6),
				strings.Repeat("-", 12),
				strings.Repeat("-", 10))

			for _, e := range entries {
				amount := ""
				if !e.Amount.IsZero() {
					amount = e.Amount.StringFixed(2)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					e.At.Local().Format("2006-01-02 15:04:05"),
					e.Kind,
					e.Handle,
					e.Counterparty,
					amount)
			}
			return nil
		},
	}

	cmd.Flags().String("journal-path", "", "journal database path (default: ~/.local/share/bankist/journal.db)")

	return cmd
}
