package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/averlane/bankist/internal/directory"
	"github.com/averlane/bankist/internal/format"
	"github.com/averlane/bankist/internal/ledger"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func accountsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "accounts",
		Short: "List the seeded demo accounts",
		Long:  `Display the demo accounts, their login handles, and their current balances.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			dir := directory.Seed(time.Now())

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				headerStyle.Render("Handle"),
				headerStyle.Render("Owner"),
				headerStyle.Render("PIN"),
				headerStyle.Render("Movements"),
				headerStyle.Render("Balance"),
				headerStyle.Render("Rate"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 6),
				strings.Repeat("-", 24),
				strings.Repeat("-", 4),
				strings.Repeat("-", 9),
				strings.Repeat("-", 12),
				strings.Repeat("-", 5))

			for _, acc := range dir.Accounts() {
				fmt.Fprintf(w, "%s\t%s\t%04d\t%d\t%s\t%s%%\n",
					acc.Handle,
					acc.Owner,
					acc.PIN,
					len(acc.Movements),
					format.Money(ledger.Balance(acc), acc.Locale, acc.Currency),
					acc.InterestRate.String())
			}
			return nil
		},
	}
}
