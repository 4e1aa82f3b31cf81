package cli

import (
	"strings"

	"photolicense-cli/internal/format"
	"photolicense-cli/internal/publish"
	"photolicense-cli/internal/store"

	"github.com/spf13/cobra"
)

func newSampleCmd(app *App) *cobra.Command {
	var (
		nowFlag  string
		markdown bool
	)

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Print the sample license a new session starts with",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now, err := parseNowFlag(nowFlag)
			if err != nil {
				return writeErr(cmd, err)
			}
			col := store.New(store.WithClock(store.FixedClock{At: now}))
			store.Seed(col)

			if markdown {
				parts := []string{publish.RenderIndexMarkdown(col.List(), now)}
				for _, l := range col.List() {
					parts = append(parts, publish.RenderLicenseMarkdown(l, now))
				}
				_, err := cmd.OutOrStdout().Write([]byte(strings.Join(parts, "\n")))
				return err
			}

			return writeOut(cmd, app, format.Envelope{
				Data: col.List(),
				Meta: map[string]any{
					"count": col.Len(),
					"total": col.Total().StringFixed(2),
				},
			})
		},
	}

	cmd.Flags().StringVar(&nowFlag, "now", "", "Derive status as of this date (YYYY-MM-DD; default: today)")
	cmd.Flags().BoolVar(&markdown, "markdown", false, "Print Markdown instead of the JSON/EDN envelope")
	return cmd
}
