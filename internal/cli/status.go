package cli

import (
	"strings"
	"time"

	"photolicense-cli/internal/format"
	"photolicense-cli/internal/statusutil"

	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	var expiry string
	var nowFlag string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the status a license gets for an expiry date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now, err := parseNowFlag(nowFlag)
			if err != nil {
				return writeErr(cmd, err)
			}
			expiry = strings.TrimSpace(expiry)
			if _, err := statusutil.ParseDate(expiry, now.Location()); err != nil {
				return writeErr(cmd, errInvalidDate("expiry", expiry))
			}
			days, _ := statusutil.DaysUntil(expiry, now)
			return writeOut(cmd, app, format.Envelope{
				Data: map[string]any{
					"expiryDate": expiry,
					"status":     statusutil.Derive(expiry, now),
					"daysUntil":  days,
				},
				Meta: map[string]any{
					"evaluatedOn": now.Format(statusutil.DateLayout),
					"windowDays":  statusutil.ExpiringSoonWindowDays,
				},
			})
		},
	}

	cmd.Flags().StringVar(&expiry, "expiry", "", "Expiry date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&nowFlag, "now", "", "Evaluate as of this date (YYYY-MM-DD; default: today)")
	_ = cmd.MarkFlagRequired("expiry")
	return cmd
}

// parseNowFlag returns noon on the given local date, or the current time when empty.
func parseNowFlag(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Now(), nil
	}
	d, err := statusutil.ParseDate(s, time.Local)
	if err != nil {
		return time.Time{}, errInvalidDate("now", s)
	}
	return d.Add(12 * time.Hour), nil
}
