package tui

import (
	"strings"

	"photolicense-cli/internal/model"
)

func displayDate(s string) string {
	if strings.TrimSpace(s) == "" {
		return glyphEmDash()
	}
	return s
}

func displayText(s string) string {
	if strings.TrimSpace(s) == "" {
		return glyphEmDash()
	}
	return strings.TrimSpace(s)
}

func usageChips(u model.UsageRights) string {
	if len(u) == 0 {
		return "no usage rights"
	}
	return strings.Join(u.Strings(), " "+glyphBullet()+" ")
}
