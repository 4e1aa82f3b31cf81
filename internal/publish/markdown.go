// Package publish renders license records as Markdown for the detail view and
// for CLI output.
package publish

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"photolicense-cli/internal/model"
	"photolicense-cli/internal/statusutil"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

const none = "—"

// FormatUSD renders a price as "$1,234.50".
func FormatUSD(p decimal.Decimal) string {
	neg := p.IsNegative()
	p = p.Abs().Round(2)
	fixed := p.StringFixed(2)
	out := "$" + humanize.Comma(p.IntPart()) + "." + fixed[len(fixed)-2:]
	if neg {
		out = "-" + out
	}
	return out
}

// ExpiryHint is a relative label for an expiry date, e.g. "in 3 weeks" or
// "2 days ago". Empty or unparseable dates yield "".
func ExpiryHint(expiry string, now time.Time) string {
	days, ok := statusutil.DaysUntil(expiry, now)
	if !ok {
		return ""
	}
	switch days {
	case 0:
		return "today"
	case 1:
		return "tomorrow"
	case -1:
		return "yesterday"
	}
	exp, err := statusutil.ParseDate(expiry, now.Location())
	if err != nil {
		return ""
	}
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	rel := humanize.RelTime(exp, today, "ago", "")
	if days > 0 {
		return "in " + strings.TrimSpace(rel)
	}
	return rel
}

func RenewalLabel(l model.License) string {
	if l.AutoRenewal {
		return "Auto-renewal"
	}
	return "Manual renewal"
}

// RenderLicenseMarkdown renders one record with all of its fields.
func RenderLicenseMarkdown(l model.License, now time.Time) string {
	var buf bytes.Buffer
	writeLn := func(s string) {
		buf.WriteString(s)
		buf.WriteString("\n")
	}

	writeLn("# " + orNone(l.Photographer))
	writeLn("")
	writeLn(fmt.Sprintf("**%s** license, **%s**", orNone(string(l.LicenseType)), l.Status.Label()))
	writeLn("")
	writeLn("| Field | Value |")
	writeLn("|---|---|")
	row := func(k, v string) {
		writeLn("| " + k + " | " + cell(v) + " |")
	}
	row("ID", l.ID)
	row("Photo URL", orNone(l.PhotoURL))
	row("Client", orNone(l.ClientName))
	row("Client email", orNone(l.ClientEmail))
	row("Price", FormatUSD(l.Price))
	row("Start date", orNone(l.StartDate))
	row("Expiry date", withHint(l.ExpiryDate, now))
	row("Renewal", RenewalLabel(l))
	row("Usage rights", rightsList(l.UsageRights))
	writeLn("")

	writeLn("## Renewal terms")
	writeLn("")
	if terms := strings.TrimSpace(l.RenewalTerms); terms != "" {
		writeLn(terms)
	} else {
		writeLn("_None recorded._")
	}
	return buf.String()
}

// RenderIndexMarkdown renders a summary table of records in the given order,
// followed by status counts and the price total.
func RenderIndexMarkdown(ls []model.License, now time.Time) string {
	var buf bytes.Buffer
	writeLn := func(s string) {
		buf.WriteString(s)
		buf.WriteString("\n")
	}

	writeLn("# Photo Licenses")
	writeLn("")
	if len(ls) == 0 {
		writeLn("_No licenses._")
		return buf.String()
	}

	writeLn("| Photographer | Type | Status | Client | Expires | Price |")
	writeLn("|---|---|---|---|---|---|")
	counts := map[model.Status]int{}
	total := decimal.Zero
	for _, l := range ls {
		counts[l.Status]++
		total = total.Add(l.Price)
		writeLn(fmt.Sprintf("| %s | %s | %s | %s | %s | %s |",
			cell(orNone(l.Photographer)),
			cell(orNone(string(l.LicenseType))),
			l.Status.Label(),
			cell(orNone(l.ClientName)),
			cell(withHint(l.ExpiryDate, now)),
			FormatUSD(l.Price),
		))
	}
	writeLn("")
	writeLn(fmt.Sprintf("%d active, %d expiring soon, %d expired. Total %s.",
		counts[model.StatusActive],
		counts[model.StatusExpiringSoon],
		counts[model.StatusExpired],
		FormatUSD(total),
	))
	return buf.String()
}

func withHint(expiry string, now time.Time) string {
	s := orNone(expiry)
	if hint := ExpiryHint(expiry, now); hint != "" {
		s += " (" + hint + ")"
	}
	return s
}

func rightsList(u model.UsageRights) string {
	if len(u) == 0 {
		return none
	}
	return strings.Join(u.Strings(), ", ")
}

func orNone(s string) string {
	if strings.TrimSpace(s) == "" {
		return none
	}
	return strings.TrimSpace(s)
}

// cell keeps a value inside one Markdown table cell.
func cell(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "|", `\|`)
}
