package main

import (
	"reflect"
	"testing"
)

func TestRewriteDateShortcutArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "no args",
			in:   []string{"photolicense"},
			want: []string{"photolicense"},
		},
		{
			name: "date first token",
			in:   []string{"photolicense", "2026-12-31"},
			want: []string{"photolicense", "status", "--expiry", "2026-12-31"},
		},
		{
			name: "date after value flag",
			in:   []string{"photolicense", "--format", "edn", "2026-12-31"},
			want: []string{"photolicense", "--format", "edn", "status", "--expiry", "2026-12-31"},
		},
		{
			name: "date after equals flag",
			in:   []string{"photolicense", "--format=edn", "2026-12-31"},
			want: []string{"photolicense", "--format=edn", "status", "--expiry", "2026-12-31"},
		},
		{
			name: "date after bool flag",
			in:   []string{"photolicense", "--pretty", "2026-12-31"},
			want: []string{"photolicense", "--pretty", "status", "--expiry", "2026-12-31"},
		},
		{
			name: "date after double dash",
			in:   []string{"photolicense", "--", "2026-12-31"},
			want: []string{"photolicense", "--", "status", "--expiry", "2026-12-31"},
		},
		{
			name: "subcommand untouched",
			in:   []string{"photolicense", "status", "--expiry", "2026-12-31"},
			want: []string{"photolicense", "status", "--expiry", "2026-12-31"},
		},
		{
			name: "invalid date untouched",
			in:   []string{"photolicense", "2026-13-01"},
			want: []string{"photolicense", "2026-13-01"},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := rewriteDateShortcutArgs(tc.in); !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("rewriteDateShortcutArgs(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}
