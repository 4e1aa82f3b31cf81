package main

import (
	"os"
	"strings"
	"time"

	"photolicense-cli/internal/cli"
)

func isDateArg(s string) bool {
	s = strings.TrimSpace(s)
	if len(s) != len("2006-01-02") {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// rewriteDateShortcutArgs turns `photolicense <YYYY-MM-DD>` into
// `photolicense status --expiry <YYYY-MM-DD>`. Persistent flags may come first,
// so we look for the first positional token rather than argv[1].
func rewriteDateShortcutArgs(argv []string) []string {
	if len(argv) < 2 {
		return argv
	}

	valueFlags := map[string]bool{
		"--format": true,
	}

	for i := 1; i < len(argv); i++ {
		a := strings.TrimSpace(argv[i])
		if a == "" {
			continue
		}
		if a == "--" {
			if i+1 < len(argv) && isDateArg(argv[i+1]) {
				return splice(argv, i+1)
			}
			return argv
		}
		if strings.HasPrefix(a, "-") {
			if !strings.Contains(a, "=") && valueFlags[a] {
				i++ // skip value
			}
			continue
		}
		if isDateArg(a) {
			return splice(argv, i)
		}
		return argv
	}
	return argv
}

func splice(argv []string, at int) []string {
	out := make([]string, 0, len(argv)+2)
	out = append(out, argv[:at]...)
	out = append(out, "status", "--expiry")
	out = append(out, argv[at:]...)
	return out
}

func main() {
	os.Args = rewriteDateShortcutArgs(os.Args)

	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
