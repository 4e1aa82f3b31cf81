package tui

import (
	"errors"
	"net/url"
	"os/exec"
	"runtime"
	"strings"
)

var errNotOpenable = errors.New("not an http(s) URL")

// openURL hands an http(s) URL to the platform opener. Other schemes are refused
// so a record can't launch arbitrary local handlers.
func openURL(raw string) error {
	raw = strings.TrimSpace(raw)
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errNotOpenable
	}

	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", raw)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", raw)
	default:
		cmd = exec.Command("xdg-open", raw)
	}
	return cmd.Start()
}
