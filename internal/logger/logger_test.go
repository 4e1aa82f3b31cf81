package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"photolicense-cli/internal/config"

	"github.com/rs/zerolog"
)

func TestNew_WritesJSONWithAppField(t *testing.T) {
	buf := &bytes.Buffer{}
	log := New(Options{Level: zerolog.DebugLevel, Output: buf})

	log.Info().Str("license_id", "lic-abc").Msg("license created")

	out := buf.String()
	for _, want := range []string{`"app":"photolicense"`, `"license_id":"lic-abc"`, `"message":"license created"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %s in entry; got %s", want, out)
		}
	}
}

func TestNew_RespectsLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	log := New(Options{Level: zerolog.WarnLevel, Output: buf})

	log.Info().Msg("quiet")
	if buf.Len() != 0 {
		t.Fatalf("expected info to be filtered at warn level; got %s", buf.String())
	}
}

func TestNew_NilOutputIsNop(t *testing.T) {
	log := New(Options{Level: zerolog.DebugLevel})
	if log.GetLevel() != zerolog.Disabled {
		t.Fatalf("expected disabled logger, got level %v", log.GetLevel())
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"":       zerolog.InfoLevel,
		"debug":  zerolog.DebugLevel,
		" WARN ": zerolog.WarnLevel,
		"bogus":  zerolog.InfoLevel,
		"error":  zerolog.ErrorLevel,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q): expected %v, got %v", in, want, got)
		}
	}
}

func TestFromConfig_AppendsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "photolicense.log")
	cfg := &config.Config{LogFile: path, LogLevel: "debug", LogFormat: "json"}

	log, closer, err := FromConfig(cfg)
	if err != nil {
		t.Fatalf("FromConfig: %v", err)
	}
	log.Debug().Msg("hello")
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(b), "hello") {
		t.Fatalf("expected entry in log file; got %q", string(b))
	}
}

func TestFromConfig_NoFileIsNop(t *testing.T) {
	log, closer, err := FromConfig(&config.Config{})
	if err != nil {
		t.Fatalf("FromConfig: %v", err)
	}
	defer closer.Close()
	if log.GetLevel() != zerolog.Disabled {
		t.Fatalf("expected disabled logger")
	}
}
