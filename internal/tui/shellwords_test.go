package tui

import (
	"reflect"
	"testing"
)

func TestSplitShellWords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"nano", []string{"nano"}},
		{"code --wait", []string{"code", "--wait"}},
		{"vim -u 'my vimrc'", []string{"vim", "-u", "my vimrc"}},
		{`emacsclient -a "" -t`, []string{"emacsclient", "-a", "-t"}},
		{`subl\ text -w`, []string{"subl text", "-w"}},
	}

	for _, tt := range tests {
		if got := splitShellWords(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Fatalf("splitShellWords(%q)=%v, want %v", tt.in, got, tt.want)
		}
	}
}
