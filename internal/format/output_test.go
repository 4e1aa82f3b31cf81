package format

import (
	"bytes"
	"encoding/json"
	"testing"
)

type sample struct {
	ID          string   `json:"id"`
	PhotoURL    string   `json:"photoUrl"`
	Price       float64  `json:"price"`
	AutoRenewal bool     `json:"autoRenewal"`
	Rights      []string `json:"usageRights"`
	Note        *string  `json:"note"`
}

func TestWrite_JSONEnvelope(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, Envelope{Data: sample{ID: "lic-a"}}, "json", false); err != nil {
		t.Fatalf("write: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v\n%s", err, buf.String())
	}
	if _, ok := got["data"]; !ok {
		t.Fatalf("expected data key; got %v", got)
	}
	if _, ok := got["meta"]; ok {
		t.Fatalf("expected meta to be omitted when empty")
	}
}

func TestWrite_JSONDoesNotEscapeURLs(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, map[string]string{"u": "https://x.test/?a=1&b=2"}, false); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte("a=1&b=2")) {
		t.Fatalf("expected raw ampersand; got %s", buf.String())
	}
}

func TestWrite_UnknownFormat(t *testing.T) {
	if err := Write(&bytes.Buffer{}, 1, "yaml", false); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}

func TestWriteEDN_Compact(t *testing.T) {
	var buf bytes.Buffer
	v := sample{ID: "lic-a", PhotoURL: "https://x.test/p.jpg", Price: 499.99, AutoRenewal: true, Rights: []string{"Web", "Print"}}
	if err := WriteEDN(&buf, v, false); err != nil {
		t.Fatalf("write: %v", err)
	}
	want := `{:auto-renewal true :id "lic-a" :note nil :photo-url "https://x.test/p.jpg" :price 499.99 :usage-rights ["Web" "Print"]}` + "\n"
	if got := buf.String(); got != want {
		t.Fatalf("unexpected edn.\nwant: %s\ngot:  %s", want, got)
	}
}

func TestWriteEDN_Pretty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteEDN(&buf, map[string]any{"data": []any{}, "count": 2}, true); err != nil {
		t.Fatalf("write: %v", err)
	}
	want := "{\n  :count 2\n  :data []\n}\n"
	if got := buf.String(); got != want {
		t.Fatalf("unexpected pretty edn.\nwant: %q\ngot:  %q", want, got)
	}
}

func TestKeyword(t *testing.T) {
	cases := map[string]string{
		"id":               ":id",
		"photographerName": ":photographer-name",
		"client_email":     ":client-email",
		"usage rights":     ":usage-rights",
	}
	for in, want := range cases {
		if got := Keyword(in); got != want {
			t.Fatalf("Keyword(%q): expected %q, got %q", in, want, got)
		}
	}
}
