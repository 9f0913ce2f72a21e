package catalog

import (
	"strings"
	"testing"

	"github.com/joestump/cryptolab/internal/cipher"
)

func TestLoad(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	wantNames := []string{"railfence", "vigenere", "playfair", "aes", "des", "rsa", "ecies", "dh", "ecdh"}
	all := c.All()
	if len(all) != len(wantNames) {
		t.Fatalf("len(All()) = %d, want %d", len(all), len(wantNames))
	}
	for i, name := range wantNames {
		if all[i].Name != name {
			t.Errorf("All()[%d].Name = %q, want %q", i, all[i].Name, name)
		}
		if all[i].HTML == "" {
			t.Errorf("%s: rendered description is empty", name)
		}
	}
}

func TestLoad_SymmetricEntriesHaveCiphers(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	sym := c.ByFamily(FamilySymmetric)
	if len(sym) != 5 {
		t.Fatalf("len(ByFamily(symmetric)) = %d, want 5", len(sym))
	}
	for _, a := range sym {
		if _, err := cipher.Lookup(a.Name); err != nil {
			t.Errorf("symmetric entry %q has no registered cipher: %v", a.Name, err)
		}
		if a.KeyHint == "" {
			t.Errorf("symmetric entry %q has no key hint", a.Name)
		}
	}
	if got := len(c.ByFamily(FamilyKeyExchange)); got != 2 {
		t.Errorf("len(ByFamily(key-exchange)) = %d, want 2", got)
	}
}

func TestGet(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	a, ok := c.Get("vigenere")
	if !ok {
		t.Fatal("Get(vigenere) not found")
	}
	if !strings.Contains(string(a.HTML), "<table>") {
		t.Errorf("vigenere description should render its table, got %s", a.HTML)
	}
	if _, ok := c.Get("enigma"); ok {
		t.Error("Get(enigma) found, want missing")
	}
}

func TestParse_SanitizesHTML(t *testing.T) {
	doc := `
algorithms:
  - name: evil
    title: Evil
    family: symmetric
    description: |
      Hello <script>alert(1)</script> **world**
`
	c, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	a, _ := c.Get("evil")
	if strings.Contains(string(a.HTML), "<script>") {
		t.Errorf("HTML contains a script tag: %s", a.HTML)
	}
	if !strings.Contains(string(a.HTML), "<strong>world</strong>") {
		t.Errorf("HTML = %s, want rendered markdown", a.HTML)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{name: "missing name", doc: "algorithms:\n  - family: symmetric\n", want: "without a name"},
		{name: "duplicate", doc: "algorithms:\n  - {name: a, family: symmetric}\n  - {name: a, family: symmetric}\n", want: "duplicate"},
		{name: "bad family", doc: "algorithms:\n  - {name: a, family: quantum}\n", want: "unknown family"},
		{name: "bad yaml", doc: "algorithms: [", want: "parse catalog"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Parse err = %v, want containing %q", err, tt.want)
			}
		})
	}
}
