package cipher

import (
	"errors"
	"reflect"
	"testing"
)

func TestRailFence(t *testing.T) {
	tests := []struct {
		name  string
		plain string
		key   string
		want  string
	}{
		{name: "three rails", plain: "WEAREDISCOVEREDFLEEATONCE", key: "3", want: "WECRLTEERDSOEEFEAOCAIVDEN"},
		{name: "two rails", plain: "HELLOWORLD", key: "2", want: "HLOOLELWRD"},
		{name: "more rails than runes", plain: "abc", key: "10", want: "abc"},
		{name: "unicode", plain: "héllo wörld", key: "3", want: "horél öllwd"},
		{name: "key with spaces", plain: "HELLOWORLD", key: " 2 ", want: "HLOOLELWRD"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RailFence{}.Encrypt(tt.plain, tt.key)
			if err != nil {
				t.Fatalf("Encrypt: %v", err)
			}
			if got != tt.want {
				t.Errorf("Encrypt(%q) = %q, want %q", tt.plain, got, tt.want)
			}
			back, err := RailFence{}.Decrypt(got, tt.key)
			if err != nil {
				t.Fatalf("Decrypt: %v", err)
			}
			if back != tt.plain {
				t.Errorf("Decrypt(%q) = %q, want %q", got, back, tt.plain)
			}
		})
	}
}

func TestRailFence_InvalidKey(t *testing.T) {
	for _, key := range []string{"", "1", "0", "-3", "abc", "2.5"} {
		if _, err := (RailFence{}).Encrypt("HELLO", key); !errors.Is(err, ErrInvalidKey) {
			t.Errorf("Encrypt with key %q: err = %v, want ErrInvalidKey", key, err)
		}
	}
	if _, err := (RailFence{}).Encrypt("", "3"); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("Encrypt empty text: err = %v, want ErrEmptyInput", err)
	}
}

func TestRailFenceEncrypt_SingleRailIsIdentity(t *testing.T) {
	if got := RailFenceEncrypt("HELLO", 1); got != "HELLO" {
		t.Errorf("RailFenceEncrypt(1 rail) = %q, want HELLO", got)
	}
	if got := RailFenceDecrypt("HELLO", 0); got != "HELLO" {
		t.Errorf("RailFenceDecrypt(0 rails) = %q, want HELLO", got)
	}
}

func TestRailFencePattern(t *testing.T) {
	got := RailFencePattern("WEAREDISC", 3)
	want := []string{
		"W   E   C",
		" E R D S ",
		"  A   I  ",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("RailFencePattern = %q, want %q", got, want)
	}
	if got := RailFencePattern("abc", 1); got != nil {
		t.Errorf("RailFencePattern(1 rail) = %q, want nil", got)
	}
}

func TestVigenere(t *testing.T) {
	tests := []struct {
		name  string
		plain string
		key   string
		want  string
	}{
		{name: "classic", plain: "ATTACKATDAWN", key: "LEMON", want: "LXFOPVEFRNHR"},
		{name: "lower case key", plain: "ATTACKATDAWN", key: "lemon", want: "LXFOPVEFRNHR"},
		{name: "case and punctuation preserved", plain: "Attack at dawn!", key: "LEMON", want: "Lxfopv ef rnhr!"},
		{name: "key of A is identity", plain: "Hello, World", key: "A", want: "Hello, World"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Vigenere{}.Encrypt(tt.plain, tt.key)
			if err != nil {
				t.Fatalf("Encrypt: %v", err)
			}
			if got != tt.want {
				t.Errorf("Encrypt(%q) = %q, want %q", tt.plain, got, tt.want)
			}
			back, err := Vigenere{}.Decrypt(got, tt.key)
			if err != nil {
				t.Fatalf("Decrypt: %v", err)
			}
			if back != tt.plain {
				t.Errorf("Decrypt(%q) = %q, want %q", got, back, tt.plain)
			}
		})
	}
}

func TestVigenere_InvalidKey(t *testing.T) {
	for _, key := range []string{"", "LEM ON", "KEY1", "clé"} {
		if _, err := (Vigenere{}).Encrypt("HELLO", key); !errors.Is(err, ErrInvalidKey) {
			t.Errorf("Encrypt with key %q: err = %v, want ErrInvalidKey", key, err)
		}
	}
}

func TestPlayfair(t *testing.T) {
	tests := []struct {
		name     string
		plain    string
		key      string
		want     string
		wantBack string
	}{
		{
			name:     "doubled letters split",
			plain:    "Hide the gold in the tree stump",
			key:      "PLAYFAIREXAMPLE",
			want:     "BMODZBXDNABEKUDMUIXMMOUVIF",
			wantBack: "HIDETHEGOLDINTHETREXESTUMP",
		},
		{
			name:     "rows columns and rectangles",
			plain:    "attack",
			key:      "MONARCHY",
			want:     "RSSRDE",
			wantBack: "ATTACK",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Playfair{}.Encrypt(tt.plain, tt.key)
			if err != nil {
				t.Fatalf("Encrypt: %v", err)
			}
			if got != tt.want {
				t.Errorf("Encrypt(%q) = %q, want %q", tt.plain, got, tt.want)
			}
			back, err := Playfair{}.Decrypt(got, tt.key)
			if err != nil {
				t.Fatalf("Decrypt: %v", err)
			}
			if back != tt.wantBack {
				t.Errorf("Decrypt(%q) = %q, want %q", got, back, tt.wantBack)
			}
		})
	}
}

func TestPlayfairDigraphs_Fillers(t *testing.T) {
	tests := []struct {
		text string
		want [][2]byte
	}{
		{text: "balloon", want: [][2]byte{{'B', 'A'}, {'L', 'X'}, {'L', 'O'}, {'O', 'N'}}},
		{text: "xxa", want: [][2]byte{{'X', 'Q'}, {'X', 'A'}}},
		{text: "abx", want: [][2]byte{{'A', 'B'}, {'X', 'Q'}}},
		{text: "jam", want: [][2]byte{{'I', 'A'}, {'M', 'X'}}},
	}
	for _, tt := range tests {
		got := playfairDigraphs(tt.text)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("playfairDigraphs(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestPlayfairSquare(t *testing.T) {
	got := PlayfairSquare("PLAYFAIREXAMPLE")
	want := [5]string{"PLAYF", "IREXM", "BCDGH", "KNOQS", "TUVWZ"}
	if got != want {
		t.Errorf("PlayfairSquare = %q, want %q", got, want)
	}
}

func TestPlayfair_NoLetters(t *testing.T) {
	if _, err := (Playfair{}).Encrypt("1234 !!", "KEY"); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("err = %v, want ErrEmptyInput", err)
	}
}

func TestLookup(t *testing.T) {
	for _, name := range []string{"railfence", "vigenere", "playfair", "aes", "des", " AES "} {
		c, err := Lookup(name)
		if err != nil {
			t.Errorf("Lookup(%q): %v", name, err)
			continue
		}
		if c.Name() == "" {
			t.Errorf("Lookup(%q) returned cipher with empty name", name)
		}
	}
	if _, err := Lookup("enigma"); !errors.Is(err, ErrUnknownAlgorithm) {
		t.Errorf("Lookup(enigma) err = %v, want ErrUnknownAlgorithm", err)
	}
	want := []string{"aes", "des", "playfair", "railfence", "vigenere"}
	if got := Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}
