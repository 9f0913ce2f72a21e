package cipher

import "strings"

// Playfair is the digraph substitution cipher over a 5x5 key square with J
// merged into I.
type Playfair struct{}

func (Playfair) Name() string { return "playfair" }

func (Playfair) Encrypt(text, key string) (string, error) {
	return playfair(text, key, 1)
}

func (Playfair) Decrypt(text, key string) (string, error) {
	return playfair(text, key, -1)
}

type square struct {
	cells [5][5]byte
	pos   [26][2]int
}

func newSquare(key string) *square {
	sq := &square{}
	var seen [26]bool
	letters := make([]byte, 0, 25)
	add := func(c byte) {
		if c == 'J' {
			c = 'I'
		}
		if !seen[c-'A'] {
			seen[c-'A'] = true
			letters = append(letters, c)
		}
	}
	for _, c := range []byte(strings.ToUpper(key)) {
		if c >= 'A' && c <= 'Z' {
			add(c)
		}
	}
	for c := byte('A'); c <= 'Z'; c++ {
		if c != 'J' {
			add(c)
		}
	}
	for i, c := range letters {
		sq.cells[i/5][i%5] = c
		sq.pos[c-'A'] = [2]int{i / 5, i % 5}
	}
	sq.pos['J'-'A'] = sq.pos['I'-'A']
	return sq
}

// PlayfairSquare returns the 5x5 key square for key, row by row.
func PlayfairSquare(key string) [5]string {
	sq := newSquare(key)
	var rows [5]string
	for i := range sq.cells {
		rows[i] = string(sq.cells[i][:])
	}
	return rows
}

// playfairDigraphs reduces text to upper-case letters (J as I) and splits it
// into pairs. A doubled letter inside a pair is split with a filler, and an
// odd trailing letter is padded with one.
func playfairDigraphs(text string) [][2]byte {
	letters := make([]byte, 0, len(text))
	for _, c := range []byte(strings.ToUpper(text)) {
		if c < 'A' || c > 'Z' {
			continue
		}
		if c == 'J' {
			c = 'I'
		}
		letters = append(letters, c)
	}

	filler := func(c byte) byte {
		if c == 'X' {
			return 'Q'
		}
		return 'X'
	}

	var pairs [][2]byte
	for i := 0; i < len(letters); {
		a := letters[i]
		if i+1 < len(letters) && letters[i+1] != a {
			pairs = append(pairs, [2]byte{a, letters[i+1]})
			i += 2
			continue
		}
		pairs = append(pairs, [2]byte{a, filler(a)})
		i++
	}
	return pairs
}

func playfair(text, key string, dir int) (string, error) {
	if err := validateAlphaKey(key); err != nil {
		return "", err
	}
	pairs := playfairDigraphs(text)
	if len(pairs) == 0 {
		return "", ErrEmptyInput
	}
	sq := newSquare(key)

	out := make([]byte, 0, 2*len(pairs))
	for _, p := range pairs {
		r1, c1 := sq.pos[p[0]-'A'][0], sq.pos[p[0]-'A'][1]
		r2, c2 := sq.pos[p[1]-'A'][0], sq.pos[p[1]-'A'][1]
		switch {
		case r1 == r2:
			out = append(out, sq.cells[r1][(c1+dir+5)%5], sq.cells[r2][(c2+dir+5)%5])
		case c1 == c2:
			out = append(out, sq.cells[(r1+dir+5)%5][c1], sq.cells[(r2+dir+5)%5][c2])
		default:
			out = append(out, sq.cells[r1][c2], sq.cells[r2][c1])
		}
	}
	return string(out), nil
}
