package cipher

import (
	"fmt"
	"strconv"
	"strings"
)

// RailFence is the zig-zag transposition cipher. Its key is the rail count.
type RailFence struct{}

func (RailFence) Name() string { return "railfence" }

// Encrypt writes text along the rails and reads each rail in turn.
func (RailFence) Encrypt(text, key string) (string, error) {
	rails, err := parseRails(key)
	if err != nil {
		return "", err
	}
	if text == "" {
		return "", ErrEmptyInput
	}
	return RailFenceEncrypt(text, rails), nil
}

// Decrypt reverses Encrypt.
func (RailFence) Decrypt(text, key string) (string, error) {
	rails, err := parseRails(key)
	if err != nil {
		return "", err
	}
	if text == "" {
		return "", ErrEmptyInput
	}
	return RailFenceDecrypt(text, rails), nil
}

func parseRails(key string) (int, error) {
	if key == "" {
		return 0, fmt.Errorf("%w: key must not be empty", ErrInvalidKey)
	}
	n, err := strconv.Atoi(strings.TrimSpace(key))
	if err != nil || n < 2 {
		return 0, fmt.Errorf("%w: rail fence key must be a number greater than 1", ErrInvalidKey)
	}
	return n, nil
}

// railRows returns, for each rune position, the rail it is written on.
func railRows(length, rails int) []int {
	rows := make([]int, length)
	row, step := 0, 1
	for i := range rows {
		rows[i] = row
		if row == 0 {
			step = 1
		} else if row == rails-1 {
			step = -1
		}
		row += step
	}
	return rows
}

// RailFenceEncrypt enciphers text on the given number of rails. Fewer than two
// rails leave the text unchanged.
func RailFenceEncrypt(text string, rails int) string {
	if rails <= 1 {
		return text
	}
	runes := []rune(text)
	buckets := make([][]rune, rails)
	for i, row := range railRows(len(runes), rails) {
		buckets[row] = append(buckets[row], runes[i])
	}
	var b strings.Builder
	for _, r := range buckets {
		b.WriteString(string(r))
	}
	return b.String()
}

// RailFenceDecrypt deciphers text produced by RailFenceEncrypt.
func RailFenceDecrypt(text string, rails int) string {
	if rails <= 1 {
		return text
	}
	runes := []rune(text)
	rows := railRows(len(runes), rails)

	counts := make([]int, rails)
	for _, row := range rows {
		counts[row]++
	}
	buckets := make([][]rune, rails)
	pos := 0
	for i, n := range counts {
		buckets[i] = runes[pos : pos+n]
		pos += n
	}

	out := make([]rune, len(runes))
	next := make([]int, rails)
	for i, row := range rows {
		out[i] = buckets[row][next[row]]
		next[row]++
	}
	return string(out)
}

// RailFencePattern lays text out on the zig-zag grid, one string per rail,
// with spaces where a rail has no character.
func RailFencePattern(text string, rails int) []string {
	if text == "" || rails < 2 {
		return nil
	}
	runes := []rune(text)
	grid := make([][]rune, rails)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", len(runes)))
	}
	for i, row := range railRows(len(runes), rails) {
		grid[row][i] = runes[i]
	}
	out := make([]string, rails)
	for i, r := range grid {
		out[i] = string(r)
	}
	return out
}
