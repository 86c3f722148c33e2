// Package boxid works with box IDs: a checksum over their repeated
// letters, and the common letters of the two IDs that differ in exactly
// one position.
package boxid

import (
	"bufio"
	"io"
	"math"
	"strings"
)

// Parse reads one ID per line. Blank lines are ignored and the
// characters are not validated.
func Parse(r io.Reader) ([]string, error) {
	var ids []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(nil, math.MaxInt)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		ids = append(ids, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}

// Classify reports whether some character of id occurs exactly twice and
// whether some character occurs exactly three times.
func Classify(id string) (two, three bool) {
	counts := make(map[rune]int)
	for _, c := range id {
		counts[c]++
	}
	for _, n := range counts {
		switch n {
		case 2:
			two = true
		case 3:
			three = true
		}
	}
	return two, three
}

// Tally classifies each ID, returning parallel slices holding 1 where the
// ID has a letter appearing exactly twice (twos) or three times (threes)
// and 0 otherwise.
func Tally(ids []string) (twos, threes []int) {
	twos = make([]int, len(ids))
	threes = make([]int, len(ids))
	for i, id := range ids {
		two, three := Classify(id)
		if two {
			twos[i] = 1
		}
		if three {
			threes[i] = 1
		}
	}
	return twos, threes
}

// Checksum multiplies the sum of twos by the sum of threes.
func Checksum(twos, threes []int) int {
	var x, y int
	for _, n := range twos {
		x += n
	}
	for _, n := range threes {
		y += n
	}
	return x * y
}

// Compare returns the index of the single character at which id0 and id1
// differ. It returns false if the IDs have different lengths or differ at
// zero or more than one position.
func Compare(id0, id1 string) (int, bool) {
	return compareRunes([]rune(id0), []rune(id1))
}

func compareRunes(r0, r1 []rune) (int, bool) {
	if len(r0) != len(r1) {
		return 0, false
	}
	diff := -1
	for i := range r0 {
		if r0[i] == r1[i] {
			continue
		}
		if diff >= 0 {
			return 0, false
		}
		diff = i
	}
	if diff < 0 {
		return 0, false
	}
	return diff, true
}

// Common finds the first pair of IDs, in input order, that differ in
// exactly one position and returns their shared characters: either ID
// with the differing character removed. It returns "" if there is no such
// pair.
func Common(ids []string) string {
	runes := make([][]rune, len(ids))
	for i, id := range ids {
		runes[i] = []rune(id)
	}
	for i, r0 := range runes {
		for _, r1 := range runes[i:] {
			if j, ok := compareRunes(r0, r1); ok {
				return string(r0[:j]) + string(r0[j+1:])
			}
		}
	}
	return ""
}
