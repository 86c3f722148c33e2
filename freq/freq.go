// Package freq analyzes a list of frequency changes: the resulting
// frequency after one pass, and the first frequency reached twice when the
// changes are applied over and over.
package freq

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// A ParseError reports a line that is not a signed decimal integer.
type ParseError struct {
	Line int // 1-based
	Text string
	Err  error // strconv.ErrSyntax or strconv.ErrRange
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: invalid frequency change %q: %s", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parse reads one change per line, such as "+3" or "-12".
// Blank lines are ignored.
func Parse(r io.Reader) ([]int32, error) {
	var changes []int32
	scanner := bufio.NewScanner(r)
	scanner.Buffer(nil, math.MaxInt)
	var lineNum int
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		n, err := strconv.ParseInt(line, 10, 32)
		if err != nil {
			var ne *strconv.NumError
			if errors.As(err, &ne) {
				err = ne.Err
			}
			return nil, &ParseError{Line: lineNum, Text: line, Err: err}
		}
		changes = append(changes, int32(n))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return changes, nil
}

// Sum returns the frequency after applying each change once, starting
// from 0. The sum wraps on int32 overflow.
func Sum(changes []int32) int32 {
	var sum int32
	for _, c := range changes {
		sum += c
	}
	return sum
}

// FirstRepeat applies the changes cyclically, starting from 0, and returns
// the first frequency that is reached a second time. The starting 0 counts
// as reached.
//
// FirstRepeat does not return if no frequency ever repeats (for instance,
// if changes is empty or the changes never revisit a value).
func FirstRepeat(changes []int32) int32 {
	var freq int32
	seen := map[int32]struct{}{freq: {}}
	for {
		for _, c := range changes {
			freq += c
			if _, ok := seen[freq]; ok {
				return freq
			}
			seen[freq] = struct{}{}
		}
	}
}
