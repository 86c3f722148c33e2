// Day1 prints the frequency reached after applying a list of changes once,
// followed by the first frequency reached twice when the list is repeated.
//
// Usage:
//
//	day1 input.txt
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"aoc2018/freq"
)

func main() {
	log.SetFlags(0)
	if len(os.Args) < 2 {
		fmt.Println("Missing filename")
		os.Exit(1)
	}
	if err := run(os.Stdout, os.Args[1]); err != nil {
		log.Fatal(err)
	}
}

func run(w io.Writer, name string) error {
	f, err := os.Open(name)
	if err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}
	defer f.Close()
	changes, err := freq.Parse(f)
	if err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}
	_, err = fmt.Fprintf(w, "%d %d\n", freq.Sum(changes), freq.FirstRepeat(changes))
	return err
}
