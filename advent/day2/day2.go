// Day2 prints the checksum of a list of box IDs and the letters shared by
// the two IDs that differ in exactly one position.
//
// Usage:
//
//	day2 input.txt
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"aoc2018/boxid"
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
	ids, err := boxid.Parse(f)
	if err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}
	checksum := boxid.Checksum(boxid.Tally(ids))
	_, err = fmt.Fprintf(w, "part1 %d\npart2 %s\n", checksum, boxid.Common(ids))
	return err
}
