package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/aglyzov/patricia/trie"
)

var sampleWords = []string{
	"cat", "car", "card", "care", "careful", "cart", "dog", "do", "done",
}

func main() {
	words := sampleWords
	if fi, err := os.Stdin.Stat(); err == nil && (fi.Mode()&os.ModeCharDevice) == 0 {
		words = nil
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			if line := scanner.Text(); line != "" {
				words = append(words, line)
			}
		}
	}

	t := trie.Empty[uint8, int]()
	for i, w := range words {
		t = t.Insert([]byte(w), i)
	}

	t.Dump(os.Stdout)

	println("------")

	for _, q := range []string{"car", "card", "careless", "do", "done"} {
		matched, v, rest, ok := t.Match([]byte(q))
		if !ok {
			fmt.Printf("Match(%q) -> no match\n", q)
			continue
		}
		fmt.Printf("Match(%q) -> %q=%v rest=%q\n", q, matched, v, rest)
	}

	println("------")

	for _, q := range []string{"careful"} {
		fmt.Printf("Matches(%q):\n", q)
		for m := range t.Matches([]byte(q)) {
			fmt.Printf("  prefix of length %d -> %v\n", m.Length, m.Value)
		}
	}
}
