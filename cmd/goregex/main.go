// goregex - interactive regular-expression tester
//
// Reads a pattern and a subject string, then prints the full-match,
// greedy-search and global-search results. An empty pattern exits the loop.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/njhlai/goregex"
	"github.com/njhlai/goregex/internal/term"
)

// version is set at build time via -ldflags. Development builds show "dev".
var version = "dev"

const usage = `usage: goregex [-h] [-version]

Reads a regular expression and a subject string from stdin, then prints:
  full match:     whether the pattern matches the whole subject
  greedy search:  the first longest match, if any
  global search:  all non-overlapping matches, left to right

An empty pattern line exits. Prompts are suppressed when stdin is not a
terminal, so the tool can be driven by pipes:

  printf 'ba*\nbaababaaa\n' | goregex
`

func main() {
	for _, arg := range os.Args[1:] {
		switch arg {
		case "-h", "--help":
			fmt.Print(usage)
			return
		case "-version", "--version":
			fmt.Printf("goregex %s\n", version)
			return
		default:
			fmt.Fprintf(os.Stderr, "goregex: unknown argument %q\n", arg)
			fmt.Fprint(os.Stderr, usage)
			os.Exit(2)
		}
	}

	interactive := term.IsTerminal(os.Stdin.Fd())
	scanner := bufio.NewScanner(os.Stdin)

	for {
		pattern, ok := prompt(scanner, interactive, "regular expression: ")
		if !ok || pattern == "" {
			return
		}

		re, err := goregex.Compile(pattern)
		if err != nil {
			fmt.Fprintf(os.Stderr, "goregex: %v\n", err)
			continue
		}

		subject, ok := prompt(scanner, interactive, "match against:      ")
		if !ok {
			return
		}

		fmt.Printf("full match:         %v\n", re.FullMatch(subject))
		if m, found := re.GreedySearch(subject); found {
			fmt.Printf("greedy search:      %q\n", m)
		} else {
			fmt.Println("greedy search:      no match")
		}

		if matches := re.GlobalSearch(subject); len(matches) == 0 {
			fmt.Println("global search:      yielded no results")
		} else {
			fmt.Printf("global search:      yielded %d results -> \"%s\"\n",
				len(matches), strings.Join(matches, `","`))
		}
		fmt.Println()
	}
}

// prompt prints the prompt when interactive and reads one line.
func prompt(scanner *bufio.Scanner, interactive bool, text string) (string, bool) {
	if interactive {
		fmt.Print(text)
	}
	if !scanner.Scan() {
		return "", false
	}

	line := strings.TrimRight(scanner.Text(), "\r\n")
	if line != strings.TrimSpace(line) {
		fmt.Fprintln(os.Stderr, "goregex: input starts or ends with whitespace")
	}
	return line, true
}
