// Program markercheck parses LICW[...] marker strings from its arguments or
// stdin and prints the parse outcome plus the point breakdown under the
// default rule tables. Handy for checking a marker before logging it.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"licwchallenge/challenge"
	"licwchallenge/marker"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			"Usage: %s [marker text...]\n\nWithout arguments, reads one marker per line from stdin.\n", os.Args[0])
	}
	flag.Parse()

	rules := challenge.DefaultRules()

	if flag.NArg() > 0 {
		check(strings.Join(flag.Args(), " "), rules)
		return
	}

	fmt.Println("enter marker text (Ctrl+C to quit)")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		check(line, rules)
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "input error: %v\n", err)
	}
}

func check(text string, rules *challenge.Rules) {
	res := marker.Scan(text)
	switch res.Outcome {
	case marker.Absent:
		fmt.Println("no marker found")
	case marker.Malformed:
		fmt.Printf("malformed marker: %s\n", res.Reason)
	case marker.Valid:
		m := res.Marker
		b, warnings := rules.Score(m)
		fmt.Printf("%s -> SPC=%s member=%d", m, m.SPC, m.MemberNumber)
		if m.BonusLetters != "" {
			fmt.Printf(" letters=%s", m.BonusLetters)
		}
		for _, c := range m.Conditions {
			fmt.Printf(" +%s", c)
		}
		fmt.Printf("\n  points: %d total (%d base + %d bonus: geo %d, letters %d, conditions %d)\n",
			b.TotalPoints, b.BasePoints, b.BonusPoints, b.GeoBonus, b.LetterBonus, b.ExtraBonus)
		for _, w := range warnings {
			fmt.Printf("  warning: %s\n", w)
		}
	}
}
