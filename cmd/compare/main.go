// Comparison tool for checking lcsdiff strategies against other diff implementations
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/pmezard/go-difflib/difflib"
	godiff "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/dacharyc/lcsdiff"
)

func main() {
	testCases := []struct {
		name string
		a, b []string
	}{
		{
			name: "Fox example (common anchor word)",
			a:    []string{"The", "quick", "brown", "fox", "jumps"},
			b:    []string{"A", "slow", "red", "fox", "leaps"},
		},
		{
			name: "Prose with common words",
			a:    strings.Split("The quick brown fox jumps over the lazy dog in the park", " "),
			b:    strings.Split("A slow red fox leaps over the sleeping cat in the garden", " "),
		},
		{
			name: "Code-like tokens",
			a:    strings.Split("func main ( ) { fmt . Println ( hello ) }", " "),
			b:    strings.Split("func main ( ) { log . Printf ( world ) }", " "),
		},
	}

	// Add a large test case
	largeA := generateLargeText(500, 0)
	largeB := generateLargeText(500, 42) // Same structure, different seed for changes
	testCases = append(testCases, struct {
		name string
		a, b []string
	}{
		name: "Large file (500 lines, scattered changes)",
		a:    largeA,
		b:    largeB,
	})

	for _, tc := range testCases {
		fmt.Printf("\n=== %s ===\n", tc.name)
		fmt.Printf("A: %d elements, B: %d elements\n", len(tc.a), len(tc.b))

		for _, s := range lcsdiff.Strategies() {
			start := time.Now()
			l, err := lcsdiff.SolveStrings(tc.a, tc.b, lcsdiff.WithStrategy(s))
			elapsed := time.Since(start)
			if err != nil {
				fmt.Printf("\nlcsdiff/%s: error: %v\n", s, err)
				continue
			}
			regions := 0
			for range lcsdiff.NewLocator(l).Changes() {
				regions++
			}
			fmt.Printf("\nlcsdiff/%-5s %v\n", s.String()+":", elapsed)
			fmt.Printf("  Common: %d  Change regions: %d\n", l.Len(), regions)
		}

		// go-diff works on strings, so map each element to one rune
		dmp := godiff.New()
		start := time.Now()
		aChars, bChars, lineArray := dmp.DiffLinesToChars(joinLines(tc.a), joinLines(tc.b))
		goDiffs := dmp.DiffCharsToLines(dmp.DiffMain(aChars, bChars, false), lineArray)
		goDiffTime := time.Since(start)
		goDiffStats := analyzeGoDiff(goDiffs)
		fmt.Printf("\ngo-diff: %v\n", goDiffTime)
		fmt.Printf("  Common: %d  Change regions: %d\n", goDiffStats.common, goDiffStats.changeRegions)

		start = time.Now()
		blocks := difflib.NewMatcher(tc.a, tc.b).GetMatchingBlocks()
		difflibTime := time.Since(start)
		common := 0
		for _, m := range blocks {
			common += m.Size
		}
		fmt.Printf("\ngo-difflib: %v\n", difflibTime)
		fmt.Printf("  Common: %d  Matching blocks: %d\n", common, len(blocks)-1)

		// Show detailed output for small cases
		if len(tc.a) <= 20 {
			out, err := lcsdiff.Unified(tc.a, tc.b, lcsdiff.WithContext(1))
			if err == nil {
				fmt.Println("\nlcsdiff output:")
				fmt.Print(out)
			}
		}
	}
}

type diffStats struct {
	common        int
	changeRegions int
}

func analyzeGoDiff(diffs []godiff.Diff) diffStats {
	var s diffStats
	inChange := false
	for _, d := range diffs {
		switch d.Type {
		case godiff.DiffEqual:
			s.common += strings.Count(d.Text, "\n")
			inChange = false
		case godiff.DiffDelete, godiff.DiffInsert:
			if !inChange {
				s.changeRegions++
				inChange = true
			}
		}
	}
	return s
}

func joinLines(lines []string) string {
	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return sb.String()
}

func generateLargeText(lines int, seed int) []string {
	words := []string{"the", "quick", "brown", "fox", "jumps", "over", "lazy", "dog",
		"func", "main", "return", "if", "else", "for", "range", "var", "const",
		"import", "package", "type", "struct", "interface", "map", "slice"}

	result := make([]string, lines)
	for i := 0; i < lines; i++ {
		// Generate a line with some words
		lineWords := make([]string, 5+i%3)
		for j := range lineWords {
			idx := (i*7 + j*13 + seed) % len(words)
			lineWords[j] = words[idx]
		}
		result[i] = strings.Join(lineWords, " ")
	}

	// Introduce some changes based on seed
	for i := seed % 10; i < lines; i += 10 + seed%5 {
		result[i] = "CHANGED LINE " + fmt.Sprint(i)
	}

	return result
}
