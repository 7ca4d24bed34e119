// Package text provides manuscript tokenization and word-frequency analysis.
//
// The analysis here feeds the visualization packages: ranked word
// frequencies drive the word-cloud view, and segment splitting drives the
// character-arc heatmap. Tokenization is Unicode-aware - a word is a
// maximal run of letters, digits, and interior apostrophes - and folding
// is lowercase so "The" and "the" count together.
package text

import (
	"sort"
	"strings"
	"unicode"
)

// WordCount pairs a word with its occurrence count.
type WordCount struct {
	Word  string `json:"word" bson:"word"`
	Count int    `json:"count" bson:"count"`
}

// Options configures frequency analysis.
type Options struct {
	// MaxWords truncates the ranked list. Zero means no truncation.
	MaxWords int

	// MinLength drops words shorter than this many runes.
	MinLength int

	// StopWords are excluded from counting. Nil selects the default
	// English list; an empty non-nil map disables filtering.
	StopWords map[string]struct{}
}

// Tokenize splits a manuscript into lowercase word tokens.
// Apostrophes inside a word are kept ("don't"), punctuation is not.
func Tokenize(s string) []string {
	var tokens []string
	var b strings.Builder

	flush := func() {
		if b.Len() > 0 {
			tokens = append(tokens, strings.Trim(b.String(), "'"))
			b.Reset()
		}
	}

	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(unicode.ToLower(r))
		case r == '\'' || r == '’':
			// Interior apostrophe; leading/trailing ones are trimmed on flush.
			b.WriteRune('\'')
		default:
			flush()
		}
	}
	flush()

	// Trimming can empty a token made only of apostrophes.
	out := tokens[:0]
	for _, t := range tokens {
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

// Frequencies counts word occurrences and returns them ranked by count
// (descending), with alphabetical order breaking ties so the result is
// deterministic.
func Frequencies(s string, opts Options) []WordCount {
	stop := opts.StopWords
	if stop == nil {
		stop = defaultStopWords
	}

	counts := make(map[string]int)
	for _, tok := range Tokenize(s) {
		if opts.MinLength > 0 && len([]rune(tok)) < opts.MinLength {
			continue
		}
		if _, skip := stop[tok]; skip {
			continue
		}
		counts[tok]++
	}

	ranked := make([]WordCount, 0, len(counts))
	for w, c := range counts {
		ranked = append(ranked, WordCount{Word: w, Count: c})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Word < ranked[j].Word
	})

	if opts.MaxWords > 0 && len(ranked) > opts.MaxWords {
		ranked = ranked[:opts.MaxWords]
	}
	return ranked
}

// Segments splits a manuscript into n parts of roughly equal word count,
// preserving word order. It returns fewer than n parts when the text has
// fewer than n words, and nil for n < 1 or empty text.
func Segments(s string, n int) []string {
	if n < 1 {
		return nil
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}
	if n > len(words) {
		n = len(words)
	}

	parts := make([]string, 0, n)
	per := len(words) / n
	rem := len(words) % n

	start := 0
	for i := 0; i < n; i++ {
		size := per
		if i < rem {
			size++
		}
		parts = append(parts, strings.Join(words[start:start+size], " "))
		start += size
	}
	return parts
}

// Mentions counts case-insensitive whole-word occurrences of name in s.
func Mentions(s, name string) int {
	if name == "" {
		return 0
	}
	target := strings.ToLower(name)
	count := 0
	for _, tok := range Tokenize(s) {
		if tok == target {
			count++
		}
	}
	return count
}
