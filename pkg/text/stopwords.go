package text

import "strings"

// defaultStopWordList holds the common English function words excluded
// from frequency analysis by default. Ubiquitous words would otherwise
// dominate every word cloud.
const defaultStopWordList = `
a about above after again against all am an and any are aren't as at
be because been before being below between both but by
can't cannot could couldn't
did didn't do does doesn't doing don't down during
each
few for from further
had hadn't has hasn't have haven't having he he'd he'll he's her here
here's hers herself him himself his how how's
i i'd i'll i'm i've if in into is isn't it it's its itself
let's
me more most mustn't my myself
no nor not
of off on once only or other ought our ours ourselves out over own
said same shan't she she'd she'll she's should shouldn't so some such
than that that's the their theirs them themselves then there there's
these they they'd they'll they're they've this those through to too
under until up upon
very
was wasn't we we'd we'll we're we've were weren't what what's when
when's where where's which while who who's whom why why's will with
won't would wouldn't
you you'd you'll you're you've your yours yourself yourselves
`

var defaultStopWords = func() map[string]struct{} {
	m := make(map[string]struct{})
	for _, w := range strings.Fields(defaultStopWordList) {
		m[w] = struct{}{}
	}
	return m
}()

// DefaultStopWords returns a copy of the built-in English stop-word set.
// Callers may extend the copy and pass it back via Options.StopWords.
func DefaultStopWords() map[string]struct{} {
	m := make(map[string]struct{}, len(defaultStopWords))
	for w := range defaultStopWords {
		m[w] = struct{}{}
	}
	return m
}
