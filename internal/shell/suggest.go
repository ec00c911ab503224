package shell

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Suggest finds the word in vocabulary that word was most likely meant to
// be, or "" if none is close. Words that contain word's letters in order are
// preferred, e.g. sqrt for sqr. Otherwise the nearest word by edit distance
// is chosen if it is within half of word's length.
func Suggest(word string, vocabulary []string) string {
	r, _ := utf8.DecodeRuneInString(word)
	if !unicode.IsLetter(r) && r != '_' {
		return ""
	}
	ranks := fuzzy.RankFindFold(word, vocabulary)
	sort.Stable(ranks)
	if len(ranks) > 0 && ranks[0].Distance <= utf8.RuneCountInString(word) {
		return ranks[0].Target
	}

	lw := strings.ToLower(word)
	best, dist := "", utf8.RuneCountInString(word)/2+1
	for _, v := range vocabulary {
		if d := fuzzy.LevenshteinDistance(lw, v); d < dist {
			best, dist = v, d
		}
	}
	return best
}
