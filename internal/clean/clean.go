//    Happico: a HappyDB verbosity and topic analyzer
//    Copyright: E Du 2023-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package clean

import (
	"regexp"
	"strings"

	"github.com/elena-du/happico/internal/gen"
)

//
// TEXT NORMALIZATION
//

// the order of the passes matters; each pass is applied to the whole corpus before the next:
// lowercase --> strip punctuation --> strip digit runs --> collapse whitespace -->
// primary stopwords --> secondary stopwords --> caller-supplied noise words

// Config - the word-exclusion lists are configuration, not module constants
type Config struct {
	PrimaryStops   []string
	SecondaryStops []string
	NoiseWords     []string
}

// DefaultConfig - the standard lists (minus the keepers) plus the stock happy-moment noise terms
func DefaultConfig() Config {
	var c Config
	c.PrimaryStops = getprimarystops()
	c.SecondaryStops = getsecondarystops()
	c.NoiseWords = getnoisewords()
	return c
}

// Normalizer - turns raw documents into cleaned token lists; pure, no hidden state
type Normalizer struct {
	primary   map[string]struct{}
	secondary map[string]struct{}
	noise     map[string]struct{}
}

var (
	notachar = regexp.MustCompile(`[^\sa-z0-9]`)
	digits   = regexp.MustCompile(`[0-9]+`)
	manyws   = regexp.MustCompile(`\s+`)
)

// New - build a Normalizer around the caller's exclusion lists; the lists are used as given
func New(cfg Config) *Normalizer {
	return &Normalizer{
		primary:   gen.ToSet(cfg.PrimaryStops),
		secondary: gen.ToSet(cfg.SecondaryStops),
		noise:     gen.ToSet(cfg.NoiseWords),
	}
}

// Normalize - one cleaned token list per input document, in input order; empties stay in place
// so that the caller can line results up against the source rows before dropping them
func (n *Normalizer) Normalize(docs []string) [][]string {
	// [a] character-level passes across the whole corpus

	flat := make([]string, len(docs))
	for i := 0; i < len(docs); i++ {
		flat[i] = strings.ToLower(docs[i])
	}
	for i := 0; i < len(flat); i++ {
		flat[i] = notachar.ReplaceAllString(flat[i], " ")
	}
	for i := 0; i < len(flat); i++ {
		flat[i] = digits.ReplaceAllString(flat[i], " ")
	}
	for i := 0; i < len(flat); i++ {
		flat[i] = strings.TrimSpace(manyws.ReplaceAllString(flat[i], " "))
	}

	// [b] token-level passes: primary stops, then secondary, then noise

	tokenized := make([][]string, len(flat))
	for i := 0; i < len(flat); i++ {
		if len(flat[i]) == 0 {
			tokenized[i] = []string{}
			continue
		}
		tokenized[i] = strings.Split(flat[i], " ")
	}

	tokenized = dropwords(tokenized, n.primary)
	tokenized = dropwords(tokenized, n.secondary)
	tokenized = dropwords(tokenized, n.noise)

	return tokenized
}

// dropwords - remove every member of the set from every document
func dropwords(docs [][]string, stops map[string]struct{}) [][]string {
	out := make([][]string, len(docs))
	for i := 0; i < len(docs); i++ {
		kept := make([]string, 0, len(docs[i]))
		for j := 0; j < len(docs[i]); j++ {
			if _, s := stops[docs[i][j]]; s {
				continue
			}
			kept = append(kept, docs[i][j])
		}
		out[i] = kept
	}
	return out
}
