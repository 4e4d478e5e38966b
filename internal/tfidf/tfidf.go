//    Happico: a HappyDB verbosity and topic analyzer
//    Copyright: E Du 2023-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package tfidf

import (
	"math"
	"sort"
)

//
// TF-IDF BY GROUP
//

// the "document" here is a whole collection: all moments from Ukraine vs all moments
// from the USA, say; tf is relative to the group's token total and df counts groups,
// not individual narratives; swapping in classic per-document tf-idf would change the
// meaning of every score

// LabeledDoc - one tokenized document carrying its group key
type LabeledDoc struct {
	Group  string
	Tokens []string
}

// Record - one observed (group, term) pair; unobserved pairs get no record
type Record struct {
	Group string
	Term  string
	Count int     // raw occurrences of the term in the group
	TF    float64 // Count / total terms in the group
	IDF   float64 // ln(total groups / groups containing the term)
	Score float64 // TF × IDF
}

// Score - compute tf-idf for every (group, term) pair actually observed
func Score(docs []LabeledDoc) []Record {
	// [a] pool tokens by group; a group whose every document cleaned down to nothing
	// simply never appears in the output

	counts := make(map[string]map[string]int) // group -> term -> n
	totals := make(map[string]int)            // group -> token total
	for _, d := range docs {
		if len(d.Tokens) == 0 {
			continue
		}
		if _, ok := counts[d.Group]; !ok {
			counts[d.Group] = make(map[string]int)
		}
		for _, t := range d.Tokens {
			counts[d.Group][t]++
			totals[d.Group]++
		}
	}

	if len(counts) == 0 {
		return nil
	}

	// [b] document frequency over groups

	df := make(map[string]int) // term -> number of groups containing it
	for _, terms := range counts {
		for t := range terms {
			df[t]++
		}
	}

	ngroups := float64(len(counts))

	// [c] score; a term present in every group gets idf 0 and score 0, which is
	// an answer, not an error

	var recs []Record
	for g, terms := range counts {
		gtotal := float64(totals[g])
		for t, n := range terms {
			tf := float64(n) / gtotal
			idf := math.Log(ngroups / float64(df[t]))
			recs = append(recs, Record{
				Group: g,
				Term:  t,
				Count: n,
				TF:    tf,
				IDF:   idf,
				Score: tf * idf,
			})
		}
	}

	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].Group != recs[j].Group {
			return recs[i].Group < recs[j].Group
		}
		if recs[i].Score != recs[j].Score {
			return recs[i].Score > recs[j].Score
		}
		return recs[i].Term < recs[j].Term
	})

	return recs
}

// TopN - at most N records per group; input assumed in Score() order
func TopN(recs []Record, n int) []Record {
	seen := make(map[string]int)
	var out []Record
	for _, r := range recs {
		if seen[r.Group] >= n {
			continue
		}
		seen[r.Group]++
		out = append(out, r)
	}
	return out
}
