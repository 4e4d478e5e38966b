//    Happico: a HappyDB verbosity and topic analyzer
//    Copyright: E Du 2023-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"github.com/elena-du/happico/internal/clean"
	"github.com/elena-du/happico/internal/dtm"
	"github.com/elena-du/happico/internal/lda"
	"github.com/elena-du/happico/internal/str"
	"github.com/elena-du/happico/internal/tfidf"
)

//
// THE PIPELINE
//

// the same pipeline runs once per verbosity branch: filter the corpus with a predicate,
// normalize, build the matrix, model the topics; a failure in one branch does not touch
// the other

// AnalysisResult - everything one branch produced
type AnalysisResult struct {
	Branch string
	Total  int // moments that passed the predicate
	Kept   int // moments with tokens left after cleaning
	Vocab  int
	Model  *lda.Result
}

// runanalysis - (corpus, predicate, parameters) --> topic model; pure, no globals
func runanalysis(branch string, mm []str.HappyMoment, pred func(str.HappyMoment) bool,
	nrm *clean.Normalizer, cfg lda.Config) (*AnalysisResult, error) {

	var raw []string
	for _, hm := range mm {
		if pred(hm) {
			raw = append(raw, hm.RawText)
		}
	}

	tokens := nrm.Normalize(raw)

	matrix, err := dtm.Build(tokens)
	if err != nil {
		return nil, err
	}

	model, err := lda.Run(matrix, cfg)
	if err != nil {
		return nil, err
	}

	return &AnalysisResult{
		Branch: branch,
		Total:  len(raw),
		Kept:   matrix.Docs(),
		Vocab:  matrix.Terms(),
		Model:  model,
	}, nil
}

// countrydocs - one labeled document per moment, group key = the writer's country;
// countries below the floor would make idf jumpy, so they sit the comparison out
func countrydocs(mm []str.HappyMoment, dd []str.Demographic, nrm *clean.Normalizer,
	floor int) []tfidf.LabeledDoc {

	country := make(map[string]string, len(dd))
	for _, d := range dd {
		country[d.WID] = d.Country
	}

	percountry := make(map[string]int)
	for _, hm := range mm {
		if c := country[hm.WID]; c != "" {
			percountry[c]++
		}
	}

	var raw []string
	var groups []string
	for _, hm := range mm {
		c := country[hm.WID]
		if c == "" || percountry[c] < floor {
			continue
		}
		raw = append(raw, hm.RawText)
		groups = append(groups, c)
	}

	tokens := nrm.Normalize(raw)

	docs := make([]tfidf.LabeledDoc, len(tokens))
	for i := range tokens {
		docs[i] = tfidf.LabeledDoc{Group: groups[i], Tokens: tokens[i]}
	}
	return docs
}
