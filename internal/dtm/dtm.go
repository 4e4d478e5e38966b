//    Happico: a HappyDB verbosity and topic analyzer
//    Copyright: E Du 2023-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package dtm

import (
	"errors"
	"strings"

	"github.com/james-bowman/nlp"
	"github.com/james-bowman/sparse"
)

//
// DOCUMENT-TERM MATRIX
//

// ErrNoDocuments - nothing survived normalization; there is no matrix to build
var ErrNoDocuments = errors.New("no documents with surviving tokens")

// Matrix - sparse term counts (terms × documents) plus the retained document index set
type Matrix struct {
	Counts *sparse.CSR // rows = vocabulary terms, columns = retained documents
	Vocab  []string    // index-ordered vocabulary; derived, not predefined
	Kept   []int       // original corpus index of each column; dense, no gaps
}

// Docs - number of retained documents
func (m *Matrix) Docs() int {
	_, c := m.Counts.Dims()
	return c
}

// Terms - vocabulary size
func (m *Matrix) Terms() int {
	r, _ := m.Counts.Dims()
	return r
}

// Build - turn cleaned token lists into a count matrix; documents that normalized to zero
// tokens are dropped here so that every column has at least one non-zero entry and the
// column index space is compact for the modeler
func Build(tokens [][]string) (*Matrix, error) {
	// [a] drop the empties and remember who survived

	var kept []int
	var joined []string
	for i := 0; i < len(tokens); i++ {
		if len(tokens[i]) == 0 {
			continue
		}
		kept = append(kept, i)
		joined = append(joined, strings.Join(tokens[i], " "))
	}

	if len(kept) == 0 {
		return nil, ErrNoDocuments
	}

	// [b] vectorise; the vocabulary is assigned indices in encounter order, so the
	// result is deterministic for a given corpus

	vectoriser := nlp.NewCountVectoriser()
	counts, err := vectoriser.FitTransform(joined...)
	if err != nil {
		return nil, err
	}

	csr, ok := counts.(*sparse.CSR)
	if !ok {
		// the vectoriser returns CSR today; rebuild if the concrete type ever changes
		r, c := counts.Dims()
		dok := sparse.NewDOK(r, c)
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				if v := counts.At(i, j); v != 0 {
					dok.Set(i, j, v)
				}
			}
		}
		csr = dok.ToCSR()
	}

	// [c] flatten the vocabulary map into an index-ordered slice

	vocab := make([]string, len(vectoriser.Vocabulary))
	for k, v := range vectoriser.Vocabulary {
		vocab[v] = k
	}

	return &Matrix{Counts: csr, Vocab: vocab, Kept: kept}, nil
}
