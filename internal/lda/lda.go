//    Happico: a HappyDB verbosity and topic analyzer
//    Copyright: E Du 2023-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lda

import (
	"fmt"
	"math"
	"runtime"
	"sort"

	"github.com/elena-du/happico/internal/dtm"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

//
// LATENT DIRICHLET ALLOCATION via COLLAPSED GIBBS SAMPLING
//

// one independent chain per seed; every chain sweeps the corpus Iterations times,
// accumulates the topic-term distribution after BurnIn (every Thin sweeps), and the
// chain with the best log-likelihood wins; ties go to the earliest seed in the list,
// so a fixed seed list always yields the same model

const (
	// weights within this distance count as equal; ranking falls back to the term itself
	BETATOLERANCE = 1e-12
)

// Config - inference hyperparameters; zero values are filled with workable defaults
type Config struct {
	K          int      // requested topic count
	Iterations int      // gibbs sweeps per chain
	BurnIn     int      // sweeps discarded before accumulation starts
	Thin       int      // accumulate every Nth post-burn-in sweep
	Alpha      float64  // document-topic prior; 50/K if unset
	Eta        float64  // topic-term prior; 0.1 if unset
	Seeds      []uint64 // one chain per seed
	Workers    int      // chains running at once
}

// InsufficientDataError - the matrix cannot support the requested model; terminal, no retry
type InsufficientDataError struct {
	Docs   int
	Topics int
	Vocab  int
}

func (e *InsufficientDataError) Error() string {
	if e.Vocab == 0 {
		return "lda: empty vocabulary after normalization"
	}
	return fmt.Sprintf("lda: %d document(s) cannot support %d topics", e.Docs, e.Topics)
}

// TermWeight - a vocabulary term and its topic-term weight (beta)
type TermWeight struct {
	Term string
	Beta float64
}

// Topic - id in [1, K] plus a probability distribution over the vocabulary
type Topic struct {
	ID    int
	Terms []TermWeight // vocabulary order; betas sum to 1
}

// Top - the N heaviest terms of the topic; equal weights rank lexically
func (t Topic) Top(n int) []TermWeight {
	ranked := make([]TermWeight, len(t.Terms))
	copy(ranked, t.Terms)
	sort.SliceStable(ranked, func(i, j int) bool {
		if math.Abs(ranked[i].Beta-ranked[j].Beta) <= BETATOLERANCE {
			return ranked[i].Term < ranked[j].Term
		}
		return ranked[i].Beta > ranked[j].Beta
	})
	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}

// Result - the winning chain's model
type Result struct {
	Topics        []Topic
	LogLikelihood float64
	Seed          uint64
	phi           *mat.Dense
}

// Phi - the K × V topic-term matrix; each row sums to 1
func (r *Result) Phi() *mat.Dense {
	return r.phi
}

// TopTerms - the N heaviest terms for every topic 1..K
func (r *Result) TopTerms(n int) [][]TermWeight {
	tt := make([][]TermWeight, len(r.Topics))
	for i := range r.Topics {
		tt[i] = r.Topics[i].Top(n)
	}
	return tt
}

// withdefaults - fill the zero values
func (cfg Config) withdefaults() Config {
	if cfg.K <= 0 {
		cfg.K = 2
	}
	if cfg.Iterations <= 0 {
		cfg.Iterations = 2000
	}
	if cfg.BurnIn < 0 || cfg.BurnIn >= cfg.Iterations {
		cfg.BurnIn = cfg.Iterations / 4
	}
	if cfg.Thin <= 0 {
		cfg.Thin = 10
	}
	if cfg.Alpha <= 0 {
		cfg.Alpha = 50.0 / float64(cfg.K)
	}
	if cfg.Eta <= 0 {
		cfg.Eta = 0.1
	}
	if len(cfg.Seeds) == 0 {
		cfg.Seeds = []uint64{1234}
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	return cfg
}

// Run - model K topics over the document-term matrix; deterministic for a fixed seed list
func Run(m *dtm.Matrix, cfg Config) (*Result, error) {
	cfg = cfg.withdefaults()

	if m == nil || m.Docs() < cfg.K || m.Terms() == 0 {
		ie := &InsufficientDataError{Topics: cfg.K}
		if m != nil {
			ie.Docs = m.Docs()
			ie.Vocab = m.Terms()
		}
		return nil, ie
	}

	// [a] unroll the counts into per-document token streams

	docs := make([][]int, m.Docs())
	m.Counts.DoNonZero(func(term int, doc int, v float64) {
		for n := 0; n < int(v); n++ {
			docs[doc] = append(docs[doc], term)
		}
	})

	// [b] run the chains; they are independent and order-independent

	chains := make([]*chainrun, len(cfg.Seeds))
	var eg errgroup.Group
	eg.SetLimit(cfg.Workers)
	for i := range cfg.Seeds {
		i := i
		eg.Go(func() error {
			chains[i] = runchain(docs, m.Terms(), cfg, cfg.Seeds[i])
			return nil
		})
	}
	_ = eg.Wait()

	// [c] keep the best-scoring chain; earliest seed wins a tie

	best := chains[0]
	for i := 1; i < len(chains); i++ {
		if chains[i].ll > best.ll {
			best = chains[i]
		}
	}

	// [d] package the winner

	phi := mat.NewDense(cfg.K, m.Terms(), nil)
	topics := make([]Topic, cfg.K)
	for k := 0; k < cfg.K; k++ {
		phi.SetRow(k, best.phi[k])
		terms := make([]TermWeight, m.Terms())
		for w := 0; w < m.Terms(); w++ {
			terms[w] = TermWeight{Term: m.Vocab[w], Beta: best.phi[k][w]}
		}
		topics[k] = Topic{ID: k + 1, Terms: terms}
	}

	return &Result{
		Topics:        topics,
		LogLikelihood: best.ll,
		Seed:          best.seed,
		phi:           phi,
	}, nil
}

//
// A SINGLE CHAIN
//

type chainrun struct {
	seed uint64
	ll   float64
	phi  [][]float64 // K × V; rows normalized to 1
}

// runchain - one seeded collapsed gibbs chain over the corpus
func runchain(docs [][]int, nterms int, cfg Config, seed uint64) *chainrun {
	rng := rand.New(rand.NewSource(seed))

	K := cfg.K
	V := nterms
	D := len(docs)
	veta := float64(V) * cfg.Eta

	// [a] counts and random initial assignments

	ndk := make([][]int, D) // document × topic
	z := make([][]int, D)   // topic assignment per token
	nkw := make([][]int, K) // topic × term
	nk := make([]int, K)    // tokens per topic

	for k := 0; k < K; k++ {
		nkw[k] = make([]int, V)
	}
	for d := 0; d < D; d++ {
		ndk[d] = make([]int, K)
		z[d] = make([]int, len(docs[d]))
		for pos, w := range docs[d] {
			k := rng.Intn(K)
			z[d][pos] = k
			ndk[d][k]++
			nkw[k][w]++
			nk[k]++
		}
	}

	// [b] sweep

	p := make([]float64, K)
	phiacc := make([][]float64, K)
	for k := 0; k < K; k++ {
		phiacc[k] = make([]float64, V)
	}
	samples := 0

	for it := 0; it < cfg.Iterations; it++ {
		for d := 0; d < D; d++ {
			for pos, w := range docs[d] {
				k := z[d][pos]
				ndk[d][k]--
				nkw[k][w]--
				nk[k]--

				total := 0.0
				for j := 0; j < K; j++ {
					p[j] = (float64(ndk[d][j]) + cfg.Alpha) *
						(float64(nkw[j][w]) + cfg.Eta) / (float64(nk[j]) + veta)
					total += p[j]
				}

				u := rng.Float64() * total
				k = 0
				for k < K-1 && u > p[k] {
					u -= p[k]
					k++
				}

				z[d][pos] = k
				ndk[d][k]++
				nkw[k][w]++
				nk[k]++
			}
		}

		if it >= cfg.BurnIn && (it-cfg.BurnIn)%cfg.Thin == 0 {
			accumulate(phiacc, nkw, nk, cfg.Eta, veta)
			samples++
		}
	}

	if samples == 0 {
		accumulate(phiacc, nkw, nk, cfg.Eta, veta)
	}

	// [c] normalize the accumulated topic-term weights

	for k := 0; k < K; k++ {
		floats.Scale(1/floats.Sum(phiacc[k]), phiacc[k])
	}

	return &chainrun{
		seed: seed,
		ll:   loglikelihood(nkw, nk, cfg.Eta, veta),
		phi:  phiacc,
	}
}

// accumulate - add the current smoothed topic-term estimate to the running sums
func accumulate(phiacc [][]float64, nkw [][]int, nk []int, eta float64, veta float64) {
	for k := range phiacc {
		denom := float64(nk[k]) + veta
		for w := range phiacc[k] {
			phiacc[k][w] += (float64(nkw[k][w]) + eta) / denom
		}
	}
}

// loglikelihood - log p(w|z) of the final state; the standard chain comparison score
func loglikelihood(nkw [][]int, nk []int, eta float64, veta float64) float64 {
	K := len(nkw)
	V := len(nkw[0])

	lgVeta, _ := math.Lgamma(veta)
	lgEta, _ := math.Lgamma(eta)

	ll := float64(K) * (lgVeta - float64(V)*lgEta)
	for k := 0; k < K; k++ {
		for w := 0; w < V; w++ {
			lg, _ := math.Lgamma(float64(nkw[k][w]) + eta)
			ll += lg
		}
		lg, _ := math.Lgamma(float64(nk[k]) + veta)
		ll -= lg
	}
	return ll
}
