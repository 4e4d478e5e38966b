//    Happico: a HappyDB verbosity and topic analyzer
//    Copyright: E Du 2023-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elena-du/happico/internal/clean"
	"github.com/elena-du/happico/internal/lda"
	"github.com/elena-du/happico/internal/str"
	"github.com/elena-du/happico/internal/vv"
)

func TestParseSeeds(t *testing.T) {
	ss, err := parseseeds("1234,5678")
	require.NoError(t, err)
	assert.Equal(t, []uint64{1234, 5678}, ss)

	ss, err = parseseeds(" 42 ")
	require.NoError(t, err)
	assert.Equal(t, []uint64{42}, ss)

	_, err = parseseeds("12,potato")
	assert.Error(t, err)

	_, err = parseseeds("-1")
	assert.Error(t, err)
}

func TestBuildDefaultConfig(t *testing.T) {
	c := BuildDefaultConfig()
	assert.Equal(t, vv.DEFAULTTOPICS, c.Topics)
	assert.Equal(t, vv.DEFAULTITERATIONS, c.Iterations)
	assert.Equal(t, vv.DefaultSeeds, c.Seeds)
	assert.Equal(t, vv.MOMENTSURL, c.MomentsURL)
	assert.NotNil(t, c.AgeOverrides)
}

func testmoments() []str.HappyMoment {
	txt := []string{
		"I was so happy because my cat purred.",
		"My cat and my dog played together.",
		"The cat slept on the dog all day.",
		"I fixed the engine and it started.",
		"The engine and the motor ran well.",
		"My motor finally started today.",
	}
	mm := make([]str.HappyMoment, len(txt))
	for i, s := range txt {
		mm[i] = str.HappyMoment{
			HMID:      string(rune('a' + i)),
			WID:       string(rune('1' + i)),
			RawText:   s,
			Sentences: 1 + i%3,
		}
	}
	return mm
}

func TestRunAnalysis(t *testing.T) {
	mm := testmoments()
	nrm := clean.New(clean.DefaultConfig())
	cfg := lda.Config{K: 2, Iterations: 100, BurnIn: 20, Thin: 5, Seeds: []uint64{7}, Workers: 1}

	res, err := runanalysis("terse", mm, func(h str.HappyMoment) bool { return h.Sentences <= 2 }, nrm, cfg)
	require.NoError(t, err)

	assert.Equal(t, "terse", res.Branch)
	assert.Equal(t, 4, res.Total, "two of six moments have three sentences")
	assert.LessOrEqual(t, res.Kept, res.Total)
	assert.Positive(t, res.Vocab)
	require.NotNil(t, res.Model)
	assert.Len(t, res.Model.Topics, 2)
}

func TestRunAnalysisEmptyBranch(t *testing.T) {
	mm := testmoments()
	nrm := clean.New(clean.DefaultConfig())
	cfg := lda.Config{K: 2, Iterations: 50, Seeds: []uint64{7}, Workers: 1}

	_, err := runanalysis("none", mm, func(h str.HappyMoment) bool { return false }, nrm, cfg)
	assert.Error(t, err)
}

func TestCountryDocs(t *testing.T) {
	mm := testmoments()
	dd := []str.Demographic{
		{WID: "1", Country: "USA"},
		{WID: "2", Country: "USA"},
		{WID: "3", Country: "USA"},
		{WID: "4", Country: "IND"},
		{WID: "5", Country: "IND"},
		// WID "6" has no demographic row at all
	}
	nrm := clean.New(clean.DefaultConfig())

	docs := countrydocs(mm, dd, nrm, 2)
	require.Len(t, docs, 5, "the writer without a country sits out")

	bycountry := make(map[string]int)
	for _, d := range docs {
		bycountry[d.Group]++
	}
	assert.Equal(t, 3, bycountry["USA"])
	assert.Equal(t, 2, bycountry["IND"])

	// raise the floor and IND falls below it
	docs = countrydocs(mm, dd, nrm, 3)
	require.Len(t, docs, 3)
	for _, d := range docs {
		assert.Equal(t, "USA", d.Group)
	}
}
