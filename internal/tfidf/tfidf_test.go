//    Happico: a HappyDB verbosity and topic analyzer
//    Copyright: E Du 2023-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package tfidf

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// the worked example: three documents, stopwords "i", "my", "and", "are" already gone
func catdogdocs() []LabeledDoc {
	return []LabeledDoc{
		{Group: "A", Tokens: []string{"love", "cat"}},
		{Group: "A", Tokens: []string{"love", "dog"}},
		{Group: "B", Tokens: []string{"cat", "dog", "friends"}},
	}
}

func find(recs []Record, group string, term string) (Record, bool) {
	for _, r := range recs {
		if r.Group == group && r.Term == term {
			return r, true
		}
	}
	return Record{}, false
}

func TestCatDogScenario(t *testing.T) {
	recs := Score(catdogdocs())

	// "love" lives only in group A: tf = 2/4, idf = ln(2/1)
	love, ok := find(recs, "A", "love")
	require.True(t, ok)
	assert.Equal(t, 2, love.Count)
	assert.InDelta(t, 0.5, love.TF, 1e-12)
	assert.InDelta(t, math.Log(2), love.IDF, 1e-12)
	assert.InDelta(t, 0.5*math.Log(2), love.Score, 1e-12)

	// "cat" and "dog" appear in every group: idf = 0 and score = 0, not an error
	for _, term := range []string{"cat", "dog"} {
		for _, g := range []string{"A", "B"} {
			r, ok := find(recs, g, term)
			require.True(t, ok, "%s/%s missing", g, term)
			assert.Zero(t, r.IDF)
			assert.Zero(t, r.Score)
		}
	}

	// "friends": only group B, tf = 1/3
	friends, ok := find(recs, "B", "friends")
	require.True(t, ok)
	assert.InDelta(t, math.Log(2)/3, friends.Score, 1e-12)

	// sparse by construction: nothing for "love" outside A
	_, ok = find(recs, "B", "love")
	assert.False(t, ok)
}

func TestScoreRoundTrip(t *testing.T) {
	for _, r := range Score(catdogdocs()) {
		assert.InDelta(t, r.TF*r.IDF, r.Score, 1e-9)
	}
}

func TestEmptyGroupOmitted(t *testing.T) {
	docs := append(catdogdocs(), LabeledDoc{Group: "C", Tokens: nil})

	recs := Score(docs)

	for _, r := range recs {
		assert.NotEqual(t, "C", r.Group)
	}
	// group count stays 2, so the idf values are untouched
	love, _ := find(recs, "A", "love")
	assert.InDelta(t, math.Log(2), love.IDF, 1e-12)
}

func TestSingleGroupScoresAllZero(t *testing.T) {
	recs := Score([]LabeledDoc{{Group: "solo", Tokens: []string{"word", "word", "other"}}})

	require.NotEmpty(t, recs)
	for _, r := range recs {
		assert.Zero(t, r.IDF)
		assert.Zero(t, r.Score)
	}
}

func TestScoreOrdering(t *testing.T) {
	recs := Score(catdogdocs())

	for i := 1; i < len(recs); i++ {
		prev, cur := recs[i-1], recs[i]
		if prev.Group == cur.Group {
			if prev.Score == cur.Score {
				assert.Less(t, prev.Term, cur.Term)
			} else {
				assert.Greater(t, prev.Score, cur.Score)
			}
		} else {
			assert.Less(t, prev.Group, cur.Group)
		}
	}
}

func TestTopN(t *testing.T) {
	recs := Score(catdogdocs())

	top := TopN(recs, 1)
	require.Len(t, top, 2) // one per group
	assert.Equal(t, "love", top[0].Term)
	assert.Equal(t, "friends", top[1].Term)
}

func TestScoreNoDocs(t *testing.T) {
	assert.Nil(t, Score(nil))
}
