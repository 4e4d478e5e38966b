//    Happico: a HappyDB verbosity and topic analyzer
//    Copyright: E Du 2023-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package clean

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeOrderAndPasses(t *testing.T) {
	n := New(Config{
		PrimaryStops:   []string{"i", "my", "and", "are"},
		SecondaryStops: []string{"really"},
		NoiseWords:     []string{"happy"},
	})

	out := n.Normalize([]string{
		"I love my cat!",
		"I was SO happy... really happy!!! 100 times",
		"My cat and dog are friends.",
	})

	require.Len(t, out, 3)
	assert.Equal(t, []string{"love", "cat"}, out[0])
	assert.Equal(t, []string{"was", "so", "times"}, out[1])
	assert.Equal(t, []string{"cat", "dog", "friends"}, out[2])
}

func TestNormalizeIdempotent(t *testing.T) {
	n := New(DefaultConfig())

	in := []string{
		"Today I finally got my driver's license after 3 attempts!",
		"We went hiking. The weather was perfect.",
	}

	once := n.Normalize(in)

	rejoined := make([]string, len(once))
	for i := range once {
		rejoined[i] = strings.Join(once[i], " ")
	}
	twice := n.Normalize(rejoined)

	assert.Equal(t, once, twice)
}

func TestNormalizeEmptyDocumentStaysInPlace(t *testing.T) {
	n := New(Config{PrimaryStops: []string{"i", "am", "so"}, NoiseWords: []string{"happy"}})

	out := n.Normalize([]string{"I am so happy", "sunrise over mountains"})

	require.Len(t, out, 2)
	assert.Empty(t, out[0])
	assert.Equal(t, []string{"sunrise", "over", "mountains"}, out[1])
}

func TestNormalizeInputOrderPreserved(t *testing.T) {
	n := New(Config{})
	out := n.Normalize([]string{"bb aa", "cc", "aa"})
	assert.Equal(t, [][]string{{"bb", "aa"}, {"cc"}, {"aa"}}, out)
}

func TestDefaultConfigSubtractsKeepers(t *testing.T) {
	cfg := DefaultConfig()
	assert.NotContains(t, cfg.NoiseWords, "love")
	assert.NotContains(t, cfg.NoiseWords, "new")
	assert.Contains(t, cfg.PrimaryStops, "the")
	assert.Contains(t, cfg.NoiseWords, "happy")
}

func TestNormalizeStripsDigitsAndPunctuation(t *testing.T) {
	n := New(Config{})
	out := n.Normalize([]string{"it's 2019, ok? cost: $45.50..."})
	assert.Equal(t, []string{"it", "s", "ok", "cost"}, out[0])
}
