//    Happico: a HappyDB verbosity and topic analyzer
//    Copyright: E Du 2023-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToSet(t *testing.T) {
	s := ToSet([]string{"a", "b", "a"})
	assert.Len(t, s, 2)
	_, ok := s["a"]
	assert.True(t, ok)
	_, ok = s["c"]
	assert.False(t, ok)
}

func TestUnique(t *testing.T) {
	// non-consecutive repeats have to collapse too
	u := Unique([]string{"a", "a", "b", "a"})
	assert.ElementsMatch(t, []string{"a", "b"}, u)
}

func TestSetSubtraction(t *testing.T) {
	aa := []string{"a", "b", "c", "d", "g", "h"}
	bb := []string{"a", "b", "e", "f", "g"}
	assert.Equal(t, []string{"c", "d", "h"}, SetSubtraction(aa, bb))
}

func TestSetSubtractionEmpty(t *testing.T) {
	assert.Empty(t, SetSubtraction([]string{"a"}, []string{"a"}))
	assert.Equal(t, []string{"a"}, SetSubtraction([]string{"a"}, nil))
}

func TestContainsN(t *testing.T) {
	assert.Equal(t, 2, ContainsN([]int{1, 2, 1, 3}, 1))
	assert.Equal(t, 0, ContainsN([]int{1, 2, 1, 3}, 4))
}

func TestStringMapKeysIntoSlice(t *testing.T) {
	mp := map[string]int{"x": 1, "y": 2}
	assert.ElementsMatch(t, []string{"x", "y"}, StringMapKeysIntoSlice(mp))
}

func TestStringMapIntoSlice(t *testing.T) {
	mp := map[string]int{"x": 1, "y": 2}
	assert.ElementsMatch(t, []int{1, 2}, StringMapIntoSlice(mp))
}
