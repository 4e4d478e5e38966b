//    Happico: a HappyDB verbosity and topic analyzer
//    Copyright: E Du 2023-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package demo

import (
	"errors"
	"math"

	"github.com/elena-du/happico/internal/str"
)

//
// DEMOGRAPHIC REPAIR
//

// some writers claim to be 2 or 233 years old; the fix order is (1) a caller-supplied
// per-writer override, (2) the mean of plausible ages in the writer's group, (3) the
// global mean of plausible ages; the overrides are data about a specific crowd-sourcing
// run, so they ride in on the config rather than living here

// ErrNoUsableAges - not one age in the whole dataset fell inside the plausible range
var ErrNoUsableAges = errors.New("demographic repair: no age inside the plausible range")

// RepairConfig - the imputation policy, spelled out
type RepairConfig struct {
	MinAge    float64
	MaxAge    float64
	Overrides map[string]float64           // WID -> corrected age
	GroupKey  func(str.Demographic) string // peers for the group-mean fallback
}

// DefaultGroupKey - impute from writers of the same gender and marital status
func DefaultGroupKey(d str.Demographic) string {
	return d.Gender + "|" + d.Marital
}

// plausible - in range and an actual number
func (c RepairConfig) plausible(age float64) bool {
	return !math.IsNaN(age) && age >= c.MinAge && age <= c.MaxAge
}

// RepairAges - return a copy of the rows with every implausible age replaced
func RepairAges(dd []str.Demographic, cfg RepairConfig) ([]str.Demographic, error) {
	if cfg.GroupKey == nil {
		cfg.GroupKey = DefaultGroupKey
	}

	// [a] means over the plausible subset

	gsum := make(map[string]float64)
	gcount := make(map[string]int)
	var sum float64
	var count int

	for _, d := range dd {
		if !cfg.plausible(d.Age) {
			continue
		}
		k := cfg.GroupKey(d)
		gsum[k] += d.Age
		gcount[k]++
		sum += d.Age
		count++
	}

	if count == 0 {
		return nil, ErrNoUsableAges
	}
	global := sum / float64(count)

	// [b] rewrite the dubious rows

	out := make([]str.Demographic, len(dd))
	for i, d := range dd {
		if cfg.plausible(d.Age) {
			out[i] = d
			continue
		}
		if ov, ok := cfg.Overrides[d.WID]; ok {
			d.Age = ov
		} else if k := cfg.GroupKey(d); gcount[k] > 0 {
			d.Age = gsum[k] / float64(gcount[k])
		} else {
			d.Age = global
		}
		out[i] = d
	}

	return out, nil
}
