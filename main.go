//    Happico: a HappyDB verbosity and topic analyzer
//    Copyright: E Du 2023-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/elena-du/happico/internal/clean"
	"github.com/elena-du/happico/internal/demo"
	"github.com/elena-du/happico/internal/hd"
	"github.com/elena-du/happico/internal/lda"
	"github.com/elena-du/happico/internal/m"
	"github.com/elena-du/happico/internal/report"
	"github.com/elena-du/happico/internal/str"
	"github.com/elena-du/happico/internal/tfidf"
	"github.com/elena-du/happico/internal/vv"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/google/uuid"
	"github.com/pkg/profile"
)

//
// the question: do people who go on and on about their happy moment talk about different
// things than people who keep it short? two branches of the same pipeline answer it, and
// a by-country tf-idf pass rounds out the picture
//

var (
	Config str.CurrentConfiguration
	Msg    = m.NewMessageMaker(vv.DEFAULTLOGLEVEL, false, m.LaunchStruct{
		Name:       vv.MYNAME,
		Version:    vv.VERSION,
		Shortname:  vv.SHORTNAME,
		LaunchTime: time.Now(),
	})
)

func main() {
	const (
		FETCHED  = "fetched C3%sC0 (%d bytes)"
		BRANCHOK = "%s: modeled %d topics; chain seed %d; log-likelihood %.2f"
		BRANCHNO = "%s branch failed and was skipped: %v"
		CHARTED  = "wrote charts to C3%sC0"
		DONE     = "analysis complete in %.2fs"
		GARR     = "garrulous"
		TACI     = "taciturn"
	)

	start := time.Now()
	ConfigAtLaunch()

	if Config.Profile {
		defer profile.Start().Stop()
	}

	if !Config.QuietStart {
		printversion()
	}

	runid := uuid.New().String()[0:8]
	Msg.FYI("run id " + runid)

	// [a] fetch and parse; either failure is fatal for the whole run

	mraw, err := hd.Fetch(Config.MomentsURL, Config.FetchTries)
	Msg.EF(err, "fetch")
	Msg.PEEK(Msg.Color(fmt.Sprintf(FETCHED, Config.MomentsURL, len(mraw))))

	draw, err := hd.Fetch(Config.DemographicURL, Config.FetchTries)
	Msg.EF(err, "fetch")
	Msg.PEEK(Msg.Color(fmt.Sprintf(FETCHED, Config.DemographicURL, len(draw))))

	moments, err := hd.ParseMoments(mraw)
	Msg.EF(err, "parse")

	demos, err := hd.ParseDemographics(draw)
	Msg.EF(err, "parse")

	// [b] demographic repair; the overrides are whatever the config carried in

	demos, err = demo.RepairAges(demos, demo.RepairConfig{
		MinAge:    Config.MinAge,
		MaxAge:    Config.MaxAge,
		Overrides: Config.AgeOverrides,
	})
	Msg.EF(err, "repair")

	// [c] the two verbosity branches; independent, so one may fail alone

	nrm := newnormalizer()
	lcfg := lda.Config{
		K:          Config.Topics,
		Iterations: Config.Iterations,
		BurnIn:     Config.BurnIn,
		Thin:       Config.Thin,
		Seeds:      Config.Seeds,
		Workers:    Config.WorkerCount,
	}

	threshold := Config.SentenceThreshold
	branches := []struct {
		name string
		pred func(str.HappyMoment) bool
	}{
		{GARR, func(hm str.HappyMoment) bool { return hm.Sentences > threshold }},
		{TACI, func(hm str.HappyMoment) bool { return hm.Sentences <= threshold }},
	}

	var allcharts []*charts.Bar
	for _, b := range branches {
		res, e := runanalysis(b.name, moments, b.pred, nrm, lcfg)
		if e != nil {
			Msg.CRIT(fmt.Sprintf(BRANCHNO, b.name, e))
			continue
		}
		Msg.NOTE(fmt.Sprintf(BRANCHOK, res.Branch, Config.Topics, res.Model.Seed, res.Model.LogLikelihood))
		report.Summary(os.Stdout, res.Branch, res.Total, res.Kept, res.Vocab)
		report.TopicTable(os.Stdout, res.Model, Config.TopN)
		allcharts = append(allcharts, report.TopicBars(res.Branch, res.Model, Config.TopN)...)
	}

	// [d] which words make each country's happiness its own?

	docs := countrydocs(moments, demos, nrm, vv.MINGROUPMOMENTS)
	recs := tfidf.Score(docs)
	if len(recs) > 0 {
		report.TFIDFTable(os.Stdout, recs, Config.TopN)
		allcharts = append(allcharts, report.TFIDFBars(recs, Config.TopN)...)
	}

	// [e] the html artifact

	if len(allcharts) > 0 {
		fn, e := report.WriteHTML(Config.OutputDir, runid, allcharts)
		Msg.EF(e, "charts")
		Msg.MAND(Msg.Color(fmt.Sprintf(CHARTED, fn)))
	}

	Msg.MAND(fmt.Sprintf(DONE, time.Since(start).Seconds()))
}

// newnormalizer - the default exclusion lists plus any extra noise words from the config
func newnormalizer() *clean.Normalizer {
	ccf := clean.DefaultConfig()
	ccf.NoiseWords = append(ccf.NoiseWords, Config.NoiseWords...)
	return clean.New(ccf)
}
