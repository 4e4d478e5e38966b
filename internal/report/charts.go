//    Happico: a HappyDB verbosity and topic analyzer
//    Copyright: E Du 2023-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/elena-du/happico/internal/lda"
	"github.com/elena-du/happico/internal/tfidf"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

//
// CHARTS
//

// see https://echarts.apache.org/en/option.html#series-bar

const (
	CHRTWIDTH  = "900px"
	CHRTHEIGHT = "500px"
	TOPICTITLE = "Topic %d of %d: top terms by beta (%s)"
	TFIDFTITLE = "Most distinctive terms: %s"
	SUBTITLE   = "chain seed %d, log-likelihood %.2f"
	PAGETITLE  = "happico run %s"
)

// TopicBars - one bar chart per topic, heaviest term first
func TopicBars(branch string, res *lda.Result, topn int) []*charts.Bar {
	var bb []*charts.Bar
	for _, tp := range res.Topics {
		top := tp.Top(topn)

		terms := make([]string, len(top))
		vals := make([]opts.BarData, len(top))
		for i, t := range top {
			terms[i] = t.Term
			vals[i] = opts.BarData{Value: t.Beta}
		}

		bar := newbar(fmt.Sprintf(TOPICTITLE, tp.ID, len(res.Topics), branch),
			fmt.Sprintf(SUBTITLE, res.Seed, res.LogLikelihood))
		bar.SetXAxis(terms).AddSeries("beta", vals)
		bb = append(bb, bar)
	}
	return bb
}

// TFIDFBars - one bar chart per group, highest tf-idf score first
func TFIDFBars(recs []tfidf.Record, topn int) []*charts.Bar {
	top := tfidf.TopN(recs, topn)

	bygroup := make(map[string][]tfidf.Record)
	var order []string
	for _, r := range top {
		if _, ok := bygroup[r.Group]; !ok {
			order = append(order, r.Group)
		}
		bygroup[r.Group] = append(bygroup[r.Group], r)
	}

	var bb []*charts.Bar
	for _, g := range order {
		rr := bygroup[g]
		terms := make([]string, len(rr))
		vals := make([]opts.BarData, len(rr))
		for i, r := range rr {
			terms[i] = r.Term
			vals[i] = opts.BarData{Value: r.Score}
		}
		bar := newbar(fmt.Sprintf(TFIDFTITLE, g), "")
		bar.SetXAxis(terms).AddSeries("tf-idf", vals)
		bb = append(bb, bar)
	}
	return bb
}

// WriteHTML - assemble every chart onto one page and write it under outdir
func WriteHTML(outdir string, runid string, bb []*charts.Bar) (string, error) {
	page := components.NewPage()
	page.PageTitle = fmt.Sprintf(PAGETITLE, runid)
	for _, b := range bb {
		page.AddCharts(b)
	}

	fn := filepath.Join(outdir, fmt.Sprintf("happico-%s.html", runid))
	fh, err := os.Create(fn)
	if err != nil {
		return "", err
	}
	defer fh.Close()

	if err := page.Render(fh); err != nil {
		return "", err
	}
	return fn, nil
}

// newbar - a pre-formatted charts.Bar
func newbar(title string, subtitle string) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: CHRTWIDTH, Height: CHRTHEIGHT}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: true,
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{Show: true, Title: "Save to file..."},
			},
		}),
	)
	return bar
}
