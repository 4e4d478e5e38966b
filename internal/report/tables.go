//    Happico: a HappyDB verbosity and topic analyzer
//    Copyright: E Du 2023-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/elena-du/happico/internal/lda"
	"github.com/elena-du/happico/internal/tfidf"
	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//
// TERMINAL TABLES
//

// the tables are the stable, machine-checkable surface; the charts are garnish

// TopicTable - one row per topic: rank, seed-winning betas for the top terms
func TopicTable(w io.Writer, res *lda.Result, topn int) {
	tw := tablewriter.NewWriter(w)
	tw.SetHeader([]string{"topic", "term", "beta"})
	tw.SetAutoMergeCells(true)
	tw.SetRowLine(false)

	for _, tp := range res.Topics {
		for _, t := range tp.Top(topn) {
			tw.Append([]string{
				strconv.Itoa(tp.ID),
				t.Term,
				fmt.Sprintf("%.6f", t.Beta),
			})
		}
	}
	tw.Render()
}

// TFIDFTable - the top scoring terms per group
func TFIDFTable(w io.Writer, recs []tfidf.Record, topn int) {
	tw := tablewriter.NewWriter(w)
	tw.SetHeader([]string{"group", "term", "n", "tf", "idf", "tf-idf"})
	tw.SetAutoMergeCells(true)
	tw.SetRowLine(false)

	for _, r := range tfidf.TopN(recs, topn) {
		tw.Append([]string{
			r.Group,
			r.Term,
			strconv.Itoa(r.Count),
			fmt.Sprintf("%.6f", r.TF),
			fmt.Sprintf("%.6f", r.IDF),
			fmt.Sprintf("%.6f", r.Score),
		})
	}
	tw.Render()
}

// Summary - corpus bookkeeping before the numbers start
func Summary(w io.Writer, branch string, total int, kept int, vocab int) {
	pr := message.NewPrinter(language.English)
	pr.Fprintf(w, "%s: %d moments in, %d survived cleaning, %d term vocabulary\n",
		branch, total, kept, vocab)
}
