//    Happico: a HappyDB verbosity and topic analyzer
//    Copyright: E Du 2023-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package hd

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"math"
	"strconv"

	"github.com/elena-du/happico/internal/str"
)

//
// CSV PARSING
//

// HappyDB column names; positions are resolved from the header, not assumed
const (
	COLHMID     = "hmid"
	COLWID      = "wid"
	COLPERIOD   = "reflection_period"
	COLCLEANED  = "cleaned_hm"
	COLSENTENCE = "num_sentence"
	COLPREDCAT  = "predicted_category"

	COLAGE        = "age"
	COLCOUNTRY    = "country"
	COLGENDER     = "gender"
	COLMARITAL    = "marriage"
	COLPARENTHOOD = "parenthood"
)

// headerindex - map wanted column names to positions; error when one is missing
func headerindex(header []string, wanted []string) (map[string]int, error) {
	idx := make(map[string]int, len(wanted))
	for i, h := range header {
		idx[h] = i
	}
	for _, w := range wanted {
		if _, ok := idx[w]; !ok {
			return nil, fmt.Errorf("malformed csv: missing column '%s'", w)
		}
	}
	return idx, nil
}

// ParseMoments - the cleaned_hm.csv payload into HappyMoment rows
func ParseMoments(raw []byte) ([]str.HappyMoment, error) {
	r := csv.NewReader(bytes.NewReader(raw))
	r.FieldsPerRecord = -1 // narratives can smuggle separators past upstream cleaning

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("malformed moments csv: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("moments csv contains no data rows")
	}

	idx, err := headerindex(rows[0], []string{COLHMID, COLWID, COLPERIOD, COLCLEANED, COLSENTENCE, COLPREDCAT})
	if err != nil {
		return nil, err
	}

	width := len(rows[0])
	mm := make([]str.HappyMoment, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) < width {
			continue
		}
		sc, e := strconv.Atoi(row[idx[COLSENTENCE]])
		if e != nil {
			continue
		}
		mm = append(mm, str.HappyMoment{
			HMID:      row[idx[COLHMID]],
			WID:       row[idx[COLWID]],
			Period:    row[idx[COLPERIOD]],
			RawText:   row[idx[COLCLEANED]],
			Sentences: sc,
			Category:  row[idx[COLPREDCAT]],
		})
	}

	return mm, nil
}

// ParseDemographics - the demographic.csv payload into Demographic rows; a blank or
// unparseable age becomes NaN and is left for the repair stage, not an error here
func ParseDemographics(raw []byte) ([]str.Demographic, error) {
	r := csv.NewReader(bytes.NewReader(raw))

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("malformed demographic csv: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("demographic csv contains no data rows")
	}

	idx, err := headerindex(rows[0], []string{COLWID, COLAGE, COLCOUNTRY, COLGENDER, COLMARITAL, COLPARENTHOOD})
	if err != nil {
		return nil, err
	}

	dd := make([]str.Demographic, 0, len(rows)-1)
	for _, row := range rows[1:] {
		age, e := strconv.ParseFloat(row[idx[COLAGE]], 64)
		if e != nil {
			age = math.NaN()
		}
		dd = append(dd, str.Demographic{
			WID:        row[idx[COLWID]],
			Age:        age,
			Country:    row[idx[COLCOUNTRY]],
			Gender:     row[idx[COLGENDER]],
			Marital:    row[idx[COLMARITAL]],
			Parenthood: row[idx[COLPARENTHOOD]],
		})
	}

	return dd, nil
}
