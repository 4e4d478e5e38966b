//    Happico: a HappyDB verbosity and topic analyzer
//    Copyright: E Du 2023-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package hd

import (
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const momentscsv = `hmid,wid,reflection_period,original_hm,cleaned_hm,modified,num_sentence,ground_truth_category,predicted_category
27673,2053,24h,X,I went on a successful date with someone.,True,1,,affection
27674,2,24h,Y,"I was happy, the cat was happy.",True,2,,affection
27675,1936,24h,Z,I went to the gym this morning.,True,notanumber,,exercise
`

const demographicscsv = `wid,age,country,gender,marriage,parenthood
1,37,USA,m,married,y
2,29.0,IND,m,married,y
3,,USA,f,single,n
4,prefer not to say,VNM,f,single,n
`

func TestParseMoments(t *testing.T) {
	mm, err := ParseMoments([]byte(momentscsv))
	require.NoError(t, err)

	// the row with the unparseable sentence count is dropped, not fatal
	require.Len(t, mm, 2)

	assert.Equal(t, "27673", mm[0].HMID)
	assert.Equal(t, "2053", mm[0].WID)
	assert.Equal(t, "I went on a successful date with someone.", mm[0].RawText)
	assert.Equal(t, 1, mm[0].Sentences)
	assert.Equal(t, "affection", mm[0].Category)

	// quoted comma survives
	assert.Equal(t, "I was happy, the cat was happy.", mm[1].RawText)
	assert.Equal(t, 2, mm[1].Sentences)
}

func TestParseMomentsBadHeader(t *testing.T) {
	_, err := ParseMoments([]byte("a,b,c\n1,2,3\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing column")
}

func TestParseDemographics(t *testing.T) {
	dd, err := ParseDemographics([]byte(demographicscsv))
	require.NoError(t, err)
	require.Len(t, dd, 4)

	assert.Equal(t, 37.0, dd[0].Age)
	assert.Equal(t, 29.0, dd[1].Age)
	assert.True(t, math.IsNaN(dd[2].Age), "blank age should parse to NaN")
	assert.True(t, math.IsNaN(dd[3].Age), "free-text age should parse to NaN")
	assert.Equal(t, "IND", dd[1].Country)
	assert.Equal(t, "single", dd[2].Marital)
}

func TestFetchRetriesTransientFailure(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		if hits < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte("wid,age\n1,30\n"))
	}))
	defer srv.Close()

	body, err := Fetch(srv.URL, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, hits)
	assert.Contains(t, string(body), "wid,age")
}

func TestFetchGivesUp(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := Fetch(srv.URL, 2)

	var dfe *DataFetchError
	require.ErrorAs(t, err, &dfe)
	assert.Equal(t, srv.URL, dfe.URL)
}

func TestFetchUnreachable(t *testing.T) {
	_, err := Fetch("http://127.0.0.1:1/nope", 1)

	var dfe *DataFetchError
	require.ErrorAs(t, err, &dfe)
	assert.NotNil(t, dfe.Unwrap())
}
