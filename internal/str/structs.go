//    Happico: a HappyDB verbosity and topic analyzer
//    Copyright: E Du 2023-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

//
// THE DATA: one row per crowd-sourced "happy moment" + one row per writer
//

// HappyMoment - a single crowd-sourced narrative; immutable once read
type HappyMoment struct {
	HMID      string // unique moment id
	WID       string // writer id; joins to Demographic
	Period    string // reflection period: "24h" or "3m"
	RawText   string // the cleaned_hm column: the narrative itself
	Sentences int    // sentence count; the verbosity measure
	Category  string // predicted_category label
}

// Demographic - what we know about one writer
type Demographic struct {
	WID        string
	Age        float64 // NaN when the source value was blank or unparseable
	Country    string  // ISO3-style code
	Gender     string
	Marital    string
	Parenthood string
}

//
// CONFIGURATION
//

// CurrentConfiguration - run-wide settings as merged from defaults, JSON file, and command line
type CurrentConfiguration struct {
	BlackAndWhite bool
	LogLevel      int
	QuietStart    bool
	Profile       bool
	OutputDir     string

	MomentsURL     string
	DemographicURL string
	FetchTries     int

	Topics     int
	Iterations int
	BurnIn     int
	Thin       int
	Seeds      []uint64
	TopN       int
	WorkerCount int

	SentenceThreshold int

	MinAge       float64
	MaxAge       float64
	AgeOverrides map[string]float64 // per-WID corrections: data, not logic

	NoiseWords []string // domain filler terms stripped after the stopword passes
}
