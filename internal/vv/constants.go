//    Happico: a HappyDB verbosity and topic analyzer
//    Copyright: E Du 2023-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vv

const (
	MYNAME    = "Happico"
	SHORTNAME = "HPC"
	VERSION   = "0.1.0"
	PROJURL   = "https://github.com/elena-du/happico"

	// the two HappyDB source files; fetched once per run, never cached
	MOMENTSURL     = "https://raw.githubusercontent.com/megagonlabs/HappyDB/master/happydb/data/cleaned_hm.csv"
	DEMOGRAPHICURL = "https://raw.githubusercontent.com/megagonlabs/HappyDB/master/happydb/data/demographic.csv"

	CONFIGLOCATION = ".config/"
	CONFIGALTAPTH  = "%s/.config/happico/"
	CONFIGNAME     = "happico-config.json"
	WRITEPERMS     = 0644
	JSONINDENT     = "  "

	DEFAULTLOGLEVEL   = 0
	DEFAULTTOPICS     = 3
	DEFAULTITERATIONS = 2000
	DEFAULTBURNIN     = 500
	DEFAULTTHIN       = 10
	DEFAULTTOPN       = 10
	DEFAULTSENTENCES  = 2   // a "garrulous" moment runs longer than this many sentences
	DEFAULTMINAGE     = 10  // plausible writer ages; anything outside gets repaired
	DEFAULTMAXAGE     = 100 //
	DEFAULTFETCHTRIES = 3   // remote CSVs: one-shot reads, but transient failures get a bounded retry
	DEFAULTOUTPUTDIR  = "." //
	MINGROUPMOMENTS   = 50  // a country needs at least this many moments to enter the tf-idf comparison

	HELPTEXT = `S1command line optionsS0:
   C1-bw C0white/blackandwhite; no colors via ANSI escape codes
   C1-cn NUM C0number of topics to model [default: C3%dC0]
   C1-gl NUM C0set the terminal log level (C30-5C0) [default: C3%dC0]
   C1-h     C0print this help information
   C1-it NUM C0gibbs sampling sweeps per chain [default: C3%dC0]
   C1-od DIR C0directory for the html chart artifact [default: C3%sC0]
   C1-pp    C0CPU profile the run
   C1-q     C0quieter startup
   C1-sd LIST C0comma-separated chain seeds [default: C3%vC0]
   C1-st NUM C0sentence count dividing taciturn from garrulous [default: C3%dC0]
   C1-tn NUM C0top terms/records to report [default: C3%dC0]
   C1-v     C0print version and exit
   (further settings can be placed in 'C3%sC0' in 'C3%sC0')`
)

var (
	// DefaultSeeds - one independent gibbs chain per seed; the best-scoring chain wins
	DefaultSeeds = []uint64{1234, 5678, 9012, 3456}
)
