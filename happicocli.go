//    Happico: a HappyDB verbosity and topic analyzer
//    Copyright: E Du 2023-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/elena-du/happico/internal/str"
	"github.com/elena-du/happico/internal/vv"
)

//
// CONFIGURATION AT LAUNCH
//

// ConfigAtLaunch - read the configuration values from JSON and/or command line
func ConfigAtLaunch() {
	const (
		FAIL1 = `Could not parse the information in '%s'. Skipping and attempting to use built-in defaults instead.`
		FAIL2 = "Improperly formatted seed list. Using:\n\t%v"
		FYI1  = "Could not open '%s'"
	)

	Config = BuildDefaultConfig()

	uh, _ := os.UserHomeDir()
	h := fmt.Sprintf(vv.CONFIGALTAPTH, uh)
	cfgfile := h + vv.CONFIGNAME

	loadedcfg, e := os.Open(cfgfile)
	if e != nil {
		Msg.PEEK(fmt.Sprintf(FYI1, cfgfile))
	} else {
		decoderc := json.NewDecoder(loadedcfg)
		confc := str.CurrentConfiguration{}
		errc := decoderc.Decode(&confc)
		_ = loadedcfg.Close()
		if errc == nil {
			Config = confc
		} else {
			Msg.CRIT(fmt.Sprintf(FAIL1, cfgfile))
		}
	}

	args := os.Args[1:]

	for i, a := range args {
		switch a {
		case "-bw":
			Config.BlackAndWhite = true
		case "-cn":
			cn, err := strconv.Atoi(args[i+1])
			Msg.EC(err)
			Config.Topics = cn
		case "-gl":
			ll, err := strconv.Atoi(args[i+1])
			Msg.EC(err)
			Config.LogLevel = ll
		case "-h":
			printversion()
			fmt.Println(Msg.Styled(Msg.Color(fmt.Sprintf(vv.HELPTEXT, vv.DEFAULTTOPICS, vv.DEFAULTLOGLEVEL,
				vv.DEFAULTITERATIONS, vv.DEFAULTOUTPUTDIR, vv.DefaultSeeds, vv.DEFAULTSENTENCES,
				vv.DEFAULTTOPN, vv.CONFIGNAME, fmt.Sprintf(vv.CONFIGALTAPTH, uh)))))
			os.Exit(0)
		case "-it":
			it, err := strconv.Atoi(args[i+1])
			Msg.EC(err)
			Config.Iterations = it
		case "-od":
			Config.OutputDir = args[i+1]
		case "-pp":
			Config.Profile = true
		case "-q":
			Config.QuietStart = true
		case "-sd":
			ss, err := parseseeds(args[i+1])
			if err != nil {
				Msg.CRIT(fmt.Sprintf(FAIL2, vv.DefaultSeeds))
			} else {
				Config.Seeds = ss
			}
		case "-st":
			st, err := strconv.Atoi(args[i+1])
			Msg.EC(err)
			Config.SentenceThreshold = st
		case "-tn":
			tn, err := strconv.Atoi(args[i+1])
			Msg.EC(err)
			Config.TopN = tn
		case "-v":
			fmt.Println(vv.VERSION)
			os.Exit(0)
		default:
			// do nothing
		}
	}

	Msg.Lvl = Config.LogLevel
	Msg.BW = Config.BlackAndWhite
}

// BuildDefaultConfig - return a CurrentConfiguration filled out with the stock values
func BuildDefaultConfig() str.CurrentConfiguration {
	var c str.CurrentConfiguration
	c.LogLevel = vv.DEFAULTLOGLEVEL
	c.OutputDir = vv.DEFAULTOUTPUTDIR
	c.MomentsURL = vv.MOMENTSURL
	c.DemographicURL = vv.DEMOGRAPHICURL
	c.FetchTries = vv.DEFAULTFETCHTRIES
	c.Topics = vv.DEFAULTTOPICS
	c.Iterations = vv.DEFAULTITERATIONS
	c.BurnIn = vv.DEFAULTBURNIN
	c.Thin = vv.DEFAULTTHIN
	c.Seeds = append(c.Seeds, vv.DefaultSeeds...)
	c.TopN = vv.DEFAULTTOPN
	c.SentenceThreshold = vv.DEFAULTSENTENCES
	c.MinAge = vv.DEFAULTMINAGE
	c.MaxAge = vv.DEFAULTMAXAGE
	c.AgeOverrides = make(map[string]float64)
	return c
}

// parseseeds - "1234,5678" --> []uint64{1234, 5678}
func parseseeds(arg string) ([]uint64, error) {
	var ss []uint64
	for _, f := range strings.Split(arg, ",") {
		s, err := strconv.ParseUint(strings.TrimSpace(f), 10, 64)
		if err != nil {
			return nil, err
		}
		ss = append(ss, s)
	}
	return ss, nil
}

func printversion() {
	fmt.Printf("%s (v.%s)\n", vv.MYNAME, vv.VERSION)
}
