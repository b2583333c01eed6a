package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/relaytools/relaycheck/internal/relayurl"
)

type checkResult struct {
	URL      relayurl.URL `json:"url"`
	ValidURI bool         `json:"valid_uri"`
	Relay    bool         `json:"relay"`
}

func classify(inputs []string) []checkResult {
	out := make([]checkResult, len(inputs))
	for i, raw := range inputs {
		u := relayurl.New(raw)
		out[i] = checkResult{URL: u, ValidURI: u.IsValid(), Relay: u.IsValidRelayURL()}
	}
	return out
}

func writeResults(w io.Writer, results []checkResult, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		for _, r := range results {
			if err := enc.Encode(r); err != nil {
				return err
			}
		}
		return nil
	}
	for _, r := range results {
		if _, err := fmt.Fprintf(w, "%s\turi=%t\trelay=%t\n", r.URL, r.ValidURI, r.Relay); err != nil {
			return err
		}
	}
	return nil
}

func checkCmd(args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	logOpts := commonFlags(fs)
	asJSON := fs.Bool("json", false, "print one JSON object per URL")
	strict := fs.Bool("strict", false, "exit with status 1 if any URL is not a usable relay URL")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "failed to parse flags: %v\n", err)
		os.Exit(1)
	}
	logOpts.setup()

	inputs := fs.Args()
	if len(inputs) == 0 {
		lines, err := readLines(os.Stdin)
		if err != nil {
			log.WithError(err).Fatal("failed to read stdin")
		}
		inputs = lines
	}
	if len(inputs) == 0 {
		log.Warn("no URLs given")
		return
	}

	results := classify(inputs)
	if err := writeResults(os.Stdout, results, *asJSON); err != nil {
		log.WithError(err).Fatal("failed to write results")
	}

	rejected := 0
	for _, r := range results {
		if !r.Relay {
			rejected++
			log.WithField("url", r.URL.String()).Debug("not a relay URL")
		}
	}
	log.Debugf("checked %d URLs, %d rejected", len(results), rejected)
	if *strict && rejected > 0 {
		os.Exit(1)
	}
}
