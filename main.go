// Program licwchallenge reads one or more ADIF logfiles and calculates the
// operator's LICW challenge score: it extracts the embedded LICW[...] marker
// from each contact's comment, applies the award point policy, restricts to
// the requested calendar quarter, dedups repeat contacts per band, and
// prints the score report.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/term"

	"licwchallenge/adif"
	"licwchallenge/challenge"
	"licwchallenge/config"
	"licwchallenge/report"
)

const (
	defaultConfigPath = "config.yaml"
	envConfigPath     = "LICW_CONFIG_PATH"
)

func main() {
	configPath := flag.String("config", "", "config file (default $"+envConfigPath+" or "+defaultConfigPath+")")
	quarterFlag := flag.String("quarter", "", `quarter selector: "current", "3/2025", or "3/25" (default: score the whole log)`)
	jsonOut := flag.Bool("json", false, "emit the report as JSON")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			"Usage: %s [flags] <ADIF log file> [more log files...]\n\nFlags:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config: %v\n", err)
		os.Exit(1)
	}

	fanout, err := setupLogging(cfg.Logging, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Logging: %v\n", err)
	}
	log.SetFlags(0)
	log.SetOutput(fanout)
	defer fanout.Close()

	// The banner is operator chrome; skip it when output is piped.
	if isStdoutTTY() && !*jsonOut {
		cfg.Print()
	}

	// An invalid selector is a configuration error: abort before reading
	// a single record.
	selector := cfg.Quarter
	if *quarterFlag != "" {
		selector = *quarterFlag
	}
	window, err := challenge.ParseQuarter(selector, time.Now().UTC())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config: %v\n", err)
		os.Exit(1)
	}

	var records []adif.Record
	for _, path := range flag.Args() {
		recs, err := adif.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Log: %v\n", err)
			os.Exit(1)
		}
		records = append(records, recs...)
	}

	rules := challenge.DefaultRules()
	for _, name := range rules.Merge(cfg.Rules.BonusLetters, cfg.Rules.Conditions) {
		log.Printf("Config: ignoring unknown condition %q in rules.conditions", name)
	}

	result := challenge.New(rules, window).Run(records)

	if *jsonOut {
		err = report.WriteJSON(os.Stdout, result)
	} else {
		err = report.WriteText(os.Stdout, result)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Report: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig resolves the config path from the flag, the environment, or
// the default location. Only an explicitly named file is required to exist.
func loadConfig(flagPath string) (*config.Config, error) {
	if flagPath != "" {
		return config.Load(flagPath)
	}
	path := defaultConfigPath
	explicit := false
	if env := os.Getenv(envConfigPath); env != "" {
		path = env
		explicit = true
	}
	cfg, err := config.Load(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return config.Default(), nil
		}
		return nil, err
	}
	return cfg, nil
}

func isStdoutTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
