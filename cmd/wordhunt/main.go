// Copyright 2025 The WordHunt Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the wordhunt anagram finder: a msgpack IPC server,
an interactive CLI and a one-shot query mode over the same engine.

wordhunt finds the dictionary words that are exact anagrams of a set of
letters, the words that can be spelled from a subset of them, and (with
-pairs) two-word combinations that use every letter exactly once.

# Usage

Start the IPC server with the built-in word list and any word lists found in
the data directory:

	wordhunt

Run a single query and print the results:

	wordhunt -letters TEAMRATE -pairs -beam 50 -cap 20

Export the same query as CSV:

	wordhunt -letters TEAMRATE -pairs -export csv -out results.csv

Run the interactive prompt:

	wordhunt -c -min 3

# Word sources

Sources are merged in this order, and the first occurrence of a word wins:
the built-in list (unless -no-builtin or dict.builtin = false), the files
listed in dict.files, every *.txt, *.lst and *.dic file in the data
directory, the enabled [[remote]] entries (Redis keys or Elasticsearch
indexes), then the sources added at runtime and saved in the store.

# Configuration

Settings live in a TOML file, created with defaults when missing:

	[search]
	min_len = 1
	max_len = 99
	beam_width = 200
	result_cap = 200

	[server]
	max_beam_width = 2000
	max_result_cap = 2000
	max_letters = 64

	[store]
	path = "/home/me/.config/wordhunt/sources.db"

	[[remote]]
	name = "team-words"
	kind = "redis"
	enabled = true
	addr = "localhost:6379"
	key = "words"

Flags override the [search] values for the current run.

# IPC Protocol

See package server for the request and response shapes.
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/bastiangx/wordhunt/internal/cli"
	"github.com/bastiangx/wordhunt/internal/logger"
	"github.com/bastiangx/wordhunt/internal/utils"
	"github.com/bastiangx/wordhunt/pkg/config"
	"github.com/bastiangx/wordhunt/pkg/dictionary"
	"github.com/bastiangx/wordhunt/pkg/export"
	"github.com/bastiangx/wordhunt/pkg/filter"
	"github.com/bastiangx/wordhunt/pkg/letters"
	"github.com/bastiangx/wordhunt/pkg/remote"
	_ "github.com/bastiangx/wordhunt/pkg/remote/elasticsearch"
	_ "github.com/bastiangx/wordhunt/pkg/remote/redis"
	"github.com/bastiangx/wordhunt/pkg/search"
	"github.com/bastiangx/wordhunt/pkg/server"
	"github.com/bastiangx/wordhunt/pkg/store"
)

const (
	Version = "0.3.0"
	AppName = "wordhunt"
	gh      = "https://github.com/bastiangx/wordhunt"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main wires config, sources and the selected front end together.
func main() {
	sigHandler()

	showVersion := flag.Bool("version", false, "Show current version")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run the interactive CLI")
	configPath := flag.String("config", "", "Path to a config.toml")
	dataDir := flag.String("data", "", "Directory containing word lists (default from config)")
	noBuiltin := flag.Bool("no-builtin", false, "Do not load the built-in word list")
	lettersFlag := flag.String("letters", "", "Run one query for these letters and exit")
	pairs := flag.Bool("pairs", false, "Also search two-word anagrams")
	beam := flag.Int("beam", 0, "Pair search beam width (default from config)")
	resultCap := flag.Int("cap", 0, "Maximum number of pairs (default from config)")
	minLen := flag.Int("min", 0, "Minimum word length (default from config)")
	maxLen := flag.Int("max", 0, "Maximum word length (default from config)")
	prefix := flag.String("prefix", "", "Words must start with this")
	suffix := flag.String("suffix", "", "Words must end with this")
	contains := flag.String("contains", "", "Words must contain this")
	include := flag.String("include", "", "Letters every word must use")
	exclude := flag.String("exclude", "", "Letters no word may use")
	exportFormat := flag.String("export", "", "Export one-shot results as csv, json or msgpack")
	outPath := flag.String("out", "", "Export file (default stdout)")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	appConfig, usedConfig, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(usedConfig))

	if *dataDir == "" {
		*dataDir = appConfig.Dict.DataDir
	}
	if *noBuiltin {
		appConfig.Dict.Builtin = false
	}

	var db *store.DB
	if appConfig.Store.Path != "" {
		db, err = store.Open(appConfig.Store.Path)
		if err != nil {
			log.Fatalf("Failed to open store %s: %v", appConfig.Store.Path, err)
		}
		defer db.Close()
	}

	lib, err := buildLibrary(appConfig, *dataDir, db)
	if err != nil {
		log.Fatalf("Failed to build dictionary: %v", err)
	}

	spec := filter.Spec{
		MinLen:      pick(*minLen, appConfig.Search.MinLen),
		MaxLen:      pick(*maxLen, appConfig.Search.MaxLen),
		Prefix:      *prefix,
		Suffix:      *suffix,
		Contains:    *contains,
		MustInclude: *include,
		MustExclude: *exclude,
	}
	opts := search.Options{
		Pairs:     *pairs || appConfig.Search.Pairs,
		BeamWidth: pick(*beam, appConfig.Search.BeamWidth),
		ResultCap: pick(*resultCap, appConfig.Search.ResultCap),
	}

	if *lettersFlag != "" {
		if err := runOnce(lib, *lettersFlag, spec, opts, appConfig, *exportFormat, *outPath); err != nil {
			log.Fatalf("%v", err)
		}
		return
	}

	if *cliMode {
		log.SetReportTimestamp(false)
		log.Debug("Input info:", "filter", spec, "pairs", opts.Pairs, "beam", opts.BeamWidth, "cap", opts.ResultCap)

		cliOpts := cli.Options{
			Filter: spec,
			Search: opts,
			Limit:  appConfig.CLI.DefaultLimit,
			Color:  appConfig.CLI.Color,
		}
		if db != nil {
			cliOpts.Store = db
		}
		if err := cli.NewInputHandler(lib, cliOpts).Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	log.Debug("spawning IPC")
	var st server.SourceStore
	if db != nil {
		st = db
	}
	srv := server.NewServer(lib, appConfig, st)

	showStartupInfo(lib)

	if err := srv.Start(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// pick returns flagValue when it was set, otherwise the config value.
func pick(flagValue, configValue int) int {
	if flagValue > 0 {
		return flagValue
	}
	return configValue
}

// buildLibrary gathers every configured source in merge order.
func buildLibrary(cfg *config.Config, dataDir string, db *store.DB) (*dictionary.Library, error) {
	var sources []dictionary.Source
	names := map[string]bool{}
	add := func(src dictionary.Source) {
		if names[src.Name] {
			log.Warnf("Skipping duplicate source name %s", src.Name)
			return
		}
		names[src.Name] = true
		sources = append(sources, src)
	}

	if cfg.Dict.Builtin {
		add(dictionary.Builtin())
	}

	for _, path := range cfg.Dict.Files {
		src, err := dictionary.LoadFile(path)
		if err != nil {
			log.Warnf("Skipping word list %s: %v", path, err)
			continue
		}
		add(src)
	}

	if dataDir != "" {
		resolver, err := utils.NewPathResolver()
		if err != nil {
			log.Warnf("Failed to initialize path resolver: %v", err)
		} else {
			log.Debug("Runtime paths", "info", resolver.GetRuntimeInfo())
		}
		if resolver == nil {
			log.Debugf("Skipping data dir %s", dataDir)
		} else if resolved, _ := resolver.GetDataDir(dataDir); utils.IsWordListDir(resolved) {
			log.Debugf("Using data dir at: %s", resolved)
			dirSources, err := dictionary.LoadDir(resolved)
			if err != nil {
				log.Warnf("Failed to load data dir %s: %v", resolved, err)
			}
			for _, src := range dirSources {
				add(src)
			}
		} else {
			log.Debugf("No word lists found for data dir %s", dataDir)
		}
	}

	if remotes := cfg.EnabledRemotes(); len(remotes) > 0 {
		for _, src := range remote.LoadAll(context.Background(), remotes) {
			add(src)
		}
	}

	if db != nil {
		merged, err := db.Apply(sources)
		if err != nil {
			return nil, fmt.Errorf("failed to read stored sources: %w", err)
		}
		sources = merged
	}

	if len(sources) == 0 {
		log.Warn("No word sources loaded, running with an empty dictionary...")
	}
	return dictionary.NewLibrary(sources...)
}

// runOnce answers a single query, printing it or exporting it.
func runOnce(lib *dictionary.Library, input string, spec filter.Spec, opts search.Options, cfg *config.Config, format, out string) error {
	if format == "" {
		h := cli.NewInputHandler(lib, cli.Options{Filter: spec, Search: opts, Color: cfg.CLI.Color})
		return h.Query(input)
	}

	f, err := export.ParseFormat(format)
	if err != nil {
		return err
	}
	singles, pairs, err := search.Run(lib.Index(), letters.Sanitize(input), spec, opts)
	if err != nil {
		return err
	}

	rows := export.Rows(singles, pairs)
	if out == "" {
		return export.Write(os.Stdout, f, rows)
	}
	return export.WriteFile(out, f, rows)
}

// printVersion prints the styled version banner.
func printVersion() {
	banner := logger.NewWithConfig("", log.InfoLevel, false, false, log.TextFormatter)

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"}).
		Background(lipgloss.AdaptiveColor{Light: "#f2e9e1", Dark: "#26233a"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	banner.SetStyles(styles)

	banner.Print("")
	banner.Print("[ WordHunt ] Finds anagrams, one word or two!")
	banner.Print("", "version", Version)
	banner.Print("")
	banner.Print("use -h or --help to see available options")
	banner.Print("Github Repo", "gh", gh)
}

// showStartupInfo displays some basic info about the loaded dictionary.
func showStartupInfo(lib *dictionary.Library) {
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)
	log.SetOutput(os.Stderr)

	stats := lib.Stats()
	log.Infof("%s %s", AppName, Version)
	log.Infof("Process ID: [ %d ]", os.Getpid())
	log.Infof("sources: %d/%d enabled, %d words", stats.EnabledSources, stats.Sources, stats.Words)
	log.Info("status: ready")

	log.SetLevel(currentLevel)
}
