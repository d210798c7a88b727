package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sandeepkv93/daytally/internal/icsio"
	"github.com/sandeepkv93/daytally/internal/storage"
	"github.com/sandeepkv93/daytally/internal/update"
)

// runCLI handles one-shot subcommands. It returns (handled, exitCode); an
// unknown first argument falls through to the TUI.
func runCLI(args []string, stdout, stderr io.Writer) (bool, int) {
	if len(args) == 0 {
		return false, 0
	}
	switch args[0] {
	case "help", "-h", "--help":
		printHelp(stdout)
		return true, 0
	case "dates":
		return true, cliDates(args[1:], stdout, stderr)
	case "stats":
		return true, cliStats(args[1:], stdout, stderr)
	case "export":
		return true, cliExport(args[1:], stdout, stderr)
	case "import":
		return true, cliImport(args[1:], stdout, stderr)
	case "namespaces":
		return true, cliNamespaces(args[1:], stdout, stderr)
	default:
		return false, 0
	}
}

type commonFlags struct {
	dataDir *string
	store   *string
	year    *int
}

func addCommonFlags(fs *flag.FlagSet) commonFlags {
	return commonFlags{
		dataDir: fs.String("data-dir", "", "override data directory"),
		store:   fs.String("store", "", "sqlite|file|memory"),
		year:    fs.Int("year", 0, "calendar year"),
	}
}

func (c commonFlags) config() update.RuntimeConfig {
	cfg := update.RuntimeConfigFromEnv(update.DefaultRuntimeConfig())
	if *c.dataDir != "" {
		cfg.DataDir = *c.dataDir
	}
	if *c.store != "" {
		cfg.Store = storage.Kind(strings.ToLower(*c.store))
	}
	if *c.year > 0 {
		cfg.Year = *c.year
	}
	return cfg
}

func newFlagSet(name string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	return fs
}

func cliDates(args []string, stdout, stderr io.Writer) int {
	fs := newFlagSet("dates", stderr)
	common := addCommonFlags(fs)
	jsonOut := fs.Bool("json", false, "output JSON")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	sess, err := openSession(common.config(), true)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	defer sess.Close()

	dates := sess.tracker.SelectedDates()
	if *jsonOut {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(dates); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		return 0
	}
	for _, d := range dates {
		fmt.Fprintln(stdout, d)
	}
	return 0
}

type statsOutput struct {
	Year      int            `json:"year"`
	Count     int            `json:"count"`
	Target    int            `json:"target"`
	Remaining int            `json:"remaining"`
	Achieved  bool           `json:"achieved"`
	ByMonth   map[string]int `json:"by_month"`
}

func cliStats(args []string, stdout, stderr io.Writer) int {
	fs := newFlagSet("stats", stderr)
	common := addCommonFlags(fs)
	jsonOut := fs.Bool("json", false, "output JSON")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	sess, err := openSession(common.config(), true)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	defer sess.Close()

	st := sess.tracker.Stats()
	byMonth := sess.tracker.MonthCounts()
	if *jsonOut {
		out := statsOutput{
			Year:      sess.tracker.Year(),
			Count:     st.Count,
			Target:    st.Target,
			Remaining: st.Remaining,
			Achieved:  st.Achieved,
			ByMonth:   make(map[string]int, 12),
		}
		for i, n := range byMonth {
			out.ByMonth[time.Month(i+1).String()] = n
		}
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		return 0
	}

	fmt.Fprintf(stdout, "%d: %d / %d days\n", sess.tracker.Year(), st.Count, st.Target)
	if st.Achieved {
		fmt.Fprintln(stdout, "target reached")
	} else {
		fmt.Fprintf(stdout, "%d to go\n", st.Remaining)
	}
	for i, n := range byMonth {
		fmt.Fprintf(stdout, "  %-9s %2d\n", time.Month(i+1), n)
	}
	return 0
}

func cliExport(args []string, stdout, stderr io.Writer) int {
	fs := newFlagSet("export", stderr)
	common := addCommonFlags(fs)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "usage: daytally export [flags] <file.ics>")
		return 2
	}
	sess, err := openSession(common.config(), true)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	defer sess.Close()

	n, err := icsio.ExportFile(fs.Arg(0), sess.tracker.Year(), sess.tracker.SelectedDates())
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	fmt.Fprintf(stdout, "exported %d day(s) to %s\n", n, fs.Arg(0))
	return 0
}

func cliImport(args []string, stdout, stderr io.Writer) int {
	fs := newFlagSet("import", stderr)
	common := addCommonFlags(fs)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "usage: daytally import [flags] <file.ics>")
		return 2
	}
	keys, err := icsio.ImportFile(fs.Arg(0))
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	sess, err := openSession(common.config(), true)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	defer sess.Close()

	added, skipped := sess.tracker.Import(keys)
	fmt.Fprintf(stdout, "imported %d day(s), %d outside %d\n", added, skipped, sess.tracker.Year())
	return 0
}

// cliNamespaces lists what the backend holds, across every year.
func cliNamespaces(args []string, stdout, stderr io.Writer) int {
	fs := newFlagSet("namespaces", stderr)
	common := addCommonFlags(fs)
	prefix := fs.String("prefix", "calendar-", "namespace prefix")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	sess, err := openSession(common.config(), true)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	defer sess.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	entries, err := sess.backend.Entries(ctx, storage.EntryListFilter{Prefix: *prefix})
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	for _, e := range entries {
		fmt.Fprintf(stdout, "%s\t%d bytes\t%s\n", e.Namespace, len(e.Value), e.UpdatedAt.Format(time.RFC3339))
	}
	return 0
}

func printHelp(w io.Writer) {
	fmt.Fprint(w, `daytally: count the days you spend in a place

usage:
  daytally                      open the year calendar
  daytally dates [--json]       print selected days
  daytally stats [--json]       print the count against the target
  daytally export <file.ics>    write selected days as all-day events
  daytally import <file.ics>    select every day covered by a calendar
  daytally namespaces           list stored years and settings

flags for every subcommand:
  --data-dir DIR   --store sqlite|file|memory   --year YYYY

environment:
  DAYTALLY_YEAR DAYTALLY_TARGET DAYTALLY_STORE DAYTALLY_DATA_DIR
  DAYTALLY_LOG_FILE DAYTALLY_LOG_LEVEL DAYTALLY_TOUCH_THRESHOLD DAYTALLY_ANIMATE
`)
}
