package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/proplogic/tableaux/prop"
)

const version = "0.3.0"

var (
	formulaFlag string
	checkValid  bool
	debugMode   bool
	noBanner    bool
)

func main() {
	cmd := &cobra.Command{
		Use:   "tableaux",
		Short: "decide propositional satisfiability with the analytic tableaux method",
		Long: `tableaux parses a propositional formula and decides whether it is
satisfiable, printing a satisfying assignment when one exists.

Formulas use the connectives ^ (and), | (or), -> (implies), <-> (iff) and
- (not); binary connectives require surrounding parentheses, for example
"((a->b)^-b)". The formula is taken from the --formula flag or, when the
flag is omitted, read from standard input.`,
		Args:         cobra.NoArgs,
		Version:      version,
		SilenceUsage: true,
		RunE:         run,
	}
	cmd.Flags().StringVarP(&formulaFlag, "formula", "f", "", "formula to decide; stdin is read when omitted")
	cmd.Flags().BoolVar(&checkValid, "valid", false, "check validity instead of satisfiability")
	cmd.Flags().BoolVarP(&debugMode, "debug", "d", false, "trace rule applications")
	cmd.Flags().BoolVarP(&noBanner, "quiet", "q", false, "suppress the program banner")
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	setupLogging(debugMode)
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}
	if !noBanner {
		title := color.New(color.FgCyan, color.Bold, color.Underline).Sprint("Propositional Tableaux Solver")
		fmt.Printf("%s: v%s\n", title, color.YellowString(version))
	}
	input := formulaFlag
	if input == "" {
		buf, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("could not read formula: %v", err)
		}
		input = string(buf)
	}
	f, err := prop.ParseString(input)
	if err != nil {
		return fmt.Errorf("could not parse formula: %v", err)
	}
	if checkValid {
		if prop.Valid(f) {
			fmt.Println(color.GreenString("VALID"))
		} else {
			fmt.Println(color.RedString("NOT VALID"))
		}
		return nil
	}
	s := prop.New(f)
	s.Verbose = debugMode
	if s.Solve() != prop.Sat {
		fmt.Println(color.RedString("UNSATISFIABLE"))
		return nil
	}
	fmt.Println(color.GreenString("SATISFIABLE"))
	model := s.Model()
	keys := make([]string, 0, len(model))
	for k := range model {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("%s: %t\n", k, model[k])
	}
	return nil
}

// setupLogging configures the default slog handler. The level comes from the
// debug flag, or else from the LOG environment variable, defaulting to info.
func setupLogging(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	} else {
		switch strings.ToUpper(os.Getenv("LOG")) {
		case "DEBUG", "TRACE":
			level = slog.LevelDebug
		case "WARN":
			level = slog.LevelWarn
		case "ERROR":
			level = slog.LevelError
		}
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
