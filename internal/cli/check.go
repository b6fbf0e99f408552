package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"apichangeguard/internal/audit"
	"apichangeguard/internal/diff"
	"apichangeguard/internal/models"
	"apichangeguard/internal/reporter"
	"apichangeguard/internal/rules"
	"apichangeguard/internal/spec"
	"apichangeguard/internal/usage"
)

var (
	checkFormat string
	checkOutput string
	checkPretty bool
	checkFailOn string
	checkTUI    bool
)

func init() {
	rootCmd.Flags().StringVarP(&checkFormat, "format", "f", "json",
		"output format: json or text")
	rootCmd.Flags().StringVarP(&checkOutput, "output", "o", "",
		"write output to file instead of stdout")
	rootCmd.Flags().BoolVar(&checkPretty, "pretty", false,
		"pretty-print JSON output")
	rootCmd.Flags().StringVar(&checkFailOn, "fail-on", "",
		"exit 1 if any violation at or above this severity is found (LOW, MEDIUM, HIGH)")
	rootCmd.Flags().BoolVar(&checkTUI, "tui", false,
		"browse violations interactively instead of printing a report")
}

func runCheck(cmd *cobra.Command, args []string) error {
	logPath := ""
	if len(args) == 3 {
		logPath = args[2]
	}

	// cobra prints the returned error, no extra logging here
	violations, meta, err := Analyze(args[0], args[1], logPath)
	if err != nil {
		return err
	}

	if checkTUI {
		return browse(violations, meta)
	}

	if err := output(violations, meta, cfg.Format, checkOutput); err != nil {
		return err
	}

	// CI gate.
	if cfg.FailOn != "" {
		if n := countAtOrAbove(violations, cfg.FailOn); n > 0 {
			return &FailOnError{Severity: cfg.FailOn, Count: n}
		}
	}

	return nil
}

// Analyze runs the full pipeline: load both specs, resolve baseline and
// candidate by version, build the usage index, diff, classify, audit the
// version bump, and sort. The two spec paths may be given in either order.
// An empty logPath yields an empty usage index.
func Analyze(specPathA, specPathB, logPath string) ([]models.Violation, models.Meta, error) {
	docA, err := spec.Load(specPathA)
	if err != nil {
		return nil, models.Meta{}, err
	}
	docB, err := spec.Load(specPathB)
	if err != nil {
		return nil, models.Meta{}, err
	}

	pair, err := spec.Resolve(docA, docB)
	if err != nil {
		return nil, models.Meta{}, err
	}

	meta := models.Meta{
		BaselineFile:     pair.Baseline.File,
		CandidateFile:    pair.Candidate.File,
		BaselineVersion:  pair.Baseline.Version,
		CandidateVersion: pair.Candidate.Version,
	}

	logVerbose("Baseline %s (%s), candidate %s (%s)",
		meta.BaselineFile, meta.BaselineVersion,
		meta.CandidateFile, meta.CandidateVersion)

	var idx *usage.Index
	if logPath != "" {
		idx, err = usage.Load(logPath)
		if err != nil {
			return nil, models.Meta{}, err
		}
		logVerbose("Usage index: %d distinct endpoints observed", idx.Len())
	}

	changes := diff.Compare(pair.Baseline, pair.Candidate)
	logDebug("Diff produced %d raw changes", len(changes))

	violations := rules.Classify(changes, idx, meta)

	mismatch, err := audit.Audit(changes, pair, meta)
	if err != nil {
		return nil, models.Meta{}, err
	}
	if mismatch != nil {
		violations = append(violations, *mismatch)
	}

	return reporter.Sort(violations), meta, nil
}

// output renders the violation list to the chosen format and destination.
func output(violations []models.Violation, meta models.Meta, format, outputPath string) error {
	var writer *os.File
	if outputPath != "" {
		var err error
		writer, err = os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer func() { _ = writer.Close() }()
	} else {
		writer = os.Stdout
	}

	switch format {
	case "json":
		return reporter.NewJSONReporter(writer, cfg.Pretty).Generate(violations)
	case "text":
		return reporter.NewTextReporter(writer).Generate(violations, meta)
	default:
		return fmt.Errorf("unsupported format: %s (use json or text)", format)
	}
}

var severityRank = map[string]int{
	models.SeverityLow:    0,
	models.SeverityMedium: 1,
	models.SeverityHigh:   2,
}

func countAtOrAbove(violations []models.Violation, severity string) int {
	threshold := severityRank[severity]
	n := 0
	for _, v := range violations {
		if severityRank[v.Severity] >= threshold {
			n++
		}
	}
	return n
}
