// Command evals loads the MCP tool selection evaluation suites.
//
// Usage:
//
//	go run ./cmd/evals -dir ./evals/testdata -suite all
//	go run ./cmd/evals -check
//	go run ./cmd/evals -baseline
//
// Without flags it reports on test coverage. -check verifies every suite
// entry against the tools the server registers. -baseline scores the
// keyword selector, a floor any LLM-backed evals.ToolSelector should beat.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/olgasafonova/reddit-mcp-server/evals"
	"github.com/olgasafonova/reddit-mcp-server/tools"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "evals: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("evals", flag.ContinueOnError)
	dir := fs.String("dir", "./evals/testdata", "Directory containing eval JSON files")
	suite := fs.String("suite", "all", "Suite to load: tool_selection, confusion_pairs, arguments, or all")
	verbose := fs.Bool("verbose", false, "Show detailed test information")
	check := fs.Bool("check", false, "Check suites against the registered tools")
	baseline := fs.Bool("baseline", false, "Score the keyword baseline selector")
	if err := fs.Parse(args); err != nil {
		return err
	}

	fmt.Fprintln(out, "Reddit MCP Server - Evaluation Framework")
	fmt.Fprintln(out, "========================================")
	fmt.Fprintln(out)

	switch {
	case *check:
		return checkSuites(out, *dir)
	case *baseline:
		return runBaseline(out, *dir)
	}

	switch *suite {
	case "tool_selection":
		return loadToolSelection(out, *dir, *verbose)
	case "confusion_pairs":
		return loadConfusionPairs(out, *dir, *verbose)
	case "arguments":
		return loadArguments(out, *dir, *verbose)
	case "all":
		return loadAll(out, *dir, *verbose)
	default:
		return fmt.Errorf("unknown suite: %s", *suite)
	}
}

func checkSuites(out io.Writer, dir string) error {
	toolSelection, confusionPairs, arguments, err := evals.LoadAllEvals(dir)
	if err != nil {
		return err
	}
	schemas, err := tools.InputSchemas()
	if err != nil {
		return err
	}

	problems := evals.CheckAgainstCatalog(evals.Catalog(schemas), toolSelection, confusionPairs, arguments)
	if len(problems) == 0 {
		fmt.Fprintf(out, "All suites match the %d registered tools\n", len(schemas))
		return nil
	}
	for _, p := range problems {
		fmt.Fprintf(out, "  ✗ %s\n", p)
	}
	return fmt.Errorf("%d suite entries drift from the registered tools", len(problems))
}

func runBaseline(out io.Writer, dir string) error {
	toolSelection, confusionPairs, arguments, err := evals.LoadAllEvals(dir)
	if err != nil {
		return err
	}

	specs := tools.AllTools()
	docs := make([]evals.ToolDoc, len(specs))
	for i, spec := range specs {
		docs[i] = evals.ToolDoc{Name: spec.Name, Description: spec.Description}
	}
	selector := evals.NewKeywordSelector(docs)

	m, _ := evals.EvaluateToolSelection(toolSelection, selector)
	fmt.Fprint(out, evals.FormatMetrics(m, "Tool Selection (keyword baseline)"))
	m, _ = evals.EvaluateConfusionPairs(confusionPairs, selector)
	fmt.Fprint(out, evals.FormatMetrics(m, "Confusion Pairs (keyword baseline)"))
	m, _ = evals.EvaluateArguments(arguments, selector)
	fmt.Fprint(out, evals.FormatMetrics(m, "Arguments (keyword baseline)"))
	return nil
}

func loadToolSelection(out io.Writer, dir string, verbose bool) error {
	suite, err := evals.LoadToolSelectionSuite(filepath.Join(dir, evals.ToolSelectionFile))
	if err != nil {
		return fmt.Errorf("loading tool selection suite: %w", err)
	}

	fmt.Fprintf(out, "Tool Selection Suite: %s\n", suite.Name)
	fmt.Fprintf(out, "Version: %s\n", suite.Version)
	fmt.Fprintf(out, "Description: %s\n", suite.Description)
	fmt.Fprintf(out, "Total Tests: %d\n\n", len(suite.Tests))

	categories := make(map[string]int)
	byTool := make(map[string]int)
	for _, test := range suite.Tests {
		categories[test.Category]++
		byTool[test.ExpectedTool]++
	}
	printCounts(out, "Tests by Category:", categories, 15)
	printCounts(out, "Tests by Tool:", byTool, 40)

	if verbose {
		fmt.Fprintln(out, "Test Cases:")
		for _, test := range suite.Tests {
			fmt.Fprintf(out, "  [%s] %s\n", test.ID, test.Input)
			fmt.Fprintf(out, "    → %s\n", test.ExpectedTool)
			if len(test.NotTools) > 0 {
				fmt.Fprintf(out, "    ✗ %v\n", test.NotTools)
			}
		}
	}
	return nil
}

func loadConfusionPairs(out io.Writer, dir string, verbose bool) error {
	suite, err := evals.LoadConfusionPairSuite(filepath.Join(dir, evals.ConfusionPairFile))
	if err != nil {
		return fmt.Errorf("loading confusion pairs suite: %w", err)
	}

	fmt.Fprintf(out, "Confusion Pairs Suite: %s\n", suite.Name)
	fmt.Fprintf(out, "Version: %s\n", suite.Version)
	fmt.Fprintf(out, "Description: %s\n", suite.Description)
	fmt.Fprintf(out, "Total Pairs: %d\n", len(suite.Pairs))

	totalTests := 0
	for _, pair := range suite.Pairs {
		totalTests += len(pair.Tests)
	}
	fmt.Fprintf(out, "Total Tests: %d\n\n", totalTests)

	fmt.Fprintln(out, "Confusion Pairs:")
	for _, pair := range suite.Pairs {
		fmt.Fprintf(out, "\n  %s:\n", pair.ID)
		fmt.Fprintf(out, "    Tools: %v\n", pair.Tools)
		fmt.Fprintf(out, "    Rule: %s\n", pair.Disambiguation)
		fmt.Fprintf(out, "    Tests: %d\n", len(pair.Tests))

		if verbose {
			for _, test := range pair.Tests {
				fmt.Fprintf(out, "      %q\n", test.Input)
				fmt.Fprintf(out, "        → %s (%s)\n", test.Expected, test.Reason)
			}
		}
	}
	fmt.Fprintln(out)
	return nil
}

func loadArguments(out io.Writer, dir string, verbose bool) error {
	suite, err := evals.LoadArgumentSuite(filepath.Join(dir, evals.ArgumentFile))
	if err != nil {
		return fmt.Errorf("loading argument suite: %w", err)
	}

	fmt.Fprintf(out, "Argument Suite: %s\n", suite.Name)
	fmt.Fprintf(out, "Version: %s\n", suite.Version)
	fmt.Fprintf(out, "Description: %s\n", suite.Description)
	fmt.Fprintf(out, "Total Tests: %d\n\n", len(suite.Tests))

	byTool := make(map[string]int)
	for _, test := range suite.Tests {
		byTool[test.Tool]++
	}
	printCounts(out, "Tests by Tool:", byTool, 40)

	rules := suite.ValidationRules
	fmt.Fprintln(out, "Validation Rules:")
	fmt.Fprintf(out, "  Subreddit Format: %s\n", rules.SubredditFormat)
	fmt.Fprintf(out, "  Fullname Format: %s\n", rules.FullnameFormat)
	fmt.Fprintf(out, "  Limit Handling: %s\n", rules.LimitHandling)
	fmt.Fprintf(out, "  Timeframe Default: %s\n", rules.TimeframeDefault)
	fmt.Fprintf(out, "  Write Safety: %s\n", rules.WriteSafety)
	fmt.Fprintln(out)

	if verbose {
		fmt.Fprintln(out, "Test Cases:")
		for _, test := range suite.Tests {
			fmt.Fprintf(out, "  [%s] %s\n", test.ID, test.Input)
			fmt.Fprintf(out, "    Tool: %s\n", test.Tool)
			fmt.Fprintf(out, "    Required: %v\n", test.RequiredArgs)
			fmt.Fprintf(out, "    Expected: %v\n", test.ExpectedArgs)
			if len(test.ForbiddenArgs) > 0 {
				fmt.Fprintf(out, "    Forbidden: %v\n", test.ForbiddenArgs)
			}
			if test.ArgNotes != "" {
				fmt.Fprintf(out, "    Notes: %s\n", test.ArgNotes)
			}
		}
	}
	return nil
}

func loadAll(out io.Writer, dir string, verbose bool) error {
	toolSelection, confusionPairs, arguments, err := evals.LoadAllEvals(dir)
	if err != nil {
		return err
	}

	confusionTests := 0
	for _, pair := range confusionPairs.Pairs {
		confusionTests += len(pair.Tests)
	}
	totalTests := len(toolSelection.Tests) + confusionTests + len(arguments.Tests)

	fmt.Fprintf(out, "Loaded all evaluation suites from: %s\n\n", dir)
	fmt.Fprintln(out, "Summary:")
	fmt.Fprintln(out, "--------")
	fmt.Fprintf(out, "Tool Selection Tests:   %d\n", len(toolSelection.Tests))
	fmt.Fprintf(out, "Confusion Pair Tests:   %d (across %d pairs)\n", confusionTests, len(confusionPairs.Pairs))
	fmt.Fprintf(out, "Argument Tests:         %d\n", len(arguments.Tests))
	fmt.Fprintln(out, "──────────────────────────")
	fmt.Fprintf(out, "Total Evaluation Tests: %d\n\n", totalTests)

	coverage := make(map[string]bool)
	for _, test := range toolSelection.Tests {
		coverage[test.ExpectedTool] = true
	}
	for _, pair := range confusionPairs.Pairs {
		for _, tool := range pair.Tools {
			coverage[tool] = true
		}
	}
	for _, test := range arguments.Tests {
		coverage[test.Tool] = true
	}

	fmt.Fprintf(out, "Tool Coverage: %d of %d tools tested\n", len(coverage), len(tools.AllTools()))

	if verbose {
		fmt.Fprintln(out, "\nCovered Tools:")
		names := make([]string, 0, len(coverage))
		for name := range coverage {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(out, "  ✓ %s\n", name)
		}
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "To run with LLM integration, implement the evals.ToolSelector interface")
	fmt.Fprintln(out, "and use EvaluateToolSelection(), EvaluateConfusionPairs(), EvaluateArguments()")
	return nil
}

func printCounts(out io.Writer, title string, counts map[string]int, width int) {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Fprintln(out, title)
	for _, k := range keys {
		fmt.Fprintf(out, "  %-*s: %d\n", width, k, counts[k])
	}
	fmt.Fprintln(out)
}
