package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/tue-alga/compacting-squares/compact"
	"github.com/tue-alga/compacting-squares/gather"
	"github.com/tue-alga/compacting-squares/instance"
	"github.com/tue-alga/compacting-squares/stepper"
)

func init() {
	runCmd := &cobra.Command{
		Use:   "run <instance...>",
		Short: "Run Gather then Compact on one or more instance files",
		Long: `Run loads each instance file, drives it through Gather and then
Compact, and reports the number of steps each phase took.

Given a single instance, run prints a human-readable summary. Given more
than one, it switches to batch mode: one tab-separated report line per
instance (name, gather steps, compact steps, total steps, or the
instance name and the failure on error), and exits 1 if any instance
failed.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runRun,
	}

	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	batch := len(args) > 1
	failed := false

	for _, path := range args {
		gatherSteps, compactSteps, err := runOne(path)
		if err != nil {
			failed = true
			if batch {
				fmt.Printf("%s\t%s\n", path, err)
			} else {
				printError(path, err)
			}

			continue
		}

		total := gatherSteps + compactSteps
		if batch {
			fmt.Printf("%s\t%d\t%d\t%d\n", path, gatherSteps, compactSteps, total)
		} else {
			printSuccess(path, gatherSteps, compactSteps, total)
		}
	}

	if failed {
		os.Exit(1)
	}

	return nil
}

// runOne loads path, drives it through Gather and Compact in batch mode
// (spec.md §4.7: "intermediate classification is unnecessary" for
// non-interactive tooling), and returns each phase's step count.
func runOne(path string) (gatherSteps, compactSteps int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	w, err := instance.Load(f)
	if err != nil {
		return 0, 0, err
	}

	s := stepper.New(w)
	if err := s.RunBatch(gather.NewPhase()); err != nil {
		return 0, 0, fmt.Errorf("gather: %w", err)
	}
	gatherSteps = len(s.Transcript())

	if err := s.RunBatch(compact.NewPhase()); err != nil {
		return gatherSteps, 0, fmt.Errorf("compact: %w", err)
	}
	compactSteps = len(s.Transcript()) - gatherSteps

	return gatherSteps, compactSteps, nil
}

func printSuccess(path string, gatherSteps, compactSteps, total int) {
	msg := fmt.Sprintf("%s: gather=%d compact=%d total=%d", path, gatherSteps, compactSteps, total)
	if isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Printf("\033[32m%s\033[0m\n", msg)
	} else {
		fmt.Println(msg)
	}
}

func printError(path string, err error) {
	msg := fmt.Sprintf("%s: %s", path, err)
	if isatty.IsTerminal(os.Stderr.Fd()) {
		fmt.Fprintf(os.Stderr, "\033[31m%s\033[0m\n", msg)
	} else {
		fmt.Fprintln(os.Stderr, msg)
	}
}
