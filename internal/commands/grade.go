package commands

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/gradekey-dev/gradekey/internal/dataset"
	"github.com/gradekey-dev/gradekey/internal/grading"
	"github.com/gradekey-dev/gradekey/internal/ledger"
	"github.com/gradekey-dev/gradekey/internal/runlog"
	"github.com/gradekey-dev/gradekey/internal/submission"
)

func newGradeCommand() *cobra.Command {
	var datasetPath string
	var submissionPath string
	var verdictsPath string
	var logDir string
	var tolerancesPath string

	cmd := &cobra.Command{
		Use:   "grade",
		Short: "Grade a student submission against its dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGrade(cmd.OutOrStdout(), datasetPath, submissionPath, verdictsPath, logDir, tolerancesPath)
		},
	}

	cmd.Flags().StringVar(&datasetPath, "dataset", "", "assignment dataset YAML (required)")
	_ = cmd.MarkFlagRequired("dataset")
	cmd.Flags().StringVar(&submissionPath, "submission", "", "submission CSV (required)")
	_ = cmd.MarkFlagRequired("submission")
	cmd.Flags().StringVar(&verdictsPath, "verdicts", "", "write per-field verdicts to this CSV file")
	cmd.Flags().StringVar(&logDir, "log-dir", "", "append task scores to <dir>/logs/grading-log.csv")
	cmd.Flags().StringVar(&tolerancesPath, "tolerances", "", "YAML file overriding the grading tolerances")

	return cmd
}

func runGrade(out io.Writer, datasetPath, submissionPath, verdictsPath, logDir, tolerancesPath string) error {
	ds, err := dataset.Load(datasetPath)
	if err != nil {
		return fmt.Errorf("loading dataset: %w", err)
	}
	sub, err := submission.LoadFile(submissionPath)
	if err != nil {
		return fmt.Errorf("loading submission: %w", err)
	}

	key, err := ledger.Reconstruct(ledger.FromDataset(ds))
	var integrity *ledger.DataIntegrityError
	if err != nil {
		if !errors.As(err, &integrity) {
			return fmt.Errorf("reconstructing key: %w", err)
		}
		return fmt.Errorf("dataset failed its own books: %w", integrity)
	}

	v := grading.NewValidator(ds, key, sub)
	if tolerancesPath != "" {
		tol, err := grading.LoadTolerances(tolerancesPath)
		if err != nil {
			return err
		}
		v.SetTolerances(tol)
	}
	verdicts := v.Validate()
	scores := v.Scores()

	fmt.Fprintf(out, "Grading %s (%s)\n\n", ds.Student.FullName, ds.Student.GradeSection)
	for _, task := range grading.TaskOrder {
		s, ok := scores[task]
		if !ok {
			continue
		}
		fmt.Fprintf(out, "%-14s %3d/%-3d  %5.1f%%  %s\n", task, s.Correct, s.Total, s.Percent(), s.Grade())
	}

	if mismatches := verdicts.Mismatches(); len(mismatches) > 0 {
		fmt.Fprintf(out, "\nMismatched fields (%d):\n", len(mismatches))
		for _, id := range mismatches {
			fmt.Fprintf(out, "  %s\n", id)
		}
	} else {
		fmt.Fprintf(out, "\nNo mismatched fields.\n")
	}

	if verdictsPath != "" {
		if err := writeVerdicts(verdictsPath, verdicts); err != nil {
			return fmt.Errorf("writing verdicts: %w", err)
		}
	}
	if logDir != "" {
		if err := appendRunLog(logDir, datasetPath, ds, scores); err != nil {
			return fmt.Errorf("appending run log: %w", err)
		}
	}
	return nil
}

// writeVerdicts exports the verdict map as a field_id,verdict CSV, sorted by
// field identifier with mismatches first.
func writeVerdicts(path string, verdicts grading.VerdictMap) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write([]string{"field_id", "verdict"}); err != nil {
		return err
	}
	for _, id := range verdicts.Mismatches() {
		if err := cw.Write([]string{id, string(grading.VerdictMismatch)}); err != nil {
			return err
		}
	}
	for _, id := range verdicts.Matches() {
		if err := cw.Write([]string{id, string(grading.VerdictMatch)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func appendRunLog(logDir, datasetPath string, ds *dataset.Dataset, scores map[string]grading.Score) error {
	now := time.Now().UTC()
	var entries []runlog.Entry
	for _, task := range grading.TaskOrder {
		s, ok := scores[task]
		if !ok {
			continue
		}
		entries = append(entries, runlog.Entry{
			Timestamp: now,
			Dataset:   filepath.Base(datasetPath),
			Student:   ds.Student.FullName,
			Section:   ds.Student.GradeSection,
			Task:      task,
			Correct:   s.Correct,
			Total:     s.Total,
			Grade:     s.Grade(),
		})
	}
	return runlog.Append(logDir, entries)
}
