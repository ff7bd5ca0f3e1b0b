package commands

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gradekey-dev/gradekey/internal/dataset"
	"github.com/gradekey-dev/gradekey/internal/ledger"
)

func newKeyCommand() *cobra.Command {
	var datasetPath string

	cmd := &cobra.Command{
		Use:   "key",
		Short: "Reconstruct and print the answer key for a dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKey(cmd.OutOrStdout(), datasetPath)
		},
	}

	cmd.Flags().StringVar(&datasetPath, "dataset", "", "assignment dataset YAML (required)")
	_ = cmd.MarkFlagRequired("dataset")

	return cmd
}

func runKey(out io.Writer, datasetPath string) error {
	ds, err := dataset.Load(datasetPath)
	if err != nil {
		return fmt.Errorf("loading dataset: %w", err)
	}

	key, err := ledger.Reconstruct(ledger.FromDataset(ds))

	var integrity *ledger.DataIntegrityError
	if err != nil && !errors.As(err, &integrity) {
		return fmt.Errorf("reconstructing key: %w", err)
	}

	printKey(out, ds, key)

	if integrity != nil {
		return fmt.Errorf("dataset failed its own books: %w", integrity)
	}
	return nil
}

func printKey(out io.Writer, ds *dataset.Dataset, key *ledger.Result) {
	fmt.Fprintf(out, "Worksheet key for %s (%s %d)\n\n", ds.Student.FullName, ds.TransactionMonth(), ds.Year)

	tw := tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ACCOUNT\tTB DR\tTB CR\tADJ DR\tADJ CR\tATB DR\tATB CR\tIS DR\tIS CR\tBS DR\tBS CR")
	for _, acc := range key.Accounts {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			acc.Name,
			acc.TBDr.StringFixed(2), acc.TBCr.StringFixed(2),
			acc.AdjDr.StringFixed(2), acc.AdjCr.StringFixed(2),
			acc.ATBDr.StringFixed(2), acc.ATBCr.StringFixed(2),
			acc.ISDr.StringFixed(2), acc.ISCr.StringFixed(2),
			acc.BSDr.StringFixed(2), acc.BSCr.StringFixed(2))
	}
	t := key.Totals
	fmt.Fprintf(tw, "TOTALS\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
		t.TBDr.StringFixed(2), t.TBCr.StringFixed(2),
		t.AdjDr.StringFixed(2), t.AdjCr.StringFixed(2),
		t.ATBDr.StringFixed(2), t.ATBCr.StringFixed(2),
		t.ISDr.StringFixed(2), t.ISCr.StringFixed(2),
		t.BSDr.StringFixed(2), t.BSCr.StringFixed(2))
	tw.Flush()

	fmt.Fprintf(out, "\nNet income:       %s\n", t.NetIncome.StringFixed(2))
	fmt.Fprintf(out, "Starting capital: %s\n", t.StartingCapital.StringFixed(2))
	fmt.Fprintf(out, "Withdrawals:      %s\n", t.Withdrawals.StringFixed(2))
	fmt.Fprintf(out, "Ending capital:   %s\n", t.EndingCapital.StringFixed(2))
	fmt.Fprintf(out, "Total assets:     %s\n", t.TotalAssetsNet.StringFixed(2))
	fmt.Fprintf(out, "Liab + equity:    %s\n", t.TotalLiabilitiesAndEquity.StringFixed(2))

	if len(key.UnknownRefs) > 0 {
		fmt.Fprintf(out, "\nUnknown account references:\n")
		for _, ref := range key.UnknownRefs {
			fmt.Fprintf(out, "  %s\n", ref.String())
		}
	}
}
