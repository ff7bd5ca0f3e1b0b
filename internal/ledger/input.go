package ledger

import "github.com/gradekey-dev/gradekey/internal/dataset"

// FromDataset assembles the engine input from an assignment dataset: its
// entries, the explicit account order, the complete classification table,
// and the student's synthesized equity account names. Datasets without a
// classification table (ledger tasks) get none; the singular equity entries
// are only synthesized for worksheet tasks.
func FromDataset(ds *dataset.Dataset) Input {
	in := Input{
		BeginningBalances:  ds.BeginningBalances,
		JournalEntries:     ds.JournalEntries,
		Adjustments:        ds.Adjustments,
		AccountOrder:       ds.AccountOrder,
		CapitalAccount:     ds.CapitalAccount(),
		WithdrawalsAccount: ds.WithdrawalsAccount(),
	}
	if len(ds.Classifications) > 0 {
		in.Classifications = ds.ClassificationTable()
	}
	return in
}
