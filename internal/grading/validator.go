package grading

import (
	"strings"

	"github.com/gradekey-dev/gradekey/internal/dataset"
	"github.com/gradekey-dev/gradekey/internal/ledger"
	"github.com/gradekey-dev/gradekey/internal/submission"
)

// Validator grades one submission against one reconstructed key. It is used
// once: construct, call Validate, read the verdicts and scores.
type Validator struct {
	ds  *dataset.Dataset
	key *ledger.Result
	sub submission.Submission
	tol Tolerances

	verdicts VerdictMap
	scores   map[string]*Score

	// posted marks journal line fields whose amount was consumed by some
	// ledger row; consumed tracks per-account first-fit matching state.
	posted   map[string]bool
	consumed map[*ledger.AccountState][]bool
}

// NewValidator creates a Validator with default tolerances.
func NewValidator(ds *dataset.Dataset, key *ledger.Result, sub submission.Submission) *Validator {
	return &Validator{
		ds:       ds,
		key:      key,
		sub:      sub,
		tol:      DefaultTolerances(),
		verdicts: make(VerdictMap),
		scores:   make(map[string]*Score),
		posted:   make(map[string]bool),
		consumed: make(map[*ledger.AccountState][]bool),
	}
}

// SetTolerances overrides the default tolerances.
func (v *Validator) SetTolerances(tol Tolerances) { v.tol = tol }

// Verdicts returns the accumulated verdict map.
func (v *Validator) Verdicts() VerdictMap { return v.verdicts }

// Scores returns per-task scores for tasks that graded at least one field.
func (v *Validator) Scores() map[string]Score {
	out := make(map[string]Score, len(v.scores))
	for task, s := range v.scores {
		if s.Total > 0 {
			out[task] = *s
		}
	}
	return out
}

// Validate runs every task section applicable to the dataset: ledger forms
// and posting references plus the trial balance when the dataset presents
// ledger forms, the worksheet and financial statements when it carries a
// classification table.
func (v *Validator) Validate() VerdictMap {
	if len(v.ds.Ledgers) > 0 {
		v.ValidateLedgers()
		v.ValidatePostingReferences()
		v.ValidateTrialBalance()
	}
	if len(v.ds.Classifications) > 0 {
		v.ValidateWorksheet()
		v.ValidateStatements()
	}
	return v.verdicts
}

// mark records a verdict and counts it toward the task's score.
func (v *Validator) mark(task, id string, ok bool) {
	s := v.scores[task]
	if s == nil {
		s = &Score{}
		v.scores[task] = s
	}
	s.Total++
	if ok {
		s.Correct++
		v.verdicts[id] = VerdictMatch
		return
	}
	v.verdicts[id] = VerdictMismatch
}

// matchAccountName resolves a submitted title against the required accounts,
// case-insensitively.
func (v *Validator) matchAccountName(submitted string) (string, bool) {
	submitted = strings.TrimSpace(submitted)
	if submitted == "" {
		return "", false
	}
	for _, name := range v.ds.RequiredAccounts() {
		if strings.EqualFold(name, submitted) {
			return name, true
		}
	}
	return "", false
}
