package grading

// Score counts graded fields for one task.
type Score struct {
	Correct int
	Total   int
}

// Percent returns the score as a percentage, 0 for an empty task.
func (s Score) Percent() float64 {
	if s.Total == 0 {
		return 0
	}
	return 100 * float64(s.Correct) / float64(s.Total)
}

// Rubric grade bands.
const (
	GradeAdvanced             = "A"  // 95-100%
	GradeProficient           = "P"  // 85-94.9%
	GradeDeveloping           = "D"  // 75-84.9%
	GradeInterventionRequired = "IR" // below 75%
)

// Grade returns the rubric band for the score, or "-" for an empty task.
func (s Score) Grade() string {
	if s.Total == 0 {
		return "-"
	}
	switch p := s.Percent(); {
	case p >= 95:
		return GradeAdvanced
	case p >= 85:
		return GradeProficient
	case p >= 75:
		return GradeDeveloping
	default:
		return GradeInterventionRequired
	}
}

// Task labels for score reporting.
const (
	TaskLedgers      = "ledgers"
	TaskPostingRefs  = "posting-refs"
	TaskTrialBalance = "trial-balance"
	TaskWorksheet    = "worksheet"
	TaskStatements   = "statements"
)

// TaskOrder is the reporting order of task labels.
var TaskOrder = []string{TaskLedgers, TaskPostingRefs, TaskTrialBalance, TaskWorksheet, TaskStatements}
