package store

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/gyeh/modaudit/internal/model"
)

// leakColumns is the COPY column order for audit.leaks.
func leakColumns() []string {
	return []string{
		"run_id",
		"seq",
		"kind",
		"description",
		"affected_items",
		"current_value",
		"corrected_value",
		"dollar_impact",
		"recovery_probability",
		"evidence",
	}
}

// LeakSource implements pgx.CopyFromSource over a report's leak list,
// tagging every row with the run ID. Leak order in the report is preserved
// via the seq column.
type LeakSource struct {
	runID uuid.UUID
	leaks []model.DetectedLeak
	idx   int
}

// NewLeakSource creates a CopyFromSource for the given run's leaks.
func NewLeakSource(runID uuid.UUID, leaks []model.DetectedLeak) *LeakSource {
	return &LeakSource{runID: runID, leaks: leaks, idx: -1}
}

// Next advances to the next leak row.
func (s *LeakSource) Next() bool {
	s.idx++
	return s.idx < len(s.leaks)
}

// Values returns the current row's values in COPY column order.
func (s *LeakSource) Values() ([]any, error) {
	l := s.leaks[s.idx]
	return []any{
		s.runID,
		s.idx,
		string(l.Kind),
		l.Description,
		l.AffectedItems,
		l.CurrentValue,
		l.CorrectedValue,
		l.DollarImpact,
		l.RecoveryProbability,
		l.Evidence,
	}, nil
}

// Err returns any error encountered during iteration.
func (s *LeakSource) Err() error {
	return nil
}

// Compile-time check that LeakSource satisfies the interface.
var _ pgx.CopyFromSource = (*LeakSource)(nil)
