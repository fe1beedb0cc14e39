package domain

// LoanStatus is the state of a loan in the approval workflow.
type LoanStatus string

const (
	LoanPending  LoanStatus = "pending"
	LoanApproved LoanStatus = "approved"
	LoanRejected LoanStatus = "rejected"
)

// CanTransition reports whether a loan may move from its current status to
// the target status. Only pending loans may be resolved; approved and
// rejected are terminal.
func (s LoanStatus) CanTransition(to LoanStatus) bool {
	if s != LoanPending {
		return false
	}
	return to == LoanApproved || to == LoanRejected
}

// Terminal reports whether the status admits no further transitions.
func (s LoanStatus) Terminal() bool {
	return s == LoanApproved || s == LoanRejected
}
