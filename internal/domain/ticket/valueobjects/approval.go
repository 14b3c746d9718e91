package valueobjects

import "fmt"

// ApprovalStatus gates whether a ticket may proceed to technician assignment.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

var validApprovalStatuses = map[ApprovalStatus]bool{
	ApprovalPending:  true,
	ApprovalApproved: true,
	ApprovalRejected: true,
}

func (a ApprovalStatus) String() string {
	return string(a)
}

func (a ApprovalStatus) IsValid() bool {
	return validApprovalStatuses[a]
}

func (a ApprovalStatus) IsPending() bool {
	return a == ApprovalPending
}

func (a ApprovalStatus) IsApproved() bool {
	return a == ApprovalApproved
}

func (a ApprovalStatus) IsRejected() bool {
	return a == ApprovalRejected
}

func NewApprovalStatus(s string) (ApprovalStatus, error) {
	a := ApprovalStatus(s)
	if !a.IsValid() {
		return "", fmt.Errorf("invalid approval status: %s", s)
	}
	return a, nil
}
