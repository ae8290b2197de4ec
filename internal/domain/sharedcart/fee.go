package sharedcart

import (
	"sort"

	"grocery-pool/internal/domain/money"

	"github.com/google/uuid"
)

// SplitFee divides fee into n shares that sum to fee exactly. The first
// fee%n shares carry one extra cent.
func SplitFee(fee money.Cents, n int) ([]money.Cents, error) {
	if n < 1 {
		return nil, ErrNoContributors
	}
	base := fee / money.Cents(n)
	rem := int(fee % money.Cents(n))
	shares := make([]money.Cents, n)
	for i := range shares {
		shares[i] = base
		if i < rem {
			shares[i]++
		}
	}
	return shares, nil
}

// ShareChange is one contributor's move to a new share. Credit is positive
// when the contributor overpaid under the old share.
type ShareChange struct {
	ContributorID uuid.UUID
	UserID        uuid.UUID
	OldShare      money.Cents
	NewShare      money.Cents
	Credit        money.Cents
	NewCharged    money.Cents
}

// PlanRebalance recomputes every share for the current contributor set.
// Contributors are ordered by join time so remainder cents land on the
// earliest joiners.
func PlanRebalance(fee money.Cents, contributors []Contributor) ([]ShareChange, error) {
	if len(contributors) == 0 {
		return nil, ErrNoContributors
	}
	ordered := make([]Contributor, len(contributors))
	copy(ordered, contributors)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].JoinedAt.Before(ordered[j].JoinedAt)
	})

	shares, err := SplitFee(fee, len(ordered))
	if err != nil {
		return nil, err
	}

	changes := make([]ShareChange, len(ordered))
	for i, c := range ordered {
		change := ShareChange{
			ContributorID: c.ID,
			UserID:        c.UserID,
			OldShare:      c.Contribution,
			NewShare:      shares[i],
			NewCharged:    c.Charged,
		}
		if shares[i] < c.Contribution {
			change.Credit = c.Contribution - shares[i]
			change.NewCharged = c.Charged - change.Credit
		}
		changes[i] = change
	}
	return changes, nil
}

func (c ShareChange) Changed() bool {
	return c.OldShare != c.NewShare
}
