package ledger

type Kind string

const (
	KindCredit Kind = "credit"
	KindDebit  Kind = "debit"
	KindRefund Kind = "refund"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindCredit, KindDebit, KindRefund:
		return true
	default:
		return false
	}
}

// Sign is the multiplier applied to an entry's magnitude.
func (k Kind) Sign() int64 {
	if k == KindDebit {
		return -1
	}
	return 1
}
