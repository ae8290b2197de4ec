package order

type Status string

const (
	StatusPending   Status = "pending"
	StatusScheduled Status = "scheduled"
	StatusPlaced    Status = "placed"
	StatusCompleted Status = "completed"
	StatusCanceled  Status = "canceled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusScheduled, StatusPlaced, StatusCompleted, StatusCanceled:
		return true
	default:
		return false
	}
}

var transitions = map[Status][]Status{
	StatusPending:   {StatusScheduled, StatusPlaced, StatusCanceled},
	StatusScheduled: {StatusPlaced, StatusCanceled},
	StatusPlaced:    {StatusCompleted, StatusCanceled},
}

// CanTransition reports whether from may move to to. Statuses only move forward.
func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
