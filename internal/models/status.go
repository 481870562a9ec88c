package models

// Status is the approval lifecycle shared by captains, players and roster
// entries. Everyone starts as pending; only an admin moves them on.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusRejected Status = "rejected"
)

// CanLogin reports whether an account in this status may authenticate.
func (s Status) CanLogin() bool {
	return s == StatusApproved || s == StatusActive
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusActive, StatusInactive, StatusRejected:
		return true
	}
	return false
}
