package metadata

import "fmt"

type Status string

const (
	StatusAvailable   Status = "available"
	StatusAssigned    Status = "assigned"
	StatusUnderRepair Status = "under_repair"
	StatusRetired     Status = "retired"
)

func NewStatus(value string) (Status, error) {
	status := Status(value)
	if !status.IsValid() {
		return "", fmt.Errorf(
			"invalid status: %s, only valid values are: %s, %s, %s, %s",
			value, StatusAvailable, StatusAssigned, StatusUnderRepair, StatusRetired,
		)
	}
	return status, nil
}

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusAssigned, StatusUnderRepair, StatusRetired:
		return true
	default:
		return false
	}
}

func (s Status) String() string {
	return string(s)
}
