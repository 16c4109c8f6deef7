package metadata

import "fmt"

type Condition string

const (
	ConditionNew         Condition = "new"
	ConditionGood        Condition = "good"
	ConditionNeedsRepair Condition = "needs_repair"
	ConditionDamaged     Condition = "damaged"
)

func NewCondition(value string) (Condition, error) {
	condition := Condition(value)
	if !condition.IsValid() {
		return "", fmt.Errorf(
			"invalid condition: %s, only valid values are: %s, %s, %s, %s",
			value, ConditionNew, ConditionGood, ConditionNeedsRepair, ConditionDamaged,
		)
	}
	return condition, nil
}

func (c Condition) IsValid() bool {
	switch c {
	case ConditionNew, ConditionGood, ConditionNeedsRepair, ConditionDamaged:
		return true
	default:
		return false
	}
}

func (c Condition) String() string {
	return string(c)
}
