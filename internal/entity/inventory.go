package entity

import (
	"fmt"
	"strings"
)

// Condition describes the physical state of an inventory item.
type Condition string

const (
	ConditionNew     Condition = "NEW"
	ConditionOpenBox Condition = "OPEN_BOX"
	ConditionUsed    Condition = "USED"
)

// ParseCondition accepts any casing and rejects everything outside the enum.
func ParseCondition(value string) (Condition, error) {
	switch cond := Condition(strings.ToUpper(value)); cond {
	case ConditionNew, ConditionOpenBox, ConditionUsed:
		return cond, nil
	default:
		return "", fmt.Errorf("%w: unknown condition %q", ErrInvalidData, value)
	}
}

type Inventory struct {
	ID                  int64     `json:"id"`
	Name                string    `json:"name"                 validate:"required,max=63"`
	Quantity            int64     `json:"quantity"             validate:"gte=0"`
	RestockLevel        int64     `json:"restock_level"        validate:"gte=0"`
	Condition           Condition `json:"condition"            validate:"required,oneof=NEW OPEN_BOX USED"`
	RestockingAvailable bool      `json:"restocking_available"`
}

// ListFilter holds optional equality constraints for list queries.
// Nil fields are unconstrained; set fields are ANDed together.
type ListFilter struct {
	Name                *string
	Quantity            *int64
	RestockLevel        *int64
	Condition           *Condition
	RestockingAvailable *bool
}

// Empty reports whether no constraint is set.
func (f ListFilter) Empty() bool {
	return f.Name == nil &&
		f.Quantity == nil &&
		f.RestockLevel == nil &&
		f.Condition == nil &&
		f.RestockingAvailable == nil
}
