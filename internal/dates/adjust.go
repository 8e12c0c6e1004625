package dates

import "time"

// Unit is a calendar unit for Adjust.
type Unit string

// Direction selects whether Adjust shifts forward or backward.
type Direction string

const (
	// UnitDays shifts by calendar days. It is the default unit.
	UnitDays Unit = "days"
	// UnitYears shifts by calendar years.
	UnitYears Unit = "years"

	// DirectionAdd shifts forward in time. It is the default direction.
	DirectionAdd Direction = "add"
	// DirectionSubtract shifts backward in time.
	DirectionSubtract Direction = "subtract"
)

// Adjust returns the current moment shifted by amount in the given unit,
// calendar-correct across month and year boundaries.
func Adjust(amount int, unit Unit, direction Direction) time.Time {
	return AdjustFrom(time.Now(), amount, unit, direction)
}

// AdjustFrom is Adjust with an explicit base time. An empty unit means days
// and an empty direction means add. A unit outside the supported set leaves
// the base unshifted; Unit is a closed set of constants, so that case is not
// reachable without constructing a unit by hand.
func AdjustFrom(base time.Time, amount int, unit Unit, direction Direction) time.Time {
	if direction == DirectionSubtract {
		amount = -amount
	}

	switch unit {
	case UnitYears:
		return base.AddDate(amount, 0, 0)
	case UnitDays, "":
		return base.AddDate(0, 0, amount)
	default:
		return base
	}
}
