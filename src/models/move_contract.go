package models

// MoveContract is a snapshot of the reference MOVE future taken during the
// matching pass. Prices are re-fetched on use, so the snapshot only carries the
// fields the dual tolerance filter needs.
type MoveContract struct {
	Name         string
	Strike       float64
	DaysToExpiry float64
}
