package models

// DropPosition identifies a slot within one column's ordered view
type DropPosition struct {
	Status Status
	Index  int
}

// DropResult describes a completed or cancelled move gesture: where the
// task was picked up, where it was let go, and which task was carried.
// A nil Destination means the gesture was cancelled (dropped outside any
// column) and the board must not change.
type DropResult struct {
	TaskID      string
	Source      DropPosition
	Destination *DropPosition
}
