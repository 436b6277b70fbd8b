package model

// SortMode selects the ordering key for the list projections.
type SortMode string

const (
	SortCreatedTime SortMode = "CreatedTime"
	SortDueDate     SortMode = "DueDate"
	SortTaskName    SortMode = "TaskName"
)

func (s SortMode) IsValid() bool {
	switch s {
	case SortCreatedTime, SortDueDate, SortTaskName:
		return true
	default:
		return false
	}
}

// Next cycles through the sort modes in a fixed order, for UI toggles.
func (s SortMode) Next() SortMode {
	switch s {
	case SortCreatedTime:
		return SortDueDate
	case SortDueDate:
		return SortTaskName
	default:
		return SortCreatedTime
	}
}
