package model

// LoadStatus represents the lifecycle of the record set held by the app
type LoadStatus string

const (
	// LoadStatusIdle means no fetch has been started yet
	LoadStatusIdle LoadStatus = "Idle"

	// LoadStatusLoading means a fetch is in flight
	LoadStatusLoading LoadStatus = "Loading"

	// LoadStatusLoaded means the last fetch finished. A failed fetch also ends
	// here with an empty record set.
	LoadStatusLoaded LoadStatus = "Loaded"
)

// String returns the string representation of LoadStatus
func (ls LoadStatus) String() string {
	return string(ls)
}

// IsActive returns true while a fetch is running
func (ls LoadStatus) IsActive() bool {
	return ls == LoadStatusLoading
}

// IsFinished returns true once at least one fetch has completed
func (ls LoadStatus) IsFinished() bool {
	return ls == LoadStatusLoaded
}
