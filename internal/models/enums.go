package models

// ObservedState is the conservation condition recorded by an inspection.
// Stored as free text; values outside the known set are kept as-is.
type ObservedState string

const (
	StateGood     ObservedState = "Good"
	StateAverage  ObservedState = "Average"
	StateDegraded ObservedState = "Degraded"
	StateRuined   ObservedState = "Ruined"
)

// StateNotInspected labels a building that has no inspection yet.
const StateNotInspected = "Not inspected"

// ObservedStates lists the known states from best to worst.
var ObservedStates = []ObservedState{StateGood, StateAverage, StateDegraded, StateRuined}

// Known reports whether s is one of the recognised states.
func (s ObservedState) Known() bool {
	for _, known := range ObservedStates {
		if s == known {
			return true
		}
	}
	return false
}

// Urgent reports whether s calls for remediation.
func (s ObservedState) Urgent() bool {
	return s == StateDegraded || s == StateRuined
}

// WorkStatus is the progress of an intervention.
type WorkStatus string

const (
	WorkPlanned    WorkStatus = "Planned"
	WorkInProgress WorkStatus = "InProgress"
	WorkDone       WorkStatus = "Done"
	WorkCancelled  WorkStatus = "Cancelled"
)

// WorkStatuses lists the known statuses in lifecycle order.
var WorkStatuses = []WorkStatus{WorkPlanned, WorkInProgress, WorkDone, WorkCancelled}

// Known reports whether s is one of the recognised statuses.
func (s WorkStatus) Known() bool {
	for _, known := range WorkStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Label is the human-readable form of s.
func (s WorkStatus) Label() string {
	if s == WorkInProgress {
		return "In progress"
	}
	return string(s)
}

// DocumentType classifies a document attached to a building.
type DocumentType string

const (
	DocPhoto DocumentType = "Photo"
	DocPlan  DocumentType = "Plan"
	DocPDF   DocumentType = "PDF"
	DocVideo DocumentType = "Video"
	DocOther DocumentType = "Other"
)

// DocumentTypes lists the known document types.
var DocumentTypes = []DocumentType{DocPhoto, DocPlan, DocPDF, DocVideo, DocOther}

// Known reports whether t is one of the recognised document types.
func (t DocumentType) Known() bool {
	for _, known := range DocumentTypes {
		if t == known {
			return true
		}
	}
	return false
}
