package models

import (
	"math"
	"time"
)

// Candidate statuses
const (
	CandidateActive   = "Activo"
	CandidateInactive = "Inactivo"
	CandidateRetired  = "Retirado"
)

// Commission and phase statuses
const (
	CommissionCompleted  = "Completada"
	CommissionInProgress = "En proceso"
	CommissionPending    = "Pendiente"
	CommissionFinalized  = "Finalizada"
)

// StatusTone is the colour/icon bucket a status is rendered with.
type StatusTone string

const (
	ToneSuccess StatusTone = "success"
	ToneInfo    StatusTone = "info"
	ToneWarning StatusTone = "warning"
	ToneMuted   StatusTone = "muted"
	ToneOther   StatusTone = "other"
)

// CandidateTone maps a candidate status to its tone. Unknown values land in ToneOther.
func CandidateTone(status string) StatusTone {
	switch status {
	case CandidateActive:
		return ToneSuccess
	case CandidateInactive:
		return ToneWarning
	case CandidateRetired:
		return ToneMuted
	default:
		return ToneOther
	}
}

// CommissionTone maps a commission or phase status to its tone. Unknown values land in ToneOther.
func CommissionTone(status string) StatusTone {
	switch status {
	case CommissionCompleted, CommissionFinalized:
		return ToneSuccess
	case CommissionInProgress:
		return ToneInfo
	case CommissionPending:
		return ToneWarning
	default:
		return ToneOther
	}
}

// PhaseDone reports whether a phase status counts towards commission progress.
func PhaseDone(status string) bool {
	return status == CommissionCompleted || status == CommissionFinalized
}

// CompletedPhases counts the phases already closed.
func (c Commission) CompletedPhases() int {
	n := 0
	for _, p := range c.Phases {
		if PhaseDone(p.Status) {
			n++
		}
	}
	return n
}

// Progress is the rounded percentage of completed phases, 0 for a commission without phases.
func (c Commission) Progress() int {
	if len(c.Phases) == 0 {
		return 0
	}
	return Percent(c.CompletedPhases(), len(c.Phases))
}

// CurrentPhase returns the first phase still in progress.
func (c Commission) CurrentPhase() (Phase, bool) {
	for _, p := range c.Phases {
		if p.Status == CommissionInProgress {
			return p, true
		}
	}
	return Phase{}, false
}

// Percent rounds 100*part/whole half-up. A zero whole yields 0.
func Percent(part, whole int) int {
	if whole <= 0 {
		return 0
	}
	return int(math.Floor(100*float64(part)/float64(whole) + 0.5))
}

const dateLayout = "2006-01-02"

// ParseDate parses an ISO calendar date. Full RFC 3339 timestamps are accepted and truncated to the day.
func ParseDate(s string) (time.Time, bool) {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
	}
	return time.Time{}, false
}
