package models

import "time"

// LogEntry is a single progress-log record. The owning user is never a
// field on the record: ownership is encoded in the Firestore collection
// path the entry is stored under.
type LogEntry struct {
	TaskDescription string `json:"taskDescription" firestore:"taskDescription" binding:"required"`
	Project         string `json:"project" firestore:"project" binding:"required"`
	Status          string `json:"status" firestore:"status" binding:"required"`
	Priority        string `json:"priority" firestore:"priority" binding:"required"`
	StartTime       string `json:"startTime,omitempty" firestore:"startTime,omitempty"`
	EndTime         string `json:"endTime,omitempty" firestore:"endTime,omitempty"`
	Duration        string `json:"duration,omitempty" firestore:"duration,omitempty"`
	Comments        string `json:"comments,omitempty" firestore:"comments,omitempty"`
	// Date is an RFC 3339 timestamp and the sole sort key for listing.
	// Lexicographic order on it matches chronological order.
	Date string `json:"date,omitempty" firestore:"date"`
}

// ApplyDefaults fills Date with the given time when the caller omitted it.
func (e *LogEntry) ApplyDefaults(now time.Time) {
	if e.Date == "" {
		e.Date = now.Format(time.RFC3339)
	}
}

// StoredLog is a LogEntry together with its document id. The id is
// assigned by the store on creation and only ever appears in responses.
type StoredLog struct {
	ID string `json:"id"`
	LogEntry
}
