package state

import (
	"fmt"
	"strings"
	"time"
)

// SyncRecord is one entry of the sync history shown in the pager
type SyncRecord struct {
	At        time.Time
	WidgetID  string
	Cause     string
	Selection []int
	Pushed    bool
	FromUI    bool
	Err       string
}

// String formats the record as a single history line
func (r SyncRecord) String() string {
	line := fmt.Sprintf("%s  %-10s %-14s %v", r.At.Format("15:04:05.000"), r.WidgetID, r.Cause, r.Selection)
	if r.Pushed {
		line += fmt.Sprintf("  push fromUi=%t", r.FromUI)
	}
	if r.Err != "" {
		line += "  error: " + r.Err
	}
	return line
}

// AppState contains the host UI state that is not owned by a widget
type AppState struct {
	StatusMessage string // status bar message
	LastError     string
	Online        bool
	ShowHelp      bool
	Width         int
	Height        int

	History     []SyncRecord
	HistorySize int
}

// NewAppState creates a new application state
func NewAppState(historySize int) *AppState {
	if historySize <= 0 {
		historySize = 200
	}
	return &AppState{
		Online:      true,
		History:     make([]SyncRecord, 0, historySize),
		HistorySize: historySize,
	}
}

// Record appends r to the history, dropping the oldest entries beyond HistorySize
func (s *AppState) Record(r SyncRecord) {
	s.History = append(s.History, r)
	if over := len(s.History) - s.HistorySize; over > 0 {
		s.History = append(s.History[:0], s.History[over:]...)
	}
}

// SetStatus sets the status message and clears the last error
func (s *AppState) SetStatus(msg string) {
	s.StatusMessage = msg
	s.LastError = ""
}

// SetError records err as the last error
func (s *AppState) SetError(err error) {
	if err == nil {
		s.LastError = ""
		return
	}
	s.LastError = err.Error()
}

// HistoryText renders the history newest first, one record per line
func (s *AppState) HistoryText() string {
	if len(s.History) == 0 {
		return "No synchronization events yet.\n"
	}
	var b strings.Builder
	for i := len(s.History) - 1; i >= 0; i-- {
		b.WriteString(s.History[i].String())
		b.WriteString("\n")
	}
	return b.String()
}
