package model

import (
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Log levels stored in LogEntry.Level.
const (
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// Audit actions stored in LogEntry.ActionType. Plain request logs have none.
const (
	ActionOptimize  = "optimize"
	ActionViewPlan  = "view_plan"
	ActionListPlans = "list_plans"
)

// Limits applied by LogQuery.Normalized.
const (
	DefaultLogQueryLimit = 100
	MaxLogQueryLimit     = 1000
)

// ErrInvalidLogQuery is returned for a query whose time window is empty or
// whose paging is negative.
var ErrInvalidLogQuery = errors.New("invalid log query")

// LogEntry is one line of the audit trail: an HTTP request, or a domain
// action such as an optimization. Action-specific data goes into Fields.
type LogEntry struct {
	ID         primitive.ObjectID     `bson:"_id,omitempty" json:"id"`
	Timestamp  time.Time              `bson:"timestamp" json:"timestamp"`
	Level      string                 `bson:"level" json:"level"`
	Message    string                 `bson:"message" json:"message"`
	RequestID  string                 `bson:"request_id,omitempty" json:"request_id,omitempty"`
	Subject    string                 `bson:"subject,omitempty" json:"subject,omitempty"`
	ActionType string                 `bson:"action_type,omitempty" json:"action_type,omitempty"`
	Method     string                 `bson:"method,omitempty" json:"method,omitempty"`
	Path       string                 `bson:"path,omitempty" json:"path,omitempty"`
	StatusCode int                    `bson:"status_code,omitempty" json:"status_code,omitempty"`
	DurationMS int64                  `bson:"duration_ms,omitempty" json:"duration_ms,omitempty"`
	IP         string                 `bson:"ip,omitempty" json:"ip,omitempty"`
	UserAgent  string                 `bson:"user_agent,omitempty" json:"user_agent,omitempty"`
	Error      string                 `bson:"error,omitempty" json:"error,omitempty"`
	Fields     map[string]interface{} `bson:"fields,omitempty" json:"fields,omitempty"`
}

// Set stores one field and returns e.
func (e *LogEntry) Set(key string, value interface{}) *LogEntry {
	if e.Fields == nil {
		e.Fields = make(map[string]interface{})
	}
	e.Fields[key] = value
	return e
}

// Merge copies fields into e, overwriting existing keys, and returns e.
func (e *LogEntry) Merge(fields map[string]interface{}) *LogEntry {
	for k, v := range fields {
		e.Set(k, v)
	}
	return e
}

// Stamp fills in what a stored entry must have: an id, a UTC timestamp and
// a known level. Unknown levels become info.
func (e *LogEntry) Stamp(now time.Time) {
	if e.ID.IsZero() {
		e.ID = primitive.NewObjectID()
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = now
	}
	e.Timestamp = e.Timestamp.UTC()

	switch level := strings.ToLower(strings.TrimSpace(e.Level)); level {
	case LevelWarn, LevelError:
		e.Level = level
	case "warning":
		e.Level = LevelWarn
	default:
		e.Level = LevelInfo
	}
}

// LogQuery selects audit trail entries. Empty fields match everything.
// Since is inclusive and Until exclusive.
type LogQuery struct {
	RequestID  string
	Subject    string
	Level      string
	ActionType string
	Path       string
	Since      *time.Time
	Until      *time.Time
	Limit      int
	Skip       int
}

// Normalized returns q with the default limit applied and the limit capped
// at MaxLogQueryLimit.
func (q LogQuery) Normalized() (LogQuery, error) {
	if q.Limit < 0 || q.Skip < 0 {
		return q, ErrInvalidLogQuery
	}
	if q.Since != nil && q.Until != nil && !q.Until.After(*q.Since) {
		return q, ErrInvalidLogQuery
	}
	switch {
	case q.Limit == 0:
		q.Limit = DefaultLogQueryLimit
	case q.Limit > MaxLogQueryLimit:
		q.Limit = MaxLogQueryLimit
	}
	return q, nil
}
