package dto

import (
	"fmt"
	"time"

	"github.com/guttosm/truckload-service/internal/domain/model"
	"github.com/guttosm/truckload-service/internal/i18n"
)

// LogQueryRequest holds the query string of GET /api/logs.
type LogQueryRequest struct {
	RequestID string `form:"request_id"`
	Subject   string `form:"subject"`
	Level     string `form:"level" binding:"omitempty,oneof=info warn error"`
	Action    string `form:"action"`
	Path      string `form:"path"`
	// Since and Until are RFC 3339 timestamps.
	Since string `form:"since" example:"2026-03-01T00:00:00Z"`
	Until string `form:"until" example:"2026-03-02T00:00:00Z"`
	Limit int    `form:"limit" binding:"omitempty,min=1"`
	Skip  int    `form:"skip" binding:"omitempty,min=0"`
}

// ToLogQuery parses the timestamps and builds a model.LogQuery.
func (r LogQueryRequest) ToLogQuery() (model.LogQuery, error) {
	q := model.LogQuery{
		RequestID:  r.RequestID,
		Subject:    r.Subject,
		Level:      r.Level,
		ActionType: r.Action,
		Path:       r.Path,
		Limit:      r.Limit,
		Skip:       r.Skip,
	}

	var err error
	if q.Since, err = parseTimestamp("since", r.Since); err != nil {
		return q, err
	}
	if q.Until, err = parseTimestamp("until", r.Until); err != nil {
		return q, err
	}
	return q, nil
}

func parseTimestamp(field, s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, &ValidationError{Field: field, Key: i18n.ErrKeyInvalidRequest, Message: fmt.Sprintf("must be an RFC 3339 timestamp, got %q", s)}
	}
	return &t, nil
}

// LogPage is one page of audit entries.
// @Description Audit entries matching a query, newest first
type LogPage struct {
	Entries []model.LogEntry `json:"entries"`
	// Total counts every matching entry, ignoring limit and skip
	Total int64 `json:"total" example:"42"`
	Limit int   `json:"limit" example:"100"`
	Skip  int   `json:"skip" example:"0"`
} // @name LogPage
