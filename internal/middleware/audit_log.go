package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/truckload-service/internal/domain/model"
)

// Audit records a domain action (see the model.Action* constants) for the
// current request. It never blocks.
func Audit(sink *AsyncLogger, c *gin.Context, actionType, message string, fields map[string]interface{}) {
	if sink == nil {
		return
	}
	sink.Log(auditEntry(c, model.LevelInfo, actionType, message, fields))
}

// AuditError records a failed domain action.
func AuditError(sink *AsyncLogger, c *gin.Context, actionType, message string, err error, fields map[string]interface{}) {
	if sink == nil {
		return
	}
	entry := auditEntry(c, model.LevelError, actionType, message, fields)
	if err != nil {
		entry.Error = err.Error()
	}
	sink.Log(entry)
}

func auditEntry(c *gin.Context, level, actionType, message string, fields map[string]interface{}) *model.LogEntry {
	entry := &model.LogEntry{
		Timestamp:  time.Now().UTC(),
		Level:      level,
		Message:    message,
		RequestID:  GetRequestID(c),
		Method:     c.Request.Method,
		Path:       c.Request.URL.Path,
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
		Subject:    GetSubject(c),
		ActionType: actionType,
	}
	if method := c.GetString(string(AuthMethodKey)); method != "" {
		entry.Set("auth_method", method)
	}
	return entry.Merge(fields)
}
