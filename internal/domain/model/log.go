package model

import "time"

// LogEntry is a request or audit log record persisted asynchronously.
type LogEntry struct {
	Timestamp  time.Time              `json:"timestamp" bson:"timestamp"`
	Level      string                 `json:"level" bson:"level"`
	Message    string                 `json:"message" bson:"message"`
	RequestID  string                 `json:"request_id,omitempty" bson:"request_id,omitempty"`
	SessionID  string                 `json:"session_id,omitempty" bson:"session_id,omitempty"`
	Method     string                 `json:"method,omitempty" bson:"method,omitempty"`
	Path       string                 `json:"path,omitempty" bson:"path,omitempty"`
	StatusCode int                    `json:"status_code,omitempty" bson:"status_code,omitempty"`
	DurationMs float64                `json:"duration_ms,omitempty" bson:"duration_ms,omitempty"`
	ClientIP   string                 `json:"client_ip,omitempty" bson:"client_ip,omitempty"`
	UserAgent  string                 `json:"user_agent,omitempty" bson:"user_agent,omitempty"`
	ActionType string                 `json:"action_type,omitempty" bson:"action_type,omitempty"`
	Fields     map[string]interface{} `json:"fields,omitempty" bson:"fields,omitempty"`
}
