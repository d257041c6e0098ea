package logger

import (
	"time"

	"github.com/kbukum/ergolog/timer"
)

// Record field names.
const (
	FieldLogger  = "logger"
	FieldTags    = "tags"
	FieldTraceID = "trace_id"
	FieldSpanID  = "span_id"
	FieldElapsed = "elapsed_s"
	FieldError   = "error"
)

// Fields builds a map[string]interface{} from alternating key-value pairs.
//
//	log.Info("done", logger.Fields("op", "save", "id", 42))
func Fields(kvs ...interface{}) map[string]interface{} {
	m := make(map[string]interface{}, len(kvs)/2)
	for i := 0; i < len(kvs)-1; i += 2 {
		if key, ok := kvs[i].(string); ok {
			m[key] = kvs[i+1]
		}
	}
	return m
}

// ErrorFields creates fields for a failed operation.
func ErrorFields(err error) map[string]interface{} {
	if err == nil {
		return nil
	}
	return map[string]interface{}{FieldError: err.Error()}
}

// ElapsedFields creates fields for a timed operation.
func ElapsedFields(d time.Duration) map[string]interface{} {
	return map[string]interface{}{FieldElapsed: timer.Format(d)}
}
