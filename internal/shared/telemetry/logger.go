// Package telemetry emits structured JSON log lines to stdout. One
// line per event, fields flattened next to ts/level/msg so log
// pipelines can index them without nested parsing.
package telemetry

import (
	"encoding/json"
	"os"
	"sync"
	"time"
)

var mu sync.Mutex

// Info logs an informational event.
func Info(msg string, fields map[string]any) { emit("info", msg, fields) }

// Warn logs a recoverable problem.
func Warn(msg string, fields map[string]any) { emit("warn", msg, fields) }

// Error logs a failure.
func Error(msg string, fields map[string]any) { emit("error", msg, fields) }

func emit(level, msg string, fields map[string]any) {
	line := make(map[string]any, len(fields)+3)
	for k, v := range fields {
		line[k] = v
	}
	line["ts"] = time.Now().UTC().Format(time.RFC3339Nano)
	line["level"] = level
	line["msg"] = msg

	data, err := json.Marshal(line)
	if err != nil {
		// Unmarshalable field value; log what we can.
		data, _ = json.Marshal(map[string]any{
			"ts":    time.Now().UTC().Format(time.RFC3339Nano),
			"level": "error",
			"msg":   "telemetry marshal failed",
			"event": msg,
			"err":   err.Error(),
		})
	}

	mu.Lock()
	defer mu.Unlock()
	os.Stdout.Write(append(data, '\n'))
}
