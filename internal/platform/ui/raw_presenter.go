// internal/platform/ui/raw_presenter.go
package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"modelfetch/internal/core/domain"
	"modelfetch/internal/core/ports"
	"modelfetch/internal/platform/fsutil"
)

// LogFormat define el formato de salida para el modo raw
type LogFormat string

const (
	LogFormatText LogFormat = "text" // Formato logfmt (default)
	LogFormatJSON LogFormat = "json" // Formato JSON estructurado
)

// RawPresenter implementa el Presenter para modo raw (un evento por línea, sin formato visual)
type RawPresenter struct {
	format LogFormat
	out    io.Writer
	mu     sync.Mutex

	// now se sustituye en tests
	now func() time.Time
}

// NewRawPresenter crea un nuevo RawPresenter que escribe en stdout
func NewRawPresenter(format LogFormat) *RawPresenter {
	return newRawPresenter(os.Stdout, format)
}

func newRawPresenter(out io.Writer, format LogFormat) *RawPresenter {
	return &RawPresenter{
		format: format,
		out:    out,
		now:    time.Now,
	}
}

// log escribe un evento en el formato configurado
func (r *RawPresenter) log(level, message string, fields map[string]interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()

	timestamp := r.now().UTC().Format(time.RFC3339)

	if r.format == LogFormatJSON {
		r.logJSON(timestamp, level, message, fields)
	} else {
		r.logText(timestamp, level, message, fields)
	}
}

// logText escribe en formato logfmt: timestamp LEVEL message key=value key2=value2
func (r *RawPresenter) logText(timestamp, level, message string, fields map[string]interface{}) {
	parts := []string{timestamp, fmt.Sprintf("%-5s", level), message}

	// Claves ordenadas para que la salida sea estable
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%s", k, r.formatValue(fields[k])))
	}

	fmt.Fprintln(r.out, strings.Join(parts, " "))
}

// logJSON escribe en formato JSON estructurado
func (r *RawPresenter) logJSON(timestamp, level, message string, fields map[string]interface{}) {
	logEntry := map[string]interface{}{
		"timestamp": timestamp,
		"level":     level,
		"message":   message,
	}

	if len(fields) > 0 {
		data := make(map[string]interface{}, len(fields))
		for k, v := range fields {
			switch val := v.(type) {
			case time.Duration:
				data[k] = val.String()
			case error:
				data[k] = val.Error()
			default:
				data[k] = val
			}
		}
		logEntry["data"] = data
	}

	jsonBytes, _ := json.Marshal(logEntry)
	fmt.Fprintln(r.out, string(jsonBytes))
}

// formatValue formatea valores para logfmt (entrecomilla strings con espacios)
func (r *RawPresenter) formatValue(v interface{}) string {
	switch val := v.(type) {
	case string:
		if strings.ContainsAny(val, " =\"") {
			return fmt.Sprintf("%q", val)
		}
		return val
	case []string:
		return r.formatValue(strings.Join(val, ","))
	case error:
		return r.formatValue(val.Error())
	case time.Duration:
		return val.String()
	case float64:
		return fmt.Sprintf("%.2f", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// RunStarted notifica el inicio de la ejecución
func (r *RawPresenter) RunStarted(plan ports.Plan) {
	r.log("INFO", "run_started", map[string]interface{}{
		"asset":      plan.Target.Name,
		"dest":       plan.Target.Dir,
		"strategies": plan.StrategyNames(),
		"optional":   plan.Optional,
	})
}

// PrerequisiteFailed notifica un prerequisito no cumplido
func (r *RawPresenter) PrerequisiteFailed(name string, err error) {
	r.log("ERROR", "prerequisite_failed", map[string]interface{}{
		"prerequisite": name,
		"category":     string(domain.Classify(err)),
		"error":        err,
	})
}

// AttemptStarted notifica el inicio de un intento
func (r *RawPresenter) AttemptStarted(index, total int, strategy string) {
	r.log("INFO", "attempt_started", map[string]interface{}{
		"attempt":  index,
		"total":    total,
		"strategy": strategy,
	})
}

// AttemptFinished notifica el resultado de un intento
func (r *RawPresenter) AttemptFinished(index, total int, attempt domain.Attempt) {
	fields := map[string]interface{}{
		"attempt":  index,
		"total":    total,
		"strategy": attempt.Strategy,
		"duration": attempt.Duration,
		"status":   FromOutcome(attempt.Outcome).String(),
	}

	level := "INFO"
	if attempt.Outcome.Succeeded() {
		if d := attempt.Outcome.Detail(); d != "" {
			fields["detail"] = d
		}
	} else {
		level = "WARN"
		fields["category"] = string(attempt.Outcome.Category())
		fields["reason"] = attempt.Outcome.Reason()
	}

	r.log(level, "attempt_finished", fields)
}

// RunFinished notifica el estado final, con la remediación si hubo fallo
func (r *RawPresenter) RunFinished(report domain.Report) {
	if !report.Succeeded() {
		for _, g := range report.Guidance {
			fields := map[string]interface{}{
				"strategy":  g.Strategy,
				"category":  string(g.Category),
				"reason":    g.Reason,
				"solutions": g.Solutions,
			}
			if g.DocsURL != "" {
				fields["docs"] = g.DocsURL
			}
			r.log("WARN", "remediation", fields)
		}
		for _, note := range report.Notes {
			r.log("INFO", "note", map[string]interface{}{"text": note})
		}
	}

	fields := map[string]interface{}{
		"asset":     report.Target.Name,
		"status":    string(report.Status),
		"attempts":  len(report.Attempts),
		"duration":  report.Duration,
		"exit_code": report.ExitCode(),
	}
	if report.Winner != "" {
		fields["winner"] = report.Winner
	}
	if report.Fatal != nil {
		fields["fatal"] = report.Fatal
	}

	level := "INFO"
	switch report.Status {
	case domain.StatusFailed:
		level = "ERROR"
	case domain.StatusWarning:
		level = "WARN"
	}
	r.log(level, "run_finished", fields)
}

// Assets emite una línea por asset del catálogo
func (r *RawPresenter) Assets(source string, rows []AssetRow) {
	for _, row := range rows {
		r.log("INFO", "asset", map[string]interface{}{
			"catalog":    source,
			"name":       row.Name,
			"dir":        row.Dir,
			"strategies": row.Strategies,
			"optional":   row.Optional,
		})
	}
}

// Check emite el estado de completitud
func (r *RawPresenter) Check(result CheckResult) {
	r.log("INFO", "check", map[string]interface{}{
		"asset":    result.Asset,
		"dest":     result.Dir,
		"declared": result.Declared,
		"complete": result.Complete,
		"entries":  len(result.Entries),
	})
}

// Contents emite una línea por entrada del destino
func (r *RawPresenter) Contents(dir string, entries []fsutil.Entry) {
	for _, e := range entries {
		r.log("INFO", "content", map[string]interface{}{
			"dest":    dir,
			"name":    e.Name,
			"dir":     e.IsDir,
			"size_mb": e.SizeMB(),
		})
	}
}

// Info muestra un mensaje informativo
func (r *RawPresenter) Info(msg string) {
	r.log("INFO", msg, nil)
}

// Warning muestra una advertencia
func (r *RawPresenter) Warning(msg string) {
	r.log("WARN", msg, nil)
}

// Error muestra un error
func (r *RawPresenter) Error(msg string) {
	r.log("ERROR", msg, nil)
}

// Close limpia recursos
func (r *RawPresenter) Close() error {
	return nil
}
