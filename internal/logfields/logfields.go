package logfields

import "log/slog"

// Canonical log field names shared by all packages.
const (
	KeyConfig     = "config"
	KeyContentDir = "content_dir"
	KeyPath       = "path"
	KeyRule       = "rule"
	KeyRunID      = "run_id"
	KeyDurationMS = "duration_ms"
	KeyErrors     = "errors"
	KeyWarnings   = "warnings"
	KeyPages      = "pages"
	KeyOutput     = "output"
	KeyError      = "error"
)

func Config(path string) slog.Attr    { return slog.String(KeyConfig, path) }
func ContentDir(dir string) slog.Attr { return slog.String(KeyContentDir, dir) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func Rule(r string) slog.Attr         { return slog.String(KeyRule, r) }
func RunID(id string) slog.Attr       { return slog.String(KeyRunID, id) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Errors(n int) slog.Attr          { return slog.Int(KeyErrors, n) }
func Warnings(n int) slog.Attr        { return slog.Int(KeyWarnings, n) }
func Pages(n int) slog.Attr           { return slog.Int(KeyPages, n) }
func Output(path string) slog.Attr    { return slog.String(KeyOutput, path) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
