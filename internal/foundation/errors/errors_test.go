package errors

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifiedError(t *testing.T) {
	t.Run("builder fields", func(t *testing.T) {
		err := NewError(CategoryConfig, "invalid configuration").
			Fatal().
			WithContext("file", "handbook.yaml").
			Build()

		assert.Equal(t, CategoryConfig, err.Category())
		assert.Equal(t, SeverityFatal, err.Severity())
		assert.Equal(t, "invalid configuration", err.Message())
		assert.True(t, err.IsFatal())

		file, ok := err.Context().GetString("file")
		require.True(t, ok)
		assert.Equal(t, "handbook.yaml", file)
	})

	t.Run("wrapping keeps the chain", func(t *testing.T) {
		cause := stderrors.New("disk full")
		err := WrapError(cause, CategoryFileSystem, "write output").Build()
		wrapped := fmt.Errorf("render: %w", err)

		assert.ErrorIs(t, wrapped, cause)
		assert.True(t, HasCategory(wrapped, CategoryFileSystem))
		assert.Equal(t, CategoryFileSystem, GetCategory(wrapped))
		assert.Equal(t, "[filesystem] write output: disk full", err.Error())
	})

	t.Run("unclassified falls back to internal", func(t *testing.T) {
		assert.Equal(t, CategoryInternal, GetCategory(stderrors.New("boom")))
		assert.False(t, HasCategory(nil, CategoryConfig))
	})

	t.Run("Is compares category and message", func(t *testing.T) {
		a := ValidationError("sidebar invalid").Build()
		b := ValidationError("sidebar invalid").WithContext("x", 1).Build()
		assert.ErrorIs(t, a, b)
		assert.NotErrorIs(t, a, ConfigError("sidebar invalid").Build())
	})
}

func TestErrorContextMerge(t *testing.T) {
	a := ErrorContext{"a": 1, "b": 1}
	merged := a.Merge(ErrorContext{"b": 2})
	assert.Equal(t, ErrorContext{"a": 1, "b": 2}, merged)
	assert.Equal(t, 1, a["b"])

	var nilCtx ErrorContext
	assert.Equal(t, ErrorContext{"k": "v"}, nilCtx.Set("k", "v"))
}

func TestCLIErrorAdapterExitCodes(t *testing.T) {
	a := NewCLIErrorAdapter(false, slog.New(slog.NewTextHandler(io.Discard, nil)))

	cases := map[string]struct {
		err  error
		code int
	}{
		"nil":        {nil, 0},
		"plain":      {stderrors.New("x"), 1},
		"validation": {ValidationError("bad").Build(), 2},
		"not found":  {NotFoundError("missing").Build(), 3},
		"config":     {ConfigError("bad").Build(), 7},
		"git":        {GitError("no repo").Build(), 8},
		"filesystem": {FileSystemError("io").Build(), 11},
		"render":     {RenderError("io").Build(), 11},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.code, a.ExitCodeFor(tc.err))
		})
	}
}

func TestCLIErrorAdapterHandleError(t *testing.T) {
	var logs, out bytes.Buffer
	a := NewCLIErrorAdapter(false, slog.New(slog.NewTextHandler(&logs, nil)))
	a.out = &out
	code := -1
	a.exit = func(c int) { code = c }

	a.HandleError(WrapError(stderrors.New("permission denied"), CategoryConfig, "read config").
		WithContext("path", "handbook.yaml").Build())

	assert.Equal(t, 7, code)
	assert.Equal(t, "Error: read config (use -v for details)\n", out.String())
	assert.Contains(t, logs.String(), "category=config")
	assert.Contains(t, logs.String(), "path=handbook.yaml")

	a.verbose = true
	out.Reset()
	a.HandleError(ConfigError("no sidebar").Build())
	assert.Equal(t, "Error: [config] no sidebar\n", out.String())
}
