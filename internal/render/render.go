// Package render writes the configuration object consumed by the site
// generator, either as JSON or as a CommonJS module.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/stakater/developer-handbook/internal/config"
	"github.com/stakater/developer-handbook/internal/foundation/errors"
	"github.com/stakater/developer-handbook/internal/site"
)

// Header is written at the top of generated modules.
const Header = "// Code generated by handbook render. DO NOT EDIT.\n// Source: %s\n"

// JSON returns the indented JSON form of the generator configuration.
func JSON(s *site.SiteConfig) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return nil, errors.WrapError(err, errors.CategoryRender, "failed to encode site configuration").Build()
	}
	return buf.Bytes(), nil
}

// JS returns the configuration as `module.exports = {...}`. source names the
// file it was generated from.
func JS(s *site.SiteConfig, source string) ([]byte, error) {
	body, err := JSON(s)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	fmt.Fprintf(&buf, Header, source)
	buf.WriteString("module.exports = ")
	buf.Write(bytes.TrimRight(body, "\n"))
	buf.WriteString(";\n")
	return buf.Bytes(), nil
}

// Bytes renders s in the requested format.
func Bytes(s *site.SiteConfig, format config.OutputFormat, source string) ([]byte, error) {
	switch format {
	case config.OutputJSON:
		return JSON(s)
	case config.OutputJS, "":
		return JS(s, source)
	default:
		return nil, errors.RenderError("unsupported output format").WithContext("format", string(format)).Build()
	}
}

// WriteFile renders s and replaces path atomically.
func WriteFile(s *site.SiteConfig, format config.OutputFormat, source, path string) error {
	data, err := Bytes(s, format, source)
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to create output directory").
			WithContext("dir", dir).
			Build()
	}
	tmp, err := os.CreateTemp(dir, ".handbook-render-*")
	if err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to create temp file").Build()
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to write rendered config").Build()
	}
	if err := tmp.Close(); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to write rendered config").Build()
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to set permissions").Build()
	}
	if err := os.Rename(tmpName, path); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to replace rendered config").
			WithContext("path", path).
			Build()
	}
	return nil
}
