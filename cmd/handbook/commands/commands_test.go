package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	foundationerrors "github.com/stakater/developer-handbook/internal/foundation/errors"
	"github.com/stakater/developer-handbook/internal/lint"
	"github.com/stakater/developer-handbook/internal/metrics"
	"github.com/stakater/developer-handbook/internal/navdiff"
)

const handbookYAML = `site:
  title: Developer Handbook
  themeConfig:
    sidebar:
      - /
      - title: API
        children: [/api/naming, /api/resources]
content:
  dir: docs
`

func setup(t *testing.T, configYAML string) (*CLI, string) {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"handbook.yaml":         configYAML,
		"docs/README.md":        "# Home\n",
		"docs/api/naming.md":    "---\ntitle: Naming Conventions\n---\nBody\n",
		"docs/api/resources.md": "# Resources\n",
	}
	for name, body := range files {
		p := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	}
	return &CLI{Config: filepath.Join(dir, "handbook.yaml")}, dir
}

func exitCode(t *testing.T, err error) int {
	t.Helper()
	var exit *ExitError
	require.True(t, errors.As(err, &exit), "expected ExitError, got %v", err)
	return exit.Code
}

func TestValidateClean(t *testing.T) {
	root, _ := setup(t, handbookYAML)
	var out bytes.Buffer
	require.NoError(t, (&ValidateCmd{Format: "text"}).Run(&Global{Out: &out}, root))
	assert.Contains(t, out.String(), "Checking sidebar in: "+root.Config)
	assert.Contains(t, out.String(), "3 pages in 1 section")
}

func TestValidateReportsDanglingPath(t *testing.T) {
	root, _ := setup(t, strings.Replace(handbookYAML, "/api/resources]", "/api/resources, /api/missing]", 1))
	var out bytes.Buffer
	err := (&ValidateCmd{Format: "json"}).Run(&Global{Out: &out}, root)
	assert.Equal(t, 2, exitCode(t, err))

	var decoded lint.JSONOutput
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	require.Len(t, decoded.Issues, 1)
	assert.Equal(t, lint.RuleDanglingPath, decoded.Issues[0].Rule)

	out.Reset()
	require.NoError(t, (&ValidateCmd{Format: "text", NoContent: true}).Run(&Global{Out: &out}, root))
}

func TestValidateMissingConfig(t *testing.T) {
	root := &CLI{Config: filepath.Join(t.TempDir(), "handbook.yaml")}
	err := (&ValidateCmd{Format: "text"}).Run(&Global{Out: &bytes.Buffer{}}, root)
	require.Error(t, err)
	assert.True(t, foundationerrors.HasCategory(err, foundationerrors.CategoryConfig))
}

func TestRenderWritesModule(t *testing.T) {
	root, dir := setup(t, handbookYAML)
	var out bytes.Buffer
	require.NoError(t, (&RenderCmd{}).Run(&Global{Out: &out}, root))

	path := filepath.Join(dir, ".vuepress", "config.js")
	assert.Equal(t, "Wrote "+path+"\n", out.String())
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "module.exports = {")
	assert.Contains(t, string(data), `"/api/naming"`)
}

func TestRenderStdoutJSON(t *testing.T) {
	root, _ := setup(t, handbookYAML)
	var out bytes.Buffer
	require.NoError(t, (&RenderCmd{Stdout: true, Format: "json"}).Run(&Global{Out: &out}, root))

	var decoded struct {
		ThemeConfig struct {
			Sidebar []json.RawMessage `json:"sidebar"`
		} `json:"themeConfig"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	require.Len(t, decoded.ThemeConfig.Sidebar, 2)
	assert.JSONEq(t, `{"title":"API","children":["/api/naming","/api/resources"]}`, string(decoded.ThemeConfig.Sidebar[1]))
}

func TestRenderRefusesInvalidSidebar(t *testing.T) {
	root, dir := setup(t, strings.Replace(handbookYAML, "[/api/naming, /api/resources]", "[/api/naming, /api/naming]", 1))
	target := filepath.Join(dir, "out.js")

	err := (&RenderCmd{Output: target}).Run(&Global{Out: &bytes.Buffer{}}, root)
	require.Error(t, err)
	assert.True(t, foundationerrors.HasCategory(err, foundationerrors.CategoryValidation))
	assert.NoFileExists(t, target)

	require.NoError(t, (&RenderCmd{Output: target, Force: true}).Run(&Global{Out: &bytes.Buffer{}}, root))
	assert.FileExists(t, target)
}

func TestRenderRejectsUnknownFormat(t *testing.T) {
	root, _ := setup(t, handbookYAML)
	err := (&RenderCmd{Format: "xml", Stdout: true}).Run(&Global{Out: &bytes.Buffer{}}, root)
	require.Error(t, err)
	assert.True(t, foundationerrors.HasCategory(err, foundationerrors.CategoryConfig))
}

func TestTree(t *testing.T) {
	cfg := strings.Replace(handbookYAML, "      - /\n", "      - /\n      - /guide\n", 1)
	cfg = strings.Replace(cfg, "  themeConfig:\n", "  themeConfig:\n    repo: stakater/developer-handbook\n    docsDir: docs\n", 1)
	root, _ := setup(t, cfg)

	var out bytes.Buffer
	require.NoError(t, (&TreeCmd{EditLinks: true}).Run(&Global{Out: &out}, root))
	assert.Equal(t, strings.Join([]string{
		"Developer Handbook",
		"  - Home  /",
		"      https://github.com/stakater/developer-handbook/edit/master/docs/README.md",
		"  - /guide  (missing)",
		"  ▸ API",
		"    - Naming Conventions  /api/naming",
		"        https://github.com/stakater/developer-handbook/edit/master/docs/api/naming.md",
		"    - Resources  /api/resources",
		"        https://github.com/stakater/developer-handbook/edit/master/docs/api/resources.md",
		"",
	}, "\n"), out.String())
}

func TestDiff(t *testing.T) {
	root, dir := setup(t, handbookYAML)
	next := filepath.Join(dir, "next.yaml")
	require.NoError(t, os.WriteFile(next,
		[]byte(strings.Replace(handbookYAML, "[/api/naming, /api/resources]", "[/api/resources, /api/naming, /api/versioning]", 1)), 0o600))

	var out bytes.Buffer
	require.NoError(t, (&DiffCmd{Old: root.Config, New: next, Format: "text"}).Run(&Global{Out: &out}))
	assert.Equal(t, "^ /api/naming (API): position 1 -> 2\n+ /api/versioning (API)\n", out.String())

	out.Reset()
	err := (&DiffCmd{Old: root.Config, New: next, Format: "json", ExitCode: true}).Run(&Global{Out: &out})
	assert.Equal(t, 1, exitCode(t, err))
	var decoded navdiff.Diff
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.Len(t, decoded.Changes, 4)

	require.NoError(t, (&DiffCmd{Old: root.Config, New: root.Config, ExitCode: true}).Run(&Global{Out: &bytes.Buffer{}}))
}

func TestInit(t *testing.T) {
	root := &CLI{Config: filepath.Join(t.TempDir(), "handbook.yaml")}
	var out bytes.Buffer
	require.NoError(t, (&InitCmd{Repo: "stakater/developer-handbook"}).Run(&Global{Out: &out}, root))
	assert.Contains(t, out.String(), "Edit links point at stakater/developer-handbook")
	assert.Contains(t, out.String(), "Initialized successfully")

	cfg, err := root.loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "stakater/developer-handbook", cfg.Site.ThemeConfig.Repo)

	err = (&InitCmd{}).Run(&Global{Out: &bytes.Buffer{}}, root)
	require.Error(t, err)
	require.NoError(t, (&InitCmd{Force: true}).Run(&Global{Out: &bytes.Buffer{}}, root))
}

func TestCheckerRecordsMetricsAndRenders(t *testing.T) {
	root, dir := setup(t, handbookYAML)
	reg := prom.NewRegistry()
	c := &checker{root: root, render: true, recorder: metrics.NewPrometheusRecorder(reg)}

	require.NoError(t, c.run(context.Background(), "run-1"))
	assert.FileExists(t, filepath.Join(dir, ".vuepress", "config.js"))

	families, err := reg.Gather()
	require.NoError(t, err)
	found := map[string]bool{}
	for _, mf := range families {
		found[mf.GetName()] = true
	}
	assert.True(t, found["handbook_validation_runs_total"])
	assert.True(t, found["handbook_sidebar_pages"])
	assert.True(t, found["handbook_render_results_total"])

	require.NoError(t, os.Remove(root.Config))
	require.Error(t, c.run(context.Background(), "run-2"))
}

func TestParserWiring(t *testing.T) {
	root, _ := setup(t, handbookYAML)
	cli := &CLI{}
	parser, err := NewParser(cli)
	require.NoError(t, err)

	ctx, err := parser.Parse([]string{"-c", root.Config, "validate", "--format", "json"})
	require.NoError(t, err)
	assert.Equal(t, "validate", ctx.Command())

	var out bytes.Buffer
	require.NoError(t, ctx.Run(&Global{Out: &out}))
	assert.True(t, json.Valid(out.Bytes()))
}

func TestValidateReportsOmittedSiteTitle(t *testing.T) {
	root, _ := setup(t, strings.Replace(handbookYAML, "  title: Developer Handbook\n", "", 1))
	var out bytes.Buffer
	err := (&ValidateCmd{Format: "json", NoContent: true}).Run(&Global{Out: &out}, root)
	assert.Equal(t, 2, exitCode(t, err))

	var decoded lint.JSONOutput
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	require.Len(t, decoded.Issues, 1)
	assert.Equal(t, lint.RuleSiteTitle, decoded.Issues[0].Rule)
}
