package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eatingFeature = `Feature: Eating cucumbers

  Scenario: Eat 5 out of 12
    Given there are 12 cucumbers
    When I eat 5 cucumbers
    Then I should have 7 cucumbers

  Scenario Outline: Eat <start> cucumbers
    Given there are <start> cucumbers

    Examples:
      | start |
      | 12    |
      | 20    |
`

const eatingResults = `[
  {
    "name": "Eating cucumbers",
    "elements": [
      {"name": "Eat 5 out of 12", "type": "scenario", "steps": [{"result": {"status": "passed"}}]},
      {"name": "Eat 12 cucumbers", "type": "scenario", "steps": [{"result": {"status": "passed"}}]},
      {"name": "Eat 20 cucumbers", "type": "scenario", "steps": [{"result": {"status": "failed"}}]}
    ]
  }
]`

// project is a temporary directory holding a config file and feature files.
type project struct {
	t      *testing.T
	dir    string
	config string
}

func newProject(t *testing.T, cfg string) *project {
	t.Helper()
	p := &project{t: t, dir: t.TempDir()}
	p.config = p.write("config.yaml", cfg)
	return p
}

func (p *project) write(name, content string) string {
	p.t.Helper()
	path := filepath.Join(p.dir, name)
	require.NoError(p.t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(p.t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func (p *project) path(name string) string {
	return filepath.Join(p.dir, name)
}

// run executes the CLI with --config pointing at the project config.
func (p *project) run(args ...string) (stdout, stderr string, code int) {
	var out, errOut bytes.Buffer
	args = append([]string{"--config", p.config}, args...)
	code = Run(context.Background(), args, &out, &errOut)
	return out.String(), errOut.String(), code
}

func TestGenerate(t *testing.T) {
	p := newProject(t, "title: Cucumber Specs\n")
	p.write("features/eating.feature", eatingFeature)
	output := p.path("out/docs.html")

	stdout, stderr, code := p.run("generate", "--features", p.path("features"), "--output", output)
	require.Equal(t, ExitSuccess, code, stderr)

	doc, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(doc), "<title>Cucumber Specs</title>")
	assert.Contains(t, string(doc), "Eat 5 out of 12")
	assert.Contains(t, string(doc), `class="examples"`)

	assert.Contains(t, stdout, "Living documentation generated: "+output)
	assert.Contains(t, stdout, "Eating cucumbers")
}

func TestGenerate_WithCucumberResults(t *testing.T) {
	p := newProject(t, "results:\n  format: cucumber\n")
	p.write("features/eating.feature", eatingFeature)
	results := p.write("report.json", eatingResults)
	output := p.path("docs.html")

	stdout, stderr, code := p.run("-f", "json", "generate",
		"--features", p.path("features"),
		"--output", output,
		"--results", results,
	)
	require.Equal(t, ExitSuccess, code, stderr)

	var summary struct {
		Results string `json:"results_format"`
		Totals  struct {
			Passed       int `json:"passed"`
			Failed       int `json:"failed"`
			Inconclusive int `json:"inconclusive"`
		} `json:"totals"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &summary), stdout)
	assert.Equal(t, 1, summary.Totals.Passed)
	assert.Equal(t, 1, summary.Totals.Failed)

	doc, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(doc), `class="result passed"`)
	assert.Contains(t, string(doc), `class="result failed"`)
}

func TestGenerate_SkipsUnparsableFiles(t *testing.T) {
	p := newProject(t, "")
	p.write("features/eating.feature", eatingFeature)
	p.write("features/broken.feature", "Feature: broken\n  Scenario: x\n    Given a\n  Nonsense here\n")

	_, stderr, code := p.run("generate", "--features", p.path("features"), "--output", p.path("docs.html"))
	require.Equal(t, ExitSuccess, code, stderr)
	assert.Contains(t, stderr, "skipping feature file")
}

func TestGenerate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		files   map[string]string
		args    []string
		code    int
		message string
	}{
		{
			name:    "missing features directory",
			args:    []string{"--features", "missing"},
			code:    ExitNotFound,
			message: "not found",
		},
		{
			name:    "no feature files",
			files:   map[string]string{"features/README.md": "nothing"},
			args:    []string{"--features", "features"},
			code:    ExitNotFound,
			message: "no .feature files",
		},
		{
			name:    "unknown results format",
			files:   map[string]string{"features/eating.feature": eatingFeature},
			args:    []string{"--features", "features", "--results-format", "junit"},
			code:    ExitConfigError,
			message: "unknown results format",
		},
		{
			name:    "missing results file",
			files:   map[string]string{"features/eating.feature": eatingFeature},
			args:    []string{"--features", "features", "--results-format", "nunit3", "--results", "missing.xml"},
			code:    ExitError,
			message: "failed to load test results",
		},
		{
			name:    "none provider rejects files",
			files:   map[string]string{"features/eating.feature": eatingFeature},
			args:    []string{"--features", "features", "--results", "TestResult.xml"},
			code:    ExitError,
			message: "does not read result files",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newProject(t, "")
			for name, content := range tt.files {
				p.write(name, content)
			}
			args := []string{"generate", "--output", p.path("docs.html")}
			for _, a := range tt.args {
				if a == "features" || a == "missing" || strings.HasSuffix(a, ".xml") {
					a = p.path(a)
				}
				args = append(args, a)
			}

			_, stderr, code := p.run(args...)
			assert.Equal(t, tt.code, code)
			assert.Contains(t, stderr, tt.message)
		})
	}
}

func TestGenerate_JSONError(t *testing.T) {
	p := newProject(t, "")

	_, stderr, code := p.run("-f", "json", "generate", "--features", p.path("missing"))
	assert.Equal(t, ExitNotFound, code)

	var payload struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal([]byte(stderr), &payload), stderr)
	assert.Equal(t, "NOT_FOUND", payload.Error.Code)
}

func TestConfigErrors(t *testing.T) {
	p := newProject(t, "results:\n  format: junit\n")

	_, stderr, code := p.run("version")
	assert.Equal(t, ExitConfigError, code)
	assert.Contains(t, stderr, "failed to load configuration")

	_, _, code = newProject(t, "").run("-f", "yaml", "version")
	assert.Equal(t, ExitConfigError, code)
}

func TestSignature(t *testing.T) {
	p := newProject(t, "")

	stdout, stderr, code := p.run("-f", "plain", "signature", "Pay the Bill", "$100", `C:\temp`)
	require.Equal(t, ExitSuccess, code, stderr)
	assert.Equal(t, `paythebill\("\$100","c:temp"`+"\n", stdout)
}

func TestSignature_RequiresName(t *testing.T) {
	_, _, code := newProject(t, "").run("signature")
	assert.Equal(t, ExitError, code)
}

func TestConfigShow(t *testing.T) {
	p := newProject(t, "title: Cucumber Specs\n")

	stdout, stderr, code := p.run("config", "show")
	require.Equal(t, ExitSuccess, code, stderr)
	assert.Contains(t, stdout, "# "+p.config)
	assert.Contains(t, stdout, "title: Cucumber Specs")
	assert.Contains(t, stdout, "format: none")
}

func TestConfigShow_WithoutConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	var out, errOut bytes.Buffer
	code := Run(context.Background(), []string{"config", "show"}, &out, &errOut)
	require.Equal(t, ExitSuccess, code, errOut.String())

	want := filepath.Join(home, ".config", "livingdoc", "config.yaml")
	assert.Contains(t, out.String(), "# no config file found, using defaults (create "+want)
	assert.Contains(t, out.String(), "format: none")
}

func TestConfigErrors_ListsValidFormats(t *testing.T) {
	_, stderr, code := newProject(t, "").run("-f", "yaml", "version")
	assert.Equal(t, ExitConfigError, code)
	assert.Contains(t, stderr, `invalid output format "yaml" (valid: table, json, plain)`)
}

func TestVersion(t *testing.T) {
	p := newProject(t, "")

	stdout, _, code := p.run("version")
	require.Equal(t, ExitSuccess, code)
	assert.Equal(t, "livingdoc version "+Version+"\n", stdout)

	stdout, _, _ = p.run("-v", "version")
	assert.Contains(t, stdout, "git commit: "+GitCommit)
}

func TestInit(t *testing.T) {
	dir := t.TempDir()
	var out, errOut bytes.Buffer

	code := Run(context.Background(), []string{"init", "--dir", dir, "--results-format", "nunit3"}, &out, &errOut)
	require.Equal(t, ExitSuccess, code, errOut.String())

	cfg, err := os.ReadFile(filepath.Join(dir, ".livingdoc", "config.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(cfg), "format: nunit3")
	assert.FileExists(t, filepath.Join(dir, "features", "livingdoc.feature"))

	code = Run(context.Background(), []string{"init", "--dir", dir}, &out, &errOut)
	assert.Equal(t, ExitError, code)
	assert.Contains(t, errOut.String(), "already exists")

	code = Run(context.Background(), []string{"init", "--dir", dir, "--force"}, &out, &errOut)
	assert.Equal(t, ExitSuccess, code)
}

func TestInit_GeneratedConfigLoads(t *testing.T) {
	dir := t.TempDir()
	var out, errOut bytes.Buffer
	require.Equal(t, ExitSuccess, Run(context.Background(), []string{"init", "--dir", dir}, &out, &errOut))

	cfgPath := filepath.Join(dir, ".livingdoc", "config.yaml")
	out.Reset()
	code := Run(context.Background(), []string{"--config", cfgPath, "generate",
		"--features", filepath.Join(dir, "features"),
		"--output", filepath.Join(dir, "docs.html"),
	}, &out, &errOut)
	require.Equal(t, ExitSuccess, code, errOut.String())
	assert.FileExists(t, filepath.Join(dir, "docs.html"))
}
