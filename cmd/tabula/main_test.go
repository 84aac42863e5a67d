package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/apache/arrow-go/v18/arrow/ipc"
	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajitpratap0/tabula/pkg/config"
	"github.com/ajitpratap0/tabula/pkg/errors"
	"github.com/ajitpratap0/tabula/pkg/testutil"
)

// execute runs the CLI with args and returns what it printed
func execute(t *testing.T, a *app, args ...string) (string, error) {
	t.Helper()

	root := newRootCommand(a)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(append(args, "--log-level", "error"))

	err := root.Execute()
	return out.String(), err
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return execute(t, newApp(), args...)
}

func scoresDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "scores.csv", []byte(testutil.ScoresCSV))
	return dir
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "Tabula v"+version)
	assert.Contains(t, out, "Go version:")
}

func TestColumns(t *testing.T) {
	dir := scoresDir(t)

	out, err := run(t, "columns", "--dir", dir, "--file", "scores.csv")
	require.NoError(t, err)
	assert.Equal(t, "id\nname\nscore\n", out)

	out, err = run(t, "columns", "--dir", dir, "--file", "scores.csv", "--format", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `["id","name","score"]`, out)

	_, err = run(t, "columns", "--dir", dir, "--file", "scores.csv", "--format", "arrow")
	assert.True(t, errors.IsType(err, errors.ErrorTypeValidation))
}

func TestDescribeJSON(t *testing.T) {
	dir := scoresDir(t)

	out, err := run(t, "describe", "--dir", dir, "--file", "scores.csv", "--format", "json", "--orient", "columns")
	require.NoError(t, err)

	var got map[string][]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &got))

	assert.Len(t, got, 3)
	assert.Equal(t,
		[]interface{}{"count", "mean", "std", "min", "25%", "50%", "75%", "max"},
		got["statistic"])
	assert.Equal(t,
		[]interface{}{3.0, 2.0, 1.0, 1.0, 1.5, 2.0, 2.5, 3.0},
		got["id"])
	require.Len(t, got["score"], 8)
	assert.Equal(t, 2.0, got["score"][0])
	assert.NotContains(t, got, "name")
}

func TestDescribeText(t *testing.T) {
	out, err := run(t, "describe", "--dir", scoresDir(t), "--file", "scores.csv")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 9)
	assert.Contains(t, lines[0], "statistic")
	assert.Contains(t, lines[1], "count")
	assert.Contains(t, lines[8], "max")
}

func TestPartition(t *testing.T) {
	dir := scoresDir(t)
	base := []string{"partition", "--dir", dir, "--file", "scores.csv", "--format", "json", "--orient", "columns"}

	keys := func(out string) []string {
		var got map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		names := make([]string, 0, len(got))
		for k := range got {
			names = append(names, k)
		}
		return names
	}

	out, err := run(t, base...)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"id", "score"}, keys(out))

	out, err = run(t, append(base, "--categorical")...)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"name"}, keys(out))

	out, err = run(t, append(base, "--both")...)
	require.NoError(t, err)
	assert.JSONEq(t, `{"categorical":["name"],"numeric":["id","score"]}`, out)

	out, err = run(t, "partition", "--dir", dir, "--file", "scores.csv", "--both")
	require.NoError(t, err)
	assert.Equal(t, "categorical:\n  name\nnumeric:\n  id\n  score\n", out)

	_, err = run(t, append(base, "--both", "--numeric")...)
	assert.Error(t, err)
}

func TestExtractLimit(t *testing.T) {
	out, err := run(t, "extract", "--dir", scoresDir(t), "--file", "scores.csv", "--format", "json", "--limit", "1")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":1,"name":"Alice","score":88.5}]`, out)
}

func TestExportArrow(t *testing.T) {
	dir := scoresDir(t)
	path := filepath.Join(t.TempDir(), "scores.arrow")

	out, err := run(t, "export", "--dir", dir, "--file", "scores.csv", "--format", "arrow", "--output", path)
	require.NoError(t, err)
	assert.Empty(t, out)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	r, err := ipc.NewFileReader(f)
	require.NoError(t, err)
	defer r.Close()

	rec, err := r.Record(0)
	require.NoError(t, err)
	assert.Equal(t, int64(3), rec.NumRows())
	assert.Equal(t, "score", rec.ColumnName(2))
}

func TestExportValidation(t *testing.T) {
	dir := scoresDir(t)

	_, err := run(t, "export", "--dir", dir, "--file", "scores.csv", "--format", "json")
	assert.True(t, errors.IsType(err, errors.ErrorTypeValidation))

	_, err = run(t, "export", "--dir", dir, "--file", "scores.csv", "--output", filepath.Join(dir, "out.txt"))
	assert.True(t, errors.IsType(err, errors.ErrorTypeValidation))
}

func TestConstructionErrors(t *testing.T) {
	dir := scoresDir(t)

	tests := []struct {
		name    string
		args    []string
		errType errors.ErrorType
	}{
		{
			name:    "no file",
			args:    []string{"columns", "--dir", dir},
			errType: errors.ErrorTypeConfig,
		},
		{
			name:    "missing directory",
			args:    []string{"columns", "--dir", filepath.Join(dir, "nope"), "--file", "scores.csv"},
			errType: errors.ErrorTypeInvalidDirectory,
		},
		{
			name:    "wrong extension",
			args:    []string{"columns", "--dir", dir, "--file", "scores.json"},
			errType: errors.ErrorTypeInvalidFileExtension,
		},
		{
			name:    "missing file",
			args:    []string{"columns", "--dir", dir, "--file", "absent.csv"},
			errType: errors.ErrorTypeFileRead,
		},
		{
			name:    "unknown format",
			args:    []string{"columns", "--dir", dir, "--file", "scores.csv", "--format", "xml"},
			errType: errors.ErrorTypeConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.errType, errors.TypeOf(err))
		})
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "semi.csv", []byte("a;b\n1;x\n"))

	t.Setenv("TABULA_DIR", dir)
	t.Setenv("TABULA_FILE", "semi.csv")
	t.Setenv("TABULA_DELIMITER", ";")

	out, err := run(t, "columns")
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n", out)
}

func TestConfigFile(t *testing.T) {
	dir := scoresDir(t)
	cfgPath := testutil.WriteFile(t, t.TempDir(), "tabula.yaml", []byte(
		"dataset:\n"+
			"  dir: "+dir+"\n"+
			"  file: scores.csv\n"+
			"output:\n"+
			"  format: json\n"))

	out, err := run(t, "columns", "--config", cfgPath)
	require.NoError(t, err)
	assert.JSONEq(t, `["id","name","score"]`, out)

	// flags win over the file
	out, err = run(t, "columns", "--config", cfgPath, "--format", "text")
	require.NoError(t, err)
	assert.Equal(t, "id\nname\nscore\n", out)
}

func TestMetricsFile(t *testing.T) {
	dir := scoresDir(t)
	path := filepath.Join(t.TempDir(), "tabula.prom")

	a := newApp()
	_, err := execute(t, a, "columns", "--dir", dir, "--file", "scores.csv", "--metrics-file", path)
	require.NoError(t, err)
	require.NoError(t, a.writeMetrics())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `tabula_dataset_loads_total{result="success"} 1`)
	assert.Contains(t, string(data), "tabula_dataset_rows_loaded_total 3")
}

func TestConfigCommand(t *testing.T) {
	dir := scoresDir(t)
	path := filepath.Join(t.TempDir(), "tabula.yaml")

	_, err := run(t, "config", "--dir", dir, "--file", "scores.csv", "--delimiter", ";", "--output", path)
	require.NoError(t, err)

	cfg, err := config.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.Dataset.Dir)
	assert.Equal(t, "scores.csv", cfg.Dataset.File)
	assert.Equal(t, ";", cfg.Dataset.Delimiter)
	assert.Empty(t, cfg.Output.Path)

	_, err = run(t, "config", "--dir", dir)
	assert.True(t, errors.IsType(err, errors.ErrorTypeValidation))
}
