// Package testutil provides testing utilities for tabula
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

// ScoresCSV is a small fixture with an integer, a text and a float column.
// The last score is missing.
const ScoresCSV = "id,name,score\n1,Alice,88.5\n2,Bob,91.0\n3,Carol,\n"

// TestLogger creates a test logger that writes to the test output.
// The logger is automatically cleaned up when the test completes.
func TestLogger(t *testing.T) *zap.Logger {
	return zaptest.NewLogger(t)
}

// WriteFile writes content to dir/name and returns the full path
func WriteFile(t *testing.T, dir, name string, content []byte) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, content, 0o600))
	return path
}

// WriteCSV writes a header and rows as comma separated lines to dir/name
func WriteCSV(t *testing.T, dir, name string, header []string, rows [][]string) string {
	t.Helper()

	var b strings.Builder
	b.WriteString(strings.Join(header, ","))
	b.WriteByte('\n')
	for _, row := range rows {
		b.WriteString(strings.Join(row, ","))
		b.WriteByte('\n')
	}
	return WriteFile(t, dir, name, []byte(b.String()))
}

// GenerateRows builds n rows of id, label, value cells where every tenth value
// is missing
func GenerateRows(n int) [][]string {
	rows := make([][]string, n)
	for i := 0; i < n; i++ {
		value := fmt.Sprintf("%.2f", float64(i)*1.25)
		if i%10 == 9 {
			value = ""
		}
		rows[i] = []string{fmt.Sprintf("%d", i), fmt.Sprintf("Record_%d", i), value}
	}
	return rows
}
