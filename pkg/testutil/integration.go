package testutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

// FixtureSuite provides a temp directory and logger to suites that load
// datasets from disk
type FixtureSuite struct {
	suite.Suite
	tempDir string
	logger  *zap.Logger
}

// SetupTest runs before each test in the suite
func (s *FixtureSuite) SetupTest() {
	s.tempDir = s.T().TempDir()
	s.logger = TestLogger(s.T())
}

// TempDir returns the temporary directory path
func (s *FixtureSuite) TempDir() string {
	return s.tempDir
}

// Logger returns a logger bound to the current test
func (s *FixtureSuite) Logger() *zap.Logger {
	return s.logger
}

// CreateTempFile creates a file with content in the temp directory
func (s *FixtureSuite) CreateTempFile(name string, content string) string {
	return WriteFile(s.T(), s.tempDir, name, []byte(content))
}

// Path joins name onto the temp directory
func (s *FixtureSuite) Path(name string) string {
	return filepath.Join(s.tempDir, name)
}

// IntegrationTest skips the calling test in short mode
func IntegrationTest(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
}
