package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/suite"
)

type ConfigTestSuite struct {
	suite.Suite
	dir string
}

func (s *ConfigTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
}

func (s *ConfigTestSuite) load(env map[string]string) (*AppConfig, error) {
	return Load(context.Background(), envconfig.MapLookuper(env))
}

func (s *ConfigTestSuite) writeFile(content string) string {
	path := filepath.Join(s.dir, "tuning.yml")
	s.Require().NoError(os.WriteFile(path, []byte(content), 0o600))
	return path
}

func (s *ConfigTestSuite) TestDefaults() {
	cfg, err := s.load(map[string]string{})
	s.Require().NoError(err)

	s.Equal("prod", cfg.Environment)
	s.Equal(5.0, cfg.PositionBudgetMeters)
	s.Equal(30.0, cfg.BearingTolerance)
	s.Equal(1.6, cfg.SpeedTolerance)
	s.Empty(cfg.ReportPath)
	s.Empty(cfg.PlotPath)
}

func (s *ConfigTestSuite) TestEnvironmentOverrides() {
	cfg, err := s.load(map[string]string{
		"ENVIRONMENT":                "dev",
		"FIT_POSITION_BUDGET_METERS": "2.5",
		"FIT_SPEED_TOLERANCE":        "0.8",
		"FIT_REPORT_PATH":            "/tmp/report.json",
	})
	s.Require().NoError(err)

	s.Equal("dev", cfg.Environment)
	s.Equal(2.5, cfg.PositionBudgetMeters)
	s.Equal(30.0, cfg.BearingTolerance)
	s.Equal(0.8, cfg.SpeedTolerance)
	s.Equal("/tmp/report.json", cfg.ReportPath)
}

func (s *ConfigTestSuite) TestFileThenEnvironment() {
	path := s.writeFile(`
scoring:
  position_budget_meters: 10
  bearing_tolerance: 45
report:
  plot_path: fit.png
`)

	cfg, err := s.load(map[string]string{
		ConfigFileEnv:           path,
		"FIT_BEARING_TOLERANCE": "20",
	})
	s.Require().NoError(err)

	s.Equal(10.0, cfg.PositionBudgetMeters)
	s.Equal(20.0, cfg.BearingTolerance)
	s.Equal(1.6, cfg.SpeedTolerance)
	s.Equal("fit.png", cfg.PlotPath)
}

func (s *ConfigTestSuite) TestNonPositiveToleranceRejected() {
	for _, key := range []string{"FIT_POSITION_BUDGET_METERS", "FIT_BEARING_TOLERANCE", "FIT_SPEED_TOLERANCE"} {
		_, err := s.load(map[string]string{key: "-1"})
		s.Error(err, key)
	}
}

func (s *ConfigTestSuite) TestMalformedValue() {
	_, err := s.load(map[string]string{"FIT_SPEED_TOLERANCE": "fast"})
	s.Error(err)
}

func (s *ConfigTestSuite) TestMissingConfigFile() {
	_, err := s.load(map[string]string{ConfigFileEnv: filepath.Join(s.dir, "missing.yml")})
	s.Error(err)
}

func (s *ConfigTestSuite) TestMalformedConfigFile() {
	path := s.writeFile("scoring: [unterminated")
	_, err := s.load(map[string]string{ConfigFileEnv: path})
	s.Error(err)
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}
