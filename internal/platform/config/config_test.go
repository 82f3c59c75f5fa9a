// internal/platform/config/config_test.go
package config

import (
	"testing"
	"time"

	"github.com/spf13/pflag"

	"modelfetch/internal/platform/errors"
	"modelfetch/internal/testutil"
)

func TestGetenv(t *testing.T) {
	t.Setenv("MODELFETCH_TEST_KEY", "custom")

	testutil.AssertEqual(t, getenv("MODELFETCH_TEST_KEY", "default"), "custom", "env var exists")
	testutil.AssertEqual(t, getenv("MODELFETCH_TEST_MISSING", "default"), "default", "env var missing")
}

func TestParseBool(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"1", true},
		{"TRUE", true},
		{" yes ", true},
		{"on", true},
		{"0", false},
		{"off", false},
		{"", false},
		{"garbage", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			testutil.AssertEqual(t, parseBool(tt.input), tt.expected, "parseBool")
		})
	}
}

func TestParseInt(t *testing.T) {
	testutil.AssertEqual(t, parseInt(" 600 ", 0), 600, "with spaces")
	testutil.AssertEqual(t, parseInt("abc", 30), 30, "invalid uses default")
	testutil.AssertEqual(t, parseInt("-5", 30), -5, "negative")
}

func TestLoad_EnvOverridesDefaults(t *testing.T) {
	t.Setenv("MODELFETCH_PYTHON", "/opt/venv/bin/python")
	t.Setenv("MODELFETCH_STRATEGY_TIMEOUT", "900")
	t.Setenv("MODELFETCH_ASSUME_YES", "true")

	cfg := Load()

	testutil.AssertEqual(t, cfg.Python, "/opt/venv/bin/python", "python from env")
	testutil.AssertEqual(t, cfg.Git, "git", "git default")
	testutil.AssertEqual(t, cfg.StrategyTimeoutS, 900, "timeout from env")
	testutil.AssertTrue(t, cfg.AssumeYes, "assume yes from env")
}

func TestBindFlags_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("MODELFETCH_PYTHON", "python-from-env")
	cfg := Load()

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	BindFlags(fs, &cfg)
	err := fs.Parse([]string{"--python", "python-from-flag", "-f", "--strategy-timeout", "60"})
	testutil.RequireNoError(t, err, "parse flags")

	testutil.AssertEqual(t, cfg.Python, "python-from-flag", "flag wins over env")
	testutil.AssertTrue(t, cfg.Force, "short flag -f")
	testutil.AssertEqual(t, cfg.StrategyTimeout(), 60*time.Second, "timeout duration")
}

func TestNormalize(t *testing.T) {
	cfg := Config{Python: "  ", StrategyTimeoutS: -3, Verbose: true}
	Normalize(&cfg)

	testutil.AssertEqual(t, cfg.Python, "python3", "empty python falls back")
	testutil.AssertEqual(t, cfg.Git, "git", "empty git falls back")
	testutil.AssertEqual(t, cfg.StrategyTimeoutS, 0, "negative timeout clamped")
	testutil.AssertEqual(t, cfg.LogLevel, "debug", "verbose forces debug")
	testutil.AssertEqual(t, cfg.StrategyTimeout(), time.Duration(0), "zero means no timeout")
	testutil.AssertEqual(t, cfg.Output, OutputPretty, "empty output falls back")

	cfg = Config{Output: " JSON "}
	Normalize(&cfg)
	testutil.AssertEqual(t, cfg.Output, OutputJSON, "output lowercased")
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	testutil.AssertNoError(t, cfg.Validate(), "defaults are valid")

	cfg.CatalogPath = "/nonexistent/catalog.yaml"
	testutil.AssertTrue(t, errors.IsInvalidInput(cfg.Validate()), "missing catalog is invalid input")

	cfg = DefaultConfig()
	cfg.Quiet, cfg.Verbose = true, true
	testutil.AssertTrue(t, errors.IsInvalidInput(cfg.Validate()), "quiet and verbose conflict")

	cfg = DefaultConfig()
	cfg.Output = "xml"
	testutil.AssertTrue(t, errors.IsInvalidInput(cfg.Validate()), "unknown output mode")
}
