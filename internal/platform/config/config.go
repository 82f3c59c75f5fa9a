// internal/platform/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"modelfetch/internal/platform/errors"
)

// Config agrupa todo lo que controla una ejecución de modelfetch.
type Config struct {
	// Tools
	Python string // intérprete usado para pip y los warm-ups
	Git    string

	// Catalog: vacío = catálogo embebido
	CatalogPath string

	// StrategyTimeoutS limita cada estrategia en segundos (0 = sin timeout)
	StrategyTimeoutS int

	// Behaviour
	Force     bool // re-adquirir aunque el destino ya esté completo
	AssumeYes bool // aceptar prompts (licencia de Xcode) sin preguntar
	Quiet     bool
	Verbose   bool
	NoColor   bool
	LogLevel  string

	// Output: pretty (pterm), raw (logfmt) o json
	Output string
}

// Modos de salida
const (
	OutputPretty = "pretty"
	OutputRaw    = "raw"
	OutputJSON   = "json"
)

// DefaultConfig retorna una configuración por defecto.
func DefaultConfig() Config {
	return Config{
		Python:           "python3",
		Git:              "git",
		CatalogPath:      "",
		StrategyTimeoutS: 0,
		LogLevel:         "info",
		Output:           OutputPretty,
	}
}

// LoadFromEnv aplica las variables MODELFETCH_* sobre cfg.
func LoadFromEnv(cfg *Config) {
	if v := getenv("MODELFETCH_PYTHON", ""); v != "" {
		cfg.Python = v
	}
	if v := getenv("MODELFETCH_GIT", ""); v != "" {
		cfg.Git = v
	}
	if v := getenv("MODELFETCH_CATALOG", ""); v != "" {
		cfg.CatalogPath = v
	}
	if v := getenv("MODELFETCH_STRATEGY_TIMEOUT", ""); v != "" {
		cfg.StrategyTimeoutS = parseInt(v, cfg.StrategyTimeoutS)
	}
	if v := getenv("MODELFETCH_ASSUME_YES", ""); v != "" {
		cfg.AssumeYes = parseBool(v)
	}
	if v := getenv("MODELFETCH_NO_COLOR", ""); v != "" {
		cfg.NoColor = parseBool(v)
	}
	if v := getenv("MODELFETCH_LOG_LEVEL", ""); v != "" {
		cfg.LogLevel = v
	}
	if v := getenv("MODELFETCH_OUTPUT", ""); v != "" {
		cfg.Output = v
	}
}

// BindFlags registra los flags sobre fs; los flags tienen prioridad sobre ENV
// porque sus defaults son los valores ya cargados.
func BindFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.Python, "python", cfg.Python, "Python interpreter used for pip and model warm-up")
	fs.StringVar(&cfg.Git, "git", cfg.Git, "git executable")
	fs.StringVarP(&cfg.CatalogPath, "catalog", "c", cfg.CatalogPath, "Asset catalog file (.yaml or .hcl); empty uses the built-in catalog")
	fs.IntVar(&cfg.StrategyTimeoutS, "strategy-timeout", cfg.StrategyTimeoutS, "Per-strategy timeout in seconds (0 = no timeout)")
	fs.BoolVarP(&cfg.Force, "force", "f", cfg.Force, "Re-acquire even if the destination is already complete")
	fs.BoolVarP(&cfg.AssumeYes, "yes", "y", cfg.AssumeYes, "Answer yes to license prompts")
	fs.BoolVarP(&cfg.Quiet, "quiet", "q", cfg.Quiet, "Quiet mode (no UI, minimal output)")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "Verbose mode (debug logging, stream tool output)")
	fs.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "Disable colored output")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
	fs.StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output mode: pretty, raw (logfmt) or json")
}

// Load inicializa la configuración: defaults -> ENV; los flags se enlazan después con BindFlags.
func Load() Config {
	cfg := DefaultConfig()
	LoadFromEnv(&cfg)
	return cfg
}

// Normalize corrige valores fuera de rango y aplica --verbose.
func Normalize(c *Config) {
	c.Python = strings.TrimSpace(c.Python)
	c.Git = strings.TrimSpace(c.Git)
	if c.Python == "" {
		c.Python = "python3"
	}
	if c.Git == "" {
		c.Git = "git"
	}
	if c.StrategyTimeoutS < 0 {
		c.StrategyTimeoutS = 0
	}
	if c.Verbose {
		c.LogLevel = "debug"
	}
	c.Output = strings.ToLower(strings.TrimSpace(c.Output))
	if c.Output == "" {
		c.Output = OutputPretty
	}
}

// Validate verifica lo que Normalize no puede arreglar.
func (c Config) Validate() error {
	if c.CatalogPath != "" {
		if _, err := os.Stat(c.CatalogPath); err != nil {
			return errors.Wrapf(errors.ErrInvalidInput, "catalog %s: %v", c.CatalogPath, err)
		}
	}
	switch c.Output {
	case OutputPretty, OutputRaw, OutputJSON:
	default:
		return errors.Wrapf(errors.ErrInvalidInput, "unknown output mode %q", c.Output)
	}
	if c.Quiet && c.Verbose {
		return errors.Wrap(errors.ErrInvalidInput, "--quiet and --verbose are mutually exclusive")
	}
	return nil
}

// StrategyTimeout devuelve el timeout por estrategia como time.Duration.
func (c Config) StrategyTimeout() time.Duration {
	if c.StrategyTimeoutS <= 0 {
		return 0
	}
	return time.Duration(c.StrategyTimeoutS) * time.Second
}

// String resume la configuración en una línea para logs.
func (c Config) String() string {
	return fmt.Sprintf("python=%s git=%s catalog=%q timeout=%ds force=%t", c.Python, c.Git, c.CatalogPath, c.StrategyTimeoutS, c.Force)
}

// Helpers

func getenv(k, def string) string {
	if v, ok := os.LookupEnv(k); ok {
		return v
	}
	return def
}

func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "t", "true", "y", "yes", "on":
		return true
	default:
		return false
	}
}

func parseInt(v string, def int) int {
	i, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return i
}
