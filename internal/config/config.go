package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	// DefaultTopN is how many machines each ranking table holds.
	DefaultTopN = 10
	// DefaultReservedPrefix marks internal infrastructure machines that are
	// excluded from the report (vSphere Cluster Services VMs).
	DefaultReservedPrefix = "vcls"
)

type Config struct {
	Host           string
	Username       string
	Password       string
	Insecure       bool
	ReportPath     string
	TopN           int
	ReservedPrefix string
	LogJSON        bool
	LogLevel       string
}

// Load builds the configuration from VCHECK_* environment variables and
// prompts on the terminal for whatever connection values are missing.
func Load() (Config, error) {
	return LoadWith(NewTerminalPrompter())
}

// LoadWith is Load with an explicit prompter, used by tests.
func LoadWith(p Prompter) (Config, error) {
	cfg := Config{
		Host:           env("VCHECK_HOST", ""),
		Username:       env("VCHECK_USERNAME", ""),
		Password:       env("VCHECK_PASSWORD", ""),
		Insecure:       envBool("VCHECK_INSECURE", true),
		ReportPath:     env("VCHECK_REPORT_PATH", ""),
		TopN:           envInt("VCHECK_TOP_N", DefaultTopN),
		ReservedPrefix: env("VCHECK_RESERVED_PREFIX", DefaultReservedPrefix),
		LogJSON:        envBool("VCHECK_LOG_JSON", false),
		LogLevel:       strings.ToLower(env("VCHECK_LOG_LEVEL", "info")),
	}

	var err error
	if cfg.Host == "" {
		if cfg.Host, err = p.Prompt("vCenter/ESXi host"); err != nil {
			return Config{}, fmt.Errorf("prompt host: %w", err)
		}
	}
	if cfg.Username == "" {
		if cfg.Username, err = p.Prompt("Username"); err != nil {
			return Config{}, fmt.Errorf("prompt username: %w", err)
		}
	}
	if cfg.Password == "" {
		if cfg.Password, err = p.PromptSecret("Password"); err != nil {
			return Config{}, fmt.Errorf("prompt password: %w", err)
		}
	}
	if cfg.ReportPath == "" {
		if cfg.ReportPath, err = p.Prompt("HTML report file (e.g. report_vmware.html)"); err != nil {
			return Config{}, fmt.Errorf("prompt report path: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.Host) == "" {
		return errors.New("host is required")
	}
	if strings.TrimSpace(c.Username) == "" {
		return errors.New("username is required")
	}
	if strings.TrimSpace(c.ReportPath) == "" {
		return errors.New("report path is required")
	}
	if c.TopN <= 0 {
		return errors.New("VCHECK_TOP_N must be > 0")
	}
	return nil
}

func env(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func envInt(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return i
}

func envBool(key string, fallback bool) bool {
	v := strings.TrimSpace(strings.ToLower(os.Getenv(key)))
	if v == "" {
		return fallback
	}
	switch v {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return fallback
	}
}
