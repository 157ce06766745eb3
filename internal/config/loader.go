package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config captures the runtime settings of the scheduler service.
type Config struct {
	HTTPPort         int           `yaml:"http_port"`
	SQLiteDSN        string        `yaml:"sqlite_dsn"`
	ReminderInterval time.Duration `yaml:"reminder_interval"`
	HorizonDays      int           `yaml:"horizon_days"`
}

// Load reads configuration from an optional config.yaml in the working
// directory, then applies GAMESCHED_* environment overrides.
func Load() (Config, error) {
	return LoadFile("config.yaml")
}

// LoadFile parses the named YAML file when it exists, substituting
// ${ENV} placeholders from the process environment the way the file
// would be written for container deployments, then applies environment
// overrides on top. Defaults cover every field; invalid values are
// accumulated and reported together.
func LoadFile(path string) (Config, error) {
	cfg := Config{
		HTTPPort:         8080,
		SQLiteDSN:        "file:scheduler.db?_foreign_keys=on",
		ReminderInterval: 60 * time.Second,
		HorizonDays:      14,
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		content := string(data)
		for _, env := range os.Environ() {
			pair := strings.SplitN(env, "=", 2)
			if len(pair) != 2 {
				continue
			}
			content = strings.ReplaceAll(content, "${"+pair[0]+"}", pair[1])
		}
		if err := yaml.Unmarshal([]byte(content), &cfg); err != nil {
			return Config{}, fmt.Errorf("設定ファイルの解析に失敗しました: %w", err)
		}
	case os.IsNotExist(err):
		// No file is fine; defaults plus environment cover everything.
	default:
		return Config{}, fmt.Errorf("設定ファイルの読み込みに失敗しました: %w", err)
	}

	invalid := make([]string, 0, 2)

	if portValue := strings.TrimSpace(os.Getenv("GAMESCHED_HTTP_PORT")); portValue != "" {
		port, err := strconv.Atoi(portValue)
		if err != nil || port <= 0 {
			invalid = append(invalid, "GAMESCHED_HTTP_PORT")
		} else {
			cfg.HTTPPort = port
		}
	}

	if dsn := strings.TrimSpace(os.Getenv("GAMESCHED_SQLITE_DSN")); dsn != "" {
		cfg.SQLiteDSN = dsn
	}

	if intervalValue := strings.TrimSpace(os.Getenv("GAMESCHED_REMINDER_INTERVAL")); intervalValue != "" {
		interval, err := time.ParseDuration(intervalValue)
		if err != nil || interval <= 0 {
			invalid = append(invalid, "GAMESCHED_REMINDER_INTERVAL")
		} else {
			cfg.ReminderInterval = interval
		}
	}

	if horizonValue := strings.TrimSpace(os.Getenv("GAMESCHED_HORIZON_DAYS")); horizonValue != "" {
		horizon, err := strconv.Atoi(horizonValue)
		if err != nil || horizon <= 0 {
			invalid = append(invalid, "GAMESCHED_HORIZON_DAYS")
		} else {
			cfg.HorizonDays = horizon
		}
	}

	if cfg.HTTPPort <= 0 || cfg.HorizonDays <= 0 || cfg.ReminderInterval <= 0 {
		invalid = append(invalid, path)
	}

	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("設定値が不正です: %s", strings.Join(invalid, ", "))
	}

	return cfg, nil
}
