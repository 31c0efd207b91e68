package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application. Board geometry is
// deliberately absent: it is a compile-time contract shared with placement
// and rendering collaborators, not a tunable.
type Config struct {
	Battle BattleConfig `mapstructure:"battle"`
	Log    LogConfig    `mapstructure:"log"`
	Demo   DemoConfig   `mapstructure:"demo"`
}

// BattleConfig holds host-loop settings
type BattleConfig struct {
	MaxTicks    int    `mapstructure:"max_ticks"`
	CatalogPath string `mapstructure:"catalog_path"`
	ReplayPath  string `mapstructure:"replay_path"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DemoConfig holds demo binary settings
type DemoConfig struct {
	PrintBoard  bool  `mapstructure:"print_board"`
	TickDelayMs int   `mapstructure:"tick_delay_ms"`
	RandomSeed  int64 `mapstructure:"random_seed"`
}

var (
	// Global config instance
	cfg *Config
	v   *viper.Viper
)

// setViperDefaults sets all default values using Viper's SetDefault
func setViperDefaults(v *viper.Viper) {
	v.SetDefault("battle.max_ticks", 200)
	v.SetDefault("battle.catalog_path", "")
	v.SetDefault("battle.replay_path", "")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetDefault("demo.print_board", true)
	v.SetDefault("demo.tick_delay_ms", 0)
	v.SetDefault("demo.random_seed", 0)
}

// Init initializes the configuration
func Init(configPath string) error {
	v = viper.New()

	setViperDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/tactica")
	}

	v.SetEnvPrefix("TAW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if configPath != "" {
			// Specific file requested but not found - that's ok, use defaults
		} else if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg = &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	return nil
}

// Get returns the global config instance
func Get() *Config {
	if cfg == nil {
		if err := Init(""); err != nil {
			panic("failed to initialize config with defaults: " + err.Error())
		}
	}
	return cfg
}

// ConfigFilePath returns the path of the loaded config file
func ConfigFilePath() string {
	return v.ConfigFileUsed()
}

// WatchConfig enables hot-reloading of the config file
func WatchConfig(onChange func()) {
	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		v.Unmarshal(cfg)
		if onChange != nil {
			onChange()
		}
	})
}

// Validate validates the configuration values
func Validate(c *Config) error {
	if c.Battle.MaxTicks <= 0 {
		return fmt.Errorf("battle.max_ticks must be positive")
	}
	if c.Demo.TickDelayMs < 0 {
		return fmt.Errorf("demo.tick_delay_ms must be non-negative")
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("log.format must be console or json")
	}
	return nil
}
