package config

import (
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	defaultConfigName = "procfeed_config"
	envPrefix         = "PROCFEED"

	SourceKindGopsutil = "gopsutil"
	SourceKindProcfs   = "procfs"
)

type ServerConfig struct {
	Host string `mapstructure:"host"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

type SourceConfig struct {
	Kind         string        `mapstructure:"kind"`
	ProcRoot     string        `mapstructure:"proc_root"`
	UserCacheTTL time.Duration `mapstructure:"user_cache_ttl"`
	SkipSelf     bool          `mapstructure:"skip_self"`
}

type BroadcastConfig struct {
	BufferSize int `mapstructure:"buffer_size"`
}

type StreamConfig struct {
	KeepAlive time.Duration `mapstructure:"keep_alive"`
}

type RefreshConfig struct {
	Interval time.Duration `mapstructure:"interval"`
	OnStart  bool          `mapstructure:"on_start"`
}

type ProcFeedConfig struct {
	Server    ServerConfig    `mapstructure:"server"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Source    SourceConfig    `mapstructure:"source"`
	Broadcast BroadcastConfig `mapstructure:"broadcast"`
	Stream    StreamConfig    `mapstructure:"stream"`
	Refresh   RefreshConfig   `mapstructure:"refresh"`
}

var (
	procFeedCfg *ProcFeedConfig
)

func GetConfig() *ProcFeedConfig {
	return procFeedCfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "127.0.0.1:8080")
	v.SetDefault("logging.level", "debug")
	v.SetDefault("source.kind", SourceKindGopsutil)
	v.SetDefault("source.proc_root", "/proc")
	v.SetDefault("source.user_cache_ttl", 5*time.Minute)
	v.SetDefault("source.skip_self", false)
	v.SetDefault("broadcast.buffer_size", 100)
	v.SetDefault("stream.keep_alive", 15*time.Second)
	v.SetDefault("refresh.interval", time.Duration(0))
	v.SetDefault("refresh.on_start", false)
}

// InitConfig reads configName (TOML) from configPath or the repository config
// directory. A missing file is not an error: defaults and PROCFEED_* env
// overrides still apply.
func InitConfig(configName string, configPath string) (ProcFeedConfig, error) {
	var cfg ProcFeedConfig
	v := viper.New()
	setDefaults(v)
	if configPath != "" {
		v.AddConfigPath(configPath)
	}
	if configName == "" {
		configName = defaultConfigName
	}
	v.AddConfigPath(GetAbsPath("config"))
	v.SetConfigName(configName)
	v.SetConfigType("toml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	err := v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return cfg, errors.WithMessage(err, "read config")
		}
	}

	err = v.Unmarshal(&cfg)
	if err != nil {
		return cfg, errors.WithMessage(err, "unmarshal config")
	}
	if err = cfg.Validate(); err != nil {
		return cfg, err
	}
	procFeedCfg = &cfg
	return cfg, nil
}

func (cfg ProcFeedConfig) Validate() error {
	switch cfg.Source.Kind {
	case SourceKindGopsutil, SourceKindProcfs:
	default:
		return errors.Errorf("unknown source kind %q", cfg.Source.Kind)
	}
	if cfg.Broadcast.BufferSize <= 0 {
		return errors.Errorf("broadcast.buffer_size must be positive, got %d", cfg.Broadcast.BufferSize)
	}
	if cfg.Refresh.Interval < 0 {
		return errors.Errorf("refresh.interval must not be negative, got %s", cfg.Refresh.Interval)
	}
	return nil
}

// GetAbsPath returns the absolute path by joining the given paths with the project root directory
func GetAbsPath(paths ...string) string {
	_, filePath, _, _ := runtime.Caller(1)
	basePath := filepath.Dir(filePath)
	rootPath := filepath.Join(basePath, "..")
	return filepath.Join(rootPath, filepath.Join(paths...))
}
