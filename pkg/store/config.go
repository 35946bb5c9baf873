package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config describes where and how the task list is stored.
type Config interface {
	BasePath() string
	Driver() string
	Key() string
	LogPath() string
}

// Overrides take precedence over the config file and environment when set.
type Overrides struct {
	Path   string
	Driver string
}

// DefaultKey is the single key the task list lives under.
const DefaultKey = "tasks"

// LoadConfig reads .tasklist.yaml and TASKLIST_* environment variables.
func LoadConfig(o Overrides) (Config, error) {
	v := viper.New()
	v.SetDefault("path", "~/.tasklist.db")
	v.SetDefault("driver", DriverDiskv)
	v.SetDefault("key", DefaultKey)
	v.SetDefault("log", "")
	v.SetConfigName(".tasklist") // .yaml is implicit
	v.SetEnvPrefix("TASKLIST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if override := os.Getenv("TASKLIST_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	if o.Path != "" {
		v.Set("path", o.Path)
	}
	if o.Driver != "" {
		v.Set("driver", o.Driver)
	}

	fc := &fileConfig{}
	if err := v.Unmarshal(fc); err != nil {
		return nil, fmt.Errorf("store: decode config: %w", err)
	}
	path, err := homedir.Expand(fc.Path)
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}
	fc.Path = path
	if fc.Log != "" {
		if fc.Log, err = homedir.Expand(fc.Log); err != nil {
			return nil, fmt.Errorf("store: expand log path: %w", err)
		}
	}
	if fc.StoreKey == "" {
		fc.StoreKey = DefaultKey
	}
	return fc, nil
}

type fileConfig struct {
	Path       string `mapstructure:"path"`
	DriverName string `mapstructure:"driver"`
	StoreKey   string `mapstructure:"key"`
	Log        string `mapstructure:"log"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) Driver() string {
	return f.DriverName
}

func (f *fileConfig) Key() string {
	return f.StoreKey
}

// LogPath defaults to tasklist.log inside the base path.
func (f *fileConfig) LogPath() string {
	if f.Log != "" {
		return f.Log
	}
	return filepath.Join(f.Path, "tasklist.log")
}
