// Package config loads the application configuration from a YAML file
// with environment overrides.
package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v2"
)

type SysConfig struct {
	Appname  string `yaml:"appname"`
	Location string `yaml:"location"`
	Workdir  string `yaml:"workdir"`
	NodeID   int64  `yaml:"node_id"`
	Debug    bool   `yaml:"debug"`
}

type WebConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// OrderAPIConfig points at the optional remote order collaborator.
// An empty endpoint disables remote submission entirely.
type OrderAPIConfig struct {
	Endpoint string `yaml:"endpoint"`
	Timeout  int    `yaml:"timeout"` // seconds
}

type LogConfig struct {
	Mode       string `yaml:"mode"` // development or production
	FileEnable bool   `yaml:"file_enable"`
	Filename   string `yaml:"filename"`
}

type AppConfig struct {
	System   SysConfig      `yaml:"system"`
	Web      WebConfig      `yaml:"web"`
	OrderAPI OrderAPIConfig `yaml:"order_api"`
	Logger   LogConfig      `yaml:"logger"`
}

// DefaultConfig is used when no config file exists.
var DefaultConfig = &AppConfig{
	System: SysConfig{
		Appname:  "foodking",
		Location: "Asia/Kolkata",
		Workdir:  "/var/foodking",
		NodeID:   1,
		Debug:    true,
	},
	Web: WebConfig{
		Host: "0.0.0.0",
		Port: 8106,
	},
	OrderAPI: OrderAPIConfig{
		Endpoint: "",
		Timeout:  10,
	},
	Logger: LogConfig{
		Mode:       "development",
		FileEnable: false,
		Filename:   "",
	},
}

func setEnvValue(name string, f func(v string)) {
	if v, ok := os.LookupEnv(name); ok {
		f(v)
	}
}

// LoadConfig reads the YAML file at path, falling back to defaults,
// then applies FOODKING_* environment overrides.
func LoadConfig(path string) *AppConfig {
	cfg := new(AppConfig)
	*cfg = *DefaultConfig
	if path != "" {
		if data, err := os.ReadFile(path); err == nil {
			_ = yaml.Unmarshal(data, cfg)
		}
	}

	setEnvValue("FOODKING_SYSTEM_WORKDIR", func(v string) { cfg.System.Workdir = v })
	setEnvValue("FOODKING_SYSTEM_DEBUG", func(v string) { cfg.System.Debug = cast.ToBool(v) })
	setEnvValue("FOODKING_SYSTEM_NODE_ID", func(v string) { cfg.System.NodeID = cast.ToInt64(v) })
	setEnvValue("FOODKING_WEB_HOST", func(v string) { cfg.Web.Host = v })
	setEnvValue("FOODKING_WEB_PORT", func(v string) { cfg.Web.Port = cast.ToInt(v) })
	setEnvValue("FOODKING_ORDER_API_ENDPOINT", func(v string) { cfg.OrderAPI.Endpoint = v })
	setEnvValue("FOODKING_LOGGER_MODE", func(v string) { cfg.Logger.Mode = v })

	if cfg.Logger.FileEnable && cfg.Logger.Filename == "" {
		cfg.Logger.Filename = filepath.Join(cfg.System.Workdir, "foodking.log")
	}
	return cfg
}
