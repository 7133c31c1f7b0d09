// Package config 加载 YAML 配置文件。
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/shu1007/github-rss/internal/feed"
)

// Config 是生成器的顶层配置结构。
type Config struct {
	Feeds      []feed.Source `yaml:"feeds"`
	Output     OutputConfig  `yaml:"output"`
	Fetch      FetchConfig   `yaml:"fetch"`
	WindowDays int           `yaml:"window_days"`
	Log        LogConfig     `yaml:"log"`
}

// OutputConfig 输出配置。
type OutputConfig struct {
	// Path 生成的 HTML 文件路径，目录不存在时会自动创建。
	Path string `yaml:"path"`
}

// FetchConfig 抓取配置。
type FetchConfig struct {
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	UserAgent      string `yaml:"user_agent"`
}

// LogConfig 日志配置。
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Load 读取 YAML 配置文件并返回 Config。
// 支持 ${VAR_NAME} 形式的环境变量展开。
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取配置文件 %s 失败: %w", path, err)
	}

	expanded := os.Expand(string(data), func(key string) string {
		return os.Getenv(key)
	})

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("解析配置文件 %s 失败: %w", path, err)
	}

	setDefaults(cfg)
	return cfg, nil
}

// setDefaults 为未设置的配置项填充默认值。
func setDefaults(cfg *Config) {
	if cfg.Output.Path == "" {
		cfg.Output.Path = "docs/index.html"
	}
	if cfg.Fetch.TimeoutSeconds == 0 {
		cfg.Fetch.TimeoutSeconds = 10
	}
	if cfg.WindowDays == 0 {
		cfg.WindowDays = 7
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
}
