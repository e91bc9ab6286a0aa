package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultBaseURL      = "http://127.0.0.1:8000"
	DefaultTimeout      = 30
	DefaultChartWidth   = 800
	DefaultChartHeight  = 400
	DefaultBarSurface   = "barChart"
	DefaultDonutSurface = "pieChart"
)

// Config 客户端配置结构体
type Config struct {
	Service ServiceConfig `yaml:"service"`
	Charts  ChartsConfig  `yaml:"charts"`
	Log     LogConfig     `yaml:"log"`
}

// ServiceConfig 分析服务相关配置
type ServiceConfig struct {
	BaseURL string `yaml:"base_url"`
	Timeout int    `yaml:"timeout"` // 秒
}

// ChartsConfig 图表相关配置
type ChartsConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// LogConfig 日志相关配置
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Default 返回默认配置
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// LoadConfig 从指定路径加载配置，缺省字段使用默认值
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	cfg.applyDefaults()

	return &cfg, nil
}

// RequestTimeout 请求超时时间
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.Service.Timeout) * time.Second
}

func (c *Config) applyDefaults() {
	if c.Service.BaseURL == "" {
		c.Service.BaseURL = DefaultBaseURL
	}
	if c.Service.Timeout <= 0 {
		c.Service.Timeout = DefaultTimeout
	}
	if c.Charts.Width <= 0 {
		c.Charts.Width = DefaultChartWidth
	}
	if c.Charts.Height <= 0 {
		c.Charts.Height = DefaultChartHeight
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}
