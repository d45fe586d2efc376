// Package config 读取求解相关的配置
//
// 配置文件查找顺序:
//  1. $CIRCUIT_CONFIG
//  2. ./circuit.yaml
//
// 没有配置文件时使用默认值。
package config

import (
	"circuitsketch/types"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config 配置
type Config struct {
	SnapTolerance float64 `yaml:"snap_tolerance"` // 吸附距离
	LogLevel      string  `yaml:"log_level"`      // debug/info/warn/error
	LogFormat     string  `yaml:"log_format"`     // text/json
}

// DefaultConfig 默认配置
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (cfg *Config) applyDefaults() {
	if cfg.SnapTolerance == 0 {
		cfg.SnapTolerance = types.DefaultSnapTolerance
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
}

// Validate 检查配置
func (cfg *Config) Validate() error {
	if cfg.SnapTolerance < 0 {
		return fmt.Errorf("snap_tolerance must not be negative: %v", cfg.SnapTolerance)
	}
	return nil
}

// FindConfigPath 查找配置文件,找不到返回空字符串
func FindConfigPath() string {
	if p := os.Getenv("CIRCUIT_CONFIG"); p != "" {
		return p
	}
	if _, err := os.Stat("circuit.yaml"); err == nil {
		return "circuit.yaml"
	}
	return ""
}

// Load 查找并读取配置,path 为空时自动查找
func Load(path string) (*Config, error) {
	if path == "" {
		path = FindConfigPath()
	}
	if path == "" {
		return DefaultConfig(), nil
	}
	return LoadFromPath(path)
}

// LoadFromPath 读取指定配置文件
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config %s not found: %w", path, err)
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
