package env

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"spin2win/internal/config"
	"spin2win/internal/engine/session"
)

const (
	strategyConfigPathEnvName = "STRATEGY_CONFIG_PATH"
	defaultStrategyConfigPath = "config.yaml"
)

type strategyFile struct {
	DefaultPreset string                    `yaml:"default_preset"`
	Presets       map[string]session.Config `yaml:"presets"`
}

type strategyConfig struct {
	defaultPreset string
	presets       map[string]session.Config
}

// StrategyConfigPath Путь к файлу пресетов из окружения
func StrategyConfigPath() string {
	if p := os.Getenv(strategyConfigPathEnvName); len(p) != 0 {
		return p
	}
	return defaultStrategyConfigPath
}

// NewStrategyConfigFromYAML Читает пресеты и проверяет каждый так же, как при создании сессии
func NewStrategyConfigFromYAML(path string) (config.StrategyConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read strategy config: %w", err)
	}
	return parseStrategyConfig(raw)
}

func parseStrategyConfig(raw []byte) (config.StrategyConfig, error) {
	var f strategyFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse strategy config: %w", err)
	}
	if len(f.Presets) == 0 {
		return nil, fmt.Errorf("strategy config has no presets")
	}

	presets := make(map[string]session.Config, len(f.Presets))
	for name, cfg := range f.Presets {
		// Полная проверка: значения, схема разбиения, прогрессия
		e, err := session.New(cfg)
		if err != nil {
			return nil, fmt.Errorf("preset %q: %w", name, err)
		}
		presets[name] = e.Config()
	}

	def := f.DefaultPreset
	if def == "" {
		names := make([]string, 0, len(presets))
		for name := range presets {
			names = append(names, name)
		}
		sort.Strings(names)
		def = names[0]
	}
	if _, ok := presets[def]; !ok {
		return nil, fmt.Errorf("default preset %q not found", def)
	}

	return &strategyConfig{
		defaultPreset: def,
		presets:       presets,
	}, nil
}

func (c *strategyConfig) Preset(name string) (session.Config, bool) {
	cfg, ok := c.presets[name]
	return cfg, ok
}

func (c *strategyConfig) Presets() map[string]session.Config {
	out := make(map[string]session.Config, len(c.presets))
	for k, v := range c.presets {
		out[k] = v
	}
	return out
}

func (c *strategyConfig) DefaultPreset() string {
	return c.defaultPreset
}
