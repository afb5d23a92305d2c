package service

import (
	"fmt"

	"spin2win/internal/config"
	"spin2win/internal/engine/session"
)

// ResolveConfig Явная конфигурация важнее пресета; без обоих берётся пресет по умолчанию.
// Возвращает имя пресета ("" для явной конфигурации).
func ResolveConfig(presets config.StrategyConfig, name string, cfg *session.Config) (session.Config, string, error) {
	if cfg != nil {
		return cfg.WithDefaults(), "", nil
	}

	if name == "" {
		if presets == nil {
			return session.DefaultConfig(), "", nil
		}
		name = presets.DefaultPreset()
	}
	if presets == nil {
		return session.Config{}, "", fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}

	p, ok := presets.Preset(name)
	if !ok {
		return session.Config{}, "", fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return p, name, nil
}
