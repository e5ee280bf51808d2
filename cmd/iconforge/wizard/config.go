package wizard

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the complete wizard configuration for YAML serialization.
type Config struct {
	Global GlobalConfigYAML `yaml:"global"`
	Icons  []IconConfigYAML `yaml:"icons"`
}

// GlobalConfigYAML holds global settings with YAML tags for serialization.
type GlobalConfigYAML struct {
	OutputDir string `yaml:"output_dir"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	NumIcons  int    `yaml:"num_icons"`
	Workers   int    `yaml:"workers"`
}

// IconConfigYAML holds icon configuration with YAML tags.
type IconConfigYAML struct {
	Seed   string `yaml:"seed"`
	File   string `yaml:"file,omitempty"`
	Theme  string `yaml:"theme,omitempty"`
	Label  string `yaml:"label,omitempty"`
	Width  int    `yaml:"width,omitempty"`
	Height int    `yaml:"height,omitempty"`
}

// wizardStateToConfig converts the in-memory wizard state to its YAML form.
func wizardStateToConfig(state *WizardState) *Config {
	cfg := &Config{
		Global: GlobalConfigYAML{
			OutputDir: state.Global.OutputDir,
			Width:     state.Global.Width,
			Height:    state.Global.Height,
			NumIcons:  state.Global.NumIcons,
			Workers:   state.Global.Workers,
		},
		Icons: make([]IconConfigYAML, len(state.Icons)),
	}
	for i, ic := range state.Icons {
		cfg.Icons[i] = IconConfigYAML{
			Seed:   ic.SeedText,
			File:   ic.File,
			Theme:  ic.Theme,
			Label:  ic.Label,
			Width:  ic.Width,
			Height: ic.Height,
		}
	}
	return cfg
}

// configToWizardState converts a deserialized YAML config to wizard state.
func configToWizardState(cfg *Config) *WizardState {
	state := &WizardState{
		Global: GlobalConfig{
			OutputDir: cfg.Global.OutputDir,
			Width:     cfg.Global.Width,
			Height:    cfg.Global.Height,
			NumIcons:  cfg.Global.NumIcons,
			Workers:   cfg.Global.Workers,
		},
		Icons: make([]IconConfig, len(cfg.Icons)),
	}
	for i, ic := range cfg.Icons {
		state.Icons[i] = IconConfig{
			SeedText: ic.Seed,
			File:     ic.File,
			Theme:    ic.Theme,
			Label:    ic.Label,
			Width:    ic.Width,
			Height:   ic.Height,
		}
	}
	if state.Global.NumIcons == 0 {
		state.Global.NumIcons = len(state.Icons)
	}
	return state
}

// SaveToYAML writes the wizard state to a YAML config file.
func SaveToYAML(state *WizardState, path string) error {
	data, err := yaml.Marshal(wizardStateToConfig(state))
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// LoadFromYAML reads a YAML config file into wizard state.
func LoadFromYAML(path string) (*WizardState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	return configToWizardState(&cfg), nil
}
