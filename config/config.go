// Package config loads the viewer settings and dataset files (YAML).
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/quantboard/graphview/graph"
)

// Config holds the viewer settings.
type Config struct {
	NodeGap      float64 `yaml:"node_gap"`
	Dark         bool    `yaml:"dark"`
	WindowWidth  int     `yaml:"window_width"`
	WindowHeight int     `yaml:"window_height"`
	Dataset      string  `yaml:"dataset"`
	LogLevel     string  `yaml:"log_level"`
}

// Default returns the settings used when no config file is given.
func Default() Config {
	return Config{
		NodeGap:      90,
		Dark:         true,
		WindowWidth:  1024,
		WindowHeight: 768,
		LogLevel:     "info",
	}
}

// Load reads a YAML config file over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Item is one dataset entry; Deps lists dependency names.
type Item struct {
	ID   string   `yaml:"id"`
	Name string   `yaml:"name"`
	Deps []string `yaml:"deps"`
}

// Dataset mirrors the payload the dashboard hands the graph: indicator
// records under metrics, strategy records under rules.
type Dataset struct {
	Metrics []Item `yaml:"metrics"`
	Rules   []Item `yaml:"rules"`
}

// LoadDataset reads a YAML dataset file.
func LoadDataset(path string) (Dataset, error) {
	var ds Dataset
	data, err := os.ReadFile(path)
	if err != nil {
		return ds, fmt.Errorf("read dataset: %w", err)
	}
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return ds, fmt.Errorf("parse dataset %s: %w", path, err)
	}
	return ds, nil
}

// Records converts the dataset into the record lists the model builder
// consumes.
func (d Dataset) Records() (metrics, rules []graph.Record) {
	for _, it := range d.Metrics {
		metrics = append(metrics, graph.Record{ID: it.ID, Name: it.Name, Deps: it.Deps})
	}
	for _, it := range d.Rules {
		rules = append(rules, graph.Record{ID: it.ID, Name: it.Name, Deps: it.Deps})
	}
	return metrics, rules
}

// Sample is the built-in dataset shown when no file is supplied.
func Sample() Dataset {
	return Dataset{
		Metrics: []Item{
			{ID: "m-close", Name: "close"},
			{ID: "m-sma20", Name: "sma_20", Deps: []string{"close"}},
			{ID: "m-sma50", Name: "sma_50", Deps: []string{"close"}},
			{ID: "m-rsi", Name: "rsi_14", Deps: []string{"close"}},
			{ID: "m-vol", Name: "volume"},
			{ID: "m-obv", Name: "obv", Deps: []string{"close", "volume"}},
		},
		Rules: []Item{
			{ID: "r-cross", Name: "golden_cross", Deps: []string{"sma_20", "sma_50"}},
			{ID: "r-meanrev", Name: "mean_reversion", Deps: []string{"rsi_14"}},
			{ID: "r-flow", Name: "volume_flow", Deps: []string{"obv"}},
			{ID: "r-idle", Name: "draft_rule"},
		},
	}
}
