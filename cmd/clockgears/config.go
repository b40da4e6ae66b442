package main

import (
	"errors"
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/watchmakers/gears/train"
)

// trainConfig is the TOML description of a four-wheel train.
type trainConfig struct {
	Module float64      `toml:"module"`
	Span   float64      `toml:"span"`
	Angle  float64      `toml:"angle"`
	Width  float64      `toml:"width"`
	Root   string       `toml:"root"`
	Bore   float64      `toml:"bore"`
	Counts countsConfig `toml:"counts"`
}

type countsConfig struct {
	InputPinion  int `toml:"input-pinion"`
	SecondWheel  int `toml:"second-wheel"`
	SecondPinion int `toml:"second-pinion"`
	ThirdWheel   int `toml:"third-wheel"`
	ThirdPinion  int `toml:"third-pinion"`
	FourthWheel  int `toml:"fourth-wheel"`
}

func (c countsConfig) counts() train.Counts {
	return train.Counts{
		InputPinion:  c.InputPinion,
		SecondWheel:  c.SecondWheel,
		SecondPinion: c.SecondPinion,
		ThirdWheel:   c.ThirdWheel,
		ThirdPinion:  c.ThirdPinion,
		FourthWheel:  c.FourthWheel,
	}
}

func loadTrainConfig(path string) (*trainConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading train config: %w", err)
	}
	cfg := trainConfig{
		Width: 2,
		Root:  "rounded",
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if cfg.Module <= 0 {
		return nil, errors.New("train config: module must be positive")
	}
	if cfg.Span <= 0 {
		return nil, errors.New("train config: span must be positive")
	}
	return &cfg, nil
}
