package main

import (
	"os"
	"path/filepath"
	"testing"

	toml "github.com/pelletier/go-toml/v2"
)

const sampleTrain = `
module = 0.8
span = 42.0
angle = 55.0
width = 3.0
root = "rounded"
bore = 2.0

[counts]
input-pinion = 10
second-wheel = 60
second-pinion = 10
third-wheel = 56
third-pinion = 8
fourth-wheel = 50
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "train.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadTrainConfig(t *testing.T) {
	cfg, err := loadTrainConfig(writeConfig(t, sampleTrain))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Module != 0.8 || cfg.Span != 42 || cfg.Angle != 55 {
		t.Errorf("layout inputs wrong: %+v", cfg)
	}
	if cfg.Width != 3 || cfg.Root != "rounded" || cfg.Bore != 2 {
		t.Errorf("part options wrong: %+v", cfg)
	}
	c := cfg.Counts.counts()
	if c.InputPinion != 10 || c.SecondWheel != 60 || c.SecondPinion != 10 ||
		c.ThirdWheel != 56 || c.ThirdPinion != 8 || c.FourthWheel != 50 {
		t.Errorf("counts wrong: %+v", c)
	}
}

func TestLoadTrainConfigDefaults(t *testing.T) {
	cfg, err := loadTrainConfig(writeConfig(t, "module = 1.0\nspan = 40.0\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 2 {
		t.Errorf("default width = %g, want 2", cfg.Width)
	}
	if cfg.Root != "rounded" {
		t.Errorf("default root = %q, want rounded", cfg.Root)
	}
}

func TestLoadTrainConfigErrors(t *testing.T) {
	for name, body := range map[string]string{
		"no module":  "span = 40.0\n",
		"no span":    "module = 1.0\n",
		"bad syntax": "module = = 1\n",
	} {
		if _, err := loadTrainConfig(writeConfig(t, body)); err == nil {
			t.Errorf("%s: invalid config accepted", name)
		}
	}
	if _, err := loadTrainConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("missing file accepted")
	}
}

func TestTrainConfigRoundTrip(t *testing.T) {
	cfg, err := loadTrainConfig(writeConfig(t, sampleTrain))
	if err != nil {
		t.Fatal(err)
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatal(err)
	}
	var back trainConfig
	if err := toml.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if back != *cfg {
		t.Errorf("round trip changed config:\nbefore %+v\nafter  %+v", *cfg, back)
	}
}
