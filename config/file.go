package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the YAML config file. Every field is a pointer so
// absent keys keep their built-in defaults.
type fileConfig struct {
	Window struct {
		Width  *int `yaml:"width"`
		Height *int `yaml:"height"`
	} `yaml:"window"`

	Simulation struct {
		BaseX          *float64 `yaml:"base_x"`
		BaseY          *float64 `yaml:"base_y"`
		GroundLevel    *float64 `yaml:"ground_level"`
		TargetX        *float64 `yaml:"target_x"`
		TargetY        *float64 `yaml:"target_y"`
		TargetRadius   *float64 `yaml:"target_radius"`
		StepsPerSecond *float64 `yaml:"steps_per_second"`
		AutoRun        *bool    `yaml:"auto_run"`
	} `yaml:"simulation"`

	Walker struct {
		WalkSpeed *float64 `yaml:"walk_speed"`
	} `yaml:"walker"`

	Snowball struct {
		Radius    *float64 `yaml:"radius"`
		Gravity   *float64 `yaml:"gravity"`
		Standoff  *float64 `yaml:"standoff"`
		TimeScale *float64 `yaml:"time_scale"`
	} `yaml:"snowball"`
}

// LoadFile overlays the YAML file at path onto the built-in defaults.
// A missing file is not an error; a malformed one is.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	setInt(&C.Width, fc.Window.Width)
	setInt(&C.Height, fc.Window.Height)

	setFloat(&Simulation.BaseX, fc.Simulation.BaseX)
	setFloat(&Simulation.BaseY, fc.Simulation.BaseY)
	setFloat(&Simulation.GroundLevel, fc.Simulation.GroundLevel)
	setFloat(&Simulation.TargetX, fc.Simulation.TargetX)
	setFloat(&Simulation.TargetY, fc.Simulation.TargetY)
	setFloat(&Simulation.TargetRadius, fc.Simulation.TargetRadius)
	setFloat(&Simulation.StepsPerSecond, fc.Simulation.StepsPerSecond)
	setBool(&Simulation.AutoRun, fc.Simulation.AutoRun)

	setFloat(&Walker.WalkSpeed, fc.Walker.WalkSpeed)

	setFloat(&Snowball.Radius, fc.Snowball.Radius)
	setFloat(&Snowball.Gravity, fc.Snowball.Gravity)
	setFloat(&Snowball.Standoff, fc.Snowball.Standoff)
	setFloat(&Snowball.TimeScale, fc.Snowball.TimeScale)

	return nil
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

func setFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}
