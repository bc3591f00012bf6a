package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/snowcatcher/components"
	cfg "github.com/automoto/snowcatcher/config"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	LastMode string `json:"lastMode"`
	AutoRun  bool   `json:"autoRun"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "snowcatcher",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if data == nil {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// SaveLastMode records the scenario the player picked, along with the
// current auto-run preference if a simulation is live.
func SaveLastMode(e *ecs.ECS, mode string) {
	settings := &SavedSettings{
		LastMode: mode,
		AutoRun:  cfg.Simulation.AutoRun,
	}
	if simEntry, ok := components.Simulation.First(e.World); ok {
		settings.AutoRun = components.Simulation.Get(simEntry).AutoRun
	}
	_ = SaveSettings(settings)
}

// ApplySavedSettings applies loaded settings before the first scene runs
func ApplySavedSettings(saved *SavedSettings) {
	if saved == nil {
		return
	}
	cfg.Simulation.AutoRun = saved.AutoRun
}
