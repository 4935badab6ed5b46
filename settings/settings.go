package settings

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/oomph-ac/tickmove/game"
	"github.com/oomph-ac/tickmove/movement"
	"github.com/oomph-ac/tickmove/oerror"
	"github.com/oomph-ac/tickmove/simulation"
	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

// Settings contains everything that can be configured for a simulation.
type Settings struct {
	Movement   movement.Config `yaml:"movement" toml:"Movement"`
	Simulation struct {
		// HistorySize is the number of tick results kept per replica. Zero uses the default.
		HistorySize int `yaml:"history_size" toml:"HistorySize"`
		// Debug enables the per-stage trace of every tick.
		Debug bool `yaml:"debug" toml:"Debug"`
		// Workers is the number of goroutines stepping replicas. Zero uses one per CPU.
		Workers int `yaml:"workers" toml:"Workers"`
	} `yaml:"simulation" toml:"Simulation"`
	Probe struct {
		Radius float32        `yaml:"radius" toml:"Radius"`
		Layer  movement.Layer `yaml:"layer" toml:"Layer"`
	} `yaml:"probe" toml:"Probe"`
}

// DefaultSettings returns the default settings.
func DefaultSettings() Settings {
	s := Settings{Movement: movement.DefaultConfig()}
	s.Simulation.HistorySize = simulation.DefaultHistorySize
	s.Probe.Radius = game.DefaultGroundProbeRadius
	s.Probe.Layer = movement.LayerDefault
	return s
}

// Validate returns an error describing the first invalid setting.
func (s Settings) Validate() error {
	if err := s.Movement.Validate(); err != nil {
		return oerror.Wrap(err, "invalid movement settings")
	}
	if s.Simulation.HistorySize < 0 {
		return oerror.New("simulation history size must not be negative, got %d", s.Simulation.HistorySize)
	}
	if s.Simulation.Workers < 0 {
		return oerror.New("simulation workers must not be negative, got %d", s.Simulation.Workers)
	}
	if !game.Finite(s.Probe.Radius) || s.Probe.Radius < 0 {
		return oerror.New("probe radius must be finite and not negative, got %v", s.Probe.Radius)
	}
	return nil
}

// GroundProbe returns a ground probe configured by the probe settings.
func (s Settings) GroundProbe(q movement.GroundQuery) *movement.GroundProbe {
	probe := movement.NewGroundProbe(q)
	probe.Radius = s.Probe.Radius
	if s.Probe.Layer != "" {
		probe.Layer = s.Probe.Layer
	}
	return probe
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// SaveDefault will create and save the default settings file, encoded as YAML if path ends in .yaml or .yml
// and as TOML otherwise. If the file already exists, it will return an error.
func SaveDefault(path string) error {
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		return oerror.New("settings file %s already exists", path)
	}

	s := DefaultSettings()
	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(s)
	} else {
		data, err = toml.Marshal(s)
	}
	if err != nil {
		return oerror.Wrap(err, "failed encoding default settings")
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return oerror.Wrap(err, "failed creating settings file")
	}
	return nil
}

// Load will load and validate the settings from your settings file, and return an error if the file does
// not exist. The file is decoded as YAML if path ends in .yaml or .yml and as TOML otherwise.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Settings{}, oerror.New("settings file %s doesn't exist", path)
	} else if err != nil {
		return Settings{}, oerror.Wrap(err, "error reading settings")
	}

	s := DefaultSettings()
	if isYAML(path) {
		err = yaml.Unmarshal(data, &s)
	} else {
		err = toml.Unmarshal(data, &s)
	}
	if err != nil {
		return Settings{}, oerror.Wrap(err, "error decoding settings")
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}
