package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Sensor kinds understood by the front-ends.
const (
	SensorNone    = "none"
	SensorBNO055  = "bno055"
	SensorMPU9250 = "mpu9250"
)

// SensorSettings selects and addresses the orientation sensor.
type SensorSettings struct {
	Kind    string `yaml:"kind"`
	I2CBus  string `yaml:"i2c_bus"`
	I2CAddr uint16 `yaml:"i2c_addr"`
	SPIDev  string `yaml:"spi_dev"`
	CSPin   string `yaml:"cs_pin"`
}

// MotorSettings selects the haptic output. An empty Pin with Buzzer set
// emulates the vibration motor through the speaker.
type MotorSettings struct {
	Pin    string `yaml:"pin"`
	Buzzer bool   `yaml:"buzzer"`
}

// Settings is the runtime device configuration loaded from YAML.
type Settings struct {
	Sensor SensorSettings `yaml:"sensor"`
	Motor  MotorSettings  `yaml:"motor"`
	Web    struct {
		Addr   string `yaml:"addr"`
		Static string `yaml:"static"`
	} `yaml:"web"`
	Record struct {
		Enabled bool   `yaml:"enabled"`
		Dir     string `yaml:"dir"`
	} `yaml:"record"`
	// Seed for food placement. Zero picks one from the clock.
	Seed uint64 `yaml:"seed"`
}

// DefaultSettings returns the settings used when no file is present.
func DefaultSettings() *Settings {
	s := &Settings{
		Sensor: SensorSettings{
			Kind:    SensorNone,
			I2CAddr: 0x29, // BNO055 with ADR pulled high, as on the badge
			SPIDev:  "/dev/spidev0.0",
			CSPin:   "8",
		},
		Motor: MotorSettings{Buzzer: true},
	}
	s.Web.Addr = ":8080"
	s.Web.Static = "web/static"
	s.Record.Dir = "records"
	return s
}

// LoadSettings reads path over the defaults. A missing file is not an error.
func LoadSettings(path string) (*Settings, error) {
	s := DefaultSettings()
	if path == "" {
		return s, nil
	}
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}
	if err := yaml.Unmarshal(b, s); err != nil {
		return nil, fmt.Errorf("parse settings %s: %w", path, err)
	}
	switch s.Sensor.Kind {
	case SensorNone, SensorBNO055, SensorMPU9250:
	case "":
		s.Sensor.Kind = SensorNone
	default:
		return nil, fmt.Errorf("unknown sensor kind %q", s.Sensor.Kind)
	}
	return s, nil
}
