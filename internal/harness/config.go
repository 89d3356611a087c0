package harness

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every launch configuration problem.
var ErrInvalidConfig = errors.New("invalid launch config")

// LaunchConfig describes how the browser and the server under test are started.
type LaunchConfig struct {
	Headless bool          `yaml:"headless"`
	Devtools bool          `yaml:"devtools"`
	SlowMo   time.Duration `yaml:"slow_mo" validate:"gte=0"`
	Timeout  time.Duration `yaml:"timeout" validate:"gt=0"`
	Args     []string      `yaml:"args" validate:"dive,startswith=--"`
	Viewport Viewport      `yaml:"viewport"`
	Server   ServerConfig  `yaml:"server"`
}

type Viewport struct {
	Width             int     `yaml:"width" validate:"gt=0"`
	Height            int     `yaml:"height" validate:"gt=0"`
	DeviceScaleFactor float64 `yaml:"device_scale_factor" validate:"gt=0"`
	HasTouch          bool    `yaml:"has_touch"`
	IsLandscape       bool    `yaml:"is_landscape"`
	IsMobile          bool    `yaml:"is_mobile"`
}

// ServerConfig is the test server descriptor.
type ServerConfig struct {
	Command       string            `yaml:"command" validate:"required"`
	Port          int               `yaml:"port" validate:"min=1,max=65535"`
	LaunchTimeout time.Duration     `yaml:"launch_timeout" validate:"gt=0"`
	ReadyDelay    time.Duration     `yaml:"ready_delay" validate:"gte=0"`
	Env           map[string]string `yaml:"env"`
}

// URL is the base address of the server under test.
func (s ServerConfig) URL() string {
	return "http://localhost:" + strconv.Itoa(s.Port)
}

// DefaultArgs are the Chromium flags every run gets: no sandbox (CI
// containers) and font settings so Hangul renders consistently in screenshots.
var DefaultArgs = []string{
	"--no-sandbox",
	"--disable-setuid-sandbox",
	"--disable-dev-shm-usage",
	"--font-render-hinting=none",
	"--lang=ko-KR",
}

// DefaultLaunchConfig returns the static configuration. On CI the browser is
// headless and runs at full speed; locally it is visible, slowed down, with
// devtools open.
func DefaultLaunchConfig(ci bool) LaunchConfig {
	cfg := LaunchConfig{
		Headless: ci,
		Devtools: !ci,
		Timeout:  30 * time.Second,
		Args:     append([]string(nil), DefaultArgs...),
		Viewport: Viewport{
			Width:             1280,
			Height:            720,
			DeviceScaleFactor: 1,
			HasTouch:          false,
			IsLandscape:       true,
			IsMobile:          false,
		},
		Server: ServerConfig{
			Command:       "go run ./cmd/gamjatokki serve",
			Port:          3000,
			LaunchTimeout: 30 * time.Second,
			ReadyDelay:    3 * time.Second,
			Env:           map[string]string{"APP_ENV": "test"},
		},
	}
	if !ci {
		cfg.SlowMo = 50 * time.Millisecond
	}
	return cfg
}

// IsCI reports whether the CI environment flag is set.
func IsCI() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("CI")))
	return v != "" && v != "0" && v != "false"
}

// LoadLaunchConfig starts from DefaultLaunchConfig(ci) and overlays the YAML
// file at path, if any. An empty path or a missing file yields the defaults.
func LoadLaunchConfig(path string, ci bool) (LaunchConfig, error) {
	cfg := DefaultLaunchConfig(ci)
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return LaunchConfig{}, fmt.Errorf("read launch config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return LaunchConfig{}, fmt.Errorf("%w: parse %s: %v", ErrInvalidConfig, path, err)
			}
		}
	}
	if err := cfg.Validate(); err != nil {
		return LaunchConfig{}, err
	}
	return cfg, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field constraints and reports the first violation.
func (c LaunchConfig) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		fe := ves[0]
		return fmt.Errorf("%w: %s failed validation for tag '%s'", ErrInvalidConfig, fieldName(fe), fe.Tag())
	}
	return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
}

// Marshal renders the configuration as YAML.
func (c LaunchConfig) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

func fieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, p := range parts {
		parts[i] = strings.ToLower(p)
	}
	return strings.Join(parts, ".")
}
