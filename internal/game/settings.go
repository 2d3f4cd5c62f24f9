package game

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	FrontendDesktop  = "desktop"
	FrontendTerminal = "terminal"
)

// SeedEnv overrides the random seed when set.
const SeedEnv = "CONQUEST_SEED"

// Settings are the runtime knobs that do not change the rules: which frontend
// to open, how it looks, and the random seed. Grid size and bot count are
// fixed in config.go.
type Settings struct {
	Frontend string           `yaml:"frontend"`
	Seed     uint64           `yaml:"seed"` // 0 = seed from the clock
	Window   WindowSettings   `yaml:"window"`
	Terminal TerminalSettings `yaml:"terminal"`
	Colors   ColorSettings    `yaml:"colors"`
}

type WindowSettings struct {
	Title    string `yaml:"title"`
	Density  int    `yaml:"density"` // screen pixels per cell
	VSync    bool   `yaml:"vsync"`
	Floating bool   `yaml:"floating"`
}

type TerminalSettings struct {
	FrameMs int `yaml:"frame_ms"`
}

// ColorSettings hold #rrggbb overrides; empty keeps the default palette entry.
type ColorSettings struct {
	Conquered string `yaml:"conquered"`
	Void      string `yaml:"void"`
	Human     string `yaml:"human"`
	Bot       string `yaml:"bot"`
	Border    string `yaml:"border"`
}

func DefaultSettings() Settings {
	return Settings{
		Frontend: FrontendDesktop,
		Window: WindowSettings{
			Title:   "Conquest",
			Density: DefaultDensity,
		},
		Terminal: TerminalSettings{
			FrameMs: 33,
		},
	}
}

// LoadSettings reads a YAML settings file over the defaults. An empty path
// returns the defaults. Unknown keys are rejected.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	if path == "" {
		return s, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("read settings: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return s, fmt.Errorf("parse settings %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return s, fmt.Errorf("settings %s: %w", path, err)
	}
	return s, nil
}

// ApplyEnv applies environment overrides using getenv (os.Getenv in production).
func (s *Settings) ApplyEnv(getenv func(string) string) error {
	v := getenv(SeedEnv)
	if v == "" {
		return nil
	}
	seed, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return fmt.Errorf("%s: %w", SeedEnv, err)
	}
	s.Seed = seed
	return nil
}

func (s *Settings) Validate() error {
	switch s.Frontend {
	case FrontendDesktop, FrontendTerminal:
	default:
		return fmt.Errorf("unknown frontend %q", s.Frontend)
	}
	if s.Window.Density < 1 || s.Window.Density > MaxDensity {
		return fmt.Errorf("window density %d outside 1..%d", s.Window.Density, MaxDensity)
	}
	if s.Terminal.FrameMs < 1 {
		return fmt.Errorf("terminal frame_ms %d must be positive", s.Terminal.FrameMs)
	}
	_, err := s.ResolveColors()
	return err
}

// ResolveColors merges the colour overrides into the default palette.
func (s *Settings) ResolveColors() (Colors, error) {
	pal := Palette
	for _, o := range []struct {
		name string
		hex  string
		dst  *RGB
	}{
		{"conquered", s.Colors.Conquered, &pal.Conquered},
		{"void", s.Colors.Void, &pal.Void},
		{"human", s.Colors.Human, &pal.Human},
		{"bot", s.Colors.Bot, &pal.Bot},
		{"border", s.Colors.Border, &pal.Border},
	} {
		if o.hex == "" {
			continue
		}
		c, err := ParseHex(o.hex)
		if err != nil {
			return pal, fmt.Errorf("colors.%s: %w", o.name, err)
		}
		*o.dst = c
	}
	return pal, nil
}
