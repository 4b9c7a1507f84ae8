package classifier

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

//go:embed config.yaml
var defaultConfig []byte

const (
	ScoreDirect     = "direct"
	ScoreDifference = "difference"
)

type Config struct {
	LogLevel string
	Modes    map[string]Mode
}

// Mode describes one prompt sequence: what to ask, which table to classify
// against and how to print the result.
type Mode struct {
	Title         string
	Intro         string
	NamePrompt    string
	Greeting      string
	EmptyName     string
	Stats         []StatField
	MenuTitle     string
	Options       []Option
	InvalidOption string
	Table         string
	Score         string
	Result        string
}

type StatField struct {
	Label  string
	Prompt string
}

type Option struct {
	Choice int
	Label  string
}

// LoadConfig reads the embedded defaults, letting TIERANK_* environment
// variables override scalar settings such as TIERANK_LOG_LEVEL.
func LoadConfig() (Config, error) {
	var config Config

	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(bytes.NewReader(defaultConfig)); err != nil {
		return config, fmt.Errorf("fatal error config file: %w", err)
	}
	v.SetEnvPrefix("TIERANK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	config.LogLevel = v.GetString("Log.Level")
	if err := v.UnmarshalKey("Modes", &config.Modes); err != nil {
		return config, fmt.Errorf("fatal error config file: %w", err)
	}
	for name, mode := range config.Modes {
		if err := mode.validate(); err != nil {
			return config, fmt.Errorf("mode %s: %w", name, err)
		}
	}
	return config, nil
}

func (m Mode) validate() error {
	if len(m.Options) == 0 {
		return ErrNoOptions
	}
	switch m.Score {
	case ScoreDirect:
		if len(m.Stats) < 1 {
			return fmt.Errorf("%w: %s needs one stat", ErrInvalidScore, m.Score)
		}
	case ScoreDifference:
		if len(m.Stats) < 2 {
			return fmt.Errorf("%w: %s needs two stats", ErrInvalidScore, m.Score)
		}
	default:
		return fmt.Errorf("%w: %q", ErrInvalidScore, m.Score)
	}
	return nil
}
