// Package rules holds the tunable ruleset of a game and loads it from YAML.
package rules

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"hexwar/hex"
	"hexwar/meta"
)

type Ruleset struct {
	Board   Board   `yaml:"board" json:"board"`
	Capture Capture `yaml:"capture" json:"capture"`
	Economy Economy `yaml:"economy" json:"economy"`
}

type Board struct {
	Radius          int     `yaml:"radius" json:"radius"`
	HexSize         float64 `yaml:"hex_size" json:"hex_size"`
	HexGap          float64 `yaml:"hex_gap" json:"hex_gap"`
	BackgroundScale float64 `yaml:"background_scale" json:"background_scale"`
}

type Capture struct {
	Threshold int `yaml:"threshold" json:"threshold"`
}

type Economy struct {
	StartingCoins int `yaml:"starting_coins" json:"starting_coins"`
	Stipend       int `yaml:"stipend" json:"stipend"`
	TileIncome    int `yaml:"tile_income" json:"tile_income"`
}

// Default returns the reference ruleset.
func Default() Ruleset {
	return Ruleset{
		Board: Board{
			Radius:          meta.BOARD_RADIUS,
			HexSize:         meta.HEX_SIZE,
			HexGap:          meta.HEX_GAP,
			BackgroundScale: meta.BACKGROUND_HEX_SCALE,
		},
		Capture: Capture{
			Threshold: meta.CAPTURE_THRESHOLD,
		},
		Economy: Economy{
			StartingCoins: meta.STARTING_COINS,
			Stipend:       meta.STIPEND,
			TileIncome:    meta.TILE_INCOME,
		},
	}
}

// Layout returns the pixel layout for this ruleset's hexes.
func (r Ruleset) Layout() hex.Layout {
	return hex.Layout{Size: r.Board.HexSize, Gap: r.Board.HexGap}
}

// Load reads a ruleset file. Keys missing from the file keep their defaults.
func Load(path string) (Ruleset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Ruleset{}, err
	}
	r, err := Parse(raw)
	if err != nil {
		return Ruleset{}, fmt.Errorf("ruleset %s: %w", path, err)
	}
	return r, nil
}

// Parse validates a YAML document against the ruleset schema and decodes it over the defaults.
func Parse(raw []byte) (Ruleset, error) {
	r := Default()
	if len(bytes.TrimSpace(raw)) == 0 {
		return r, nil
	}

	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return r, err
	}
	if err := validate(doc); err != nil {
		return r, err
	}
	if err := yaml.Unmarshal(raw, &r); err != nil {
		return r, err
	}
	return r, nil
}

var compiled *jsonschema.Schema

func init() {
	compiled = jsonschema.MustCompileString("ruleset.schema.json", schema)
}

func validate(doc any) error {
	// The validator expects JSON-decoded values, so round-trip through encoding/json.
	b, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	if err := compiled.Validate(v); err != nil {
		var ve *jsonschema.ValidationError
		if errors.As(err, &ve) {
			return fmt.Errorf("invalid ruleset: %s", ve.Error())
		}
		return err
	}
	return nil
}
