// seehuhn.de/go/semicircle - elliptical wedges and arcs
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package scene

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// Settings holds the defaults of the command line tool.  Each field can be
// overridden by an environment variable with prefix SEMICIRCLE_.
type Settings struct {
	ClickTolerance float64 `envconfig:"CLICK_TOLERANCE" default:"3"`
	LogLevel       string  `envconfig:"LOG_LEVEL" default:"info"`
	Width          int     `envconfig:"WIDTH" default:"256"`
	Height         int     `envconfig:"HEIGHT" default:"256"`
}

// LoadSettings reads the settings from the environment.
func LoadSettings() (*Settings, error) {
	var s Settings
	if err := envconfig.Process("semicircle", &s); err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}
	if s.Width <= 0 || s.Height <= 0 {
		return nil, fmt.Errorf("invalid default size %dx%d", s.Width, s.Height)
	}
	return &s, nil
}

// Level converts LogLevel to a slog level.
func (s *Settings) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s.LogLevel))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", s.LogLevel, err)
	}
	return level, nil
}
