// Package config loads the server configuration from the environment.
package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds everything tunable from the environment. Defaults are safe
// for local development.
type Config struct {
	// Addr is the listen address of the HTTP server.
	Addr string `envconfig:"ADDR" default:":8080"`

	ReadTimeout  time.Duration `envconfig:"READ_TIMEOUT" default:"10s"`
	WriteTimeout time.Duration `envconfig:"WRITE_TIMEOUT" default:"10s"`

	// WaitingRoomTTL bounds how long an unmatched room stays matchable
	// before its creator is told to retry. Zero disables expiry.
	WaitingRoomTTL time.Duration `envconfig:"WAITING_ROOM_TTL" default:"2m"`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
