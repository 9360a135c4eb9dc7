package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Command       string // subcommand to dispatch
	ManifestsPath string // hcl registry declarations, optional

	LogFormat string
	LogLevel  string
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.Command == "" {
		return nil, errors.New("Command is a required configuration field and cannot be empty")
	}

	return &cfg, nil
}
