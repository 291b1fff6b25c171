package config

import "time"

// Hopfile represents the structure of the hop.yaml configuration file.
// Fields left out of the file keep their default values.
type Hopfile struct {
	API APIConfig `yaml:"api"`
}

// APIConfig configures access to the transit API.
type APIConfig struct {
	BaseURL     string        `yaml:"baseURL" validate:"omitempty,url"`
	Key         string        `yaml:"key"`
	RouteTypes  []int         `yaml:"routeTypes" validate:"omitempty,dive,min=0,max=4"`
	Timeout     time.Duration `yaml:"timeout" validate:"gte=0"`
	Retries     *int          `yaml:"retries" validate:"omitempty,min=0,max=10"`
	Concurrency *int          `yaml:"concurrency" validate:"omitempty,min=1,max=32"`
}
