package config

import "go.uber.org/fx"

// Module provides *Config parsed from flags and environment.
var Module = fx.Provide(Load)
