// Package config loads typed configuration from environment variables.
//
// Structs are described with github.com/caarlos0/env tags:
//
//	type Config struct {
//	    Lang  string `env:"LANG" envDefault:"en"`
//	    Table string `env:"TABLE"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, config.WithPrefix("CARDCHECK_")); err != nil {
//	    return err
//	}
//
// Before the first parse, .env files are loaded with github.com/joho/godotenv.
// Files that do not exist are skipped and variables already present in the
// process environment are never overridden.
//
// Each struct type is parsed once per process; later calls for the same type
// return the cached value. Use Reset in tests to start over.
package config
