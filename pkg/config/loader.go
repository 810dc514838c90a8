package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// LoadOption configures a single Load call.
type LoadOption func(*env.Options)

// WithEnvironment makes Load read from vars instead of the process
// environment. A nil map is ignored.
func WithEnvironment(vars map[string]string) LoadOption {
	return func(o *env.Options) {
		if vars != nil {
			o.Environment = vars
		}
	}
}

// WithPrefix prepends prefix to every variable name looked up by Load.
func WithPrefix(prefix string) LoadOption {
	return func(o *env.Options) {
		o.Prefix = prefix
	}
}

// Load parses environment variables into the struct pointed to by v based on
// its `env` field tags.
//
// Unlike a cached loader, every call reads the environment again, so two
// calls made around a change to the environment observe different values.
//
// Example:
//
//	type Knobs struct {
//		Level string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	var k Knobs
//	if err := config.Load(&k); err != nil {
//		// Handle error
//	}
func Load[T any](v *T, opts ...LoadOption) error {
	if v == nil {
		return ErrNilPointer
	}

	var o env.Options
	for _, opt := range opts {
		opt(&o)
	}

	if err := env.ParseWithOptions(v, o); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T, opts ...LoadOption) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}

// LoadEnv loads variables from the given .env files into the process
// environment, falling back to ".env" in the working directory when no file
// is named. Variables already present in the environment are not
// overwritten, and earlier files win over later ones.
func LoadEnv(filenames ...string) error {
	if err := godotenv.Load(filenames...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// OverloadEnv is like LoadEnv but overwrites existing variables, with later
// files winning over earlier ones.
func OverloadEnv(filenames ...string) error {
	if err := godotenv.Overload(filenames...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// MustLoadEnv works like LoadEnv but panics on failure.
func MustLoadEnv(filenames ...string) {
	if err := LoadEnv(filenames...); err != nil {
		panic(fmt.Sprintf("Failed to load env files: %v", err))
	}
}

// ReadEnvFile parses a .env file without touching the process environment.
// The result can be passed to WithEnvironment.
func ReadEnvFile(filename string) (map[string]string, error) {
	vars, err := godotenv.Read(filename)
	if err != nil {
		return nil, errors.Join(ErrLoadingEnvFile, err)
	}
	return vars, nil
}
