package config

import (
	"errors"
	"fmt"
	"os/user"
	"runtime"
	"time"

	"dario.cat/mergo"
)

// Built-in defaults, applied after every other source.
const (
	defaultKDFAlgorithm    = "pbkdf2-sha256"
	defaultKDFIterations   = 100_000
	defaultArgonTime       = 1
	defaultArgonMemoryKiB  = 64 * 1024
	defaultArgonThreads    = 4
	defaultDSN             = "vault.db"
	defaultSaltDriver      = SaltDriverSQLite
	defaultSaltPath        = "salts.bolt"
	defaultSaltOpenTimeout = 10 * time.Second
	fallbackUserID         = "local"
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, config.validate()
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flags, err := parseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flags)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	if b.err != nil {
		return b
	}

	var jsonPath string
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append(b.configs, jsonCfg)

	return b
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, &StructuredConfig{
		App: App{
			KDF: KDF{
				Algorithm:      defaultKDFAlgorithm,
				Iterations:     defaultKDFIterations,
				ArgonTime:      defaultArgonTime,
				ArgonMemoryKiB: defaultArgonMemoryKiB,
				ArgonThreads:   defaultArgonThreads,
			},
			UserID: currentUserID(),
		},
		Storage: Storage{
			DB: DB{DSN: defaultDSN},
			Salt: Salt{
				Driver:      defaultSaltDriver,
				Path:        defaultSaltPath,
				OpenTimeout: defaultSaltOpenTimeout,
			},
		},
		Workers: Workers{DecryptConcurrency: runtime.NumCPU()},
	})

	return b
}

// currentUserID returns the OS login name, which is stable across runs on
// the same machine.
func currentUserID() string {
	u, err := user.Current()
	if err != nil || u.Username == "" {
		return fallbackUserID
	}
	return u.Username
}
