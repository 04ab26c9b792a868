package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		KDF struct {
			Algorithm      string `json:"algorithm"`
			Iterations     int    `json:"iterations"`
			ArgonTime      uint32 `json:"argon_time"`
			ArgonMemoryKiB uint32 `json:"argon_memory_kib"`
			ArgonThreads   uint8  `json:"argon_threads"`
		} `json:"kdf,omitempty"`
		UserID  string `json:"user_id"`
		LogPath string `json:"log_path"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Salt struct {
			Driver      string   `json:"driver"`
			Path        string   `json:"path"`
			OpenTimeout Duration `json:"open_timeout"`
		} `json:"salt,omitempty"`
	} `json:"storage,omitempty"`

	Workers struct {
		DecryptConcurrency int `json:"decrypt_concurrency"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			KDF: KDF{
				Algorithm:      jsonCfg.App.KDF.Algorithm,
				Iterations:     jsonCfg.App.KDF.Iterations,
				ArgonTime:      jsonCfg.App.KDF.ArgonTime,
				ArgonMemoryKiB: jsonCfg.App.KDF.ArgonMemoryKiB,
				ArgonThreads:   jsonCfg.App.KDF.ArgonThreads,
			},
			UserID:  jsonCfg.App.UserID,
			LogPath: jsonCfg.App.LogPath,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Salt: Salt{
				Driver:      jsonCfg.Storage.Salt.Driver,
				Path:        jsonCfg.Storage.Salt.Path,
				OpenTimeout: time.Duration(jsonCfg.Storage.Salt.OpenTimeout),
			},
		},
		Workers: Workers{
			DecryptConcurrency: jsonCfg.Workers.DecryptConcurrency,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
