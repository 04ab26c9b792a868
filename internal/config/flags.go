package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"time"
)

// kdfName holds a KDF algorithm name and only accepts supported values.
// It implements the flag.Value interface.
type kdfName string

// String returns the algorithm name.
func (k *kdfName) String() string {
	return string(*k)
}

// Set accepts "pbkdf2-sha256" or "argon2id".
func (k *kdfName) Set(s string) error {
	switch s {
	case KDFPBKDF2SHA256, KDFArgon2id:
		*k = kdfName(s)
		return nil
	default:
		return fmt.Errorf("unsupported kdf %q: want %s or %s", s, KDFPBKDF2SHA256, KDFArgon2id)
	}
}

// uint8Value is a flag.Value for small counters such as thread counts.
type uint8Value uint8

func (u *uint8Value) String() string {
	return strconv.FormatUint(uint64(*u), 10)
}

func (u *uint8Value) Set(s string) error {
	v, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return errors.New("need an integer between 0 and 255")
	}
	*u = uint8Value(v)
	return nil
}

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-d database DSN (SQLite path or postgres:// URL)
//	-salt-driver salt store driver (sqlite, bolt, memory)
//	-salt-path bbolt salt file path
//	-salt-open-timeout bbolt lock wait (e.g., "5s")
//	-kdf key derivation algorithm (pbkdf2-sha256, argon2id)
//	-kdf-iterations PBKDF2 iteration count
//	-argon-time argon2id time cost
//	-argon-memory argon2id memory cost in KiB
//	-argon-threads argon2id parallelism
//	-user vault user id
//	-log log file path
//	-decrypt-workers parallel decryption limit
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	var databaseDSN string
	var saltDriver, saltPath string
	var saltOpenTimeout time.Duration
	var kdf kdfName
	var kdfIterations int
	var argonTime, argonMemory uint
	var argonThreads uint8Value
	var userID string
	var logPath string
	var decryptWorkers int
	var jsonConfigPath string

	fs := flag.NewFlagSet("vault", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&saltDriver, "salt-driver", "", "Salt store driver: sqlite, bolt or memory")
	fs.StringVar(&saltPath, "salt-path", "", "Salt store bbolt file path")
	fs.DurationVar(&saltOpenTimeout, "salt-open-timeout", 0, "Salt store open timeout (e.g., 5s)")
	fs.Var(&kdf, "kdf", "Key derivation algorithm: pbkdf2-sha256 or argon2id")
	fs.IntVar(&kdfIterations, "kdf-iterations", 0, "PBKDF2 iteration count")
	fs.UintVar(&argonTime, "argon-time", 0, "Argon2id time cost")
	fs.UintVar(&argonMemory, "argon-memory", 0, "Argon2id memory cost in KiB")
	fs.Var(&argonThreads, "argon-threads", "Argon2id parallelism")
	fs.StringVar(&userID, "user", "", "Vault user id")
	fs.StringVar(&logPath, "log", "", "Log file path")
	fs.IntVar(&decryptWorkers, "decrypt-workers", 0, "Parallel decryption limit")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			KDF: KDF{
				Algorithm:      string(kdf),
				Iterations:     kdfIterations,
				ArgonTime:      uint32(argonTime),
				ArgonMemoryKiB: uint32(argonMemory),
				ArgonThreads:   uint8(argonThreads),
			},
			UserID:  userID,
			LogPath: logPath,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Salt: Salt{
				Driver:      saltDriver,
				Path:        saltPath,
				OpenTimeout: saltOpenTimeout,
			},
		},
		Workers:      Workers{DecryptConcurrency: decryptWorkers},
		JSONFilePath: jsonConfigPath,
	}, nil
}
