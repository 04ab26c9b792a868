package service

import (
	"bytes"
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
)

// testKey builds a key from a repeated byte so tests never pay for a KDF run.
func testKey(t *testing.T, fill byte) *crypto.Key {
	t.Helper()
	key, err := crypto.ImportKey(bytes.Repeat([]byte{fill}, crypto.KeySize))
	require.NoError(t, err)
	return key
}

// fastKDF returns a real KDF tuned to the configured minimum so tests stay fast.
func fastKDF(t *testing.T) crypto.KeyDerivationService {
	t.Helper()
	kdf, err := crypto.NewKeyDerivationService(crypto.KDFParams{Algorithm: crypto.KDFPBKDF2SHA256, Iterations: 1000})
	require.NoError(t, err)
	return kdf
}

func fixedClock(ts time.Time) func() time.Time {
	return func() time.Time { return ts }
}

func base64Decode(s string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(s)
}

func base64Encode(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}
