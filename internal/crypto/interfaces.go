package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// KeyDerivationService turns a master password into a vault key.
// It knows nothing about users, storage or the network.
//
// Unlock sequence driven by the caller:
//
//	salt = stored salt, or GenerateSalt() persisted first   (step 1)
//	key  = DeriveKey(masterPassword, salt)                   (step 2)
type KeyDerivationService interface {
	// GenerateSalt returns SaltSize random bytes from the CSPRNG.
	// The salt is not secret. It only has to be unique per user.
	GenerateSalt() ([]byte, error)

	// DeriveKey stretches masterPassword with salt into a KeySize-byte key.
	// Identical inputs always produce identical keys; this is the whole
	// unlock mechanism, so the parameter set is fixed per deployment.
	DeriveKey(masterPassword string, salt []byte) (*Key, error)
}

// Cipher encrypts and decrypts individual vault fields.
type Cipher interface {
	// Encrypt seals plaintext under key with a fresh nonce and returns the
	// base64 envelope nonce ‖ ciphertext ‖ tag.
	Encrypt(plaintext string, key *Key) (string, error)

	// Decrypt opens an envelope produced by Encrypt. It fails with
	// ErrDecryption (or its subtype ErrMalformedEnvelope) and never returns
	// wrong plaintext.
	Decrypt(envelope string, key *Key) (string, error)
}
