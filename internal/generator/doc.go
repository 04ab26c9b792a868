// Package generator produces random passwords and Diceware passphrases for
// new vault items. All randomness comes from the operating system CSPRNG.
package generator
