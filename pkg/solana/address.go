package solana

import (
	"crypto/ed25519"
	"crypto/sha256"
	"math"

	"github.com/jdgcs/ed25519/edwards25519"
	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
)

const (
	maxSeeds      = 16
	maxSeedLength = 32
)

var (
	ErrTooManySeeds          = errors.New("too many seeds")
	ErrMaxSeedLengthExceeded = errors.New("max seed length exceeded")

	ErrInvalidPublicKey = errors.New("invalid public key")

	// ErrNoValidBump indicates every bump seed in [0, 255] produced an on-curve
	// address. It should never happen in practice, but callers must not treat
	// the result as usable.
	ErrNoValidBump = errors.New("unable to find a viable program address bump seed")
)

var (
	programHashCtor = sha256.New
)

// ProgramAddressDeriver hashes and validates a single program address
// candidate.
type ProgramAddressDeriver interface {
	CreateProgramAddress(program ed25519.PublicKey, seeds ...[]byte) (ed25519.PublicKey, error)
}

type defaultDeriver struct{}

// DefaultDeriver derives addresses exactly the way the Solana runtime does.
var DefaultDeriver ProgramAddressDeriver = defaultDeriver{}

func (defaultDeriver) CreateProgramAddress(program ed25519.PublicKey, seeds ...[]byte) (ed25519.PublicKey, error) {
	return CreateProgramAddress(program, seeds...)
}

// CreateProgramAddress mirrors the implementation of the Solana SDK's CreateProgramAddress.
//
// ProgramAddresses are public keys that _do not_ lie on the ed25519 curve to ensure that
// there is no associated private key. In the event that the program and seed parameters
// result in a valid public key, ErrInvalidPublicKey is returned.
//
// Reference: https://github.com/solana-labs/solana/blob/5548e599fe4920b71766e0ad1d121755ce9c63d5/sdk/program/src/pubkey.rs#L158
func CreateProgramAddress(program ed25519.PublicKey, seeds ...[]byte) (ed25519.PublicKey, error) {
	if len(seeds) > maxSeeds {
		return nil, ErrTooManySeeds
	}

	h := programHashCtor()
	for _, s := range seeds {
		if len(s) > maxSeedLength {
			return nil, ErrMaxSeedLengthExceeded
		}

		if _, err := h.Write(s); err != nil {
			return nil, errors.Wrap(err, "failed to hash seed")
		}
	}

	for _, v := range [][]byte{program, []byte("ProgramDerivedAddress")} {
		if _, err := h.Write(v); err != nil {
			return nil, errors.Wrap(err, "failed to hash seed")
		}
	}

	var pub [32]byte
	copy(pub[:], h.Sum(nil))

	// The generated key must _not_ be a valid compressed EdwardsPoint. The
	// group element type in golang.org/x/crypto is internal, so the point
	// decoding from github.com/jdgcs/ed25519 is used instead.
	//
	// Reference: https://github.com/solana-labs/solana/blob/5548e599fe4920b71766e0ad1d121755ce9c63d5/sdk/program/src/pubkey.rs#L182-L187
	if IsOnCurve(pub[:]) {
		return nil, ErrInvalidPublicKey
	}

	return pub[:], nil
}

// IsOnCurve reports whether the 32 byte value decodes to a point on the
// ed25519 curve.
func IsOnCurve(key []byte) bool {
	if len(key) != ed25519.PublicKeySize {
		return false
	}

	var pub [32]byte
	copy(pub[:], key)

	var A edwards25519.ExtendedGroupElement
	return A.FromBytes(&pub)
}

// FindProgramAddressAndBump mirrors the implementation of the Solana SDK's
// FindProgramAddress. It returns the address and bump seed.
//
// Bumps are tried from 255 down to 0. The first off-curve candidate wins.
//
// Reference: https://github.com/solana-labs/solana/blob/5548e599fe4920b71766e0ad1d121755ce9c63d5/sdk/program/src/pubkey.rs#L234
func FindProgramAddressAndBump(program ed25519.PublicKey, seeds ...[]byte) (ed25519.PublicKey, uint8, error) {
	return FindProgramAddressAndBumpWith(DefaultDeriver, program, seeds...)
}

// FindProgramAddressAndBumpWith is FindProgramAddressAndBump using the provided
// deriver to evaluate each candidate.
func FindProgramAddressAndBumpWith(deriver ProgramAddressDeriver, program ed25519.PublicKey, seeds ...[]byte) (ed25519.PublicKey, uint8, error) {
	withBump := make([][]byte, len(seeds)+1)
	copy(withBump, seeds)

	for bump := math.MaxUint8; bump >= 0; bump-- {
		withBump[len(seeds)] = []byte{uint8(bump)}

		pub, err := deriver.CreateProgramAddress(program, withBump...)
		if err == nil {
			return pub, uint8(bump), nil
		}
		if err != ErrInvalidPublicKey {
			return nil, 0, err
		}
	}

	return nil, 0, ErrNoValidBump
}

// FindProgramAddress mirrors the implementation of the Solana SDK's FindProgramAddress.
// It only returns the address.
//
// Reference: https://github.com/solana-labs/solana/blob/5548e599fe4920b71766e0ad1d121755ce9c63d5/sdk/program/src/pubkey.rs#L234
func FindProgramAddress(program ed25519.PublicKey, seeds ...[]byte) (ed25519.PublicKey, error) {
	pub, _, err := FindProgramAddressAndBump(program, seeds...)
	return pub, err
}

// ParsePublicKey decodes a base58 encoded address, which must be exactly 32
// bytes once decoded.
func ParsePublicKey(value string) (ed25519.PublicKey, error) {
	decoded, err := base58.Decode(value)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidPublicKey, "invalid base58 encoding: %v", err)
	}
	if len(decoded) != ed25519.PublicKeySize {
		return nil, errors.Wrapf(ErrInvalidPublicKey, "invalid length: %d", len(decoded))
	}
	return decoded, nil
}

// MustParsePublicKey is ParsePublicKey for well-known constants. It panics on
// invalid input.
func MustParsePublicKey(value string) ed25519.PublicKey {
	pub, err := ParsePublicKey(value)
	if err != nil {
		panic(err)
	}
	return pub
}
