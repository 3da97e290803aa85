package token

import (
	"crypto/ed25519"
	"encoding/binary"
)

type AccountState byte

const (
	AccountStateUninitialized AccountState = iota
	AccountStateInitialized
	AccountStateFrozen
)

// Reference: https://github.com/solana-labs/solana-program-library/blob/11b1e3eefdd4e523768d63f7c70a7aa391ea0d02/token/program/src/state.rs#L125
const AccountSize = 165

const optionSize = 4

type Account struct {
	// The mint associated with this account
	Mint ed25519.PublicKey
	// The owner of this account.
	Owner ed25519.PublicKey
	// The amount of tokens this account holds.
	Amount uint64
	// If set, then the 'DelegatedAmount' represents the amount
	// authorized by the delegate.
	Delegate ed25519.PublicKey
	// The account's state
	State AccountState
	// If set, this is a native token, and the value logs the rent-exempt reserve.
	IsNative *uint64
	// The amount delegated
	DelegatedAmount uint64
	// Optional authority to close the account.
	CloseAuthority ed25519.PublicKey
}

// Unmarshal decodes the packed SPL token account layout.
func (a *Account) Unmarshal(b []byte) bool {
	if len(b) != AccountSize {
		return false
	}

	r := reader{b: b}
	a.Mint = r.readKey()
	a.Owner = r.readKey()
	a.Amount = r.readUint64()
	a.Delegate = r.readOptionalKey()
	a.State = AccountState(r.readByte())
	a.IsNative = r.readOptionalUint64()
	a.DelegatedAmount = r.readUint64()
	a.CloseAuthority = r.readOptionalKey()

	return true
}

// reader walks a fixed size buffer. Callers validate the total length up front.
type reader struct {
	b      []byte
	offset int
}

func (r *reader) readKey() ed25519.PublicKey {
	key := make(ed25519.PublicKey, ed25519.PublicKeySize)
	copy(key, r.b[r.offset:])
	r.offset += ed25519.PublicKeySize
	return key
}

func (r *reader) readOptionalKey() ed25519.PublicKey {
	present := r.b[r.offset] == 1
	r.offset += optionSize
	if !present {
		r.offset += ed25519.PublicKeySize
		return nil
	}
	return r.readKey()
}

func (r *reader) readUint64() uint64 {
	v := binary.LittleEndian.Uint64(r.b[r.offset:])
	r.offset += 8
	return v
}

func (r *reader) readOptionalUint64() *uint64 {
	present := r.b[r.offset] == 1
	r.offset += optionSize
	v := r.readUint64()
	if !present {
		return nil
	}
	return &v
}

func (r *reader) readByte() byte {
	v := r.b[r.offset]
	r.offset++
	return v
}
