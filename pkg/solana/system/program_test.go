package system

import (
	"crypto/ed25519"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgramKeys(t *testing.T) {
	assert.Equal(t, make(ed25519.PublicKey, ed25519.PublicKeySize), ProgramKey)
	assert.Len(t, RentSysVar, ed25519.PublicKeySize)
	assert.NotEqual(t, ProgramKey, RentSysVar)
}
