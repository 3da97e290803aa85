// Package gateway derives the Civic gateway program accounts that gate
// access to a mint.
package gateway

import (
	"github.com/code-payments/candy-machine/pkg/solana"
)

// ProgramKey is the address of the gateway program.
var ProgramKey = solana.MustParsePublicKey("gatem74V238djXdzWnJf94Wo1DcnuGkfijbf3AuBhfs")

// DefaultNetwork is the Civic gatekeeper network used by the mint flow.
var DefaultNetwork = solana.MustParsePublicKey("ignREusXmGrscGNUesoU9mxfds9AiYTezUKex2PsZV6")
