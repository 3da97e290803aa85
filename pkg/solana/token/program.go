package token

import (
	"github.com/code-payments/candy-machine/pkg/solana"
)

// ProgramKey is the address of the SPL token program.
var ProgramKey = solana.MustParsePublicKey("TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA")

// AssociatedTokenAccountProgramKey is the address of the associated token account program.
var AssociatedTokenAccountProgramKey = solana.MustParsePublicKey("ATokenGPvbdGVxr1b2hvZbsiqW5xWH25efTNsLJA8knL")
