package system

import (
	"github.com/code-payments/candy-machine/pkg/solana"
)

// ProgramKey is the address of the system program.
//
// https://explorer.solana.com/address/11111111111111111111111111111111
var ProgramKey = solana.MustParsePublicKey("11111111111111111111111111111111")

// RentSysVar points to the system variable "Rent"
//
// Source: https://github.com/solana-labs/solana/blob/f02a78d8fff2dd7297dc6ce6eb5a68a3002f5359/sdk/src/sysvar/rent.rs#L11
var RentSysVar = solana.MustParsePublicKey("SysvarRent111111111111111111111111111111111")

