package token

import (
	"bytes"
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/code-payments/candy-machine/pkg/solana"
	"github.com/code-payments/candy-machine/pkg/solana/system"
)

const createAssociatedAccountNumAccounts = 7

// GetAssociatedAccountAndBump returns the associated token account address
// for an owner and SPL token mint, along with its bump seed.
//
// Reference: https://spl.solana.com/associated-token-account#finding-the-associated-token-account-address
func GetAssociatedAccountAndBump(owner, mint ed25519.PublicKey) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		AssociatedTokenAccountProgramKey,
		owner,
		ProgramKey,
		mint,
	)
}

// GetAssociatedAccount returns the associated account address for an SPL token.
func GetAssociatedAccount(owner, mint ed25519.PublicKey) (ed25519.PublicKey, error) {
	addr, _, err := GetAssociatedAccountAndBump(owner, mint)
	return addr, err
}

// CreateAssociatedTokenAccount builds the instruction that creates the
// associated token account at the provided address. The address is expected
// to come from GetAssociatedAccountAndBump.
//
// Reference: https://github.com/solana-labs/solana-program-library/blob/0639953c7dd0f5228c3ceda3ba68fece3b46ff1d/associated-token-account/program/src/lib.rs#L54
func CreateAssociatedTokenAccount(associated, payer, owner, mint ed25519.PublicKey) solana.Instruction {
	// Accounts expected by this instruction:
	//
	//   0. `[writeable,signer]` Funding account (must be a system account)
	//   1. `[writeable]` Associated token account address to be created
	//   2. `[]` Wallet address for the new associated token account
	//   3. `[]` The token mint for the new associated token account
	//   4. `[]` System program
	//   5. `[]` SPL Token program
	//   6. `[]` Rent sysvar
	return solana.NewInstruction(
		AssociatedTokenAccountProgramKey,
		[]byte{},
		solana.NewAccountMeta(payer, true),
		solana.NewAccountMeta(associated, false),
		solana.NewReadonlyAccountMeta(owner, false),
		solana.NewReadonlyAccountMeta(mint, false),
		solana.NewReadonlyAccountMeta(system.ProgramKey, false),
		solana.NewReadonlyAccountMeta(ProgramKey, false),
		solana.NewReadonlyAccountMeta(system.RentSysVar, false),
	)
}

type DecompiledCreateAssociatedAccount struct {
	Payer   ed25519.PublicKey
	Address ed25519.PublicKey
	Owner   ed25519.PublicKey
	Mint    ed25519.PublicKey
}

// DecompileCreateAssociatedAccount validates that an instruction satisfies
// the create associated token account contract and extracts its accounts.
func DecompileCreateAssociatedAccount(i solana.Instruction) (*DecompiledCreateAssociatedAccount, error) {
	if !bytes.Equal(i.Program, AssociatedTokenAccountProgramKey) {
		return nil, solana.ErrIncorrectProgram
	}
	if len(i.Data) != 0 {
		return nil, errors.Errorf("unexpected data")
	}
	if len(i.Accounts) != createAssociatedAccountNumAccounts {
		return nil, errors.Errorf("invalid number of accounts: %d (expected %d)", len(i.Accounts), createAssociatedAccountNumAccounts)
	}

	for idx, account := range i.Accounts {
		expectSigner := idx == 0
		expectWritable := idx <= 1
		if account.IsSigner != expectSigner || account.IsWritable != expectWritable {
			return nil, errors.Errorf("unexpected flags for account %d", idx)
		}
	}

	if !bytes.Equal(i.Accounts[4].PublicKey, system.ProgramKey) {
		return nil, errors.Errorf("system program key mismatch")
	}
	if !bytes.Equal(i.Accounts[5].PublicKey, ProgramKey) {
		return nil, errors.Errorf("token program key mismatch")
	}
	if !bytes.Equal(i.Accounts[6].PublicKey, system.RentSysVar) {
		return nil, errors.Errorf("rent sysvar mismatch")
	}

	return &DecompiledCreateAssociatedAccount{
		Payer:   i.Accounts[0].PublicKey,
		Address: i.Accounts[1].PublicKey,
		Owner:   i.Accounts[2].PublicKey,
		Mint:    i.Accounts[3].PublicKey,
	}, nil
}
