package token

import (
	"testing"

	solanago "github.com/gagliardetto/solana-go"
	associatedtokenaccount "github.com/gagliardetto/solana-go/programs/associated-token-account"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAssociatedAccountAndBump_MatchesSolanaGo(t *testing.T) {
	keys := generateKeys(t, 32)
	for i := 0; i < len(keys); i += 2 {
		owner, mint := keys[i], keys[i+1]

		addr, bump, err := GetAssociatedAccountAndBump(owner, mint)
		require.NoError(t, err)

		expected, expectedBump, err := solanago.FindAssociatedTokenAddress(
			solanago.PublicKeyFromBytes(owner),
			solanago.PublicKeyFromBytes(mint),
		)
		require.NoError(t, err)

		assert.Equal(t, expected.Bytes(), []byte(addr))
		assert.Equal(t, expectedBump, bump)
	}
}

func TestCreateAssociatedTokenAccount_MatchesSolanaGo(t *testing.T) {
	keys := generateKeys(t, 2)
	payer, mint := keys[0], keys[1]

	addr, err := GetAssociatedAccount(payer, mint)
	require.NoError(t, err)

	instruction := CreateAssociatedTokenAccount(addr, payer, payer, mint)

	expected := associatedtokenaccount.NewCreateInstruction(
		solanago.PublicKeyFromBytes(payer),
		solanago.PublicKeyFromBytes(payer),
		solanago.PublicKeyFromBytes(mint),
	).Build()

	programID := expected.ProgramID()
	assert.Equal(t, programID.Bytes(), []byte(instruction.Program))

	expectedAccounts := expected.Accounts()
	require.Len(t, instruction.Accounts, len(expectedAccounts))
	for i, account := range expectedAccounts {
		assert.Equal(t, account.PublicKey.Bytes(), []byte(instruction.Accounts[i].PublicKey), "account %d", i)
		assert.Equal(t, account.IsSigner, instruction.Accounts[i].IsSigner, "account %d", i)
		assert.Equal(t, account.IsWritable, instruction.Accounts[i].IsWritable, "account %d", i)
	}
}
