package cmd

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"testing"
	"time"

	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/code-payments/candy-machine/pkg/candymachine"
	"github.com/code-payments/candy-machine/pkg/solana"
	"github.com/code-payments/candy-machine/pkg/solana/memory"
	"github.com/code-payments/candy-machine/pkg/solana/token"
)

const (
	testPayer = "4uQeVj5tqViQh7yWWGStvkEG1Zmhx6uasJtWCJziofM"
	testMint  = "8opHzTAnfzRpPEx21XtnrVTX28YQuCpAjcn1PczScKh"
)

func setupEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("LOG_FORMAT", "")
	t.Setenv(candymachine.NetworkConfigEnvName, "")
	t.Setenv(candymachine.RPCHostConfigEnvName, "")
	t.Setenv(candymachine.CandyMachineIDConfigEnvName, "")
	t.Setenv(candymachine.TxTimeoutConfigEnvName, "")
}

func run(t *testing.T, args ...string) (string, error) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--config", ""}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestConfigCmd(t *testing.T) {
	setupEnv(t)

	out, err := run(t, "config", "--json")
	require.NoError(t, err)

	var parsed configOutput
	require.NoError(t, json.Unmarshal([]byte(out), &parsed))
	assert.Equal(t, "devnet", parsed.Network)
	assert.Equal(t, string(solana.EnvironmentDev), parsed.RPCHost)
	require.NotNil(t, parsed.Error)
	assert.Equal(t, candymachine.NetworkConfigEnvName, parsed.Error.Key)

	out, err = run(t, "config", "--json", "--network", "mainnet-beta", "--rpc-host", "https://rpc.example.com", "--candy-machine-id", testMint)
	require.NoError(t, err)

	parsed = configOutput{}
	require.NoError(t, json.Unmarshal([]byte(out), &parsed))
	assert.Equal(t, "mainnet-beta", parsed.Network)
	assert.Equal(t, "https://rpc.example.com", parsed.RPCHost)
	assert.Equal(t, string(solana.EnvironmentProd), parsed.Endpoint)
	assert.Equal(t, testMint, parsed.CandyMachineID)
	assert.Nil(t, parsed.Error)

	out, err = run(t, "config")
	require.NoError(t, err)
	assert.Contains(t, out, candymachine.NetworkMissingMessage)
}

func TestATACmd(t *testing.T) {
	setupEnv(t)

	out, err := run(t, "ata", testPayer, testMint, "--json")
	require.NoError(t, err)

	var parsed ataOutput
	require.NoError(t, json.Unmarshal([]byte(out), &parsed))
	assert.Equal(t, "H7MQwEzt97tUJryocn3qaEoy2ymWstwyEk1i9Yv3EmuZ", parsed.Address)
	assert.EqualValues(t, 255, parsed.Bump)
	assert.Nil(t, parsed.Exists)

	_, err = run(t, "ata", "invalid", testMint)
	assert.Error(t, err)

	_, err = run(t, "ata", testPayer)
	assert.Error(t, err)
}

func TestATACmd_Check(t *testing.T) {
	setupEnv(t)

	sc := memory.NewClient()
	var endpoint string
	newSolanaClient = func(e string, _ time.Duration, _ ...solana.ClientOption) solana.Client {
		endpoint = e
		return sc
	}
	defer func() { newSolanaClient = solana.New }()

	out, err := run(t, "ata", testPayer, testMint, "--check", "--json", "--rpc-host", "http://localhost:8899")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8899", endpoint)

	var parsed ataOutput
	require.NoError(t, json.Unmarshal([]byte(out), &parsed))
	require.NotNil(t, parsed.Exists)
	assert.False(t, *parsed.Exists)

	data := make([]byte, token.AccountSize)
	copy(data[0:32], solana.MustParsePublicKey(testMint))
	copy(data[32:64], solana.MustParsePublicKey(testPayer))
	binary.LittleEndian.PutUint64(data[64:72], 1)
	data[108] = byte(token.AccountStateInitialized)
	sc.SetAccount(solana.MustParsePublicKey(parsed.Address), solana.AccountInfo{
		Owner: token.ProgramKey,
		Data:  data,
	})

	out, err = run(t, "ata", testPayer, testMint, "--check", "--json")
	require.NoError(t, err)

	parsed = ataOutput{}
	require.NoError(t, json.Unmarshal([]byte(out), &parsed))
	require.NotNil(t, parsed.Exists)
	assert.True(t, *parsed.Exists)
	require.NotNil(t, parsed.Amount)
	assert.EqualValues(t, 1, *parsed.Amount)

	sc.InduceErrors()
	_, err = run(t, "ata", testPayer, testMint, "--check")
	assert.Error(t, err)
}

func TestGatewayCmd(t *testing.T) {
	setupEnv(t)

	out, err := run(t, "gateway", "expire", "--json")
	require.NoError(t, err)

	var parsed addressOutput
	require.NoError(t, json.Unmarshal([]byte(out), &parsed))
	assert.Equal(t, "DH46SxsYWBMf3Ca1hPMUYyZzQpf9bfAw93ncUKhvZCWA", parsed.Address)
	assert.EqualValues(t, 255, parsed.Bump)

	out, err = run(t, "gateway", "token", testMint, "--json")
	require.NoError(t, err)

	parsed = addressOutput{}
	require.NoError(t, json.Unmarshal([]byte(out), &parsed))
	assert.Equal(t, "8Co4Hnh4D3f3FXDXaKr6Eb1rLczvq4HPSQNrDs2i4V5e", parsed.Address)
	assert.EqualValues(t, 252, parsed.Bump)

	_, err = run(t, "gateway", "expire", "--gatekeeper-network", base58.Encode([]byte{1, 2, 3}))
	assert.Error(t, err)
}

func TestPlanCmd(t *testing.T) {
	setupEnv(t)

	out, err := run(t, "plan", testPayer, testMint, "--json")
	require.NoError(t, err)

	var parsed planOutput
	require.NoError(t, json.Unmarshal([]byte(out), &parsed))
	assert.Equal(t, "H7MQwEzt97tUJryocn3qaEoy2ymWstwyEk1i9Yv3EmuZ", parsed.AssociatedTokenAccount.Address)
	assert.Equal(t, base58.Encode(token.AssociatedTokenAccountProgramKey), parsed.CreateAssociatedTokenAccount.Program)
	require.Len(t, parsed.CreateAssociatedTokenAccount.Accounts, 7)
	assert.Equal(t, accountMetaOutput{PublicKey: testPayer, IsSigner: true, IsWritable: true}, parsed.CreateAssociatedTokenAccount.Accounts[0])
	assert.Equal(t, testPayer, parsed.CreateAssociatedTokenAccount.Accounts[2].PublicKey)
	assert.Nil(t, parsed.GatewayToken)
	assert.Empty(t, parsed.RemainingAccounts)

	out, err = run(t, "plan", testPayer, testMint, "--json", "--gated", "--expire-on-use")
	require.NoError(t, err)

	parsed = planOutput{}
	require.NoError(t, json.Unmarshal([]byte(out), &parsed))
	require.NotNil(t, parsed.GatewayToken)
	assert.Equal(t, "EP2THH8PriRUtJxx85fk19ufqWuPC2fCnCbBdvGk5mem", parsed.GatewayToken.Address)
	require.NotNil(t, parsed.NetworkExpire)
	assert.Equal(t, "DH46SxsYWBMf3Ca1hPMUYyZzQpf9bfAw93ncUKhvZCWA", parsed.NetworkExpire.Address)
	require.Len(t, parsed.RemainingAccounts, 3)
	assert.True(t, parsed.RemainingAccounts[0].IsWritable)
	assert.False(t, parsed.RemainingAccounts[1].IsWritable)

	out, err = run(t, "plan", testPayer, testMint)
	require.NoError(t, err)
	assert.Contains(t, out, "H7MQwEzt97tUJryocn3qaEoy2ymWstwyEk1i9Yv3EmuZ")
}
