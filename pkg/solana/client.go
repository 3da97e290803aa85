package solana

import (
	"context"
	"crypto/ed25519"
	"encoding/base64"
	"net/http"
	"time"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/ybbus/jsonrpc"
	"golang.org/x/time/rate"

	"github.com/code-payments/candy-machine/pkg/retry"
)

const (
	// Reference: https://github.com/solana-labs/solana/blob/71e9958e061493d7545bd28d4ac7a85aaed6ffbb/client/src/rpc_custom_error.rs#L11
	rpcNodeUnhealthyCode = -32005
)

type Commitment struct {
	Commitment string `json:"commitment"`
}

var (
	CommitmentProcessed = Commitment{Commitment: "processed"}
	CommitmentConfirmed = Commitment{Commitment: "confirmed"}
	CommitmentFinalized = Commitment{Commitment: "finalized"}
)

var (
	ErrNoAccountInfo = errors.New("no account info")
)

// AccountInfo contains the Solana account information (not to be confused with a TokenAccount)
type AccountInfo struct {
	Data       []byte
	Owner      ed25519.PublicKey
	Lamports   uint64
	Executable bool
}

// Client is a read-only view of the Solana JSON RPC API.
//
// Reference: https://docs.solana.com/apps/jsonrpc-api
type Client interface {
	GetAccountInfo(ctx context.Context, account ed25519.PublicKey, commitment Commitment) (AccountInfo, error)
	GetSlot(ctx context.Context, commitment Commitment) (uint64, error)
}

var (
	errRateLimited  = errors.New("rate limited")
	errServiceError = errors.New("service error")
)

type client struct {
	log     *logrus.Entry
	client  jsonrpc.RPCClient
	retrier retry.Retrier
	limiter *rate.Limiter
}

// ClientOption configures a Client.
type ClientOption func(c *client)

// WithRateLimit limits outgoing requests to rps per second. Public cluster
// endpoints rate limit aggressively.
func WithRateLimit(rps float64) ClientOption {
	return func(c *client) {
		if rps > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
		}
	}
}

// New returns a client using the specified endpoint. A zero timeout leaves
// HTTP requests unbounded.
func New(endpoint string, timeout time.Duration, opts ...ClientOption) Client {
	return NewWithRPCOptions(endpoint, &jsonrpc.RPCClientOpts{
		HTTPClient: &http.Client{Timeout: timeout},
	}, opts...)
}

// NewWithRPCOptions returns a client configured with the specified RPC options.
func NewWithRPCOptions(endpoint string, rpcOpts *jsonrpc.RPCClientOpts, opts ...ClientOption) Client {
	c := &client{
		log:    logrus.StandardLogger().WithField("type", "solana/client"),
		client: jsonrpc.NewClientWithOpts(endpoint, rpcOpts),
		retrier: retry.NewRetrier(
			retry.RetriableErrors(errRateLimited, errServiceError),
			retry.Limit(3),
			retry.BackoffWithJitter(retry.BinaryExponential(time.Second), 10*time.Second, 0.1),
		),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *client) call(ctx context.Context, out interface{}, method string, params ...interface{}) error {
	_, err := c.retrier.Retry(ctx, func() error {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return errors.Wrap(err, "rate limiter")
			}
		}

		err := c.client.CallFor(out, method, params...)
		if err == nil {
			return nil
		}

		return c.handleRpcError(method, err)
	})

	return err
}

func (c *client) handleRpcError(method string, err error) error {
	rpcErr, ok := err.(*jsonrpc.RPCError)
	if !ok {
		return err
	}
	if rpcErr.Code == 429 {
		c.log.WithField("method", method).Warn("rate limited")
		return errRateLimited
	}
	if rpcErr.Code >= 500 || rpcErr.Code == rpcNodeUnhealthyCode {
		c.log.WithField("method", method).WithError(rpcErr).Warn("rpc service error")
		return errServiceError
	}

	return err
}

func (c *client) GetSlot(ctx context.Context, commitment Commitment) (slot uint64, err error) {
	// note: we have to wrap the commitment in an []interface{} otherwise the
	//       solana RPC node complains. Technically this is a violation of the
	//       JSON RPC v2.0 spec.
	if err := c.call(ctx, &slot, "getSlot", []interface{}{commitment}); err != nil {
		return 0, errors.Wrapf(err, "getSlot() failed to send request")
	}

	return slot, nil
}

func (c *client) GetAccountInfo(ctx context.Context, account ed25519.PublicKey, commitment Commitment) (accountInfo AccountInfo, err error) {
	type rpcResponse struct {
		Value *struct {
			Lamports   uint64   `json:"lamports"`
			Owner      string   `json:"owner"`
			Data       []string `json:"data"`
			Executable bool     `json:"executable"`
		} `json:"value"`
	}

	rpcConfig := struct {
		Commitment string `json:"commitment"`
		Encoding   string `json:"encoding"`
	}{
		Commitment: commitment.Commitment,
		Encoding:   "base64",
	}

	var resp rpcResponse
	if err := c.call(ctx, &resp, "getAccountInfo", base58.Encode(account), rpcConfig); err != nil {
		return accountInfo, errors.Wrap(err, "getAccountInfo() failed to send request")
	}

	if resp.Value == nil {
		return accountInfo, ErrNoAccountInfo
	}

	accountInfo.Owner, err = base58.Decode(resp.Value.Owner)
	if err != nil {
		return accountInfo, errors.Wrap(err, "invalid base58 encoded owner")
	}

	if len(resp.Value.Data) > 0 {
		accountInfo.Data, err = base64.StdEncoding.DecodeString(resp.Value.Data[0])
		if err != nil {
			return accountInfo, errors.Wrap(err, "invalid base64 encoded data")
		}
	}

	accountInfo.Lamports = resp.Value.Lamports
	accountInfo.Executable = resp.Value.Executable

	return accountInfo, nil
}
