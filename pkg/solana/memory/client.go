// Package memory provides an in memory solana.Client for tests.
package memory

import (
	"context"
	"crypto/ed25519"
	"errors"
	"sync"

	"github.com/mr-tron/base58"

	"github.com/code-payments/candy-machine/pkg/solana"
)

var errDeveloperInduced = errors.New("in memory client: developer induced error")

// Client is an in memory solana.Client.
type Client struct {
	stateMu  sync.RWMutex
	accounts map[string]solana.AccountInfo
	slot     uint64
	err      error
}

// NewClient returns an empty in memory client.
func NewClient() *Client {
	return &Client{
		accounts: make(map[string]solana.AccountInfo),
	}
}

// GetAccountInfo implements solana.Client.GetAccountInfo
func (c *Client) GetAccountInfo(_ context.Context, account ed25519.PublicKey, _ solana.Commitment) (solana.AccountInfo, error) {
	c.stateMu.RLock()
	defer c.stateMu.RUnlock()

	if c.err != nil {
		return solana.AccountInfo{}, c.err
	}

	info, ok := c.accounts[base58.Encode(account)]
	if !ok {
		return solana.AccountInfo{}, solana.ErrNoAccountInfo
	}
	return info, nil
}

// GetSlot implements solana.Client.GetSlot
func (c *Client) GetSlot(_ context.Context, _ solana.Commitment) (uint64, error) {
	c.stateMu.RLock()
	defer c.stateMu.RUnlock()

	if c.err != nil {
		return 0, c.err
	}
	return c.slot, nil
}

// SetAccount stores the account info returned for an address
func (c *Client) SetAccount(account ed25519.PublicKey, info solana.AccountInfo) {
	c.stateMu.Lock()
	c.accounts[base58.Encode(account)] = info
	c.stateMu.Unlock()
}

// SetSlot sets the slot returned by GetSlot
func (c *Client) SetSlot(slot uint64) {
	c.stateMu.Lock()
	c.slot = slot
	c.stateMu.Unlock()
}

// InduceErrors instructs the client to fail every call
func (c *Client) InduceErrors() {
	c.stateMu.Lock()
	c.err = errDeveloperInduced
	c.stateMu.Unlock()
}

// StopInducingErrors stops the client from failing calls
func (c *Client) StopInducingErrors() {
	c.stateMu.Lock()
	c.err = nil
	c.stateMu.Unlock()
}
