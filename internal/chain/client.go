package chain

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"strings"
	"time"
)

// HTTPDoer is the minimal interface needed from an HTTP client.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Four-byte ABI selectors for the two issuance reads.
const (
	selectorOwnerOf  = "0x6352211e" // ownerOf(uint256)
	selectorIsIssued = "0x163aa631" // isIssued(bytes32)
)

// Client speaks Ethereum JSON-RPC over HTTP. It implements both the Caller
// call handle and the resolver's network chain-id read. No retries and no
// result caching happen here.
type Client struct {
	rpcURL string
	client HTTPDoer
}

// ClientConfig configures a JSON-RPC chain client.
type ClientConfig struct {
	RPCURL  string
	Timeout time.Duration
	// HTTPClient overrides the default client, mainly for tests.
	HTTPClient HTTPDoer
}

// NewClient creates a JSON-RPC chain client.
func NewClient(cfg ClientConfig) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{rpcURL: cfg.RPCURL, client: client}
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      int    `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

type rpcResponse struct {
	Result string `json:"result"`
	Error  *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// OwnerOf calls ownerOf(hash) on the token registry at contract and returns
// the owner address, zero address included.
func (c *Client) OwnerOf(ctx context.Context, contract, hash string) (string, error) {
	word, err := hashWord(hash)
	if err != nil {
		return "", err
	}
	result, err := c.ethCall(ctx, contract, selectorOwnerOf+word)
	if err != nil {
		return "", fmt.Errorf("ownerOf %s: %w", hash, err)
	}
	return addressFromWord(result)
}

// IsIssued calls isIssued(hash) on the document store at contract.
func (c *Client) IsIssued(ctx context.Context, contract, hash string) (bool, error) {
	word, err := hashWord(hash)
	if err != nil {
		return false, err
	}
	result, err := c.ethCall(ctx, contract, selectorIsIssued+word)
	if err != nil {
		return false, fmt.Errorf("isIssued %s: %w", hash, err)
	}
	return boolFromWord(result)
}

// ChainID returns the network's chain id as a decimal string.
func (c *Client) ChainID(ctx context.Context) (string, error) {
	result, err := c.call(ctx, "eth_chainId", nil)
	if err != nil {
		return "", err
	}
	id, ok := new(big.Int).SetString(strings.TrimPrefix(result, "0x"), 16)
	if !ok {
		return "", fmt.Errorf("malformed chain id %q", result)
	}
	return id.String(), nil
}

func (c *Client) ethCall(ctx context.Context, to, data string) (string, error) {
	params := []any{map[string]string{"to": to, "data": data}, "latest"}
	return c.call(ctx, "eth_call", params)
}

func (c *Client) call(ctx context.Context, method string, params []any) (string, error) {
	if params == nil {
		params = []any{}
	}
	payload, err := json.Marshal(rpcRequest{JSONRPC: "2.0", ID: 1, Method: method, Params: params})
	if err != nil {
		return "", fmt.Errorf("marshal %s request: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.rpcURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%s: %w", method, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%s: unexpected status %d", method, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read %s response: %w", method, err)
	}

	var parsed rpcResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("unmarshal %s response: %w", method, err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("%s: rpc error %d: %s", method, parsed.Error.Code, parsed.Error.Message)
	}
	return parsed.Result, nil
}

// hashWord encodes a bytes32 document hash as one ABI word.
func hashWord(hash string) (string, error) {
	h := strings.TrimPrefix(strings.ToLower(hash), "0x")
	if len(h) > 64 {
		return "", fmt.Errorf("document hash %q exceeds 32 bytes", hash)
	}
	for _, r := range h {
		if !isHex(r) {
			return "", fmt.Errorf("document hash %q is not hex", hash)
		}
	}
	return strings.Repeat("0", 64-len(h)) + h, nil
}

// addressFromWord extracts the trailing 20 bytes of an ABI-encoded address word.
func addressFromWord(result string) (string, error) {
	r := strings.TrimPrefix(result, "0x")
	if len(r) != 64 {
		return "", fmt.Errorf("malformed address word %q", result)
	}
	return "0x" + r[24:], nil
}

// boolFromWord decodes an ABI-encoded bool word.
func boolFromWord(result string) (bool, error) {
	r := strings.TrimPrefix(result, "0x")
	if len(r) != 64 {
		return false, fmt.Errorf("malformed bool word %q", result)
	}
	return strings.ContainsFunc(r, func(c rune) bool { return c != '0' }), nil
}

func isHex(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f')
}
