// Package chain reads document issuance state from Ethereum contracts.
package chain

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ContractVariant selects which issuance contract family a reference points at.
type ContractVariant string

const (
	// TokenRegistry expresses issuance as hash ownership; a zero-address
	// owner means the hash was never minted.
	TokenRegistry ContractVariant = "TOKEN_REGISTRY"

	// DocumentStore exposes issuance as a direct boolean flag per hash.
	DocumentStore ContractVariant = "DOCUMENT_STORE"
)

// ErrUnsupportedContractVariant is returned for references whose variant
// matches neither known contract family. This is a caller bug, never a
// verification outcome.
var ErrUnsupportedContractVariant = errors.New("unsupported contract variant")

// Caller is the opaque capability used to invoke chain reads. Implementations
// wrap a transport (JSON-RPC, test double); no retry happens at this layer.
type Caller interface {
	// OwnerOf returns the owner address of hash in the token registry at
	// contract, zero address included.
	OwnerOf(ctx context.Context, contract, hash string) (string, error)

	// IsIssued returns the document store's issuance flag for hash.
	IsIssued(ctx context.Context, contract, hash string) (bool, error)
}

// ContractRef identifies one issuance contract and carries the call handle
// used to read it. Immutable, supplied by the caller.
type ContractRef struct {
	Variant ContractVariant
	Address string
	Caller  Caller
}

// zeroAddress is the ERC-721 sentinel for "no owner".
const zeroAddress = "0x0000000000000000000000000000000000000000"

// Checker determines boolean issuance status for a document hash using the
// reference's contract variant.
type Checker struct{}

// NewChecker creates an issuance status checker.
func NewChecker() *Checker {
	return &Checker{}
}

// IsIssued reports whether hash is recorded as issued by the referenced
// contract. Transport failures from the call handle propagate unmodified.
func (c *Checker) IsIssued(ctx context.Context, ref ContractRef, hash string) (bool, error) {
	switch ref.Variant {
	case TokenRegistry:
		owner, err := ref.Caller.OwnerOf(ctx, ref.Address, hash)
		if err != nil {
			return false, err
		}
		return !strings.EqualFold(owner, zeroAddress), nil
	case DocumentStore:
		return ref.Caller.IsIssued(ctx, ref.Address, hash)
	default:
		return false, fmt.Errorf("%w: %q", ErrUnsupportedContractVariant, ref.Variant)
	}
}

// ParseVariant maps a wire string onto a known contract variant.
func ParseVariant(s string) (ContractVariant, error) {
	switch ContractVariant(strings.ToUpper(s)) {
	case TokenRegistry:
		return TokenRegistry, nil
	case DocumentStore:
		return DocumentStore, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedContractVariant, s)
	}
}
