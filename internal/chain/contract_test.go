package chain

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubCaller is a test double for the chain call handle.
type stubCaller struct {
	owner     string
	issued    bool
	err       error
	ownerOfN  int
	isIssuedN int
}

func (c *stubCaller) OwnerOf(_ context.Context, _, _ string) (string, error) {
	c.ownerOfN++
	return c.owner, c.err
}

func (c *stubCaller) IsIssued(_ context.Context, _, _ string) (bool, error) {
	c.isIssuedN++
	return c.issued, c.err
}

const testHash = "0x1a7b5f4b9d8c4cf09a0d0f3a27d6c95bafc94e0e9ecc354c3e2a47fbbc5b9f3a"

func TestIsIssuedTokenRegistry(t *testing.T) {
	tests := []struct {
		name  string
		owner string
		want  bool
	}{
		{"zero address owner means unissued", "0x0000000000000000000000000000000000000000", false},
		{"checksummed zero address means unissued", "0x0000000000000000000000000000000000000000", false},
		{"non-zero owner means issued", "0x2f60375e8144e16Adf1979936301D8341D58C36C", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			caller := &stubCaller{owner: tt.owner}
			ref := ContractRef{Variant: TokenRegistry, Address: "0xregistry", Caller: caller}

			issued, err := NewChecker().IsIssued(context.Background(), ref, testHash)
			require.NoError(t, err)
			assert.Equal(t, tt.want, issued)
			assert.Equal(t, 1, caller.ownerOfN)
			assert.Zero(t, caller.isIssuedN)
		})
	}
}

func TestIsIssuedDocumentStore(t *testing.T) {
	for _, issued := range []bool{true, false} {
		caller := &stubCaller{issued: issued}
		ref := ContractRef{Variant: DocumentStore, Address: "0xstore", Caller: caller}

		got, err := NewChecker().IsIssued(context.Background(), ref, testHash)
		require.NoError(t, err)
		assert.Equal(t, issued, got)
		assert.Equal(t, 1, caller.isIssuedN)
		assert.Zero(t, caller.ownerOfN)
	}
}

func TestIsIssuedUnsupportedVariant(t *testing.T) {
	caller := &stubCaller{}
	ref := ContractRef{Variant: "NFT_REGISTRY", Address: "0xwhatever", Caller: caller}

	_, err := NewChecker().IsIssued(context.Background(), ref, testHash)
	require.ErrorIs(t, err, ErrUnsupportedContractVariant)
	assert.Zero(t, caller.ownerOfN)
	assert.Zero(t, caller.isIssuedN)
}

func TestIsIssuedPropagatesTransportErrors(t *testing.T) {
	transportErr := errors.New("rpc connection reset")

	for _, variant := range []ContractVariant{TokenRegistry, DocumentStore} {
		caller := &stubCaller{err: transportErr}
		ref := ContractRef{Variant: variant, Address: "0xcontract", Caller: caller}

		_, err := NewChecker().IsIssued(context.Background(), ref, testHash)
		require.ErrorIs(t, err, transportErr)
	}
}

func TestParseVariant(t *testing.T) {
	tests := []struct {
		in      string
		want    ContractVariant
		wantErr bool
	}{
		{"TOKEN_REGISTRY", TokenRegistry, false},
		{"token_registry", TokenRegistry, false},
		{"DOCUMENT_STORE", DocumentStore, false},
		{"document_store", DocumentStore, false},
		{"CERTIFICATE_STORE", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseVariant(tt.in)
		if tt.wantErr {
			require.ErrorIs(t, err, ErrUnsupportedContractVariant, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}
