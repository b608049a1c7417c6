package identity

import (
	"context"
	"fmt"
	"strings"

	"attestor/internal/dnstxt"
)

// NetworkReader reports the chain id of the configured network as a decimal
// string. One read per resolution, never cached.
type NetworkReader interface {
	ChainID(ctx context.Context) (string, error)
}

// TxtSource fetches the full set of openatts TXT records for a domain,
// preserving resolver answer order.
type TxtSource interface {
	Lookup(ctx context.Context, domain string) ([]dnstxt.Record, error)
}

// Resolver checks whether a DNS TXT record anchors an issuer's contract
// address to its claimed domain on the expected network.
type Resolver struct {
	network NetworkReader
	dns     TxtSource
}

// NewResolver creates an identity proof resolver over the given collaborators.
func NewResolver(network NetworkReader, dns TxtSource) *Resolver {
	return &Resolver{network: network, dns: dns}
}

// proofNetwork is the only network label a record may carry to match.
const proofNetwork = "ethereum"

// Resolve determines the issuer's identity. Domain-level failure to find a
// matching record is returned as an Invalid identity; malformed issuer input
// and collaborator failures are returned as errors for the caller's error
// boundary to surface.
//
// Records are scanned in resolver order and the first match is definitive:
// duplicate or ambiguous records at the same domain are not detected.
func (r *Resolver) Resolve(ctx context.Context, issuer Issuer) (Identity, error) {
	if issuer.IdentityProofType != ProofTypeDNSTxt {
		return Identity{}, fmt.Errorf("%w: %q", ErrUnsupportedIdentityType, issuer.IdentityProofType)
	}
	if issuer.IdentityProofLocation == "" {
		return Identity{}, ErrMissingLocation
	}

	chainID, err := r.network.ChainID(ctx)
	if err != nil {
		return Identity{}, fmt.Errorf("read chain id: %w", err)
	}

	records, err := r.dns.Lookup(ctx, issuer.IdentityProofLocation)
	if err != nil {
		return Identity{}, fmt.Errorf("lookup %s: %w", issuer.IdentityProofLocation, err)
	}

	target := issuer.SmartContractAddress
	for _, rec := range records {
		if strings.EqualFold(rec.Addr, target) &&
			rec.NetID == chainID &&
			rec.Type == "openatts" &&
			rec.Net == proofNetwork {
			return ValidIdentity(issuer.IdentityProofLocation, target), nil
		}
	}

	reason := NewReason(CodeMatchingRecordNotFound,
		fmt.Sprintf("Matching DNS record not found for %s", target))
	return InvalidIdentity(issuer.IdentityProofLocation, target, reason), nil
}
