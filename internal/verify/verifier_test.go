package verify

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"

	"attestor/internal/document"
	"attestor/internal/identity"
)

// stubResolver resolves issuers from a fixed per-domain table and records
// which issuers it was asked about.
type stubResolver struct {
	mu         sync.Mutex
	identities map[string]identity.Identity
	errs       map[string]error
	resolved   []identity.Issuer
}

func (r *stubResolver) Resolve(_ context.Context, issuer identity.Issuer) (identity.Identity, error) {
	r.mu.Lock()
	r.resolved = append(r.resolved, issuer)
	r.mu.Unlock()

	if err, ok := r.errs[issuer.IdentityProofLocation]; ok {
		return identity.Identity{}, err
	}
	if ident, ok := r.identities[issuer.IdentityProofLocation]; ok {
		return ident, nil
	}
	return identity.ValidIdentity(issuer.IdentityProofLocation, issuer.SmartContractAddress), nil
}

type VerifierSuite struct {
	suite.Suite

	resolver *stubResolver
	verifier *Verifier
}

func (s *VerifierSuite) SetupTest() {
	s.resolver = &stubResolver{
		identities: map[string]identity.Identity{},
		errs:       map[string]error{},
	}
	s.verifier = New(s.resolver)
}

func TestVerifierSuite(t *testing.T) {
	suite.Run(t, new(VerifierSuite))
}

func v2Issuer(domain, store string) document.V2Issuer {
	return document.V2Issuer{
		DocumentStore: store,
		IdentityProof: document.IdentityProof{Type: identity.ProofTypeDNSTxt, Location: domain},
	}
}

func v3Doc(domain, contract string) *document.V3Document {
	return &document.V3Document{
		Issuer: document.V3Issuer{
			IdentityProofType:     identity.ProofTypeDNSTxt,
			IdentityProofLocation: domain,
			ProofMethod:           "DOCUMENT_STORE",
			ContractAddress:       contract,
		},
	}
}

func (s *VerifierSuite) TestTest() {
	s.Run("v3 with dns-txt applies", func() {
		s.True(s.verifier.Test(v3Doc("example.com", "0xabc")))
	})

	s.Run("v3 with other proof type does not apply", func() {
		doc := v3Doc("example.com", "0xabc")
		doc.Issuer.IdentityProofType = "DID"
		s.False(s.verifier.Test(doc))
	})

	s.Run("v2 with dns-txt issuer applies", func() {
		doc := &document.V2Document{Issuers: []document.V2Issuer{v2Issuer("example.com", "0xabc")}}
		s.True(s.verifier.Test(doc))
	})

	s.Run("v2 issuer without contract does not apply", func() {
		doc := &document.V2Document{Issuers: []document.V2Issuer{
			{IdentityProof: document.IdentityProof{Type: identity.ProofTypeDNSTxt, Location: "example.com"}},
		}}
		s.False(s.verifier.Test(doc))
	})

	s.Run("v2 issuer without dns-txt does not apply", func() {
		doc := &document.V2Document{Issuers: []document.V2Issuer{
			{DocumentStore: "0xabc", IdentityProof: document.IdentityProof{Type: "DID", Location: "example.com"}},
		}}
		s.False(s.verifier.Test(doc))
	})

	s.Run("mixed v2 issuer list applies when one qualifies", func() {
		doc := &document.V2Document{Issuers: []document.V2Issuer{
			{IdentityProof: document.IdentityProof{Type: "DID"}},
			v2Issuer("example.com", "0xabc"),
		}}
		s.True(s.verifier.Test(doc))
	})
}

func (s *VerifierSuite) TestVerifySkipsInapplicableDocuments() {
	doc := &document.V2Document{Issuers: []document.V2Issuer{
		{IdentityProof: document.IdentityProof{Type: "DID", Location: "example.com"}},
	}}

	frag := s.verifier.Verify(context.Background(), doc)

	s.Equal(FragmentName, frag.Name)
	s.Equal(FragmentType, frag.Type)
	s.Equal(StatusSkipped, frag.Status)
	s.Require().NotNil(frag.Reason)
	s.Equal(identity.CodeSkipped, frag.Reason.Code)
	s.Nil(frag.Data)
	s.Empty(s.resolver.resolved, "skipped documents never hit the resolver")
}

func (s *VerifierSuite) TestVerifyV3Valid() {
	frag := s.verifier.Verify(context.Background(), v3Doc("example.tradetrust.io", "0xabc"))

	s.Equal(StatusValid, frag.Status)
	s.Nil(frag.Reason)

	ident, ok := frag.Data.(identity.Identity)
	s.Require().True(ok)
	s.Equal("example.tradetrust.io", ident.Location)
	s.Equal("0xabc", ident.Value)
}

func (s *VerifierSuite) TestVerifyV3Invalid() {
	reason := identity.NewReason(identity.CodeMatchingRecordNotFound, "Matching DNS record not found for 0xabc")
	s.resolver.identities["example.tradetrust.io"] = identity.InvalidIdentity("example.tradetrust.io", "0xabc", reason)

	frag := s.verifier.Verify(context.Background(), v3Doc("example.tradetrust.io", "0xabc"))

	s.Equal(StatusInvalid, frag.Status)
	s.Require().NotNil(frag.Reason)
	s.Equal(identity.CodeMatchingRecordNotFound, frag.Reason.Code)

	ident, ok := frag.Data.(identity.Identity)
	s.Require().True(ok)
	s.False(ident.Valid())
}

func (s *VerifierSuite) TestVerifyV2AllValid() {
	doc := &document.V2Document{Issuers: []document.V2Issuer{
		v2Issuer("a.example.com", "0xaaa"),
		v2Issuer("b.example.com", "0xbbb"),
	}}

	frag := s.verifier.Verify(context.Background(), doc)

	s.Equal(StatusValid, frag.Status)
	s.Nil(frag.Reason)

	results, ok := frag.Data.([]identity.Identity)
	s.Require().True(ok)
	s.Require().Len(results, 2)
	s.Equal("a.example.com", results[0].Location)
	s.Equal("b.example.com", results[1].Location)
}

func (s *VerifierSuite) TestVerifyV2FirstInvalidDecidesReason() {
	// B and C are both invalid; B comes first in declaration order so its
	// reason must win regardless of resolution timing.
	doc := &document.V2Document{Issuers: []document.V2Issuer{
		v2Issuer("a.example.com", "0xaaa"),
		v2Issuer("b.example.com", "0xbbb"),
		v2Issuer("c.example.com", "0xccc"),
	}}
	s.resolver.identities["b.example.com"] = identity.InvalidIdentity("b.example.com", "0xbbb",
		identity.NewReason(identity.CodeMatchingRecordNotFound, "Matching DNS record not found for 0xbbb"))
	s.resolver.identities["c.example.com"] = identity.InvalidIdentity("c.example.com", "0xccc",
		identity.NewReason(identity.CodeMatchingRecordNotFound, "Matching DNS record not found for 0xccc"))

	frag := s.verifier.Verify(context.Background(), doc)

	s.Equal(StatusInvalid, frag.Status)
	s.Require().NotNil(frag.Reason)
	s.Contains(frag.Reason.Message, "0xbbb")

	results, ok := frag.Data.([]identity.Identity)
	s.Require().True(ok)
	s.Require().Len(results, 3)
	s.True(results[0].Valid())
	s.False(results[1].Valid())
	s.False(results[2].Valid())
}

func (s *VerifierSuite) TestVerifyV2NonDNSTxtIssuerIsInvalid() {
	doc := &document.V2Document{Issuers: []document.V2Issuer{
		v2Issuer("a.example.com", "0xaaa"),
		{DocumentStore: "0xbbb", IdentityProof: document.IdentityProof{Type: "DID", Location: "b.example.com"}},
	}}

	frag := s.verifier.Verify(context.Background(), doc)

	s.Equal(StatusInvalid, frag.Status)
	s.Require().NotNil(frag.Reason)
	s.Equal(identity.CodeInvalidIssuers, frag.Reason.Code)
	s.Equal("Issuer is not using DNS-TXT identityProof type", frag.Reason.Message)

	// The non-qualifying issuer is judged locally, never resolved.
	s.Require().Len(s.resolver.resolved, 1)
	s.Equal("a.example.com", s.resolver.resolved[0].IdentityProofLocation)
}

func (s *VerifierSuite) TestVerifyResolverErrorYieldsErrorFragment() {
	s.resolver.errs["a.example.com"] = errors.New("dns resolver unreachable")
	doc := &document.V2Document{Issuers: []document.V2Issuer{
		v2Issuer("a.example.com", "0xaaa"),
		v2Issuer("b.example.com", "0xbbb"),
	}}

	frag := s.verifier.Verify(context.Background(), doc)

	s.Equal(StatusError, frag.Status)
	s.Require().NotNil(frag.Reason)
	s.Equal(identity.CodeUnexpectedError, frag.Reason.Code)
	s.Equal("UNEXPECTED_ERROR", frag.Reason.CodeString)
	s.Contains(frag.Reason.Message, "dns resolver unreachable")
	s.Nil(frag.Data, "no partial results on an aborted run")
}

func (s *VerifierSuite) TestVerifyV3ResolverErrorYieldsErrorFragment() {
	s.resolver.errs["example.tradetrust.io"] = errors.New("rpc timeout")

	frag := s.verifier.Verify(context.Background(), v3Doc("example.tradetrust.io", "0xabc"))

	s.Equal(StatusError, frag.Status)
	s.Require().NotNil(frag.Reason)
	s.Equal(identity.CodeUnexpectedError, frag.Reason.Code)
}
