package verify

import (
	"context"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"attestor/internal/document"
	"attestor/internal/identity"
	"attestor/internal/verify/metrics"
	"attestor/internal/verify/tracer"
)

// IdentityResolver resolves a single issuer's DNS-TXT identity proof.
type IdentityResolver interface {
	Resolve(ctx context.Context, issuer identity.Issuer) (identity.Identity, error)
}

// Verifier aggregates per-issuer identity resolutions into one fragment.
// It holds no mutable state; one instance serves concurrent runs.
type Verifier struct {
	resolver IdentityResolver
	tracer   tracer.Tracer
	metrics  *metrics.Metrics
}

// Option configures the Verifier.
type Option func(*Verifier)

// WithTracer sets the tracer used for run and per-issuer spans.
func WithTracer(t tracer.Tracer) Option {
	return func(v *Verifier) {
		v.tracer = t
	}
}

// WithMetrics enables Prometheus metrics for runs and resolutions.
func WithMetrics(m *metrics.Metrics) Option {
	return func(v *Verifier) {
		v.metrics = m
	}
}

// New creates a Verifier over the given resolver.
func New(resolver IdentityResolver, opts ...Option) *Verifier {
	v := &Verifier{resolver: resolver, tracer: tracer.Noop()}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Test reports whether this verifier applies to the document: a schema-3
// document whose issuer uses DNS-TXT, or a schema-2 document with at least
// one issuer declaring both a smart contract address and DNS-TXT.
func (v *Verifier) Test(doc document.Document) bool {
	switch d := doc.(type) {
	case *document.V3Document:
		return d.Issuer.IdentityProofType == identity.ProofTypeDNSTxt
	case *document.V2Document:
		for _, iss := range d.Issuers {
			if iss.ContractAddress() != "" && iss.IdentityProof.Type == identity.ProofTypeDNSTxt {
				return true
			}
		}
	}
	return false
}

// Verify runs issuer identity verification and always returns a structured
// fragment: domain invalidity is encoded in the fragment's status, and any
// unexpected collaborator failure is converted to an ERROR fragment rather
// than propagating.
func (v *Verifier) Verify(ctx context.Context, doc document.Document) Fragment {
	start := time.Now()
	ctx, span := v.tracer.Start(ctx, "verify.run")

	frag, err := v.run(ctx, doc)
	if err != nil {
		frag = errorFragment(err)
	}

	span.SetAttributes(tracer.String("fragment.status", string(frag.Status)))
	span.End(err)

	if v.metrics != nil {
		v.metrics.RecordVerification(string(frag.Status), time.Since(start))
	}
	return frag
}

func (v *Verifier) run(ctx context.Context, doc document.Document) (Fragment, error) {
	if !v.Test(doc) {
		return skippedFragment(), nil
	}
	switch d := doc.(type) {
	case *document.V3Document:
		return v.verifyV3(ctx, d)
	case *document.V2Document:
		return v.verifyV2(ctx, d)
	}
	return skippedFragment(), nil
}

func (v *Verifier) verifyV3(ctx context.Context, doc *document.V3Document) (Fragment, error) {
	ident, err := v.resolve(ctx, identity.Issuer{
		IdentityProofType:     doc.Issuer.IdentityProofType,
		IdentityProofLocation: doc.Issuer.IdentityProofLocation,
		SmartContractAddress:  doc.Issuer.ContractAddress,
	})
	if err != nil {
		return Fragment{}, err
	}

	frag := newFragment(StatusValid)
	frag.Data = ident
	if !ident.Valid() {
		frag.Status = StatusInvalid
		frag.Reason = ident.Reason
	}
	return frag, nil
}

// verifyV2 fans out one resolution per DNS-TXT issuer and joins all of them:
// every issuer stays represented at its original index, and the first
// invalid issuer in declaration order decides the fragment's reason. A
// single resolution error aborts the whole group rather than yielding
// partial results.
func (v *Verifier) verifyV2(ctx context.Context, doc *document.V2Document) (Fragment, error) {
	results := make([]identity.Identity, len(doc.Issuers))

	g, gctx := errgroup.WithContext(ctx)
	for i, iss := range doc.Issuers {
		if iss.IdentityProof.Type != identity.ProofTypeDNSTxt {
			results[i] = identity.InvalidIdentity(
				iss.IdentityProof.Location,
				iss.ContractAddress(),
				identity.NewReason(identity.CodeInvalidIssuers, "Issuer is not using DNS-TXT identityProof type"),
			)
			continue
		}

		g.Go(func() error {
			ident, err := v.resolve(gctx, identity.Issuer{
				IdentityProofType:     iss.IdentityProof.Type,
				IdentityProofLocation: iss.IdentityProof.Location,
				SmartContractAddress:  iss.ContractAddress(),
			})
			if err != nil {
				return err
			}
			results[i] = ident
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Fragment{}, err
	}

	frag := newFragment(StatusValid)
	frag.Data = results
	for _, ident := range results {
		if !ident.Valid() {
			frag.Status = StatusInvalid
			frag.Reason = ident.Reason
			break
		}
	}
	return frag, nil
}

func (v *Verifier) resolve(ctx context.Context, issuer identity.Issuer) (identity.Identity, error) {
	ctx, span := v.tracer.Start(ctx, "verify.resolve",
		tracer.String("issuer.location", issuer.IdentityProofLocation),
		tracer.String("issuer.address", issuer.SmartContractAddress),
	)
	ident, err := v.resolver.Resolve(ctx, issuer)
	span.End(err)

	if v.metrics != nil {
		outcome := "error"
		if err == nil {
			outcome = strings.ToLower(string(ident.Status))
		}
		v.metrics.RecordResolution(outcome)
	}
	return ident, err
}
