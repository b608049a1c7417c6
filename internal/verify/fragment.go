// Package verify orchestrates issuer identity verification for wrapped
// documents and reduces the outcome to one verification fragment.
package verify

import "attestor/internal/identity"

// Status is a fragment's terminal verdict.
type Status string

const (
	StatusValid   Status = "VALID"
	StatusInvalid Status = "INVALID"
	StatusSkipped Status = "SKIPPED"
	StatusError   Status = "ERROR"
)

// Fixed identifiers for this verifier; downstream aggregators key on them.
const (
	FragmentName = "OpenAttestationDnsTxtIdentityProof"
	FragmentType = "ISSUER_IDENTITY"
)

// Fragment is the unit of verification output for the issuer identity
// concern. One is produced per verification run and never mutated after
// construction. Data carries a single Identity for schema-3 documents and
// the full ordered identity sequence for schema-2 documents.
type Fragment struct {
	Name   string           `json:"name"`
	Type   string           `json:"type"`
	Status Status           `json:"status"`
	Data   any              `json:"data,omitempty"`
	Reason *identity.Reason `json:"reason,omitempty"`
}

func newFragment(status Status) Fragment {
	return Fragment{Name: FragmentName, Type: FragmentType, Status: status}
}

// skippedFragment is the fixed result for documents this verifier does not
// apply to.
func skippedFragment() Fragment {
	f := newFragment(StatusSkipped)
	reason := identity.NewReason(identity.CodeSkipped,
		`Document issuers doesn't have "documentStore" / "tokenRegistry" property or doesn't use DNS-TXT type`)
	f.Reason = &reason
	return f
}

// errorFragment converts an unexpected failure into a structured result so
// collaborator errors never propagate raw to the caller.
func errorFragment(err error) Fragment {
	f := newFragment(StatusError)
	reason := identity.NewReason(identity.CodeUnexpectedError, err.Error())
	f.Reason = &reason
	return f
}
