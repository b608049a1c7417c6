// Package identity resolves issuer identity proofs against DNS and reduces
// the outcome to explicit Valid/Invalid values. Domain invalidity is always
// data here; only malformed input and collaborator failures surface as errors.
package identity

import "errors"

// Code is a stable integer identifier for a verification reason. Codes are
// part of the fragment wire format consumed by downstream aggregators and
// must not be renumbered.
type Code int

const (
	CodeUnexpectedError Code = iota
	CodeInvalidIdentity
	CodeSkipped
	CodeUnsupported
	CodeMatchingRecordNotFound
	CodeUnrecognizedDocument
	CodeInvalidIssuers
)

var codeStrings = map[Code]string{
	CodeUnexpectedError:        "UNEXPECTED_ERROR",
	CodeInvalidIdentity:        "INVALID_IDENTITY",
	CodeSkipped:                "SKIPPED",
	CodeUnsupported:            "UNSUPPORTED",
	CodeMatchingRecordNotFound: "MATCHING_RECORD_NOT_FOUND",
	CodeUnrecognizedDocument:   "UNRECOGNIZED_DOCUMENT",
	CodeInvalidIssuers:         "INVALID_ISSUERS",
}

// String returns the canonical wire name for the code.
func (c Code) String() string {
	if s, ok := codeStrings[c]; ok {
		return s
	}
	return "UNEXPECTED_ERROR"
}

// Reason explains why a verification outcome is not VALID. It travels inside
// identities and fragments; callers branch on Code, never on Message.
type Reason struct {
	Code       Code   `json:"code"`
	CodeString string `json:"codeString"`
	Message    string `json:"message"`
}

// NewReason builds a Reason with the code's canonical string filled in.
func NewReason(code Code, message string) Reason {
	return Reason{Code: code, CodeString: code.String(), Message: message}
}

// Status distinguishes the two identity outcomes.
type Status string

const (
	StatusValid   Status = "VALID"
	StatusInvalid Status = "INVALID"
)

// Identity is the per-issuer resolution result. It is immutable once built;
// use ValidIdentity / InvalidIdentity rather than constructing literals.
type Identity struct {
	Status   Status  `json:"status"`
	Location string  `json:"location,omitempty"`
	Value    string  `json:"value,omitempty"`
	Reason   *Reason `json:"reason,omitempty"`
}

// ValidIdentity records a successful DNS anchor for the given domain and address.
func ValidIdentity(location, value string) Identity {
	return Identity{Status: StatusValid, Location: location, Value: value}
}

// InvalidIdentity records a domain-level failure with its reason.
func InvalidIdentity(location, value string, reason Reason) Identity {
	r := reason
	return Identity{Status: StatusInvalid, Location: location, Value: value, Reason: &r}
}

// Valid reports whether the identity resolved successfully.
func (i Identity) Valid() bool {
	return i.Status == StatusValid
}

// Issuer is a single issuer declaration as handed over by the document
// ingestion boundary. SmartContractAddress is the on-chain record the DNS
// proof must anchor.
type Issuer struct {
	IdentityProofType     string
	IdentityProofLocation string
	SmartContractAddress  string
}

// ProofTypeDNSTxt is the only identity proof scheme this resolver understands.
const ProofTypeDNSTxt = "DNS-TXT"

// Hard errors for malformed issuer input. These are caller bugs, not
// verification outcomes, and are never encoded as Invalid identities.
var (
	ErrUnsupportedIdentityType = errors.New("unsupported identity proof type")
	ErrMissingLocation         = errors.New("identity proof location is missing")
)
