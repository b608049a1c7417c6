package document

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrUnrecognizedDocument is returned for payloads that match neither
// supported schema shape.
var ErrUnrecognizedDocument = errors.New("unrecognized document")

const (
	schemaV2 = "https://schema.openattestation.com/2.0/schema.json"
	schemaV3 = "https://schema.openattestation.com/3.0/schema.json"
)

type rawV2 struct {
	Version string `json:"version"`
	Data    struct {
		Issuers []struct {
			Name             string `json:"name"`
			TokenRegistry    string `json:"tokenRegistry"`
			DocumentStore    string `json:"documentStore"`
			CertificateStore string `json:"certificateStore"`
			IdentityProof    struct {
				Type     string `json:"type"`
				Location string `json:"location"`
			} `json:"identityProof"`
		} `json:"issuers"`
	} `json:"data"`
	Signature struct {
		TargetHash string `json:"targetHash"`
		MerkleRoot string `json:"merkleRoot"`
	} `json:"signature"`
}

type rawV3 struct {
	Version  string `json:"version"`
	Metadata struct {
		Proof struct {
			Method string `json:"method"`
			Value  string `json:"value"`
		} `json:"proof"`
		IdentityProof struct {
			Type       string `json:"type"`
			Identifier string `json:"identifier"`
		} `json:"identityProof"`
	} `json:"openAttestationMetadata"`
	Proof struct {
		TargetHash string `json:"targetHash"`
		MerkleRoot string `json:"merkleRoot"`
	} `json:"proof"`
}

// Parse disambiguates a wrapped document into its tagged schema variant.
// This is the only place that inspects the wrapper's version field.
func Parse(raw []byte) (Document, error) {
	var probe struct {
		Version string          `json:"version"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnrecognizedDocument, err)
	}

	switch probe.Version {
	case schemaV3:
		return parseV3(raw)
	case schemaV2, "open-attestation/2.0":
		return parseV2(raw)
	case "":
		// Early schema-2 wrappers omit the version field but always
		// carry salted data.issuers.
		if len(probe.Data) > 0 {
			return parseV2(raw)
		}
	}
	return nil, fmt.Errorf("%w: version %q", ErrUnrecognizedDocument, probe.Version)
}

func parseV2(raw []byte) (*V2Document, error) {
	var parsed rawV2
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnrecognizedDocument, err)
	}
	if len(parsed.Data.Issuers) == 0 {
		return nil, fmt.Errorf("%w: no issuers", ErrUnrecognizedDocument)
	}

	doc := &V2Document{
		Issuers:    make([]V2Issuer, 0, len(parsed.Data.Issuers)),
		TargetHash: parsed.Signature.TargetHash,
		MerkleRoot: parsed.Signature.MerkleRoot,
	}
	for _, iss := range parsed.Data.Issuers {
		doc.Issuers = append(doc.Issuers, V2Issuer{
			Name:             unsalt(iss.Name),
			TokenRegistry:    unsalt(iss.TokenRegistry),
			DocumentStore:    unsalt(iss.DocumentStore),
			CertificateStore: unsalt(iss.CertificateStore),
			IdentityProof: IdentityProof{
				Type:     unsalt(iss.IdentityProof.Type),
				Location: unsalt(iss.IdentityProof.Location),
			},
		})
	}
	return doc, nil
}

func parseV3(raw []byte) (*V3Document, error) {
	var parsed rawV3
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnrecognizedDocument, err)
	}
	return &V3Document{
		Issuer: V3Issuer{
			IdentityProofType:     parsed.Metadata.IdentityProof.Type,
			IdentityProofLocation: parsed.Metadata.IdentityProof.Identifier,
			ProofMethod:           parsed.Metadata.Proof.Method,
			ContractAddress:       parsed.Metadata.Proof.Value,
		},
		TargetHash: parsed.Proof.TargetHash,
		MerkleRoot: parsed.Proof.MerkleRoot,
	}, nil
}

// unsalt strips the schema-2 obfuscation wrapping "<salt>:<type>:<value>",
// returning the value verbatim. Unsalted input passes through unchanged.
func unsalt(field string) string {
	_, rest, ok := strings.Cut(field, ":")
	if !ok {
		return field
	}
	typ, value, ok := strings.Cut(rest, ":")
	if !ok {
		return field
	}
	switch typ {
	case "string", "number", "boolean", "null", "undefined":
		return value
	default:
		return field
	}
}
