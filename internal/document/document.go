// Package document is the ingestion boundary for wrapped documents. It
// disambiguates the two supported schema shapes once, at parse time, so the
// rest of the system works with an explicit tagged variant instead of
// probing fields.
package document

// Document is the sealed union of the two supported schema shapes.
// Exactly *V2Document and *V3Document implement it.
type Document interface {
	schemaVersion() int
}

// IdentityProof is an issuer's declaration of how its identity is anchored.
type IdentityProof struct {
	Type     string
	Location string
}

// V2Issuer is one entry of a schema-2 document's ordered issuer list. At
// most one of the three contract fields is expected to be set.
type V2Issuer struct {
	Name             string
	TokenRegistry    string
	DocumentStore    string
	CertificateStore string
	IdentityProof    IdentityProof
}

// ContractAddress returns the issuer's declared smart contract address, or
// empty when the issuer declares none.
func (i V2Issuer) ContractAddress() string {
	switch {
	case i.TokenRegistry != "":
		return i.TokenRegistry
	case i.DocumentStore != "":
		return i.DocumentStore
	default:
		return i.CertificateStore
	}
}

// V2Document owns an ordered sequence of issuers. Order is meaningful:
// verification output preserves it.
type V2Document struct {
	Issuers    []V2Issuer
	TargetHash string
	MerkleRoot string
}

func (*V2Document) schemaVersion() int { return 2 }

// V3Issuer is a schema-3 document's single issuer declaration.
type V3Issuer struct {
	IdentityProofType     string
	IdentityProofLocation string
	ProofMethod           string
	ContractAddress       string
}

// V3Document owns exactly one issuer.
type V3Document struct {
	Issuer     V3Issuer
	TargetHash string
	MerkleRoot string
}

func (*V3Document) schemaVersion() int { return 3 }
