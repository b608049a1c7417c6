// Package dnstxt fetches and parses openatts DNS TXT records, the on-domain
// half of a DNS-TXT identity proof.
package dnstxt

import "strings"

// Record is one parsed openatts TXT record. A domain may publish several;
// callers scan them in the order the resolver returned them.
type Record struct {
	Addr  string
	NetID string
	Type  string
	Net   string
}

// ParseRecord parses a single TXT string of the form
//
//	openatts net=ethereum netId=1 addr=0x2f60375e8144e16Adf1979936301D8341D58C36C
//
// Returns false for records that are not openatts records or are missing the
// declaration prefix. Unknown keys are ignored so the grammar can grow.
func ParseRecord(txt string) (Record, bool) {
	txt = unquote(strings.TrimSpace(txt))
	fields := strings.Fields(txt)
	if len(fields) == 0 || fields[0] != "openatts" {
		return Record{}, false
	}

	rec := Record{Type: "openatts"}
	for _, field := range fields[1:] {
		key, value, ok := strings.Cut(field, "=")
		if !ok {
			continue
		}
		switch key {
		case "net":
			rec.Net = value
		case "netId":
			rec.NetID = value
		case "addr":
			rec.Addr = value
		}
	}
	return rec, true
}

// unquote strips the surrounding double quotes DNS providers include around
// TXT character strings.
func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}
