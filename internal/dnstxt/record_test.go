package dnstxt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecord(t *testing.T) {
	tests := []struct {
		name string
		txt  string
		want Record
		ok   bool
	}{
		{
			name: "full openatts record",
			txt:  "openatts net=ethereum netId=1 addr=0x2f60375e8144e16Adf1979936301D8341D58C36C",
			want: Record{
				Type:  "openatts",
				Net:   "ethereum",
				NetID: "1",
				Addr:  "0x2f60375e8144e16Adf1979936301D8341D58C36C",
			},
			ok: true,
		},
		{
			name: "quoted by resolver",
			txt:  `"openatts net=ethereum netId=3 addr=0xabc"`,
			want: Record{Type: "openatts", Net: "ethereum", NetID: "3", Addr: "0xabc"},
			ok:   true,
		},
		{
			name: "surrounding whitespace",
			txt:  "  openatts net=ethereum netId=1 addr=0xabc  ",
			want: Record{Type: "openatts", Net: "ethereum", NetID: "1", Addr: "0xabc"},
			ok:   true,
		},
		{
			name: "unknown keys ignored",
			txt:  "openatts net=ethereum netId=1 addr=0xabc dnssec=true",
			want: Record{Type: "openatts", Net: "ethereum", NetID: "1", Addr: "0xabc"},
			ok:   true,
		},
		{
			name: "unrelated txt record",
			txt:  "v=spf1 include:_spf.google.com ~all",
			ok:   false,
		},
		{
			name: "openatts not first token",
			txt:  "hello openatts net=ethereum",
			ok:   false,
		},
		{
			name: "empty string",
			txt:  "",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseRecord(tt.txt)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
