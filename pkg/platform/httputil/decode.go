package httputil

import (
	"encoding/json"
	"fmt"
	"io"
)

// DecodeJSON decodes a single JSON value from r into dst, rejecting trailing
// garbage after the value.
func DecodeJSON(r io.Reader, dst any) error {
	dec := json.NewDecoder(r)
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("decode json: %w", err)
	}
	if dec.More() {
		return fmt.Errorf("unexpected trailing data after json value")
	}
	return nil
}
