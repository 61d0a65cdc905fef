package notify

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var base64URLToStd = strings.NewReplacer("-", "+", "_", "/")

// DecodeReference recovers order metadata from a reference token: URL-safe
// base64 characters are mapped back to the standard alphabet, the string is
// padded to a multiple of 4 and decoded as JSON. Callers treat any error as
// recoverable and fall back to the raw token.
func DecodeReference(token string) (*OrderMetadata, error) {
	if token == "" {
		return nil, errors.New("empty reference token")
	}

	std := base64URLToStd.Replace(token)
	if rem := len(std) % 4; rem != 0 {
		std += strings.Repeat("=", 4-rem)
	}

	raw, err := base64.StdEncoding.DecodeString(std)
	if err != nil {
		return nil, fmt.Errorf("decode reference: %w", err)
	}

	var meta OrderMetadata
	if err := json.Unmarshal(raw, &meta); err != nil {
		return nil, fmt.Errorf("unmarshal reference: %w", err)
	}

	return &meta, nil
}
