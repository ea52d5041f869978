package ai

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDataURI marks audio payloads that do not parse as a base64 data URI
var ErrInvalidDataURI = errors.New("invalid audio data URI")

// ParseDataURI splits a "data:<mime>;base64,<payload>" URI into its MIME type
// and decoded bytes. This is the only audio format the gateway accepts.
func ParseDataURI(uri string) (mimeType string, data []byte, err error) {
	if !strings.HasPrefix(uri, "data:") {
		return "", nil, fmt.Errorf("%w: missing data: prefix", ErrInvalidDataURI)
	}

	rest := strings.TrimPrefix(uri, "data:")
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, fmt.Errorf("%w: missing payload", ErrInvalidDataURI)
	}

	mimeType, encoding, ok := strings.Cut(meta, ";")
	if !ok || encoding != "base64" {
		return "", nil, fmt.Errorf("%w: expected base64 encoding", ErrInvalidDataURI)
	}
	if mimeType == "" {
		return "", nil, fmt.Errorf("%w: missing MIME type", ErrInvalidDataURI)
	}

	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrInvalidDataURI, err)
	}
	return mimeType, data, nil
}
