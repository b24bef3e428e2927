package webhook

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ErrUnsupportedContentType is returned for any declared content type other
// than JSON or URL-encoded form data. The caller must answer with a client
// error before any further processing.
var ErrUnsupportedContentType = errors.New("unsupported content type")

// Normalize parses a raw request body into a flat string-keyed mapping.
// Supported content types are application/json and
// application/x-www-form-urlencoded; media type parameters (charset etc.)
// are ignored.
func Normalize(body []byte, contentType string) (map[string]string, error) {
	mediaType := contentType
	if idx := strings.Index(mediaType, ";"); idx >= 0 {
		mediaType = mediaType[:idx]
	}
	mediaType = strings.ToLower(strings.TrimSpace(mediaType))

	switch mediaType {
	case "application/json":
		return normalizeJSON(body)
	case "application/x-www-form-urlencoded":
		return normalizeForm(body)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedContentType, contentType)
	}
}

func normalizeJSON(body []byte) (map[string]string, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var raw map[string]interface{}
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("invalid json payload: %w", err)
	}

	out := make(map[string]string, len(raw))
	for key, value := range raw {
		switch v := value.(type) {
		case string:
			out[key] = v
		case json.Number:
			out[key] = v.String()
		case bool:
			out[key] = strconv.FormatBool(v)
		case nil:
			// absent value, skip
		default:
			// nested objects and arrays carry no flat fields, skip
		}
	}
	return out, nil
}

func normalizeForm(body []byte) (map[string]string, error) {
	values, err := url.ParseQuery(string(body))
	if err != nil {
		return nil, fmt.Errorf("invalid form payload: %w", err)
	}

	out := make(map[string]string, len(values))
	for key, vs := range values {
		if len(vs) > 0 {
			out[key] = vs[0]
		}
	}
	return out, nil
}
