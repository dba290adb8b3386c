package observability

import (
	"fmt"
	"net/url"
	"strings"
)

// normalizeOTLPHTTPPath appends the per-signal suffix (e.g. /v1/traces) to an
// OTLP HTTP endpoint unless it is already present. Query and fragment survive.
func normalizeOTLPHTTPPath(endpoint, suffix string) (string, error) {
	if strings.TrimSpace(endpoint) == "" {
		return "", fmt.Errorf("endpoint cannot be empty")
	}

	u, err := url.Parse(endpoint)
	if err != nil {
		return "", fmt.Errorf("parse endpoint: %w", err)
	}

	want := "/" + strings.Trim(strings.TrimSpace(suffix), "/")
	path := strings.TrimSuffix(u.Path, "/")
	if !strings.HasSuffix(path, want) {
		path += want
	}
	u.Path = path

	return u.String(), nil
}
