package validators

import (
	"fmt"
	"net/url"
	"strings"
)

// NormalizeLinkURL prefixes https:// when no scheme was given, then checks
// the result parses as an absolute URL.
func NormalizeLinkURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("url is empty")
	}

	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "", fmt.Errorf("invalid url")
	}

	return raw, nil
}
