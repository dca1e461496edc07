package features

import (
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/kabirajrana/phishing-website-detection/internal/models"
)

// sfhKeywords approximate the "server form handler" signal with a substring
// match over the whole lowercased URL. A labeled stand-in, not real form
// inspection.
var sfhKeywords = []string{"login", "secure", "verify", "update"}

var ipv4Pattern = regexp.MustCompile(`\d{1,3}(\.\d{1,3}){3}`)

// Placeholder values for fields a URL alone cannot answer.
const (
	placeholderDomainAge   = 2.0
	placeholderPopupWindow = 0.0
)

// Extractor maps a raw URL string to the fixed ten-field feature vector.
// It is pure: no I/O, no shared state.
type Extractor struct{}

func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses raw and computes every feature independently. A parse
// failure aborts the whole vector with an ExtractionError; an absent host
// (scheme-less input, relative paths) only zeroes the host-derived fields
// has_ip_address, prefix_suffix and subdomains_count.
func (e *Extractor) Extract(raw string) (models.FeatureVector, error) {
	parsed, err := url.Parse(raw)
	if err != nil {
		return models.FeatureVector{}, &models.ExtractionError{Input: raw, Err: err}
	}

	// Hostname strips the port and brackets; userinfo is already split off.
	host := parsed.Hostname()
	lower := strings.ToLower(raw)

	return models.FeatureVector{
		URLLength:       float64(utf8.RuneCountInString(raw)),
		HasIPAddress:    boolToFloat(ipv4Pattern.MatchString(host)),
		HTTPS:           boolToFloat(parsed.Scheme == "https"),
		DomainAge:       placeholderDomainAge,
		HasAtSymbol:     boolToFloat(strings.Contains(raw, "@")),
		Redirects:       boolToFloat(strings.Count(raw, "//") > 2),
		PrefixSuffix:    boolToFloat(strings.Contains(host, "-")),
		SFH:             boolToFloat(containsAny(lower, sfhKeywords)),
		SubdomainsCount: float64(subdomainCount(host)),
		PopupWindow:     placeholderPopupWindow,
	}, nil
}

// subdomainCount counts host labels beyond the base domain. Never negative,
// including for a bare host with no dots or an empty host.
func subdomainCount(host string) int {
	if host == "" {
		return 0
	}
	labels := strings.Split(host, ".")
	if len(labels) <= 2 {
		return 0
	}
	return len(labels) - 2
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
