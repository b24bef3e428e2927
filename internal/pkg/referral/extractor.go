package referral

import (
	"strings"
	"unicode"
)

// DefaultPrefix is the attribution prefix affiliates put in front of their
// code ("REF-JOHND"). Overridable via REFERRAL_PREFIX.
const DefaultPrefix = "REF"

// ExtractCode pulls a normalized referral code out of a free-text
// attribution field using the default prefix. An empty result means no
// attribution.
func ExtractCode(raw string) string {
	return ExtractCodeWithPrefix(raw, DefaultPrefix)
}

// ExtractCodeWithPrefix matches "<prefix>-<code>" case-insensitively and
// returns the upper-cased suffix. URL-shaped input is discarded as
// non-attributable: browsers and redirect chains routinely fill referrer
// fields with URLs that are not affiliate codes. Anything else is used
// verbatim as a best-effort code, which matches the upstream notifier's
// historical behavior.
func ExtractCodeWithPrefix(raw, prefix string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}

	needle := strings.ToUpper(strings.TrimSpace(prefix)) + "-"
	upper := strings.ToUpper(s)
	if idx := strings.Index(upper, needle); idx >= 0 {
		code := upper[idx+len(needle):]
		if cut := strings.IndexFunc(code, unicode.IsSpace); cut >= 0 {
			code = code[:cut]
		}
		if code != "" {
			return code
		}
	}

	if looksLikeURL(s) {
		return ""
	}

	return upper
}

func looksLikeURL(s string) bool {
	if strings.Contains(s, "://") || strings.Contains(s, "/") {
		return true
	}
	return strings.HasPrefix(strings.ToLower(s), "www.")
}
