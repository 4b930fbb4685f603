package markdown

import (
	"regexp"
	"strconv"
	"strings"
)

// dangerousChars is the full set of characters the content sanitizer
// entity-encodes when sanitization is enabled, beyond the always-on
// minimal set.
const dangerousChars = "&<>\"'\t=();:%\\[]{}!@#$^*+|?~/-"

// minimalChars is the set always encoded, sanitization on or off, so the
// output is well-formed HTML regardless of configuration.
const minimalChars = `&<>"'`

var (
	eventHandlerPattern = regexp.MustCompile(`(?i)\bon\w+\s*=\s*[^\s>]*`)
	javascriptSchemeRe  = regexp.MustCompile(`(?i)javascript:`)
)

// namedEntities covers the handful of dangerousChars that have a named
// HTML entity; everything else in the set falls back to a numeric one.
var namedEntities = map[byte]string{
	'&':  "&amp;",
	'<':  "&lt;",
	'>':  "&gt;",
	'"':  "&quot;",
	'\'': "&#39;",
}

// encodeContent applies sanitization to text destined for element
// content or an attribute value. When full is false, only the minimal
// always-on entity set is encoded.
func encodeContent(s string, full bool) string {
	if full {
		s = eventHandlerPattern.ReplaceAllString(s, "")
		s = javascriptSchemeRe.ReplaceAllString(s, "")
	}

	set := minimalChars
	if full {
		set = dangerousChars
	}

	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if strings.IndexByte(set, c) < 0 {
			sb.WriteByte(c)

			continue
		}
		if entity, ok := namedEntities[c]; ok {
			sb.WriteString(entity)

			continue
		}
		sb.WriteString("&#")
		sb.WriteString(strconv.Itoa(int(c)))
		sb.WriteByte(';')
	}

	return sb.String()
}

// allowedURLSchemes are the schemes sanitizeURL lets through unchanged.
var allowedURLSchemes = []string{"http:", "https:", "mailto:", "tel:"}

// sanitizeURL returns url unchanged if it uses an allowed scheme or is a
// safe relative path; otherwise it returns "#".
func sanitizeURL(url string) string {
	if url == "" {
		return "#"
	}

	lower := strings.ToLower(url)
	for _, scheme := range allowedURLSchemes {
		if strings.HasPrefix(lower, scheme) {
			return url
		}
	}

	if strings.HasPrefix(url, "./") && !strings.Contains(url, "../") {
		return url
	}

	return "#"
}
