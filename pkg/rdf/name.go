package rdf

import "strings"

// ResourceName derives a concise name for a semantic web resource from
// its URL. The name is the fragment identifier if one is present, or the
// path after the last '/resource/', or the item after the final slash.
//
// '/resource/' is special-cased because DBPedia resource names are
// Wikipedia article titles, which may themselves contain slashes. The
// effect is to recover an object's "name" while ignoring the namespace
// it is stored under.
//
//	ResourceName("<http://dbpedia.org/resource/N%C3%BAria_Espert>")
//	// "Núria_Espert"
func ResourceName(encodedURL string) string {
	path, fragment := splitURL(DecodeURL(encodedURL))
	if fragment != "" {
		return fragment
	}
	path = strings.Trim(path, "/")
	if idx := strings.LastIndex(path, "/resource/"); idx >= 0 {
		return path[idx+len("/resource/"):]
	}
	return path[strings.LastIndex(path, "/")+1:]
}

// splitURL separates a decoded URL into its path and fragment, without
// re-decoding any component. The query and the scheme://authority part
// are discarded; a URL with no scheme is treated as a bare path.
func splitURL(s string) (path, fragment string) {
	if i := strings.Index(s, "#"); i >= 0 {
		fragment = s[i+1:]
		s = s[:i]
	}
	if i := strings.Index(s, "?"); i >= 0 {
		s = s[:i]
	}
	if i := strings.Index(s, "://"); i >= 0 {
		rest := s[i+3:]
		if j := strings.Index(rest, "/"); j >= 0 {
			return rest[j:], fragment
		}
		return "", fragment
	}
	// Scheme without an authority, like mailto:x. Everything after the
	// colon is the path.
	if i := strings.IndexByte(s, ':'); i > 0 && isScheme(s[:i]) {
		return s[i+1:], fragment
	}
	return s, fragment
}

func isScheme(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z':
		case i > 0 && (c >= '0' && c <= '9' || c == '+' || c == '-' || c == '.'):
		default:
			return false
		}
	}
	return len(s) > 0
}
