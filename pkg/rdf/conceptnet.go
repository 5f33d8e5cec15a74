package rdf

import (
	"errors"
	"fmt"
	"strings"
)

// RootURL is the base under which compact ConceptNet URIs are published.
const RootURL = "http://conceptnet5.media.mit.edu/data/5.2"

// ErrInvalidURI reports a ConceptNet URI that does not start with '/'.
// Hitting it means the caller passed something that was never a
// ConceptNet URI, not that the input data is bad.
var ErrInvalidURI = errors.New("conceptnet uri must start with '/'")

// FullConceptNetURL translates a ConceptNet URI into a fully-specified
// URL.
//
//	FullConceptNetURL("/c/en/dog")
//	// "http://conceptnet5.media.mit.edu/data/5.2/c/en/dog"
func FullConceptNetURL(uri string) (string, error) {
	if !strings.HasPrefix(uri, "/") {
		return "", fmt.Errorf("%w: %q", ErrInvalidURI, uri)
	}
	return RootURL + EncodeURLComponent(uri), nil
}
