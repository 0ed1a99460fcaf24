// Package akn models Akoma Ntoso legal documents. A single base wrapper
// covers any Akoma Ntoso document; structured documents add the schema's
// structural families (hierarchicalStructure, debateStructure and so on) and
// a registry of concrete document types (act, bill, judgment, ...) that
// extend those families with typed access to titles, dates, languages and
// FRBR identification URIs.
package akn

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// AKNNamespaces maps Akoma Ntoso version labels to their XML namespace URIs.
// Loaded once at startup, never mutated.
var AKNNamespaces = map[string]string{
	"2.0": "http://www.akomantoso.org/2.0",
	"3.0": "http://docs.oasis-open.org/legaldocml/ns/akn/3.0",
}

// DefaultVersion is the Akoma Ntoso version used when none is requested.
const DefaultVersion = "3.0"

// ErrValidation wraps all structural validation failures, so callers can
// test for them with errors.Is.
var ErrValidation = errors.New("invalid Akoma Ntoso document")

// Provenance identifies the tool that stamps lifecycle and reference
// metadata into documents.
type Provenance struct {
	Name string `json:"name"`
	ID   string `json:"id"`
	URL  string `json:"url"`
}

// DefaultProvenance is recorded on documents produced by this module.
var DefaultProvenance = Provenance{
	Name: "acta",
	ID:   "acta",
	URL:  "https://github.com/coolbeans/acta",
}

// knownNamespaces returns the known namespace URIs in descending version
// label order, so that a document declaring several versions resolves to the
// highest.
func knownNamespaces() []string {
	versions := make([]string, 0, len(AKNNamespaces))
	for v := range AKNNamespaces {
		versions = append(versions, v)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(versions)))

	uris := make([]string, len(versions))
	for i, v := range versions {
		uris[i] = AKNNamespaces[v]
	}
	return uris
}

// ResolveNamespace picks the highest-version known Akoma Ntoso namespace
// among the namespace URIs declared by a document.
func ResolveNamespace(declared []string) (string, error) {
	known := knownNamespaces()
	for _, ns := range known {
		for _, have := range declared {
			if ns == have {
				return ns, nil
			}
		}
	}
	return "", fmt.Errorf("%w: Expected to find one of the following Akoma Ntoso XML namespaces: %s. Only these namespaces were found: %s",
		ErrValidation, strings.Join(known, ", "), strings.Join(declared, ", "))
}
