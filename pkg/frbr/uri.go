// Package frbr models Akoma Ntoso FRBR URIs, the canonical identifiers for
// legal works, their expressions and their manifestations.
//
// Work URI format: /{prefix}/{country}[-{locality}]/{doctype}[/{subtype}][/{actor}]/{date}/{number}[/!{component}]
// Example: /akn/za/act/2005/1 or /akn/za-cpt/act/by-law/2005/12/!main
//
// An expression URI appends the language and an optional expression date
// (/akn/za/act/2005/1/eng@2012-01-01), a manifestation URI appends a format
// extension (/akn/za/act/2005/1/eng@2012-01-01.xml).
package frbr

import (
	"fmt"
	"strings"
	"time"
)

// DefaultLanguage is used when a URI carries no language coordinate.
const DefaultLanguage = "eng"

// URI holds the coordinates of an Akoma Ntoso FRBR URI.
type URI struct {
	// Prefix is the leading scheme segment, normally "akn".
	// Akoma Ntoso 2.0 style URIs have no prefix.
	Prefix string `json:"prefix,omitempty"`

	// Country is the two-letter jurisdiction code.
	Country string `json:"country"`

	// Locality is an optional sub-jurisdiction, rendered as country-locality.
	Locality string `json:"locality,omitempty"`

	// DocType is the document type slug, eg. "act".
	DocType string `json:"doctype"`

	// Subtype is an optional document subtype, eg. "by-law".
	Subtype string `json:"subtype,omitempty"`

	// Actor is an optional emanating actor.
	Actor string `json:"actor,omitempty"`

	// Date is the work date, yyyy[-mm[-dd]].
	Date string `json:"date"`

	// Number distinguishes works with otherwise equal coordinates.
	Number string `json:"number"`

	// WorkComponent names a component within the work, eg. "main" or
	// "schedule1".
	WorkComponent string `json:"work_component,omitempty"`

	// Language is the three-letter expression language code.
	Language string `json:"language"`

	// ExpressionDate carries its leading marker, eg. "@2012-01-01" or
	// ":2014". A bare marker ("@") names the latest expression.
	ExpressionDate string `json:"expression_date,omitempty"`

	// Format is the manifestation format extension, eg. "xml".
	Format string `json:"format,omitempty"`
}

// Empty returns a URI with no coordinates beyond the default language.
func Empty() *URI {
	return &URI{Language: DefaultLanguage}
}

// Parse parses an FRBR URI string into its coordinates.
// Returns an error when the string does not follow the FRBR URI format.
func Parse(s string) (*URI, error) {
	orig := s
	if !strings.HasPrefix(s, "/") || len(s) < 2 {
		return nil, fmt.Errorf("invalid FRBR URI: %s", orig)
	}

	u := &URI{Language: DefaultLanguage}

	// A trailing .ext on the final segment is the manifestation format.
	if i := strings.LastIndexByte(s, '/'); i >= 0 {
		if j := strings.LastIndexByte(s[i:], '.'); j > 0 {
			if ext := s[i+j+1:]; isFormat(ext) {
				u.Format = ext
				s = s[:i+j]
			}
		}
	}

	parts := strings.Split(s[1:], "/")
	for _, p := range parts {
		if p == "" {
			return nil, fmt.Errorf("invalid FRBR URI: %s", orig)
		}
	}

	if parts[0] == "akn" {
		u.Prefix = "akn"
		parts = parts[1:]
	}
	if len(parts) < 4 {
		return nil, fmt.Errorf("invalid FRBR URI: %s", orig)
	}

	country, locality, ok := splitPlace(parts[0])
	if !ok {
		return nil, fmt.Errorf("invalid FRBR URI: %s", orig)
	}
	u.Country = country
	u.Locality = locality
	u.DocType = parts[1]
	parts = parts[2:]

	// Up to two optional segments before the date: subtype, then actor.
	// Neither may begin with a digit, which is how they are told apart
	// from the date.
	if len(parts) > 0 && !startsWithDigit(parts[0]) {
		u.Subtype = parts[0]
		parts = parts[1:]
	}
	if len(parts) > 0 && !startsWithDigit(parts[0]) {
		u.Actor = parts[0]
		parts = parts[1:]
	}

	if len(parts) < 2 || !isDate(parts[0]) {
		return nil, fmt.Errorf("invalid FRBR URI: %s", orig)
	}
	u.Date = parts[0]
	u.Number = parts[1]
	parts = parts[2:]

	// Trailing segments: a !component marker and an expression language,
	// in either scope's order.
	for _, p := range parts {
		switch {
		case strings.HasPrefix(p, "!") && len(p) > 1 && u.WorkComponent == "":
			u.WorkComponent = p[1:]
		case isLanguageSegment(p):
			u.Language = p[:3]
			u.ExpressionDate = p[3:]
		default:
			return nil, fmt.Errorf("invalid FRBR URI: %s", orig)
		}
	}

	return u, nil
}

// MustParse is like Parse but panics on error. For use with known-good URIs.
func MustParse(s string) *URI {
	u, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return u
}

// Clone returns a copy of the URI.
func (u *URI) Clone() *URI {
	c := *u
	return &c
}

// Place returns the country code with the locality appended when present.
func (u *URI) Place() string {
	if u.Locality != "" {
		return u.Country + "-" + u.Locality
	}
	return u.Country
}

// WorkURI returns the work-scope URI, with the work component suffix when
// withComponent is true and a component is set.
func (u *URI) WorkURI(withComponent bool) string {
	parts := []string{""}
	if u.Prefix != "" {
		parts = append(parts, u.Prefix)
	}
	parts = append(parts, u.Place(), u.DocType)
	if u.Subtype != "" {
		parts = append(parts, u.Subtype)
	}
	if u.Actor != "" {
		parts = append(parts, u.Actor)
	}
	parts = append(parts, u.Date, u.Number)
	if withComponent && u.WorkComponent != "" {
		parts = append(parts, "!"+u.WorkComponent)
	}
	return strings.Join(parts, "/")
}

// ExpressionURI returns the expression-scope URI, which embeds the language
// and the expression date.
func (u *URI) ExpressionURI(withComponent bool) string {
	uri := u.WorkURI(false) + "/" + u.Language + u.ExpressionDate
	if withComponent && u.WorkComponent != "" {
		uri += "/!" + u.WorkComponent
	}
	return uri
}

// ManifestationURI returns the manifestation-scope URI, the expression URI
// with the format extension when one is set.
func (u *URI) ManifestationURI(withComponent bool) string {
	uri := u.ExpressionURI(withComponent)
	if u.Format != "" {
		uri += "." + u.Format
	}
	return uri
}

// String returns the work URI including any work component.
func (u *URI) String() string {
	return u.WorkURI(true)
}

// DateString renders a time in the yyyy-mm-dd form used throughout FRBR
// metadata.
func DateString(t time.Time) string {
	return t.Format("2006-01-02")
}

func splitPlace(s string) (country, locality string, ok bool) {
	if len(s) < 2 || !isLowerAlpha(s[:2]) {
		return "", "", false
	}
	if len(s) == 2 {
		return s, "", true
	}
	if s[2] != '-' || len(s) == 3 {
		return "", "", false
	}
	return s[:2], s[3:], true
}

func startsWithDigit(s string) bool {
	return s != "" && s[0] >= '0' && s[0] <= '9'
}

// isDate reports whether s is yyyy, yyyy-mm or yyyy-mm-dd.
func isDate(s string) bool {
	switch len(s) {
	case 4, 7, 10:
	default:
		return false
	}
	for i := 0; i < len(s); i++ {
		if i == 4 || i == 7 {
			if s[i] != '-' {
				return false
			}
			continue
		}
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// isLanguageSegment reports whether s is a three-letter language code,
// optionally followed by an expression date marker (@ or :) and date.
func isLanguageSegment(s string) bool {
	if len(s) < 3 || !isLowerAlpha(s[:3]) {
		return false
	}
	rest := s[3:]
	if rest == "" {
		return true
	}
	if rest[0] != '@' && rest[0] != ':' {
		return false
	}
	date := rest[1:]
	return date == "" || isDate(date)
}

func isLowerAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}

func isFormat(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}
