package frbr

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name string
		uri  string
		want URI
	}{
		{
			name: "work",
			uri:  "/akn/za/act/2005/1",
			want: URI{Prefix: "akn", Country: "za", DocType: "act", Date: "2005", Number: "1", Language: "eng"},
		},
		{
			name: "work_no_prefix",
			uri:  "/za/act/1998/56",
			want: URI{Country: "za", DocType: "act", Date: "1998", Number: "56", Language: "eng"},
		},
		{
			name: "locality",
			uri:  "/akn/za-cpt/act/2005/1",
			want: URI{Prefix: "akn", Country: "za", Locality: "cpt", DocType: "act", Date: "2005", Number: "1", Language: "eng"},
		},
		{
			name: "subtype",
			uri:  "/akn/za/act/by-law/2005/1",
			want: URI{Prefix: "akn", Country: "za", DocType: "act", Subtype: "by-law", Date: "2005", Number: "1", Language: "eng"},
		},
		{
			name: "subtype_and_actor",
			uri:  "/akn/za/act/by-law/council/2005/1",
			want: URI{Prefix: "akn", Country: "za", DocType: "act", Subtype: "by-law", Actor: "council", Date: "2005", Number: "1", Language: "eng"},
		},
		{
			name: "full_date",
			uri:  "/akn/za/act/2005-03-21/1",
			want: URI{Prefix: "akn", Country: "za", DocType: "act", Date: "2005-03-21", Number: "1", Language: "eng"},
		},
		{
			name: "work_component",
			uri:  "/akn/za/act/2005/1/!main",
			want: URI{Prefix: "akn", Country: "za", DocType: "act", Date: "2005", Number: "1", WorkComponent: "main", Language: "eng"},
		},
		{
			name: "expression",
			uri:  "/akn/za/act/2005/1/eng@2012-01-01",
			want: URI{Prefix: "akn", Country: "za", DocType: "act", Date: "2005", Number: "1", Language: "eng", ExpressionDate: "@2012-01-01"},
		},
		{
			name: "expression_latest",
			uri:  "/akn/za/act/2005/1/eng@",
			want: URI{Prefix: "akn", Country: "za", DocType: "act", Date: "2005", Number: "1", Language: "eng", ExpressionDate: "@"},
		},
		{
			name: "expression_colon_marker",
			uri:  "/akn/za/act/2005/1/afr:2014",
			want: URI{Prefix: "akn", Country: "za", DocType: "act", Date: "2005", Number: "1", Language: "afr", ExpressionDate: ":2014"},
		},
		{
			name: "expression_with_component",
			uri:  "/akn/za/act/2005/1/eng@2012-01-01/!schedule1",
			want: URI{Prefix: "akn", Country: "za", DocType: "act", Date: "2005", Number: "1", Language: "eng", ExpressionDate: "@2012-01-01", WorkComponent: "schedule1"},
		},
		{
			name: "manifestation",
			uri:  "/akn/za/act/2005/1/eng@2012-01-01.xml",
			want: URI{Prefix: "akn", Country: "za", DocType: "act", Date: "2005", Number: "1", Language: "eng", ExpressionDate: "@2012-01-01", Format: "xml"},
		},
		{
			name: "manifestation_with_component",
			uri:  "/akn/za/act/2005/1/eng@2012-01-01/!main.xml",
			want: URI{Prefix: "akn", Country: "za", DocType: "act", Date: "2005", Number: "1", Language: "eng", ExpressionDate: "@2012-01-01", WorkComponent: "main", Format: "xml"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.uri)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tc.uri, err)
			}
			if *got != tc.want {
				t.Errorf("Parse(%q): got %+v, want %+v", tc.uri, *got, tc.want)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		uri  string
	}{
		{name: "empty", uri: ""},
		{name: "no_leading_slash", uri: "za/act/2005/1"},
		{name: "only_slash", uri: "/"},
		{name: "one_letter_country", uri: "/akn/z/act/2005/1"},
		{name: "uppercase_country", uri: "/akn/ZA/act/2005/1"},
		{name: "empty_locality", uri: "/akn/za-/act/2005/1"},
		{name: "missing_number", uri: "/akn/za/act/2005"},
		{name: "bad_date", uri: "/akn/za/act/20x5/1"},
		{name: "empty_segment", uri: "/akn/za//2005/1"},
		{name: "trailing_slash", uri: "/akn/za/act/2005/1/"},
		{name: "two_letter_language", uri: "/akn/za/act/2005/1/en@2012"},
		{name: "bad_expression_marker", uri: "/akn/za/act/2005/1/eng#2012"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse(tc.uri); err == nil {
				t.Errorf("Parse(%q): expected error, got nil", tc.uri)
			}
		})
	}
}

func TestWorkURI(t *testing.T) {
	cases := []struct {
		name          string
		uri           URI
		withComponent bool
		expected      string
	}{
		{
			name:          "basic",
			uri:           URI{Prefix: "akn", Country: "za", DocType: "act", Date: "2005", Number: "1", Language: "eng"},
			withComponent: true,
			expected:      "/akn/za/act/2005/1",
		},
		{
			name:          "component_included",
			uri:           URI{Prefix: "akn", Country: "za", DocType: "act", Date: "2005", Number: "1", WorkComponent: "main", Language: "eng"},
			withComponent: true,
			expected:      "/akn/za/act/2005/1/!main",
		},
		{
			name:          "component_suppressed",
			uri:           URI{Prefix: "akn", Country: "za", DocType: "act", Date: "2005", Number: "1", WorkComponent: "main", Language: "eng"},
			withComponent: false,
			expected:      "/akn/za/act/2005/1",
		},
		{
			name:          "no_prefix",
			uri:           URI{Country: "za", DocType: "act", Date: "1998", Number: "56", Language: "eng"},
			withComponent: true,
			expected:      "/za/act/1998/56",
		},
		{
			name:          "locality_subtype_actor",
			uri:           URI{Prefix: "akn", Country: "za", Locality: "cpt", DocType: "act", Subtype: "by-law", Actor: "council", Date: "2005", Number: "12", Language: "eng"},
			withComponent: true,
			expected:      "/akn/za-cpt/act/by-law/council/2005/12",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.uri.WorkURI(tc.withComponent)
			if got != tc.expected {
				t.Errorf("WorkURI(%v): got %q, want %q", tc.withComponent, got, tc.expected)
			}
		})
	}
}

func TestExpressionURI(t *testing.T) {
	u := URI{
		Prefix: "akn", Country: "za", DocType: "act",
		Date: "2005", Number: "1", WorkComponent: "main",
		Language: "eng", ExpressionDate: "@2012-01-01",
	}

	got := u.ExpressionURI(true)
	expected := "/akn/za/act/2005/1/eng@2012-01-01/!main"
	if got != expected {
		t.Errorf("ExpressionURI(true): got %q, want %q", got, expected)
	}

	got = u.ExpressionURI(false)
	expected = "/akn/za/act/2005/1/eng@2012-01-01"
	if got != expected {
		t.Errorf("ExpressionURI(false): got %q, want %q", got, expected)
	}
}

func TestManifestationURI(t *testing.T) {
	u := URI{
		Prefix: "akn", Country: "za", DocType: "act",
		Date: "2005", Number: "1",
		Language: "eng", ExpressionDate: "@2012-01-01", Format: "xml",
	}

	got := u.ManifestationURI(false)
	expected := "/akn/za/act/2005/1/eng@2012-01-01.xml"
	if got != expected {
		t.Errorf("ManifestationURI(false): got %q, want %q", got, expected)
	}

	// Without a format the manifestation URI is the expression URI.
	u.Format = ""
	if got := u.ManifestationURI(false); got != u.ExpressionURI(false) {
		t.Errorf("ManifestationURI without format: got %q, want %q", got, u.ExpressionURI(false))
	}
}

func TestParseRoundTrip(t *testing.T) {
	uris := []string{
		"/akn/za/act/2005/1",
		"/akn/za-cpt/act/by-law/council/2005/12",
		"/za/act/1998/56",
	}

	for _, s := range uris {
		u, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", s, err)
		}
		if got := u.WorkURI(true); got != s {
			t.Errorf("round trip of %q: got %q", s, got)
		}
	}

	// Expression and manifestation forms round trip through their own
	// derivations.
	u, err := Parse("/akn/za/act/2005/1/eng@2012-01-01/!main.pdf")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got := u.ManifestationURI(true); got != "/akn/za/act/2005/1/eng@2012-01-01/!main.pdf" {
		t.Errorf("manifestation round trip: got %q", got)
	}
}

func TestPlace(t *testing.T) {
	u := URI{Country: "za"}
	if got := u.Place(); got != "za" {
		t.Errorf("Place: got %q, want %q", got, "za")
	}
	u.Locality = "cpt"
	if got := u.Place(); got != "za-cpt" {
		t.Errorf("Place with locality: got %q, want %q", got, "za-cpt")
	}
}

func TestEmpty(t *testing.T) {
	u := Empty()
	if u.Language != DefaultLanguage {
		t.Errorf("Empty language: got %q, want %q", u.Language, DefaultLanguage)
	}
	if u.Country != "" || u.DocType != "" {
		t.Errorf("Empty should carry no coordinates, got %+v", u)
	}
}

func TestClone(t *testing.T) {
	u := MustParse("/akn/za/act/2005/1/!main")
	c := u.Clone()
	c.WorkComponent = "schedule1"
	if u.WorkComponent != "main" {
		t.Errorf("Clone mutated the original: %q", u.WorkComponent)
	}
}

func TestDateString(t *testing.T) {
	d := time.Date(2012, time.March, 2, 15, 4, 5, 0, time.UTC)
	if got := DateString(d); got != "2012-03-02" {
		t.Errorf("DateString: got %q, want %q", got, "2012-03-02")
	}
}
