package akn

import "testing"

func TestNormalizeLanguage(t *testing.T) {
	cases := []struct {
		name string
		code string
		want string
	}{
		{name: "two_letter", code: "en", want: "eng"},
		{name: "three_letter", code: "eng", want: "eng"},
		{name: "french", code: "fr", want: "fra"},
		{name: "afrikaans", code: "af", want: "afr"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NormalizeLanguage(tc.code)
			if err != nil {
				t.Fatalf("NormalizeLanguage(%q) failed: %v", tc.code, err)
			}
			if got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestNormalizeLanguage_Invalid(t *testing.T) {
	if _, err := NormalizeLanguage("123"); err == nil {
		t.Error("NormalizeLanguage should reject an ill-formed code")
	}
}
