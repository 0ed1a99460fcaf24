package akn

import (
	"fmt"

	"golang.org/x/text/language"
)

// NormalizeLanguage maps a two- or three-letter language code to the
// three-letter ISO 639 form used in FRBR metadata, eg. "en" to "eng".
func NormalizeLanguage(code string) (string, error) {
	base, err := language.ParseBase(code)
	if err != nil {
		return "", fmt.Errorf("unknown language %q: %w", code, err)
	}
	return base.ISO3(), nil
}
