package akn

import (
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

// parseXML parses raw markup into an element tree, decoding any character
// encoding declared in the XML declaration.
func parseXML(data []byte) (*etree.Document, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = charsetReader
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("parsing XML: %w", err)
	}
	return doc, nil
}

// charsetReader decodes non-UTF-8 input using the IANA registry name from
// the document's encoding declaration.
func charsetReader(charset string, input io.Reader) (io.Reader, error) {
	if charset == "" || strings.EqualFold(charset, "utf-8") {
		return input, nil
	}
	enc, err := ianaindex.IANA.Encoding(charset)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("unsupported charset %q", charset)
	}
	return transform.NewReader(input, enc.NewDecoder()), nil
}

// declaredNamespaces collects every namespace URI declared by xmlns
// attributes anywhere in the document, in document order, without
// duplicates.
func declaredNamespaces(doc *etree.Document) []string {
	var uris []string
	seen := make(map[string]bool)

	var walk func(el *etree.Element)
	walk = func(el *etree.Element) {
		for _, attr := range el.Attr {
			if attr.Space != "xmlns" && !(attr.Space == "" && attr.Key == "xmlns") {
				continue
			}
			if !seen[attr.Value] {
				seen[attr.Value] = true
				uris = append(uris, attr.Value)
			}
		}
		for _, child := range el.ChildElements() {
			walk(child)
		}
	}
	if root := doc.Root(); root != nil {
		walk(root)
	}
	return uris
}

func lastSegment(path string) string {
	parts := strings.Split(path, ".")
	return parts[len(parts)-1]
}
