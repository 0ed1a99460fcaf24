package akn

import (
	"fmt"

	"github.com/beevik/etree"
)

// Structure describes an Akoma Ntoso structural family, such as
// hierarchicalStructure or debateStructure.
type Structure struct {
	// Name is the structure type name from the Akoma Ntoso schema.
	Name string `json:"name"`

	// ContentTag is the name of the structure's main content element.
	ContentTag string `json:"content_tag"`
}

// Type describes a concrete Akoma Ntoso document type: a structural family
// plus the name of the primary document element.
type Type struct {
	Structure

	// DocumentType is the document type name, which is also the tag of
	// the root element's first child.
	DocumentType string `json:"document_type"`

	// EmptyContent, when set, replaces the default skeleton content
	// element (an empty ContentTag element).
	EmptyContent func() *etree.Element `json:"-"`

	// EmptyAttrs, when set, replaces the default attributes of the
	// skeleton's primary document element ({"name": lowercased document
	// type}).
	EmptyAttrs func() map[string]string `json:"-"`
}

// StructuredDocument is a document with a known structural type: the root's
// first child is the primary document element named by the type descriptor.
type StructuredDocument struct {
	Document

	typ Type
}

// NewStructuredDocument parses xml as a document of the given type. When xml
// is empty, an empty skeleton document for the default version is parsed
// instead.
func NewStructuredDocument(typ Type, xml []byte) (*StructuredDocument, error) {
	if len(xml) == 0 {
		skeleton, err := EmptyDocument(typ, DefaultVersion)
		if err != nil {
			return nil, err
		}
		xml = []byte(skeleton)
	}

	s := &StructuredDocument{typ: typ}
	s.Provenance = DefaultProvenance
	if err := s.parse(xml); err != nil {
		return nil, err
	}
	if err := validateFirstChild(s.root, typ.DocumentType); err != nil {
		return nil, err
	}
	s.bindAliases()
	return s, nil
}

// NewFromXML parses xml as whichever registered document type matches the
// root element's first child.
func NewFromXML(xml []byte) (*StructuredDocument, error) {
	doc, err := parseXML(xml)
	if err != nil {
		return nil, err
	}
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("%w: document has no root element", ErrValidation)
	}
	if root.Tag != "akomaNtoso" {
		return nil, fmt.Errorf("%w: XML root element must be akomaNtoso, but got %s instead", ErrValidation, root.Tag)
	}
	children := root.ChildElements()
	if len(children) < 1 {
		return nil, fmt.Errorf("%w: XML root element must have at least one child", ErrValidation)
	}

	typ, ok := ForDocumentType(children[0].Tag)
	if !ok {
		return nil, fmt.Errorf("%w: unknown document type %s", ErrValidation, children[0].Tag)
	}
	return NewStructuredDocument(typ, xml)
}

func validateFirstChild(root *etree.Element, documentType string) error {
	children := root.ChildElements()
	if len(children) < 1 {
		return fmt.Errorf("%w: XML root element must have at least one child", ErrValidation)
	}
	if name := children[0].Tag; name != documentType {
		return fmt.Errorf("%w: Expected %s as first child of root element, but got %s instead", ErrValidation, documentType, name)
	}
	return nil
}

// bindAliases makes dotted paths address the main element by the document
// type name and the main content element by the content tag, alongside the
// canonical main, main_content and meta names.
func (s *StructuredDocument) bindAliases() {
	s.aliases = map[string]func() *etree.Element{
		"main":             s.Main,
		"main_content":     s.MainContent,
		"meta":             s.Meta,
		s.typ.DocumentType: s.Main,
		s.typ.ContentTag:   s.MainContent,
	}
}

// Type returns the document's type descriptor.
func (s *StructuredDocument) Type() Type {
	return s.typ
}

// Main returns the primary document element, the root's first child.
func (s *StructuredDocument) Main() *etree.Element {
	return s.childByLocal(s.root, s.typ.DocumentType)
}

// MainContent returns the main content element of the primary document
// element.
func (s *StructuredDocument) MainContent() *etree.Element {
	return s.childByLocal(s.Main(), s.typ.ContentTag)
}

// Meta returns the meta element of the primary document element.
func (s *StructuredDocument) Meta() *etree.Element {
	return s.childByLocal(s.Main(), "meta")
}
