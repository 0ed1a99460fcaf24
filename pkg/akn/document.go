package akn

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
)

// Document is the base wrapper around any Akoma Ntoso document. It owns the
// parsed element tree; mutations are applied in place. A Document is not
// safe for concurrent mutation.
type Document struct {
	doc       *etree.Document
	root      *etree.Element
	namespace string

	// Provenance identifies this instance in lifecycle and reference
	// metadata. Defaults to DefaultProvenance.
	Provenance Provenance

	// aliases resolve the first segment of a dotted path to a canonical
	// element. Bound by structured documents from their type constants.
	aliases map[string]func() *etree.Element
}

// NewDocument parses raw markup as an Akoma Ntoso document.
func NewDocument(xml []byte) (*Document, error) {
	d := &Document{Provenance: DefaultProvenance}
	if err := d.parse(xml); err != nil {
		return nil, err
	}
	return d, nil
}

// parse validates the root element and resolves the document namespace.
func (d *Document) parse(xml []byte) error {
	doc, err := parseXML(xml)
	if err != nil {
		return err
	}

	root := doc.Root()
	if root == nil {
		return fmt.Errorf("%w: document has no root element", ErrValidation)
	}
	if root.Tag != "akomaNtoso" {
		return fmt.Errorf("%w: XML root element must be akomaNtoso, but got %s instead", ErrValidation, root.Tag)
	}

	ns, err := ResolveNamespace(declaredNamespaces(doc))
	if err != nil {
		return err
	}

	d.doc = doc
	d.root = root
	d.namespace = ns
	return nil
}

// Root returns the akomaNtoso root element.
func (d *Document) Root() *etree.Element {
	return d.root
}

// Namespace returns the resolved Akoma Ntoso namespace URI.
func (d *Document) Namespace() string {
	return d.namespace
}

// ToXML serializes the document. The tree is not mutated.
func (d *Document) ToXML() ([]byte, error) {
	return d.doc.WriteToBytes()
}

// ToPrettyXML serializes an indented copy of the document, leaving the
// owned tree's whitespace untouched.
func (d *Document) ToPrettyXML() ([]byte, error) {
	indented := d.doc.Copy()
	indented.Indent(2)
	return indented.WriteToBytes()
}

// GetElement resolves a dot-separated chain of child element names. The
// first segment is resolved through the document's alias table, falling back
// to the root element's direct children; each further segment is a direct
// named-child lookup. Returns nil when any segment is absent.
func (d *Document) GetElement(path string) *etree.Element {
	parts := strings.Split(path, ".")
	node := d.resolveAlias(parts[0])
	if node == nil {
		node = d.childByLocal(d.root, parts[0])
	}
	for _, p := range parts[1:] {
		if node == nil {
			return nil
		}
		node = d.childByLocal(node, p)
	}
	return node
}

// GetElementAt resolves a dotted path of direct named-child lookups starting
// at the given element. Returns nil when any segment is absent.
func (d *Document) GetElementAt(at *etree.Element, path string) *etree.Element {
	node := at
	for _, p := range strings.Split(path, ".") {
		if node == nil {
			return nil
		}
		node = d.childByLocal(node, p)
	}
	return node
}

// EnsureElement returns the element at the dotted path, creating an empty
// element named by the final segment as the next sibling of after when the
// target is absent. Missing intermediate segments are not created; callers
// must ensure intermediate structure exists.
func (d *Document) EnsureElement(path string, after *etree.Element) *etree.Element {
	if node := d.GetElement(path); node != nil {
		return node
	}
	return d.insertAfter(after, lastSegment(path))
}

// EnsureElementAt is EnsureElement anchored at the given element.
func (d *Document) EnsureElementAt(at *etree.Element, path string, after *etree.Element) *etree.Element {
	if node := d.GetElementAt(at, path); node != nil {
		return node
	}
	return d.insertAfter(after, lastSegment(path))
}

// MakeElement creates a new detached element with the given local name. The
// element mirrors the root's namespace prefix so that it joins the document
// namespace once attached.
func (d *Document) MakeElement(name string) *etree.Element {
	el := etree.NewElement(name)
	if d.root.Space != "" {
		el.Space = d.root.Space
	}
	return el
}

func (d *Document) insertAfter(after *etree.Element, name string) *etree.Element {
	el := d.MakeElement(name)
	after.Parent().InsertChildAt(after.Index()+1, el)
	return el
}

func (d *Document) resolveAlias(name string) *etree.Element {
	if d.aliases == nil {
		return nil
	}
	fn, ok := d.aliases[name]
	if !ok {
		return nil
	}
	return fn()
}

// childByLocal returns the first child element with the given local name in
// the document namespace.
func (d *Document) childByLocal(parent *etree.Element, name string) *etree.Element {
	if parent == nil {
		return nil
	}
	for _, child := range parent.ChildElements() {
		if child.Tag == name && child.NamespaceURI() == d.namespace {
			return child
		}
	}
	return nil
}

// childrenByLocal returns all child elements with the given local name in
// the document namespace.
func (d *Document) childrenByLocal(parent *etree.Element, name string) []*etree.Element {
	if parent == nil {
		return nil
	}
	var out []*etree.Element
	for _, child := range parent.ChildElements() {
		if child.Tag == name && child.NamespaceURI() == d.namespace {
			out = append(out, child)
		}
	}
	return out
}

// identificationUnder finds the first identification element that is the
// direct child of a meta element anywhere beneath el, in document order.
func (d *Document) identificationUnder(el *etree.Element) *etree.Element {
	for _, child := range el.ChildElements() {
		if child.Tag == "meta" && child.NamespaceURI() == d.namespace {
			if ident := d.childByLocal(child, "identification"); ident != nil {
				return ident
			}
		}
		if found := d.identificationUnder(child); found != nil {
			return found
		}
	}
	return nil
}

