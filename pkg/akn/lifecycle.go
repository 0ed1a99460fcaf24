package akn

import (
	"fmt"

	"github.com/beevik/etree"
)

// EnsureLifecycle returns the meta lifecycle element, creating it when
// absent. It is placed after the publication element when one exists, else
// after identification. On first creation the element is stamped with the
// document's provenance source and a matching organization reference is
// ensured. Calling it again is a no-op beyond returning the element.
func (s *StructuredDocument) EnsureLifecycle() (*etree.Element, error) {
	after := s.GetElement("meta.publication")
	if after == nil {
		after = s.GetElement("meta.identification")
	}
	if after == nil {
		return nil, fmt.Errorf("no meta.identification element")
	}

	node := s.EnsureElement("meta.lifecycle", after)
	if node.SelectAttrValue("source", "") == "" {
		node.CreateAttr("source", "#"+s.Provenance.ID)
		if _, err := s.EnsureReference("TLCOrganization", s.Provenance.Name, s.Provenance.ID, s.Provenance.URL); err != nil {
			return nil, err
		}
	}
	return node, nil
}

// EnsureReference returns the reference element of the given kind with the
// given eId in the meta references block, creating the block after the
// lifecycle element and the reference itself when absent. New references
// are inserted at the front of the block.
func (s *StructuredDocument) EnsureReference(elem, name, id, href string) (*etree.Element, error) {
	lifecycle, err := s.EnsureLifecycle()
	if err != nil {
		return nil, err
	}
	references := s.EnsureElement("meta.references", lifecycle)

	for _, ref := range s.childrenByLocal(references, elem) {
		if ref.SelectAttrValue("eId", "") == id {
			return ref, nil
		}
	}

	ref := s.MakeElement(elem)
	ref.CreateAttr("eId", id)
	ref.CreateAttr("href", href)
	ref.CreateAttr("showAs", name)
	references.InsertChildAt(0, ref)
	return ref, nil
}
