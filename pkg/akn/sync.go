package akn

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/coolbeans/acta/pkg/frbr"
)

// Component is a named sub-document: the main document itself, or an
// attachment or component element carrying its own identification metadata.
type Component struct {
	Name    string
	Element *etree.Element
}

// Components returns the document's components in discovery order, the main
// document first. Names come from the work component of each component's
// FRBRWork FRBRthis URI; a repeated name keeps its first position and its
// last element.
func (s *StructuredDocument) Components() ([]Component, error) {
	this := s.GetElement("meta.identification.FRBRWork.FRBRthis")
	if this == nil {
		return nil, fmt.Errorf("no meta.identification.FRBRWork.FRBRthis element")
	}
	uri, err := frbr.Parse(this.SelectAttrValue("value", ""))
	if err != nil {
		return nil, fmt.Errorf("parsing FRBRthis of main document: %w", err)
	}

	order := []string{uri.WorkComponent}
	byName := map[string]*etree.Element{uri.WorkComponent: s.Main()}

	for _, meta := range s.componentMetas() {
		this := s.GetElementAt(meta, "identification.FRBRWork.FRBRthis")
		if this == nil {
			return nil, fmt.Errorf("component has no identification FRBRthis element")
		}
		uri, err := frbr.Parse(this.SelectAttrValue("value", ""))
		if err != nil {
			return nil, fmt.Errorf("parsing FRBRthis of component: %w", err)
		}
		if _, ok := byName[uri.WorkComponent]; !ok {
			order = append(order, uri.WorkComponent)
		}
		byName[uri.WorkComponent] = meta.Parent()
	}

	components := make([]Component, len(order))
	for i, name := range order {
		components[i] = Component{Name: name, Element: byName[name]}
	}
	return components, nil
}

// componentMetas finds the meta elements of nested attachment and component
// elements under the main element, in document order.
func (s *StructuredDocument) componentMetas() []*etree.Element {
	main := s.Main()
	if main == nil {
		return nil
	}

	itemTags := map[string]string{"attachments": "attachment", "components": "component"}

	var metas []*etree.Element
	for _, container := range main.ChildElements() {
		itemTag, ok := itemTags[container.Tag]
		if !ok || container.NamespaceURI() != s.namespace {
			continue
		}
		for _, item := range s.childrenByLocal(container, itemTag) {
			for _, sub := range item.ChildElements() {
				if sub.NamespaceURI() != s.namespace {
					continue
				}
				if meta := s.childByLocal(sub, "meta"); meta != nil {
					metas = append(metas, meta)
				}
			}
		}
	}
	return metas
}

// SetFrbrURI rewrites the identification URIs of the document and of every
// component from the given URI. The URI's language and expression date are
// replaced with the document's current values and its work component
// defaults to "main"; each component is then written with its own component
// name. Components are updated in discovery order with no rollback on
// failure.
func (s *StructuredDocument) SetFrbrURI(uri *frbr.URI) error {
	u := uri.Clone()

	u.Language = s.Language()
	expressionDate, err := s.ExpressionDate()
	if err != nil {
		return fmt.Errorf("reading expression date: %w", err)
	}
	u.ExpressionDate = "@" + frbr.DateString(expressionDate)
	if u.WorkComponent == "" {
		u.WorkComponent = "main"
	}

	components, err := s.Components()
	if err != nil {
		return err
	}

	for _, component := range components {
		u.WorkComponent = component.Name

		ident := s.identificationUnder(component.Element)
		if ident == nil {
			return fmt.Errorf("component %q has no identification element", component.Name)
		}
		if err := s.syncIdentification(ident, u); err != nil {
			return fmt.Errorf("component %q: %w", component.Name, err)
		}
	}
	return nil
}

// SetFrbrURIString parses an FRBR URI string and applies SetFrbrURI.
func (s *StructuredDocument) SetFrbrURIString(value string) error {
	uri, err := frbr.Parse(value)
	if err != nil {
		return err
	}
	return s.SetFrbrURI(uri)
}

// syncIdentification rewrites one identification block from u. The
// manifestation URIs mirror the expression URIs.
func (s *StructuredDocument) syncIdentification(ident *etree.Element, u *frbr.URI) error {
	work := s.childByLocal(ident, "FRBRWork")
	expression := s.childByLocal(ident, "FRBRExpression")
	manifestation := s.childByLocal(ident, "FRBRManifestation")
	if work == nil || expression == nil || manifestation == nil {
		return fmt.Errorf("identification must have FRBRWork, FRBRExpression and FRBRManifestation elements")
	}

	setValue := func(parent *etree.Element, name, value string) error {
		el := s.childByLocal(parent, name)
		if el == nil {
			return fmt.Errorf("no %s element in %s", name, parent.Tag)
		}
		el.CreateAttr("value", value)
		return nil
	}

	if err := setValue(work, "FRBRuri", u.WorkURI(false)); err != nil {
		return err
	}
	if err := setValue(work, "FRBRthis", u.WorkURI(true)); err != nil {
		return err
	}
	if err := setValue(work, "FRBRcountry", u.Place()); err != nil {
		return err
	}

	country := s.childByLocal(work, "FRBRcountry")
	s.EnsureElementAt(work, "FRBRnumber", country).CreateAttr("value", u.Number)
	if u.Subtype != "" {
		s.EnsureElementAt(work, "FRBRsubtype", country).CreateAttr("value", u.Subtype)
	} else if subtype := s.childByLocal(work, "FRBRsubtype"); subtype != nil {
		work.RemoveChild(subtype)
	}

	if err := setValue(expression, "FRBRuri", u.ExpressionURI(false)); err != nil {
		return err
	}
	if err := setValue(expression, "FRBRthis", u.ExpressionURI(true)); err != nil {
		return err
	}

	if err := setValue(manifestation, "FRBRuri", u.ExpressionURI(false)); err != nil {
		return err
	}
	return setValue(manifestation, "FRBRthis", u.ExpressionURI(true))
}

// resyncFrbrURI rewrites all identification URIs from the document's
// current FRBR URI, picking up changed language or expression date values.
func (s *StructuredDocument) resyncFrbrURI() error {
	uri, err := s.FrbrURI()
	if err != nil {
		return err
	}
	if uri == nil {
		return fmt.Errorf("document has no FRBR manifestation URI")
	}
	return s.SetFrbrURI(uri)
}
