package akn

import (
	"fmt"
	"time"

	"github.com/beevik/etree"

	"github.com/coolbeans/acta/pkg/frbr"
)

// Title returns the short title from the work identification's FRBRalias
// elements. An alias named "title" wins; otherwise the last alias value
// seen is returned, or "" when there is none.
func (s *StructuredDocument) Title() string {
	work := s.GetElement("meta.identification.FRBRWork")
	if work == nil {
		return ""
	}

	title := ""
	for _, alias := range s.childrenByLocal(work, "FRBRalias") {
		if alias.SelectAttrValue("name", "") == "title" {
			return alias.SelectAttrValue("value", "")
		}
		title = alias.SelectAttrValue("value", "")
	}
	return title
}

// SetTitle sets the short title on the FRBRalias element named "title",
// creating it after the work identification's FRBRuri when absent. An
// existing alias with another name is reused and renamed.
func (s *StructuredDocument) SetTitle(value string) error {
	work := s.GetElement("meta.identification.FRBRWork")
	if work == nil {
		return fmt.Errorf("no meta.identification.FRBRWork element")
	}

	var alias *etree.Element
	for _, a := range s.childrenByLocal(work, "FRBRalias") {
		if a.SelectAttrValue("name", "") == "title" {
			alias = a
			break
		}
	}
	if alias == nil {
		uri := s.childByLocal(work, "FRBRuri")
		if uri == nil {
			return fmt.Errorf("no FRBRuri element in FRBRWork")
		}
		alias = s.EnsureElement("meta.identification.FRBRWork.FRBRalias", uri)
		alias.CreateAttr("name", "title")
	}
	alias.CreateAttr("value", value)
	return nil
}

// WorkDate returns the work identification date.
func (s *StructuredDocument) WorkDate() (time.Time, error) {
	return s.dateAt("meta.identification.FRBRWork.FRBRdate")
}

// SetWorkDate sets the work identification date.
func (s *StructuredDocument) SetWorkDate(t time.Time) error {
	return s.setDateAt("meta.identification.FRBRWork.FRBRdate", t)
}

// ExpressionDate returns the expression identification date.
func (s *StructuredDocument) ExpressionDate() (time.Time, error) {
	return s.dateAt("meta.identification.FRBRExpression.FRBRdate")
}

// SetExpressionDate sets the expression identification date and
// resynchronizes the FRBR URIs, which embed it.
func (s *StructuredDocument) SetExpressionDate(t time.Time) error {
	if err := s.setDateAt("meta.identification.FRBRExpression.FRBRdate", t); err != nil {
		return err
	}
	return s.resyncFrbrURI()
}

// ManifestationDate returns the manifestation identification date.
func (s *StructuredDocument) ManifestationDate() (time.Time, error) {
	return s.dateAt("meta.identification.FRBRManifestation.FRBRdate")
}

// SetManifestationDate sets the manifestation identification date.
func (s *StructuredDocument) SetManifestationDate(t time.Time) error {
	return s.setDateAt("meta.identification.FRBRManifestation.FRBRdate", t)
}

// Language returns the three-letter language code of the expression,
// defaulting to "eng" when absent.
func (s *StructuredDocument) Language() string {
	el := s.GetElement("meta.identification.FRBRExpression.FRBRlanguage")
	if el == nil {
		return frbr.DefaultLanguage
	}
	return el.SelectAttrValue("language", frbr.DefaultLanguage)
}

// SetLanguage sets the expression language and resynchronizes the FRBR
// URIs, which embed it.
func (s *StructuredDocument) SetLanguage(code string) error {
	el := s.GetElement("meta.identification.FRBRExpression.FRBRlanguage")
	if el == nil {
		return fmt.Errorf("no meta.identification.FRBRExpression.FRBRlanguage element")
	}
	el.CreateAttr("language", code)
	return s.resyncFrbrURI()
}

// FrbrURI returns the document's FRBR manifestation URI, which uniquely
// identifies the document. Returns nil when the URI value is not set.
func (s *StructuredDocument) FrbrURI() (*frbr.URI, error) {
	el := s.GetElement("meta.identification.FRBRManifestation.FRBRuri")
	if el == nil {
		return nil, fmt.Errorf("no meta.identification.FRBRManifestation.FRBRuri element")
	}
	value := el.SelectAttrValue("value", "")
	if value == "" {
		return nil, nil
	}
	return frbr.Parse(value)
}

// ExpressionFrbrURI returns the document's FRBR expression URI, or an empty
// URI when the value is not set.
func (s *StructuredDocument) ExpressionFrbrURI() (*frbr.URI, error) {
	el := s.GetElement("meta.identification.FRBRExpression.FRBRuri")
	if el == nil {
		return nil, fmt.Errorf("no meta.identification.FRBRExpression.FRBRuri element")
	}
	value := el.SelectAttrValue("value", "")
	if value == "" {
		return frbr.Empty(), nil
	}
	return frbr.Parse(value)
}

func (s *StructuredDocument) dateAt(path string) (time.Time, error) {
	el := s.GetElement(path)
	if el == nil {
		return time.Time{}, fmt.Errorf("no %s element", path)
	}
	return parseDate(el.SelectAttrValue("date", ""))
}

func (s *StructuredDocument) setDateAt(path string, t time.Time) error {
	el := s.GetElement(path)
	if el == nil {
		return fmt.Errorf("no %s element", path)
	}
	el.CreateAttr("date", frbr.DateString(t))
	return nil
}
