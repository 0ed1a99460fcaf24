package akn

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/beevik/etree"

	"github.com/coolbeans/acta/pkg/frbr"
)

// EmptyDocument returns the XML for an empty document of the given type and
// Akoma Ntoso version: work, expression and manifestation identification
// under a generated FRBR URI for today's date, a provenance organization
// reference, and an empty main content element.
func EmptyDocument(typ Type, version string) (string, error) {
	ns, ok := AKNNamespaces[version]
	if !ok {
		return "", fmt.Errorf("unknown Akoma Ntoso version %q", version)
	}

	prefix := "akn"
	if version == "2.0" {
		prefix = ""
	}
	today := frbr.DateString(time.Now())
	uri := &frbr.URI{
		Prefix:        prefix,
		Country:       "za",
		DocType:       typ.DocumentType,
		Date:          today,
		Number:        "1",
		WorkComponent: "main",
		Language:      frbr.DefaultLanguage,
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement("akomaNtoso")
	root.CreateAttr("xmlns", ns)

	main := root.CreateElement(typ.DocumentType)
	meta := main.CreateElement("meta")

	ident := meta.CreateElement("identification")
	ident.CreateAttr("source", "#"+DefaultProvenance.ID)

	work := ident.CreateElement("FRBRWork")
	addValue(work, "FRBRthis", uri.WorkURI(true))
	addValue(work, "FRBRuri", uri.WorkURI(false))
	alias := work.CreateElement("FRBRalias")
	alias.CreateAttr("value", "Untitled")
	alias.CreateAttr("name", "title")
	addDate(work, today)
	work.CreateElement("FRBRauthor").CreateAttr("href", "")
	addValue(work, "FRBRcountry", uri.Place())
	addValue(work, "FRBRnumber", uri.Number)

	expression := ident.CreateElement("FRBRExpression")
	addValue(expression, "FRBRthis", uri.ExpressionURI(true))
	addValue(expression, "FRBRuri", uri.ExpressionURI(false))
	addDate(expression, today)
	expression.CreateElement("FRBRauthor").CreateAttr("href", "")
	expression.CreateElement("FRBRlanguage").CreateAttr("language", uri.Language)

	manifestation := ident.CreateElement("FRBRManifestation")
	addValue(manifestation, "FRBRthis", uri.ManifestationURI(true))
	addValue(manifestation, "FRBRuri", uri.ManifestationURI(false))
	addDate(manifestation, today)
	manifestation.CreateElement("FRBRauthor").CreateAttr("href", "")

	references := meta.CreateElement("references")
	references.CreateAttr("source", "#"+DefaultProvenance.ID)
	org := references.CreateElement("TLCOrganization")
	org.CreateAttr("eId", DefaultProvenance.ID)
	org.CreateAttr("href", DefaultProvenance.URL)
	org.CreateAttr("showAs", DefaultProvenance.Name)

	if typ.EmptyContent != nil {
		main.AddChild(typ.EmptyContent())
	} else {
		main.CreateElement(typ.ContentTag)
	}

	attrs := map[string]string{"name": strings.ToLower(typ.DocumentType)}
	if typ.EmptyAttrs != nil {
		attrs = typ.EmptyAttrs()
	}
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		main.CreateAttr(k, attrs[k])
	}

	return doc.WriteToString()
}

func addValue(parent *etree.Element, name, value string) {
	parent.CreateElement(name).CreateAttr("value", value)
}

func addDate(parent *etree.Element, date string) {
	el := parent.CreateElement("FRBRdate")
	el.CreateAttr("date", date)
	el.CreateAttr("name", "Generation")
}
