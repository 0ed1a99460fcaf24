package akn

import (
	"strings"
	"testing"
)

func metaChildTags(d *StructuredDocument) string {
	var tags []string
	for _, el := range d.Meta().ChildElements() {
		tags = append(tags, el.Tag)
	}
	return strings.Join(tags, ",")
}

func TestEnsureLifecycle(t *testing.T) {
	d := mustAct(t)

	lifecycle, err := d.EnsureLifecycle()
	if err != nil {
		t.Fatalf("EnsureLifecycle failed: %v", err)
	}
	if got := lifecycle.SelectAttrValue("source", ""); got != "#acta" {
		t.Errorf("source: got %q, want %q", got, "#acta")
	}
	if got := metaChildTags(d); got != "identification,lifecycle,references" {
		t.Errorf("meta children: got %q", got)
	}

	refs := d.GetElement("meta.references")
	orgs := d.childrenByLocal(refs, "TLCOrganization")
	if len(orgs) != 1 {
		t.Fatalf("got %d organization references, want 1", len(orgs))
	}
	if got := orgs[0].SelectAttrValue("eId", ""); got != "acta" {
		t.Errorf("eId: got %q, want %q", got, "acta")
	}
	if got := orgs[0].SelectAttrValue("href", ""); got != "https://github.com/coolbeans/acta" {
		t.Errorf("href: got %q", got)
	}
	if got := orgs[0].SelectAttrValue("showAs", ""); got != "acta" {
		t.Errorf("showAs: got %q", got)
	}
}

func TestEnsureLifecycle_Idempotent(t *testing.T) {
	d := mustAct(t)

	first, err := d.EnsureLifecycle()
	if err != nil {
		t.Fatalf("EnsureLifecycle failed: %v", err)
	}
	second, err := d.EnsureLifecycle()
	if err != nil {
		t.Fatalf("EnsureLifecycle failed: %v", err)
	}
	if first != second {
		t.Error("EnsureLifecycle should return the same element")
	}

	if got := len(d.childrenByLocal(d.Meta(), "lifecycle")); got != 1 {
		t.Errorf("got %d lifecycle elements, want 1", got)
	}
	refs := d.GetElement("meta.references")
	if got := len(d.childrenByLocal(refs, "TLCOrganization")); got != 1 {
		t.Errorf("got %d organization references, want 1", got)
	}
}

func TestEnsureLifecycle_AfterPublication(t *testing.T) {
	xml := strings.Replace(actXML, "</identification>",
		`</identification><publication date="2005-04-01" name="" showAs="" number=""/>`, 1)
	d, err := NewStructuredDocument(Act, []byte(xml))
	if err != nil {
		t.Fatalf("NewStructuredDocument failed: %v", err)
	}

	if _, err := d.EnsureLifecycle(); err != nil {
		t.Fatalf("EnsureLifecycle failed: %v", err)
	}
	if got := metaChildTags(d); got != "identification,publication,lifecycle,references" {
		t.Errorf("meta children: got %q", got)
	}
}

func TestEnsureLifecycle_OnSkeleton(t *testing.T) {
	d, err := NewStructuredDocument(Act, nil)
	if err != nil {
		t.Fatalf("NewStructuredDocument failed: %v", err)
	}

	// The skeleton already carries a references block with the provenance
	// organization; nothing may be duplicated.
	if _, err := d.EnsureLifecycle(); err != nil {
		t.Fatalf("EnsureLifecycle failed: %v", err)
	}
	if got := metaChildTags(d); got != "identification,lifecycle,references" {
		t.Errorf("meta children: got %q", got)
	}
	refs := d.GetElement("meta.references")
	if got := len(d.childrenByLocal(refs, "TLCOrganization")); got != 1 {
		t.Errorf("got %d organization references, want 1", got)
	}
}

func TestEnsureLifecycle_NoIdentification(t *testing.T) {
	xml := `<akomaNtoso xmlns="` + ns30 + `"><act name="act"><meta/><body/></act></akomaNtoso>`
	d, err := NewStructuredDocument(Act, []byte(xml))
	if err != nil {
		t.Fatalf("NewStructuredDocument failed: %v", err)
	}

	if _, err := d.EnsureLifecycle(); err == nil {
		t.Error("EnsureLifecycle should fail without identification metadata")
	}
}

func TestEnsureReference(t *testing.T) {
	d := mustAct(t)

	ref, err := d.EnsureReference("TLCPerson", "A Judge", "judge1", "/ontology/person/judge1")
	if err != nil {
		t.Fatalf("EnsureReference failed: %v", err)
	}
	if got := ref.SelectAttrValue("showAs", ""); got != "A Judge" {
		t.Errorf("showAs: got %q", got)
	}

	// New references go to the front of the block, before the provenance
	// organization created alongside the lifecycle.
	refs := d.GetElement("meta.references")
	children := refs.ChildElements()
	if len(children) != 2 {
		t.Fatalf("got %d references, want 2", len(children))
	}
	if children[0].Tag != "TLCPerson" || children[1].Tag != "TLCOrganization" {
		t.Errorf("reference order: got %q, %q", children[0].Tag, children[1].Tag)
	}
}

func TestEnsureReference_ReusesById(t *testing.T) {
	d := mustAct(t)

	first, err := d.EnsureReference("TLCPerson", "A Judge", "judge1", "/ontology/person/judge1")
	if err != nil {
		t.Fatalf("EnsureReference failed: %v", err)
	}
	second, err := d.EnsureReference("TLCPerson", "Renamed", "judge1", "/elsewhere")
	if err != nil {
		t.Fatalf("EnsureReference failed: %v", err)
	}
	if first != second {
		t.Error("EnsureReference should reuse the reference with the same eId")
	}

	refs := d.GetElement("meta.references")
	if got := len(d.childrenByLocal(refs, "TLCPerson")); got != 1 {
		t.Errorf("got %d person references, want 1", got)
	}
}
