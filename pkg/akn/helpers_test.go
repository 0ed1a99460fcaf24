package akn

import "testing"

const ns30 = "http://docs.oasis-open.org/legaldocml/ns/akn/3.0"
const ns20 = "http://www.akomantoso.org/2.0"

// actXML is a minimal act with full identification metadata.
const actXML = `<akomaNtoso xmlns="` + ns30 + `">
  <act name="act">
    <meta>
      <identification source="#acta">
        <FRBRWork>
          <FRBRthis value="/akn/za/act/2005/1/!main"/>
          <FRBRuri value="/akn/za/act/2005/1"/>
          <FRBRalias value="Test Act" name="title"/>
          <FRBRdate date="2005-03-21" name="Generation"/>
          <FRBRauthor href=""/>
          <FRBRcountry value="za"/>
          <FRBRnumber value="1"/>
        </FRBRWork>
        <FRBRExpression>
          <FRBRthis value="/akn/za/act/2005/1/eng@2012-01-01/!main"/>
          <FRBRuri value="/akn/za/act/2005/1/eng@2012-01-01"/>
          <FRBRdate date="2012-01-01" name="Generation"/>
          <FRBRauthor href=""/>
          <FRBRlanguage language="eng"/>
        </FRBRExpression>
        <FRBRManifestation>
          <FRBRthis value="/akn/za/act/2005/1/eng@2012-01-01/!main"/>
          <FRBRuri value="/akn/za/act/2005/1/eng@2012-01-01"/>
          <FRBRdate date="2012-01-01" name="Generation"/>
          <FRBRauthor href=""/>
        </FRBRManifestation>
      </identification>
    </meta>
    <body/>
  </act>
</akomaNtoso>`

// attachmentXML is an act carrying one attachment with its own
// identification under the work component name schedule1.
const attachmentXML = `<akomaNtoso xmlns="` + ns30 + `">
  <act name="act">
    <meta>
      <identification source="#acta">
        <FRBRWork>
          <FRBRthis value="/akn/za/act/2005/1/!main"/>
          <FRBRuri value="/akn/za/act/2005/1"/>
          <FRBRdate date="2005-03-21" name="Generation"/>
          <FRBRauthor href=""/>
          <FRBRcountry value="za"/>
          <FRBRnumber value="1"/>
        </FRBRWork>
        <FRBRExpression>
          <FRBRthis value="/akn/za/act/2005/1/eng@2012-01-01/!main"/>
          <FRBRuri value="/akn/za/act/2005/1/eng@2012-01-01"/>
          <FRBRdate date="2012-01-01" name="Generation"/>
          <FRBRauthor href=""/>
          <FRBRlanguage language="eng"/>
        </FRBRExpression>
        <FRBRManifestation>
          <FRBRthis value="/akn/za/act/2005/1/eng@2012-01-01/!main"/>
          <FRBRuri value="/akn/za/act/2005/1/eng@2012-01-01"/>
          <FRBRdate date="2012-01-01" name="Generation"/>
          <FRBRauthor href=""/>
        </FRBRManifestation>
      </identification>
    </meta>
    <body/>
    <attachments>
      <attachment>
        <doc name="schedule">
          <meta>
            <identification source="#acta">
              <FRBRWork>
                <FRBRthis value="/akn/za/act/2005/1/!schedule1"/>
                <FRBRuri value="/akn/za/act/2005/1"/>
                <FRBRdate date="2005-03-21" name="Generation"/>
                <FRBRauthor href=""/>
                <FRBRcountry value="za"/>
                <FRBRnumber value="1"/>
              </FRBRWork>
              <FRBRExpression>
                <FRBRthis value="/akn/za/act/2005/1/eng@2012-01-01/!schedule1"/>
                <FRBRuri value="/akn/za/act/2005/1/eng@2012-01-01"/>
                <FRBRdate date="2012-01-01" name="Generation"/>
                <FRBRauthor href=""/>
                <FRBRlanguage language="eng"/>
              </FRBRExpression>
              <FRBRManifestation>
                <FRBRthis value="/akn/za/act/2005/1/eng@2012-01-01/!schedule1"/>
                <FRBRuri value="/akn/za/act/2005/1/eng@2012-01-01"/>
                <FRBRdate date="2012-01-01" name="Generation"/>
                <FRBRauthor href=""/>
              </FRBRManifestation>
            </identification>
          </meta>
          <mainBody/>
        </doc>
      </attachment>
    </attachments>
  </act>
</akomaNtoso>`

func mustAct(t *testing.T) *StructuredDocument {
	t.Helper()
	d, err := NewStructuredDocument(Act, []byte(actXML))
	if err != nil {
		t.Fatalf("NewStructuredDocument failed: %v", err)
	}
	return d
}

func mustActWithAttachment(t *testing.T) *StructuredDocument {
	t.Helper()
	d, err := NewStructuredDocument(Act, []byte(attachmentXML))
	if err != nil {
		t.Fatalf("NewStructuredDocument failed: %v", err)
	}
	return d
}
