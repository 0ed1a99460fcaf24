package akn

// Structural families of the Akoma Ntoso schema.
var (
	HierarchicalStructure = Structure{Name: "hierarchicalStructure", ContentTag: "body"}
	JudgmentStructure     = Structure{Name: "judgmentStructure", ContentTag: "judgmentBody"}
	DebateStructure       = Structure{Name: "debateStructure", ContentTag: "debateBody"}
	OpenStructure         = Structure{Name: "openStructure", ContentTag: "mainBody"}
	CollectionStructure   = Structure{Name: "collectionStructure", ContentTag: "collectionBody"}
	AmendmentStructure    = Structure{Name: "amendmentStructure", ContentTag: "amendmentBody"}
	PortionStructure      = Structure{Name: "portionStructure", ContentTag: "portionBody"}
)

// Document types, one per Akoma Ntoso primary document element.
var (
	Act           = Type{Structure: HierarchicalStructure, DocumentType: "act"}
	Bill          = Type{Structure: HierarchicalStructure, DocumentType: "bill"}
	Judgment      = Type{Structure: JudgmentStructure, DocumentType: "judgment"}
	Debate        = Type{Structure: DebateStructure, DocumentType: "debate"}
	DebateReport  = Type{Structure: OpenStructure, DocumentType: "debateReport"}
	Doc           = Type{Structure: OpenStructure, DocumentType: "doc"}
	Statement     = Type{Structure: OpenStructure, DocumentType: "statement"}
	Collection    = Type{Structure: CollectionStructure, DocumentType: "collection"}
	AmendmentList = Type{Structure: CollectionStructure, DocumentType: "amendmentList"}
	Amendment     = Type{Structure: AmendmentStructure, DocumentType: "amendment"}
	Portion       = Type{Structure: PortionStructure, DocumentType: "portion"}
)

func init() {
	RegisterType(Act)
	RegisterType(Bill)
	RegisterType(Judgment)
	RegisterType(Debate)
	RegisterType(DebateReport)
	RegisterType(Doc)
	RegisterType(Statement)
	RegisterType(Collection)
	RegisterType(AmendmentList)
	RegisterType(Amendment)
	RegisterType(Portion)
}
