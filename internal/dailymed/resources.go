package dailymed

// FilterKind is the scalar type of an optional filter parameter.
type FilterKind int

const (
	// FilterString is a free-text or code-valued filter.
	FilterString FilterKind = iota
	// FilterBool is a true/false filter. An explicitly supplied false is
	// still sent on the wire; only an untouched filter is omitted.
	FilterBool
)

// Filter describes one optional query parameter accepted by a list
// endpoint. Name doubles as both the CLI flag name and the outgoing query
// key, so the table is the single source of truth for the wire format.
type Filter struct {
	Name  string
	Kind  FilterKind
	Usage string
}

// Resource describes one paginated list endpoint: its CLI subcommand, API
// path, accepted filters, page-size default, and the columns shown by the
// human-readable table renderer.
type Resource struct {
	Command         string
	Short           string
	Path            string
	Filters         []Filter
	DefaultPageSize int
	Columns         []string
}

// allows reports whether name is an accepted filter for the resource.
func (r Resource) allows(name string) bool {
	for _, f := range r.Filters {
		if f.Name == name {
			return true
		}
	}
	return false
}

// SetIDResource describes one per-label endpoint addressed by an SPL set
// id. These endpoints take no query parameters.
type SetIDResource struct {
	Command string
	Short   string
	// Suffix is appended to "spls/{set_id}" to form the endpoint path,
	// e.g. ".xml" or "/history.json".
	Suffix string
}

// List endpoint definitions. Paths, filter names, and page-size defaults
// follow the DailyMed v2 web services.
var (
	SPLs = Resource{
		Command: "search-spls",
		Short:   "Search for SPLs (drug labels)",
		Path:    "spls.json",
		Filters: []Filter{
			{Name: "application_number", Usage: "Filter by NDA number"},
			{Name: "boxed_warning", Kind: FilterBool, Usage: "Filter by boxed warning presence"},
			{Name: "dea_schedule_code", Usage: "Filter by DEA schedule (e.g. 'C48676' for CIII)"},
			{Name: "doctype", Usage: "Filter by document type code (e.g. 'C78841')"},
			{Name: "drug_class_code", Usage: "Filter by drug class code"},
			{Name: "drug_class_coding_system", Usage: "Coding system for drug_class_code"},
			{Name: "drug_name", Usage: "Search by drug name (e.g. 'aspirin')"},
			{Name: "name_type", Usage: "Name type: 'g' for generic, 'b' for brand"},
			{Name: "labeler", Usage: "Filter by labeler name"},
			{Name: "manufacturer", Usage: "Filter by manufacturer name"},
			{Name: "marketing_category_code", Usage: "Filter by marketing category (e.g. 'C73384' for NDA)"},
			{Name: "ndc", Usage: "Search by NDC code"},
			{Name: "published_date", Usage: "Filter by published date (YYYY-MM-DD)"},
			{Name: "published_date_comparison", Usage: "Date comparison: lt, lte, gt, gte, eq"},
			{Name: "rxcui", Usage: "Filter by RxNorm CUI"},
			{Name: "setid", Usage: "Filter by SPL set id"},
			{Name: "unii_code", Usage: "Filter by UNII code"},
		},
		DefaultPageSize: 5,
		Columns:         []string{"setid", "title", "published_date", "spl_version"},
	}

	DrugNames = Resource{
		Command: "get-drugnames",
		Short:   "List drug names",
		Path:    "drugnames.json",
		Filters: []Filter{
			{Name: "manufacturer", Usage: "Filter by manufacturer name"},
			{Name: "name_type", Usage: "Name type: 'g' for generic, 'b' for brand"},
		},
		DefaultPageSize: 10,
		Columns:         []string{"drug_name", "name_type"},
	}

	NDCs = Resource{
		Command: "get-ndcs",
		Short:   "List NDCs",
		Path:    "ndcs.json",
		Filters: []Filter{
			{Name: "application_number", Usage: "Filter by NDA number"},
			{Name: "labeler", Usage: "Filter by labeler name"},
			{Name: "marketing_category_code", Usage: "Filter by marketing category"},
			{Name: "setid", Usage: "Filter by SPL set id"},
		},
		DefaultPageSize: 10,
		Columns:         []string{"ndc", "setid"},
	}

	DrugClasses = Resource{
		Command: "get-drugclasses",
		Short:   "List drug classes",
		Path:    "drugclasses.json",
		Filters: []Filter{
			{Name: "drug_class_code", Usage: "Filter by drug class code"},
			{Name: "drug_class_coding_system", Usage: "Coding system for drug_class_code"},
			{Name: "class_code_type", Usage: "Filter by class code type (e.g. 'epc', 'moa')"},
			{Name: "class_name", Usage: "Filter by class name (e.g. 'opioid')"},
			{Name: "unii_code", Usage: "Filter by UNII code"},
		},
		DefaultPageSize: 10,
		Columns:         []string{"name", "code", "type"},
	}

	UNIIs = Resource{
		Command: "get-uniis",
		Short:   "List unique ingredient identifiers (UNIIs)",
		Path:    "uniis.json",
		Filters: []Filter{
			{Name: "active_moiety", Usage: "Filter by active moiety UNII code"},
			{Name: "drug_class_code", Usage: "Filter by drug class code"},
			{Name: "drug_class_coding_system", Usage: "Coding system for drug_class_code"},
			{Name: "rxcui", Usage: "Filter by RxNorm CUI"},
			{Name: "unii_code", Usage: "Filter by UNII code"},
		},
		DefaultPageSize: 10,
		Columns:         []string{"unii", "active_moiety"},
	}

	RxCUIs = Resource{
		Command: "get-rxcuis",
		Short:   "List RxNorm concept identifiers (RxCUIs)",
		Path:    "rxcuis.json",
		Filters: []Filter{
			{Name: "rxcui", Usage: "Filter by a specific RxCUI"},
			{Name: "rxstring", Usage: "Filter by RxNorm display string (e.g. 'aspirin')"},
			{Name: "rxtty", Usage: "Filter by RxNorm term type (e.g. 'IN')"},
		},
		DefaultPageSize: 10,
		Columns:         []string{"rxcui", "rxstring", "rxtty"},
	}
)

// Resources lists every paginated endpoint, in CLI display order.
var Resources = []Resource{SPLs, DrugNames, NDCs, DrugClasses, UNIIs, RxCUIs}

// Per-label endpoint definitions.
var (
	LabelXML       = SetIDResource{Command: "get-spl", Short: "Get a specific SPL by its set id (raw XML)", Suffix: ".xml"}
	LabelHistory   = SetIDResource{Command: "get-spl-history", Short: "Get the version history for an SPL", Suffix: "/history.json"}
	LabelNDCs      = SetIDResource{Command: "get-spl-ndcs", Short: "Get the NDCs for an SPL", Suffix: "/ndcs.json"}
	LabelPackaging = SetIDResource{Command: "get-spl-packaging", Short: "Get the packaging information for an SPL", Suffix: "/packaging.json"}
)

// SetIDResources lists every per-label endpoint, in CLI display order.
var SetIDResources = []SetIDResource{LabelXML, LabelHistory, LabelNDCs, LabelPackaging}
