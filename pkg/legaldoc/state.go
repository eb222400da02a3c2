package legaldoc

import (
	"fmt"
	"strings"
)

// Placeholder values used when an analysis was not produced.
const (
	notAnalyzed    = "Not analyzed"
	noneIdentified = "None identified"
	notCalculated  = "Not calculated"
	noSummary      = "No summary available"
)

// Analysis is the workflow state: document inputs plus the output of every
// analysis node. Nodes return deltas with only their own fields populated;
// Merge folds deltas field by field, a populated field always overwriting.
type Analysis struct {
	// Document inputs
	DocumentText string
	DocumentType string

	// Document summary
	DocumentSummary string

	// Financial and operational obligations
	PaymentObligations    string
	DeliveryTimelines     string
	ReportingRequirements string
	PerformanceCriteria   string

	// Risk assessment
	LiabilityRisks           string
	TerminationConditions    string
	WarrantyGaps             string
	ForceMajeureImplications string

	// Strategic opportunities
	PricingLeveragePoints      string
	ContractExtensionOptions   string
	ServiceScopeExpansion      string
	EarlyTerminationAdvantages string

	// Terminology analysis
	IndustrySpecificTerms       string
	ContractSpecificDefinitions string
	DefinitionConsistencyIssues string

	// Consistency validation
	DirectContradictions       string
	ImpliedInconsistencies     string
	SequentialCommitmentIssues string

	// Aggregated results and metrics
	KeyInsights      []string
	RiskScore        *float64
	OpportunityScore *float64
	CriticalIssues   []string
	MarkdownReport   string
}

// Merge folds a delta into the state. Only populated fields of the delta
// overwrite: non-empty strings, non-nil score pointers, non-nil slices.
func (a Analysis) Merge(delta Analysis) Analysis {
	merged := a

	for _, f := range stringFields {
		if v := *f.get(&delta); v != "" {
			*f.get(&merged) = v
		}
	}
	if delta.RiskScore != nil {
		merged.RiskScore = delta.RiskScore
	}
	if delta.OpportunityScore != nil {
		merged.OpportunityScore = delta.OpportunityScore
	}
	if delta.KeyInsights != nil {
		merged.KeyInsights = delta.KeyInsights
	}
	if delta.CriticalIssues != nil {
		merged.CriticalIssues = delta.CriticalIssues
	}
	return merged
}

// stringField pairs a snake_case template variable with an accessor for the
// corresponding Analysis field.
type stringField struct {
	key string
	get func(*Analysis) *string
}

// stringFields drives Merge and template variable construction. Slices and
// score pointers are handled separately.
var stringFields = []stringField{
	{"document_text", func(a *Analysis) *string { return &a.DocumentText }},
	{"document_type", func(a *Analysis) *string { return &a.DocumentType }},
	{"document_summary", func(a *Analysis) *string { return &a.DocumentSummary }},
	{"payment_obligations", func(a *Analysis) *string { return &a.PaymentObligations }},
	{"delivery_timelines", func(a *Analysis) *string { return &a.DeliveryTimelines }},
	{"reporting_requirements", func(a *Analysis) *string { return &a.ReportingRequirements }},
	{"performance_criteria", func(a *Analysis) *string { return &a.PerformanceCriteria }},
	{"liability_risks", func(a *Analysis) *string { return &a.LiabilityRisks }},
	{"termination_conditions", func(a *Analysis) *string { return &a.TerminationConditions }},
	{"warranty_gaps", func(a *Analysis) *string { return &a.WarrantyGaps }},
	{"force_majeure_implications", func(a *Analysis) *string { return &a.ForceMajeureImplications }},
	{"pricing_leverage_points", func(a *Analysis) *string { return &a.PricingLeveragePoints }},
	{"contract_extension_options", func(a *Analysis) *string { return &a.ContractExtensionOptions }},
	{"service_scope_expansion", func(a *Analysis) *string { return &a.ServiceScopeExpansion }},
	{"early_termination_advantages", func(a *Analysis) *string { return &a.EarlyTerminationAdvantages }},
	{"industry_specific_terms", func(a *Analysis) *string { return &a.IndustrySpecificTerms }},
	{"contract_specific_definitions", func(a *Analysis) *string { return &a.ContractSpecificDefinitions }},
	{"definition_consistency_issues", func(a *Analysis) *string { return &a.DefinitionConsistencyIssues }},
	{"direct_contradictions", func(a *Analysis) *string { return &a.DirectContradictions }},
	{"implied_inconsistencies", func(a *Analysis) *string { return &a.ImpliedInconsistencies }},
	{"sequential_commitment_issues", func(a *Analysis) *string { return &a.SequentialCommitmentIssues }},
	{"markdown_report", func(a *Analysis) *string { return &a.MarkdownReport }},
}

// vars returns the template variables for the simple per-field analysis
// prompts: the document inputs plus every populated analysis string.
func (a Analysis) vars() map[string]any {
	vars := make(map[string]any, len(stringFields))
	for _, f := range stringFields {
		if v := *f.get(&a); v != "" {
			vars[f.key] = v
		}
	}
	return vars
}

// obligationFields, riskFields, opportunityFields and crossRefFields group
// the analysis dimensions the aggregation nodes consolidate.
var (
	obligationFields = []string{
		"payment_obligations", "delivery_timelines",
		"reporting_requirements", "performance_criteria",
	}
	riskFields = []string{
		"liability_risks", "termination_conditions",
		"warranty_gaps", "force_majeure_implications",
	}
	opportunityFields = []string{
		"pricing_leverage_points", "contract_extension_options",
		"service_scope_expansion", "early_termination_advantages",
	}
	crossRefFields = []string{
		"direct_contradictions", "implied_inconsistencies",
		"sequential_commitment_issues",
	}
)

// fieldValue returns the analysis string for a snake_case key, or "" when
// absent.
func (a Analysis) fieldValue(key string) string {
	for _, f := range stringFields {
		if f.key == key {
			return *f.get(&a)
		}
	}
	return ""
}

// heading converts a snake_case key into the SECTION HEADING form the
// aggregation prompts use.
func heading(key string) string {
	return strings.ToUpper(strings.ReplaceAll(key, "_", " "))
}

// analysesText consolidates every available analysis into the block the
// key-insights prompt consumes.
func (a Analysis) analysesText() string {
	var sections []string
	if a.DocumentSummary != "" {
		sections = append(sections, "DOCUMENT SUMMARY:\n"+a.DocumentSummary)
	}

	groups := [][]string{obligationFields, riskFields, opportunityFields}
	for _, group := range groups {
		for _, key := range group {
			if v := a.fieldValue(key); v != "" {
				sections = append(sections, heading(key)+":\n"+v)
			}
		}
	}

	if a.DefinitionConsistencyIssues != "" {
		sections = append(sections, "DEFINITION CONSISTENCY ISSUES:\n"+a.DefinitionConsistencyIssues)
	}
	for _, key := range crossRefFields {
		if v := a.fieldValue(key); v != "" {
			sections = append(sections, heading(key)+":\n"+v)
		}
	}

	if a.RiskScore != nil {
		sections = append(sections, fmt.Sprintf("RISK SCORE: %g/100", *a.RiskScore))
	}
	if a.OpportunityScore != nil {
		sections = append(sections, fmt.Sprintf("OPPORTUNITY SCORE: %g/100", *a.OpportunityScore))
	}

	return strings.Join(sections, "\n\n")
}

// issuesText consolidates risk and consistency findings for the
// critical-issues prompt.
func (a Analysis) issuesText() string {
	var sections []string
	for _, key := range riskFields {
		if v := a.fieldValue(key); v != "" {
			sections = append(sections, heading(key)+":\n"+v)
		}
	}
	if a.DefinitionConsistencyIssues != "" {
		sections = append(sections, "DEFINITION CONSISTENCY ISSUES:\n"+a.DefinitionConsistencyIssues)
	}
	for _, key := range crossRefFields {
		if v := a.fieldValue(key); v != "" {
			sections = append(sections, heading(key)+":\n"+v)
		}
	}
	return strings.Join(sections, "\n\n")
}

// missingFields returns the snake_case keys in keys that have no value yet.
func (a Analysis) missingFields(keys []string) []string {
	var missing []string
	for _, key := range keys {
		if a.fieldValue(key) == "" {
			missing = append(missing, key)
		}
	}
	return missing
}
