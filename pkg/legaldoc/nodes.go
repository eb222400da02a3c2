package legaldoc

import (
	"fmt"
	"strings"

	"github.com/randalmurphal/stategraph/pkg/stategraph"
	"github.com/randalmurphal/stategraph/pkg/stategraph/llm"
)

// analysisPrompt drives one generic analysis node: expand the template
// against the snapshot, call the model, assign the text to one field.
type analysisPrompt struct {
	template string
	assign   func(*Analysis, string)
}

// analysisOrder fixes the registration order of the generic analysis nodes.
// Declaration order breaks topological ties, so it must not depend on map
// iteration.
var analysisOrder = []string{
	"generate_document_summary",
	"analyze_payment_obligations",
	"analyze_delivery_timelines",
	"analyze_reporting_requirements",
	"analyze_performance_criteria",
	"analyze_liability_risks",
	"analyze_termination_conditions",
	"analyze_warranty_gaps",
	"analyze_force_majeure_implications",
	"analyze_pricing_leverage_points",
	"analyze_contract_extension_options",
	"analyze_service_scope_expansion",
	"analyze_early_termination_advantages",
	"identify_direct_contradictions",
	"identify_implied_inconsistencies",
	"identify_sequential_commitment_issues",
}

// analysisPrompts maps node IDs to their prompt. These nodes differ only in
// template and target field; one constructor builds them all.
var analysisPrompts = map[string]analysisPrompt{
	"generate_document_summary": {
		documentSummaryPrompt,
		func(a *Analysis, s string) { a.DocumentSummary = s },
	},
	"analyze_payment_obligations": {
		paymentObligationsPrompt,
		func(a *Analysis, s string) { a.PaymentObligations = s },
	},
	"analyze_delivery_timelines": {
		deliveryTimelinesPrompt,
		func(a *Analysis, s string) { a.DeliveryTimelines = s },
	},
	"analyze_reporting_requirements": {
		reportingRequirementsPrompt,
		func(a *Analysis, s string) { a.ReportingRequirements = s },
	},
	"analyze_performance_criteria": {
		performanceCriteriaPrompt,
		func(a *Analysis, s string) { a.PerformanceCriteria = s },
	},
	"analyze_liability_risks": {
		liabilityRisksPrompt,
		func(a *Analysis, s string) { a.LiabilityRisks = s },
	},
	"analyze_termination_conditions": {
		terminationConditionsPrompt,
		func(a *Analysis, s string) { a.TerminationConditions = s },
	},
	"analyze_warranty_gaps": {
		warrantyGapsPrompt,
		func(a *Analysis, s string) { a.WarrantyGaps = s },
	},
	"analyze_force_majeure_implications": {
		forceMajeurePrompt,
		func(a *Analysis, s string) { a.ForceMajeureImplications = s },
	},
	"analyze_pricing_leverage_points": {
		pricingLeveragePrompt,
		func(a *Analysis, s string) { a.PricingLeveragePoints = s },
	},
	"analyze_contract_extension_options": {
		contractExtensionPrompt,
		func(a *Analysis, s string) { a.ContractExtensionOptions = s },
	},
	"analyze_service_scope_expansion": {
		serviceScopeExpansionPrompt,
		func(a *Analysis, s string) { a.ServiceScopeExpansion = s },
	},
	"analyze_early_termination_advantages": {
		earlyTerminationPrompt,
		func(a *Analysis, s string) { a.EarlyTerminationAdvantages = s },
	},
	"identify_direct_contradictions": {
		directContradictionsPrompt,
		func(a *Analysis, s string) { a.DirectContradictions = s },
	},
	"identify_implied_inconsistencies": {
		impliedInconsistenciesPrompt,
		func(a *Analysis, s string) { a.ImpliedInconsistencies = s },
	},
	"identify_sequential_commitment_issues": {
		sequentialCommitmentPrompt,
		func(a *Analysis, s string) { a.SequentialCommitmentIssues = s },
	},
}

// complete expands a template and sends the completion request.
func (a *Analyzer) complete(ctx stategraph.Context, tmpl string, vars map[string]any, schema *llm.ResponseSchema) (*llm.Response, error) {
	prompt, err := a.expander.Expand(tmpl, vars)
	if err != nil {
		return nil, err
	}
	return ctx.LLM().Complete(ctx, llm.Request{
		User:        prompt,
		Model:       a.model,
		Temperature: llm.Float(a.temperature),
		Schema:      schema,
	})
}

// analysisNode builds a NodeFunc from an analysisPrompt.
func (a *Analyzer) analysisNode(p analysisPrompt) stategraph.NodeFunc[Analysis] {
	return func(ctx stategraph.Context, state Analysis) (Analysis, error) {
		resp, err := a.complete(ctx, p.template, state.vars(), nil)
		if err != nil {
			return Analysis{}, err
		}
		var delta Analysis
		p.assign(&delta, strings.TrimSpace(resp.Content))
		return delta, nil
	}
}

// extractDefinedTerms pulls defined terminology out of the document as a
// structured result split into industry and contract categories.
func (a *Analyzer) extractDefinedTerms(ctx stategraph.Context, state Analysis) (Analysis, error) {
	resp, err := a.complete(ctx, definedTermsPrompt, state.vars(), definedTermsSchema)
	if err != nil {
		return Analysis{}, err
	}
	var out definedTermsOutput
	if err := resp.Decode(&out); err != nil {
		return Analysis{}, err
	}
	return Analysis{
		IndustrySpecificTerms:       out.IndustrySpecificTerms,
		ContractSpecificDefinitions: out.ContractSpecificDefinitions,
	}, nil
}

// analyzeDefinitionConsistency checks how consistently the extracted terms
// are used across the document.
func (a *Analyzer) analyzeDefinitionConsistency(ctx stategraph.Context, state Analysis) (Analysis, error) {
	var terms strings.Builder
	if state.IndustrySpecificTerms != "" {
		fmt.Fprintf(&terms, "Industry-specific terms:\n%s\n\n", state.IndustrySpecificTerms)
	}
	if state.ContractSpecificDefinitions != "" {
		fmt.Fprintf(&terms, "Contract-specific definitions:\n%s", state.ContractSpecificDefinitions)
	}

	vars := state.vars()
	vars["terms_text"] = terms.String()

	resp, err := a.complete(ctx, definitionConsistencyPrompt, vars, nil)
	if err != nil {
		return Analysis{}, err
	}
	return Analysis{DefinitionConsistencyIssues: strings.TrimSpace(resp.Content)}, nil
}

// scoreVars assembles the template variables for a score prompt, filling
// placeholders for absent inputs. In strict mode an absent input is an error.
func (a *Analyzer) scoreVars(state Analysis, fields []string) (map[string]any, error) {
	if a.strict {
		if missing := state.missingFields(fields); len(missing) > 0 {
			return nil, fmt.Errorf("missing analyses: %s", strings.Join(missing, ", "))
		}
	}
	vars := map[string]any{"document_type": state.DocumentType}
	for _, key := range fields {
		v := state.fieldValue(key)
		if v == "" {
			v = notAnalyzed
		}
		vars[key] = v
	}
	return vars, nil
}

// calculateRiskScore synthesizes the four risk analyses into a 0-100 score.
func (a *Analyzer) calculateRiskScore(ctx stategraph.Context, state Analysis) (Analysis, error) {
	vars, err := a.scoreVars(state, riskFields)
	if err != nil {
		return Analysis{}, err
	}
	resp, err := a.complete(ctx, riskScorePrompt, vars, riskScoreSchema)
	if err != nil {
		return Analysis{}, err
	}
	var out scoreOutput
	if err := resp.Decode(&out); err != nil {
		return Analysis{}, err
	}
	return Analysis{RiskScore: &out.Score}, nil
}

// calculateOpportunityScore synthesizes the four opportunity analyses into a
// 0-100 score.
func (a *Analyzer) calculateOpportunityScore(ctx stategraph.Context, state Analysis) (Analysis, error) {
	vars, err := a.scoreVars(state, opportunityFields)
	if err != nil {
		return Analysis{}, err
	}
	resp, err := a.complete(ctx, opportunityScorePrompt, vars, opportunityScoreSchema)
	if err != nil {
		return Analysis{}, err
	}
	var out scoreOutput
	if err := resp.Decode(&out); err != nil {
		return Analysis{}, err
	}
	return Analysis{OpportunityScore: &out.Score}, nil
}

// aggregateResults consolidates every analysis into a prioritized list of
// key insights. This is the fan-in barrier: it runs only after all five
// parallel tracks have completed.
func (a *Analyzer) aggregateResults(ctx stategraph.Context, state Analysis) (Analysis, error) {
	vars := map[string]any{
		"document_type": state.DocumentType,
		"analyses_text": state.analysesText(),
	}
	resp, err := a.complete(ctx, keyInsightsPrompt, vars, keyInsightsSchema)
	if err != nil {
		return Analysis{}, err
	}
	var out keyInsightsOutput
	if err := resp.Decode(&out); err != nil {
		return Analysis{}, err
	}
	return Analysis{KeyInsights: out.KeyInsights}, nil
}

// identifyCriticalIssues selects the issues that need immediate attention.
func (a *Analyzer) identifyCriticalIssues(ctx stategraph.Context, state Analysis) (Analysis, error) {
	riskScore := notCalculated
	if state.RiskScore != nil {
		riskScore = fmt.Sprintf("%g", *state.RiskScore)
	}
	vars := map[string]any{
		"document_type": state.DocumentType,
		"issues_text":   state.issuesText(),
		"risk_score":    riskScore,
	}
	resp, err := a.complete(ctx, criticalIssuesPrompt, vars, criticalIssuesSchema)
	if err != nil {
		return Analysis{}, err
	}
	var out criticalIssuesOutput
	if err := resp.Decode(&out); err != nil {
		return Analysis{}, err
	}
	return Analysis{CriticalIssues: out.CriticalIssues}, nil
}

// generateMarkdownReport renders the full analysis as a markdown document.
// Absent analyses are reported with their placeholder value so the report
// template always has every section.
func (a *Analyzer) generateMarkdownReport(ctx stategraph.Context, state Analysis) (Analysis, error) {
	if a.strict {
		all := make([]string, 0, len(obligationFields)+len(riskFields)+len(opportunityFields))
		all = append(all, obligationFields...)
		all = append(all, riskFields...)
		all = append(all, opportunityFields...)
		if missing := state.missingFields(all); len(missing) > 0 {
			return Analysis{}, fmt.Errorf("missing analyses: %s", strings.Join(missing, ", "))
		}
	}

	vars := map[string]any{
		"document_type":     state.DocumentType,
		"document_summary":  stringOr(state.DocumentSummary, noSummary),
		"risk_score":        scoreOr(state.RiskScore),
		"opportunity_score": scoreOr(state.OpportunityScore),
		"key_insights":      joinLines(state.KeyInsights),
		"critical_issues":   joinLines(state.CriticalIssues),
	}
	for _, group := range [][]string{obligationFields, riskFields, opportunityFields} {
		for _, key := range group {
			vars[key] = stringOr(state.fieldValue(key), notAnalyzed)
		}
	}
	for _, key := range []string{
		"industry_specific_terms", "contract_specific_definitions",
		"definition_consistency_issues",
	} {
		vars[key] = stringOr(state.fieldValue(key), noneIdentified)
	}
	for _, key := range crossRefFields {
		vars[key] = stringOr(state.fieldValue(key), noneIdentified)
	}

	resp, err := a.complete(ctx, markdownReportPrompt, vars, markdownReportSchema)
	if err != nil {
		return Analysis{}, err
	}
	var out markdownReportOutput
	if err := resp.Decode(&out); err != nil {
		return Analysis{}, err
	}
	return Analysis{MarkdownReport: out.MarkdownReport}, nil
}

func stringOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func scoreOr(v *float64) string {
	if v == nil {
		return notCalculated
	}
	return fmt.Sprintf("%g", *v)
}

func joinLines(items []string) string {
	if len(items) == 0 {
		return noneIdentified
	}
	return "- " + strings.Join(items, "\n- ")
}
