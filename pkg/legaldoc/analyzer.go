// Package legaldoc analyzes legal documents with a fan-out/fan-in workflow.
//
// One summary node fans out into five parallel analysis tracks (obligations,
// risks, opportunities, terminology, cross-references), each a sequential
// chain. A fan-in barrier waits for all five before aggregating insights,
// critical issues, and a markdown report.
package legaldoc

import (
	"context"
	"errors"
	"log/slog"

	"github.com/randalmurphal/stategraph/pkg/stategraph"
	"github.com/randalmurphal/stategraph/pkg/stategraph/config"
	"github.com/randalmurphal/stategraph/pkg/stategraph/llm"
	"github.com/randalmurphal/stategraph/pkg/stategraph/template"
)

// Config keys read by New. Missing keys fall back to defaults.
const (
	// KeyModel names the model for every analysis call.
	KeyModel = "model"
	// KeyTemperature sets the sampling temperature.
	KeyTemperature = "temperature"
	// KeyStrict makes aggregation nodes fail when an input analysis is
	// absent instead of substituting placeholder text.
	KeyStrict = "strict"
	// KeyMaxConcurrency caps how many analysis nodes run at once.
	// Zero means unlimited.
	KeyMaxConcurrency = "max_concurrency"
)

// Analyzer runs the legal document analysis workflow.
// Build once with New and reuse across documents; Analyze is safe for
// concurrent use.
type Analyzer struct {
	client         llm.Client
	logger         *slog.Logger
	model          string
	temperature    float64
	strict         bool
	maxConcurrency int
	expander       *template.Expander
	graph          *stategraph.CompiledGraph[Analysis]
}

// AnalyzerOption configures an Analyzer.
type AnalyzerOption func(*Analyzer)

// WithLogger sets the logger for workflow runs.
func WithLogger(logger *slog.Logger) AnalyzerOption {
	return func(a *Analyzer) { a.logger = logger }
}

// New creates an Analyzer from configuration and a model client.
// Returns an error if client is nil or the workflow graph fails to compile.
func New(cfg config.Config, client llm.Client, opts ...AnalyzerOption) (*Analyzer, error) {
	if client == nil {
		return nil, errors.New("legaldoc: client cannot be nil")
	}

	a := &Analyzer{
		client:         client,
		logger:         slog.Default(),
		model:          cfg.String(KeyModel, ""),
		temperature:    cfg.Float(KeyTemperature, 0),
		strict:         cfg.Bool(KeyStrict, false),
		maxConcurrency: cfg.Int(KeyMaxConcurrency, 0),
		expander:       template.NewExpander(template.WithMissingAction(template.MissingError)),
	}
	for _, opt := range opts {
		opt(a)
	}

	compiled, err := a.buildGraph().Compile()
	if err != nil {
		return nil, err
	}
	a.graph = compiled
	return a, nil
}

// buildGraph wires the workflow: summary, five parallel tracks, fan-in,
// then the report sequence.
func (a *Analyzer) buildGraph() *stategraph.Graph[Analysis] {
	g := stategraph.NewGraph[Analysis]()

	for _, id := range analysisOrder {
		g.AddNode(id, a.analysisNode(analysisPrompts[id]))
	}
	g.AddNode("calculate_risk_score", a.calculateRiskScore).
		AddNode("calculate_opportunity_score", a.calculateOpportunityScore).
		AddNode("extract_defined_terms", a.extractDefinedTerms).
		AddNode("analyze_definition_consistency", a.analyzeDefinitionConsistency).
		AddNode("aggregate_results", a.aggregateResults).
		AddNode("identify_critical_issues", a.identifyCriticalIssues).
		AddNode("generate_markdown_report", a.generateMarkdownReport)

	g.SetEntry("generate_document_summary")

	// Obligation track
	g.AddEdge("generate_document_summary", "analyze_payment_obligations").
		AddEdge("analyze_payment_obligations", "analyze_delivery_timelines").
		AddEdge("analyze_delivery_timelines", "analyze_reporting_requirements").
		AddEdge("analyze_reporting_requirements", "analyze_performance_criteria")

	// Risk track
	g.AddEdge("generate_document_summary", "analyze_liability_risks").
		AddEdge("analyze_liability_risks", "analyze_termination_conditions").
		AddEdge("analyze_termination_conditions", "analyze_warranty_gaps").
		AddEdge("analyze_warranty_gaps", "analyze_force_majeure_implications").
		AddEdge("analyze_force_majeure_implications", "calculate_risk_score")

	// Opportunity track
	g.AddEdge("generate_document_summary", "analyze_pricing_leverage_points").
		AddEdge("analyze_pricing_leverage_points", "analyze_contract_extension_options").
		AddEdge("analyze_contract_extension_options", "analyze_service_scope_expansion").
		AddEdge("analyze_service_scope_expansion", "analyze_early_termination_advantages").
		AddEdge("analyze_early_termination_advantages", "calculate_opportunity_score")

	// Terminology track
	g.AddEdge("generate_document_summary", "extract_defined_terms").
		AddEdge("extract_defined_terms", "analyze_definition_consistency")

	// Cross-reference track
	g.AddEdge("generate_document_summary", "identify_direct_contradictions").
		AddEdge("identify_direct_contradictions", "identify_implied_inconsistencies").
		AddEdge("identify_implied_inconsistencies", "identify_sequential_commitment_issues")

	// Fan-in barrier over the five track terminals, then the report sequence.
	g.AddEdges([]string{
		"analyze_performance_criteria",
		"calculate_risk_score",
		"calculate_opportunity_score",
		"analyze_definition_consistency",
		"identify_sequential_commitment_issues",
	}, "aggregate_results")

	g.AddEdge("aggregate_results", "identify_critical_issues").
		AddEdge("identify_critical_issues", "generate_markdown_report").
		AddEdge("generate_markdown_report", stategraph.END)

	return g
}

// Analyze runs the full workflow over one document.
// documentType classifies the document (contract, agreement, NDA, ...).
func (a *Analyzer) Analyze(ctx context.Context, documentText, documentType string) (Analysis, error) {
	if documentText == "" {
		return Analysis{}, errors.New("legaldoc: document text cannot be empty")
	}
	if documentType == "" {
		return Analysis{}, errors.New("legaldoc: document type cannot be empty")
	}

	runCtx := stategraph.NewContext(ctx,
		stategraph.WithLogger(a.logger),
		stategraph.WithLLM(a.client))

	initial := Analysis{
		DocumentText: documentText,
		DocumentType: documentType,
	}

	var opts []stategraph.RunOption
	if a.maxConcurrency > 0 {
		opts = append(opts, stategraph.WithMaxConcurrency(a.maxConcurrency))
	}

	return a.graph.Run(runCtx, initial, opts...)
}
