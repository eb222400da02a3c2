package legaldoc

import "github.com/randalmurphal/stategraph/pkg/stategraph/llm"

// Structured-output contracts for the nodes that need typed results.

var definedTermsSchema = llm.SchemaFor("defined_terms",
	"Defined terminology extracted from a legal document",
	`{
		"type": "object",
		"properties": {
			"industry_specific_terms": {
				"type": "string",
				"description": "Industry-specific terms and their definitions"
			},
			"contract_specific_definitions": {
				"type": "string",
				"description": "Contract-specific terms and their definitions"
			}
		},
		"required": ["industry_specific_terms", "contract_specific_definitions"]
	}`)

type definedTermsOutput struct {
	IndustrySpecificTerms       string `json:"industry_specific_terms"`
	ContractSpecificDefinitions string `json:"contract_specific_definitions"`
}

var riskScoreSchema = llm.SchemaFor("risk_score",
	"Quantified risk assessment for a legal document",
	`{
		"type": "object",
		"properties": {
			"score": {
				"type": "number",
				"description": "Risk score from 0-100, where 100 is highest risk"
			},
			"explanation": {
				"type": "string",
				"description": "Brief explanation of the risk score"
			}
		},
		"required": ["score", "explanation"]
	}`)

var opportunityScoreSchema = llm.SchemaFor("opportunity_score",
	"Quantified opportunity assessment for a legal document",
	`{
		"type": "object",
		"properties": {
			"score": {
				"type": "number",
				"description": "Opportunity score from 0-100, where 100 is exceptional opportunity"
			},
			"explanation": {
				"type": "string",
				"description": "Brief explanation of the opportunity score"
			}
		},
		"required": ["score", "explanation"]
	}`)

type scoreOutput struct {
	Score       float64 `json:"score"`
	Explanation string  `json:"explanation"`
}

var keyInsightsSchema = llm.SchemaFor("key_insights",
	"Key insights from the document analysis",
	`{
		"type": "object",
		"properties": {
			"key_insights": {
				"type": "array",
				"items": {"type": "string"},
				"description": "List of key insights from the document analysis"
			}
		},
		"required": ["key_insights"]
	}`)

type keyInsightsOutput struct {
	KeyInsights []string `json:"key_insights"`
}

var criticalIssuesSchema = llm.SchemaFor("critical_issues",
	"Critical issues requiring immediate attention",
	`{
		"type": "object",
		"properties": {
			"critical_issues": {
				"type": "array",
				"items": {"type": "string"},
				"description": "List of critical issues requiring immediate attention"
			}
		},
		"required": ["critical_issues"]
	}`)

type criticalIssuesOutput struct {
	CriticalIssues []string `json:"critical_issues"`
}

var markdownReportSchema = llm.SchemaFor("markdown_report",
	"Complete markdown report of the legal document analysis",
	`{
		"type": "object",
		"properties": {
			"markdown_report": {
				"type": "string",
				"description": "Complete markdown report summarizing the legal document analysis"
			}
		},
		"required": ["markdown_report"]
	}`)

type markdownReportOutput struct {
	MarkdownReport string `json:"markdown_report"`
}
