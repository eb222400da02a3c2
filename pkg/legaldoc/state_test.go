package legaldoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalysis_Merge(t *testing.T) {
	base := Analysis{
		DocumentText:    "the document",
		DocumentType:    "contract",
		DocumentSummary: "original summary",
	}

	score := 42.0
	merged := base.Merge(Analysis{
		LiabilityRisks: "uncapped indemnity",
		RiskScore:      &score,
		KeyInsights:    []string{"first insight"},
	})

	// Delta fields land; untouched fields survive.
	assert.Equal(t, "uncapped indemnity", merged.LiabilityRisks)
	require.NotNil(t, merged.RiskScore)
	assert.Equal(t, 42.0, *merged.RiskScore)
	assert.Equal(t, []string{"first insight"}, merged.KeyInsights)
	assert.Equal(t, "the document", merged.DocumentText)
	assert.Equal(t, "original summary", merged.DocumentSummary)
}

func TestAnalysis_Merge_EmptyDeltaKeepsState(t *testing.T) {
	score := 10.0
	base := Analysis{
		DocumentSummary: "summary",
		RiskScore:       &score,
		CriticalIssues:  []string{"issue"},
	}

	merged := base.Merge(Analysis{})
	assert.Equal(t, base, merged)
}

func TestAnalysis_Merge_PopulatedOverwrites(t *testing.T) {
	oldScore, newScore := 10.0, 90.0
	base := Analysis{
		DocumentSummary: "old",
		RiskScore:       &oldScore,
	}

	merged := base.Merge(Analysis{
		DocumentSummary: "new",
		RiskScore:       &newScore,
	})

	assert.Equal(t, "new", merged.DocumentSummary)
	assert.Equal(t, 90.0, *merged.RiskScore)
}

func TestAnalysis_Merge_DoesNotMutateReceiver(t *testing.T) {
	base := Analysis{DocumentSummary: "original"}
	_ = base.Merge(Analysis{DocumentSummary: "changed"})
	assert.Equal(t, "original", base.DocumentSummary)
}

func TestAnalysis_Vars(t *testing.T) {
	a := Analysis{
		DocumentText:   "text",
		DocumentType:   "NDA",
		LiabilityRisks: "risks",
	}

	vars := a.vars()

	assert.Equal(t, "text", vars["document_text"])
	assert.Equal(t, "NDA", vars["document_type"])
	assert.Equal(t, "risks", vars["liability_risks"])
	_, present := vars["warranty_gaps"]
	assert.False(t, present, "empty fields are omitted")
}

func TestAnalysis_FieldValue(t *testing.T) {
	a := Analysis{PaymentObligations: "monthly fees"}

	assert.Equal(t, "monthly fees", a.fieldValue("payment_obligations"))
	assert.Empty(t, a.fieldValue("warranty_gaps"))
	assert.Empty(t, a.fieldValue("no_such_key"))
}

func TestHeading(t *testing.T) {
	assert.Equal(t, "PAYMENT OBLIGATIONS", heading("payment_obligations"))
	assert.Equal(t, "RISK", heading("risk"))
}

func TestAnalysis_AnalysesText(t *testing.T) {
	risk := 70.0
	a := Analysis{
		DocumentSummary:    "a services contract",
		PaymentObligations: "pay monthly",
		LiabilityRisks:     "capped liability",
		RiskScore:          &risk,
	}

	text := a.analysesText()

	assert.Contains(t, text, "DOCUMENT SUMMARY:\na services contract")
	assert.Contains(t, text, "PAYMENT OBLIGATIONS:\npay monthly")
	assert.Contains(t, text, "LIABILITY RISKS:\ncapped liability")
	assert.Contains(t, text, "RISK SCORE: 70/100")
	assert.NotContains(t, text, "WARRANTY GAPS", "empty sections are omitted")
}

func TestAnalysis_IssuesText(t *testing.T) {
	a := Analysis{
		LiabilityRisks:              "unlimited exposure",
		DefinitionConsistencyIssues: "Provider defined twice",
		DirectContradictions:        "sections 2 and 9 conflict",
		PaymentObligations:          "pay monthly",
	}

	text := a.issuesText()

	assert.Contains(t, text, "LIABILITY RISKS:\nunlimited exposure")
	assert.Contains(t, text, "DEFINITION CONSISTENCY ISSUES:\nProvider defined twice")
	assert.Contains(t, text, "DIRECT CONTRADICTIONS:\nsections 2 and 9 conflict")
	assert.NotContains(t, text, "PAYMENT OBLIGATIONS", "obligations are not issues")
}

func TestAnalysis_MissingFields(t *testing.T) {
	a := Analysis{LiabilityRisks: "present"}

	missing := a.missingFields(riskFields)
	assert.Equal(t, []string{
		"termination_conditions", "warranty_gaps", "force_majeure_implications",
	}, missing)

	a.TerminationConditions = "x"
	a.WarrantyGaps = "y"
	a.ForceMajeureImplications = "z"
	assert.Empty(t, a.missingFields(riskFields))
}
