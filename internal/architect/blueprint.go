package architect

import (
	"encoding/json"

	"github.com/xeipuuv/gojsonschema"
)

// BlueprintDocument is the structured business plan the architect ultimately
// produces. Only businessOverview is required; every other section is
// optional and surfaced as absent when the model omits it.
type BlueprintDocument struct {
	BusinessOverview    BusinessOverview `json:"businessOverview"`
	AgentScoring        *AgentScoring    `json:"agentScoring,omitempty"`
	Services            []Service        `json:"services,omitempty"`
	RevenueModel        []string         `json:"revenueModel,omitempty"`
	CostStructure       *CostStructure   `json:"costStructure,omitempty"`
	StrategicRoadmap    []string         `json:"strategicRoadmap,omitempty"`
	Risks               []string         `json:"risks,omitempty"`
	GrowthOpportunities []string         `json:"growthOpportunities,omitempty"`
}

type BusinessOverview struct {
	Name             string `json:"name"`
	Description      string `json:"description"`
	TargetAudience   string `json:"targetAudience"`
	ValueProposition string `json:"valueProposition"`
}

// AgentScore is one board member's verdict: a 0-100 score plus insight text.
type AgentScore struct {
	Score   float64 `json:"score"`
	Insight string  `json:"insight"`
}

// AgentScoring keys follow the wire format of the blueprint schema;
// "marketReseach" keeps its historical spelling for compatibility.
type AgentScoring struct {
	MarketResearch   *AgentScore `json:"marketReseach,omitempty"`
	CompetitionIntel *AgentScore `json:"competitionIntel,omitempty"`
	ExecutionRisk    *AgentScore `json:"executionRisk,omitempty"`
	PMFProbability   *AgentScore `json:"pmfProbability,omitempty"`
}

type Service struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	PricingModel string `json:"pricingModel"`
}

type CostStructure struct {
	OneTimeSetup    []string `json:"oneTimeSetup,omitempty"`
	MonthlyExpenses []string `json:"monthlyExpenses,omitempty"`
}

// Only the anchor key is enforced. Model output is not contractually
// guaranteed, so validation is graceful degradation, not enforcement.
const blueprintAnchorSchema = `{
  "type": "object",
  "required": ["businessOverview"]
}`

var blueprintSchema = gojsonschema.NewStringLoader(blueprintAnchorSchema)

// ValidateBlueprint checks a classified candidate for the blueprint anchor
// field and decodes it into the concrete document. A failed check is a
// re-classification to conversational text, never an error.
func ValidateBlueprint(candidate json.RawMessage) (*BlueprintDocument, bool) {
	if len(candidate) == 0 {
		return nil, false
	}
	result, err := gojsonschema.Validate(blueprintSchema, gojsonschema.NewBytesLoader(candidate))
	if err != nil || !result.Valid() {
		return nil, false
	}
	var doc BlueprintDocument
	if err := json.Unmarshal(candidate, &doc); err != nil {
		return nil, false
	}
	return &doc, true
}
