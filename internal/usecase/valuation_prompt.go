package usecase

import (
	"fmt"
	"strings"

	"wetrade/internal/domain/entities"
	"wetrade/internal/usecase/interfaces"

	"github.com/dustin/go-humanize"
)

// Names of the four fields the valuation service must return.
const (
	FieldEstimatedMarketValue = "estimatedMarketValue"
	FieldMaxLoanOffer         = "maxLoanOffer"
	FieldConfidenceScore      = "confidenceScore"
	FieldAnalysis             = "analysis"
)

// MarketContext scopes the live search to one regional market.
type MarketContext struct {
	Region    string
	Currency  string
	Retailers []string
}

func DefaultMarketContext() MarketContext {
	return MarketContext{
		Region:    "Nigeria",
		Currency:  "Naira",
		Retailers: []string{"Slot", "Jumia", "Pointek", "Nairaland"},
	}
}

// BuildAppraisalPrompt renders the instruction, system instruction and response
// schema from the policy, so the cap is written down in one place only.
func BuildAppraisalPrompt(description string, image *entities.InlineImage, policy entities.ValuationPolicy, market MarketContext) interfaces.AppraisalPrompt {
	pct := percent(policy.LoanToValue)
	ceiling := humanize.Comma(int64(policy.Ceiling))

	var b strings.Builder
	fmt.Fprintf(&b, "Analyze the current live market resale value in %s for this gadget: %q.\n", market.Region, description)
	if len(market.Retailers) > 0 {
		fmt.Fprintf(&b, "Search for current prices on major %s retailers like %s.\n", market.Region, strings.Join(market.Retailers, ", "))
	}
	fmt.Fprintf(&b, "Calculate a loan offer at exactly %d%% of the average market resale value, but STRICTLY CAP the loan offer at %s %s.", pct, ceiling, market.Currency)

	system := fmt.Sprintf(`You are the WeTrade AI Market Analyst.
Access live internet data to find the EXACT current street price in %[1]s for the described gadget.
Return a JSON object with:
1. %[2]s: (Number) Current average resale price in %[3]s.
2. %[4]s: (Number) %[5]d%% of the market value, but NEVER exceeding %[6]s %[3]s. If %[5]d%% of the market value is greater than %[6]s, return exactly %[6]s.
3. %[7]s: (Number 0-1) How sure you are based on available listings.
4. %[8]s: (String) A punchy summary of current market availability and pricing trends. Mention that we offer %[5]d%% of market value as a loan (capped at %[6]s).
IMPORTANT: Only return JSON.`,
		market.Region, FieldEstimatedMarketValue, market.Currency, FieldMaxLoanOffer, pct, ceiling, FieldConfidenceScore, FieldAnalysis)

	return interfaces.AppraisalPrompt{
		Instruction:       b.String(),
		SystemInstruction: system,
		Image:             image,
		SearchGrounding:   true,
		Schema: []interfaces.SchemaField{
			{Name: FieldEstimatedMarketValue, Type: "number", Description: "Average resale price in " + market.Currency},
			{Name: FieldMaxLoanOffer, Type: "number", Description: fmt.Sprintf("%d%% of %s, at most %s", pct, FieldEstimatedMarketValue, ceiling)},
			{Name: FieldConfidenceScore, Type: "number", Description: "Confidence between 0 and 1"},
			{Name: FieldAnalysis, Type: "string", Description: "Short market summary"},
		},
	}
}

func percent(ratio float64) int {
	return int(ratio*100 + 0.5)
}
