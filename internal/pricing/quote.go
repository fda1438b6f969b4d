package pricing

import "math"

// Budget reports how the quoted cost relates to the user's spending ceiling.
// SuggestedLimit is zero when no escalation is suggested.
type Budget struct {
	CurrentLimit     float64 `json:"currentLimit"`
	SuggestedLimit   float64 `json:"suggestedLimit,omitempty"`
	RequiresIncrease bool    `json:"requiresIncrease"`
}

// Quote is an immutable pricing result for one document size.
//
// Invariants: TotalUnits = MinerFeeUnits + ServiceFeeUnits, and
// RequiresIncrease = TotalUSD > CurrentLimit.
type Quote struct {
	WordCount       int     `json:"wordCount"`
	ByteSize        int     `json:"byteSize"`
	MinerFeeUnits   int64   `json:"minerFeeUnits"`
	ServiceFeeUnits int64   `json:"serviceFeeUnits"`
	TotalUnits      int64   `json:"totalUnits"`
	TotalUSD        float64 `json:"totalUSD"`
	CostPerWord     float64 `json:"costPerWord"`
	Budget          Budget  `json:"budget"`
}

// Quote prices the storage of a document of wordCount words. It is a pure
// function and is called on every edit; throttling is the caller's concern.
//
// currentBudgetUSD <= 0 falls back to r.DefaultBudgetUSD.
func (r Rates) Quote(wordCount int, encrypted bool, currentBudgetUSD float64) Quote {
	if currentBudgetUSD <= 0 {
		currentBudgetUSD = r.DefaultBudgetUSD
	}

	if wordCount <= 0 {
		// No cost, no budget prompt.
		return Quote{Budget: Budget{CurrentLimit: currentBudgetUSD}}
	}

	bytes := wordCount * r.BytesPerWord
	minerFee := int64(math.Ceil(float64(bytes) * r.UnitsPerByte))

	multiplier := r.ServiceMultiplier
	if encrypted {
		multiplier *= r.EncryptionMultiplier
	}

	totalUnits := int64(math.Round(float64(minerFee) * multiplier))
	serviceFee := totalUnits - minerFee
	totalUSD := float64(totalUnits) * r.USDPerUnit

	budget := Budget{
		CurrentLimit:     currentBudgetUSD,
		RequiresIncrease: totalUSD > currentBudgetUSD,
	}
	if wordCount >= r.EscalationWords || totalUSD > currentBudgetUSD {
		budget.SuggestedLimit = r.nextTier(totalUSD)
	}

	return Quote{
		WordCount:       wordCount,
		ByteSize:        bytes,
		MinerFeeUnits:   minerFee,
		ServiceFeeUnits: serviceFee,
		TotalUnits:      totalUnits,
		TotalUSD:        totalUSD,
		CostPerWord:     totalUSD / float64(wordCount),
		Budget:          budget,
	}
}

// nextTier returns the smallest configured tier strictly above totalUSD,
// or totalUSD*2 when the cost has outgrown every tier.
func (r Rates) nextTier(totalUSD float64) float64 {
	for _, tier := range r.BudgetTiers {
		if tier > totalUSD {
			return tier
		}
	}
	return totalUSD * 2
}
