package coach

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vagledaren/vagledaren/pkg/types"
)

func TestDetectExpertiseTier(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  types.ExpertiseTier
	}{
		{"swedish what-is", "Vad är machine learning?", types.TIER_BASIC},
		{"english what-is", "What is deep learning?", types.TIER_BASIC},
		{"getting started", "hur kan jag komma igång med AI", types.TIER_BASIC},
		{"deployment", "hur ska vi deploy modellen till production", types.TIER_ADVANCED},
		{"business case", "hjälp mig bygga ett business case för AI", types.TIER_ADVANCED},
		{"research terms", "kan du förklara transformer architecture i detalj", types.TIER_EXPERT},
		{"benchmark", "vilken modell vinner på detta benchmark", types.TIER_EXPERT},
		{"no indicator", "berätta mer om neural networks", types.TIER_INTERMEDIATE},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectExpertiseTier(tt.query))
		})
	}
}

func TestDetectExpertiseTierExpertWinsOverBasic(t *testing.T) {
	// A query with both expert and basic indicators grades expert.
	tier := DetectExpertiseTier("vad är en attention mechanism?")
	assert.Equal(t, types.TIER_EXPERT, tier)
}
