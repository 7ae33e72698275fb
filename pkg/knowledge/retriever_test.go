package knowledge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsAIRelated(t *testing.T) {
	r := NewRetriever(Catalog())

	tests := []struct {
		name  string
		query string
		want  bool
	}{
		{"english ml question", "What is machine learning?", true},
		{"swedish ml question", "Vad är machine learning?", true},
		{"bare ai word", "hur kommer jag igång med ai", true},
		{"llm jargon", "ska vi använda en LLM eller GPT för detta", true},
		{"swedish model word", "vilken modell passar bäst", true},
		{"greeting", "Hej, vad heter du?", false},
		{"career question", "jag funderar på att byta jobb", false},
		{"substring ai still triggers", "kan du maila mig imorgon", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.IsAIRelated(tt.query))
		})
	}
}

func TestJaccard(t *testing.T) {
	assert.Equal(t, float64(1), Jaccard("hej hopp", "hopp hej"))
	assert.Equal(t, float64(0), Jaccard("abc", "def"))
	assert.Equal(t, float64(0), Jaccard("abc", ""))

	// {a b c} vs {b c d}: 2 shared of 4 total
	assert.InDelta(t, 0.5, Jaccard("a b c", "b c d"), 1e-9)

	// case-insensitive tokens
	assert.Equal(t, float64(1), Jaccard("Machine Learning", "machine learning"))
}

func TestRetrieveNonAIQueryReturnsNothing(t *testing.T) {
	r := NewRetriever(Catalog())

	got := r.Retrieve("Hej, vad heter du?", DEFAULT_TOP_K)
	assert.Empty(t, got)
}

func TestRetrieveRanksFundamentalsFirst(t *testing.T) {
	r := NewRetriever(Catalog())

	got := r.Retrieve("Vad är machine learning?", DEFAULT_TOP_K)
	require.NotEmpty(t, got)
	assert.LessOrEqual(t, len(got), DEFAULT_TOP_K)
	assert.Equal(t, "Machine Learning Fundamentals", got[0].Title)

	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].RelevanceScore, got[i].RelevanceScore)
	}
	for _, ctx := range got {
		assert.Greater(t, ctx.RelevanceScore, RELEVANCE_THRESHOLD)
	}
}

func TestRetrieveKeywordBonus(t *testing.T) {
	r := NewRetriever(Catalog())

	// Query contains two catalog keywords of the MLOps document, each
	// adding a fixed bonus on top of the text similarity.
	mlops := Catalog()[7]
	require.Equal(t, "MLOps Best Practices", mlops.Title)

	withKeywords := r.Score("mlops och model monitoring i produktion", mlops)
	without := r.Score("något helt annat i produktion", mlops)
	assert.Greater(t, withKeywords, without+0.5)
}

func TestRetrieveTopKBound(t *testing.T) {
	r := NewRetriever(Catalog())

	got := r.Retrieve("ai transformation strategi och implementation med pilot", 2)
	assert.LessOrEqual(t, len(got), 2)

	// Zero topK falls back to the default.
	got = r.Retrieve("ai transformation strategi och implementation med pilot", 0)
	assert.LessOrEqual(t, len(got), DEFAULT_TOP_K)
}
