package coach

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vagledaren/vagledaren/pkg/knowledge"
	"github.com/vagledaren/vagledaren/pkg/types"
)

func newTestComposer() *Composer {
	return NewComposer(knowledge.NewRetriever(knowledge.Catalog()), knowledge.DEFAULT_TOP_K)
}

func TestComposeNonAIQueryKeepsPersona(t *testing.T) {
	c := newTestComposer()

	persona := Persona(types.MODE_PERSONAL)
	got := c.Compose(persona, "Hej, vad heter du?", types.MODE_PERSONAL)
	assert.Equal(t, persona, got)
}

func TestComposeAIQueryEnrichesPersona(t *testing.T) {
	c := newTestComposer()

	persona := Persona(types.MODE_PERSONAL)
	got := c.Compose(persona, "Vad är machine learning?", types.MODE_PERSONAL)

	require.NotEqual(t, persona, got)
	assert.True(t, strings.HasPrefix(got, persona))
	assert.Contains(t, got, "## AI-Expertis Enhancement")
	assert.Contains(t, got, "Fokus för grundläggande frågor")
	assert.Contains(t, got, "Personlig AI-utveckling")
	assert.Contains(t, got, "## AI-Expertis Kontext")
	assert.Contains(t, got, "Machine Learning Fundamentals")
}

func TestComposeUniversityModeGuidance(t *testing.T) {
	c := newTestComposer()

	got := c.Compose(Persona(types.MODE_UNIVERSITY), "hur ska vi deploy AI i production", types.MODE_UNIVERSITY)
	assert.Contains(t, got, "Universitets-specifik AI-expertis")
	assert.Contains(t, got, "Fokus för strategisk och teknisk djup")
}

func TestComposeObserverReportsRetrievalHits(t *testing.T) {
	c := newTestComposer()

	var gotMode types.CoachingMode
	var gotHits int
	calls := 0
	c.Observe(func(mode types.CoachingMode, elapsed time.Duration, hits int) {
		gotMode = mode
		gotHits = hits
		calls++
	})

	c.Compose(Persona(types.MODE_PERSONAL), "Vad är machine learning?", types.MODE_PERSONAL)
	assert.Equal(t, 1, calls)
	assert.Equal(t, types.MODE_PERSONAL, gotMode)
	assert.Greater(t, gotHits, 0)

	c.Compose(Persona(types.MODE_PERSONAL), "Hej, vad heter du?", types.MODE_PERSONAL)
	assert.Equal(t, 2, calls)
	assert.Zero(t, gotHits)
}

func TestComposeIsDeterministic(t *testing.T) {
	c := newTestComposer()

	persona := Persona(types.MODE_HYBRID)
	first := c.Compose(persona, "vilken LLM ska vi använda?", types.MODE_HYBRID)
	second := c.Compose(persona, "vilken LLM ska vi använda?", types.MODE_HYBRID)
	assert.Equal(t, first, second)
}
