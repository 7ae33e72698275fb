package coach

import (
	"fmt"
	"strings"
	"time"

	"github.com/vagledaren/vagledaren/pkg/knowledge"
	"github.com/vagledaren/vagledaren/pkg/types"
)

// ComposeObserver receives timing and retrieval stats for every
// composed prompt.
type ComposeObserver func(mode types.CoachingMode, elapsed time.Duration, hits int)

// Composer builds the per-turn system prompt: the mode persona,
// optionally enriched with tiered AI guidance and retrieved knowledge
// when the user's query is about AI.
type Composer struct {
	retriever *knowledge.Retriever
	topK      int
	observe   ComposeObserver
}

func NewComposer(retriever *knowledge.Retriever, topK int) *Composer {
	if topK <= 0 {
		topK = knowledge.DEFAULT_TOP_K
	}
	return &Composer{
		retriever: retriever,
		topK:      topK,
	}
}

// Observe registers a stats callback. Not safe to call once the
// composer is in use.
func (c *Composer) Observe(fn ComposeObserver) {
	c.observe = fn
}

// Compose returns the system prompt for one conversation turn. Same
// inputs always give the same prompt, non-AI queries get the bare
// persona back.
func (c *Composer) Compose(basePersona, query string, mode types.CoachingMode) string {
	start := time.Now()
	prompt, hits := c.compose(basePersona, query, mode)
	if c.observe != nil {
		c.observe(mode, time.Since(start), hits)
	}
	return prompt
}

func (c *Composer) compose(basePersona, query string, mode types.CoachingMode) (string, int) {
	if !c.retriever.IsAIRelated(query) {
		return basePersona, 0
	}

	tier := DetectExpertiseTier(query)
	enhanced := c.enhancePersona(basePersona, tier, mode)

	contexts := c.retriever.Retrieve(query, c.topK)
	if len(contexts) == 0 {
		return enhanced, 0
	}

	return c.appendKnowledge(enhanced, contexts), len(contexts)
}

func (c *Composer) enhancePersona(basePersona string, tier types.ExpertiseTier, mode types.CoachingMode) string {
	var b strings.Builder
	b.WriteString(basePersona)
	b.WriteString("\n\n## AI-Expertis Enhancement\n")
	b.WriteString(expertiseBase)
	b.WriteString("\n\n")
	b.WriteString(tierGuidance(tier))
	if guidance := modeGuidance(mode); guidance != "" {
		b.WriteString("\n\n")
		b.WriteString(guidance)
	}

	b.WriteString(`

**Integration approach**: Kombinera din coaching-expertis med AI-kunskap genom att:
- Ställa reflekterande frågor som hjälper användaren tänka igenom AI-beslut
- Ge praktisk vägledning baserad på användarens kontext och mognadsnivå
- Balansera teknisk information med personlig utveckling och coaching
- Hjälpa användaren utveckla AI-kompetens steg för steg
- Fokusera på användbar, actionable rådgivning snarare än bara teoretisk kunskap`)

	return b.String()
}

func (c *Composer) appendKnowledge(prompt string, contexts []types.RetrievedContext) string {
	var b strings.Builder
	b.WriteString(prompt)
	b.WriteString("\n\n## AI-Expertis Kontext\n")
	b.WriteString("Som AI-expert har du tillgång till följande relevanta kunskap:\n\n")

	for i, ctx := range contexts {
		fmt.Fprintf(&b, "### %d. %s (Kategori: %s)\n", i+1, ctx.Title, ctx.Category)
		b.WriteString(ctx.Content)
		b.WriteString("\n\n")
		if ctx.CoachingContext != "" {
			fmt.Fprintf(&b, "**Coaching-perspektiv**: %s\n\n", ctx.CoachingContext)
		}
	}

	b.WriteString(`**Viktigt**: När du svarar på AI-relaterade frågor, använd ovanstående expertis men behåll alltid din roll som coach. Kombinera teknisk kunskap med coaching-approach genom att:
- Ställa reflekterande frågor
- Hjälpa användaren hitta rätt AI-lösning för deras specifika situation
- Ge praktiska steg och vägledning
- Uppmuntra reflektion kring implementation och utmaningar

Svara på svenska med professionell men varm coaching-ton.`)

	return b.String()
}
