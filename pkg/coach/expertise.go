package coach

import (
	"strings"

	"github.com/vagledaren/vagledaren/pkg/types"
)

// Term tables for tier detection. Matched as plain substrings against
// the lowercased query, first table hit wins in the order
// expert > advanced > basic, otherwise intermediate.
var (
	expertTerms = []string{
		"transformer architecture", "attention mechanism", "gradient descent",
		"backpropagation", "hyperparameter tuning", "model architecture",
		"research paper", "state-of-the-art", "benchmark", "ablation study",
	}

	advancedTerms = []string{
		"implementation", "deploy", "production", "mlops", "api integration",
		"business case", "roi", "transformation roadmap", "pilot project",
		"cloud services", "data pipeline", "model training",
	}

	basicTerms = []string{
		"vad är", "what is", "grundläggande", "basics", "introduction",
		"förklara", "explain", "skillnad mellan", "difference between",
		"komma igång", "getting started", "learn", "lära mig",
	}
)

// DetectExpertiseTier grades how deep the injected AI guidance should
// go for a given user query.
func DetectExpertiseTier(query string) types.ExpertiseTier {
	lower := strings.ToLower(query)

	for _, term := range expertTerms {
		if strings.Contains(lower, term) {
			return types.TIER_EXPERT
		}
	}
	for _, term := range advancedTerms {
		if strings.Contains(lower, term) {
			return types.TIER_ADVANCED
		}
	}
	for _, term := range basicTerms {
		if strings.Contains(lower, term) {
			return types.TIER_BASIC
		}
	}

	return types.TIER_INTERMEDIATE
}

const expertiseBase = `Du har djup expertis inom AI och machine learning, inklusive:
- Moderna AI-modeller (LLMs, Transformers, Generativ AI)
- Praktisk AI-implementation och MLOps
- AI-strategi och business transformation
- Ethical AI och responsible deployment`

// tierGuidance returns the tier-specific focus block appended to the
// persona when a query is AI-related.
func tierGuidance(tier types.ExpertiseTier) string {
	switch tier {
	case types.TIER_BASIC:
		return `**Fokus för grundläggande frågor**:
- Förklara komplexa AI-koncept med enkla, relatable exempel
- Hjälp användaren bygga AI-förståelse steg för steg
- Koppla AI-teorier till praktiska tillämpningar
- Uppmuntra nyfikenhet och fortsatt lärande
- Ge rekommendationer för nästa steg i AI-journey`
	case types.TIER_ADVANCED:
		return `**Fokus för strategisk och teknisk djup**:
- Fördjupa diskussioner om AI-arkitektur och design decisions
- Ge strategisk vägledning för AI-transformation
- Diskutera industry trends och emerging technologies
- Hjälpa med complex technical challenges
- Stötta ledarskap i AI-relaterade beslut`
	case types.TIER_EXPERT:
		return `**Fokus för cutting-edge expertis**:
- Diskutera latest research och state-of-the-art techniques
- Ge insikter om emerging AI paradigms
- Stötta innovation och experimentation
- Hjälpa med forskningsfrågor och advanced implementations
- Balansera teoretisk fördjupning med praktisk applicering`
	default:
		return `**Fokus för praktisk implementation**:
- Ge konkret vägledning för AI-projekt och implementation
- Hjälp med verktygsval och tekniska beslut
- Diskutera best practices och vanliga fallgropar
- Stötta projekt-planning och risk-bedömning
- Balansera tekniska och affärsmässiga överväganden`
	}
}

// modeGuidance returns the mode-specific expertise block. Hybrid mode
// carries no extra block, its persona already spans both roles.
func modeGuidance(mode types.CoachingMode) string {
	switch mode {
	case types.MODE_UNIVERSITY:
		return `**Universitets-specifik AI-expertis**:
- Academic research applications av AI
- Learning analytics och educational technology
- AI governance och policy development för universitet
- Forskningsintegritet och ethical considerations
- Faculty training och capacity building för AI`
	case types.MODE_PERSONAL:
		return `**Personlig AI-utveckling**:
- Individuell AI-kompetensbyggande
- Career development inom AI-området
- Personliga AI-projekt och portfolioutveckling
- Networking och community building inom AI
- Balans mellan teknisk och business-orienterad AI-kunskap`
	default:
		return ""
	}
}
