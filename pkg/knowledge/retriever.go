package knowledge

import (
	"log/slog"
	"regexp"
	"sort"
	"strings"

	"github.com/vagledaren/vagledaren/pkg/types"
)

const (
	// Minimum combined score for a document to count as relevant.
	RELEVANCE_THRESHOLD = 0.1
	// Default number of documents included in a coaching prompt.
	DEFAULT_TOP_K = 3

	keywordHitBonus = 0.3
	titleWeight     = 2.0
)

// gateKeywords decide whether a user query is about AI at all.
// Retrieval is skipped entirely for non-AI questions so that ordinary
// coaching turns never carry knowledge context.
var gateKeywords = map[string][]string{
	"grundlaggande": {"ai", "artificial intelligence", "machine learning", "ml", "deep learning", "neural network", "algoritm"},
	"modeller":      {"gpt", "transformer", "bert", "llm", "language model", "generativ", "diffusion"},
	"teknisk":       {"python", "tensorflow", "pytorch", "api", "deployment", "mlops", "cloud"},
	"affar":         {"roi", "business case", "transformation", "strategi", "implementation", "pilot"},
	"sakerhet":      {"gdpr", "bias", "ethical", "security", "privacy", "compliance"},
	"universitet":   {"forskn", "academ", "student", "learning analytics", "universitet", "högskola"},
}

var gatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bai\b`),
	regexp.MustCompile(`artificial intelligence`),
	regexp.MustCompile(`machine learning`),
	regexp.MustCompile(`deep learning`),
	regexp.MustCompile(`neural network`),
	regexp.MustCompile(`algoritm`),
	regexp.MustCompile(`modell`),
	regexp.MustCompile(`träning`),
	regexp.MustCompile(`deployment`),
}

// Retriever scores the knowledge catalog against user queries using
// plain lexical similarity. No embeddings, no extra model calls.
type Retriever struct {
	docs []types.KnowledgeDocument
}

func NewRetriever(docs []types.KnowledgeDocument) *Retriever {
	slog.Info("knowledge retriever initialized", slog.Int("documents", len(docs)))
	return &Retriever{docs: docs}
}

func (r *Retriever) Documents() []types.KnowledgeDocument {
	return r.docs
}

// IsAIRelated reports whether the query should trigger knowledge
// retrieval. Substring keyword hits or any gate pattern match passes.
func (r *Retriever) IsAIRelated(query string) bool {
	lower := strings.ToLower(query)

	for _, keywords := range gateKeywords {
		for _, keyword := range keywords {
			if strings.Contains(lower, keyword) {
				return true
			}
		}
	}

	for _, pattern := range gatePatterns {
		if pattern.MatchString(lower) {
			return true
		}
	}

	return false
}

// Jaccard computes word-set similarity between two texts. Tokens are
// lowercase whitespace-split words.
func Jaccard(a, b string) float64 {
	aWords := wordSet(a)
	bWords := wordSet(b)

	if len(bWords) == 0 {
		return 0
	}

	intersection := 0
	for w := range aWords {
		if _, ok := bWords[w]; ok {
			intersection++
		}
	}
	union := len(aWords) + len(bWords) - intersection
	if union == 0 {
		return 0
	}

	return float64(intersection) / float64(union)
}

func wordSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Fields(strings.ToLower(s)) {
		set[w] = struct{}{}
	}
	return set
}

// Score combines content similarity, title similarity (double weight)
// and a fixed bonus per catalog keyword found in the query.
func (r *Retriever) Score(query string, doc types.KnowledgeDocument) float64 {
	lower := strings.ToLower(query)

	score := Jaccard(query, doc.Content)
	score += Jaccard(query, doc.Title) * titleWeight
	for _, keyword := range doc.Keywords {
		if strings.Contains(lower, strings.ToLower(keyword)) {
			score += keywordHitBonus
		}
	}
	return score
}

// Retrieve returns the topK most relevant documents for an AI-related
// query, empty for everything else. Ties keep catalog order.
func (r *Retriever) Retrieve(query string, topK int) []types.RetrievedContext {
	if !r.IsAIRelated(query) {
		return nil
	}
	if topK <= 0 {
		topK = DEFAULT_TOP_K
	}

	var scored []types.RetrievedContext
	for _, doc := range r.docs {
		score := r.Score(query, doc)
		if score <= RELEVANCE_THRESHOLD {
			continue
		}
		scored = append(scored, types.RetrievedContext{
			Title:           doc.Title,
			Category:        doc.Category,
			Content:         doc.Content,
			CoachingContext: doc.CoachingContext,
			RelevanceScore:  score,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].RelevanceScore > scored[j].RelevanceScore
	})

	if len(scored) > topK {
		scored = scored[:topK]
	}

	slog.Debug("knowledge retrieval", slog.String("query", query), slog.Int("matched", len(scored)))
	return scored
}
