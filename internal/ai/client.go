package ai

import "context"

// Generator abstracts the generative text backend so the pipeline can be
// exercised with a mock in tests. One call, one prompt, one synchronous
// text result.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// TopicIdea is one candidate subject parsed from a topic-idea response.
// TargetWordCount is 0 when the model did not supply one.
type TopicIdea struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	TargetWordCount int    `json:"target_word_count,omitempty"`
}

// SEOResult is the structured outcome of an SEO analysis round trip.
type SEOResult struct {
	SEOScore        float64  `json:"seo_score"`
	MetaDescription string   `json:"meta_description"`
	Keywords        []string `json:"keywords"`
	SEOFeedback     string   `json:"seo_feedback"`
}
