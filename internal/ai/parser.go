package ai

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

var listNumberPrefix = regexp.MustCompile(`^(\d+[.)]|[-*])\s*`)

// ParseTopicIdeas converts a raw topic-idea response into structured
// records. JSON decoding is attempted first; on failure it falls back to
// scanning the legacy "Title:"/"Description:"/"Word Count:" line format.
// Malformed records are dropped, never fatal: an unusable response yields
// an empty slice, and the caller reports "zero generated".
func ParseTopicIdeas(raw string) []TopicIdea {
	text := StripCodeFence(raw)

	if ideas := parseTopicIdeasJSON(text); len(ideas) > 0 {
		return ideas
	}
	return parseTopicIdeasLines(text)
}

func parseTopicIdeasJSON(text string) []TopicIdea {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start == -1 || end <= start {
		return nil
	}

	var decoded []TopicIdea
	if err := json.Unmarshal([]byte(text[start:end+1]), &decoded); err != nil {
		return nil
	}

	ideas := make([]TopicIdea, 0, len(decoded))
	for _, idea := range decoded {
		idea.Title = strings.TrimSpace(idea.Title)
		idea.Description = strings.TrimSpace(idea.Description)
		if idea.Title == "" || idea.Description == "" {
			continue
		}
		ideas = append(ideas, idea)
	}
	return ideas
}

// parseTopicIdeasLines is the best-effort legacy path. Each "Title:" line
// starts a new record; recognized prefixes fill the current record; text
// before the first "Title:" is discarded. A blank line does not close a
// record, only the next "Title:" or end of input does.
func parseTopicIdeasLines(text string) []TopicIdea {
	var ideas []TopicIdea
	var current *TopicIdea

	flush := func() {
		if current != nil && current.Title != "" && current.Description != "" {
			ideas = append(ideas, *current)
		}
		current = nil
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		line = listNumberPrefix.ReplaceAllString(line, "")

		switch {
		case strings.HasPrefix(line, "Title:"):
			flush()
			current = &TopicIdea{Title: strings.TrimSpace(strings.TrimPrefix(line, "Title:"))}
		case current == nil:
			// Preamble before the first record.
		case strings.HasPrefix(line, "Description:"):
			current.Description = strings.TrimSpace(strings.TrimPrefix(line, "Description:"))
		case strings.HasPrefix(line, "Word Count:"):
			value := strings.TrimSpace(strings.TrimPrefix(line, "Word Count:"))
			value = strings.ReplaceAll(value, ",", "")
			if n, err := strconv.Atoi(value); err == nil {
				current.TargetWordCount = n
			}
		}
	}
	flush()

	return ideas
}

type seoResultJSON struct {
	SEOScore        *float64  `json:"seo_score"`
	MetaDescription *string   `json:"meta_description"`
	Keywords        *[]string `json:"keywords"`
	SEOFeedback     *string   `json:"seo_feedback"`
}

// ParseSEOResult decodes an SEO analysis response. Unlike topic ideas, this
// is strict: the result is written into required storage columns, so a
// structurally invalid object or any missing key is a *ParseError and the
// enclosing operation must abort.
func ParseSEOResult(raw string) (*SEOResult, error) {
	text := StripCodeFence(raw)

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end <= start {
		return nil, &ParseError{Message: "no JSON object found in response", Raw: raw}
	}

	var decoded seoResultJSON
	if err := json.Unmarshal([]byte(text[start:end+1]), &decoded); err != nil {
		return nil, &ParseError{Message: "invalid JSON: " + err.Error(), Raw: raw}
	}

	switch {
	case decoded.SEOScore == nil:
		return nil, &ParseError{Message: "missing required key seo_score", Raw: raw}
	case decoded.MetaDescription == nil:
		return nil, &ParseError{Message: "missing required key meta_description", Raw: raw}
	case decoded.Keywords == nil:
		return nil, &ParseError{Message: "missing required key keywords", Raw: raw}
	case decoded.SEOFeedback == nil:
		return nil, &ParseError{Message: "missing required key seo_feedback", Raw: raw}
	}

	if *decoded.SEOScore < 1 || *decoded.SEOScore > 10 {
		return nil, &ParseError{Message: "seo_score out of range 1-10", Raw: raw}
	}

	return &SEOResult{
		SEOScore:        *decoded.SEOScore,
		MetaDescription: *decoded.MetaDescription,
		Keywords:        *decoded.Keywords,
		SEOFeedback:     *decoded.SEOFeedback,
	}, nil
}

// StripCodeFence removes a surrounding markdown code fence (``` or
// ```json) if the model wrapped its answer in one despite instructions.
func StripCodeFence(raw string) string {
	text := strings.TrimSpace(raw)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	text = strings.TrimPrefix(text, "```")
	if idx := strings.Index(text, "\n"); idx != -1 {
		// Drop the language tag line (e.g. "json").
		text = text[idx+1:]
	}
	if idx := strings.LastIndex(text, "```"); idx != -1 {
		text = text[:idx]
	}
	return strings.TrimSpace(text)
}
