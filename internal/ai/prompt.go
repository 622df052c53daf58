package ai

import (
	"fmt"
	"strings"

	"blogforge/internal/models"
)

// BuildArticlePrompt asks for a long-form markdown article about the topic.
// Every supplied field is embedded verbatim; the expected output format is
// stated explicitly so the response can be stored as-is.
func BuildArticlePrompt(topic *models.Topic, categoryName string, params *models.ArticleParameters) string {
	wordCount := params.TargetWordCount
	if topic.TargetWordCount > 0 {
		wordCount = topic.TargetWordCount
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Write a comprehensive article about: %s\n", topic.Title))
	sb.WriteString(fmt.Sprintf("Category: %s\n", categoryName))
	sb.WriteString(fmt.Sprintf("Target word count: %d\n\n", wordCount))
	sb.WriteString("Requirements:\n")
	sb.WriteString("- Write in markdown format\n")
	sb.WriteString("- Include a compelling introduction\n")
	sb.WriteString("- Use appropriate subheadings\n")
	sb.WriteString("- Include a conclusion\n")
	sb.WriteString("- Focus on providing valuable insights\n")
	sb.WriteString("- Be engaging, simple, and informative\n")
	sb.WriteString(fmt.Sprintf("- Purpose: %s\n", params.Purpose))
	sb.WriteString(fmt.Sprintf("- Target audience: %s\n", params.TargetAudience))
	sb.WriteString(fmt.Sprintf("- Tone: %s\n\n", params.Tone))
	sb.WriteString(fmt.Sprintf("Additional context: %s\n", topic.Description))
	return sb.String()
}

// BuildTopicIdeasPrompt asks for exactly count topic ideas for a category
// as a JSON array, with the legacy line format documented as a fallback for
// models that ignore the JSON instruction.
func BuildTopicIdeasPrompt(categoryName string, count int) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Generate %d blog topic ideas for the category: %s\n\n", count, categoryName))
	writeTopicIdeasFormat(&sb, count)
	return sb.String()
}

// BuildTopicIdeasFromPostsPrompt is the same contract, seeded with recent
// WordPress posts as context instead of a category.
func BuildTopicIdeasFromPostsPrompt(posts []models.WordPressPost, count int) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Generate %d new blog topic ideas inspired by these recently published posts:\n\n", count))
	for i, post := range posts {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, post.Title))
		if post.Excerpt != "" {
			sb.WriteString(fmt.Sprintf("   Summary: %s\n", post.Excerpt))
		}
	}
	sb.WriteString("\nThe new ideas must complement the existing posts without duplicating them.\n\n")
	writeTopicIdeasFormat(&sb, count)
	return sb.String()
}

func writeTopicIdeasFormat(sb *strings.Builder, count int) {
	sb.WriteString("For each topic provide:\n")
	sb.WriteString("- Title\n")
	sb.WriteString("- Brief description (2-3 sentences)\n")
	sb.WriteString("- Target word count (between 1000-2500)\n\n")
	sb.WriteString(fmt.Sprintf("Return the response as a JSON array of exactly %d objects with this shape:\n", count))
	sb.WriteString(`[{"title": "...", "description": "...", "target_word_count": 1500}]` + "\n")
	sb.WriteString("Do not enclose the JSON in markdown code fences. Only return the JSON array.\n")
}

// BuildSEOPrompt asks for an SEO analysis of generated article content as a
// single JSON object with fixed keys.
func BuildSEOPrompt(title, content string) string {
	var sb strings.Builder
	sb.WriteString("Analyze this article for SEO optimization:\n")
	sb.WriteString(fmt.Sprintf("Title: %s\n\n", title))
	sb.WriteString("Provide feedback in JSON format:\n")
	sb.WriteString("{\n")
	sb.WriteString(`    "seo_score": float (1-10),` + "\n")
	sb.WriteString(`    "meta_description": "compelling 155-character description",` + "\n")
	sb.WriteString(`    "keywords": ["list", "of", "relevant", "keywords"],` + "\n")
	sb.WriteString(`    "seo_feedback": "detailed feedback and suggestions"` + "\n")
	sb.WriteString("}\n")
	sb.WriteString("Only return the JSON object.\n\n")
	sb.WriteString(fmt.Sprintf("Content to analyze: %s\n", content))
	return sb.String()
}
