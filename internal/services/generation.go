package services

import (
	"context"
	"errors"
	"log"

	"blogforge/internal/ai"
	"blogforge/internal/models"
	"blogforge/internal/repository"
)

// ErrNoWordPressPosts is returned when idea generation from WordPress
// context is requested before any posts have been synced.
var ErrNoWordPressPosts = errors.New("no synced WordPress posts available")

const wordPressContextPosts = 10

// GenerationService sequences the pipeline: build prompt, call the
// generative backend, parse, validate, persist. One instance serves
// concurrent requests; all mutable state lives in storage.
type GenerationService struct {
	generator     ai.Generator
	categoryRepo  repository.CategoryRepository
	topicRepo     repository.TopicRepository
	articleRepo   repository.ArticleRepository
	paramsRepo    repository.ArticleParametersRepository
	wordPressRepo repository.WordPressPostRepository
}

func NewGenerationService(
	generator ai.Generator,
	categoryRepo repository.CategoryRepository,
	topicRepo repository.TopicRepository,
	articleRepo repository.ArticleRepository,
	paramsRepo repository.ArticleParametersRepository,
	wordPressRepo repository.WordPressPostRepository,
) *GenerationService {
	return &GenerationService{
		generator:     generator,
		categoryRepo:  categoryRepo,
		topicRepo:     topicRepo,
		articleRepo:   articleRepo,
		paramsRepo:    paramsRepo,
		wordPressRepo: wordPressRepo,
	}
}

// GenerateTopicIdeas asks the backend for count topic ideas for a category
// and returns the parsed candidates. Nothing is persisted here; the
// operator reviews and confirms a selection separately.
func (s *GenerationService) GenerateTopicIdeas(ctx context.Context, categoryID uint, count int) ([]ai.TopicIdea, error) {
	category, err := s.categoryRepo.FindByID(categoryID)
	if err != nil {
		return nil, err
	}

	prompt := ai.BuildTopicIdeasPrompt(category.Name, count)
	return s.generateIdeas(ctx, prompt)
}

// GenerateTopicIdeasFromWordPress uses recently synced posts as context
// instead of a category.
func (s *GenerationService) GenerateTopicIdeasFromWordPress(ctx context.Context, count int) ([]ai.TopicIdea, error) {
	posts, err := s.wordPressRepo.FindRecent(wordPressContextPosts)
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return nil, ErrNoWordPressPosts
	}

	prompt := ai.BuildTopicIdeasFromPostsPrompt(posts, count)
	return s.generateIdeas(ctx, prompt)
}

// generateIdeas runs one generation round trip and retries once when the
// parser recovers nothing: generative backends intermittently return
// malformed free text, and idea generation is cheap to repeat. A second
// empty result is reported as zero candidates, not an error.
func (s *GenerationService) generateIdeas(ctx context.Context, prompt string) ([]ai.TopicIdea, error) {
	raw, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	ideas := ai.ParseTopicIdeas(raw)
	if len(ideas) > 0 {
		return ideas, nil
	}

	log.Printf("Topic idea response yielded no parseable records, retrying once")
	raw, err = s.generator.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}
	return ai.ParseTopicIdeas(raw), nil
}

// ConfirmTopicIdeas persists the operator-selected ideas as draft topics.
// A zero categoryID marks the ideas as WordPress-sourced: the well-known
// fallback category is resolved or created instead of failing.
func (s *GenerationService) ConfirmTopicIdeas(ctx context.Context, categoryID uint, ideas []ai.TopicIdea) ([]*models.Topic, error) {
	if len(ideas) == 0 {
		return nil, nil
	}

	var category *models.Category
	var err error
	if categoryID == 0 {
		category, err = s.categoryRepo.FindOrCreateByName(
			models.WordPressFallbackCategory,
			"Topics suggested from synced WordPress content",
		)
	} else {
		category, err = s.categoryRepo.FindByID(categoryID)
	}
	if err != nil {
		return nil, err
	}

	topics := make([]*models.Topic, 0, len(ideas))
	for _, idea := range ideas {
		topic := &models.Topic{
			Title:       idea.Title,
			Description: idea.Description,
			CategoryID:  category.ID,
			Status:      models.TopicStatusDraft,
		}
		if idea.TargetWordCount > 0 {
			topic.TargetWordCount = idea.TargetWordCount
		}
		topics = append(topics, topic)
	}

	if err := s.topicRepo.CreateBatch(topics); err != nil {
		return nil, err
	}
	return topics, nil
}

// GenerateArticle drafts an article for the topic and saves it, flipping
// the topic to published in the same transaction. paramsID of zero selects
// the fallback chain: stored default record, then hardcoded defaults.
// SEO scoring is deliberately not part of this operation; see
// ScoreArticleSEO.
func (s *GenerationService) GenerateArticle(ctx context.Context, topicID, paramsID uint) (*models.Article, error) {
	topic, err := s.topicRepo.FindByID(topicID)
	if err != nil {
		return nil, err
	}

	params, err := s.resolveParameters(paramsID)
	if err != nil {
		return nil, err
	}

	categoryName := ""
	if topic.Category != nil {
		categoryName = topic.Category.Name
	}

	prompt := ai.BuildArticlePrompt(topic, categoryName, params)
	content, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	article := &models.Article{
		TopicID: topic.ID,
		Title:   topic.Title,
		Content: content,
	}
	if err := s.articleRepo.SaveWithTopicPublish(article); err != nil {
		return nil, err
	}
	return article, nil
}

func (s *GenerationService) resolveParameters(paramsID uint) (*models.ArticleParameters, error) {
	if paramsID != 0 {
		return s.paramsRepo.FindByID(paramsID)
	}

	params, err := s.paramsRepo.FindDefault()
	if err == nil {
		return params, nil
	}
	if errors.Is(err, repository.ErrNotFound) {
		return models.DefaultArticleParameters(), nil
	}
	return nil, err
}

// ScoreArticleSEO runs the secondary SEO round trip for an existing
// article. It is independently retryable and never touches the article
// body; a malformed response is a *ai.ParseError and nothing is written.
func (s *GenerationService) ScoreArticleSEO(ctx context.Context, articleID uint) (*ai.SEOResult, error) {
	article, err := s.articleRepo.FindByID(articleID)
	if err != nil {
		return nil, err
	}

	prompt := ai.BuildSEOPrompt(article.Title, article.Content)
	raw, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	result, err := ai.ParseSEOResult(raw)
	if err != nil {
		return nil, err
	}

	err = s.articleRepo.UpdateSEO(article.ID, result.SEOScore, result.MetaDescription, result.Keywords, result.SEOFeedback)
	if err != nil {
		return nil, err
	}
	return result, nil
}
