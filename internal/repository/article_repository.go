package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"blogforge/internal/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	articleCacheKeyPrefix = "article:"
	allArticlesCacheKey   = "articles:all"
	cacheExpiration       = 30 * time.Minute
)

type ArticleRepository interface {
	// SaveWithTopicPublish creates the article and flips its topic to
	// published in a single transaction: readers never observe one
	// without the other.
	SaveWithTopicPublish(article *models.Article) error
	FindAll() ([]models.Article, error)
	FindByID(id uint) (*models.Article, error)
	FindBySlug(slug string) (*models.Article, error)
	UpdateSEO(id uint, score float64, metaDescription string, keywords []string, feedback string) error
	Delete(id uint) error
	DeleteAll() error
}

type articleRepository struct {
	db    *gorm.DB
	redis *redis.Client
	ctx   context.Context
}

func getCacheKey(id uint) string {
	return fmt.Sprintf("%s%d", articleCacheKeyPrefix, id)
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{
		db:    db,
		redis: nil,
		ctx:   context.Background(),
	}
}

func NewCachedArticleRepository(db *gorm.DB, redisClient *redis.Client) ArticleRepository {
	return &articleRepository{
		db:    db,
		redis: redisClient,
		ctx:   context.Background(),
	}
}

func (r *articleRepository) SaveWithTopicPublish(article *models.Article) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var topic models.Topic
		if err := tx.First(&topic, article.TopicID).Error; err != nil {
			return translate(err)
		}

		if err := tx.Create(article).Error; err != nil {
			return translate(err)
		}

		if err := tx.Model(&topic).Update("status", models.TopicStatusPublished).Error; err != nil {
			return translate(err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	_ = r.invalidateAllCache()
	return nil
}

func (r *articleRepository) FindAll() ([]models.Article, error) {
	if r.redis == nil {
		var articles []models.Article
		err := r.db.Preload("Topic").Order("created_at DESC").Find(&articles).Error
		return articles, translate(err)
	}

	cachedData, err := r.redis.Get(r.ctx, allArticlesCacheKey).Result()
	if err == nil {
		var articles []models.Article
		if err := json.Unmarshal([]byte(cachedData), &articles); err == nil {
			return articles, nil
		}
	}

	// Cache miss, query database
	var articles []models.Article
	if err := r.db.Preload("Topic").Order("created_at DESC").Find(&articles).Error; err != nil {
		return nil, translate(err)
	}

	articlesJSON, err := json.Marshal(articles)
	if err == nil {
		if err := r.redis.Set(r.ctx, allArticlesCacheKey, articlesJSON, cacheExpiration).Err(); err != nil {
			log.Printf("Failed to cache all articles: %v", err)
		}
	}

	return articles, nil
}

func (r *articleRepository) FindByID(id uint) (*models.Article, error) {
	if r.redis == nil {
		return r.findByIDFromDB(id)
	}

	cacheKey := getCacheKey(id)
	cachedData, err := r.redis.Get(r.ctx, cacheKey).Result()
	if err == nil {
		var article models.Article
		if err := json.Unmarshal([]byte(cachedData), &article); err == nil {
			return &article, nil
		}
		log.Printf("Failed to unmarshal cached article: %v", err)
	}

	article, err := r.findByIDFromDB(id)
	if err != nil {
		return nil, err
	}

	articleJSON, err := json.Marshal(article)
	if err == nil {
		if err := r.redis.Set(r.ctx, cacheKey, articleJSON, cacheExpiration).Err(); err != nil {
			log.Printf("Failed to cache article ID %d: %v", id, err)
		}
	}

	return article, nil
}

func (r *articleRepository) findByIDFromDB(id uint) (*models.Article, error) {
	var article models.Article
	if err := r.db.Preload("Topic").First(&article, id).Error; err != nil {
		return nil, translate(err)
	}
	return &article, nil
}

func (r *articleRepository) FindBySlug(slug string) (*models.Article, error) {
	var article models.Article
	if err := r.db.Preload("Topic").Where("slug = ?", slug).First(&article).Error; err != nil {
		return nil, translate(err)
	}
	return &article, nil
}

// UpdateSEO writes all SEO columns at once. Callers must only pass a fully
// parsed result; partial SEO data never reaches this method.
func (r *articleRepository) UpdateSEO(id uint, score float64, metaDescription string, keywords []string, feedback string) error {
	keywordsJSON, err := json.Marshal(keywords)
	if err != nil {
		return fmt.Errorf("failed to marshal keywords: %w", err)
	}

	result := r.db.Model(&models.Article{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"seo_score":        score,
			"meta_description": metaDescription,
			"keywords":         string(keywordsJSON),
			"seo_feedback":     feedback,
		})
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	_ = r.invalidateCache(id)
	_ = r.invalidateAllCache()
	return nil
}

func (r *articleRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Article{}, id)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	_ = r.invalidateCache(id)
	_ = r.invalidateAllCache()
	return nil
}

func (r *articleRepository) DeleteAll() error {
	if err := r.db.Where("1 = 1").Delete(&models.Article{}).Error; err != nil {
		return translate(err)
	}
	_ = r.invalidateAllCache()
	return nil
}

func (r *articleRepository) invalidateCache(id uint) error {
	if r.redis == nil {
		return nil
	}
	return r.redis.Del(r.ctx, getCacheKey(id)).Err()
}

func (r *articleRepository) invalidateAllCache() error {
	if r.redis == nil {
		return nil
	}
	return r.redis.Del(r.ctx, allArticlesCacheKey).Err()
}
