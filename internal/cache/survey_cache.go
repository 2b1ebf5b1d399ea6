package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"surveylink/internal/model"
)

// SurveyCache keeps surveys keyed by shareable link. Surveys are
// write-once, so entries never need invalidation and can simply expire.
type SurveyCache interface {
	Set(ctx context.Context, survey *model.Survey) error
	GetByLink(ctx context.Context, link string) (*model.Survey, error)
}

type surveyCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSurveyCache(client *redis.Client, ttl time.Duration) SurveyCache {
	return &surveyCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *surveyCache) Set(ctx context.Context, survey *model.Survey) error {
	data, err := json.Marshal(survey)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, "survey:link:"+survey.ShareableLink, data, c.ttl).Err()
}

// GetByLink returns (nil, nil) on a cache miss.
func (c *surveyCache) GetByLink(ctx context.Context, link string) (*model.Survey, error) {
	data, err := c.client.Get(ctx, "survey:link:"+link).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var survey model.Survey
	if err := json.Unmarshal([]byte(data), &survey); err != nil {
		return nil, err
	}
	return &survey, nil
}
