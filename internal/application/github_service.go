package application

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/devconnector-api/internal/infrastructure/github"
	"github.com/oksasatya/devconnector-api/pkg/helpers"
)

// RepositoryLister is what the service needs from the GitHub client.
type RepositoryLister interface {
	Repositories(ctx context.Context, username string) ([]github.Repository, error)
}

// GithubService proxies the third-party repository listing with a short Redis
// cache in front of it. Cache failures fall through to the upstream call.
type GithubService struct {
	Client   RepositoryLister
	Redis    *redis.Client
	CacheTTL time.Duration
	Logger   *logrus.Logger
}

func NewGithubService(client RepositoryLister, rdb *redis.Client, cacheTTL time.Duration, logger *logrus.Logger) *GithubService {
	return &GithubService{Client: client, Redis: rdb, CacheTTL: cacheTTL, Logger: logger}
}

func cacheKey(username string) string {
	return "gh:repos:" + username
}

func (s *GithubService) Repositories(ctx context.Context, username string) ([]github.Repository, error) {
	if s.Redis != nil {
		var cached []github.Repository
		if ok, err := helpers.RedisGetJSON(ctx, s.Redis, cacheKey(username), &cached); err == nil && ok {
			return cached, nil
		}
	}

	repos, err := s.Client.Repositories(ctx, username)
	if err != nil {
		return nil, err
	}

	if s.Redis != nil && s.CacheTTL > 0 {
		if err := helpers.RedisSetJSON(ctx, s.Redis, cacheKey(username), repos, s.CacheTTL); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("username", username).Warn("github cache write failed")
		}
	}
	return repos, nil
}
