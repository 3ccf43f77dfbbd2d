package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/devconnector-api/internal/application"
	"github.com/oksasatya/devconnector-api/internal/infrastructure/github"
)

type stubRepoLister struct {
	repos map[string][]github.Repository
}

func (s *stubRepoLister) Repositories(_ context.Context, username string) ([]github.Repository, error) {
	repos, ok := s.repos[username]
	if !ok {
		return nil, github.ErrNotFound
	}
	return repos, nil
}

func githubRouter(lister application.RepositoryLister) *gin.Engine {
	svc := application.NewGithubService(lister, nil, 0, nil)
	h := NewGithubHandler(svc, nil)
	r := gin.New()
	r.GET("/api/profile/github/:username", h.Repos)
	return r
}

func TestGithubHandler_Repos(t *testing.T) {
	r := githubRouter(&stubRepoLister{repos: map[string][]github.Repository{
		"octocat": {{ID: 1, Name: "hello-world", Stargazers: 3}},
	}})

	w := doJSON(t, r, http.MethodGet, "/api/profile/github/octocat", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var repos []github.Repository
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &repos))
	require.Len(t, repos, 1)
	assert.Equal(t, "hello-world", repos[0].Name)
}

func TestGithubHandler_ReposUnknownUser(t *testing.T) {
	r := githubRouter(&stubRepoLister{repos: map[string][]github.Repository{}})

	w := doJSON(t, r, http.MethodGet, "/api/profile/github/no-such-user", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"msg":"no github profile found"}`, w.Body.String())
}
