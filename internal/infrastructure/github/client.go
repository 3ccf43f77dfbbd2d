package github

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// ErrNotFound covers every upstream failure the API maps to "no github
// profile found": unknown user, non-200 status, or transport error.
var ErrNotFound = errors.New("github user not found")

// Repository is the subset of the GitHub repo payload the directory exposes.
type Repository struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	FullName    string `json:"full_name"`
	HTMLURL     string `json:"html_url"`
	Description string `json:"description"`
	Stargazers  int    `json:"stargazers_count"`
	Watchers    int    `json:"watchers_count"`
	Forks       int    `json:"forks_count"`
	CreatedAt   string `json:"created_at"`
}

type Client struct {
	client       *resty.Client
	clientID     string
	clientSecret string
}

func NewClient(baseURL, clientID, clientSecret string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	cli := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/vnd.github.v3+json")
	return &Client{client: cli, clientID: clientID, clientSecret: clientSecret}
}

// Repositories lists the five oldest public repositories of a GitHub user.
func (c *Client) Repositories(ctx context.Context, username string) ([]Repository, error) {
	var repos []Repository
	req := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"per_page": "5",
			"sort":     "created:asc",
		}).
		SetResult(&repos)
	if c.clientID != "" && c.clientSecret != "" {
		req.SetQueryParams(map[string]string{
			"client_id":     c.clientID,
			"client_secret": c.clientSecret,
		})
	}

	resp, err := req.Get(fmt.Sprintf("/users/%s/repos", username))
	if err != nil {
		return nil, ErrNotFound
	}
	if resp.StatusCode() != 200 {
		return nil, ErrNotFound
	}
	return repos, nil
}
