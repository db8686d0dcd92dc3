// Package github provides the GitHub API client used to comment on pull
// requests. It handles OAuth2 token-based authentication through the
// GITHUB_TOKEN environment variable and provides type aliases for the GitHub
// API types the rest of the code needs. Without a token the client is
// unauthenticated; creating pull request comments requires a token.
package github

import (
	"context"
	"net/http"
	"os"

	"github.com/google/go-github/v74/github"
	"golang.org/x/oauth2"
)

type (
	Client       = github.Client
	IssueComment = github.IssueComment
	Response     = github.Response
)

// New creates a GitHub API client, authenticated when GITHUB_TOKEN is set.
func New(ctx context.Context) *Client {
	return github.NewClient(getHTTPClientForGitHub(ctx, getGitHubToken()))
}

// Ptr returns a pointer to the provided value. GitHub API structs take
// pointers to distinguish unset fields.
func Ptr[T any](v T) *T {
	return github.Ptr(v)
}

func getGitHubToken() string {
	return os.Getenv("GITHUB_TOKEN")
}

func getHTTPClientForGitHub(ctx context.Context, token string) *http.Client {
	if token == "" {
		return http.DefaultClient
	}
	return oauth2.NewClient(ctx, oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	))
}
