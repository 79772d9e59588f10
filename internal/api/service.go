package api

import "context"

// Service is the set of remote operations the client performs. *Client
// implements it; tests substitute fakes.
type Service interface {
	Register(ctx context.Context, username, email, password string) (AuthResponse, error)
	Login(ctx context.Context, email, password string) (AuthResponse, error)
	Me(ctx context.Context) (User, error)
	ChangePassword(ctx context.Context, current, next string) error
	ChangeUsername(ctx context.Context, username string) (User, error)
	DeleteAccount(ctx context.Context) error
	ToggleSubscription(ctx context.Context) (User, error)
	SearchCompanies(ctx context.Context, params SearchParams) (SearchResponse, error)
	Company(ctx context.Context, fn string) (Company, error)
	Suggestions(ctx context.Context, q string) ([]SearchSuggestion, error)
	Cities(ctx context.Context, q string) ([]City, error)
	Metrics(ctx context.Context) (Metrics, error)
	Recommendations(ctx context.Context) ([]Recommendation, error)
}

var _ Service = (*Client)(nil)

// Authorizer returns a Service bound to token.
type Authorizer func(token string) Service

// Authorize adapts c into an Authorizer.
func (c *Client) Authorize() Authorizer {
	return func(token string) Service { return c.WithToken(token) }
}
