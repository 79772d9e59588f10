// Package backendtest provides an in-memory api.Service for tests.
package backendtest

import (
	"context"
	"sync"

	"github.com/atomicstack/bizray-tui/internal/api"
)

// Service is a scriptable api.Service. Unset responses return zero values.
// When Gate is non-nil every call blocks until a value is received from it
// or the context ends.
type Service struct {
	mu    sync.Mutex
	calls map[string]int

	Gate chan struct{}

	Token string

	AuthResponse   api.AuthResponse
	User           api.User
	Search         func(api.SearchParams) (api.SearchResponse, error)
	CompanyByFN    map[string]api.Company
	SuggestionsFor map[string][]api.SearchSuggestion
	CityList       []api.City
	MetricsValue   api.Metrics
	Popular        []api.Recommendation
	Err            error
}

// New returns an empty fake.
func New() *Service {
	return &Service{calls: make(map[string]int)}
}

// Authorize returns the fake itself for any token and records the token.
func (s *Service) Authorize(token string) api.Service {
	s.mu.Lock()
	s.Token = token
	s.mu.Unlock()
	return s
}

// Calls returns how often the named method ran.
func (s *Service) Calls(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[name]
}

func (s *Service) enter(ctx context.Context, name string) error {
	s.mu.Lock()
	if s.calls == nil {
		s.calls = make(map[string]int)
	}
	s.calls[name]++
	gate := s.Gate
	s.mu.Unlock()
	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return s.Err
}

func (s *Service) Register(ctx context.Context, username, email, password string) (api.AuthResponse, error) {
	if err := s.enter(ctx, "Register"); err != nil {
		return api.AuthResponse{}, err
	}
	return s.AuthResponse, nil
}

func (s *Service) Login(ctx context.Context, email, password string) (api.AuthResponse, error) {
	if err := s.enter(ctx, "Login"); err != nil {
		return api.AuthResponse{}, err
	}
	return s.AuthResponse, nil
}

func (s *Service) Me(ctx context.Context) (api.User, error) {
	if err := s.enter(ctx, "Me"); err != nil {
		return api.User{}, err
	}
	return s.User, nil
}

func (s *Service) ChangePassword(ctx context.Context, current, next string) error {
	return s.enter(ctx, "ChangePassword")
}

func (s *Service) ChangeUsername(ctx context.Context, username string) (api.User, error) {
	if err := s.enter(ctx, "ChangeUsername"); err != nil {
		return api.User{}, err
	}
	user := s.User
	user.Username = username
	return user, nil
}

func (s *Service) DeleteAccount(ctx context.Context) error {
	return s.enter(ctx, "DeleteAccount")
}

func (s *Service) ToggleSubscription(ctx context.Context) (api.User, error) {
	if err := s.enter(ctx, "ToggleSubscription"); err != nil {
		return api.User{}, err
	}
	return s.User, nil
}

func (s *Service) SearchCompanies(ctx context.Context, params api.SearchParams) (api.SearchResponse, error) {
	if err := s.enter(ctx, "SearchCompanies"); err != nil {
		return api.SearchResponse{}, err
	}
	if s.Search == nil {
		return api.SearchResponse{}, nil
	}
	return s.Search(params)
}

func (s *Service) Company(ctx context.Context, fn string) (api.Company, error) {
	if err := s.enter(ctx, "Company"); err != nil {
		return api.Company{}, err
	}
	if c, ok := s.CompanyByFN[fn]; ok {
		return c, nil
	}
	return api.Company{}, api.FromHTTPResponse(404, "Company not found")
}

func (s *Service) Suggestions(ctx context.Context, q string) ([]api.SearchSuggestion, error) {
	if err := s.enter(ctx, "Suggestions"); err != nil {
		return nil, err
	}
	return s.SuggestionsFor[q], nil
}

func (s *Service) Cities(ctx context.Context, q string) ([]api.City, error) {
	if err := s.enter(ctx, "Cities"); err != nil {
		return nil, err
	}
	return s.CityList, nil
}

func (s *Service) Metrics(ctx context.Context) (api.Metrics, error) {
	if err := s.enter(ctx, "Metrics"); err != nil {
		return api.Metrics{}, err
	}
	return s.MetricsValue, nil
}

func (s *Service) Recommendations(ctx context.Context) ([]api.Recommendation, error) {
	if err := s.enter(ctx, "Recommendations"); err != nil {
		return nil, err
	}
	return s.Popular, nil
}
