package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/", 5*time.Second)
}

func TestLoginSendsCredentialsAndDecodesSession(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/auth/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Empty(t, r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "a@b.at", body["email"])
		assert.Equal(t, "secret", body["password"])

		_, _ = w.Write([]byte(`{"token":"tok","user":{"id":7,"uuid":"u-1","username":"anna","email":"a@b.at","user_role":"user","registered_at":"2024-01-01"}}`))
	})

	resp, err := client.Login(context.Background(), "a@b.at", "secret")
	require.NoError(t, err)
	assert.Equal(t, "tok", resp.Token)
	assert.Equal(t, "anna", resp.User.Username)
	assert.Equal(t, "user", resp.User.Role)
}

func TestWithTokenAddsBearerWithoutMutatingOriginal(t *testing.T) {
	var seen []string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"id":1,"username":"anna"}`))
	})

	authed := client.WithToken("abc")
	_, err := authed.Me(context.Background())
	require.NoError(t, err)
	_, err = client.Me(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"Bearer abc", ""}, seen)
	assert.True(t, authed.HasToken())
	assert.False(t, client.HasToken())
}

func TestSearchCompaniesEncodesQuery(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/company", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "red bull", q.Get("q"))
		assert.Equal(t, "2", q.Get("p"))
		assert.Equal(t, "12", q.Get("l"))
		assert.Equal(t, []string{"Wien", "Salzburg"}, q["city"])
		_, _ = w.Write([]byte(`{"companies":[{"firmenbuchnummer":"48061v","name":"Red Bull GmbH","riskScore":0.42}],"total":31}`))
	})

	resp, err := client.SearchCompanies(context.Background(), SearchParams{
		Query:  "red bull",
		Page:   2,
		Limit:  12,
		Cities: []string{"Wien", "Salzburg"},
	})
	require.NoError(t, err)
	assert.Equal(t, 31, resp.Total)
	require.Len(t, resp.Companies, 1)
	assert.Equal(t, "Medium", resp.Companies[0].RiskLevel())
}

func TestCompanyEscapesPathAndUnwraps(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/company/FN%20123%2Fa", r.URL.EscapedPath())
		_, _ = w.Write([]byte(`{"company":{"firmenbuchnummer":"FN 123/a","name":"Acme","reference_date":"2023-12-31","partners":[{"first_name":"Max","last_name":"Muster"}],"riskIndicators":{"cash_ratio":0.3}}}`))
	})

	company, err := client.Company(context.Background(), "FN 123/a")
	require.NoError(t, err)
	assert.Equal(t, "Acme", company.Name)
	assert.Equal(t, "2023-12-31", company.ReferenceDate.String())
	assert.Equal(t, "Max Muster", company.Partners[0].FormatName())
	assert.True(t, company.HasRiskData())
}

func TestErrorResponsesMapToKinds(t *testing.T) {
	cases := []struct {
		status int
		body   string
		kind   Kind
		msg    string
	}{
		{401, `{"detail":"expired"}`, KindTokenExpired, "Your session has expired. Please log in again."},
		{403, `{"detail":"nope"}`, KindPermissionDenied, "Access denied: nope"},
		{404, `{"detail":"Company not found"}`, KindNotFound, "Not found: Company not found"},
		{429, `slow down`, KindRateLimit, "Too many requests. Please wait a moment and try again."},
		{422, `{"detail":[{"msg":"bad"}]}`, KindAPI, `API error: [{"msg":"bad"}]`},
		{503, `maintenance`, KindHTTP, "Server error (503): maintenance"},
	}
	for _, tc := range cases {
		tc := tc
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
			_, _ = w.Write([]byte(tc.body))
		})
		_, err := client.Me(context.Background())
		require.Error(t, err)
		assert.Equal(t, tc.kind, KindOf(err), "status %d", tc.status)
		assert.Equal(t, tc.msg, UserMessage(err), "status %d", tc.status)
	}
}

func TestMalformedSuccessBodyIsAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"suggestions":`))
	})
	_, err := client.Suggestions(context.Background(), "red")
	require.Error(t, err)
	assert.Equal(t, KindAPI, KindOf(err))
	assert.Contains(t, UserMessage(err), "API error: Failed to parse response")
}

func TestNetworkFailureIsRecoverable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewClient(url, time.Second).Cities(context.Background(), "")
	require.Error(t, err)
	assert.Equal(t, KindNetwork, KindOf(err))
	assert.True(t, IsRecoverable(err))
	assert.Equal(t, "Network error. Please check your connection.", UserMessage(err))
}

func TestCitiesOmitsEmptyQuery(t *testing.T) {
	var raw []string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		raw = append(raw, r.URL.RawQuery)
		_, _ = w.Write([]byte(`{"cities":[{"city":"Wien","count":12}]}`))
	})
	cities, err := client.Cities(context.Background(), "")
	require.NoError(t, err)
	_, err = client.Cities(context.Background(), "gr")
	require.NoError(t, err)
	assert.Equal(t, []string{"", "q=gr"}, raw)
	assert.Equal(t, []City{{City: "Wien", Count: 12}}, cities)
}

func TestToggleSubscriptionRefreshesUser(t *testing.T) {
	var paths []string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.Method+" "+r.URL.Path)
		if r.URL.Path == "/api/v1/auth/me" {
			_, _ = w.Write([]byte(`{"username":"anna"}`))
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
	user, err := client.WithToken("t").ToggleSubscription(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "anna", user.Username)
	assert.Equal(t, []string{"POST /api/v1/auth/subscription/toggle", "GET /api/v1/auth/me"}, paths)
}
