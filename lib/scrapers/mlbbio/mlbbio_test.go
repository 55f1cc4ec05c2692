package mlbbio

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDetailUrlName(t *testing.T) {
	require.Equal(t, "Kagura", DetailUrlName("Kagura"))
	require.Equal(t, "Popol%20and%20Kupa", DetailUrlName("Popol and Kupa"))
	require.Equal(t, "Change", DetailUrlName("Chang'e"))
}

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(ClientOptions{
		BaseUrl:      server.URL,
		RequestDelay: time.Millisecond,
	})
}

func TestFetchHeroDetail(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, DetailPath+"Kagura", r.URL.Path)
		w.Header().Set("content-type", "application/json")
		w.Write([]byte(`{"success": true, "data": {"hero_name": "Kagura"}}`))
	})

	detail, err := client.FetchHeroDetail(context.Background(), "Kagura")
	require.NoError(t, err)
	require.Equal(t, "Kagura", detail.HeroName)
}

func TestFetchHeroDetailHttpError(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := client.FetchHeroDetail(context.Background(), "Kagura")
	require.ErrorContains(t, err, "http 503")
}

func TestFetchHeroDetailApiError(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("content-type", "application/json")
		w.Write([]byte(`{"success": false, "message": "hero not found"}`))
	})

	_, err := client.FetchHeroDetail(context.Background(), "Kagura")
	require.ErrorContains(t, err, "hero not found")
}
