package tiktok

import (
	"Clipsight/internal/api/config"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func testClient(serverURL string) *Client {
	c := NewClient(config.TikTokConfig{
		ClientKey:    "key",
		ClientSecret: "secret",
		RedirectURI:  "http://localhost/cb",
		Scopes:       "user.info.basic,video.list",
	})
	c.tokenURL = serverURL + "/oauth/token/"
	c.userURL = serverURL + "/user/info/"
	c.videoURL = serverURL + "/video/list/"
	return c
}

func TestBuildAuthURL(t *testing.T) {
	c := testClient("http://example.test")
	got := c.BuildAuthURL("abc123")

	if !strings.HasPrefix(got, "https://www.tiktok.com/v2/auth/authorize/?") {
		t.Fatalf("unexpected auth url prefix: %s", got)
	}
	for _, want := range []string{"client_key=key", "state=abc123", "response_type=code"} {
		if !strings.Contains(got, want) {
			t.Errorf("auth url missing %q: %s", want, got)
		}
	}
}

func TestExchangeCode(t *testing.T) {
	t.Run("data envelope response", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := r.ParseForm(); err != nil {
				t.Fatal(err)
			}
			if got := r.Form.Get("grant_type"); got != "authorization_code" {
				t.Errorf("grant_type = %q", got)
			}
			if got := r.Form.Get("code"); got != "the-code" {
				t.Errorf("code = %q", got)
			}
			w.Write([]byte(`{"data":{"access_token":"at","refresh_token":"rt","expires_in":86400,"scope":"video.list","open_id":"oid"}}`))
		}))
		defer srv.Close()

		token, err := testClient(srv.URL).ExchangeCode(context.Background(), "the-code")
		if err != nil {
			t.Fatalf("ExchangeCode: %v", err)
		}
		if token.AccessToken != "at" || token.RefreshToken != "rt" || token.ExpiresIn != 86400 || token.OpenID != "oid" {
			t.Errorf("unexpected token: %+v", token)
		}
	})

	t.Run("flat response", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"access_token":"at2","refresh_token":"rt2","expires_in":3600}`))
		}))
		defer srv.Close()

		token, err := testClient(srv.URL).ExchangeCode(context.Background(), "c")
		if err != nil {
			t.Fatalf("ExchangeCode: %v", err)
		}
		if token.AccessToken != "at2" || token.RefreshToken != "rt2" {
			t.Errorf("unexpected token: %+v", token)
		}
	})

	t.Run("missing refresh token fails", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"access_token":"at","expires_in":3600}`))
		}))
		defer srv.Close()

		_, err := testClient(srv.URL).ExchangeCode(context.Background(), "c")
		var authErr *AuthError
		if !errors.As(err, &authErr) {
			t.Fatalf("expected AuthError, got %v", err)
		}
	})

	t.Run("upstream error description surfaces", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":"invalid_grant","error_description":"Authorization code expired."}`))
		}))
		defer srv.Close()

		_, err := testClient(srv.URL).ExchangeCode(context.Background(), "c")
		var authErr *AuthError
		if !errors.As(err, &authErr) {
			t.Fatalf("expected AuthError, got %v", err)
		}
		if authErr.Message != "Authorization code expired." {
			t.Errorf("message = %q", authErr.Message)
		}
	})
}

func TestRefresh(t *testing.T) {
	t.Run("partial response is accepted", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := r.ParseForm(); err != nil {
				t.Fatal(err)
			}
			if got := r.Form.Get("grant_type"); got != "refresh_token" {
				t.Errorf("grant_type = %q", got)
			}
			w.Write([]byte(`{"data":{"access_token":"new-at","expires_in":7200}}`))
		}))
		defer srv.Close()

		token, err := testClient(srv.URL).Refresh(context.Background(), "old-rt")
		if err != nil {
			t.Fatalf("Refresh: %v", err)
		}
		if token.AccessToken != "new-at" || token.RefreshToken != "" {
			t.Errorf("unexpected token: %+v", token)
		}
	})

	t.Run("missing access token fails", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"data":{"expires_in":7200}}`))
		}))
		defer srv.Close()

		_, err := testClient(srv.URL).Refresh(context.Background(), "old-rt")
		var authErr *AuthError
		if !errors.As(err, &authErr) {
			t.Fatalf("expected AuthError, got %v", err)
		}
	})
}

func TestFetchUserInfo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer token-1" {
			t.Errorf("Authorization = %q", got)
		}
		w.Write([]byte(`{"data":{"user":{"open_id":"oid","display_name":"Creator"}}}`))
	}))
	defer srv.Close()

	user, err := testClient(srv.URL).FetchUserInfo(context.Background(), "token-1")
	if err != nil {
		t.Fatalf("FetchUserInfo: %v", err)
	}
	if user.OpenID != "oid" || user.DisplayName != "Creator" {
		t.Errorf("unexpected user: %+v", user)
	}
}

func TestFetchVideoList(t *testing.T) {
	t.Run("data envelope", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"data":{"videos":[{"id":"v1","view_count":12},{"id":"v2"}]}}`))
		}))
		defer srv.Close()

		videos, err := testClient(srv.URL).FetchVideoList(context.Background(), "t")
		if err != nil {
			t.Fatalf("FetchVideoList: %v", err)
		}
		if len(videos) != 2 || videos[0].ID != "v1" {
			t.Errorf("unexpected videos: %+v", videos)
		}
		if videos[0].ViewCount == nil || *videos[0].ViewCount != 12 {
			t.Errorf("view_count not parsed: %+v", videos[0])
		}
	})

	t.Run("upstream failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":{"message":"access token invalid"}}`))
		}))
		defer srv.Close()

		_, err := testClient(srv.URL).FetchVideoList(context.Background(), "t")
		var dataErr *DataError
		if !errors.As(err, &dataErr) {
			t.Fatalf("expected DataError, got %v", err)
		}
		if dataErr.Message != "access token invalid" {
			t.Errorf("message = %q", dataErr.Message)
		}
	})
}
