// File: tidify/database/github_test.go
package database

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.Client(), server.URL, "acme", "maiddata", "main", "test-token")
}

func TestGetFile(t *testing.T) {
	tests := []struct {
		name        string
		handler     func(t *testing.T, w http.ResponseWriter, r *http.Request)
		wantContent string
		wantSHA     string
		wantErr     error
		errContains string
	}{
		{
			name: "decodes wrapped base64 and returns sha",
			handler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodGet {
					t.Errorf("unexpected method %s", r.Method)
				}
				if r.URL.Path != "/repos/acme/maiddata/contents/users.json" {
					t.Errorf("unexpected path %s", r.URL.Path)
				}
				if got := r.URL.Query().Get("ref"); got != "main" {
					t.Errorf("unexpected ref %q", got)
				}
				if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
					t.Errorf("unexpected authorization header %q", got)
				}
				if got := r.Header.Get("Accept"); got != "application/vnd.github+json" {
					t.Errorf("unexpected accept header %q", got)
				}
				// GitHub chunks base64 content with newlines.
				encoded := base64.StdEncoding.EncodeToString([]byte(`{"rows": []}`))
				wrapped := encoded[:8] + "\n" + encoded[8:] + "\n"
				json.NewEncoder(w).Encode(map[string]any{
					"content": wrapped,
					"sha":     "abc123",
				})
			},
			wantContent: `{"rows": []}`,
			wantSHA:     "abc123",
		},
		{
			name: "missing file returns ErrNotFound",
			handler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
			wantErr: ErrNotFound,
		},
		{
			name: "server error surfaces status",
			handler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte("boom"))
			},
			errContains: "unexpected status 500",
		},
		{
			name: "invalid base64 payload",
			handler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(map[string]any{
					"content": "!!! not base64 !!!",
					"sha":     "abc123",
				})
			},
			errContains: "failed to decode file content",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				tt.handler(t, w, r)
			})

			got, err := client.GetFile(context.Background(), "users.json")
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if tt.errContains != "" {
				if err == nil || !strings.Contains(err.Error(), tt.errContains) {
					t.Fatalf("expected error containing %q, got %v", tt.errContains, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("failed to get file: %v", err)
			}
			if string(got.Content) != tt.wantContent {
				t.Fatalf("unexpected content %q", got.Content)
			}
			if got.SHA != tt.wantSHA {
				t.Fatalf("unexpected sha %q", got.SHA)
			}
		})
	}
}

func TestPutFile(t *testing.T) {
	type putBody struct {
		Message string `json:"message"`
		Content string `json:"content"`
		Branch  string `json:"branch"`
		SHA     string `json:"sha"`
	}

	t.Run("update sends sha and returns new blob sha", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPut {
				t.Errorf("unexpected method %s", r.Method)
			}
			var body putBody
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				t.Fatalf("failed to decode request body: %v", err)
			}
			if body.Message != "Add user asha" {
				t.Errorf("unexpected commit message %q", body.Message)
			}
			if body.Branch != "main" {
				t.Errorf("unexpected branch %q", body.Branch)
			}
			if body.SHA != "oldsha" {
				t.Errorf("unexpected sha %q", body.SHA)
			}
			decoded, err := base64.StdEncoding.DecodeString(body.Content)
			if err != nil {
				t.Fatalf("content is not valid base64: %v", err)
			}
			if string(decoded) != `{"rows": [1]}` {
				t.Errorf("unexpected decoded content %q", decoded)
			}
			json.NewEncoder(w).Encode(map[string]any{
				"content": map[string]any{"sha": "newsha"},
			})
		})

		sha, err := client.PutFile(context.Background(), "users.json", "Add user asha", []byte(`{"rows": [1]}`), "oldsha")
		if err != nil {
			t.Fatalf("failed to put file: %v", err)
		}
		if sha != "newsha" {
			t.Fatalf("unexpected returned sha %q", sha)
		}
	})

	t.Run("create omits sha field", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			var raw map[string]any
			if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
				t.Fatalf("failed to decode request body: %v", err)
			}
			if _, present := raw["sha"]; present {
				t.Error("expected sha field to be omitted for a create")
			}
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(map[string]any{
				"content": map[string]any{"sha": "firstsha"},
			})
		})

		sha, err := client.PutFile(context.Background(), "users.json", "Initialize users.json", []byte(`{"rows": []}`), "")
		if err != nil {
			t.Fatalf("failed to put file: %v", err)
		}
		if sha != "firstsha" {
			t.Fatalf("unexpected returned sha %q", sha)
		}
	})

	for _, status := range []int{http.StatusConflict, http.StatusUnprocessableEntity} {
		t.Run(fmt.Sprintf("status %d maps to ErrConflict", status), func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(status)
				w.Write([]byte(`{"message": "does not match"}`))
			})

			_, err := client.PutFile(context.Background(), "users.json", "Add user asha", []byte(`{}`), "stale")
			if !errors.Is(err, ErrConflict) {
				t.Fatalf("expected ErrConflict for status %d, got %v", status, err)
			}
		})
	}
}

func TestPing(t *testing.T) {
	t.Run("reachable repository", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/repos/acme/maiddata" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			w.Write([]byte(`{"full_name": "acme/maiddata"}`))
		})
		if err := client.Ping(context.Background()); err != nil {
			t.Fatalf("expected ping to succeed: %v", err)
		}
	})

	t.Run("bad credentials", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})
		if err := client.Ping(context.Background()); err == nil {
			t.Fatal("expected ping to fail")
		}
	})
}
