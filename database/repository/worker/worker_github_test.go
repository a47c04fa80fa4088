package workerRepo

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"tidify/config"
	"tidify/database"
	"tidify/models"
)

type fakeServer struct {
	mu       sync.Mutex
	files    map[string][]byte
	messages []string
}

func (f *fakeServer) handler(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/repos/acme/maiddata/contents/")
	f.mu.Lock()
	defer f.mu.Unlock()

	switch r.Method {
	case http.MethodGet:
		content, ok := f.files[path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"content": base64.StdEncoding.EncodeToString(content),
			"sha":     "sha-1",
		})
	case http.MethodPut:
		var body struct {
			Message string `json:"message"`
			Content string `json:"content"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		decoded, err := base64.StdEncoding.DecodeString(body.Content)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		f.files[path] = decoded
		f.messages = append(f.messages, body.Message)
		json.NewEncoder(w).Encode(map[string]any{
			"content": map[string]any{"sha": "sha-2"},
		})
	}
}

func (f *fakeServer) commitMessages() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.messages...)
}

func newTestRepo(t *testing.T, workersDoc string) (WorkerRepository, *fakeServer) {
	t.Helper()
	fake := &fakeServer{files: map[string][]byte{}}
	if workersDoc != "" {
		fake.files[config.DataWorkersPath] = []byte(workersDoc)
	}
	server := httptest.NewServer(http.HandlerFunc(fake.handler))
	t.Cleanup(server.Close)
	store := database.NewStore(database.NewClient(server.Client(), server.URL, "acme", "maiddata", "main", "test-token"))
	return NewGitHubWorkerRepo(store), fake
}

const workersDoc = `{"rows": [
  {"username": "ravi", "name": "Ravi K", "city": "Mumbai", "skills": ["Deep Cleaning", "Laundry"], "rate_per_hour": 350, "daily_start": "09:00", "daily_end": "18:00"},
  {"username": "meena", "name": "Meena S", "city": "Navi Mumbai", "skills": ["Cooking"], "rate_per_hour": 400, "daily_start": "08:00", "daily_end": "14:00"},
  {"username": "john", "name": "John D", "city": "Delhi", "skills": ["cleaning"], "rate_per_hour": 300, "daily_start": "09:00", "daily_end": "18:00"}
]}`

func TestListFilters(t *testing.T) {
	tests := []struct {
		name    string
		filters models.WorkerFilters
		want    []string
	}{
		{name: "no filters returns everyone", want: []string{"ravi", "meena", "john"}},
		{name: "city is a substring match", filters: models.WorkerFilters{City: "mumbai"}, want: []string{"ravi", "meena"}},
		{name: "city match is case-insensitive", filters: models.WorkerFilters{City: "DELHI"}, want: []string{"john"}},
		{name: "skill matches any list entry", filters: models.WorkerFilters{Skill: "clean"}, want: []string{"ravi", "john"}},
		{name: "filters combine", filters: models.WorkerFilters{City: "mumbai", Skill: "cook"}, want: []string{"meena"}},
		{name: "whitespace-only filters match everyone", filters: models.WorkerFilters{City: "  ", Skill: " "}, want: []string{"ravi", "meena", "john"}},
		{name: "no match", filters: models.WorkerFilters{Skill: "plumbing"}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, _ := newTestRepo(t, workersDoc)
			workers, err := repo.List(context.Background(), tt.filters)
			if err != nil {
				t.Fatalf("failed to list workers: %v", err)
			}
			got := make([]string, 0, len(workers))
			for _, w := range workers {
				got = append(got, w.Username)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("expected %v, got %v", tt.want, got)
				}
			}
		})
	}
}

func TestGetByUsernameIsCaseInsensitive(t *testing.T) {
	repo, _ := newTestRepo(t, workersDoc)

	w, err := repo.GetByUsername(context.Background(), "RAVI")
	if err != nil {
		t.Fatalf("failed to get worker: %v", err)
	}
	if w == nil || w.Username != "ravi" {
		t.Fatalf("expected ravi, got %+v", w)
	}

	missing, err := repo.GetByUsername(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("unexpected error for missing worker: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for missing worker, got %+v", missing)
	}
}

func TestUpsertAddsThenUpdates(t *testing.T) {
	repo, fake := newTestRepo(t, `{"rows": []}`)
	ctx := context.Background()

	first := &models.Worker{Username: "ravi", Name: "Ravi K", City: "Mumbai", Skills: []string{"Cleaning"}, RatePerHour: 350, DailyStart: "09:00", DailyEnd: "18:00"}
	if err := repo.Upsert(ctx, first); err != nil {
		t.Fatalf("failed to add worker: %v", err)
	}

	second := *first
	second.City = "Pune"
	if err := repo.Upsert(ctx, &second); err != nil {
		t.Fatalf("failed to update worker: %v", err)
	}

	messages := fake.commitMessages()
	if len(messages) != 2 || messages[0] != "Add worker ravi" || messages[1] != "Update worker ravi" {
		t.Fatalf("unexpected commit messages %v", messages)
	}

	workers, err := repo.List(ctx, models.WorkerFilters{})
	if err != nil {
		t.Fatalf("failed to list workers: %v", err)
	}
	if len(workers) != 1 {
		t.Fatalf("expected a single profile after upsert, got %d", len(workers))
	}
	if workers[0].City != "Pune" {
		t.Fatalf("expected updated city, got %q", workers[0].City)
	}
}

func TestCount(t *testing.T) {
	repo, _ := newTestRepo(t, workersDoc)
	n, err := repo.Count(context.Background())
	if err != nil {
		t.Fatalf("failed to count workers: %v", err)
	}
	if n != 3 {
		t.Fatalf("expected 3 workers, got %d", n)
	}
}
