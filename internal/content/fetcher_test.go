package content

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFetchList_PaginatedEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/skills/" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"count": 2, "next": null, "previous": null, "results": [
			{"id": 1, "name": "Go", "proficiency": 80},
			{"id": 2, "name": "Python", "proficiency": 90}
		]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	items := fetchList[Skill](context.Background(), client, "/skills/")

	assert.Len(t, items, 2)
	assert.Equal(t, "Go", items[0].Name)
	assert.Equal(t, "Python", items[1].Name)
}

func TestFetchList_BareArray(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"name": "Arka", "tagline": "Engineer"}]`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	items := fetchList[Hero](context.Background(), client, "/hero/")

	assert.Len(t, items, 1)
	assert.Equal(t, "Arka", items[0].Name)
}

func TestFetchList_UnexpectedShape(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"detail": "not a list"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	items := fetchList[Skill](context.Background(), client, "/skills/")

	assert.Empty(t, items)
}

func TestFetchList_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	items := fetchList[Skill](context.Background(), client, "/skills/")

	assert.Empty(t, items)
}

func TestFetchList_BadJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{{{`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	items := fetchList[Skill](context.Background(), client, "/skills/")

	assert.Empty(t, items)
}

func TestFetchList_NetworkError(t *testing.T) {
	// Nothing listens here; the fetch must absorb the failure.
	client := NewClient("http://127.0.0.1:1")
	items := fetchList[Skill](context.Background(), client, "/skills/")

	assert.Empty(t, items)
}
