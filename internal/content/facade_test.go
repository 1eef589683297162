package content

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// downServer answers every request with a 500, forcing the fallback path.
func downServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestFacade_FallbacksWhenUpstreamDown(t *testing.T) {
	client := NewClient(downServer(t).URL)
	ctx := context.Background()

	hero := client.Hero(ctx)
	assert.Equal(t, "Arka Maitra", hero.Name)
	assert.Equal(t, "Full-Stack Software Engineer", hero.Tagline)
	assert.Equal(t, "#", hero.ResumeURL)

	about := client.About(ctx)
	assert.Equal(t, "Full Stack Developer & UI/UX Designer", about.Title)
	assert.NotEmpty(t, about.Email)
	assert.NotEmpty(t, about.Phone)

	skills := client.Skills(ctx)
	require.Len(t, skills, 2)
	assert.Equal(t, "Django & DRF", skills[0].Name)
	assert.Equal(t, 95, skills[0].Proficiency)

	assert.NotEmpty(t, client.Projects(ctx))
	assert.NotEmpty(t, client.Education(ctx))
	assert.NotEmpty(t, client.Services(ctx))
	assert.NotEmpty(t, client.Testimonials(ctx))
	assert.NotEmpty(t, client.BlogPosts(ctx))
}

func TestFacade_SingletonTakesFirstElement(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"name": "First", "tagline": "one"},
			{"name": "Second", "tagline": "two"}
		]`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	hero := client.Hero(context.Background())

	assert.Equal(t, "First", hero.Name)
}

func TestFacade_ListPassThroughPreservesOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results": [
			{"id": 3, "name": "C", "proficiency": 70},
			{"id": 1, "name": "A", "proficiency": 90},
			{"id": 2, "name": "B", "proficiency": 80}
		]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	skills := client.Skills(context.Background())

	require.Len(t, skills, 3)
	assert.Equal(t, []int{3, 1, 2}, []int{skills[0].ID, skills[1].ID, skills[2].ID})
}

func TestFacade_ProjectTechnologiesDecoded(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results": [{
			"id": 1,
			"title": "Edge",
			"short_description": "d",
			"project_type_display": "Web Application",
			"technologies": [{"name": "Go"}, {"name": "Gin"}],
			"image_url": "x",
			"github_url": "y",
			"live_url": "z"
		}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	projects := client.Projects(context.Background())

	require.Len(t, projects, 1)
	require.Len(t, projects[0].Technologies, 2)
	assert.Equal(t, "Go", projects[0].Technologies[0].Name)
}
