package sections

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arka-001/portfolio-edge/internal/content"
)

// contentServer serves canned bodies per path; unlisted paths get a 404.
func contentServer(t *testing.T, bodies map[string]string) *content.Client {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := bodies[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return content.NewClient(server.URL)
}

func TestLoadHero_MergePrecedence(t *testing.T) {
	client := contentServer(t, map[string]string{
		"/hero/": `[{
			"name": "Arka",
			"tagline": "Engineer",
			"description": "desc",
			"resume_url": "https://hero.example/resume.pdf",
			"contact_email": "hero@example.com"
		}]`,
		"/about/": `[{
			"name": "Arka",
			"resume": "https://about.example/resume.pdf",
			"email": "about@example.com",
			"phone": "+91 12345 67890",
			"profile_image_url": "https://img.example/p.png"
		}]`,
	})

	view := LoadHero(context.Background(), client)

	// About wins the resume link, hero wins the contact email.
	assert.Equal(t, "https://about.example/resume.pdf", view.ResumeURL)
	assert.Equal(t, "hero@example.com", view.ContactEmail)
	assert.Equal(t, "https://img.example/p.png", view.ProfileImageURL)
	assert.Equal(t, "+91 12345 67890", view.WhatsAppPhone)
}

func TestLoadHero_FallsBackThroughChain(t *testing.T) {
	client := contentServer(t, map[string]string{
		"/hero/": `[{
			"name": "Arka",
			"tagline": "Engineer",
			"description": "desc",
			"resume_url": "https://hero.example/resume.pdf"
		}]`,
		"/about/": `[{
			"name": "Arka",
			"email": "about@example.com"
		}]`,
	})

	view := LoadHero(context.Background(), client)

	// No about resume: hero's link is next in line. No hero email: about's.
	assert.Equal(t, "https://hero.example/resume.pdf", view.ResumeURL)
	assert.Equal(t, "about@example.com", view.ContactEmail)
}

func TestLoadHero_UpstreamDownUsesFallbacks(t *testing.T) {
	client := content.NewClient("http://127.0.0.1:1")

	view := LoadHero(context.Background(), client)

	assert.Equal(t, "Arka Maitra", view.Name)
	assert.Equal(t, "#", view.ResumeURL)
	assert.Equal(t, "your.email@example.com", view.ContactEmail)
	assert.NotEmpty(t, view.WhatsAppPhone)
}

func TestHeroView_WhatsAppLink(t *testing.T) {
	view := HeroView{WhatsAppPhone: "+1 (234) 567-890"}

	link := view.WhatsAppLink()

	assert.Contains(t, link, "https://wa.me/1234567890?text=")
	assert.NotContains(t, link, " ")
	assert.NotContains(t, link, "+1")
}

func TestHeroView_WhatsAppLink_NoPhone(t *testing.T) {
	assert.Empty(t, HeroView{}.WhatsAppLink())
}
