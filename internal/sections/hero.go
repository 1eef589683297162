package sections

import (
	"context"
	"net/url"
	"regexp"
	"sync"

	"github.com/arka-001/portfolio-edge/internal/content"
)

// HeroView is the merged hero + about data the landing section renders.
type HeroView struct {
	Name            string `json:"name"`
	Tagline         string `json:"tagline"`
	Description     string `json:"description"`
	ResumeURL       string `json:"resume_url"`
	ContactEmail    string `json:"contact_email"`
	ProfileImageURL string `json:"profile_image_url"`
	WhatsAppPhone   string `json:"whatsapp_phone_number"`
}

// LoadHero fetches the hero and about records concurrently and merges them.
// Field precedence when both records carry a value: the about record wins
// for the resume link, the hero record wins for the contact email. Both
// facade calls resolve to fallbacks on their own, so the merge always has
// fully-populated inputs.
func LoadHero(ctx context.Context, c *content.Client) HeroView {
	var (
		hero  content.Hero
		about content.About
		wg    sync.WaitGroup
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		hero = c.Hero(ctx)
	}()
	go func() {
		defer wg.Done()
		about = c.About(ctx)
	}()
	wg.Wait()

	resumeURL := about.Resume
	if resumeURL == "" {
		resumeURL = hero.ResumeURL
	}
	if resumeURL == "" {
		resumeURL = "#"
	}

	contactEmail := hero.ContactEmail
	if contactEmail == "" {
		contactEmail = about.Email
	}

	return HeroView{
		Name:            hero.Name,
		Tagline:         hero.Tagline,
		Description:     hero.Description,
		ResumeURL:       resumeURL,
		ContactEmail:    contactEmail,
		ProfileImageURL: about.ProfileImageURL,
		WhatsAppPhone:   about.Phone,
	}
}

var phoneNoise = regexp.MustCompile(`[\s+()-]`)

const whatsAppGreeting = "Hello Arka, I saw your portfolio and would like to connect!"

// WhatsAppLink builds the wa.me deep link for the stored phone number, or
// returns "" when no number is available.
func (v HeroView) WhatsAppLink() string {
	if v.WhatsAppPhone == "" {
		return ""
	}
	digits := phoneNoise.ReplaceAllString(v.WhatsAppPhone, "")
	return "https://wa.me/" + digits + "?text=" + url.QueryEscape(whatsAppGreeting)
}
