package sections

import (
	"context"
	"sync"

	"github.com/arka-001/portfolio-edge/internal/content"
)

// AboutView carries the profile record plus the skill list. It backs both
// the about section and the contact-info panel, which reuses the same
// profile data (email, phone, location, social links) independently.
type AboutView struct {
	About  content.About   `json:"about"`
	Skills []content.Skill `json:"skills"`
}

// LoadAbout fetches the profile and skills concurrently.
func LoadAbout(ctx context.Context, c *content.Client) AboutView {
	var (
		view AboutView
		wg   sync.WaitGroup
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		view.About = c.About(ctx)
	}()
	go func() {
		defer wg.Done()
		view.Skills = c.Skills(ctx)
	}()
	wg.Wait()

	return view
}

// SocialLink is a named profile link; panels skip entries with empty URLs.
type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// SocialLinks lists the non-empty social profiles in display order.
func (v AboutView) SocialLinks() []SocialLink {
	all := []SocialLink{
		{Platform: "LinkedIn", URL: v.About.LinkedIn},
		{Platform: "GitHub", URL: v.About.GitHub},
		{Platform: "Twitter", URL: v.About.Twitter},
	}

	links := make([]SocialLink, 0, len(all))
	for _, l := range all {
		if l.URL != "" {
			links = append(links, l)
		}
	}
	return links
}
