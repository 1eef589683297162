package content

import "context"

// Facade methods: one per content category. Singleton categories (hero,
// about) resolve to the first element of the transported list; list
// categories resolve to the whole list, in API order. An empty or failed
// fetch resolves to the category's fallback literal, so callers always
// receive renderable content.

// Hero returns the hero record.
func (c *Client) Hero(ctx context.Context) Hero {
	if items := fetchList[Hero](ctx, c, "/hero/"); len(items) > 0 {
		return items[0]
	}
	return FallbackHero
}

// About returns the about/profile record, reused by both the about section
// and the contact-info panel.
func (c *Client) About(ctx context.Context) About {
	if items := fetchList[About](ctx, c, "/about/"); len(items) > 0 {
		return items[0]
	}
	return FallbackAbout
}

// Skills returns the skill list.
func (c *Client) Skills(ctx context.Context) []Skill {
	if items := fetchList[Skill](ctx, c, "/skills/"); len(items) > 0 {
		return items
	}
	return FallbackSkills()
}

// Projects returns the project list.
func (c *Client) Projects(ctx context.Context) []Project {
	if items := fetchList[Project](ctx, c, "/projects/"); len(items) > 0 {
		return items
	}
	return FallbackProjects()
}

// Education returns the education history.
func (c *Client) Education(ctx context.Context) []Education {
	if items := fetchList[Education](ctx, c, "/education/"); len(items) > 0 {
		return items
	}
	return FallbackEducation()
}

// Services returns the offered services.
func (c *Client) Services(ctx context.Context) []Service {
	if items := fetchList[Service](ctx, c, "/services/"); len(items) > 0 {
		return items
	}
	return FallbackServices()
}

// Testimonials returns the testimonial list.
func (c *Client) Testimonials(ctx context.Context) []Testimonial {
	if items := fetchList[Testimonial](ctx, c, "/testimonials/"); len(items) > 0 {
		return items
	}
	return FallbackTestimonials()
}

// BlogPosts returns all published blog posts; the blog section keeps only
// the latest few.
func (c *Client) BlogPosts(ctx context.Context) []BlogPost {
	if items := fetchList[BlogPost](ctx, c, "/blog/"); len(items) > 0 {
		return items
	}
	return FallbackBlogPosts()
}
