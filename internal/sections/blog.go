package sections

import (
	"context"

	"github.com/arka-001/portfolio-edge/internal/content"
)

// latestPostCount is how many posts the homepage blog section shows.
const latestPostCount = 3

// LoadBlog returns the latest posts for the homepage, preserving API order.
func LoadBlog(ctx context.Context, c *content.Client) []content.BlogPost {
	posts := c.BlogPosts(ctx)
	if len(posts) > latestPostCount {
		posts = posts[:latestPostCount]
	}
	return posts
}
