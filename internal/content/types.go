package content

// Entities mirror the Django content API's JSON field names. Every category
// endpoint transports a list, even the logically-singleton ones (hero, about).

type Hero struct {
	Name         string `json:"name"`
	Tagline      string `json:"tagline"`
	Description  string `json:"description"`
	ResumeURL    string `json:"resume_url"`
	ContactEmail string `json:"contact_email"`
}

type About struct {
	Name            string `json:"name"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	ProfileImageURL string `json:"profile_image_url"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Location        string `json:"location"`
	GitHub          string `json:"github"`
	LinkedIn        string `json:"linkedin"`
	Twitter         string `json:"twitter"`
	Website         string `json:"website"`
	Resume          string `json:"resume"`
}

type Skill struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Proficiency int    `json:"proficiency"`
	Color       string `json:"color,omitempty"`
	Category    string `json:"category,omitempty"`
}

type Technology struct {
	Name string `json:"name"`
}

type Project struct {
	ID                 int          `json:"id"`
	Title              string       `json:"title"`
	ShortDescription   string       `json:"short_description"`
	ProjectTypeDisplay string       `json:"project_type_display"`
	Technologies       []Technology `json:"technologies"`
	ImageURL           string       `json:"image_url"`
	GitHubURL          string       `json:"github_url"`
	LiveURL            string       `json:"live_url"`
}

type Education struct {
	ID              int    `json:"id"`
	Institution     string `json:"institution"`
	Degree          string `json:"degree"`
	FieldOfStudy    string `json:"field_of_study"`
	StartDate       string `json:"start_date"`
	EndDate         string `json:"end_date"`
	Description     string `json:"description"`
	InstitutionLogo string `json:"institution_logo,omitempty"`
}

type Service struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type Testimonial struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Company  string `json:"company"`
	Content  string `json:"content"`
	Image    string `json:"image,omitempty"`
	Rating   int    `json:"rating,omitempty"`
}

type BlogPost struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Excerpt     string `json:"excerpt"`
	Slug        string `json:"slug"`
	PublishDate string `json:"publish_date"`
}
