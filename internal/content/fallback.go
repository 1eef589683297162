package content

// Canned content served when the live fetch yields nothing, so every section
// still renders with zero backend connectivity. List fallbacks are returned
// from functions to keep callers from mutating shared slices.

var FallbackHero = Hero{
	Name:         "Arka Maitra",
	Tagline:      "Full-Stack Software Engineer",
	Description:  "Crafting digital experiences with modern web technologies.",
	ResumeURL:    "#",
	ContactEmail: "your.email@example.com",
}

var FallbackAbout = About{
	Name:            "Arka Maitra",
	Title:           "Full Stack Developer & UI/UX Designer",
	Description:     "I'm a passionate Full Stack Developer with expertise in modern web technologies.",
	ProfileImageURL: "https://via.placeholder.com/400",
	Email:           "your.email@example.com",
	Phone:           "+1 234 567 890",
	Location:        "City, Country",
	GitHub:          "https://github.com/arka-001",
	LinkedIn:        "#",
	Twitter:         "#",
	Website:         "#",
	Resume:          "#",
}

func FallbackSkills() []Skill {
	return []Skill{
		{Name: "Django & DRF", Proficiency: 95, Color: "#092E20"},
		{Name: "React & Next.js", Proficiency: 90, Color: "#61DAFB"},
	}
}

func FallbackProjects() []Project {
	return []Project{
		{
			ID:                 1,
			Title:              "E-Commerce Platform (Fallback)",
			ShortDescription:   "Modern e-commerce platform with Django backend and React frontend.",
			ProjectTypeDisplay: "Web Application",
			Technologies:       []Technology{{Name: "DRF"}, {Name: "JavaScript"}},
			ImageURL:           "https://images.unsplash.com/photo-1556742049-0cfed4f6a45d?w=500&h=300&fit=crop",
			GitHubURL:          "#",
			LiveURL:            "#",
		},
	}
}

func FallbackEducation() []Education {
	return []Education{
		{
			ID:           1,
			Institution:  "Indian Institute of Technology",
			Degree:       "Bachelor of Technology",
			FieldOfStudy: "Computer Science and Engineering",
			StartDate:    "2015-08-01",
			EndDate:      "2019-05-31",
			Description:  "Graduated with honors.",
		},
	}
}

func FallbackServices() []Service {
	return []Service{
		{ID: 1, Title: "Web Development", Description: "Full-stack web development.", Icon: "fas fa-code"},
		{ID: 2, Title: "Mobile App Development", Description: "Cross-platform mobile apps.", Icon: "fas fa-mobile-alt"},
	}
}

func FallbackTestimonials() []Testimonial {
	return []Testimonial{
		{
			ID:       1,
			Name:     "Sarah Johnson",
			Position: "Project Manager",
			Company:  "Tech Solutions Inc.",
			Content:  "An exceptional developer.",
		},
	}
}

func FallbackBlogPosts() []BlogPost {
	return []BlogPost{
		{
			ID:          1,
			Title:       "Getting Started with DRF",
			Slug:        "getting-started-drf",
			Excerpt:     "Learn how to build powerful APIs.",
			PublishDate: "2025-08-23T16:13:52Z",
		},
	}
}
