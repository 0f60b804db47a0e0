package seeder

import "github.com/google/uuid"

func demoProfiles() []Profile {
	return []Profile{
		{
			ID:             uuid.MustParse("6b1f3c6e-8e1a-4f7d-9c4b-2f5a9d8e1b01"),
			PreferredTrack: "Backend",
			Experience:     "junior",
			Education:      "BSc Computer Science",
			Skills:         []string{"Go", "PostgreSQL", "Docker"},
			Interests:      []string{"Distributed Systems", "DevOps"},
		},
		{
			ID:             uuid.MustParse("6b1f3c6e-8e1a-4f7d-9c4b-2f5a9d8e1b02"),
			PreferredTrack: "Frontend",
			Experience:     "fresher",
			Education:      "Self-taught",
			Skills:         []string{"JavaScript", "React", "CSS"},
			Interests:      []string{"UI Design"},
		},
	}
}

func demoCatalog() []CatalogItem {
	return []CatalogItem{
		{
			ID:         uuid.MustParse("1a2b3c4d-0001-4000-8000-000000000001"),
			Kind:       "job",
			Title:      "Backend Engineer",
			Platform:   "company_site",
			Track:      "Backend",
			URL:        "https://example.com/jobs/backend-engineer",
			Experience: "junior",
			Attributes: []string{"Go", "PostgreSQL", "Kubernetes", "gRPC"},
		},
		{
			ID:         uuid.MustParse("1a2b3c4d-0001-4000-8000-000000000002"),
			Kind:       "job",
			Title:      "Frontend Developer",
			Platform:   "linkedin",
			Track:      "Frontend",
			URL:        "https://example.com/jobs/frontend-developer",
			Experience: "fresher",
			Attributes: []string{"JavaScript", "React", "TypeScript", "HTML"},
		},
		{
			ID:         uuid.MustParse("1a2b3c4d-0002-4000-8000-000000000001"),
			Kind:       "resource",
			Title:      "Go: The Complete Developer's Guide",
			Platform:   "Udemy",
			Track:      "Backend",
			URL:        "https://example.com/courses/go-complete",
			Cost:       "paid",
			Attributes: []string{"Go", "Concurrency", "Testing"},
		},
		{
			ID:         uuid.MustParse("1a2b3c4d-0002-4000-8000-000000000002"),
			Kind:       "resource",
			Title:      "Responsive Web Design",
			Platform:   "freeCodeCamp",
			Track:      "Frontend",
			URL:        "https://example.com/courses/responsive-web-design",
			Cost:       "free",
			Attributes: []string{"HTML", "CSS", "Flexbox"},
		},
	}
}
