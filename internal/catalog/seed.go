package catalog

import "jobtracker-engine/internal/domain"

func intp(v int) *int { return &v }

// Seed is the fallback catalog used when no catalog file exists yet.
// It mirrors the shape the UI expects end to end.
func Seed() []domain.Job {
	return Normalize([]domain.Job{
		{
			ID:            "seed-1",
			Title:         "Backend Engineer",
			Company:       "Nimbus Labs",
			Location:      "Berlin",
			Mode:          "remote",
			Experience:    "2-4 years",
			Skills:        []string{"Go", "PostgreSQL", "Docker"},
			Source:        "LinkedIn",
			SalaryRange:   "€65,000 - €80,000",
			PostedDaysAgo: intp(1),
			Link:          "https://example.com/jobs/seed-1",
			Description:   "Build and operate backend services for our scheduling platform.",
		},
		{
			ID:            "seed-2",
			Title:         "Frontend Developer",
			Company:       "Brightpath",
			Location:      "Amsterdam",
			Mode:          "hybrid",
			Experience:    "0-2 years",
			Skills:        []string{"TypeScript", "React", "CSS"},
			Source:        "Indeed",
			SalaryRange:   "€45,000 - €55,000",
			PostedDaysAgo: intp(3),
			Link:          "https://example.com/jobs/seed-2",
			Description:   "Ship accessible UI for a customer-facing analytics product.",
		},
		{
			ID:            "seed-3",
			Title:         "Site Reliability Engineer",
			Company:       "Quanta Systems",
			Location:      "Dallas-Fort Worth, TX",
			Mode:          "remote",
			Experience:    "4-6 years",
			Skills:        []string{"Kubernetes", "Terraform", "AWS", "Go"},
			Source:        "LinkedIn",
			SalaryRange:   "$140,000 - $170,000",
			PostedDaysAgo: intp(0),
			Link:          "https://example.com/jobs/seed-3",
			Description:   "Own reliability for a multi-region platform; on-call rotation.",
		},
		{
			ID:          "seed-4",
			Title:       "Data Analyst",
			Company:     "Harborview",
			Location:    "Bengaluru",
			Mode:        "onsite",
			Experience:  "0-2 years",
			Skills:      []string{"SQL", "Python", "Tableau"},
			Source:      "Naukri",
			SalaryRange: "₹9,00,000 - ₹12,00,000",
			Link:        "https://example.com/jobs/seed-4",
			Description: "Turn product usage data into decisions with the growth team.",
		},
	})
}
