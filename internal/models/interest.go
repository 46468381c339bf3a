package models

// Interest is a named tag from the shared catalog.
type Interest struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// DefaultInterests is the catalog seeded on first start.
var DefaultInterests = []string{
	"Football",
	"Hackathons",
	"Web Development",
	"Machine Learning",
	"Research",
	"Startups",
	"Gaming",
	"Gym/Fitness",
}
