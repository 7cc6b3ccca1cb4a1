package domain

import "fmt"

// Course is a suggested course in a Recommendation.
type Course struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Recommendation holds personalised learning advice for a completed session.
type Recommendation struct {
	Skills  []string `json:"skills"`
	Courses []Course `json:"courses"`
	Tips    []string `json:"tips"`
}

// FallbackRecommendation builds the deterministic recommendation used when
// the model call fails. It always has 4 skills, 3 courses and 2 tips.
func FallbackRecommendation(topic string, tier Tier) Recommendation {
	return Recommendation{
		Skills: []string{
			fmt.Sprintf("Learn the fundamentals of %s", topic),
			fmt.Sprintf("Practice %s regularly", topic),
			fmt.Sprintf("Join communities related to %s", topic),
			fmt.Sprintf("Read books and articles about %s", topic),
		},
		Courses: []Course{
			{
				Title:       fmt.Sprintf("%s for %s", topic, tier.Audience()),
				Description: fmt.Sprintf("A comprehensive course on %s designed for %s level learners.", topic, tier),
			},
			{
				Title:       fmt.Sprintf("Practical %s", topic),
				Description: fmt.Sprintf("Hands-on projects and exercises to improve your %s skills.", topic),
			},
			{
				Title:       fmt.Sprintf("Advanced %s Concepts", topic),
				Description: fmt.Sprintf("Deep dive into complex aspects of %s for those looking to master the subject.", topic),
			},
		},
		Tips: []string{
			fmt.Sprintf("Regular practice is key to mastering %s.", topic),
			fmt.Sprintf("Try to apply what you learn about %s in real-world scenarios.", topic),
		},
	}
}
