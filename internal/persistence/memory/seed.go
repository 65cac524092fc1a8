package memory

import "example.com/signup/internal/domain"

type seedActivity struct {
	name         string
	description  string
	schedule     string
	max          int
	participants []string
}

var seedActivities = []seedActivity{
	{
		name:         "Chess Club",
		description:  "Learn strategies and compete in chess tournaments",
		schedule:     "Fridays, 3:30 PM - 5:00 PM",
		max:          12,
		participants: []string{"michael@mergington.edu", "daniel@mergington.edu"},
	},
	{
		name:         "Programming Class",
		description:  "Learn programming fundamentals and build software projects",
		schedule:     "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
		max:          20,
		participants: []string{"emma@mergington.edu", "sophia@mergington.edu"},
	},
	{
		name:         "Gym Class",
		description:  "Physical education and sports activities",
		schedule:     "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
		max:          30,
		participants: []string{"john@mergington.edu", "olivia@mergington.edu"},
	},
	{
		name:         "Basketball Team",
		description:  "Practice drills and compete in inter-school basketball games",
		schedule:     "Tuesdays and Thursdays, 4:00 PM - 6:00 PM",
		max:          15,
		participants: []string{"liam@mergington.edu"},
	},
	{
		name:         "Swimming Club",
		description:  "Improve swimming technique and train for meets",
		schedule:     "Mondays and Wednesdays, 4:00 PM - 5:30 PM",
		max:          20,
		participants: []string{"ava@mergington.edu"},
	},
	{
		name:         "Art Studio",
		description:  "Explore painting, drawing, and mixed media projects",
		schedule:     "Wednesdays, 3:30 PM - 5:00 PM",
		max:          18,
		participants: []string{"mia@mergington.edu"},
	},
	{
		name:         "Drama Club",
		description:  "Act, direct, and produce school theater performances",
		schedule:     "Thursdays, 3:30 PM - 5:30 PM",
		max:          25,
		participants: []string{"noah@mergington.edu", "isabella@mergington.edu"},
	},
	{
		name:         "Math Olympiad",
		description:  "Solve challenging problems and prepare for math competitions",
		schedule:     "Tuesdays, 3:30 PM - 4:30 PM",
		max:          10,
		participants: []string{"ethan@mergington.edu"},
	},
	{
		name:         "Debate Team",
		description:  "Develop public speaking and argumentation skills",
		schedule:     "Fridays, 4:00 PM - 5:30 PM",
		max:          16,
		participants: []string{"charlotte@mergington.edu"},
	},
}

// DefaultActivities returns the activities every process starts with.
func DefaultActivities() ([]domain.Activity, error) {
	out := make([]domain.Activity, 0, len(seedActivities))
	for _, s := range seedActivities {
		activity, err := domain.NewActivity(s.name, s.description, s.schedule, s.max, s.participants)
		if err != nil {
			return nil, err
		}
		out = append(out, activity)
	}
	return out, nil
}

// NewSeededStore builds a Store populated with DefaultActivities.
func NewSeededStore(opts ...Option) (*Store, error) {
	seed, err := DefaultActivities()
	if err != nil {
		return nil, err
	}
	return NewStore(seed, opts...)
}
