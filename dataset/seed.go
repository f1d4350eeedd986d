package dataset

import "github.com/poiesic/matchbox/core"

// Seed returns a small built-in dataset for demos and local development.
// The CLI falls back to it when no dataset file is given.
func Seed() *Store {
	store, err := NewStore(seedEvents, seedUsers, seedCommunities)
	if err != nil {
		// Seed data is fixed at compile time; failure here is a bug.
		panic(err)
	}
	return store
}

var seedEvents = []core.Event{
	{
		Id:          1,
		Name:        "Mountain Hike",
		Location:    "Blue Ridge Trailhead",
		Category:    "Outdoors",
		Date:        "2025-09-06",
		Time:        "08:00",
		Description: "A full-day guided hike with views over the valley. All levels welcome.",
	},
	{
		Id:          2,
		Name:        "Jazz in the Park",
		Location:    "Riverside Park Bandstand",
		Category:    "Music",
		Date:        "2025-09-12",
		Time:        "19:30",
		Description: "Open-air jazz evening featuring local quartets. Bring a blanket.",
	},
	{
		Id:          3,
		Name:        "Intro to Pottery",
		Location:    "Clayworks Studio",
		Category:    "Workshop",
		Date:        "2025-09-14",
		Time:        "10:00",
		Description: "Hands-on wheel-throwing basics for complete beginners.",
	},
	{
		Id:          4,
		Name:        "City Marathon Relay",
		Location:    "Downtown Loop",
		Category:    "Sports",
		Date:        "2025-10-05",
		Time:        "07:00",
		Description: "Teams of four split the classic marathon distance through the city center.",
	},
}

var seedUsers = []core.User{
	{
		Id:           1,
		Username:     "alice",
		Email:        "alice@example.com",
		Interests:    []string{"hiking", "photography", "jazz"},
		CommunityIds: []core.ID{1, 2},
	},
	{
		Id:           2,
		Username:     "bmarsh",
		Email:        "bmarsh@example.com",
		Interests:    []string{"running", "cycling"},
		CommunityIds: []core.ID{3},
	},
	{
		Id:           3,
		Username:     "ceramic_carla",
		Email:        "carla@example.com",
		Interests:    []string{"pottery", "painting", "crafts"},
		CommunityIds: []core.ID{2},
	},
}

var seedCommunities = []core.Community{
	{
		Id:          1,
		Name:        "Trail Blazers",
		Description: "Weekend hikes and outdoor trips around the region.",
		Interests:   []string{"hiking", "camping", "nature"},
	},
	{
		Id:          2,
		Name:        "Makers Circle",
		Description: "A group for hands-on crafts: pottery, woodworking, textiles.",
		Interests:   []string{"pottery", "crafts", "art"},
	},
	{
		Id:          3,
		Name:        "Road Runners",
		Description: "Training runs, relays, and race-day carpools.",
		Interests:   []string{"running", "fitness"},
	},
}
