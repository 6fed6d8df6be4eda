package game

// Built-in worlds. Each builder returns a fresh World so environments never
// share mutable room/item slices.

func init() {
	register("lostpig", lostPig)
	register("zork1", zorkOne)
	register("advent", advent)
	register("detective", detective)
}

func lostPig() *World {
	return &World{
		Name:  "lostpig",
		Intro: "Grunk think pig probably go this way. Pig not good at hiding. Grunk just need follow smell and hoofprints down into big hole.",
		Start: "pasture",
		Rooms: map[string]*Room{
			"pasture": {
				ID:   "pasture",
				Name: "Pasture",
				Desc: "Grass everywhere, but no pig. A big dark hole opens in the ground here. Hoofprints lead down.",
				Exits: map[string]string{
					"down": "hole",
				},
			},
			"hole": {
				ID:   "hole",
				Name: "Bottom of Hole",
				Desc: "Dirt walls all around. It dark down here, but a passage goes north.",
				Exits: map[string]string{
					"up":    "pasture",
					"north": "cave",
				},
				Items: []string{"torch"},
			},
			"cave": {
				ID:   "cave",
				Name: "Echoing Cave",
				Desc: "A wide cave. Squealing sounds come from a narrow opening to the east.",
				Exits: map[string]string{
					"south": "hole",
					"east":  "den",
				},
				Items: []string{"sign"},
			},
			"den": {
				ID:   "den",
				Name: "Cozy Den",
				Desc: "A small warm den littered with straw.",
				Exits: map[string]string{
					"west": "cave",
				},
				Items: []string{"pig"},
			},
		},
		Items: map[string]*Item{
			"torch": {
				Name:      "torch",
				Desc:      "A stubby torch, still burning. Good for seeing in dark places.",
				Takeable:  true,
				TakeScore: 5,
			},
			"sign": {
				Name: "sign",
				Desc: "A wooden sign, hammered into the cave floor.",
				Text: "NO PIGS BEYOND THIS POINT",
			},
			"pig": {
				Name:      "pig",
				Aliases:   []string{"lost pig", "piglet"},
				Desc:      "The pig! It look guilty.",
				Takeable:  true,
				TakeScore: 10,
			},
		},
		WinRoom:  "pasture",
		WinItem:  "pig",
		WinScore: 10,
		MaxScore: 25,
		Walkthrough: []string{
			"down", "take torch", "north", "east", "take pig",
			"west", "south", "up",
		},
	}
}

func zorkOne() *World {
	return &World{
		Name:  "zork1",
		Intro: "ZORK I: The Great Underground Empire\nWest of House\nYou are standing in an open field west of a white house, with a boarded front door.",
		Start: "west-of-house",
		Rooms: map[string]*Room{
			"west-of-house": {
				ID:   "west-of-house",
				Name: "West of House",
				Desc: "You are standing in an open field west of a white house, with a boarded front door.",
				Exits: map[string]string{
					"north": "north-of-house",
					"south": "south-of-house",
				},
				Items: []string{"mailbox"},
			},
			"north-of-house": {
				ID:   "north-of-house",
				Name: "North of House",
				Desc: "You are facing the north side of a white house. There is no door here, and all the windows are boarded up.",
				Exits: map[string]string{
					"west": "west-of-house",
					"east": "behind-house",
				},
			},
			"south-of-house": {
				ID:   "south-of-house",
				Name: "South of House",
				Desc: "You are facing the south side of a white house. There is no door here, and all the windows are boarded.",
				Exits: map[string]string{
					"west": "west-of-house",
					"east": "behind-house",
				},
			},
			"behind-house": {
				ID:   "behind-house",
				Name: "Behind House",
				Desc: "You are behind the white house. In one corner of the house there is a small window which is slightly ajar.",
				Exits: map[string]string{
					"west":  "north-of-house",
					"south": "south-of-house",
					"enter": "kitchen",
				},
			},
			"kitchen": {
				ID:   "kitchen",
				Name: "Kitchen",
				Desc: "You are in the kitchen of the white house. A table seems to have been used recently for the preparation of food.",
				Exits: map[string]string{
					"exit": "behind-house",
					"west": "living-room",
				},
				Items: []string{"sack"},
			},
			"living-room": {
				ID:   "living-room",
				Name: "Living Room",
				Desc: "You are in the living room. There is a trophy case here, and a rug lying beside an open trap door leading down into darkness.",
				Exits: map[string]string{
					"east": "kitchen",
					"down": "cellar",
				},
				Items: []string{"lantern", "sword"},
			},
			"cellar": {
				ID:   "cellar",
				Name: "Cellar",
				Desc: "You are in a dark and damp cellar with a narrow passageway leading north.",
				Exits: map[string]string{
					"up": "living-room",
				},
				VisitScore: 25,
			},
		},
		Items: map[string]*Item{
			"mailbox": {
				Name:     "mailbox",
				Aliases:  []string{"small mailbox", "box"},
				Desc:     "It's a small mailbox.",
				Contains: "leaflet",
			},
			"leaflet": {
				Name:     "leaflet",
				Desc:     "A small leaflet.",
				Text:     "WELCOME TO ZORK!\nZORK is a game of adventure, danger, and low cunning.",
				Takeable: true,
			},
			"sack": {
				Name:     "sack",
				Aliases:  []string{"brown sack"},
				Desc:     "The brown sack smells of hot peppers.",
				Takeable: true,
			},
			"lantern": {
				Name:      "lantern",
				Aliases:   []string{"lamp", "brass lantern"},
				Desc:      "A battery-powered brass lantern.",
				Takeable:  true,
				TakeScore: 5,
			},
			"sword": {
				Name:      "sword",
				Aliases:   []string{"elvish sword"},
				Desc:      "An elvish sword of great antiquity.",
				Takeable:  true,
				TakeScore: 5,
			},
		},
		WinRoom:  "cellar",
		WinItem:  "lantern",
		WinScore: 10,
		MaxScore: 45,
		Walkthrough: []string{
			"north", "east", "enter", "west",
			"take lantern", "take sword", "down",
		},
	}
}

func advent() *World {
	return &World{
		Name:  "advent",
		Intro: "Welcome to Adventure!\nYou are standing at the end of a road before a small brick building. Around you is a forest. A small stream flows out of the building and down a gully.",
		Start: "end-of-road",
		Rooms: map[string]*Room{
			"end-of-road": {
				ID:   "end-of-road",
				Name: "End of Road",
				Desc: "You are standing at the end of a road before a small brick building.",
				Exits: map[string]string{
					"enter": "building",
					"south": "valley",
				},
			},
			"building": {
				ID:   "building",
				Name: "Inside Building",
				Desc: "You are inside a building, a well house for a large spring.",
				Exits: map[string]string{
					"exit": "end-of-road",
				},
				Items: []string{"lamp", "keys", "food"},
			},
			"valley": {
				ID:   "valley",
				Name: "Valley",
				Desc: "You are in a valley in the forest beside a stream tumbling along a rocky bed.",
				Exits: map[string]string{
					"north": "end-of-road",
					"south": "slit",
				},
			},
			"slit": {
				ID:   "slit",
				Name: "Slit in Streambed",
				Desc: "At your feet all the water of the stream splashes into a two-inch slit in the rock.",
				Exits: map[string]string{
					"north": "valley",
					"south": "grate-room",
				},
			},
			"grate-room": {
				ID:   "grate-room",
				Name: "Outside Grate",
				Desc: "You are in a 20-foot depression floored with bare dirt. Set into the dirt is a strong steel grate mounted in concrete.",
				Exits: map[string]string{
					"north": "slit",
					"down":  "below-grate",
				},
				Items: []string{"grate"},
			},
			"below-grate": {
				ID:   "below-grate",
				Name: "Below the Grate",
				Desc: "You are in a small chamber beneath a 3x3 steel grate to the surface. A low crawl over cobbles leads inward to the west.",
				Exits: map[string]string{
					"up": "grate-room",
				},
				VisitScore: 25,
			},
		},
		Items: map[string]*Item{
			"lamp": {
				Name:      "lamp",
				Aliases:   []string{"lantern", "brass lamp"},
				Desc:      "It is a shiny brass lamp.",
				Takeable:  true,
				TakeScore: 5,
			},
			"keys": {
				Name:     "keys",
				Aliases:  []string{"set of keys", "key"},
				Desc:     "It's just a normal-looking set of keys.",
				Takeable: true,
			},
			"food": {
				Name:     "food",
				Aliases:  []string{"tasty food"},
				Desc:     "Sure looks yummy!",
				Takeable: true,
			},
			"grate": {
				Name: "grate",
				Desc: "The grate is unlocked and stands open.",
			},
		},
		WinRoom:  "below-grate",
		WinItem:  "lamp",
		WinScore: 10,
		MaxScore: 40,
		Walkthrough: []string{
			"enter", "take lamp", "take keys", "exit",
			"south", "south", "south", "down",
		},
	}
}

func detective() *World {
	return &World{
		Name:  "detective",
		Intro: "You are a world-famous detective. The Chief is waiting, and the mayor's murder won't solve itself.",
		Start: "office",
		Rooms: map[string]*Room{
			"office": {
				ID:   "office",
				Name: "Your Office",
				Desc: "Your cramped office. Papers everywhere. The hallway is to the north.",
				Exits: map[string]string{
					"north": "hall",
				},
				Items: []string{"note"},
			},
			"hall": {
				ID:   "hall",
				Name: "Hallway",
				Desc: "A long hallway. The Chief's office is north, the crime scene west.",
				Exits: map[string]string{
					"south": "office",
					"north": "chiefs-office",
					"west":  "scene",
				},
			},
			"chiefs-office": {
				ID:   "chiefs-office",
				Name: "Chief's Office",
				Desc: "The Chief glares at you over a cold cup of coffee.",
				Exits: map[string]string{
					"south": "hall",
				},
				Items: []string{"badge"},
			},
			"scene": {
				ID:   "scene",
				Name: "Crime Scene",
				Desc: "The mayor's study, taped off. Something glints under the desk. An alley window stands open to the west.",
				Exits: map[string]string{
					"east": "hall",
					"west": "alley",
				},
				Items: []string{"letter"},
			},
			"alley": {
				ID:   "alley",
				Name: "Back Alley",
				Desc: "A narrow alley behind the mayor's house. The police station is north.",
				Exits: map[string]string{
					"east":  "scene",
					"north": "station",
				},
			},
			"station": {
				ID:   "station",
				Name: "Police Station",
				Desc: "The duty sergeant looks up expectantly.",
				Exits: map[string]string{
					"south": "alley",
				},
			},
		},
		Items: map[string]*Item{
			"note": {
				Name: "note",
				Desc: "A hastily scribbled note.",
				Text: "See the Chief. NOW. -- C.",
			},
			"badge": {
				Name:      "badge",
				Desc:      "Your detective's badge, polished to a shine.",
				Takeable:  true,
				TakeScore: 5,
			},
			"letter": {
				Name:      "letter",
				Aliases:   []string{"bloody letter"},
				Desc:      "A letter spattered with blood. Evidence.",
				Text:      "Meet me in the alley at midnight. Bring the money.",
				Takeable:  true,
				TakeScore: 5,
			},
		},
		WinRoom:  "station",
		WinItem:  "letter",
		WinScore: 20,
		MaxScore: 30,
		Walkthrough: []string{
			"north", "north", "take badge", "south",
			"west", "take letter", "west", "north",
		},
	}
}
