package fixtures

import "cineplex/internal/movies"

func movieCatalog() []movies.Movie {
	return []movies.Movie{
		{
			ID:          "m1",
			Title:       "Neon Horizon",
			PosterURL:   "https://images.unsplash.com/photo-1534809027769-b00d750a6bac?w=400&h=600&fit=crop",
			BackdropURL: "https://images.unsplash.com/photo-1518709268805-4e9042af9f23?w=1200&h=600&fit=crop",
			Rating:      8.7,
			Duration:    148,
			Genre:       []string{"Sci-Fi", "Action"},
			Language:    "English",
			ReleaseDate: "2025-12-15",
			Synopsis:    "In a dystopian future where neon lights never dim, a rogue AI seeks to rewrite humanity's fate.",
			Director:    "Elena Voss",
			Cast:        []string{"Ryan Chen", "Maya Rodriguez", "Alex Okonkwo"},
			AgeRating:   "PG-13",
			Status:      movies.StatusNowShowing,
		},
		{
			ID:          "m2",
			Title:       "Shadow Protocol",
			PosterURL:   "https://images.unsplash.com/photo-1536440136628-849c177e76a1?w=400&h=600&fit=crop",
			BackdropURL: "https://images.unsplash.com/photo-1489599849927-2ee91cede3ba?w=1200&h=600&fit=crop",
			Rating:      9.1,
			Duration:    156,
			Genre:       []string{"Thriller", "Action"},
			Language:    "English",
			ReleaseDate: "2025-12-20",
			Synopsis:    "An elite spy must infiltrate the world's most secure facility to prevent a global catastrophe.",
			Director:    "Marcus Wei",
			Cast:        []string{"Sarah Kim", "James Foster", "Priya Sharma"},
			AgeRating:   "R",
			Status:      movies.StatusNowShowing,
		},
		{
			ID:          "m3",
			Title:       "Eternal Echoes",
			PosterURL:   "https://images.unsplash.com/photo-1518709268805-4e9042af9f23?w=400&h=600&fit=crop",
			BackdropURL: "https://images.unsplash.com/photo-1440404653325-ab127d49abc1?w=1200&h=600&fit=crop",
			Rating:      8.4,
			Duration:    132,
			Genre:       []string{"Romance", "Drama"},
			Language:    "Korean",
			ReleaseDate: "2025-12-18",
			Synopsis:    "Two souls separated by time find each other through mysterious letters that transcend decades.",
			Director:    "Park Ji-won",
			Cast:        []string{"Lee Min-ho", "Kim Soo-yeon", "Choi Woo-shik"},
			AgeRating:   "PG",
			Status:      movies.StatusNowShowing,
		},
		{
			ID:          "m4",
			Title:       "Crimson Thunder",
			PosterURL:   "https://images.unsplash.com/photo-1440404653325-ab127d49abc1?w=400&h=600&fit=crop",
			BackdropURL: "https://images.unsplash.com/photo-1536440136628-849c177e76a1?w=1200&h=600&fit=crop",
			Rating:      7.9,
			Duration:    141,
			Genre:       []string{"Action", "Adventure"},
			Language:    "Mandarin",
			ReleaseDate: "2025-12-22",
			Synopsis:    "A legendary martial artist emerges from retirement to protect her village from an ancient evil.",
			Director:    "Zhang Wei",
			Cast:        []string{"Liu Yifei", "Donnie Yen", "Michelle Yeoh"},
			AgeRating:   "PG-13",
			Status:      movies.StatusNowShowing,
		},
		{
			ID:          "m5",
			Title:       "Digital Dreams",
			PosterURL:   "https://images.unsplash.com/photo-1489599849927-2ee91cede3ba?w=400&h=600&fit=crop",
			BackdropURL: "https://images.unsplash.com/photo-1534809027769-b00d750a6bac?w=1200&h=600&fit=crop",
			Rating:      8.2,
			Duration:    118,
			Genre:       []string{"Sci-Fi", "Mystery"},
			Language:    "English",
			ReleaseDate: "2025-12-25",
			Synopsis:    "When virtual reality becomes indistinguishable from real life, one programmer discovers a terrifying truth.",
			Director:    "Anna Kowalski",
			Cast:        []string{"Tom Blake", "Zoe Martinez", "David Park"},
			AgeRating:   "PG-13",
			Status:      movies.StatusNowShowing,
		},
		{
			ID:          "m6",
			Title:       "The Last Guardian",
			PosterURL:   "https://images.unsplash.com/photo-1516975080664-ed2fc6a32937?w=400&h=600&fit=crop",
			BackdropURL: "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=1200&h=600&fit=crop",
			Rating:      8.9,
			Duration:    165,
			Genre:       []string{"Fantasy", "Adventure"},
			Language:    "English",
			ReleaseDate: "2026-01-05",
			Synopsis:    "A young orphan discovers she's the last in a line of ancient guardians sworn to protect magical artifacts.",
			Director:    "Jennifer Moore",
			Cast:        []string{"Emma Stone", "Tom Holland", "Benedict Cumberbatch"},
			AgeRating:   "PG",
			Status:      movies.StatusComingSoon,
		},
		{
			ID:          "m7",
			Title:       "Midnight Cafe",
			PosterURL:   "https://images.unsplash.com/photo-1514897575457-c4db467cf78e?w=400&h=600&fit=crop",
			BackdropURL: "https://images.unsplash.com/photo-1511578314322-379afb476865?w=1200&h=600&fit=crop",
			Rating:      7.8,
			Duration:    105,
			Genre:       []string{"Comedy", "Romance"},
			Language:    "Japanese",
			ReleaseDate: "2025-12-28",
			Synopsis:    "A quirky cafe owner helps heartbroken customers find love again through magical coffee blends.",
			Director:    "Takeshi Yamamoto",
			Cast:        []string{"Haruka Ayase", "Kenichi Matsuyama", "Satomi Ishihara"},
			AgeRating:   "PG",
			Status:      movies.StatusNowShowing,
		},
		{
			ID:          "m8",
			Title:       "Code Red",
			PosterURL:   "https://images.unsplash.com/photo-1574267432644-f61f1bcad700?w=400&h=600&fit=crop",
			BackdropURL: "https://images.unsplash.com/photo-1509114397022-ed747cca3f65?w=1200&h=600&fit=crop",
			Rating:      8.5,
			Duration:    142,
			Genre:       []string{"Action", "Thriller"},
			Language:    "English",
			ReleaseDate: "2025-12-30",
			Synopsis:    "A cybersecurity expert must stop a terrorist group from launching a digital attack on global infrastructure.",
			Director:    "Michael Bay",
			Cast:        []string{"Chris Hemsworth", "Scarlett Johansson", "Idris Elba"},
			AgeRating:   "R",
			Status:      movies.StatusNowShowing,
		},
		{
			ID:          "m9",
			Title:       "Whispers in the Dark",
			PosterURL:   "https://images.unsplash.com/photo-1509347528160-9a9e33742cdb?w=400&h=600&fit=crop",
			BackdropURL: "https://images.unsplash.com/photo-1478720568477-152d9b164e26?w=1200&h=600&fit=crop",
			Rating:      7.2,
			Duration:    98,
			Genre:       []string{"Horror", "Thriller"},
			Language:    "English",
			ReleaseDate: "2025-12-27",
			Synopsis:    "A family moves into their dream home, only to discover it harbors terrifying secrets from the past.",
			Director:    "James Wan",
			Cast:        []string{"Vera Farmiga", "Patrick Wilson", "Mckenna Grace"},
			AgeRating:   "R",
			Status:      movies.StatusNowShowing,
		},
		{
			ID:          "m10",
			Title:       "The Great Race",
			PosterURL:   "https://images.unsplash.com/photo-1503376780353-7e6692767b70?w=400&h=600&fit=crop",
			BackdropURL: "https://images.unsplash.com/photo-1519641471654-76ce0107ad1b?w=1200&h=600&fit=crop",
			Rating:      8.0,
			Duration:    125,
			Genre:       []string{"Action", "Sports"},
			Language:    "English",
			ReleaseDate: "2026-01-08",
			Synopsis:    "An underdog racing team fights their way to the top in the world's most dangerous motorsport championship.",
			Director:    "Ron Howard",
			Cast:        []string{"Daniel Ricciardo", "Christian Bale", "Matt Damon"},
			AgeRating:   "PG-13",
			Status:      movies.StatusComingSoon,
		},
		{
			ID:          "m11",
			Title:       "Symphony of Hearts",
			PosterURL:   "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400&h=600&fit=crop",
			BackdropURL: "https://images.unsplash.com/photo-1511379938547-c1f69419868d?w=1200&h=600&fit=crop",
			Rating:      7.6,
			Duration:    115,
			Genre:       []string{"Romance", "Drama"},
			Language:    "French",
			ReleaseDate: "2025-12-29",
			Synopsis:    "A deaf pianist and a blind composer create beautiful music together in this heartwarming tale.",
			Director:    "Pierre Laurent",
			Cast:        []string{"Marion Cotillard", "Omar Sy", "Léa Seydoux"},
			AgeRating:   "PG",
			Status:      movies.StatusNowShowing,
		},
		{
			ID:          "m12",
			Title:       "Planet X",
			PosterURL:   "https://images.unsplash.com/photo-1451187580459-43490279c0fa?w=400&h=600&fit=crop",
			BackdropURL: "https://images.unsplash.com/photo-1446776811953-b23d57bd21aa?w=1200&h=600&fit=crop",
			Rating:      8.8,
			Duration:    178,
			Genre:       []string{"Sci-Fi", "Adventure"},
			Language:    "English",
			ReleaseDate: "2026-01-15",
			Synopsis:    "Humanity's first colony ship reaches a distant planet, only to find they're not the first visitors.",
			Director:    "Denis Villeneuve",
			Cast:        []string{"Timothée Chalamet", "Zendaya", "Oscar Isaac"},
			AgeRating:   "PG-13",
			Status:      movies.StatusComingSoon,
		},
		{
			ID:          "m13",
			Title:       "Laugh Out Loud",
			PosterURL:   "https://images.unsplash.com/photo-1485846234645-a62644f84728?w=400&h=600&fit=crop",
			BackdropURL: "https://images.unsplash.com/photo-1536440136628-849c177e76a1?w=1200&h=600&fit=crop",
			Rating:      7.4,
			Duration:    95,
			Genre:       []string{"Comedy"},
			Language:    "English",
			ReleaseDate: "2025-12-26",
			Synopsis:    "A struggling comedian gets one last chance to make it big at a legendary comedy club.",
			Director:    "Judd Apatow",
			Cast:        []string{"Kevin Hart", "Tiffany Haddish", "Pete Davidson"},
			AgeRating:   "R",
			Status:      movies.StatusNowShowing,
		},
		{
			ID:          "m14",
			Title:       "Dragon's Revenge",
			PosterURL:   "https://images.unsplash.com/photo-1478720568477-152d9b164e26?w=400&h=600&fit=crop",
			BackdropURL: "https://images.unsplash.com/photo-1509347528160-9a9e33742cdb?w=1200&h=600&fit=crop",
			Rating:      8.3,
			Duration:    155,
			Genre:       []string{"Fantasy", "Action"},
			Language:    "Mandarin",
			ReleaseDate: "2026-01-10",
			Synopsis:    "An ancient dragon awakens to reclaim its stolen treasure from a corrupt empire.",
			Director:    "Zhang Yimou",
			Cast:        []string{"Jackie Chan", "Gong Li", "Zhang Ziyi"},
			AgeRating:   "PG-13",
			Status:      movies.StatusComingSoon,
		},
		{
			ID:          "m15",
			Title:       "The Detective",
			PosterURL:   "https://images.unsplash.com/photo-1560363199-a1264d4ea5fc?w=400&h=600&fit=crop",
			BackdropURL: "https://images.unsplash.com/photo-1481026469463-66327c86e544?w=1200&h=600&fit=crop",
			Rating:      8.6,
			Duration:    138,
			Genre:       []string{"Mystery", "Thriller"},
			Language:    "English",
			ReleaseDate: "2025-12-31",
			Synopsis:    "A brilliant detective races against time to solve a series of cryptic murders in Victorian London.",
			Director:    "Guy Ritchie",
			Cast:        []string{"Robert Downey Jr.", "Jude Law", "Rachel McAdams"},
			AgeRating:   "PG-13",
			Status:      movies.StatusNowShowing,
		},
		{
			ID:          "m16",
			Title:       "Jungle Quest",
			PosterURL:   "https://images.unsplash.com/photo-1518895949257-7621c3c786d7?w=400&h=600&fit=crop",
			BackdropURL: "https://images.unsplash.com/photo-1511447333015-45b65e60f6d5?w=1200&h=600&fit=crop",
			Rating:      7.5,
			Duration:    112,
			Genre:       []string{"Adventure", "Family"},
			Language:    "English",
			ReleaseDate: "2026-01-12",
			Synopsis:    "A group of kids must navigate a dangerous jungle to find their missing parents.",
			Director:    "Jon Favreau",
			Cast:        []string{"Dwayne Johnson", "Jack Black", "Karen Gillan"},
			AgeRating:   "PG",
			Status:      movies.StatusComingSoon,
		},
		{
			ID:          "m17",
			Title:       "Silent Symphony",
			PosterURL:   "https://images.unsplash.com/photo-1493225457124-a3eb161ffa5f?w=400&h=600&fit=crop",
			BackdropURL: "https://images.unsplash.com/photo-1514320291840-2e0a9bf2a9ae?w=1200&h=600&fit=crop",
			Rating:      7.9,
			Duration:    108,
			Genre:       []string{"Drama", "Music"},
			Language:    "Italian",
			ReleaseDate: "2025-12-24",
			Synopsis:    "A retired opera singer finds her voice again when she mentors a troubled teenager.",
			Director:    "Paolo Sorrentino",
			Cast:        []string{"Sophia Loren", "Monica Bellucci", "Luca Marinelli"},
			AgeRating:   "PG",
			Status:      movies.StatusNowShowing,
		},
		{
			ID:          "m18",
			Title:       "Cyber Wars",
			PosterURL:   "https://images.unsplash.com/photo-1550745165-9bc0b252726f?w=400&h=600&fit=crop",
			BackdropURL: "https://images.unsplash.com/photo-1526374965328-7f61d4dc18c5?w=1200&h=600&fit=crop",
			Rating:      8.1,
			Duration:    145,
			Genre:       []string{"Sci-Fi", "Action"},
			Language:    "English",
			ReleaseDate: "2026-01-20",
			Synopsis:    "In 2077, hackers wage war in both the virtual and real worlds for control of the megacity.",
			Director:    "Lana Wachowski",
			Cast:        []string{"Keanu Reeves", "Carrie-Anne Moss", "Yahya Abdul-Mateen II"},
			AgeRating:   "R",
			Status:      movies.StatusComingSoon,
		},
		{
			ID:          "m19",
			Title:       "Ocean's Fury",
			PosterURL:   "https://images.unsplash.com/photo-1505142468610-359e7d316be0?w=400&h=600&fit=crop",
			BackdropURL: "https://images.unsplash.com/photo-1439405326854-014607f694d7?w=1200&h=600&fit=crop",
			Rating:      7.7,
			Duration:    128,
			Genre:       []string{"Action", "Thriller"},
			Language:    "English",
			ReleaseDate: "2026-01-18",
			Synopsis:    "A submarine crew must stop a rogue captain from starting World War III.",
			Director:    "Kathryn Bigelow",
			Cast:        []string{"Matt Damon", "Emily Blunt", "Michael Shannon"},
			AgeRating:   "R",
			Status:      movies.StatusComingSoon,
		},
		{
			ID:          "m20",
			Title:       "Fairy Tale Kingdom",
			PosterURL:   "https://images.unsplash.com/photo-1512818512084-50bde93e3a58?w=400&h=600&fit=crop",
			BackdropURL: "https://images.unsplash.com/photo-1516981442399-a91139e20ff8?w=1200&h=600&fit=crop",
			Rating:      8.2,
			Duration:    102,
			Genre:       []string{"Animation", "Family"},
			Language:    "English",
			ReleaseDate: "2026-01-22",
			Synopsis:    "A brave princess teams up with unlikely allies to save her kingdom from an evil sorcerer.",
			Director:    "Chris Buck",
			Cast:        []string{"Animated"},
			AgeRating:   "G",
			Status:      movies.StatusComingSoon,
		},
		{
			ID:          "m21",
			Title:       "The Heist",
			PosterURL:   "https://images.unsplash.com/photo-1579165466949-7c5c8a5c946f?w=400&h=600&fit=crop",
			BackdropURL: "https://images.unsplash.com/photo-1461749280684-dccba630e2f6?w=1200&h=600&fit=crop",
			Rating:      8.4,
			Duration:    133,
			Genre:       []string{"Crime", "Thriller"},
			Language:    "English",
			ReleaseDate: "2026-01-25",
			Synopsis:    "A master thief assembles a team for one last impossible heist: stealing from the world's most secure vault.",
			Director:    "Christopher Nolan",
			Cast:        []string{"Leonardo DiCaprio", "Tom Hardy", "Marion Cotillard"},
			AgeRating:   "PG-13",
			Status:      movies.StatusComingSoon,
		},
		{
			ID:          "m22",
			Title:       "Tokyo Nights",
			PosterURL:   "https://images.unsplash.com/photo-1490604001847-b712b0c2f967?w=400&h=600&fit=crop",
			BackdropURL: "https://images.unsplash.com/photo-1540959733332-eab4deabeeaf?w=1200&h=600&fit=crop",
			Rating:      7.3,
			Duration:    110,
			Genre:       []string{"Drama", "Romance"},
			Language:    "Japanese",
			ReleaseDate: "2025-12-23",
			Synopsis:    "Two strangers meet in Tokyo and spend one magical night exploring the city and falling in love.",
			Director:    "Sofia Coppola",
			Cast:        []string{"Ryo Yoshizawa", "Kasumi Arimura", "Takeru Satoh"},
			AgeRating:   "PG-13",
			Status:      movies.StatusNowShowing,
		},
		{
			ID:          "m23",
			Title:       "Haunted Manor",
			PosterURL:   "https://images.unsplash.com/photo-1518709268805-4e9042af9f23?w=400&h=600&fit=crop",
			BackdropURL: "https://images.unsplash.com/photo-1504609773096-104ff2c73ba4?w=1200&h=600&fit=crop",
			Rating:      6.9,
			Duration:    92,
			Genre:       []string{"Horror"},
			Language:    "English",
			ReleaseDate: "2025-10-31",
			Synopsis:    "A paranormal investigator spends Halloween night in a mansion with a deadly history.",
			Director:    "Mike Flanagan",
			Cast:        []string{"Kate Siegel", "Carla Gugino", "Henry Thomas"},
			AgeRating:   "R",
			Status:      movies.StatusEnded,
		},
		{
			ID:          "m24",
			Title:       "Speed Demons",
			PosterURL:   "https://images.unsplash.com/photo-1492144534655-ae79c964c9d7?w=400&h=600&fit=crop",
			BackdropURL: "https://images.unsplash.com/photo-1503376780353-7e6692767b70?w=1200&h=600&fit=crop",
			Rating:      7.8,
			Duration:    119,
			Genre:       []string{"Action", "Adventure"},
			Language:    "English",
			ReleaseDate: "2025-11-15",
			Synopsis:    "Street racers must pull off impossible heists to save one of their own from a dangerous crime lord.",
			Director:    "Justin Lin",
			Cast:        []string{"Vin Diesel", "Michelle Rodriguez", "Tyrese Gibson"},
			AgeRating:   "PG-13",
			Status:      movies.StatusEnded,
		},
		{
			ID:          "m25",
			Title:       "Winter's Tale",
			PosterURL:   "https://images.unsplash.com/photo-1491001664-ac86c2489d97?w=400&h=600&fit=crop",
			BackdropURL: "https://images.unsplash.com/photo-1418065460487-3e41a6c84dc5?w=1200&h=600&fit=crop",
			Rating:      7.1,
			Duration:    98,
			Genre:       []string{"Drama", "Romance"},
			Language:    "Norwegian",
			ReleaseDate: "2025-12-21",
			Synopsis:    "A Norwegian village faces a harsh winter as two families battle over land and love.",
			Director:    "Joachim Trier",
			Cast:        []string{"Renate Reinsve", "Anders Danielsen Lie", "Herbert Nordrum"},
			AgeRating:   "PG",
			Status:      movies.StatusNowShowing,
		},
		{
			ID:          "m26",
			Title:       "Cosmic Voyage",
			PosterURL:   "https://images.unsplash.com/photo-1419242902214-272b3f66ee7a?w=400&h=600&fit=crop",
			BackdropURL: "https://images.unsplash.com/photo-1462331940025-496dfbfc7564?w=1200&h=600&fit=crop",
			Rating:      8.7,
			Duration:    167,
			Genre:       []string{"Sci-Fi", "Drama"},
			Language:    "English",
			ReleaseDate: "2026-02-01",
			Synopsis:    "An astronaut's journey to the edge of the universe becomes a profound meditation on humanity's place in the cosmos.",
			Director:    "Alfonso Cuarón",
			Cast:        []string{"Sandra Bullock", "George Clooney", "Ed Harris"},
			AgeRating:   "PG-13",
			Status:      movies.StatusComingSoon,
		},
		{
			ID:          "m27",
			Title:       "The Magician",
			PosterURL:   "https://images.unsplash.com/photo-1518709268805-4e9042af9f23?w=400&h=600&fit=crop",
			BackdropURL: "https://images.unsplash.com/photo-1519074069444-1ba4fff66d16?w=1200&h=600&fit=crop",
			Rating:      8.0,
			Duration:    126,
			Genre:       []string{"Fantasy", "Mystery"},
			Language:    "English",
			ReleaseDate: "2026-01-28",
			Synopsis:    "A stage magician discovers his tricks have become real magic, attracting dangerous attention.",
			Director:    "Guillermo del Toro",
			Cast:        []string{"Bradley Cooper", "Cate Blanchett", "Rooney Mara"},
			AgeRating:   "R",
			Status:      movies.StatusComingSoon,
		},
		{
			ID:          "m28",
			Title:       "Family Reunion",
			PosterURL:   "https://images.unsplash.com/photo-1511895426328-dc8714191300?w=400&h=600&fit=crop",
			BackdropURL: "https://images.unsplash.com/photo-1511671782779-c97d3d27a1d4?w=1200&h=600&fit=crop",
			Rating:      7.2,
			Duration:    105,
			Genre:       []string{"Comedy", "Drama"},
			Language:    "English",
			ReleaseDate: "2025-12-26",
			Synopsis:    "A dysfunctional family gathers for the holidays, leading to chaos, laughter, and unexpected healing.",
			Director:    "Nancy Meyers",
			Cast:        []string{"Diane Keaton", "Meryl Streep", "Steve Martin"},
			AgeRating:   "PG-13",
			Status:      movies.StatusNowShowing,
		},
		{
			ID:          "m29",
			Title:       "Samurai's Honor",
			PosterURL:   "https://images.unsplash.com/photo-1528360983277-13d401cdc186?w=400&h=600&fit=crop",
			BackdropURL: "https://images.unsplash.com/photo-1493663284031-b7e3aefcae8e?w=1200&h=600&fit=crop",
			Rating:      8.5,
			Duration:    152,
			Genre:       []string{"Action", "Drama"},
			Language:    "Japanese",
			ReleaseDate: "2026-01-30",
			Synopsis:    "A ronin seeks redemption by protecting a village from bandits in feudal Japan.",
			Director:    "Akira Kurosawa",
			Cast:        []string{"Hiroyuki Sanada", "Ken Watanabe", "Rinko Kikuchi"},
			AgeRating:   "R",
			Status:      movies.StatusComingSoon,
		},
		{
			ID:          "m30",
			Title:       "Dance Revolution",
			PosterURL:   "https://images.unsplash.com/photo-1508807526345-15e9b5f4eaff?w=400&h=600&fit=crop",
			BackdropURL: "https://images.unsplash.com/photo-1518609878373-06d740f60d8b?w=1200&h=600&fit=crop",
			Rating:      7.4,
			Duration:    115,
			Genre:       []string{"Music", "Drama"},
			Language:    "Spanish",
			ReleaseDate: "2026-02-05",
			Synopsis:    "An underground dance crew competes for glory in the world's most prestigious street dance competition.",
			Director:    "Carlos Saura",
			Cast:        []string{"Antonio Banderas", "Penélope Cruz", "Javier Bardem"},
			AgeRating:   "PG",
			Status:      movies.StatusComingSoon,
		},
	}
}
