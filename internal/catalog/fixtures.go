package catalog

import (
	"context"

	"github.com/Hshshshsh454/Highway-delight/internal/models"
)

// FixtureSource serves the built-in storefront catalog. Dates are laid out
// relative to Today, so the inventory always looks current.
type FixtureSource struct {
	Today models.Date
}

func NewFixtureSource(today models.Date) *FixtureSource {
	return &FixtureSource{Today: today}
}

func (s *FixtureSource) Load(ctx context.Context) ([]models.Experience, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Fixtures(s.Today), nil
}

type slotSpec struct {
	time     string
	capacity int
	booked   int
}

func day(today models.Date, offset int, slots ...slotSpec) models.Availability {
	a := models.Availability{Date: today.AddDays(offset)}
	for _, s := range slots {
		a.Slots = append(a.Slots, models.TimeSlot{Time: s.time, Capacity: s.capacity, Booked: s.booked})
	}
	return a
}

// Fixtures builds the storefront catalog around today. The Coorg walk keeps
// a sold-out entry for yesterday so past-date filtering has something to do.
func Fixtures(today models.Date) []models.Experience {
	return []models.Experience{
		{
			ID:               "1",
			Slug:             "kayaking-in-udupi",
			Title:            "Sunset Kayaking in Udupi",
			Location:         "Udupi",
			ShortDescription: "Paddle through serene backwaters as the sun sets.",
			Description:      "Experience the magic of Udupi's backwaters with our guided sunset kayaking tour. This 2-hour journey takes you through tranquil waters, surrounded by lush greenery and the vibrant colors of the evening sky. Perfect for beginners and experienced kayakers alike.",
			Price:            1200,
			ImageIDs:         []string{"udupi-kayak-1", "udupi-kayak-2", "udupi-kayak-3"},
			Rating:           4.8,
			Reviews:          124,
			Category:         models.CategoryWaves,
			Availability: []models.Availability{
				day(today, 0, slotSpec{"16:00", 10, 8}, slotSpec{"17:00", 10, 4}),
				day(today, 1, slotSpec{"16:00", 10, 2}, slotSpec{"17:00", 10, 0}),
				day(today, 2, slotSpec{"16:00", 10, 5}, slotSpec{"17:00", 10, 10}),
			},
		},
		{
			ID:               "2",
			Slug:             "bangalore-tech-hub-tour",
			Title:            "Bangalore Tech Hub Tour",
			Location:         "Bangalore",
			ShortDescription: "Explore the heart of India's Silicon Valley.",
			Description:      "Join us for an insightful tour of Bangalore's most famous tech parks. Understand the architecture, the work culture, and the buzz that makes this city a global IT hub. This is a walking tour that covers key areas and includes a stop at a classic Bangalore cafe.",
			Price:            800,
			ImageIDs:         []string{"bangalore-tech-1", "bangalore-tech-2"},
			Rating:           4.5,
			Reviews:          88,
			Category:         models.CategoryTechHub,
			Availability: []models.Availability{
				day(today, 0, slotSpec{"10:00", 15, 15}, slotSpec{"14:00", 15, 10}),
				day(today, 3, slotSpec{"10:00", 15, 5}, slotSpec{"14:00", 15, 2}),
			},
		},
		{
			ID:               "3",
			Slug:             "coorg-coffee-plantation-walk",
			Title:            "Coorg Coffee Plantation Walk",
			Location:         "Coorg",
			ShortDescription: "Discover the journey from bean to cup.",
			Description:      "Take a peaceful walk through a verdant coffee estate in Coorg. Our guide will explain the process of coffee cultivation, from planting and harvesting to roasting. The tour ends with a coffee tasting session where you can sample different local blends.",
			Price:            1500,
			ImageIDs:         []string{"coorg-coffee-1", "coorg-coffee-2"},
			Rating:           4.9,
			Reviews:          210,
			Category:         models.CategoryCoffee,
			Availability: []models.Availability{
				day(today, -1, slotSpec{"09:00", 12, 12}),
				day(today, 0, slotSpec{"09:00", 12, 10}, slotSpec{"11:00", 12, 7}),
				day(today, 1, slotSpec{"09:00", 12, 4}, slotSpec{"11:00", 12, 3}),
			},
		},
		{
			ID:               "4",
			Slug:             "manali-mountain-trek",
			Title:            "Manali Mountain Trek",
			Location:         "Manali",
			ShortDescription: "A breathtaking day trek in the Himalayas.",
			Description:      "Embark on a guided day trek to experience the majestic beauty of the Himalayas. This moderate trek offers panoramic views of snow-capped peaks, alpine meadows, and dense pine forests. A packed lunch amidst nature is included.",
			Price:            2500,
			ImageIDs:         []string{"manali-trek-1", "manali-trek-2"},
			Rating:           4.7,
			Reviews:          156,
			Category:         models.CategoryMountain,
			Availability: []models.Availability{
				day(today, 5, slotSpec{"08:00", 8, 6}),
				day(today, 6, slotSpec{"08:00", 8, 2}),
			},
		},
		{
			ID:               "5",
			Slug:             "sunderban-mangrove-safari",
			Title:            "Sunderban Mangrove Safari",
			Location:         "Sunderban",
			ShortDescription: "Navigate the mysterious mangrove forests.",
			Description:      "A thrilling boat safari through the UNESCO World Heritage site of the Sunderbans. Explore the unique ecosystem of the world's largest mangrove forest, spot diverse wildlife including crocodiles, deer, and various bird species. If you are lucky, you might even spot the Royal Bengal Tiger.",
			Price:            3500,
			ImageIDs:         []string{"sunderban-safari-1", "sunderban-safari-2"},
			Rating:           4.6,
			Reviews:          95,
			Category:         models.CategorySailing,
			Availability: []models.Availability{
				day(today, 10, slotSpec{"07:00", 20, 15}),
				day(today, 11, slotSpec{"07:00", 20, 11}),
			},
		},
		{
			ID:               "6",
			Slug:             "bangalore-pub-crawl",
			Title:            "Bangalore Pub Crawl",
			Location:         "Bangalore",
			ShortDescription: "Experience the best of Bangalore's nightlife.",
			Description:      "Discover Bangalore's vibrant nightlife with our curated pub crawl. We take you to three of the city's best pubs, with a complimentary drink at each stop. Meet new people, enjoy great music, and experience the energetic vibe of the city after dark.",
			Price:            2000,
			ImageIDs:         []string{"bangalore-pub-1", "bangalore-tech-2"},
			Rating:           4.7,
			Reviews:          180,
			Category:         models.CategoryNightlife,
			Availability: []models.Availability{
				day(today, 2, slotSpec{"19:00", 25, 18}),
				day(today, 3, slotSpec{"19:00", 25, 12}),
			},
		},
		{
			ID:               "7",
			Slug:             "goa-beach-hopping",
			Title:            "Goa Beach Hopping Adventure",
			Location:         "Goa",
			ShortDescription: "Discover the famous and hidden beaches of Goa.",
			Description:      "A full-day tour exploring the beautiful coastline of Goa. We will visit famous beaches like Baga and Calangute, as well as some hidden gems. Enjoy water sports, relax on the sand, and savor delicious seafood at a beachside shack.",
			Price:            3000,
			ImageIDs:         []string{"goa-beach-1", "goa-beach-2"},
			Rating:           4.8,
			Reviews:          250,
			Category:         models.CategoryBeach,
			Availability: []models.Availability{
				day(today, 4, slotSpec{"09:00", 15, 10}),
				day(today, 5, slotSpec{"09:00", 15, 5}),
			},
		},
		{
			ID:               "8",
			Slug:             "jaipur-historical-tour",
			Title:            "Jaipur Historical Tour",
			Location:         "Jaipur",
			ShortDescription: "Explore the royal palaces and forts of the Pink City.",
			Description:      "Immerse yourself in the history of Jaipur with a guided tour of its most iconic landmarks. Visit the Amber Fort, City Palace, and Hawa Mahal. Learn about the rich culture and heritage of the Rajputs.",
			Price:            2200,
			ImageIDs:         []string{"jaipur-fort-1", "jaipur-fort-2"},
			Rating:           4.9,
			Reviews:          320,
			Category:         models.CategoryCastle,
			Availability: []models.Availability{
				day(today, 7, slotSpec{"10:00", 20, 15}),
			},
		},
		{
			ID:               "9",
			Slug:             "agra-taj-mahal-sunrise",
			Title:            "Agra Taj Mahal Sunrise Tour",
			Location:         "Agra",
			ShortDescription: "Witness the breathtaking beauty of the Taj Mahal at sunrise.",
			Description:      "An early morning tour to see the Taj Mahal in the soft light of sunrise. Avoid the crowds and capture stunning photos of this Wonder of the World. The tour also includes a visit to the Agra Fort.",
			Price:            1800,
			ImageIDs:         []string{"agra-taj-1", "agra-taj-2"},
			Rating:           5.0,
			Reviews:          500,
			Category:         models.CategoryLandmark,
			Availability: []models.Availability{
				day(today, 8, slotSpec{"05:30", 25, 20}),
			},
		},
		{
			ID:               "10",
			Slug:             "mumbai-city-of-dreams-tour",
			Title:            "Mumbai City of Dreams Tour",
			Location:         "Mumbai",
			ShortDescription: "Explore the bustling streets and landmarks of Mumbai.",
			Description:      "A comprehensive tour of Mumbai, covering everything from the Gateway of India and Marine Drive to the bustling markets of Colaba. Experience the fast-paced life of India's financial capital.",
			Price:            2800,
			ImageIDs:         []string{"mumbai-city-1", "mumbai-city-2"},
			Rating:           4.7,
			Reviews:          190,
			Category:         models.CategoryCity,
			Availability: []models.Availability{
				day(today, 12, slotSpec{"09:30", 18, 10}),
			},
		},
		{
			ID:               "11",
			Slug:             "rishikesh-river-rafting",
			Title:            "Rishikesh White Water Rafting",
			Location:         "Rishikesh",
			ShortDescription: "An adrenaline-pumping rafting experience on the Ganges.",
			Description:      "Navigate the thrilling rapids of the River Ganges with our expert guides. This white water rafting adventure is perfect for thrill-seekers. The package includes all safety gear and a briefing.",
			Price:            3200,
			ImageIDs:         []string{"rishikesh-rafting-1", "rishikesh-rafting-2"},
			Rating:           4.9,
			Reviews:          400,
			Category:         models.CategoryAdventure,
			Availability: []models.Availability{
				day(today, 15, slotSpec{"10:00", 12, 8}),
			},
		},
		{
			ID:               "12",
			Slug:             "shimla-himalayan-toy-train",
			Title:            "Shimla Himalayan Toy Train",
			Location:         "Shimla",
			ShortDescription: "A scenic journey on a historic mountain railway.",
			Description:      "Experience the charm of the UNESCO World Heritage Kalka-Shimla Railway. This toy train ride offers stunning views of the Himalayan landscape as it winds through picturesque valleys and tunnels.",
			Price:            1500,
			ImageIDs:         []string{"shimla-train-1", "shimla-train-2"},
			Rating:           4.6,
			Reviews:          280,
			Category:         models.CategoryRailway,
			Availability: []models.Availability{
				day(today, 20, slotSpec{"11:00", 30, 25}),
			},
		},
		{
			ID:               "13",
			Slug:             "ooty-nilgiri-mountain-railway",
			Title:            "Ooty Nilgiri Mountain Railway",
			Location:         "Ooty",
			ShortDescription: "Ride the historic steam train through the Nilgiri Hills.",
			Description:      "Journey through tea plantations and forested hills on the iconic Nilgiri Mountain Railway. This steam-powered train offers a nostalgic and scenic experience, showcasing the natural beauty of Ooty.",
			Price:            1300,
			ImageIDs:         []string{"ooty-train-1", "ooty-train-2"},
			Rating:           4.7,
			Reviews:          220,
			Category:         models.CategoryRailway,
			Availability: []models.Availability{
				day(today, 18, slotSpec{"10:30", 40, 30}),
			},
		},
		{
			ID:               "14",
			Slug:             "darjeeling-tea-tasting",
			Title:            "Darjeeling Tea Garden & Tasting",
			Location:         "Darjeeling",
			ShortDescription: "Explore the world-famous tea estates of Darjeeling.",
			Description:      "Visit a renowned tea garden in Darjeeling, learn about the tea-making process, and enjoy a tasting session of the finest Darjeeling teas. Enjoy panoramic views of the Kanchenjunga range.",
			Price:            1900,
			ImageIDs:         []string{"darjeeling-tea-1", "darjeeling-tea-2"},
			Rating:           4.8,
			Reviews:          350,
			Category:         models.CategoryCoffee,
			Availability: []models.Availability{
				day(today, 22, slotSpec{"09:00", 15, 10}),
			},
		},
		{
			ID:               "15",
			Slug:             "munnar-tea-plantation-tour",
			Title:            "Munnar Tea Plantation Tour",
			Location:         "Munnar",
			ShortDescription: "Walk through the rolling tea gardens of Munnar.",
			Description:      "A guided tour of the sprawling tea plantations in Munnar, Kerala. Learn about the history of tea in the region, witness the tea-plucking process, and visit a tea museum. The stunning landscapes make for a perfect day out.",
			Price:            1600,
			ImageIDs:         []string{"munnar-tea-1", "munnar-tea-2"},
			Rating:           4.9,
			Reviews:          380,
			Category:         models.CategoryCoffee,
			Availability: []models.Availability{
				day(today, 25, slotSpec{"10:00", 20, 12}),
			},
		},
	}
}
