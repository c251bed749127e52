package testdata

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/ipropixel/leadfinder/ent"
)

// BusinessGeneratorConfig configures business generation parameters
type BusinessGeneratorConfig struct {
	Category      string
	Count         int
	City          string
	SearchQuery   string
	EmailChance   float64 // 0.0-1.0 (probability of having emails)
	PhoneChance   float64
	WebsiteChance float64
	SocialChance  float64
}

// Neighborhoods maps cities to their sub-localities
var Neighborhoods = map[string][]string{
	"Tirana": {"Blloku", "Komuna e Parisit", "21 Dhjetori", "Don Bosko",
		"Kombinat", "Laprake", "Ali Demi", "Kinostudio", "Selite", "Astiri"},
	"Durres": {"Plazh", "Currila", "Kenete", "Spitalle", "Shkozet"},
	"Vlore": {"Skele", "Uji i Ftohte", "Lungomare", "Partizani"},
	"Shkoder": {"Parruce", "Rus", "Perash", "Xhabije"},
	"Elbasan": {"Skampa", "Partizani", "5 Maji", "Dyli Haxhire"},
}

// Category-specific business name prefixes and suffixes
var businessNameParts = map[string]struct {
	Prefixes []string
	Suffixes []string
}{
	"dentist": {
		Prefixes: []string{"Denta", "Smile", "Bright", "Family", "Perfect", "Alba", "Pro", "White", "Premium", "City"},
		Suffixes: []string{"Dental", "Dental Clinic", "Dentistry", "Dental Care", "Klinike Dentare", "Dental Studio"},
	},
	"barber": {
		Prefixes: []string{"Classic", "Gentleman's", "Royal", "Master", "Modern", "Old School", "Sharp", "Elite", "Urban", "Retro"},
		Suffixes: []string{"Barber Shop", "Barbers", "Barbershop", "Cuts", "Grooming", "Berber"},
	},
	"restaurant": {
		Prefixes: []string{"Taverna", "Oda", "Vila", "Casa", "Te", "Restorant", "Golden", "Grand", "Era", "Gurra"},
		Suffixes: []string{"Restaurant", "Grill", "Kitchen", "Bistro", "Tradicional", "Fish House"},
	},
	"cafe": {
		Prefixes: []string{"Cozy", "Corner", "Mulliri", "Urban", "Daily", "Artisan", "Vintage", "Sophie", "Mon", "Komiteti"},
		Suffixes: []string{"Cafe", "Coffee Shop", "Kafe", "Coffee House", "Coffee Bar", "Espresso Bar"},
	},
	"gym": {
		Prefixes: []string{"Iron", "Peak", "Elite", "Power", "Alpha", "Titan", "Prime", "Force", "Olympia", "Flex"},
		Suffixes: []string{"Fitness", "Gym", "Palestra", "Training Center", "Fitness Studio", "Athletic Club"},
	},
	"spa": {
		Prefixes: []string{"Serenity", "Zen", "Harmony", "Bliss", "Paradise", "Oasis", "Pure", "Luxury", "Adriatik", "Eden"},
		Suffixes: []string{"Spa", "Day Spa", "Wellness Spa", "Spa & Wellness", "Estetike"},
	},
	"hotel": {
		Prefixes: []string{"Grand", "Royal", "Adriatik", "Panorama", "Illyria", "Arber", "Riviera", "Central", "Boutique", "Plaza"},
		Suffixes: []string{"Hotel", "Hotel & Spa", "Boutique Hotel", "Suites", "Resort", "Guesthouse"},
	},
	"pharmacy": {
		Prefixes: []string{"City", "Family", "Health", "Care", "Express", "Local", "Central", "Alba", "Vita", "Medika"},
		Suffixes: []string{"Pharmacy", "Farmaci", "Apotheke", "Health Store"},
	},
	"bakery": {
		Prefixes: []string{"Fresh", "Golden", "Artisan", "Daily", "Classic", "French", "Sweet", "Sunrise", "Furre", "Pasticeri"},
		Suffixes: []string{"Bakery", "Furre Buke", "Pastry Shop", "Patisserie", "Bake House"},
	},
	"car_repair": {
		Prefixes: []string{"Expert", "Pro", "Quality", "Fast", "Master", "Precision", "Auto", "Total", "Premier", "Servis"},
		Suffixes: []string{"Auto Repair", "Auto Service", "Servis Makinash", "Automotive", "Garage"},
	},
}

// GenerateBusinessName creates category-specific realistic business names
func GenerateBusinessName(category string) string {
	parts, ok := businessNameParts[category]
	if !ok {
		// Fallback for unknown categories
		return fmt.Sprintf("%s %s", gofakeit.Company(), gofakeit.BuzzWord())
	}

	prefix := parts.Prefixes[rand.Intn(len(parts.Prefixes))]
	suffix := parts.Suffixes[rand.Intn(len(parts.Suffixes))]

	return fmt.Sprintf("%s %s", prefix, suffix)
}

// albanianMobile produces a plausible +355 6x number
func albanianMobile() string {
	return fmt.Sprintf("+3556%d%07d", 7+rand.Intn(3), rand.Intn(10000000))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func slugDomain(name string) string {
	d := strings.ToLower(strings.ReplaceAll(name, " ", ""))
	d = strings.ReplaceAll(d, "'", "")
	if len(d) > 20 {
		d = d[:20]
	}
	return d
}

// GenerateBusiness creates a single business with realistic data
func GenerateBusiness(client *ent.Client, config BusinessGeneratorConfig) *ent.BusinessCreate {
	name := GenerateBusinessName(config.Category)
	city := config.City
	if city == "" {
		city = "Tirana"
	}

	neighborhoods := Neighborhoods[city]
	var neighborhood string
	if len(neighborhoods) > 0 {
		neighborhood = neighborhoods[rand.Intn(len(neighborhoods))]
	}

	searchQuery := config.SearchQuery
	if searchQuery == "" {
		searchQuery = fmt.Sprintf("%s %s", config.Category, strings.ToLower(city))
	}

	create := client.Business.Create().
		SetName(name).
		SetCategoryName(capitalize(config.Category)).
		SetCity(city).
		SetNeighborhood(neighborhood).
		SetStreet(gofakeit.Street()).
		SetAddress(fmt.Sprintf("%s, %s, %s", gofakeit.Street(), neighborhood, city)).
		SetCountryCode("AL").
		SetLatitude(41.3275 + (rand.Float64()-0.5)/10).
		SetLongitude(19.8187 + (rand.Float64()-0.5)/10).
		SetRating(3.0 + rand.Float64()*2.0).
		SetReviewCount(rand.Intn(500)).
		SetImagesCount(rand.Intn(40)).
		SetSearchQuery(searchQuery).
		SetScrapedAt(time.Now().Add(-time.Duration(rand.Intn(72)) * time.Hour))

	if rand.Float64() < config.PhoneChance {
		phone := albanianMobile()
		create.SetPhone(phone).
			SetPhoneUnformatted(strings.TrimPrefix(phone, "+"))
	}

	if rand.Float64() < config.EmailChance {
		create.SetEmails([]string{fmt.Sprintf("info@%s.al", slugDomain(name))})
	}

	if rand.Float64() < config.WebsiteChance {
		domain := slugDomain(name) + ".al"
		create.SetWebsite("https://www." + domain).SetDomain(domain)
	}

	if rand.Float64() < config.SocialChance {
		create.SetInstagram("https://www.instagram.com/" + slugDomain(name)).
			SetFacebook("https://www.facebook.com/" + slugDomain(name))
	}

	return create
}

// GenerateBusinesses seeds count businesses and returns how many were created
func GenerateBusinesses(ctx context.Context, client *ent.Client, config BusinessGeneratorConfig) (int, error) {
	creates := make([]*ent.BusinessCreate, 0, config.Count)
	for i := 0; i < config.Count; i++ {
		creates = append(creates, GenerateBusiness(client, config))
	}

	if err := client.Business.CreateBulk(creates...).Exec(ctx); err != nil {
		return 0, fmt.Errorf("failed to seed businesses: %w", err)
	}
	return len(creates), nil
}
