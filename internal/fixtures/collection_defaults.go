package fixtures

import "fmt"

// MyListCollectionName is the browsing collection that starts out holding every seeded company.
const MyListCollectionName = "My List"

var (
	companyNamePrefixes = []string{
		"Acme", "Blue Harbor", "Cedar", "Driftwood", "Evergreen", "Falcon", "Granite", "Helios",
		"Ironbark", "Juniper", "Kestrel", "Lumen", "Meridian", "Northwind", "Orchid", "Pinnacle",
		"Quarry", "Redwood", "Summit", "Tidewater", "Umbra", "Vantage", "Willow", "Zenith",
	}
	companyNameSuffixes = []string{
		"Analytics", "Labs", "Robotics", "Health", "Logistics", "Capital", "Energy", "Software",
	}
)

// DefaultCompanyNames returns the deterministic set of company names installed by the seeder.
func DefaultCompanyNames() []string {
	names := make([]string, 0, len(companyNamePrefixes)*len(companyNameSuffixes))
	for _, suffix := range companyNameSuffixes {
		for _, prefix := range companyNamePrefixes {
			names = append(names, fmt.Sprintf("%s %s", prefix, suffix))
		}
	}
	return names
}

// DefaultCollectionNames returns the collections created on an empty store, Liked last.
func DefaultCollectionNames(likedName string) []string {
	return []string{MyListCollectionName, likedName}
}
