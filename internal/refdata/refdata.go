// Package refdata holds the static district/venue/question/category catalogs
// that report validation and the presentation layer resolve against.
package refdata

// District is a city-level location reference
type District struct {
	DistrictID string `json:"district_id"`
	Name       string `json:"name"`
	State      string `json:"state"`
}

// Venue is a specific place within a district
type Venue struct {
	VenueID    string `json:"venue_id"`
	Name       string `json:"name"`
	Address    string `json:"address"`
	DistrictID string `json:"district_id"`
}

// SecurityQuestion is a predefined question template reporters pick from
type SecurityQuestion struct {
	QuestionID string `json:"question_id"`
	Question   string `json:"question"`
}

var Districts = []District{
	{DistrictID: "1", Name: "Mumbai", State: "Maharashtra"},
	{DistrictID: "2", Name: "Delhi", State: "Delhi"},
	{DistrictID: "3", Name: "Bangalore", State: "Karnataka"},
	{DistrictID: "4", Name: "Hyderabad", State: "Telangana"},
	{DistrictID: "5", Name: "Chennai", State: "Tamil Nadu"},
	{DistrictID: "6", Name: "Kolkata", State: "West Bengal"},
	{DistrictID: "7", Name: "Pune", State: "Maharashtra"},
	{DistrictID: "8", Name: "Ahmedabad", State: "Gujarat"},
	{DistrictID: "9", Name: "Jaipur", State: "Rajasthan"},
	{DistrictID: "10", Name: "Lucknow", State: "Uttar Pradesh"},
}

var Venues = []Venue{
	{VenueID: "1", Name: "Gateway of India", Address: "Apollo Bandar, Colaba", DistrictID: "1"},
	{VenueID: "2", Name: "Marine Drive", Address: "Netaji Subhash Chandra Bose Road", DistrictID: "1"},
	{VenueID: "3", Name: "Juhu Beach", Address: "Juhu Tara Road", DistrictID: "1"},
	{VenueID: "4", Name: "India Gate", Address: "Rajpath", DistrictID: "2"},
	{VenueID: "5", Name: "Red Fort", Address: "Netaji Subhash Marg", DistrictID: "2"},
	{VenueID: "6", Name: "Qutub Minar", Address: "Mehrauli", DistrictID: "2"},
	{VenueID: "7", Name: "Lalbagh Botanical Garden", Address: "Mavalli", DistrictID: "3"},
	{VenueID: "8", Name: "Cubbon Park", Address: "Kasturba Road", DistrictID: "3"},
	{VenueID: "9", Name: "Bangalore Palace", Address: "Vasanth Nagar", DistrictID: "3"},
	{VenueID: "10", Name: "Charminar", Address: "Charminar Road", DistrictID: "4"},
	{VenueID: "11", Name: "Hussain Sagar Lake", Address: "Tank Bund Road", DistrictID: "4"},
	{VenueID: "12", Name: "Marina Beach", Address: "Kamarajar Salai", DistrictID: "5"},
	{VenueID: "13", Name: "Kapaleeshwarar Temple", Address: "Mylapore", DistrictID: "5"},
	{VenueID: "14", Name: "Victoria Memorial", Address: "Queens Way", DistrictID: "6"},
	{VenueID: "15", Name: "Howrah Bridge", Address: "Jagannath Ghat", DistrictID: "6"},
}

var SecurityQuestions = []SecurityQuestion{
	{QuestionID: "1", Question: "What color is the item?"},
	{QuestionID: "2", Question: "What brand is the item?"},
	{QuestionID: "3", Question: "What is the approximate size of the item?"},
	{QuestionID: "4", Question: "Are there any unique markings or identifiers?"},
	{QuestionID: "5", Question: "What material is the item made of?"},
	{QuestionID: "6", Question: "What was inside the item (if applicable)?"},
}

var Categories = []string{
	"Electronics",
	"Bags & Luggage",
	"Wallets & Purses",
	"Jewelry",
	"Documents",
	"Keys",
	"Clothing",
	"Books",
	"Sports Equipment",
	"Other",
}

// DistrictExists reports whether a district id is in the catalog
func DistrictExists(districtID string) bool {
	for _, d := range Districts {
		if d.DistrictID == districtID {
			return true
		}
	}
	return false
}

// VenueInDistrict reports whether a venue id exists and belongs to the district
func VenueInDistrict(venueID, districtID string) bool {
	for _, v := range Venues {
		if v.VenueID == venueID {
			return v.DistrictID == districtID
		}
	}
	return false
}

// VenuesByDistrict returns all venues in a district
func VenuesByDistrict(districtID string) []Venue {
	venues := make([]Venue, 0)
	for _, v := range Venues {
		if v.DistrictID == districtID {
			venues = append(venues, v)
		}
	}
	return venues
}

// QuestionExists reports whether a security question id is in the catalog
func QuestionExists(questionID string) bool {
	for _, q := range SecurityQuestions {
		if q.QuestionID == questionID {
			return true
		}
	}
	return false
}

// CategoryExists reports whether a category name is in the catalog
func CategoryExists(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}
