package content

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// ContentDocument is the single root aggregate for all editable site content.
// It is persisted as one JSON object and fully replaced on every write; there
// is no partial-patch protocol. LastModified is server-assigned on write.
type ContentDocument struct {
	Version                string                   `json:"version"`
	LastModified           string                   `json:"lastModified"`
	TripInfo               TripInfo                 `json:"tripInfo"`
	ImageURLs              map[string]string        `json:"imageUrls"`
	Timeline               []TimelineItem           `json:"timeline"`
	Activities             []ActivityCard           `json:"activities"`
	Restaurants            []RestaurantInfo         `json:"restaurants"`
	ThongsomboonPackages   []ThongsomboonPackage    `json:"thongsomboonPackages"`
	VillaZones             []VillaZone              `json:"villaZones"`
	HouseRules             []HouseRule              `json:"houseRules"`
	EveningActivities      []EveningActivity        `json:"eveningActivities"`
	Day2Options            []Day2Option             `json:"day2Options"`
	DressCodeColors        []DressCodeColor         `json:"dressCodeColors"`
	ChecklistItems         []ChecklistItem          `json:"checklistItems"`
	MakroChecklist         []MakroChecklistCategory `json:"makroChecklist"`
	ShoppingCategories     []ShoppingCategory       `json:"shoppingCategories"`
	ThongsomboonPromotions []ThongsomboonPromotion  `json:"thongsomboonPromotions"`
	DepartureInfo          DepartureInfo            `json:"departureInfo"`
	TathamplaphowInfo      TathamplaphowInfo        `json:"tathamplaphowInfo"`
	BreakfastSpots         []BreakfastSpot          `json:"breakfastSpots"`
	ExternalLinks          ExternalLinks            `json:"externalLinks"`
}

// TripInfo is the headline block shown on the cover slide.
type TripInfo struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Dates    string `json:"dates"`
	Location string `json:"location"`
	TeamSize int    `json:"teamSize"`
}

// Validate applies the trip-info editor rules. The document-level shape gate
// only checks field types; range checks live here.
func (t TripInfo) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.Title, validation.Required),
		validation.Field(&t.Subtitle, validation.Required),
		validation.Field(&t.Dates, validation.Required),
		validation.Field(&t.Location, validation.Required),
		validation.Field(&t.TeamSize, validation.Required, validation.Min(1)),
	)
}

// TimelineItem is one row of the itinerary. Time is a free-text label, not a
// real timestamp; order within the slice is display order. IsDayMarker only
// changes rendering.
type TimelineItem struct {
	Time        string `json:"time"`
	Title       string `json:"title"`
	Icon        string `json:"icon"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
	IsDayMarker bool   `json:"isDayMarker,omitempty"`
}

// ActivityCard describes one activity. ID is a client-generated slug derived
// from the title when absent (see Slugify).
type ActivityCard struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Icon        string `json:"icon,omitempty"`
}

// thaiPhonePattern accepts 9-digit landlines like 044-365-999 and 10-digit
// mobiles like 081-876-4232, with optional hyphens.
var thaiPhonePattern = regexp.MustCompile(`^0\d{1,2}-?\d{3}-?\d{3,4}$`)

// RestaurantInfo describes one restaurant record.
type RestaurantInfo struct {
	Name   string `json:"name"`
	Type   string `json:"type"`
	Phone  string `json:"phone"`
	MapURL string `json:"mapUrl"`
	Image  string `json:"image"`
	Notes  string `json:"notes,omitempty"`
}

// Validate applies the restaurant editor rules: loosely validated Thai phone
// pattern and a parseable map URL.
func (r RestaurantInfo) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Type, validation.Required),
		validation.Field(&r.Phone, validation.Required, validation.Match(thaiPhonePattern)),
		validation.Field(&r.MapURL, validation.Required, is.URL),
	)
}

type ThongsomboonPackage struct {
	ID          string   `json:"id"`
	Price       string   `json:"price"`
	Name        string   `json:"name"`
	Duration    string   `json:"duration"`
	Activities  string   `json:"activities"`
	Highlight   string   `json:"highlight"`
	Includes    []string `json:"includes"`
	Recommended bool     `json:"recommended,omitempty"`
}

type ThongsomboonPromotion struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type VillaZone struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

type HouseRule struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

type EveningActivity struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

type Day2Option struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	Options     []string `json:"options"`
}

type DressCodeColor struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

type ChecklistItem struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type MakroChecklistItem struct {
	Name   string `json:"name"`
	MinQty *int   `json:"minQty"`
	MaxQty *int   `json:"maxQty"`
	Unit   string `json:"unit"`
	Notes  string `json:"notes,omitempty"`
}

type MakroChecklistCategory struct {
	Category string               `json:"category"`
	Icon     string               `json:"icon"`
	Items    []MakroChecklistItem `json:"items"`
}

type ShoppingCategory struct {
	Icon string `json:"icon"`
	Name string `json:"name"`
	Note string `json:"note"`
}

type DepartureInfo struct {
	MeetingPoint     string `json:"meetingPoint"`
	MeetingTime      string `json:"meetingTime"`
	EstimatedArrival string `json:"estimatedArrival"`
	MapURL           string `json:"mapUrl"`
	DonationActivity string `json:"donationActivity,omitempty"`
}

type MenuHighlight struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	Weight      string `json:"weight,omitempty"`
	Image       string `json:"image"`
	IsSignature bool   `json:"isSignature,omitempty"`
}

type RestaurantAtmosphere struct {
	Aircon    bool   `json:"aircon"`
	Spacious  bool   `json:"spacious"`
	Parking   string `json:"parking"`
	Highlight string `json:"highlight"`
}

type TathamplaphowInfo struct {
	Name           string               `json:"name"`
	EnglishName    string               `json:"englishName"`
	Description    string               `json:"description"`
	Phone          string               `json:"phone"`
	Address        string               `json:"address"`
	Hours          string               `json:"hours"`
	MapURL         string               `json:"mapUrl"`
	Atmosphere     RestaurantAtmosphere `json:"atmosphere"`
	MenuHighlights []MenuHighlight      `json:"menuHighlights"`
	Specialties    []string             `json:"specialties"`
	Tips           []string             `json:"tips"`
}

type BreakfastSpot struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
	MapURL      string `json:"mapUrl"`
}

type ExternalLinks struct {
	VillaMap          string `json:"villaMap"`
	RapsodiaMap       string `json:"rapsodiaMap"`
	MakroMap          string `json:"makroMap"`
	CharityMap        string `json:"charityMap"`
	KruaBanNaiPhonMap string `json:"kruaBanNaiPhonMap"`
	ShoppingChecklist string `json:"shoppingChecklist"`
	VillaPhone        string `json:"villaPhone"`
}

// Source tells callers where a document came from: durable storage, the
// built-in defaults, or an accessor's session cache.
type Source int

const (
	SourceDefault Source = iota
	SourceStored
	SourceCache
)

func (s Source) String() string {
	switch s {
	case SourceStored:
		return "stored"
	case SourceCache:
		return "cache"
	}
	return "default"
}
