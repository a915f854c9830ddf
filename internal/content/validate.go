package content

import "fmt"

// requiredKeys lists every top-level key a complete document must carry. A PUT
// missing any of them is rejected before a write is attempted.
var requiredKeys = []string{
	"version",
	"lastModified",
	"tripInfo",
	"imageUrls",
	"timeline",
	"activities",
	"restaurants",
	"thongsomboonPackages",
	"villaZones",
	"houseRules",
	"eveningActivities",
	"day2Options",
	"dressCodeColors",
	"checklistItems",
	"makroChecklist",
	"shoppingCategories",
	"thongsomboonPromotions",
	"departureInfo",
	"tathamplaphowInfo",
	"breakfastSpots",
	"externalLinks",
}

// ValidateShape checks the decoded document against the structural gate:
// top-level types only, no array-element shapes, no string emptiness, no
// numeric ranges. Per-item correctness is enforced by the editors before a
// PUT is ever issued.
func ValidateShape(raw map[string]any) error {
	if _, ok := raw["version"].(string); !ok {
		return fmt.Errorf("version must be a string")
	}
	ti, ok := raw["tripInfo"].(map[string]any)
	if !ok {
		return fmt.Errorf("tripInfo must be an object")
	}
	for _, f := range []string{"title", "subtitle", "dates", "location"} {
		if _, ok := ti[f].(string); !ok {
			return fmt.Errorf("tripInfo.%s must be a string", f)
		}
	}
	if _, ok := ti["teamSize"].(float64); !ok {
		return fmt.Errorf("tripInfo.teamSize must be a number")
	}
	if _, ok := raw["imageUrls"].(map[string]any); !ok {
		return fmt.Errorf("imageUrls must be an object")
	}
	for _, f := range []string{"timeline", "activities", "restaurants"} {
		if _, ok := raw[f].([]any); !ok {
			return fmt.Errorf("%s must be an array", f)
		}
	}
	for _, k := range requiredKeys {
		if _, ok := raw[k]; !ok {
			return fmt.Errorf("missing required field %s", k)
		}
	}
	return nil
}
