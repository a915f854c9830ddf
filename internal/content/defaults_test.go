package content

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultDocumentIsComplete(t *testing.T) {
	doc := DefaultDocument()

	require.NotEmpty(t, doc.Version)
	require.NotEmpty(t, doc.TripInfo.Title)
	require.Positive(t, doc.TripInfo.TeamSize)
	require.NotEmpty(t, doc.ImageURLs)
	require.NotEmpty(t, doc.Timeline)
	require.NotEmpty(t, doc.Activities)
	require.NotEmpty(t, doc.Restaurants)
	require.NotEmpty(t, doc.ThongsomboonPackages)
	require.NotEmpty(t, doc.VillaZones)
	require.NotEmpty(t, doc.HouseRules)
	require.NotEmpty(t, doc.EveningActivities)
	require.NotEmpty(t, doc.Day2Options)
	require.NotEmpty(t, doc.DressCodeColors)
	require.NotEmpty(t, doc.ChecklistItems)
	require.NotEmpty(t, doc.ShoppingCategories)
	require.NotEmpty(t, doc.ThongsomboonPromotions)
	require.NotEmpty(t, doc.BreakfastSpots)

	// Makro checklist starts empty; admins fill it in.
	require.NotNil(t, doc.MakroChecklist)
	require.Empty(t, doc.MakroChecklist)
}

func TestDefaultDocumentActivitiesHaveIDs(t *testing.T) {
	for _, a := range DefaultDocument().Activities {
		require.NotEmpty(t, a.ID, "activity %q has no id", a.Title)
	}
}

func TestDefaultDocumentIsFresh(t *testing.T) {
	a := DefaultDocument()
	b := DefaultDocument()
	a.TripInfo.Title = "changed"
	a.ImageURLs["hero"] = "changed"
	require.NotEqual(t, a.TripInfo.Title, b.TripInfo.Title)
	require.NotEqual(t, a.ImageURLs["hero"], b.ImageURLs["hero"])
}

func TestDefaultRestaurantsValidate(t *testing.T) {
	for _, r := range DefaultDocument().Restaurants {
		require.NoError(t, r.Validate(), "restaurant %q", r.Name)
	}
}
