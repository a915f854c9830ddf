package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/khaoyai-getaway/content-service/internal/content"
	"github.com/khaoyai-getaway/content-service/internal/content/repository"
)

type failingRepo struct{}

func (failingRepo) Load(context.Context) (*content.ContentDocument, error) {
	return nil, errors.New("storage down")
}

func (failingRepo) Store(context.Context, *content.ContentDocument) error {
	return errors.New("storage down")
}

func newService(repo repository.Repository) *Service {
	return New(repo, nil)
}

func TestReadFallsBackWhenEmpty(t *testing.T) {
	svc := newService(repository.NewMemoryRepo())

	doc, src := svc.Read(context.Background())
	require.Equal(t, content.SourceDefault, src)
	require.NotEmpty(t, doc.TripInfo.Title)
}

func TestReadFallsBackWhenStorageFails(t *testing.T) {
	svc := newService(failingRepo{})

	doc, src := svc.Read(context.Background())
	require.Equal(t, content.SourceDefault, src)
	require.NotNil(t, doc)
}

func TestWriteStampsLastModified(t *testing.T) {
	repo := repository.NewMemoryRepo()
	svc := newService(repo)
	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	in := content.DefaultDocument()
	in.LastModified = "stale"
	require.NoError(t, svc.Write(context.Background(), in))

	out, src := svc.Read(context.Background())
	require.Equal(t, content.SourceStored, src)
	require.Equal(t, "2025-06-01T12:00:00Z", out.LastModified)
}

func TestWriteRoundTrip(t *testing.T) {
	svc := newService(repository.NewMemoryRepo())

	in := content.DefaultDocument()
	in.TripInfo.TeamSize = 14
	in.Version = "2.0"
	require.NoError(t, svc.Write(context.Background(), in))

	out, src := svc.Read(context.Background())
	require.Equal(t, content.SourceStored, src)
	// everything survives except lastModified, which the write stamps
	in.LastModified = out.LastModified
	require.Equal(t, in, out)
}

func TestWriteSurfacesStorageError(t *testing.T) {
	svc := newService(failingRepo{})
	err := svc.Write(context.Background(), content.DefaultDocument())
	require.Error(t, err)
	require.Contains(t, err.Error(), "storage down")
}

func TestUpdateTripInfoValidates(t *testing.T) {
	repo := repository.NewMemoryRepo()
	svc := newService(repo)

	bad := content.TripInfo{Title: "x", Subtitle: "y", Dates: "z", Location: "w", TeamSize: 0}
	require.Error(t, svc.UpdateTripInfo(context.Background(), bad))

	stored, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Nil(t, stored, "rejected update must not write")

	good := content.TripInfo{Title: "ทริปเขาใหญ่", Subtitle: "Outing", Dates: "14-15 มิ.ย.", Location: "เขาใหญ่", TeamSize: 14}
	require.NoError(t, svc.UpdateTripInfo(context.Background(), good))

	out, _ := svc.Read(context.Background())
	require.Equal(t, good, out.TripInfo)
}

func TestUpdateActivitiesAssignsIDs(t *testing.T) {
	svc := newService(repository.NewMemoryRepo())

	require.NoError(t, svc.UpdateActivities(context.Background(), []content.ActivityCard{
		{Title: "Go Kart Racing"},
	}))

	out, _ := svc.Read(context.Background())
	require.Len(t, out.Activities, 1)
	require.Equal(t, "go-kart-racing", out.Activities[0].ID)
}

func TestUpdateImageURLsMerges(t *testing.T) {
	svc := newService(repository.NewMemoryRepo())

	require.NoError(t, svc.UpdateImageURLs(context.Background(), map[string]string{"hero": "https://example.com/a.jpg"}))
	require.NoError(t, svc.UpdateImageURLs(context.Background(), map[string]string{"villa": "https://example.com/b.jpg"}))

	out, _ := svc.Read(context.Background())
	require.Equal(t, "https://example.com/a.jpg", out.ImageURLs["hero"])
	require.Equal(t, "https://example.com/b.jpg", out.ImageURLs["villa"])
	// untouched defaults survive the merge
	require.NotEmpty(t, out.ImageURLs["midwinter"])
}

func TestMigrate(t *testing.T) {
	seed := repository.NewMemoryRepo()
	seedDoc := content.DefaultDocument()
	seedDoc.Version = "seeded"
	require.NoError(t, seed.Store(context.Background(), seedDoc))

	primary := repository.NewMemoryRepo()
	svc := New(primary, seed)

	doc, err := svc.Migrate(context.Background())
	require.NoError(t, err)
	require.Equal(t, "seeded", doc.Version)

	out, src := svc.Read(context.Background())
	require.Equal(t, content.SourceStored, src)
	require.Equal(t, "seeded", out.Version)
}

func TestMigrateMissingSeed(t *testing.T) {
	svc := New(repository.NewMemoryRepo(), repository.NewMemoryRepo())
	_, err := svc.Migrate(context.Background())
	require.ErrorIs(t, err, ErrSeedNotFound)

	svcNoSeed := New(repository.NewMemoryRepo(), nil)
	_, err = svcNoSeed.Migrate(context.Background())
	require.ErrorIs(t, err, ErrSeedNotFound)
}
