package content

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupRepo(t *testing.T) Repository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&Announcement{}, &GalleryItem{}, &Schedule{}, &Rule{}))
	return NewRepository(db)
}

func TestAnnouncementLifecycle(t *testing.T) {
	repo := setupRepo(t)

	a := &Announcement{Title: "Opening Ceremony", Body: "Friday 9 AM, main ground."}
	require.NoError(t, repo.CreateAnnouncement(a))

	items, err := repo.ListAnnouncements()
	require.NoError(t, err)
	require.Len(t, items, 1)

	rows, err := repo.UpdateAnnouncement(a.ID, &Announcement{Title: "Opening Ceremony", Body: "Moved to 10 AM."})
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	items, err = repo.ListAnnouncements()
	require.NoError(t, err)
	assert.Equal(t, "Moved to 10 AM.", items[0].Body)

	rows, err = repo.DeleteAnnouncement(a.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	rows, err = repo.DeleteAnnouncement(a.ID)
	require.NoError(t, err)
	assert.Zero(t, rows)
}

func TestGalleryItemLifecycle(t *testing.T) {
	repo := setupRepo(t)

	g := &GalleryItem{Title: "Finals Day", ImageURL: "https://cdn.example.com/finals.jpg"}
	require.NoError(t, repo.CreateGalleryItem(g))

	rows, err := repo.UpdateGalleryItem(g.ID, &GalleryItem{
		Title:    "Finals Day",
		ImageURL: "https://cdn.example.com/finals-v2.jpg",
		Caption:  "Trophy presentation",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	items, err := repo.ListGalleryItems()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "https://cdn.example.com/finals-v2.jpg", items[0].ImageURL)
	assert.Equal(t, "Trophy presentation", items[0].Caption)

	rows, err = repo.UpdateGalleryItem(424242, g)
	require.NoError(t, err)
	assert.Zero(t, rows)

	rows, err = repo.DeleteGalleryItem(g.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)
}

func TestScheduleSportFilterAndOrder(t *testing.T) {
	repo := setupRepo(t)

	later := &Schedule{Title: "Finals", Sport: "cricket", Date: time.Now().Add(48 * time.Hour)}
	sooner := &Schedule{Title: "Semis", Sport: "cricket", Date: time.Now().Add(24 * time.Hour)}
	other := &Schedule{Title: "Chess Open", Sport: "chess", Date: time.Now().Add(24 * time.Hour)}
	for _, s := range []*Schedule{later, sooner, other} {
		require.NoError(t, repo.CreateSchedule(s))
	}

	items, err := repo.ListSchedules("cricket")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Semis", items[0].Title)

	items, err = repo.ListSchedules("")
	require.NoError(t, err)
	assert.Len(t, items, 3)
}

func TestRuleUpdateMissingRow(t *testing.T) {
	repo := setupRepo(t)

	rows, err := repo.UpdateRule(424242, &Rule{Sport: "cricket", Title: "x", Content: "y"})
	require.NoError(t, err)
	assert.Zero(t, rows)
}
