package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"stayhub/models"
)

// newTestDB opens an in-memory database. Tables with postgres array columns
// are created by hand with plain text columns so sqlite accepts them.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.Exec(`CREATE TABLE properties (
		id integer primary key autoincrement,
		partner_id integer,
		name text,
		slug text,
		description text,
		images text,
		street text,
		city text,
		state text,
		country text,
		postal_code text,
		longitude real,
		latitude real,
		amenities text,
		type text,
		rating real default 0,
		review_count integer default 0,
		price_min real default 0,
		price_max real default 0,
		status text default 'pending',
		created_at datetime,
		updated_at datetime)`).Error)

	require.NoError(t, db.Exec(`CREATE TABLE rooms (
		id integer primary key autoincrement,
		property_id integer,
		room_type text,
		capacity integer,
		rate real,
		description text,
		images text,
		created_at datetime,
		updated_at datetime)`).Error)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Booking{},
		&models.PartnerApplication{},
		&models.Review{},
	))

	return db
}

func seedProperty(t *testing.T, db *gorm.DB, partnerID uint, name, slug, status string) models.Property {
	t.Helper()
	property := models.Property{
		PartnerID: partnerID,
		Name:      name,
		Slug:      slug,
		City:      "Lisbon",
		Country:   "Portugal",
		Type:      "hotel",
		Status:    status,
	}
	require.NoError(t, db.Create(&property).Error)
	return property
}

// testCode hands out distinct confirmation codes so seeded bookings do not
// collide on the model's unique index.
var testCodeSeq int

func testCode() string {
	testCodeSeq++
	return fmt.Sprintf("SH-TEST%04d", testCodeSeq)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
