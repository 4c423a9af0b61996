package repository

import "gorm.io/gorm"

// Migrate creates the schema plus the partial unique index that backstops
// the per-artist reservation guard across processes: two active bookings of
// one artist can never share a (date, start_minute) fingerprint.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&userModel{},
		&availabilityRuleModel{},
		&bookingModel{},
	); err != nil {
		return err
	}

	return db.Exec(`
CREATE UNIQUE INDEX IF NOT EXISTS idx_no_double_booking
ON bookings (artist_id, date, start_minute)
WHERE status IN ('requested', 'confirmed')
`).Error
}
