package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createPetTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE pets (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		type TEXT NOT NULL,
		age INTEGER NOT NULL DEFAULT 0,
		breed TEXT,
		image TEXT,
		status TEXT NOT NULL DEFAULT 'available',
		traits TEXT,
		medical_history TEXT,
		notes TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		avatar TEXT,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		phone_number TEXT,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'user',
		status TEXT NOT NULL DEFAULT 'active',
		address TEXT,
		preferences TEXT,
		pet_interactions TEXT,
		verification_status TEXT,
		account_details TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createCredentialTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE password_reset_tokens (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		token TEXT NOT NULL UNIQUE,
		expires_at DATETIME NOT NULL,
		created_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE confirmation_codes (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL UNIQUE,
		code TEXT NOT NULL,
		expires_at DATETIME NOT NULL,
		created_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE sign_in_tokens (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		token TEXT NOT NULL,
		device_info TEXT,
		created_at DATETIME
	);`)
}

func createAdoptionTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE adoption_applications (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		pet_id TEXT NOT NULL,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT,
		address TEXT,
		city TEXT,
		state TEXT,
		zip TEXT,
		housing TEXT,
		own_rent TEXT,
		landlord_contact TEXT,
		occupation TEXT,
		other_pets TEXT,
		veterinarian TEXT,
		experience TEXT,
		reason TEXT,
		commitment TEXT,
		emergency_contact TEXT,
		"references" TEXT,
		status TEXT NOT NULL DEFAULT 'pending',
		notes TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createEmergencyTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE emergency_care_requests (
		id TEXT PRIMARY KEY,
		owner_id TEXT NOT NULL,
		pet_data TEXT,
		owner_name TEXT NOT NULL,
		phone TEXT NOT NULL,
		description TEXT,
		status TEXT NOT NULL DEFAULT 'pending',
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createVisitTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE visits (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		visit_date_and_time TEXT NOT NULL,
		notes TEXT,
		status TEXT NOT NULL DEFAULT 'pending',
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createInviteTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE invites (
		id TEXT PRIMARY KEY,
		token TEXT NOT NULL UNIQUE,
		email TEXT NOT NULL,
		role TEXT NOT NULL,
		created_at DATETIME,
		expires_at DATETIME NOT NULL
	);`)
}

func createDonationTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE donations (
		id TEXT PRIMARY KEY,
		amount REAL NOT NULL,
		email TEXT NOT NULL,
		name TEXT,
		message TEXT,
		reference TEXT NOT NULL UNIQUE,
		status TEXT NOT NULL DEFAULT 'pending',
		payment_method TEXT,
		payment_details TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}
