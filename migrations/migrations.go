package migrations

import (
	"database/sql"
	"time"
)

// AutoMigrateUsers creates the users table if it does not exist.
func AutoMigrateUsers(retries int, db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS users (
			username VARCHAR(255) PRIMARY KEY,
			password VARCHAR(255),
			phone VARCHAR(50),
			email VARCHAR(255)
		);
	`
	return execWithRetry(db, query, retries)
}

// AutoMigrateGuides creates the guides table if it does not exist.
func AutoMigrateGuides(retries int, db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS guides (
			guide_id INT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(255),
			email VARCHAR(255),
			phone VARCHAR(50),
			experience_years INT,
			rating DOUBLE,
			specialization VARCHAR(255),
			city VARCHAR(100),
			state VARCHAR(100),
			available BOOLEAN,
			joined_date VARCHAR(50),
			image VARCHAR(512)
		);
	`
	return execWithRetry(db, query, retries)
}

// AutoMigrateBuildings creates the buildings table if it does not exist.
// guide_id is informational only; no foreign key is declared on purpose.
func AutoMigrateBuildings(retries int, db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS buildings (
			building_id INT AUTO_INCREMENT PRIMARY KEY,
			guide_id INT,
			name VARCHAR(255),
			address VARCHAR(255),
			city VARCHAR(100),
			state VARCHAR(100),
			zip_code VARCHAR(20),
			price DOUBLE,
			type VARCHAR(100),
			bedrooms INT,
			bathrooms INT,
			area_sqft INT,
			availability VARCHAR(100),
			image VARCHAR(512),
			featured BOOLEAN
		);
	`
	return execWithRetry(db, query, retries)
}

func execWithRetry(db *sql.DB, query string, retries int) error {
	_, err := db.Exec(query)
	if err != nil {
		// Retry creating the table
		for i := 0; i < retries; i++ {
			time.Sleep(1 * time.Second)
			_, err = db.Exec(query)
			if err == nil {
				break
			}
		}
	}
	return err
}
