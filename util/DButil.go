package util

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"bookstore-api/model"
)

func InitDB() *gorm.DB {
	// 1. CONFIGURATION
	host := GetEnv("DB_HOST", "localhost")
	user := GetEnv("DB_USER", "postgres")
	password := GetEnv("DB_PASSWORD", "postgres")
	dbName := GetEnv("DB_NAME", "bookstore")
	port := GetEnv("DB_PORT", "5432")
	sslmode := GetEnv("DB_SSLMODE", "disable")

	// 2. BOOTSTRAP: CREATE DATABASE IF NOT EXISTS
	maintenanceDSN := fmt.Sprintf("host=%s user=%s password=%s dbname=postgres port=%s sslmode=%s",
		host, user, password, port, sslmode)

	tempDB, err := gorm.Open(postgres.Open(maintenanceDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to Postgres instance: %v", err)
	}

	var exists bool
	checkSQL := fmt.Sprintf("SELECT EXISTS(SELECT datname FROM pg_catalog.pg_database WHERE datname = '%s')", dbName)
	tempDB.Raw(checkSQL).Scan(&exists)

	if !exists {
		log.Printf("Database '%s' not found. Creating...", dbName)
		if err := tempDB.Exec(fmt.Sprintf("CREATE DATABASE %s", dbName)).Error; err != nil {
			log.Fatalf("Failed to create database: %v", err)
		}
		log.Println("Database created successfully.")
	}

	sqlDB, _ := tempDB.DB()
	sqlDB.Close()

	// 3. CONNECT TO APP DATABASE
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		host, user, password, dbName, port, sslmode)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to application database: %v", err)
	}

	// 4. AUTO MIGRATE
	log.Println("Running AutoMigrate...")
	err = db.AutoMigrate(
		&model.Author{},
		&model.Book{},
		&model.User{},
		&model.Role{},
	)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	// 5. CONFIGURE CONNECTION POOL
	postgresDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get underlying DB object: %v", err)
	}

	postgresDB.SetMaxOpenConns(50)
	postgresDB.SetMaxIdleConns(50)
	// Recycle connections to avoid stale connection errors
	postgresDB.SetConnMaxLifetime(30 * time.Minute)

	log.Println("Database connected, migrated, and pool configured!")
	return db
}
