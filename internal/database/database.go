package database

import (
	"log"
	"os"
	"strings"
	"time"

	"gamelog/backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Connect opens the shared database handle and runs migrations.
func Connect(dsn string) error {
	db, err := Open(dsn)
	if err != nil {
		return err
	}

	DB = db
	return nil
}

// Open creates a database handle for the given DSN and migrates the schema.
// Postgres URLs use the postgres driver; any other DSN is treated as a
// sqlite path, so local work and tests need no server.
func Open(dsn string) (*gorm.DB, error) {
	// Configure GORM logger
	customLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags), // io writer
		logger.Config{
			SlowThreshold:             200 * time.Millisecond, // Slow SQL threshold
			LogLevel:                  logger.Warn,            // Log level
			IgnoreRecordNotFoundError: true,                   // Ignore ErrRecordNotFound error for logger
			Colorful:                  true,                   // Enable color
		},
	)

	db, err := gorm.Open(dialectorFor(dsn), &gorm.Config{
		Logger: customLogger,
	})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate declares the join table and creates the schema in dependency
// order: base tables first, then the tables referencing them.
func Migrate(db *gorm.DB) error {
	// Both many2many collections must resolve to the composite-key
	// GameUser model, otherwise GORM would generate its own join table
	// and the two sides would stop sharing rows.
	if err := db.SetupJoinTable(&models.User{}, "Games", &models.GameUser{}); err != nil {
		return err
	}
	if err := db.SetupJoinTable(&models.Game{}, "Users", &models.GameUser{}); err != nil {
		return err
	}

	return db.AutoMigrate(&models.User{}, &models.Game{}, &models.Review{}, &models.GameUser{})
}

func dialectorFor(dsn string) gorm.Dialector {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return postgres.Open(dsn)
	}
	return sqlite.Open(sqliteDSN(dsn))
}

// sqliteDSN turns foreign key enforcement on. sqlite leaves it off per
// connection unless the DSN asks for it, and the schema's referential
// integrity depends on it.
func sqliteDSN(dsn string) string {
	if strings.Contains(dsn, "_fk=") || strings.Contains(dsn, "_foreign_keys=") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&_fk=1"
	}
	return dsn + "?_fk=1"
}
