package config

import (
	"testing"
	"time"

	"library-desk/internal/adapters/persistence/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_MODE", "dev")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("PAYMENT_MODE", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsDev())
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, PaymentModeSimulated, cfg.Payment.Mode)
	assert.Equal(t, 10*time.Second, cfg.Payment.Timeout)
	assert.Equal(t, 5, cfg.Payment.BreakerMaxFailures)
	assert.True(t, cfg.SeedCatalog)
	assert.Same(t, cfg, AppConfig)
}

func TestLoad_ProdPostgres(t *testing.T) {
	t.Setenv("APP_MODE", "prod")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("PROD_DB_HOST", "db.internal")
	t.Setenv("PROD_DB_NAME", "circulation")
	t.Setenv("PAYMENT_MODE", "http")
	t.Setenv("PAYMENT_GATEWAY_URL", "https://pay.example.org")
	t.Setenv("PAYMENT_TIMEOUT_SECONDS", "3")
	t.Setenv("SEED_CATALOG", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsProd())
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "circulation", cfg.Database.DBName)
	assert.Equal(t, 3*time.Second, cfg.Payment.Timeout)
	assert.False(t, cfg.SeedCatalog)
	assert.Contains(t, buildPostgresDSN(cfg.Database), "host=db.internal port=5432")
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "mode", env: map[string]string{"APP_MODE": "staging"}},
		{name: "driver", env: map[string]string{"APP_MODE": "dev", "DB_DRIVER": "oracle"}},
		{name: "payment mode", env: map[string]string{"APP_MODE": "dev", "PAYMENT_MODE": "cash"}},
		{name: "http without url", env: map[string]string{"APP_MODE": "dev", "PAYMENT_MODE": "http", "PAYMENT_GATEWAY_URL": ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestBuildMySQLDSN(t *testing.T) {
	dsn := buildMySQLDSN(DatabaseConfig{User: "root", Password: "pw", Host: "localhost", Port: "3306", DBName: "library"})
	assert.Equal(t, "root:pw@tcp(localhost:3306)/library?charset=utf8mb4&parseTime=True&loc=Local", dsn)
}

func TestSeeder_SeedsOnce(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, models.AutoMigrate(db))

	seeder := NewSeeder(db)
	require.NoError(t, seeder.Run())
	require.NoError(t, seeder.Run())

	var count int64
	require.NoError(t, db.Model(&models.Book{}).Count(&count).Error)
	assert.Equal(t, int64(len(sampleBooks)), count)

	var gatsby models.Book
	require.NoError(t, db.Where("isbn = ?", "9780743273565").First(&gatsby).Error)
	assert.Equal(t, gatsby.TotalCopies, gatsby.AvailableCopies)
}
