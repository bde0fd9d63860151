package repository_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/raizel/manadabook/internal/db"
)

// setupTestDB opens an isolated in-memory DB for the calling test.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	database, err := db.OpenMemory(strings.ReplaceAll(t.Name(), "/", "_"))
	require.NoError(t, err)

	sqlDB, err := database.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	return database
}

// seedUsers registers users with their id as display name.
func seedUsers(t *testing.T, database *gorm.DB, ids ...string) {
	t.Helper()
	for _, id := range ids {
		require.NoError(t, database.WithContext(context.Background()).
			Create(&db.User{ID: id, DisplayName: strings.ToUpper(id)}).Error)
	}
}

func loadUser(t *testing.T, database *gorm.DB, id string) db.User {
	t.Helper()
	var u db.User
	require.NoError(t, database.Where("id = ?", id).Take(&u).Error)
	return u
}
