package model

import (
	"testing"

	"mealplanner/internal/domain"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory database per test. Max one open
// connection so the in-memory schema is not lost to pooling.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&domain.User{}, &domain.Recipe{}, &domain.SavedRecipe{}, &domain.MealPlanEntry{},
	))
	return db
}

func hash(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

// seed inserts two users, two catalog recipes, three saved-recipe rows
// and four meal plan entries.
func seed(t *testing.T, db *gorm.DB) (user1, user2 domain.User) {
	t.Helper()
	user1 = domain.User{Username: "user1", Password: hash(t, "password1")}
	user2 = domain.User{Username: "user2", Password: hash(t, "password2")}
	require.NoError(t, db.Create(&user1).Error)
	require.NoError(t, db.Create(&user2).Error)

	require.NoError(t, db.Create(&domain.Recipe{RecipeID: 1111, Name: "fish stew", WWPoints: 19}).Error)
	require.NoError(t, db.Create(&domain.Recipe{RecipeID: 2222, Name: "bacon", WWPoints: 7}).Error)

	for _, sr := range []domain.SavedRecipe{
		{UserID: user1.ID, RecipeID: 1111},
		{UserID: user2.ID, RecipeID: 2222},
		{UserID: user1.ID, RecipeID: 2222},
	} {
		require.NoError(t, db.Create(&sr).Error)
	}

	for _, e := range []domain.MealPlanEntry{
		{UserID: user1.ID, RecipeID: 1111, Day: "Mon"},
		{UserID: user1.ID, RecipeID: 1111, Day: "Tues"},
		{UserID: user1.ID, RecipeID: 2222, Day: "Tues"},
		{UserID: user1.ID, RecipeID: 1111, Day: "Wed"},
	} {
		require.NoError(t, db.Create(&e).Error)
	}
	return user1, user2
}
