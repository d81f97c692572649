package model

import (
	"errors"

	"mealplanner/internal/apperr"
	"mealplanner/internal/domain"

	"gorm.io/gorm" // GORM ORM library
)

// MealPlanModel groups the meal plan persistence operations.
type MealPlanModel struct {
	db *gorm.DB
}

func NewMealPlanModel(db *gorm.DB) *MealPlanModel {
	return &MealPlanModel{db: db}
}

// MealPlanRow is a meal plan entry joined with its catalog info, the
// shape the meal planner front-end consumes.
type MealPlanRow struct {
	ID       uint   `json:"id"`
	RecipeID int    `gorm:"column:recipe_id" json:"recipe_id"`
	Day      string `json:"day"`
	Name     string `json:"name"`
	WWPoints int    `gorm:"column:ww_points" json:"ww_points"`
}

// Create validates that the user exists, that the recipe is in that
// user's saved set, and that the day is one of the seven accepted
// values, then inserts the entry. Returns the entry joined with the
// catalog's name and points.
func (m *MealPlanModel) Create(userID uint, recipeID int, day string) (*MealPlanRow, error) {
	var user domain.User
	if err := m.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("no user: %d", userID)
		}
		return nil, err
	}

	// Saved-set check is scoped to the acting user.
	var count int64
	if err := m.db.Model(&domain.SavedRecipe{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, apperr.NotFound("no recipe: %d", recipeID)
	}

	if !domain.ValidDay(day) {
		return nil, apperr.BadRequest("%s is not a valid day", day)
	}

	entry := domain.MealPlanEntry{UserID: userID, RecipeID: recipeID, Day: day}
	if err := m.db.Create(&entry).Error; err != nil {
		return nil, err
	}

	var catalog domain.Recipe
	if err := m.db.Where("recipe_id = ?", recipeID).First(&catalog).Error; err != nil {
		return nil, err
	}
	return &MealPlanRow{
		ID:       entry.ID,
		RecipeID: entry.RecipeID,
		Day:      entry.Day,
		Name:     catalog.Name,
		WWPoints: catalog.WWPoints,
	}, nil
}

// Get returns all of a user's meal plan entries joined with catalog
// info, ordered by entry id ascending. NotFound when the user is absent.
func (m *MealPlanModel) Get(userID uint) ([]MealPlanRow, error) {
	var user domain.User
	if err := m.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("no user: %d", userID)
		}
		return nil, err
	}

	rows := make([]MealPlanRow, 0)
	err := m.db.Table("user_mealplan").
		Select("user_mealplan.id, user_mealplan.recipe_id, user_mealplan.day, recipes.name, recipes.ww_points").
		Joins("JOIN recipes ON recipes.recipe_id = user_mealplan.recipe_id").
		Where("user_mealplan.user_id = ?", userID).
		Order("user_mealplan.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// DeleteMeal deletes a single entry by primary key.
func (m *MealPlanModel) DeleteMeal(entryID uint) error {
	res := m.db.Delete(&domain.MealPlanEntry{}, entryID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("no id: %d", entryID)
	}
	return nil
}

// DeleteUserMeals clears a user's entire meal plan. Zero rows affected
// is still success; only an unknown user fails.
func (m *MealPlanModel) DeleteUserMeals(userID uint) error {
	var user domain.User
	if err := m.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("no user: %d", userID)
		}
		return err
	}
	return m.db.Where("user_id = ?", userID).Delete(&domain.MealPlanEntry{}).Error
}
