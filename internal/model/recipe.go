package model

import (
	"errors"

	"mealplanner/internal/apperr"
	"mealplanner/internal/domain"

	"gorm.io/gorm" // GORM ORM library
)

// RecipeModel groups the catalog and saved-recipe persistence operations.
type RecipeModel struct {
	db *gorm.DB
}

func NewRecipeModel(db *gorm.DB) *RecipeModel {
	return &RecipeModel{db: db}
}

// SaveRecipe saves a recipe for a user. The shared catalog row is
// created only if no user has saved this recipe before; otherwise the
// existing row is reused and the supplied name/points are ignored.
// Fails with BadRequest when the user already saved this recipe.
// Catalog upsert and join insert run in one transaction.
func (m *RecipeModel) SaveRecipe(userID uint, name string, recipeID int, wwPoints int) (*domain.Recipe, error) {
	var catalog domain.Recipe
	err := m.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("recipe_id = ?", recipeID).First(&catalog).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			catalog = domain.Recipe{RecipeID: recipeID, Name: name, WWPoints: wwPoints}
			if err := tx.Create(&catalog).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&domain.SavedRecipe{}).
			Where("user_id = ? AND recipe_id = ?", userID, recipeID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return apperr.BadRequest("duplicate userId/recipeId: %d %d", userID, recipeID)
		}
		return tx.Create(&domain.SavedRecipe{UserID: userID, RecipeID: recipeID}).Error
	})
	if err != nil {
		return nil, err
	}
	return &catalog, nil
}

// GetRecipes returns every catalog row in the user's saved set. The
// result is an empty slice, not nil, when nothing is saved.
func (m *RecipeModel) GetRecipes(userID uint) ([]domain.Recipe, error) {
	recipes := make([]domain.Recipe, 0)
	err := m.db.Table("users_recipes").
		Select("recipes.recipe_id, recipes.name, recipes.ww_points").
		Joins("JOIN recipes ON recipes.recipe_id = users_recipes.recipe_id").
		Where("users_recipes.user_id = ?", userID).
		Scan(&recipes).Error
	if err != nil {
		return nil, err
	}
	return recipes, nil
}

// Remove deletes the user's saved-recipe row and purges any meal plan
// entries referencing it, in one transaction. The shared catalog row
// survives: other users may still have it saved. Fails with NotFound
// when the user never saved this recipe.
func (m *RecipeModel) Remove(recipeID int, userID uint) error {
	return m.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND recipe_id = ?", userID, recipeID).Delete(&domain.SavedRecipe{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperr.NotFound("table does not contain recipeId: %d", recipeID)
		}
		return tx.Where("user_id = ? AND recipe_id = ?", userID, recipeID).
			Delete(&domain.MealPlanEntry{}).Error
	})
}
