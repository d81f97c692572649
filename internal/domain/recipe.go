package domain

// Recipe is a shared catalog row keyed by the provider's recipe id.
// The first user to save a recipe fixes its name and points; later
// savers reuse the row.
type Recipe struct {
	RecipeID int    `gorm:"primaryKey;autoIncrement:false;column:recipe_id" json:"recipe_id"` // Provider id, not generated
	Name     string `json:"name"`
	WWPoints int    `gorm:"column:ww_points" json:"ww_points"`
}

// SavedRecipe marks that a user has saved a catalog recipe.
// A user can save a given recipe only once.
type SavedRecipe struct {
	ID       uint `gorm:"primaryKey" json:"-"`
	UserID   uint `gorm:"uniqueIndex:idx_user_recipe" json:"user_id"`
	RecipeID int  `gorm:"uniqueIndex:idx_user_recipe;column:recipe_id" json:"recipe_id"`
}

// TableName keeps the historical join table name.
func (SavedRecipe) TableName() string {
	return "users_recipes"
}
