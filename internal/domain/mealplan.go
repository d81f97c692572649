package domain

// MealPlanEntry assigns one of a user's saved recipes to a day of the week.
// Multiple entries per day are allowed.
type MealPlanEntry struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	UserID   uint   `json:"user_id"`
	RecipeID int    `gorm:"column:recipe_id" json:"recipe_id"`
	Day      string `json:"day"`
}

// TableName keeps the historical mealplan table name.
func (MealPlanEntry) TableName() string {
	return "user_mealplan"
}

// Days is the fixed weekday enumeration accepted by the meal planner.
var Days = []string{"Mon", "Tues", "Wed", "Thurs", "Fri", "Sat", "Sun"}

// ValidDay reports whether day is one of the seven accepted values.
func ValidDay(day string) bool {
	for _, d := range Days {
		if d == day {
			return true
		}
	}
	return false
}
