package api

import (
	"net/http" // HTTP status codes

	"mealplanner/internal/domain"
	"mealplanner/internal/model"

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// UserResponse is the composite user document the front-end builds its
// current-user state from: account fields plus the full meal plan and
// saved recipe set.
type UserResponse struct {
	ID       uint                `json:"id"`
	Username string              `json:"username"`
	Points   *float64            `json:"points"`
	MealPlan []model.MealPlanRow `json:"mealplan"`
	Recipes  []domain.Recipe     `json:"recipes"`
}

// ListUsersHandler returns all users ordered by username. Admin only.
func ListUsersHandler(db *gorm.DB) gin.HandlerFunc {
	users := model.NewUserModel(db)
	return func(c *gin.Context) {
		all, err := users.FindAll()
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"users": all})
	}
}

// GetUserHandler composes the user's account, meal plan and saved
// recipes into one response
func GetUserHandler(db *gorm.DB) gin.HandlerFunc {
	users := model.NewUserModel(db)
	mealplans := model.NewMealPlanModel(db)
	recipes := model.NewRecipeModel(db)
	return func(c *gin.Context) {
		id, ok := routeUserID(c)
		if !ok {
			return
		}
		user, err := users.Get(id)
		if err != nil {
			respondErr(c, err)
			return
		}
		plan, err := mealplans.Get(id)
		if err != nil {
			respondErr(c, err)
			return
		}
		saved, err := recipes.GetRecipes(id)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": UserResponse{
			ID:       user.ID,
			Username: user.Username,
			Points:   user.Points,
			MealPlan: plan,
			Recipes:  saved,
		}})
	}
}

// DeleteUserHandler removes the user and everything they own
func DeleteUserHandler(db *gorm.DB) gin.HandlerFunc {
	users := model.NewUserModel(db)
	return func(c *gin.Context) {
		id, ok := routeUserID(c)
		if !ok {
			return
		}
		if err := users.Remove(id); err != nil {
			respondErr(c, err)
			return
		}
		logrus.WithFields(logrus.Fields{
			"user_id": id,
		}).Info("User deleted")
		c.Status(http.StatusNoContent)
	}
}
