package api

import (
	"net/http" // HTTP status codes
	"strconv"  // String conversion

	"mealplanner/internal/apperr"
	"mealplanner/internal/model"

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// CreateMealRequest adds one saved recipe to a weekday slot.
type CreateMealRequest struct {
	RecipeID int    `json:"recipe_id" binding:"required"` // Saved recipe to plan
	Day      string `json:"day" binding:"required"`       // Mon..Sun, validated by the model
}

// SetPointsRequest overwrites the user's points score.
type SetPointsRequest struct {
	Points *float64 `json:"points" binding:"required,gte=0"` // Non-negative; pointer so zero binds
}

// CreateMealHandler inserts a meal plan entry for one of the user's
// saved recipes
func CreateMealHandler(db *gorm.DB) gin.HandlerFunc {
	mealplans := model.NewMealPlanModel(db)
	return func(c *gin.Context) {
		id, ok := routeUserID(c)
		if !ok {
			return
		}
		var req CreateMealRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{
				"message": "Invalid request",
				"status":  http.StatusBadRequest,
			}})
			return
		}
		row, err := mealplans.Create(id, req.RecipeID, req.Day)
		if err != nil {
			respondErr(c, err)
			return
		}
		logrus.WithFields(logrus.Fields{
			"user_id":   id,
			"recipe_id": req.RecipeID,
			"day":       req.Day,
		}).Info("Meal planned")
		c.JSON(http.StatusCreated, gin.H{"mealplannerRow": row})
	}
}

// DeleteMealHandler deletes a single meal plan entry by id
func DeleteMealHandler(db *gorm.DB) gin.HandlerFunc {
	mealplans := model.NewMealPlanModel(db)
	return func(c *gin.Context) {
		mealID, err := strconv.ParseUint(c.Param("mealId"), 10, 32)
		if err != nil {
			respondErr(c, apperr.BadRequest("invalid meal id: %s", c.Param("mealId")))
			return
		}
		if err := mealplans.DeleteMeal(uint(mealID)); err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": mealID})
	}
}

// ClearMealsHandler deletes every meal plan entry for the user
func ClearMealsHandler(db *gorm.DB) gin.HandlerFunc {
	mealplans := model.NewMealPlanModel(db)
	return func(c *gin.Context) {
		id, ok := routeUserID(c)
		if !ok {
			return
		}
		if err := mealplans.DeleteUserMeals(id); err != nil {
			respondErr(c, err)
			return
		}
		logrus.WithFields(logrus.Fields{
			"user_id": id,
		}).Info("Meal plan cleared")
		c.Status(http.StatusNoContent)
	}
}

// SetPointsHandler overwrites the user's points
func SetPointsHandler(db *gorm.DB) gin.HandlerFunc {
	users := model.NewUserModel(db)
	return func(c *gin.Context) {
		id, ok := routeUserID(c)
		if !ok {
			return
		}
		var req SetPointsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{
				"message": "Points must be a non-negative number",
				"status":  http.StatusBadRequest,
			}})
			return
		}
		user, err := users.SetPoints(id, *req.Points)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": user.ID, "points": user.Points})
	}
}
