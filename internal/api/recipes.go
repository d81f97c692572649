package api

import (
	"encoding/json"
	"net/http" // HTTP status codes
	"strconv"  // String conversion
	"strings"

	"mealplanner/internal/apperr"
	"mealplanner/internal/model"
	"mealplanner/internal/spoonacular"

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// SaveRecipeRequest mirrors the provider's recipe document fields the
// front-end forwards when saving a search result.
type SaveRecipeRequest struct {
	ID       int    `json:"id" binding:"required"`    // Provider recipe id
	Title    string `json:"title" binding:"required"` // Recipe name
	WWPoints int    `json:"weightWatcherSmartPoints"` // Points score, may be zero
}

// GetRecipesHandler returns all recipes saved by the user
func GetRecipesHandler(db *gorm.DB) gin.HandlerFunc {
	recipes := model.NewRecipeModel(db)
	return func(c *gin.Context) {
		id, ok := routeUserID(c)
		if !ok {
			return
		}
		saved, err := recipes.GetRecipes(id)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"recipes": saved})
	}
}

// SaveRecipeHandler adds a recipe to the user's saved set, creating the
// shared catalog row if this is the first save anywhere
func SaveRecipeHandler(db *gorm.DB) gin.HandlerFunc {
	recipes := model.NewRecipeModel(db)
	return func(c *gin.Context) {
		id, ok := routeUserID(c)
		if !ok {
			return
		}
		var req SaveRecipeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{
				"message": "Invalid request",
				"status":  http.StatusBadRequest,
			}})
			return
		}
		saved, err := recipes.SaveRecipe(id, req.Title, req.ID, req.WWPoints)
		if err != nil {
			respondErr(c, err)
			return
		}
		logrus.WithFields(logrus.Fields{
			"user_id":   id,
			"recipe_id": req.ID,
		}).Info("Recipe saved")
		c.JSON(http.StatusCreated, gin.H{"savedRecipe": saved})
	}
}

// DeleteRecipeHandler removes a recipe from the user's saved set and
// purges it from their meal plan
func DeleteRecipeHandler(db *gorm.DB) gin.HandlerFunc {
	recipes := model.NewRecipeModel(db)
	return func(c *gin.Context) {
		id, ok := routeUserID(c)
		if !ok {
			return
		}
		recipeID, err := strconv.Atoi(c.Param("recipeId"))
		if err != nil {
			respondErr(c, apperr.BadRequest("invalid recipe id: %s", c.Param("recipeId")))
			return
		}
		if err := recipes.Remove(recipeID, id); err != nil {
			respondErr(c, err)
			return
		}
		logrus.WithFields(logrus.Fields{
			"user_id":   id,
			"recipe_id": recipeID,
		}).Info("Recipe removed")
		c.JSON(http.StatusOK, gin.H{"deletedRecipe": gin.H{"recipe_id": recipeID}})
	}
}

// ComplexSearchHandler proxies an ingredient search to the provider.
// Ingredients arrive as repeated query parameters (plain or bracket key,
// clients serialize arrays both ways) or one comma-separated value;
// nutrient filters as a JSON object in nutrientObj, of which only the
// non-empty entries are forwarded.
func ComplexSearchHandler(client *spoonacular.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ingredients := c.QueryArray("ingredients")
		ingredients = append(ingredients, c.QueryArray("ingredients[]")...)
		if len(ingredients) == 1 && strings.Contains(ingredients[0], ",") {
			ingredients = strings.Split(ingredients[0], ",")
		}
		if len(ingredients) == 0 {
			respondErr(c, apperr.BadRequest("Must have at least one ingredient chosen"))
			return
		}

		nutrients := map[string]string{}
		if raw := c.Query("nutrientObj"); raw != "" {
			var parsed map[string]any
			if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
				respondErr(c, apperr.BadRequest("nutrientObj is not valid JSON"))
				return
			}
			// Untouched form fields come through as null or blank strings.
			for k, v := range parsed {
				switch val := v.(type) {
				case string:
					if val != "" {
						nutrients[k] = val
					}
				case float64:
					nutrients[k] = strconv.FormatFloat(val, 'f', -1, 64)
				}
			}
		}

		result, err := client.ComplexSearch(c.Request.Context(), ingredients, nutrients)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.Data(http.StatusOK, "application/json", result)
	}
}

// RecipeDetailHandler merges the provider's recipe information and
// nutrition documents into one response
func RecipeDetailHandler(client *spoonacular.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		recipeID, err := strconv.Atoi(c.Query("recipeId"))
		if err != nil {
			respondErr(c, apperr.BadRequest("recipeId must be a number"))
			return
		}
		recipe, err := client.Information(c.Request.Context(), recipeID)
		if err != nil {
			respondErr(c, err)
			return
		}
		nutrition, err := client.Nutrition(c.Request.Context(), recipeID)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"recipe":    recipe,
			"nutrition": nutrition,
		})
	}
}
