package api

import (
	"time"

	"mealplanner/internal/middleware" // Custom package for middleware
	"mealplanner/internal/spoonacular"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library
)

// NewRouter wires every route. The auth routes are public; everything
// else sits behind the JWT middleware, with the owner guard comparing
// the token identity to the :id route parameter.
func NewRouter(db *gorm.DB, client *spoonacular.Client, jwtSecret string) *gin.Engine {
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
		MaxAge:       12 * time.Hour,
	}))

	// Auth routes
	auth := r.Group("/auth")
	auth.POST("/register", RegisterHandler(db, jwtSecret))
	auth.POST("/token", LoginHandler(db, jwtSecret))

	// User routes (protected by JWT)
	users := r.Group("/users")
	users.Use(middleware.JWTAuthMiddleware(jwtSecret))
	users.GET("", middleware.AdminOnly(), ListUsersHandler(db))
	users.GET("/:id", middleware.EnsureCorrectUser(), GetUserHandler(db))
	users.DELETE("/:id", middleware.EnsureCorrectUser(), DeleteUserHandler(db))

	// Recipe routes: saved set plus the provider proxy endpoints
	recipes := r.Group("/recipes")
	recipes.Use(middleware.JWTAuthMiddleware(jwtSecret), middleware.EnsureCorrectUser())
	recipes.GET("/complex/:id", ComplexSearchHandler(client))
	recipes.GET("/detail/:id", RecipeDetailHandler(client))
	recipes.GET("/:id", GetRecipesHandler(db))
	recipes.POST("/:id", SaveRecipeHandler(db))
	recipes.DELETE("/:id/:recipeId", DeleteRecipeHandler(db))

	// Meal plan routes
	meals := r.Group("/meals")
	meals.Use(middleware.JWTAuthMiddleware(jwtSecret), middleware.EnsureCorrectUser())
	meals.POST("/:id", CreateMealHandler(db))
	meals.DELETE("/:id/:mealId", DeleteMealHandler(db))
	meals.DELETE("/:id", ClearMealsHandler(db))
	meals.PATCH("/:id", SetPointsHandler(db))

	return r
}
