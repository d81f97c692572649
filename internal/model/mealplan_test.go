package model

import (
	"net/http"
	"testing"

	"mealplanner/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMealPlan(t *testing.T) {
	db := newTestDB(t)
	user1, _ := seed(t, db)
	mealplans := NewMealPlanModel(db)

	row, err := mealplans.Create(user1.ID, 1111, "Fri")
	require.NoError(t, err)
	assert.NotZero(t, row.ID)
	assert.Equal(t, 1111, row.RecipeID)
	assert.Equal(t, "Fri", row.Day)
	assert.Equal(t, "fish stew", row.Name)
	assert.Equal(t, 19, row.WWPoints)
}

func TestCreateMealPlanInvalidDay(t *testing.T) {
	db := newTestDB(t)
	user1, _ := seed(t, db)
	mealplans := NewMealPlanModel(db)

	for _, day := range []string{"Monday", "mon", "Tue", "Funday", ""} {
		_, err := mealplans.Create(user1.ID, 1111, day)
		requireStatus(t, err, http.StatusBadRequest)
	}
}

func TestCreateMealPlanUnknownUser(t *testing.T) {
	db := newTestDB(t)
	seed(t, db)
	mealplans := NewMealPlanModel(db)

	_, err := mealplans.Create(9999, 1111, "Mon")
	requireStatus(t, err, http.StatusNotFound)
}

func TestCreateMealPlanUnsavedRecipe(t *testing.T) {
	db := newTestDB(t)
	user1, _ := seed(t, db)
	mealplans := NewMealPlanModel(db)

	_, err := mealplans.Create(user1.ID, 4444, "Mon")
	requireStatus(t, err, http.StatusNotFound)
}

func TestCreateMealPlanRecipeSavedByOtherUserOnly(t *testing.T) {
	db := newTestDB(t)
	_, user2 := seed(t, db)
	mealplans := NewMealPlanModel(db)

	// 1111 is in the catalog but only user1 saved it. The saved-set
	// check is scoped to the acting user.
	_, err := mealplans.Create(user2.ID, 1111, "Mon")
	requireStatus(t, err, http.StatusNotFound)
}

func TestGetMealPlanOrdering(t *testing.T) {
	db := newTestDB(t)
	user1, _ := seed(t, db)
	mealplans := NewMealPlanModel(db)

	rows, err := mealplans.Get(user1.ID)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	for i := 1; i < len(rows); i++ {
		assert.Greater(t, rows[i].ID, rows[i-1].ID, "entries must be ordered by id ascending")
	}
	assert.Equal(t, "Mon", rows[0].Day)
	assert.Equal(t, "fish stew", rows[0].Name)
	assert.Equal(t, 19, rows[0].WWPoints)
}

func TestGetMealPlanUnknownUser(t *testing.T) {
	db := newTestDB(t)
	seed(t, db)
	mealplans := NewMealPlanModel(db)

	_, err := mealplans.Get(9999)
	requireStatus(t, err, http.StatusNotFound)
}

func TestDeleteMeal(t *testing.T) {
	db := newTestDB(t)
	user1, _ := seed(t, db)
	mealplans := NewMealPlanModel(db)

	rows, err := mealplans.Get(user1.ID)
	require.NoError(t, err)
	require.NotEmpty(t, rows)

	require.NoError(t, mealplans.DeleteMeal(rows[0].ID))

	after, err := mealplans.Get(user1.ID)
	require.NoError(t, err)
	assert.Len(t, after, len(rows)-1)

	err = mealplans.DeleteMeal(rows[0].ID)
	requireStatus(t, err, http.StatusNotFound)
}

func TestDeleteUserMeals(t *testing.T) {
	db := newTestDB(t)
	user1, _ := seed(t, db)
	mealplans := NewMealPlanModel(db)

	require.NoError(t, mealplans.DeleteUserMeals(user1.ID))

	rows, err := mealplans.Get(user1.ID)
	require.NoError(t, err)
	assert.Empty(t, rows)

	// Bulk clear with nothing left is still success.
	require.NoError(t, mealplans.DeleteUserMeals(user1.ID))
}

func TestDeleteUserMealsUnknownUser(t *testing.T) {
	db := newTestDB(t)
	seed(t, db)
	mealplans := NewMealPlanModel(db)

	err := mealplans.DeleteUserMeals(9999)
	requireStatus(t, err, http.StatusNotFound)
}

// Full round trip: save a recipe, see it in the saved set, plan it,
// then delete the entry.
func TestSaveSearchPlanDeleteScenario(t *testing.T) {
	db := newTestDB(t)
	users := NewUserModel(db)
	recipes := NewRecipeModel(db)
	mealplans := NewMealPlanModel(db)

	userA, err := users.Register("usera", "secret5")
	require.NoError(t, err)

	_, err = recipes.SaveRecipe(userA.ID, "bacon", 1234, 10)
	require.NoError(t, err)

	saved, err := recipes.GetRecipes(userA.ID)
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, domain.Recipe{RecipeID: 1234, Name: "bacon", WWPoints: 10}, saved[0])

	row, err := mealplans.Create(userA.ID, 1234, "Mon")
	require.NoError(t, err)
	assert.Equal(t, "Mon", row.Day)
	assert.Equal(t, 1234, row.RecipeID)

	require.NoError(t, mealplans.DeleteMeal(row.ID))

	rows, err := mealplans.Get(userA.ID)
	require.NoError(t, err)
	assert.Empty(t, rows)
}
