package model

import (
	"errors"

	"mealplanner/internal/apperr"
	"mealplanner/internal/domain"

	"golang.org/x/crypto/bcrypt" // Password hashing
	"gorm.io/gorm"               // GORM ORM library
)

// UserModel groups the user persistence operations.
type UserModel struct {
	db *gorm.DB
}

func NewUserModel(db *gorm.DB) *UserModel {
	return &UserModel{db: db}
}

// Authenticate looks a user up by username and verifies the password
// against the stored bcrypt hash. Returns the user with the hash
// stripped, or Unauthorized on an unknown username or a mismatch.
func (m *UserModel) Authenticate(username, password string) (*domain.User, error) {
	var user domain.User
	if err := m.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Unauthorized("invalid username/password")
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apperr.Unauthorized("invalid username/password")
	}
	user.Password = ""
	return &user, nil
}

// Register creates a new user with a hashed password. Fails with
// BadRequest when the username is already taken.
func (m *UserModel) Register(username, password string) (*domain.User, error) {
	var existing domain.User
	err := m.db.Where("username = ?", username).First(&existing).Error
	if err == nil {
		return nil, apperr.BadRequest("duplicate username: %s", username)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := domain.User{Username: username, Password: string(hash)}
	if err := m.db.Create(&user).Error; err != nil {
		// Duplicate insert racing past the check above still maps to BadRequest.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.BadRequest("duplicate username: %s", username)
		}
		return nil, err
	}
	user.Password = ""
	return &user, nil
}

// FindAll returns every user ordered by username, public fields only.
func (m *UserModel) FindAll() ([]domain.User, error) {
	var users []domain.User
	if err := m.db.Select("id", "username", "is_admin").Order("username").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Get returns a user's public fields plus points.
func (m *UserModel) Get(id uint) (*domain.User, error) {
	var user domain.User
	if err := m.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("no user: %d", id)
		}
		return nil, err
	}
	user.Password = ""
	return &user, nil
}

// SetPoints overwrites a user's points. There are no increment
// semantics; the supplied value replaces whatever was stored.
func (m *UserModel) SetPoints(id uint, points float64) (*domain.User, error) {
	res := m.db.Model(&domain.User{}).Where("id = ?", id).Update("points", points)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, apperr.NotFound("no user: %d", id)
	}
	return &domain.User{ID: id, Points: &points}, nil
}

// Remove deletes a user along with their saved recipes and meal plan
// entries in a single transaction.
func (m *UserModel) Remove(id uint) error {
	return m.db.Transaction(func(tx *gorm.DB) error {
		var user domain.User
		if err := tx.First(&user, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("no user: %d", id)
			}
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&domain.MealPlanEntry{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&domain.SavedRecipe{}).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
}
