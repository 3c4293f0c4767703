package repositories

import (
	"github.com/servired/backend/internal/models"
	"github.com/servired/backend/pkg/errors"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetUserByID retrieves a user by ID
func (r *UserRepository) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	result := r.db.First(&user, id)

	if result.Error == gorm.ErrRecordNotFound {
		return nil, errors.New(errors.ErrCodeNotFound, "user not found")
	}
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to get user")
	}

	return &user, nil
}

// GetUserByEmail retrieves a user by email
func (r *UserRepository) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	result := r.db.Where("email = ?", email).First(&user)

	if result.Error == gorm.ErrRecordNotFound {
		return nil, errors.New(errors.ErrCodeNotFound, "user not found")
	}
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to get user")
	}

	return &user, nil
}

// GetUsersByIDs retrieves users for a set of ids, keyed by id
func (r *UserRepository) GetUsersByIDs(ids []uint) (map[uint]models.User, error) {
	users := make(map[uint]models.User, len(ids))
	if len(ids) == 0 {
		return users, nil
	}

	var rows []models.User
	if err := r.db.Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to get users")
	}

	for _, u := range rows {
		users[u.ID] = u
	}
	return users, nil
}

// GetTechnicians retrieves all technician users ordered by rating
func (r *UserRepository) GetTechnicians() ([]models.User, error) {
	var technicians []models.User
	err := r.db.Where("role = ?", models.RoleTechnician).
		Order("rating DESC").
		Find(&technicians).Error

	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to get technicians")
	}
	return technicians, nil
}
