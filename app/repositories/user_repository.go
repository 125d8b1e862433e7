package repositories

import (
	"github.com/shashiranjanraj/voltkart/app/models"
	"github.com/shashiranjanraj/voltkart/pkg/orm"
)

// UserRepository handles database operations for User.
type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// FindByUsername looks up a user by their login name.
func (r *UserRepository) FindByUsername(username string) (models.User, error) {
	var user models.User
	err := orm.DB().Model(&models.User{}).Where("username = ?", username).First(&user)
	return user, err
}

// FindByID looks up a user by primary key.
func (r *UserRepository) FindByID(id uint) (models.User, error) {
	var user models.User
	err := orm.DB().Model(&models.User{}).Where("id = ?", id).First(&user)
	return user, err
}

// UsernameTaken reports whether a username is already in use.
func (r *UserRepository) UsernameTaken(username string) (bool, error) {
	n, err := orm.DB().Model(&models.User{}).Where("username = ?", username).Count()
	return n > 0, err
}

// Create persists a new user record.
func (r *UserRepository) Create(user *models.User) error {
	return orm.DB().Create(user)
}

// Update persists changes to an existing user.
func (r *UserRepository) Update(user *models.User) error {
	return orm.DB().Save(user)
}

// Delete removes a user and reports whether a row existed.
func (r *UserRepository) Delete(id uint) (bool, error) {
	n, err := orm.DB().Where("id = ?", id).Delete(&models.User{})
	return n > 0, err
}

// Customers returns one page of non-admin accounts, newest first.
func (r *UserRepository) Customers(page, perPage int) ([]models.User, orm.Pagination, error) {
	var users []models.User
	p, err := orm.DB().Model(&models.User{}).
		Where("role <> ?", models.RoleAdmin).
		Order("created_at desc").
		Paginate(page, perPage, &users)
	return users, p, err
}
