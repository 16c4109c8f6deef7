package users

import (
	"fmt"

	"assettrack/internal/repository"
	custom_error "assettrack/pkg/errors"
	"assettrack/pkg/models"

	"github.com/doug-martin/goqu/v9"
	"github.com/lib/pq"
)

type UserRepository interface {
	PersistUser(req models.CreateUserRequest, hashedPassword []byte) (*models.User, error)
	GetUser(id int) (*models.User, error)
	GetUsers() ([]models.User, error)
	UsernameExists(username string) (bool, error)
	UpdateUser(userID int, record goqu.Record) error
}

type userRepositoryImpl struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) UserRepository {
	return &userRepositoryImpl{repository: r}
}

func (r *userRepositoryImpl) PersistUser(req models.CreateUserRequest, hashedPassword []byte) (*models.User, error) {
	var userID int
	query := r.repository.GoquDBWrapper.Insert("users").
		Rows(goqu.Record{
			"username":      req.Username,
			"fullname":      req.Fullname,
			"password_hash": string(hashedPassword),
		}).
		Returning("id")

	if _, err := query.Executor().ScanVal(&userID); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, custom_error.WrapDBError("Username already taken", string(pqErr.Code))
		}
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	return r.GetUser(userID)
}

func (r *userRepositoryImpl) GetUsers() ([]models.User, error) {
	var users []models.User
	query := r.repository.GoquDBWrapper.
		Select("id", "username", "fullname", "created_at", "last_login_at").
		From("users").
		Order(goqu.I("username").Asc())

	if err := query.Executor().ScanStructs(&users); err != nil {
		return nil, fmt.Errorf("error executing SQL statement: %w", err)
	}

	return users, nil
}

func (r *userRepositoryImpl) GetUser(id int) (*models.User, error) {
	var user models.User
	query := r.repository.GoquDBWrapper.
		Select("id", "username", "fullname", "password_hash", "created_at", "last_login_at").
		From("users").
		Where(goqu.Ex{"id": id})

	found, err := query.Executor().ScanStruct(&user)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if !found {
		return nil, nil
	}

	return &user, nil
}

func (r *userRepositoryImpl) UsernameExists(username string) (bool, error) {
	var count int
	query := r.repository.GoquDBWrapper.
		Select(goqu.COUNT("*")).
		From("users").
		Where(goqu.Ex{"username": username})

	if _, err := query.Executor().ScanVal(&count); err != nil {
		return false, fmt.Errorf("failed to check username: %w", err)
	}

	return count > 0, nil
}

func (r *userRepositoryImpl) UpdateUser(userID int, record goqu.Record) error {
	result, err := r.repository.GoquDBWrapper.
		Update("users").
		Set(record).
		Where(goqu.Ex{"id": userID}).
		Executor().
		Exec()

	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("no user found with id: %d", userID)
	}

	return nil
}
