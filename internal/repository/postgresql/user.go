package postgresql

import (
	"context"

	"github.com/campushr/letters-backend-go/internal/domain/user"
	"github.com/campushr/letters-backend-go/internal/pkg/database"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

const userColumns = `id, username, email, password_hash, full_name, role, employee_id,
			   department, designation, joining_date, created_at, updated_at`

func scanUser(row interface {
	Scan(dest ...interface{}) error
}) (user.User, error) {
	var found user.User
	err := row.Scan(
		&found.ID,
		&found.Username,
		&found.Email,
		&found.PasswordHash,
		&found.FullName,
		&found.Role,
		&found.EmployeeID,
		&found.Department,
		&found.Designation,
		&found.JoiningDate,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	return found, err
}

// List implements user.UserRepository.
func (r *userRepositoryImpl) List(ctx context.Context, skip, limit int) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + userColumns + `
		FROM users
		ORDER BY id
		OFFSET $1 LIMIT $2
	`

	rows, err := q.Query(ctx, query, skip, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		found, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, found)
	}
	return users, rows.Err()
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id int64) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1
	`

	found, err := scanUser(q.QueryRow(ctx, query, id))
	if err != nil {
		return user.User{}, err
	}
	return found, nil
}

// GetByUsername implements user.UserRepository.
func (r *userRepositoryImpl) GetByUsername(ctx context.Context, username string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE username = $1
	`

	found, err := scanUser(q.QueryRow(ctx, query, username))
	if err != nil {
		return user.User{}, err
	}
	return found, nil
}

// ExistsByUsernameOrEmail implements user.UserRepository.
func (r *userRepositoryImpl) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT EXISTS(SELECT 1 FROM users WHERE username = $1 OR email = $2)`

	var exists bool
	err := q.QueryRow(ctx, query, username, email).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (
			username, email, password_hash, full_name, role,
			employee_id, department, designation, joining_date
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + userColumns + `
	`

	created, err := scanUser(q.QueryRow(ctx, query,
		newUser.Username,
		newUser.Email,
		newUser.PasswordHash,
		newUser.FullName,
		newUser.Role,
		newUser.EmployeeID,
		newUser.Department,
		newUser.Designation,
		newUser.JoiningDate,
	))
	if err != nil {
		return user.User{}, err
	}
	return created, nil
}

// Update implements user.UserRepository.
func (r *userRepositoryImpl) Update(ctx context.Context, updated user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET username = $1, email = $2, full_name = $3, role = $4,
			employee_id = $5, department = $6, designation = $7,
			joining_date = $8, updated_at = NOW()
		WHERE id = $9
		RETURNING ` + userColumns + `
	`

	result, err := scanUser(q.QueryRow(ctx, query,
		updated.Username,
		updated.Email,
		updated.FullName,
		updated.Role,
		updated.EmployeeID,
		updated.Department,
		updated.Designation,
		updated.JoiningDate,
		updated.ID,
	))
	if err != nil {
		return user.User{}, err
	}
	return result, nil
}

// Delete implements user.UserRepository.
func (r *userRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}
