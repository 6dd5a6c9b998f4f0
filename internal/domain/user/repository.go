package user

import (
	"context"
)

type UserRepository interface {
	List(ctx context.Context, skip, limit int) ([]User, error)
	GetByID(ctx context.Context, id int64) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	Create(ctx context.Context, newUser User) (User, error)
	Update(ctx context.Context, updated User) (User, error)
	Delete(ctx context.Context, id int64) error
}
