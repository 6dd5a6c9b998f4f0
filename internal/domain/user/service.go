package user

import "context"

// CreateOptions control the side effects of user creation. SendEmail mails
// the new account its credentials; WelcomeLetter names a letter type to
// generate alongside the account.
type CreateOptions struct {
	SendEmail     bool
	WelcomeLetter string
}

type UserService interface {
	List(ctx context.Context, skip, limit int) ([]Response, error)
	Get(ctx context.Context, id int64) (Response, error)
	Create(ctx context.Context, req CreateUserRequest, opts CreateOptions, createdBy int64) (Response, error)
	Update(ctx context.Context, id int64, req UpdateUserRequest) (Response, error)
	Delete(ctx context.Context, id int64) error
}
