package auth

import (
	"context"

	"github.com/campushr/letters-backend-go/internal/domain/user"
)

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	Me(ctx context.Context, userID int64) (user.Response, error)
}
