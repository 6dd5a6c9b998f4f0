package user

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/campushr/letters-backend-go/internal/domain/emaillog"
	"github.com/campushr/letters-backend-go/internal/domain/letter"
	"github.com/campushr/letters-backend-go/internal/domain/user"
	"github.com/campushr/letters-backend-go/internal/pkg/database"
	"github.com/campushr/letters-backend-go/internal/pkg/email"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

type UserServiceImpl struct {
	userRepo      user.UserRepository
	emailLogRepo  emaillog.EmailLogRepository
	emailService  email.EmailService
	letterService letter.LetterService
	tx            database.Transactor
}

func NewUserService(
	userRepo user.UserRepository,
	emailLogRepo emaillog.EmailLogRepository,
	emailService email.EmailService,
	letterService letter.LetterService,
	tx database.Transactor,
) user.UserService {
	return &UserServiceImpl{
		userRepo:      userRepo,
		emailLogRepo:  emailLogRepo,
		emailService:  emailService,
		letterService: letterService,
		tx:            tx,
	}
}

// List implements user.UserService.
func (s *UserServiceImpl) List(ctx context.Context, skip, limit int) ([]user.Response, error) {
	users, err := s.userRepo.List(ctx, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return user.NewListResponse(users), nil
}

// Get implements user.UserService.
func (s *UserServiceImpl) Get(ctx context.Context, id int64) (user.Response, error) {
	found, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.Response{}, user.ErrUserNotFound
		}
		return user.Response{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	return user.NewResponse(found), nil
}

// Create implements user.UserService.
func (s *UserServiceImpl) Create(ctx context.Context, req user.CreateUserRequest, opts user.CreateOptions, createdBy int64) (user.Response, error) {
	if err := req.Validate(); err != nil {
		return user.Response{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.Response{}, fmt.Errorf("failed to hash password: %w", err)
	}

	role := user.RoleUser
	if req.Role != "" {
		role = user.Role(req.Role)
	}

	newUser := user.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		FullName:     req.FullName,
		Role:         role,
		EmployeeID:   req.EmployeeID,
		Department:   req.Department,
		Designation:  req.Designation,
	}
	if req.JoiningDate != nil && *req.JoiningDate != "" {
		d, err := time.Parse("2006-01-02", *req.JoiningDate)
		if err != nil {
			return user.Response{}, fmt.Errorf("invalid joining_date: %w", err)
		}
		newUser.JoiningDate = &d
	}

	// The uniqueness check and the insert run in one transaction so a
	// concurrent create with the same username or email cannot slip
	// between them.
	var created user.User
	txErr := s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		exists, err := s.userRepo.ExistsByUsernameOrEmail(txCtx, req.Username, req.Email)
		if err != nil {
			return fmt.Errorf("failed to check user existence: %w", err)
		}
		if exists {
			return user.ErrUsernameOrEmailExists
		}

		created, err = s.userRepo.Create(txCtx, newUser)
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		return nil
	})
	if txErr != nil {
		return user.Response{}, txErr
	}

	if opts.SendEmail {
		// Credentials email carries the plain password from the request;
		// failures are logged, never fatal to the create.
		s.sendCredentials(ctx, created, req.Password, opts.WelcomeLetter, createdBy)
	}

	return user.NewResponse(created), nil
}

func (s *UserServiceImpl) sendCredentials(ctx context.Context, created user.User, plainPassword, welcomeLetter string, createdBy int64) {
	var letterURL *string
	var letterID *int64

	if welcomeLetter != "" {
		generated, err := s.letterService.GenerateWelcome(ctx, created.ID, letter.Type(welcomeLetter), createdBy)
		if err != nil {
			slog.Warn("Failed to generate welcome letter", "user_id", created.ID, "letter_type", welcomeLetter, "error", err)
		} else {
			letterURL = generated.DocumentURL
			letterID = &generated.ID
		}
	}

	sendErr := s.emailService.SendUserCredentials(created.Email, created.FullName, created.Username, plainPassword, letterURL)

	logStatus := emaillog.StatusSent
	if sendErr != nil {
		logStatus = emaillog.StatusFailed
		slog.Warn("Credentials email failed", "user_id", created.ID, "to", created.Email, "error", sendErr)
	}
	if _, err := s.emailLogRepo.Create(ctx, emaillog.EmailLog{
		LetterID:       letterID,
		RecipientEmail: created.Email,
		Subject:        "Your HR Console Account",
		Status:         logStatus,
	}); err != nil {
		slog.Warn("Failed to record email log", "user_id", created.ID, "error", err)
	}
}

// Update implements user.UserService.
func (s *UserServiceImpl) Update(ctx context.Context, id int64, req user.UpdateUserRequest) (user.Response, error) {
	if err := req.Validate(); err != nil {
		return user.Response{}, err
	}

	existing, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.Response{}, user.ErrUserNotFound
		}
		return user.Response{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	if req.Username != nil {
		existing.Username = *req.Username
	}
	if req.Email != nil {
		existing.Email = *req.Email
	}
	if req.FullName != nil {
		existing.FullName = *req.FullName
	}
	if req.Role != nil {
		existing.Role = user.Role(*req.Role)
	}
	if req.EmployeeID != nil {
		existing.EmployeeID = req.EmployeeID
	}
	if req.Department != nil {
		existing.Department = req.Department
	}
	if req.Designation != nil {
		existing.Designation = req.Designation
	}
	if req.JoiningDate != nil {
		if *req.JoiningDate == "" {
			existing.JoiningDate = nil
		} else {
			d, err := time.Parse("2006-01-02", *req.JoiningDate)
			if err != nil {
				return user.Response{}, fmt.Errorf("invalid joining_date: %w", err)
			}
			existing.JoiningDate = &d
		}
	}

	updated, err := s.userRepo.Update(ctx, existing)
	if err != nil {
		return user.Response{}, fmt.Errorf("failed to update user: %w", err)
	}
	return user.NewResponse(updated), nil
}

// Delete implements user.UserService.
func (s *UserServiceImpl) Delete(ctx context.Context, id int64) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		if err == user.ErrUserNotFound {
			return err
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
