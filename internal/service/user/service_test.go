package user

import (
	"context"
	"testing"

	"github.com/campushr/letters-backend-go/internal/domain/emaillog"
	"github.com/campushr/letters-backend-go/internal/domain/letter"
	"github.com/campushr/letters-backend-go/internal/domain/user"
	"github.com/campushr/letters-backend-go/internal/pkg/validator"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) List(ctx context.Context, skip, limit int) ([]user.User, error) {
	args := m.Called(ctx, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]user.User), args.Error(1)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (user.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (user.User, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *mockUserRepo) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	args := m.Called(ctx, username, email)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepo) Create(ctx context.Context, newUser user.User) (user.User, error) {
	args := m.Called(ctx, newUser)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *mockUserRepo) Update(ctx context.Context, updated user.User) (user.User, error) {
	args := m.Called(ctx, updated)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *mockUserRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockEmailLogRepo struct{ mock.Mock }

func (m *mockEmailLogRepo) Create(ctx context.Context, log emaillog.EmailLog) (emaillog.EmailLog, error) {
	args := m.Called(ctx, log)
	return args.Get(0).(emaillog.EmailLog), args.Error(1)
}

func (m *mockEmailLogRepo) ListByLetter(ctx context.Context, letterID int64) ([]emaillog.EmailLog, error) {
	args := m.Called(ctx, letterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]emaillog.EmailLog), args.Error(1)
}

type mockEmailService struct{ mock.Mock }

func (m *mockEmailService) SendUserCredentials(to, fullName, username, password string, letterURL *string) error {
	args := m.Called(to, fullName, username, password, letterURL)
	return args.Error(0)
}

func (m *mockEmailService) SendLetterNotification(to, fullName, letterType, letterURL string) error {
	args := m.Called(to, fullName, letterType, letterURL)
	return args.Error(0)
}

type mockLetterService struct{ mock.Mock }

func (m *mockLetterService) List(ctx context.Context, skip, limit int) ([]letter.Response, error) {
	args := m.Called(ctx, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]letter.Response), args.Error(1)
}

func (m *mockLetterService) Generate(ctx context.Context, req letter.GenerateLetterRequest, opts letter.GenerateOptions, generatedBy int64) (letter.Response, error) {
	args := m.Called(ctx, req, opts, generatedBy)
	return args.Get(0).(letter.Response), args.Error(1)
}

func (m *mockLetterService) GenerateWelcome(ctx context.Context, subjectID int64, letterType letter.Type, generatedBy int64) (letter.Response, error) {
	args := m.Called(ctx, subjectID, letterType, generatedBy)
	return args.Get(0).(letter.Response), args.Error(1)
}

// passthroughTransactor runs fn directly and counts invocations.
type passthroughTransactor struct{ calls int }

func (t *passthroughTransactor) WithinTransaction(ctx context.Context, fn func(txCtx context.Context) error) error {
	t.calls++
	return fn(ctx)
}

type userServiceMocks struct {
	userRepo      *mockUserRepo
	emailLogRepo  *mockEmailLogRepo
	emailService  *mockEmailService
	letterService *mockLetterService
	tx            *passthroughTransactor
}

func newUserService() (user.UserService, *userServiceMocks) {
	m := &userServiceMocks{
		userRepo:      new(mockUserRepo),
		emailLogRepo:  new(mockEmailLogRepo),
		emailService:  new(mockEmailService),
		letterService: new(mockLetterService),
		tx:            new(passthroughTransactor),
	}
	svc := NewUserService(m.userRepo, m.emailLogRepo, m.emailService, m.letterService, m.tx)
	return svc, m
}

func validCreateRequest() user.CreateUserRequest {
	return user.CreateUserRequest{
		Username: "jdoe",
		Email:    "jdoe@university.edu",
		Password: "s3cret-pass",
		FullName: "Jane Doe",
	}
}

func TestCreate_InvalidRequest(t *testing.T) {
	svc, m := newUserService()

	_, err := svc.Create(context.Background(), user.CreateUserRequest{Username: "jd"}, user.CreateOptions{}, 1)

	var valErrs validator.ValidationErrors
	require.ErrorAs(t, err, &valErrs)
	m.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreate_DuplicateUsernameOrEmail(t *testing.T) {
	svc, m := newUserService()
	m.userRepo.On("ExistsByUsernameOrEmail", mock.Anything, "jdoe", "jdoe@university.edu").Return(true, nil)

	_, err := svc.Create(context.Background(), validCreateRequest(), user.CreateOptions{}, 1)

	assert.ErrorIs(t, err, user.ErrUsernameOrEmailExists)
	m.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreate_HashesPasswordAndDefaultsRole(t *testing.T) {
	svc, m := newUserService()
	m.userRepo.On("ExistsByUsernameOrEmail", mock.Anything, mock.Anything, mock.Anything).Return(false, nil)
	m.userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u user.User) bool {
		return u.Role == user.RoleUser &&
			u.PasswordHash != "" &&
			u.PasswordHash != "s3cret-pass"
	})).Return(user.User{ID: 1, Username: "jdoe", Email: "jdoe@university.edu", FullName: "Jane Doe", Role: user.RoleUser}, nil)

	resp, err := svc.Create(context.Background(), validCreateRequest(), user.CreateOptions{}, 1)

	require.NoError(t, err)
	assert.Equal(t, "jdoe", resp.Username)
	m.emailService.AssertNotCalled(t, "SendUserCredentials", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCreate_ChecksAndInsertsInOneTransaction(t *testing.T) {
	svc, m := newUserService()
	m.userRepo.On("ExistsByUsernameOrEmail", mock.Anything, mock.Anything, mock.Anything).Return(false, nil)
	m.userRepo.On("Create", mock.Anything, mock.Anything).
		Return(user.User{ID: 1, Username: "jdoe", Role: user.RoleUser}, nil)

	_, err := svc.Create(context.Background(), validCreateRequest(), user.CreateOptions{}, 1)

	require.NoError(t, err)
	assert.Equal(t, 1, m.tx.calls)
	m.userRepo.AssertExpectations(t)
}

func TestCreate_TransactionFailureSurfaces(t *testing.T) {
	svc, m := newUserService()
	m.userRepo.On("ExistsByUsernameOrEmail", mock.Anything, mock.Anything, mock.Anything).Return(false, assert.AnError)

	_, err := svc.Create(context.Background(), validCreateRequest(), user.CreateOptions{}, 1)

	assert.ErrorIs(t, err, assert.AnError)
	m.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreate_SendEmailWithWelcomeLetter(t *testing.T) {
	svc, m := newUserService()
	created := user.User{ID: 9, Username: "jdoe", Email: "jdoe@university.edu", FullName: "Jane Doe", Role: user.RoleUser}
	docURL := "http://localhost/uploads/letters/w.txt"

	m.userRepo.On("ExistsByUsernameOrEmail", mock.Anything, mock.Anything, mock.Anything).Return(false, nil)
	m.userRepo.On("Create", mock.Anything, mock.Anything).Return(created, nil)
	m.letterService.On("GenerateWelcome", mock.Anything, int64(9), letter.TypeAppointment, int64(1)).
		Return(letter.Response{ID: 20, DocumentURL: &docURL}, nil)
	m.emailService.On("SendUserCredentials", "jdoe@university.edu", "Jane Doe", "jdoe", "s3cret-pass", &docURL).Return(nil)
	m.emailLogRepo.On("Create", mock.Anything, mock.MatchedBy(func(l emaillog.EmailLog) bool {
		return l.Status == emaillog.StatusSent && l.LetterID != nil && *l.LetterID == 20
	})).Return(emaillog.EmailLog{ID: 1}, nil)

	_, err := svc.Create(context.Background(), validCreateRequest(), user.CreateOptions{
		SendEmail:     true,
		WelcomeLetter: "appointment_letter",
	}, 1)

	require.NoError(t, err)
	m.letterService.AssertExpectations(t)
	m.emailService.AssertExpectations(t)
}

func TestCreate_WelcomeLetterFailureStillSendsCredentials(t *testing.T) {
	svc, m := newUserService()
	created := user.User{ID: 9, Username: "jdoe", Email: "jdoe@university.edu", FullName: "Jane Doe"}

	m.userRepo.On("ExistsByUsernameOrEmail", mock.Anything, mock.Anything, mock.Anything).Return(false, nil)
	m.userRepo.On("Create", mock.Anything, mock.Anything).Return(created, nil)
	m.letterService.On("GenerateWelcome", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(letter.Response{}, assert.AnError)
	m.emailService.On("SendUserCredentials", mock.Anything, mock.Anything, mock.Anything, mock.Anything, (*string)(nil)).Return(nil)
	m.emailLogRepo.On("Create", mock.Anything, mock.Anything).Return(emaillog.EmailLog{}, nil)

	_, err := svc.Create(context.Background(), validCreateRequest(), user.CreateOptions{
		SendEmail:     true,
		WelcomeLetter: "appointment_letter",
	}, 1)

	require.NoError(t, err)
	m.emailService.AssertExpectations(t)
}

func TestGet_NotFound(t *testing.T) {
	svc, m := newUserService()
	m.userRepo.On("GetByID", mock.Anything, int64(5)).Return(user.User{}, pgx.ErrNoRows)

	_, err := svc.Get(context.Background(), 5)
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestUpdate_AppliesOnlyProvidedFields(t *testing.T) {
	svc, m := newUserService()
	existing := user.User{ID: 5, Username: "jdoe", Email: "old@university.edu", FullName: "Jane Doe", Role: user.RoleUser}
	newEmail := "new@university.edu"

	m.userRepo.On("GetByID", mock.Anything, int64(5)).Return(existing, nil)
	m.userRepo.On("Update", mock.Anything, mock.MatchedBy(func(u user.User) bool {
		return u.Email == newEmail && u.Username == "jdoe" && u.FullName == "Jane Doe"
	})).Return(user.User{ID: 5, Username: "jdoe", Email: newEmail, FullName: "Jane Doe", Role: user.RoleUser}, nil)

	resp, err := svc.Update(context.Background(), 5, user.UpdateUserRequest{Email: &newEmail})

	require.NoError(t, err)
	assert.Equal(t, newEmail, resp.Email)
}

func TestDelete_NotFound(t *testing.T) {
	svc, m := newUserService()
	m.userRepo.On("Delete", mock.Anything, int64(404)).Return(user.ErrUserNotFound)

	err := svc.Delete(context.Background(), 404)
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestDelete_Success(t *testing.T) {
	svc, m := newUserService()
	m.userRepo.On("Delete", mock.Anything, int64(5)).Return(nil)

	require.NoError(t, svc.Delete(context.Background(), 5))
	m.userRepo.AssertNumberOfCalls(t, "Delete", 1)
}
