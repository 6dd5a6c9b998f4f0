package letter

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/campushr/letters-backend-go/internal/domain/emaillog"
	"github.com/campushr/letters-backend-go/internal/domain/letter"
	"github.com/campushr/letters-backend-go/internal/domain/user"
	"github.com/campushr/letters-backend-go/internal/pkg/validator"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockLetterRepo struct{ mock.Mock }

func (m *mockLetterRepo) List(ctx context.Context, skip, limit int) ([]letter.GeneratedLetter, error) {
	args := m.Called(ctx, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]letter.GeneratedLetter), args.Error(1)
}

func (m *mockLetterRepo) GetByID(ctx context.Context, id int64) (letter.GeneratedLetter, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(letter.GeneratedLetter), args.Error(1)
}

func (m *mockLetterRepo) Create(ctx context.Context, newLetter letter.GeneratedLetter) (letter.GeneratedLetter, error) {
	args := m.Called(ctx, newLetter)
	return args.Get(0).(letter.GeneratedLetter), args.Error(1)
}

func (m *mockLetterRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

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

type mockFileStorage struct{ mock.Mock }

func (m *mockFileStorage) Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error) {
	args := m.Called(ctx, file, path, contentType)
	return args.String(0), args.Error(1)
}

func (m *mockFileStorage) Download(ctx context.Context, path string) (io.ReadCloser, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}

func (m *mockFileStorage) Delete(ctx context.Context, path string) error {
	args := m.Called(ctx, path)
	return args.Error(0)
}

func (m *mockFileStorage) GetURL(ctx context.Context, path string, expiry time.Duration) (string, error) {
	args := m.Called(ctx, path, expiry)
	return args.String(0), args.Error(1)
}

func (m *mockFileStorage) Exists(ctx context.Context, path string) (bool, error) {
	args := m.Called(ctx, path)
	return args.Bool(0), args.Error(1)
}

type letterServiceMocks struct {
	letterRepo   *mockLetterRepo
	userRepo     *mockUserRepo
	emailLogRepo *mockEmailLogRepo
	emailService *mockEmailService
	fileStorage  *mockFileStorage
}

func newLetterService() (letter.LetterService, *letterServiceMocks) {
	m := &letterServiceMocks{
		letterRepo:   new(mockLetterRepo),
		userRepo:     new(mockUserRepo),
		emailLogRepo: new(mockEmailLogRepo),
		emailService: new(mockEmailService),
		fileStorage:  new(mockFileStorage),
	}
	svc := NewLetterService(m.letterRepo, m.userRepo, m.emailLogRepo, m.emailService, m.fileStorage)
	return svc, m
}

func testSubject() user.User {
	designation := "Lecturer"
	return user.User{
		ID:          7,
		Username:    "jdoe",
		Email:       "jdoe@university.edu",
		FullName:    "Jane Doe",
		Role:        user.RoleUser,
		Designation: &designation,
	}
}

func TestGenerate_InvalidRequest_NoRepositoryCalls(t *testing.T) {
	svc, m := newLetterService()

	_, err := svc.Generate(context.Background(), letter.GenerateLetterRequest{
		UserID:     7,
		LetterType: "offer_letter",
		// missing salary, start_date, manager
		Position:   "Lecturer",
		Department: "Physics",
	}, letter.GenerateOptions{}, 1)

	var valErrs validator.ValidationErrors
	require.ErrorAs(t, err, &valErrs)
	m.userRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	m.letterRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestGenerate_UserNotFound(t *testing.T) {
	svc, m := newLetterService()
	m.userRepo.On("GetByID", mock.Anything, int64(99)).Return(user.User{}, pgx.ErrNoRows)

	_, err := svc.Generate(context.Background(), letter.GenerateLetterRequest{
		UserID:     99,
		LetterType: "confirmation_letter",
		Position:   "Lecturer",
		Department: "Physics",
	}, letter.GenerateOptions{}, 1)

	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestGenerate_RendersStoresAndRecords(t *testing.T) {
	svc, m := newLetterService()
	m.userRepo.On("GetByID", mock.Anything, int64(7)).Return(testSubject(), nil)
	m.fileStorage.On("Upload", mock.Anything, mock.Anything, mock.Anything, "text/plain; charset=utf-8").
		Return("letters/abc.txt", nil)
	m.letterRepo.On("Create", mock.Anything, mock.MatchedBy(func(l letter.GeneratedLetter) bool {
		return l.UserID == 7 &&
			l.LetterType == letter.TypeConfirmation &&
			l.Status == letter.StatusGenerated &&
			l.LetterData["position"] == "Senior Lecturer" &&
			l.LetterData["full_name"] == "Jane Doe"
	})).Return(letter.GeneratedLetter{ID: 1, UserID: 7, LetterType: letter.TypeConfirmation, Status: letter.StatusGenerated}, nil)

	// Request fields override profile-derived values.
	resp, err := svc.Generate(context.Background(), letter.GenerateLetterRequest{
		UserID:     7,
		LetterType: "confirmation_letter",
		Position:   "Senior Lecturer",
		Department: "Physics",
	}, letter.GenerateOptions{}, 1)

	require.NoError(t, err)
	assert.Equal(t, letter.StatusGenerated, resp.Status)
	m.emailService.AssertNotCalled(t, "SendLetterNotification", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestGenerate_SendEmailMarksLetterSent(t *testing.T) {
	svc, m := newLetterService()
	docPath := "letters/abc.txt"
	record := letter.GeneratedLetter{
		ID: 3, UserID: 7, LetterType: letter.TypeConfirmation,
		Status: letter.StatusGenerated, DocumentPath: &docPath,
	}

	m.userRepo.On("GetByID", mock.Anything, int64(7)).Return(testSubject(), nil)
	m.fileStorage.On("Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(docPath, nil)
	m.letterRepo.On("Create", mock.Anything, mock.Anything).Return(record, nil)
	m.fileStorage.On("GetURL", mock.Anything, docPath, mock.Anything).Return("http://localhost/uploads/letters/abc.txt", nil)
	m.emailService.On("SendLetterNotification", "jdoe@university.edu", "Jane Doe", "confirmation_letter", mock.Anything).Return(nil)
	m.emailLogRepo.On("Create", mock.Anything, mock.MatchedBy(func(l emaillog.EmailLog) bool {
		return l.Status == emaillog.StatusSent && l.RecipientEmail == "jdoe@university.edu"
	})).Return(emaillog.EmailLog{ID: 1}, nil)
	m.letterRepo.On("UpdateStatus", mock.Anything, int64(3), letter.StatusSent).Return(nil)

	resp, err := svc.Generate(context.Background(), letter.GenerateLetterRequest{
		UserID:     7,
		LetterType: "confirmation_letter",
		Position:   "Lecturer",
		Department: "Physics",
	}, letter.GenerateOptions{SendEmail: true}, 1)

	require.NoError(t, err)
	assert.Equal(t, letter.StatusSent, resp.Status)
	m.letterRepo.AssertExpectations(t)
	m.emailLogRepo.AssertExpectations(t)
}

func TestGenerate_EmailFailureKeepsGeneratedStatus(t *testing.T) {
	svc, m := newLetterService()
	docPath := "letters/abc.txt"
	record := letter.GeneratedLetter{
		ID: 4, UserID: 7, LetterType: letter.TypeConfirmation,
		Status: letter.StatusGenerated, DocumentPath: &docPath,
	}

	m.userRepo.On("GetByID", mock.Anything, int64(7)).Return(testSubject(), nil)
	m.fileStorage.On("Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(docPath, nil)
	m.letterRepo.On("Create", mock.Anything, mock.Anything).Return(record, nil)
	m.fileStorage.On("GetURL", mock.Anything, docPath, mock.Anything).Return("http://localhost/uploads/letters/abc.txt", nil)
	m.emailService.On("SendLetterNotification", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(assert.AnError)
	m.emailLogRepo.On("Create", mock.Anything, mock.MatchedBy(func(l emaillog.EmailLog) bool {
		return l.Status == emaillog.StatusFailed
	})).Return(emaillog.EmailLog{ID: 2}, nil)

	resp, err := svc.Generate(context.Background(), letter.GenerateLetterRequest{
		UserID:     7,
		LetterType: "confirmation_letter",
		Position:   "Lecturer",
		Department: "Physics",
	}, letter.GenerateOptions{SendEmail: true}, 1)

	require.NoError(t, err)
	assert.Equal(t, letter.StatusGenerated, resp.Status)
	m.letterRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestGenerateWelcome_SkipsFieldValidation(t *testing.T) {
	svc, m := newLetterService()
	m.userRepo.On("GetByID", mock.Anything, int64(7)).Return(testSubject(), nil)
	m.fileStorage.On("Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("letters/w.txt", nil)
	m.letterRepo.On("Create", mock.Anything, mock.MatchedBy(func(l letter.GeneratedLetter) bool {
		return l.LetterType == letter.TypeAppointment && l.LetterData["full_name"] == "Jane Doe"
	})).Return(letter.GeneratedLetter{ID: 5, LetterType: letter.TypeAppointment, Status: letter.StatusGenerated}, nil)

	// No appointment fields are supplied; profile data alone is enough.
	_, err := svc.GenerateWelcome(context.Background(), 7, letter.TypeAppointment, 1)
	require.NoError(t, err)
}

func TestGenerateWelcome_UnknownType(t *testing.T) {
	svc, m := newLetterService()

	_, err := svc.GenerateWelcome(context.Background(), 7, letter.Type("promotion_letter"), 1)

	assert.Error(t, err)
	m.userRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestList_FillsDocumentURLs(t *testing.T) {
	svc, m := newLetterService()
	docPath := "letters/abc.txt"
	m.letterRepo.On("List", mock.Anything, 0, 100).Return([]letter.GeneratedLetter{
		{ID: 1, UserID: 7, LetterType: letter.TypeOffer, Status: letter.StatusSent, DocumentPath: &docPath},
		{ID: 2, UserID: 8, LetterType: letter.TypeRelieving, Status: letter.StatusGenerated},
	}, nil)
	m.fileStorage.On("GetURL", mock.Anything, docPath, mock.Anything).Return("http://localhost/uploads/letters/abc.txt", nil)

	list, err := svc.List(context.Background(), 0, 100)

	require.NoError(t, err)
	require.Len(t, list, 2)
	require.NotNil(t, list[0].DocumentURL)
	assert.Equal(t, "http://localhost/uploads/letters/abc.txt", *list[0].DocumentURL)
	assert.Nil(t, list[1].DocumentURL)
}
