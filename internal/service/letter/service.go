package letter

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/campushr/letters-backend-go/internal/domain/emaillog"
	"github.com/campushr/letters-backend-go/internal/domain/letter"
	"github.com/campushr/letters-backend-go/internal/domain/user"
	"github.com/campushr/letters-backend-go/internal/pkg/email"
	"github.com/campushr/letters-backend-go/internal/pkg/storage"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type LetterServiceImpl struct {
	letterRepo   letter.LetterRepository
	userRepo     user.UserRepository
	emailLogRepo emaillog.EmailLogRepository
	emailService email.EmailService
	fileStorage  storage.FileStorage
}

func NewLetterService(
	letterRepo letter.LetterRepository,
	userRepo user.UserRepository,
	emailLogRepo emaillog.EmailLogRepository,
	emailService email.EmailService,
	fileStorage storage.FileStorage,
) letter.LetterService {
	return &LetterServiceImpl{
		letterRepo:   letterRepo,
		userRepo:     userRepo,
		emailLogRepo: emailLogRepo,
		emailService: emailService,
		fileStorage:  fileStorage,
	}
}

// List implements letter.LetterService.
func (s *LetterServiceImpl) List(ctx context.Context, skip, limit int) ([]letter.Response, error) {
	letters, err := s.letterRepo.List(ctx, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list letters: %w", err)
	}

	result := letter.NewListResponse(letters)
	for i := range result {
		s.fillDocumentURL(ctx, &result[i])
	}
	return result, nil
}

// Generate implements letter.LetterService.
func (s *LetterServiceImpl) Generate(ctx context.Context, req letter.GenerateLetterRequest, opts letter.GenerateOptions, generatedBy int64) (letter.Response, error) {
	if err := req.Validate(); err != nil {
		return letter.Response{}, err
	}

	subject, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return letter.Response{}, user.ErrUserNotFound
		}
		return letter.Response{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	letterType := letter.Type(req.LetterType)
	data := profileData(subject)
	for k, v := range req.FieldValues() {
		data[k] = v
	}

	record, err := s.renderAndRecord(ctx, subject, letterType, data, generatedBy)
	if err != nil {
		return letter.Response{}, err
	}

	if opts.SendEmail {
		s.notifySubject(ctx, subject, &record)
	}

	resp := letter.NewResponse(record)
	s.fillDocumentURL(ctx, &resp)
	return resp, nil
}

// GenerateWelcome implements letter.LetterService.
func (s *LetterServiceImpl) GenerateWelcome(ctx context.Context, subjectID int64, letterType letter.Type, generatedBy int64) (letter.Response, error) {
	if !letter.IsValidType(letterType) {
		return letter.Response{}, fmt.Errorf("unsupported letter type: %s", letterType)
	}

	subject, err := s.userRepo.GetByID(ctx, subjectID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return letter.Response{}, user.ErrUserNotFound
		}
		return letter.Response{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	record, err := s.renderAndRecord(ctx, subject, letterType, profileData(subject), generatedBy)
	if err != nil {
		return letter.Response{}, err
	}

	resp := letter.NewResponse(record)
	s.fillDocumentURL(ctx, &resp)
	return resp, nil
}

// renderAndRecord renders the letter body, stores the document, and inserts
// the letter record with status "generated".
func (s *LetterServiceImpl) renderAndRecord(ctx context.Context, subject user.User, letterType letter.Type, data map[string]string, generatedBy int64) (letter.GeneratedLetter, error) {
	document := RenderBody(letter.ExampleBody(letterType), data)
	if document == "" {
		return letter.GeneratedLetter{}, letter.ErrRenderFailed
	}

	path := fmt.Sprintf("letters/%s.txt", uuid.NewString())
	storedPath, err := s.fileStorage.Upload(ctx, strings.NewReader(document), path, "text/plain; charset=utf-8")
	if err != nil {
		return letter.GeneratedLetter{}, fmt.Errorf("failed to store letter document: %w", err)
	}

	record, err := s.letterRepo.Create(ctx, letter.GeneratedLetter{
		UserID:       subject.ID,
		LetterType:   letterType,
		LetterData:   data,
		Status:       letter.StatusGenerated,
		DocumentPath: &storedPath,
		GeneratedBy:  &generatedBy,
	})
	if err != nil {
		return letter.GeneratedLetter{}, fmt.Errorf("failed to create letter record: %w", err)
	}
	return record, nil
}

// notifySubject emails the letter link to its subject. Email failure never
// fails the generation; the letter simply stays in "generated" status.
func (s *LetterServiceImpl) notifySubject(ctx context.Context, subject user.User, record *letter.GeneratedLetter) {
	url := ""
	if record.DocumentPath != nil {
		if u, err := s.fileStorage.GetURL(ctx, *record.DocumentPath, 24*time.Hour); err == nil {
			url = u
		}
	}

	sendErr := s.emailService.SendLetterNotification(subject.Email, subject.FullName, string(record.LetterType), url)

	logStatus := emaillog.StatusSent
	if sendErr != nil {
		logStatus = emaillog.StatusFailed
		slog.Warn("Letter notification email failed", "letter_id", record.ID, "to", subject.Email, "error", sendErr)
	}
	if _, err := s.emailLogRepo.Create(ctx, emaillog.EmailLog{
		LetterID:       &record.ID,
		RecipientEmail: subject.Email,
		Subject:        fmt.Sprintf("Your %s is ready", record.LetterType),
		Status:         logStatus,
	}); err != nil {
		slog.Warn("Failed to record email log", "letter_id", record.ID, "error", err)
	}

	if sendErr == nil {
		if err := s.letterRepo.UpdateStatus(ctx, record.ID, letter.StatusSent); err != nil {
			slog.Warn("Failed to update letter status", "letter_id", record.ID, "error", err)
		} else {
			record.Status = letter.StatusSent
		}
	}
}

func (s *LetterServiceImpl) fillDocumentURL(ctx context.Context, resp *letter.Response) {
	if resp.DocumentPath == nil {
		return
	}
	if url, err := s.fileStorage.GetURL(ctx, *resp.DocumentPath, 24*time.Hour); err == nil {
		resp.DocumentURL = &url
	}
}

// profileData maps the subject's profile into letter template fields. The
// joining date uses the long form the letters are written in.
func profileData(subject user.User) map[string]string {
	data := map[string]string{
		"full_name": subject.FullName,
		"username":  subject.Username,
		"email":     subject.Email,
	}
	if subject.EmployeeID != nil {
		data["employee_id"] = *subject.EmployeeID
	}
	if subject.Department != nil {
		data["department"] = *subject.Department
	}
	if subject.Designation != nil {
		data["designation"] = *subject.Designation
		data["position"] = *subject.Designation
	}
	if subject.JoiningDate != nil {
		data["joining_date"] = subject.JoiningDate.Format("January 02, 2006")
	}
	return data
}
