package letter

import "context"

// GenerateOptions control the side effects of letter generation. SendEmail
// mails the subject a notification with a link to the rendered document.
type GenerateOptions struct {
	SendEmail bool
}

type LetterService interface {
	List(ctx context.Context, skip, limit int) ([]Response, error)
	Generate(ctx context.Context, req GenerateLetterRequest, opts GenerateOptions, generatedBy int64) (Response, error)
	// GenerateWelcome renders a letter from profile data alone, skipping
	// the required-field check. Used for the optional welcome letter sent
	// with new account credentials.
	GenerateWelcome(ctx context.Context, subjectID int64, letterType Type, generatedBy int64) (Response, error)
}
