package letter

import "github.com/campushr/letters-backend-go/pkg/letters"

// The rule table lives in pkg/letters so SDK consumers share the exact
// same contract; the domain package re-exports it.
type Type = letters.Type

const (
	TypeOffer        = letters.TypeOffer
	TypeAppointment  = letters.TypeAppointment
	TypeConfirmation = letters.TypeConfirmation
	TypeRelieving    = letters.TypeRelieving
)

func ValidTypes() []Type { return letters.ValidTypes() }

func IsValidType(t Type) bool { return letters.IsValidType(t) }

func RequiredFields(t Type) []string { return letters.RequiredFields(t) }

func HasOptionalReason(t Type) bool { return letters.HasOptionalReason(t) }

func ExampleBody(t Type) string { return letters.ExampleBody(t) }
