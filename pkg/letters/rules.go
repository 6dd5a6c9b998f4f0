package letters

// Type identifies a category of HR letter. The rule table below drives
// which generation fields each type requires.
type Type string

const (
	TypeOffer        Type = "offer_letter"
	TypeAppointment  Type = "appointment_letter"
	TypeConfirmation Type = "confirmation_letter"
	TypeRelieving    Type = "relieving_letter"
)

// requiredFields maps each letter type to its ordered required field set.
// Field names match the keys of GenerateLetterRequest.
var requiredFields = map[Type][]string{
	TypeOffer:        {"position", "department", "salary", "start_date", "manager"},
	TypeAppointment:  {"position", "department", "start_date", "manager"},
	TypeConfirmation: {"position", "department"},
	TypeRelieving:    {"position", "department", "end_date"},
}

// ValidTypes returns the recognized letter types in declaration order.
func ValidTypes() []Type {
	return []Type{TypeOffer, TypeAppointment, TypeConfirmation, TypeRelieving}
}

// IsValidType reports whether t is a recognized letter type.
func IsValidType(t Type) bool {
	_, ok := requiredFields[t]
	return ok
}

// RequiredFields returns the ordered required field names for a letter
// type. Unrecognized types yield nil.
func RequiredFields(t Type) []string {
	fields, ok := requiredFields[t]
	if !ok {
		return nil
	}
	out := make([]string, len(fields))
	copy(out, fields)
	return out
}

// HasOptionalReason reports whether the type carries the optional reason
// field in addition to its required set.
func HasOptionalReason(t Type) bool {
	return t == TypeRelieving
}

// ExampleBody returns the canonical prose template for a letter type, with
// {{field}} placeholder tokens. Unrecognized types yield an empty string.
func ExampleBody(t Type) string {
	switch t {
	case TypeOffer:
		return `Dear {{full_name}},

We are pleased to offer you the position of {{position}} in our {{department}} department.

Your starting salary will be {{salary}} per annum, and your employment will commence on {{start_date}}.

Please confirm your acceptance by signing and returning this letter.

Sincerely,
HR Department`
	case TypeAppointment:
		return `Dear {{full_name}},

We are pleased to confirm your appointment as {{position}} in the {{department}} department.

Your appointment will be effective from {{start_date}}.

We look forward to your valuable contribution to our organization.

Best regards,
HR Department`
	case TypeConfirmation:
		return `Dear {{full_name}},

We are pleased to confirm your permanent employment as {{position}} in the {{department}} department.

Your probationary period has been successfully completed.

Congratulations on your confirmation.

Best regards,
HR Department`
	case TypeRelieving:
		return `Dear {{full_name}},

This is to certify that you have worked with our organization as {{position}} in the {{department}} department.

Your last working day with us was {{end_date}}.

Reason for leaving: {{reason}}

We wish you all the best for your future endeavors.

Sincerely,
HR Department`
	default:
		return ""
	}
}
