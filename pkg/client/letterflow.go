package client

import (
	"context"
	"sync"

	"github.com/campushr/letters-backend-go/pkg/letters"
)

// FlowState is the phase of a single letter generation attempt.
type FlowState int

const (
	// FlowIdle means nothing is selected yet.
	FlowIdle FlowState = iota
	// FlowConfiguring means a subject or letter type has been picked and
	// fields are being collected.
	FlowConfiguring
	// FlowSubmitting means the generation request is in flight.
	FlowSubmitting
	// FlowSucceeded means the letter was generated; the caller shows a
	// confirmation and resets after its display delay. A failed submit
	// returns to FlowConfiguring with ErrorMessage set and inputs kept.
	FlowSucceeded
)

// LetterGenerator is the one collaborator the workflow needs. *Client
// satisfies it.
type LetterGenerator interface {
	GenerateLetter(ctx context.Context, req GenerateLetter) (Letter, error)
}

// LetterFlow drives one letter generation interaction: pick a subject,
// pick a type, fill the fields that type requires, submit. It is a state
// machine over a single attempt; concurrent Submits are not supported.
type LetterFlow struct {
	mu         sync.Mutex
	gen        LetterGenerator
	state      FlowState
	userID     int64
	letterType letters.Type
	fields     map[string]string
	errMsg     string
	onComplete func(Letter)
	generation uint64
}

// NewLetterFlow starts in the idle state. onComplete, if non-nil, runs
// after each successful generation so dependent views can refresh.
func NewLetterFlow(gen LetterGenerator, onComplete func(Letter)) *LetterFlow {
	return &LetterFlow{
		gen:        gen,
		fields:     make(map[string]string),
		onComplete: onComplete,
	}
}

func (f *LetterFlow) State() FlowState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// ErrorMessage returns the normalized message from the last failed
// submit, empty otherwise.
func (f *LetterFlow) ErrorMessage() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errMsg
}

func (f *LetterFlow) SelectUser(id int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.userID = id
	f.enterConfiguring()
}

func (f *LetterFlow) SelectLetterType(t letters.Type) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.letterType = t
	f.enterConfiguring()
}

func (f *LetterFlow) enterConfiguring() {
	if f.state == FlowIdle || f.state == FlowSucceeded {
		f.state = FlowConfiguring
	}
}

// VisibleFields lists the inputs to render for the selected type: its
// required set, plus the optional reason field where the type carries one.
func (f *LetterFlow) VisibleFields() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	fields := letters.RequiredFields(f.letterType)
	if letters.HasOptionalReason(f.letterType) {
		fields = append(fields, "reason")
	}
	return fields
}

// SetField records a collected value. Values outside the selected type's
// visible set are dropped at submit time, not here, so switching types
// does not lose input.
func (f *LetterFlow) SetField(name, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fields[name] = value
}

// Submit sends the composed generation request. Without both a subject
// and a letter type it fails immediately with a ValidationError and no
// request is made. A response that lands after Reset or Close is ignored.
func (f *LetterFlow) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.userID == 0 || f.letterType == "" {
		f.mu.Unlock()
		return &ValidationError{Message: "Please select a user and a letter type"}
	}

	req := GenerateLetter{
		UserID:     f.userID,
		LetterType: f.letterType,
		Fields:     f.collectFields(),
	}
	f.state = FlowSubmitting
	f.errMsg = ""
	gen := f.generation
	f.mu.Unlock()

	letter, err := f.gen.GenerateLetter(ctx, req)

	f.mu.Lock()
	if f.generation != gen {
		// The interaction surface was closed while the request was in
		// flight; drop the response.
		f.mu.Unlock()
		return nil
	}

	if err != nil {
		f.state = FlowConfiguring
		f.errMsg = err.Error()
		f.mu.Unlock()
		return err
	}

	f.state = FlowSucceeded
	cb := f.onComplete
	f.mu.Unlock()

	if cb != nil {
		cb(letter)
	}
	return nil
}

// collectFields keeps only the visible fields, skipping blanks. Callers
// hold f.mu.
func (f *LetterFlow) collectFields() map[string]string {
	visible := letters.RequiredFields(f.letterType)
	if letters.HasOptionalReason(f.letterType) {
		visible = append(visible, "reason")
	}

	out := make(map[string]string, len(visible))
	for _, name := range visible {
		if v := f.fields[name]; v != "" {
			out[name] = v
		}
	}
	return out
}

// Reset returns to idle, clearing selections, fields, and any error. Any
// in-flight response is invalidated.
func (f *LetterFlow) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.generation++
	f.state = FlowIdle
	f.userID = 0
	f.letterType = ""
	f.fields = make(map[string]string)
	f.errMsg = ""
}

// Close abandons the interaction, same as Reset. The separate name marks
// call sites where the dialog was dismissed early.
func (f *LetterFlow) Close() {
	f.Reset()
}
