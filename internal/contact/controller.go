package contact

import (
	"context"
	"errors"
	"sync"
)

// State is the contact form's submission lifecycle.
type State string

const (
	StateIdle       State = "idle"
	StateSubmitting State = "submitting"
	StateSuccess    State = "success"
	StateError      State = "error"
)

const (
	msgEmailFormat = "Please enter a valid email format."
	msgSuccess     = "Thank you for your message! I will get back to you as soon as possible."
	msgError       = "Something went wrong. Please check your connection or try again later."
)

// SubmitFunc performs the actual submission; *Submitter.Submit satisfies it.
type SubmitFunc func(ctx context.Context, in Input) (map[string]any, error)

// Controller drives the contact form: field edits with live email
// validation, submission gating, and the idle → submitting → success/error
// lifecycle. A structured 400 email rejection returns the form to idle with
// an inline message instead of the generic failure screen.
type Controller struct {
	submit SubmitFunc

	mu            sync.Mutex
	form          Input
	state         State
	statusMessage string
	emailError    string
}

// NewController creates an idle controller around a submit function.
func NewController(submit SubmitFunc) *Controller {
	return &Controller{
		submit: submit,
		state:  StateIdle,
	}
}

// SetName updates the name field.
func (c *Controller) SetName(v string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.form.Name = v
}

// SetEmail updates the email field and re-runs the live format check. The
// inline error clears when the field becomes valid or empty.
func (c *Controller) SetEmail(v string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.form.Email = v
	if v != "" && !ValidateEmail(v) {
		c.emailError = msgEmailFormat
	} else {
		c.emailError = ""
	}
}

// SetSubject updates the subject field.
func (c *Controller) SetSubject(v string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.form.Subject = v
}

// SetMessage updates the message field.
func (c *Controller) SetMessage(v string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.form.Message = v
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// StatusMessage returns the text for the success or failure panel.
func (c *Controller) StatusMessage() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.statusMessage
}

// EmailError returns the inline email error, empty when the field is fine.
func (c *Controller) EmailError() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.emailError
}

// Form returns a copy of the current field values.
func (c *Controller) Form() Input {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.form
}

// Reset returns to idle after a success or error panel ("send another
// message"). Field values are untouched; on success they were already
// cleared.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = StateIdle
}

// Submit validates, submits, and transitions state. Validation repeats the
// live checks synchronously to cover paste and autofill edits that never
// fired SetEmail. When a gate fails the state stays idle and no request is
// issued. The returned state is the one the form landed in.
func (c *Controller) Submit(ctx context.Context) State {
	c.mu.Lock()

	if c.state != StateIdle {
		state := c.state
		c.mu.Unlock()
		return state
	}

	if !ValidateEmail(c.form.Email) {
		c.emailError = msgEmailFormat
		c.mu.Unlock()
		return StateIdle
	}
	if c.form.Name == "" || c.form.Subject == "" || c.form.Message == "" {
		c.mu.Unlock()
		return StateIdle
	}

	c.state = StateSubmitting
	c.emailError = ""
	in := c.form
	c.mu.Unlock()

	_, err := c.submit(ctx, in)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err == nil {
		c.state = StateSuccess
		c.statusMessage = msgSuccess
		c.form = Input{}
		return c.state
	}

	var submitErr *SubmitError
	if errors.As(err, &submitErr) {
		if msg, ok := submitErr.EmailError(); ok {
			// Recoverable in place: surface the backend's email complaint
			// and hand the form back to the user.
			c.emailError = msg
			c.state = StateIdle
			return c.state
		}
	}

	c.state = StateError
	c.statusMessage = msgError
	return c.state
}
