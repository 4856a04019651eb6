// Package form implements the contact form's validation and submission
// flow: per-field rules, an all-fields gate in front of an opaque
// asynchronous submitter, and the busy/outcome lifecycle of a single
// submission attempt.
package form

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
)

// BannerKind classifies the aggregate status banner.
type BannerKind int

const (
	BannerNone BannerKind = iota
	BannerError
	BannerSuccess
)

// Banner is the single aggregate status message for the whole form,
// distinct from per-field errors.
type Banner struct {
	Kind BannerKind
	Text string
}

var (
	// ErrBusy means a prior submission attempt has not finished yet.
	ErrBusy = errors.New("submission already in flight")
	// ErrInvalid means validation failed and no submission was started.
	ErrInvalid = errors.New("form has validation errors")
)

const (
	msgRejected  = "Please correct the errors above."
	msgSucceeded = "Thanks! Your message has been sent."
	msgFailed    = "Something went wrong. Please try again."
)

// RejectionBanner is the banner shown when Begin refuses a submission
// because validation failed.
func RejectionBanner() Banner {
	return Banner{Kind: BannerError, Text: msgRejected}
}

// Controller gates an outbound submission behind per-field validation
// and tracks the busy lifecycle of a submission attempt. It is not
// safe for concurrent use; the UI event loop drives it sequentially.
type Controller struct {
	rules  []FieldRule
	values map[string]string
	errs   map[string]string
	busy   bool

	submitter Submitter
	logger    *log.Logger
}

// NewController builds a controller over the given rule table. A nil
// logger falls back to the package default.
func NewController(rules []FieldRule, submitter Submitter, logger *log.Logger) *Controller {
	if logger == nil {
		logger = log.Default()
	}
	values := make(map[string]string, len(rules))
	for _, r := range rules {
		values[r.Name] = ""
	}
	return &Controller{
		rules:     rules,
		values:    values,
		errs:      make(map[string]string, len(rules)),
		submitter: submitter,
		logger:    logger,
	}
}

// Rules returns the rule table in display order.
func (c *Controller) Rules() []FieldRule {
	return c.rules
}

// SetValue records a field's current raw text. Editing a field always
// discards its previously recorded error, so a stale message can never
// outlive the value that produced it. Re-reporting an unchanged value
// is a no-op and keeps the last validation's result.
func (c *Controller) SetValue(name, raw string) {
	cur, ok := c.values[name]
	if !ok || cur == raw {
		return
	}
	c.values[name] = raw
	delete(c.errs, name)
}

// Value returns a field's current raw text.
func (c *Controller) Value(name string) string {
	return c.values[name]
}

// FieldError returns the error recorded by the field's last validation,
// or an empty string when the field is valid or not yet validated.
func (c *Controller) FieldError(name string) string {
	return c.errs[name]
}

// Busy reports whether a submission attempt is in flight.
func (c *Controller) Busy() bool {
	return c.busy
}

// ValidateField validates a single field against its rule, records the
// resulting error (or clears a prior one), and reports validity.
func (c *Controller) ValidateField(name string) bool {
	for _, r := range c.rules {
		if r.Name != name {
			continue
		}
		if msg := r.Check(c.values[name]); msg != "" {
			c.errs[name] = msg
			return false
		}
		delete(c.errs, name)
		return true
	}
	return false
}

// ValidateAll validates every field in rule order. All fields are
// always validated, even after an earlier one fails, so each error
// slot ends up reflecting its own field's state.
func (c *Controller) ValidateAll() bool {
	ok := true
	for _, r := range c.rules {
		if !c.ValidateField(r.Name) {
			ok = false
		}
	}
	return ok
}

// Begin starts a submission attempt. It validates every field and,
// when all pass, marks the controller busy and returns the trimmed
// values to deliver. ErrInvalid means at least one field failed and
// nothing was started; ErrBusy means a prior attempt is still pending.
func (c *Controller) Begin() (Submission, error) {
	if c.busy {
		return Submission{}, ErrBusy
	}
	if !c.ValidateAll() {
		return Submission{}, ErrInvalid
	}
	c.busy = true
	return Submission{
		Name:    strings.TrimSpace(c.values[FieldName]),
		Email:   strings.TrimSpace(c.values[FieldEmail]),
		Message: strings.TrimSpace(c.values[FieldMessage]),
	}, nil
}

// Deliver runs the submitter for a submission returned by Begin. A
// panicking submitter is recovered and reported as an ordinary error,
// so the attempt always reaches Finish.
func (c *Controller) Deliver(ctx context.Context, sub Submission) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("submitter panicked: %v", r)
		}
	}()
	return c.submitter.Submit(ctx, sub)
}

// Finish ends the attempt started by Begin and returns the banner to
// show. The busy flag is cleared on every path. On success all field
// values are reset; on failure they are kept so the user can resubmit
// without retyping, and the cause is logged rather than surfaced.
// Calling Finish with no attempt in flight is a no-op.
func (c *Controller) Finish(err error) Banner {
	if !c.busy {
		return Banner{}
	}
	c.busy = false

	if err != nil {
		c.logger.Error("contact form submission failed", "err", err)
		return Banner{Kind: BannerError, Text: msgFailed}
	}

	for name := range c.values {
		c.values[name] = ""
	}
	return Banner{Kind: BannerSuccess, Text: msgSucceeded}
}
