package viewmodel

import (
	"context"
	"net/url"
	"sync"
	"time"

	"heritageloom/internal/domain/entity"
	"heritageloom/internal/rest"
	"heritageloom/internal/validation"
	"heritageloom/pkg/errors"
)

type FormState int

const (
	FormEditing FormState = iota
	FormSubmitting
	FormSubmitSucceeded
	FormSubmitFailed
)

// ConfirmDelay is how long a successful submit stays visible before the
// close callback fires, matching the admin dialogs' confirmation flash.
const ConfirmDelay = 1500 * time.Millisecond

// Payload is the editable field set of one resource, convertible to the
// wire form fields. Concrete payloads live in the catalog package and carry
// their own validation tags.
type Payload interface {
	Fields() url.Values
}

// FormOptions tune per-resource form behavior.
type FormOptions struct {
	// MaxFiles bounds attachments; 0 means unbounded (product galleries).
	MaxFiles int
	// OmitOnUpdate removes immutable fields (blog slugs) from edit submits.
	OmitOnUpdate []string
	// ConfirmDelay overrides the post-success close delay; negative fires
	// the close callback synchronously, which tests rely on.
	ConfirmDelay time.Duration
	// OnSuccess runs exactly once per successful submit, before closing.
	// Owners use it to refetch their list view.
	OnSuccess func()
	// Close runs after the confirmation delay.
	Close func()
}

// FormController runs one create/edit dialog's lifecycle: Editing ->
// Submitting -> SubmitSucceeded | SubmitFailed, returning to Editing with
// fields intact on failure. Validation happens before any network call.
type FormController[T any] struct {
	client    *rest.Client[T]
	validator *validation.Validator
	opts      FormOptions

	mu       sync.Mutex
	state    FormState
	editID   entity.ID
	editMode bool
	payload  Payload
	files    []rest.File
	result   T
	err      error
}

// NewCreateForm opens a controller in create mode with the given defaults.
func NewCreateForm[T any](client *rest.Client[T], v *validation.Validator, defaults Payload, opts FormOptions) *FormController[T] {
	return &FormController[T]{
		client:    client,
		validator: v,
		opts:      opts,
		payload:   defaults,
	}
}

// NewEditForm opens a controller pre-populated from an existing record.
func NewEditForm[T any](client *rest.Client[T], v *validation.Validator, id entity.ID, current Payload, opts FormOptions) *FormController[T] {
	return &FormController[T]{
		client:    client,
		validator: v,
		opts:      opts,
		payload:   current,
		editID:    id,
		editMode:  true,
	}
}

func (f *FormController[T]) State() FormState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *FormController[T]) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

func (f *FormController[T]) Payload() Payload {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.payload
}

// Result is the record the backend echoed on the last successful submit.
func (f *FormController[T]) Result() T {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.result
}

// SetPayload replaces the field set; editing after a failed submit drops
// the controller back into Editing.
func (f *FormController[T]) SetPayload(p Payload) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.payload = p
	if f.state == FormSubmitFailed {
		f.state = FormEditing
	}
}

// AttachFile adds one file to the submission. Exceeding the per-resource
// bound is a validation error and leaves the attachment list unchanged.
func (f *FormController[T]) AttachFile(file rest.File) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.opts.MaxFiles > 0 && len(f.files) >= f.opts.MaxFiles {
		return errors.Validation(file.Field, "at most "+itoa(f.opts.MaxFiles)+" files allowed")
	}
	f.files = append(f.files, file)
	return nil
}

func (f *FormController[T]) ClearFiles() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.files = nil
}

// Submit validates and sends the form. A validation failure blocks the
// submit entirely: the controller stays in Editing and the transport sees
// no request.
func (f *FormController[T]) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.state == FormSubmitting {
		f.mu.Unlock()
		return errors.BadRequest("a submit is already in flight", nil)
	}
	payload := f.payload
	files := append([]rest.File(nil), f.files...)
	editMode := f.editMode
	editID := f.editID

	if err := f.validator.First(f.validator.Struct(payload)); err != nil {
		f.err = err
		f.mu.Unlock()
		return err
	}

	f.state = FormSubmitting
	f.err = nil
	f.mu.Unlock()

	fields := payload.Fields()
	var result T
	var err error
	if editMode {
		for _, field := range f.opts.OmitOnUpdate {
			fields.Del(field)
		}
		result, err = f.client.Update(ctx, editID, fields, files)
	} else {
		result, err = f.client.Create(ctx, fields, files)
	}

	f.mu.Lock()
	if err != nil {
		// back to Editing with everything the user typed still in place
		f.state = FormSubmitFailed
		f.err = err
		f.mu.Unlock()
		return err
	}
	f.state = FormSubmitSucceeded
	f.result = result
	f.mu.Unlock()

	if f.opts.OnSuccess != nil {
		f.opts.OnSuccess()
	}
	f.scheduleClose()
	return nil
}

// Retry re-submits after a failure without resetting any field state.
func (f *FormController[T]) Retry(ctx context.Context) error {
	f.mu.Lock()
	if f.state == FormSubmitFailed {
		f.state = FormEditing
	}
	f.mu.Unlock()
	return f.Submit(ctx)
}

func (f *FormController[T]) scheduleClose() {
	if f.opts.Close == nil {
		return
	}
	delay := f.opts.ConfirmDelay
	if delay == 0 {
		delay = ConfirmDelay
	}
	if delay < 0 {
		f.opts.Close()
		return
	}
	time.AfterFunc(delay, f.opts.Close)
}

func itoa(n int) string {
	return entity.ID(n).String()
}
