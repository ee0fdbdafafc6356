package span

import (
	"errors"
)

// Error is a chain of messages added by each layer an error passes through.
// Items[0] holds the root error.
type Error struct {
	Items []*ErrorItem `json:"items,omitempty"`
}

func (r *Error) Error() string {
	root := r.Items[0]
	if root.Error != nil {
		return root.Error.Error()
	}
	return *root.Message
}

func (r *Error) Unwrap() error {
	return r.Items[0].Error
}

// Message returns the message of the outermost layer.
func (r *Error) Message() string {
	return *r.Items[len(r.Items)-1].Message
}

type ErrorItem struct {
	Span    *Span   `json:"-"`
	Trace   *Caller `json:"trace,omitempty"`
	Message *string `json:"message,omitempty"`
	Error   error   `json:"error,omitempty"`
}

func NewError(span *Span, message string, err error) error {
	trace := NewCaller()
	if err == nil {
		return &Error{
			Items: []*ErrorItem{
				{
					Span:    span,
					Trace:   trace,
					Message: &message,
					Error:   nil,
				},
			},
		}
	}

	var e *Error
	if errors.As(err, &e) {
		e.Items = append(e.Items, &ErrorItem{
			Span:    span,
			Trace:   trace,
			Message: &message,
			Error:   nil,
		})
		return e
	}

	return &Error{
		Items: []*ErrorItem{
			{
				Span:    span,
				Trace:   trace,
				Message: &message,
				Error:   err,
			},
		},
	}
}
