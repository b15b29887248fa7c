package wire

import (
	"errors"
	"strconv"
)

const resumableDefault = false

var (
	// ErrShortBytes is returned when the slice being decoded is too
	// short to contain the next value.
	ErrShortBytes error = errShort{}

	// ErrNotInitialized is returned when a value instance is serialized
	// or read before a validated scalar has been stored in it.
	ErrNotInitialized error = errors.New("wire: value not initialized")

	// ErrLimitExceeded is returned when a set limit is exceeded.
	// Limits can be set on the Reader to bound the number of records
	// decoded from adversarial data.
	ErrLimitExceeded error = errLimitExceeded{}
)

// Error is the interface satisfied
// by all of the errors that originate
// from this package.
type Error interface {
	error

	// Resumable returns whether
	// or not the error means that
	// the stream of data is malformed
	// and the information is unrecoverable.
	Resumable() bool
}

// contextError allows wire Error instances to be enhanced with additional
// context about their origin.
type contextError interface {
	Error

	// withContext must not modify the error instance - it must clone and
	// return a new error with the context added.
	withContext(ctx string) error
}

// Cause returns the underlying cause of an error that has been wrapped
// with additional context.
func Cause(e error) error {
	out := e
	if e, ok := e.(errWrapped); ok && e.cause != nil {
		out = e.cause
	}
	return out
}

// Resumable returns whether or not the error means that the stream of data
// is malformed and the information is unrecoverable.
func Resumable(e error) bool {
	if e, ok := e.(Error); ok {
		return e.Resumable()
	}
	return resumableDefault
}

// WrapError wraps an error with additional context that allows the part of
// the record stream that caused the problem to be identified. Underlying
// errors can be retrieved using Cause()
//
// The input error is not modified - a new error should be returned.
//
// ErrShortBytes is not wrapped with any context so that callers can keep
// comparing against it directly.
func WrapError(err error, ctx ...any) error {
	switch e := err.(type) {
	case errShort:
		return e
	case contextError:
		return e.withContext(ctxString(ctx))
	default:
		return errWrapped{cause: err, ctx: ctxString(ctx)}
	}
}

// ctxString converts the incoming context chain into a single
// slash-separated string.
func ctxString(ctx []any) string {
	out := ""
	for _, c := range ctx {
		var s string
		switch c := c.(type) {
		case string:
			s = c
		case int:
			s = strconv.Itoa(c)
		case uint32:
			s = strconv.FormatUint(uint64(c), 10)
		default:
			s = "?"
		}
		out = addCtx(out, s)
	}
	return out
}

func addCtx(ctx, add string) string {
	if ctx != "" {
		return add + "/" + ctx
	} else {
		return add
	}
}

// errWrapped allows arbitrary errors passed to WrapError to be enhanced
// with context and unwrapped with Cause()
type errWrapped struct {
	cause error
	ctx   string
}

func (e errWrapped) Error() string {
	if e.ctx != "" {
		return e.cause.Error() + " at " + e.ctx
	} else {
		return e.cause.Error()
	}
}

func (e errWrapped) Resumable() bool {
	if e, ok := e.cause.(Error); ok {
		return e.Resumable()
	}
	return resumableDefault
}

// Unwrap returns the cause.
func (e errWrapped) Unwrap() error { return e.cause }

type errShort struct{}

func (e errShort) Error() string   { return "wire: too few bytes left to read value" }
func (e errShort) Resumable() bool { return false }

type errLimitExceeded struct{}

func (e errLimitExceeded) Error() string   { return "wire: configured reader limit exceeded" }
func (e errLimitExceeded) Resumable() bool { return false }

// A TypeError is returned when a candidate scalar's runtime kind does not
// match the kind demanded by the tag it is being bound to, for example a
// float candidate offered to I16 or a text value offered to F64.
type TypeError struct {
	Want Tag    // tag the candidate was bound against
	Got  string // runtime kind of the rejected candidate

	ctx string
}

// Error implements the error interface
func (t TypeError) Error() string {
	out := "wire: cannot bind " + quoteStr(t.Got) + " candidate to " + t.Want.String()
	if t.ctx != "" {
		out += " at " + t.ctx
	}
	return out
}

// Resumable returns 'true' for TypeErrors
func (t TypeError) Resumable() bool { return true }

func (t TypeError) withContext(ctx string) error { t.ctx = addCtx(t.ctx, ctx); return t }

// A RangeError is returned when an integer candidate falls outside the
// two's-complement range representable in its tag's declared bit width.
// The value is never clamped or wrapped.
type RangeError struct {
	Value string // formatted candidate value
	Tag   Tag    // tag whose range was violated

	ctx string
}

// Error implements the error interface
func (r RangeError) Error() string {
	out := "wire: value " + r.Value + " out of range for " + r.Tag.String()
	if r.ctx != "" {
		out += " at " + r.ctx
	}
	return out
}

// Resumable is always 'true' for range violations
func (r RangeError) Resumable() bool { return true }

func (r RangeError) withContext(ctx string) error { r.ctx = addCtx(r.ctx, ctx); return r }

// UnknownTagError is returned when a tag name from an external source
// (dictionary file, generator input) does not name a member of the wire
// type family.
type UnknownTagError struct {
	Name string
}

// Error implements the error interface
func (u *UnknownTagError) Error() string {
	return "wire: unknown tag name " + quoteStr(u.Name)
}

// Resumable returns 'false' for UnknownTagErrors
func (u *UnknownTagError) Resumable() bool { return false }

// UnknownChannelError is returned when a record stream references a
// channel id that the dictionary does not define.
type UnknownChannelError struct {
	ID uint32

	ctx string
}

// Error implements the error interface
func (u UnknownChannelError) Error() string {
	out := "wire: unknown channel id " + strconv.FormatUint(uint64(u.ID), 10)
	if u.ctx != "" {
		out += " at " + u.ctx
	}
	return out
}

// Resumable returns 'false' for UnknownChannelErrors
func (u UnknownChannelError) Resumable() bool { return false }

func (u UnknownChannelError) withContext(ctx string) error { u.ctx = addCtx(u.ctx, ctx); return u }

func quoteStr(s string) string { return strconv.Quote(s) }
