package arkparser

import (
	"errors"
	"fmt"
)

// Sentinel errors for the decode paths. Named after the condition, not the
// call site, so callers can errors.Is against them regardless of which
// reader or framer produced them.
var (
	// ErrEndOfData is returned when a read would advance past the end of
	// the owning buffer.
	ErrEndOfData = errors.New("arkparser: end of data")

	// ErrCorruptHeader is returned when a file-level header carries an
	// impossible value (version out of range, object count out of
	// bounds).
	ErrCorruptHeader = errors.New("arkparser: corrupt header")

	// ErrUnexpectedPadding names the condition of a byte expected to be
	// zero that is not. No decode path returns or logs it: padding bytes
	// are skipped without being checked.
	ErrUnexpectedPadding = errors.New("arkparser: unexpected non-zero padding")

	// ErrSQLite wraps a failure opening or querying a Modern world-save
	// database.
	ErrSQLite = errors.New("arkparser: sqlite error")

	// ErrUnknownFileKind is returned by the format detector when neither
	// extension nor header bytes identify the input.
	ErrUnknownFileKind = errors.New("arkparser: unknown file kind")
)

// UnknownPropertyError is fatal: the property registry has no reader for
// the named type and cannot resynchronize without knowing its size.
type UnknownPropertyError struct {
	TypeName string
	Offset   int64
}

func (e *UnknownPropertyError) Error() string {
	return fmt.Sprintf("arkparser: unknown property type %q at offset 0x%X", e.TypeName, e.Offset)
}

// UnknownStructError describes a struct type with no registered reader.
// ReadStruct does not produce it: an unknown struct type falls back to a
// PropertyListStruct with no error and no log message.
type UnknownStructError struct {
	TypeName string
	Offset   int64
}

func (e *UnknownStructError) Error() string {
	return fmt.Sprintf("arkparser: unknown struct type %q at offset 0x%X", e.TypeName, e.Offset)
}

// ObjectDecodeError records a single object's decode failure in a bulk
// world-save decode. It is never returned from Load; it is accumulated in
// WorldSave.ParseErrors per spec's failure-isolation policy.
type ObjectDecodeError struct {
	GUID string
	Err  error
}

func (e *ObjectDecodeError) Error() string {
	return fmt.Sprintf("arkparser: object %s: %v", e.GUID, e.Err)
}

func (e *ObjectDecodeError) Unwrap() error { return e.Err }
