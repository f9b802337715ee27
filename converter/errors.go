package converter

import (
	"errors"
	"fmt"
	"reflect"
)

// Kind classifies a registry failure. Every Kind has a stable Code that
// presentation layers (see the messages package) use as a catalog key.
type Kind int

const (
	KindUnknown Kind = iota

	// Registration-time failures.
	KindCandidateRequired
	KindCandidateNotAccessible
	KindMethodNotAccessible
	KindMissingReturnType
	KindMissingSourceParameter
	KindUnsupportedSignature
	KindIdentityConversionRejected
	KindDuplicateRegistration
	KindConflictingConverter
	KindNoConvertersFound

	// Conversion-time failures.
	KindNullTarget
	KindNoConverterFound
	KindTooFewArguments
	KindTooManyArguments
	KindArgumentTypeMismatch
	KindConversionFailed
)

var kindCodes = map[Kind]string{
	KindUnknown:                    "converter.unknown",
	KindCandidateRequired:          "converter.candidate_required",
	KindCandidateNotAccessible:     "converter.candidate_not_accessible",
	KindMethodNotAccessible:        "converter.method_not_accessible",
	KindMissingReturnType:          "converter.missing_return_type",
	KindMissingSourceParameter:     "converter.missing_source_parameter",
	KindUnsupportedSignature:       "converter.unsupported_signature",
	KindIdentityConversionRejected: "converter.identity_conversion_rejected",
	KindDuplicateRegistration:      "converter.duplicate_registration",
	KindConflictingConverter:       "converter.conflicting_converter",
	KindNoConvertersFound:          "converter.no_converters_found",
	KindNullTarget:                 "converter.null_target",
	KindNoConverterFound:           "converter.no_converter_found",
	KindTooFewArguments:            "converter.too_few_arguments",
	KindTooManyArguments:           "converter.too_many_arguments",
	KindArgumentTypeMismatch:       "converter.argument_type_mismatch",
	KindConversionFailed:           "converter.conversion_failed",
}

// Sentinel errors, one per Kind. A classified *Error unwraps to the sentinel
// of its Kind, so callers can branch with errors.Is.
var (
	ErrCandidateRequired          = errors.New("converter candidate is required")
	ErrCandidateNotAccessible     = errors.New("converter candidate is not accessible")
	ErrMethodNotAccessible        = errors.New("converter method is not accessible")
	ErrMissingReturnType          = errors.New("converter method has no return type")
	ErrMissingSourceParameter     = errors.New("converter method takes no source parameter")
	ErrUnsupportedSignature       = errors.New("converter method signature is not supported")
	ErrIdentityConversionRejected = errors.New("converter source and target types are the same")
	ErrDuplicateRegistration      = errors.New("converter already registered")
	ErrConflictingConverter       = errors.New("conflicting converter registered")
	ErrNoConvertersFound          = errors.New("candidate exposes no converters")
	ErrNullTarget                 = errors.New("target type is required")
	ErrNoConverterFound           = errors.New("no converter found")
	ErrTooFewArguments            = errors.New("too few converter arguments")
	ErrTooManyArguments           = errors.New("too many converter arguments")
	ErrArgumentTypeMismatch       = errors.New("converter argument type mismatch")
	ErrConversionFailed           = errors.New("conversion failed")
)

var kindSentinels = map[Kind]error{
	KindCandidateRequired:          ErrCandidateRequired,
	KindCandidateNotAccessible:     ErrCandidateNotAccessible,
	KindMethodNotAccessible:        ErrMethodNotAccessible,
	KindMissingReturnType:          ErrMissingReturnType,
	KindMissingSourceParameter:     ErrMissingSourceParameter,
	KindUnsupportedSignature:       ErrUnsupportedSignature,
	KindIdentityConversionRejected: ErrIdentityConversionRejected,
	KindDuplicateRegistration:      ErrDuplicateRegistration,
	KindConflictingConverter:       ErrConflictingConverter,
	KindNoConvertersFound:          ErrNoConvertersFound,
	KindNullTarget:                 ErrNullTarget,
	KindNoConverterFound:           ErrNoConverterFound,
	KindTooFewArguments:            ErrTooFewArguments,
	KindTooManyArguments:           ErrTooManyArguments,
	KindArgumentTypeMismatch:       ErrArgumentTypeMismatch,
	KindConversionFailed:           ErrConversionFailed,
}

// Code returns the stable identifier of the kind, e.g. "converter.no_converter_found".
func (k Kind) Code() string {
	if code, ok := kindCodes[k]; ok {
		return code
	}
	return kindCodes[KindUnknown]
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	return k.Code()
}

// RegistrationTime reports whether the kind is raised by Register.
func (k Kind) RegistrationTime() bool {
	return k >= KindCandidateRequired && k <= KindNoConvertersFound
}

// ConversionTime reports whether the kind is raised by Convert.
func (k Kind) ConversionTime() bool {
	return k >= KindNullTarget && k <= KindConversionFailed
}

// Error is a classified registry failure. It carries the structured context a
// presentation layer needs to render it: the types involved and the converter
// owner. Fields that do not apply to the Kind are left nil or empty.
type Error struct {
	Kind Kind

	// Source and Target identify the conversion direction.
	Source reflect.Type
	Target reflect.Type

	// Owner is the candidate type that declared the converter. For
	// registration failures it is the candidate being registered.
	Owner reflect.Type

	// Existing is the candidate type already holding the pair (ConflictingConverter).
	Existing reflect.Type

	// Method is the converter name as reported by discovery.
	Method string

	// Message is set on failures raised by converters through Fail.
	Message string

	// Err is the underlying cause, if any.
	Err error
}

// Fail builds a classified conversion failure. Converters return it to
// report a domain error; the registry passes it through unchanged instead of
// wrapping it as KindConversionFailed.
//
// Example:
//
//	func (Text) ParseInt64(s string) (int64, error) {
//	    n, err := strconv.ParseInt(s, 10, 64)
//	    if err != nil {
//	        return 0, converter.Fail("int64 conversion failed", err)
//	    }
//	    return n, nil
//	}
func Fail(msg string, cause error) *Error {
	return &Error{Kind: KindConversionFailed, Message: msg, Err: cause}
}

func (e *Error) Error() string {
	if e.Message != "" {
		if e.Err != nil {
			return fmt.Sprintf("%s: %v", e.Message, e.Err)
		}
		return e.Message
	}

	switch e.Kind {
	case KindCandidateRequired:
		return "converter: candidate cannot be nil"
	case KindCandidateNotAccessible:
		return fmt.Sprintf("converter: candidate %s is not an exported named type", typeName(e.Owner))
	case KindMethodNotAccessible:
		return fmt.Sprintf("converter: method %s of %s is not accessible", e.Method, typeName(e.Owner))
	case KindMissingReturnType:
		return fmt.Sprintf("converter: method %s of %s has no return type", e.Method, typeName(e.Owner))
	case KindMissingSourceParameter:
		return fmt.Sprintf("converter: method %s of %s takes no source parameter", e.Method, typeName(e.Owner))
	case KindUnsupportedSignature:
		return fmt.Sprintf("converter: method %s of %s must be func(S, ...) T or func(S, ...) (T, error)", e.Method, typeName(e.Owner))
	case KindIdentityConversionRejected:
		return fmt.Sprintf("converter: method %s of %s converts %s to itself", e.Method, typeName(e.Owner), typeName(e.Source))
	case KindDuplicateRegistration:
		return fmt.Sprintf("converter: %s to %s is already registered by %s", typeName(e.Source), typeName(e.Target), typeName(e.Owner))
	case KindConflictingConverter:
		return fmt.Sprintf("converter: %s converts %s to %s, already handled by %s",
			typeName(e.Owner), typeName(e.Source), typeName(e.Target), typeName(e.Existing))
	case KindNoConvertersFound:
		return fmt.Sprintf("converter: candidate %s exposes no converters", typeName(e.Owner))
	case KindNullTarget:
		return "converter: target type cannot be nil"
	case KindNoConverterFound:
		return fmt.Sprintf("converter: no converter found from %s to %s", typeName(e.Source), typeName(e.Target))
	case KindTooFewArguments:
		return fmt.Sprintf("converter: too few arguments converting %s to %s with %s", typeName(e.Source), typeName(e.Target), typeName(e.Owner))
	case KindTooManyArguments:
		return fmt.Sprintf("converter: too many arguments converting %s to %s with %s", typeName(e.Source), typeName(e.Target), typeName(e.Owner))
	case KindArgumentTypeMismatch:
		return fmt.Sprintf("converter: argument type mismatch converting %s to %s with %s", typeName(e.Source), typeName(e.Target), typeName(e.Owner))
	case KindConversionFailed:
		if e.Err != nil {
			return fmt.Sprintf("converter: converting %s to %s with %s failed: %v", typeName(e.Source), typeName(e.Target), typeName(e.Owner), e.Err)
		}
		return fmt.Sprintf("converter: converting %s to %s with %s failed", typeName(e.Source), typeName(e.Target), typeName(e.Owner))
	}
	return "converter: unknown failure"
}

// Unwrap exposes both the per-kind sentinel and the cause.
func (e *Error) Unwrap() []error {
	var errs []error
	if sentinel, ok := kindSentinels[e.Kind]; ok {
		errs = append(errs, sentinel)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// KindOf returns the Kind of the first classified error in err's chain, or
// KindUnknown when there is none.
func KindOf(err error) Kind {
	var classified *Error
	if errors.As(err, &classified) {
		return classified.Kind
	}
	return KindUnknown
}
