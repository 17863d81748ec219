/*
Copyright 2025 Piotr Janik.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package cognito

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aws/smithy-go"
)

// ErrorCode classifies a failed call.
type ErrorCode string

// Codes the service itself reports. The values match the exception names on
// the wire without the "Exception" suffix.
const (
	ErrorNotAuthorized               ErrorCode = "NotAuthorized"
	ErrorInvalidParameter            ErrorCode = "InvalidParameter"
	ErrorResourceNotFound            ErrorCode = "ResourceNotFound"
	ErrorInternalError               ErrorCode = "InternalError"
	ErrorTooManyRequests             ErrorCode = "TooManyRequests"
	ErrorResourceConflict            ErrorCode = "ResourceConflict"
	ErrorDuplicateRequest            ErrorCode = "DuplicateRequest"
	ErrorAlreadyStreamed             ErrorCode = "AlreadyStreamed"
	ErrorInvalidConfiguration        ErrorCode = "InvalidConfiguration"
	ErrorLimitExceeded               ErrorCode = "LimitExceeded"
	ErrorInvalidLambdaFunctionOutput ErrorCode = "InvalidLambdaFunctionOutput"
	ErrorLambdaThrottled             ErrorCode = "LambdaThrottled"
	ErrorConcurrentModification      ErrorCode = "ConcurrentModification"
)

// Codes produced on this side of the wire.
const (
	// ErrorValidation means the request was rejected before it was sent.
	ErrorValidation ErrorCode = "Validation"
	// ErrorTransport covers every failure the service never classified:
	// connectivity loss, malformed responses, cancelled contexts.
	ErrorTransport ErrorCode = "Transport"
)

var remoteCodes = map[string]ErrorCode{
	"NotAuthorizedException":               ErrorNotAuthorized,
	"InvalidParameterException":            ErrorInvalidParameter,
	"ResourceNotFoundException":            ErrorResourceNotFound,
	"InternalErrorException":               ErrorInternalError,
	"TooManyRequestsException":             ErrorTooManyRequests,
	"ResourceConflictException":            ErrorResourceConflict,
	"DuplicateRequestException":            ErrorDuplicateRequest,
	"AlreadyStreamedException":             ErrorAlreadyStreamed,
	"InvalidConfigurationException":        ErrorInvalidConfiguration,
	"LimitExceededException":               ErrorLimitExceeded,
	"InvalidLambdaFunctionOutputException": ErrorInvalidLambdaFunctionOutput,
	"LambdaThrottledException":             ErrorLambdaThrottled,
	"ConcurrentModificationException":      ErrorConcurrentModification,
}

// Error is the error every facade call resolves with on failure. The
// underlying SDK error is kept so callers can still errors.As into the
// typed exceptions of the types package.
type Error struct {
	Op   Operation
	Code ErrorCode
	// RemoteCode is the raw code the service sent, empty for local failures.
	RemoteCode string
	Err        error
}

func (e *Error) Error() string {
	return fmt.Sprintf("cognito sync %s: %s: %v", e.Op, e.Code, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Remote reports whether the service classified the failure.
func (e *Error) Remote() bool {
	return e.RemoteCode != ""
}

// Declared reports whether the code belongs to the operation's declared
// error set.
func (e *Error) Declared() bool {
	spec, ok := Lookup(e.Op)
	return ok && spec.Declares(e.Code)
}

// Classify wraps err into an *Error for op. A nil err stays nil and an err
// that is already an *Error is returned unchanged.
func Classify(op Operation, err error) error {
	if err == nil {
		return nil
	}
	var ce *Error
	if errors.As(err, &ce) {
		return ce
	}

	var ipe smithy.InvalidParamsError
	if errors.As(err, &ipe) {
		return &Error{Op: op, Code: ErrorValidation, Err: err}
	}
	var ipp *smithy.InvalidParamsError
	if errors.As(err, &ipp) {
		return &Error{Op: op, Code: ErrorValidation, Err: err}
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		remote := apiErr.ErrorCode()
		return &Error{Op: op, Code: codeFromRemote(remote), RemoteCode: remote, Err: err}
	}

	return &Error{Op: op, Code: ErrorTransport, Err: err}
}

// codeFromRemote maps a wire code onto an ErrorCode. Unknown codes keep their
// name so that a new exception type is still visible to callers.
func codeFromRemote(remote string) ErrorCode {
	if code, ok := remoteCodes[remote]; ok {
		return code
	}
	return ErrorCode(strings.TrimSuffix(remote, "Exception"))
}

// CodeOf returns the classification of err, or "" when err is nil or was not
// produced by this package.
func CodeOf(err error) ErrorCode {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Code
	}
	return ""
}

// IsCode reports whether err is classified as code.
func IsCode(err error, code ErrorCode) bool {
	return err != nil && CodeOf(err) == code
}

// IsNotFound reports whether err is a ResourceNotFound failure.
func IsNotFound(err error) bool {
	return IsCode(err, ErrorResourceNotFound)
}

// IsConflict reports whether err is a ResourceConflict failure, which is how
// the service rejects record patches carrying a stale sync count.
func IsConflict(err error) bool {
	return IsCode(err, ErrorResourceConflict)
}

// IsRetryable reports whether repeating the same call may succeed. The
// client itself never retries.
func IsRetryable(err error) bool {
	switch CodeOf(err) {
	case ErrorTooManyRequests, ErrorInternalError, ErrorLambdaThrottled, ErrorConcurrentModification, ErrorTransport:
		return true
	default:
		return false
	}
}
