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

import "slices"

// Operation names a remote Cognito Sync operation.
type Operation string

const (
	OpBulkPublish                  Operation = "BulkPublish"
	OpDeleteDataset                Operation = "DeleteDataset"
	OpDescribeDataset              Operation = "DescribeDataset"
	OpDescribeIdentityPoolUsage    Operation = "DescribeIdentityPoolUsage"
	OpDescribeIdentityUsage        Operation = "DescribeIdentityUsage"
	OpGetBulkPublishDetails        Operation = "GetBulkPublishDetails"
	OpGetCognitoEvents             Operation = "GetCognitoEvents"
	OpGetIdentityPoolConfiguration Operation = "GetIdentityPoolConfiguration"
	OpListDatasets                 Operation = "ListDatasets"
	OpListIdentityPoolUsage        Operation = "ListIdentityPoolUsage"
	OpListRecords                  Operation = "ListRecords"
	OpRegisterDevice               Operation = "RegisterDevice"
	OpSetCognitoEvents             Operation = "SetCognitoEvents"
	OpSetIdentityPoolConfiguration Operation = "SetIdentityPoolConfiguration"
	OpSubscribeToDataset           Operation = "SubscribeToDataset"
	OpUnsubscribeFromDataset       Operation = "UnsubscribeFromDataset"
	OpUpdateRecords                Operation = "UpdateRecords"
)

// CredentialMode tells which kind of credentials the service accepts for an
// operation. It is documentation only: the client never checks it, and a
// mismatch comes back from the service as ErrorNotAuthorized.
type CredentialMode int

const (
	// AnyCredentials accepts both developer and Cognito Identity credentials.
	AnyCredentials CredentialMode = iota
	// DeveloperCredentials rejects temporary Cognito Identity credentials.
	DeveloperCredentials
	// IdentityCredentials rejects developer credentials.
	IdentityCredentials
)

func (m CredentialMode) String() string {
	switch m {
	case DeveloperCredentials:
		return "developer"
	case IdentityCredentials:
		return "identity"
	default:
		return "any"
	}
}

// OperationSpec describes one catalog entry.
type OperationSpec struct {
	Name        Operation
	Errors      []ErrorCode
	Credentials CredentialMode
	// Payload is false when the success response carries no fields.
	Payload bool
	// Paginated operations accept MaxResults/NextToken.
	Paginated bool
}

// Declares reports whether code is part of the operation's declared error set.
func (s OperationSpec) Declares(code ErrorCode) bool {
	return slices.Contains(s.Errors, code)
}

var catalog = []OperationSpec{
	{
		Name:        OpBulkPublish,
		Errors:      []ErrorCode{ErrorNotAuthorized, ErrorInvalidParameter, ErrorResourceNotFound, ErrorInternalError, ErrorDuplicateRequest, ErrorAlreadyStreamed},
		Credentials: DeveloperCredentials,
		Payload:     true,
	},
	{
		Name:        OpDeleteDataset,
		Errors:      []ErrorCode{ErrorNotAuthorized, ErrorInvalidParameter, ErrorResourceNotFound, ErrorInternalError, ErrorTooManyRequests, ErrorResourceConflict},
		Credentials: AnyCredentials,
		Payload:     true,
	},
	{
		Name:        OpDescribeDataset,
		Errors:      []ErrorCode{ErrorNotAuthorized, ErrorInvalidParameter, ErrorResourceNotFound, ErrorInternalError, ErrorTooManyRequests},
		Credentials: AnyCredentials,
		Payload:     true,
	},
	{
		Name:        OpDescribeIdentityPoolUsage,
		Errors:      []ErrorCode{ErrorNotAuthorized, ErrorInvalidParameter, ErrorResourceNotFound, ErrorInternalError, ErrorTooManyRequests},
		Credentials: DeveloperCredentials,
		Payload:     true,
	},
	{
		Name:        OpDescribeIdentityUsage,
		Errors:      []ErrorCode{ErrorNotAuthorized, ErrorInvalidParameter, ErrorResourceNotFound, ErrorInternalError, ErrorTooManyRequests},
		Credentials: AnyCredentials,
		Payload:     true,
	},
	{
		Name:        OpGetBulkPublishDetails,
		Errors:      []ErrorCode{ErrorNotAuthorized, ErrorInvalidParameter, ErrorResourceNotFound, ErrorInternalError},
		Credentials: DeveloperCredentials,
		Payload:     true,
	},
	{
		Name:        OpGetCognitoEvents,
		Errors:      []ErrorCode{ErrorInvalidParameter, ErrorResourceNotFound, ErrorNotAuthorized, ErrorInternalError, ErrorTooManyRequests},
		Credentials: DeveloperCredentials,
		Payload:     true,
	},
	{
		Name:        OpGetIdentityPoolConfiguration,
		Errors:      []ErrorCode{ErrorNotAuthorized, ErrorInvalidParameter, ErrorResourceNotFound, ErrorInternalError, ErrorTooManyRequests},
		Credentials: DeveloperCredentials,
		Payload:     true,
	},
	{
		Name:        OpListDatasets,
		Errors:      []ErrorCode{ErrorNotAuthorized, ErrorInvalidParameter, ErrorInternalError, ErrorTooManyRequests},
		Credentials: AnyCredentials,
		Payload:     true,
		Paginated:   true,
	},
	{
		Name:        OpListIdentityPoolUsage,
		Errors:      []ErrorCode{ErrorNotAuthorized, ErrorInvalidParameter, ErrorInternalError, ErrorTooManyRequests},
		Credentials: DeveloperCredentials,
		Payload:     true,
		Paginated:   true,
	},
	{
		Name:        OpListRecords,
		Errors:      []ErrorCode{ErrorInvalidParameter, ErrorNotAuthorized, ErrorTooManyRequests, ErrorInternalError},
		Credentials: AnyCredentials,
		Payload:     true,
		Paginated:   true,
	},
	{
		Name:        OpRegisterDevice,
		Errors:      []ErrorCode{ErrorNotAuthorized, ErrorInvalidParameter, ErrorResourceNotFound, ErrorInternalError, ErrorInvalidConfiguration, ErrorTooManyRequests},
		Credentials: IdentityCredentials,
		Payload:     true,
	},
	{
		Name:        OpSetCognitoEvents,
		Errors:      []ErrorCode{ErrorInvalidParameter, ErrorResourceNotFound, ErrorNotAuthorized, ErrorInternalError, ErrorTooManyRequests},
		Credentials: DeveloperCredentials,
	},
	{
		Name:        OpSetIdentityPoolConfiguration,
		Errors:      []ErrorCode{ErrorNotAuthorized, ErrorInvalidParameter, ErrorResourceNotFound, ErrorInternalError, ErrorTooManyRequests, ErrorLimitExceeded},
		Credentials: DeveloperCredentials,
		Payload:     true,
	},
	{
		Name:        OpSubscribeToDataset,
		Errors:      []ErrorCode{ErrorNotAuthorized, ErrorInvalidParameter, ErrorResourceNotFound, ErrorInternalError, ErrorInvalidConfiguration, ErrorTooManyRequests},
		Credentials: IdentityCredentials,
	},
	{
		Name:        OpUnsubscribeFromDataset,
		Errors:      []ErrorCode{ErrorNotAuthorized, ErrorInvalidParameter, ErrorResourceNotFound, ErrorInternalError, ErrorInvalidConfiguration, ErrorTooManyRequests},
		Credentials: IdentityCredentials,
	},
	{
		Name: OpUpdateRecords,
		Errors: []ErrorCode{
			ErrorInvalidParameter, ErrorLimitExceeded, ErrorNotAuthorized, ErrorResourceNotFound, ErrorResourceConflict,
			ErrorInvalidLambdaFunctionOutput, ErrorLambdaThrottled, ErrorTooManyRequests, ErrorInternalError,
		},
		Credentials: AnyCredentials,
		Payload:     true,
	},
}

var catalogIndex = func() map[Operation]OperationSpec {
	idx := make(map[Operation]OperationSpec, len(catalog))
	for _, spec := range catalog {
		idx[spec.Name] = spec
	}
	return idx
}()

// Lookup returns the catalog entry for op.
func Lookup(op Operation) (OperationSpec, bool) {
	spec, ok := catalogIndex[op]
	return spec, ok
}

// Operations lists every catalog entry in a stable order.
func Operations() []OperationSpec {
	return slices.Clone(catalog)
}
