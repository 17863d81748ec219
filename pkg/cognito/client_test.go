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
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cognitosync"
	"github.com/aws/aws-sdk-go-v2/service/cognitosync/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cogniteo/cognito-sync-client/pkg/cognito/mocks"
)

const (
	testPoolID     = "us-east-1:0d5d1b5c-0000-4000-8000-000000000001"
	testIdentityID = "us-east-1:6a4f2e3c-0000-4000-8000-000000000002"
)

// operationCase drives one facade method with a valid request.
type operationCase struct {
	op     Operation
	input  string
	output any
	call   func(ctx context.Context, c *Client) (any, error)
}

func settle[T any](ctx context.Context, f *Future[T]) (any, error) {
	v, err := f.Wait(ctx)
	if v == nil {
		return nil, err
	}
	return v, err
}

func operationCases() []operationCase {
	pool := aws.String(testPoolID)
	identity := aws.String(testIdentityID)
	name := aws.String("abc")

	return []operationCase{
		{
			op:     OpBulkPublish,
			input:  "*cognitosync.BulkPublishInput",
			output: &cognitosync.BulkPublishOutput{IdentityPoolId: pool},
			call: func(ctx context.Context, c *Client) (any, error) {
				return settle(ctx, c.BulkPublish(ctx, &cognitosync.BulkPublishInput{IdentityPoolId: pool}))
			},
		},
		{
			op:     OpDeleteDataset,
			input:  "*cognitosync.DeleteDatasetInput",
			output: &cognitosync.DeleteDatasetOutput{Dataset: &types.Dataset{DatasetName: name}},
			call: func(ctx context.Context, c *Client) (any, error) {
				return settle(ctx, c.DeleteDataset(ctx, &cognitosync.DeleteDatasetInput{IdentityPoolId: pool, IdentityId: identity, DatasetName: name}))
			},
		},
		{
			op:     OpDescribeDataset,
			input:  "*cognitosync.DescribeDatasetInput",
			output: &cognitosync.DescribeDatasetOutput{Dataset: &types.Dataset{DatasetName: name}},
			call: func(ctx context.Context, c *Client) (any, error) {
				return settle(ctx, c.DescribeDataset(ctx, &cognitosync.DescribeDatasetInput{IdentityPoolId: pool, IdentityId: identity, DatasetName: name}))
			},
		},
		{
			op:     OpDescribeIdentityPoolUsage,
			input:  "*cognitosync.DescribeIdentityPoolUsageInput",
			output: &cognitosync.DescribeIdentityPoolUsageOutput{IdentityPoolUsage: &types.IdentityPoolUsage{IdentityPoolId: pool}},
			call: func(ctx context.Context, c *Client) (any, error) {
				return settle(ctx, c.DescribeIdentityPoolUsage(ctx, &cognitosync.DescribeIdentityPoolUsageInput{IdentityPoolId: pool}))
			},
		},
		{
			op:     OpDescribeIdentityUsage,
			input:  "*cognitosync.DescribeIdentityUsageInput",
			output: &cognitosync.DescribeIdentityUsageOutput{IdentityUsage: &types.IdentityUsage{IdentityId: identity}},
			call: func(ctx context.Context, c *Client) (any, error) {
				return settle(ctx, c.DescribeIdentityUsage(ctx, &cognitosync.DescribeIdentityUsageInput{IdentityPoolId: pool, IdentityId: identity}))
			},
		},
		{
			op:     OpGetBulkPublishDetails,
			input:  "*cognitosync.GetBulkPublishDetailsInput",
			output: &cognitosync.GetBulkPublishDetailsOutput{BulkPublishStatus: types.BulkPublishStatusNotStarted},
			call: func(ctx context.Context, c *Client) (any, error) {
				return settle(ctx, c.GetBulkPublishDetails(ctx, &cognitosync.GetBulkPublishDetailsInput{IdentityPoolId: pool}))
			},
		},
		{
			op:     OpGetCognitoEvents,
			input:  "*cognitosync.GetCognitoEventsInput",
			output: &cognitosync.GetCognitoEventsOutput{Events: map[string]string{EventSyncTrigger: "arn:aws:lambda:us-east-1:123456789012:function:sync"}},
			call: func(ctx context.Context, c *Client) (any, error) {
				return settle(ctx, c.GetCognitoEvents(ctx, &cognitosync.GetCognitoEventsInput{IdentityPoolId: pool}))
			},
		},
		{
			op:     OpGetIdentityPoolConfiguration,
			input:  "*cognitosync.GetIdentityPoolConfigurationInput",
			output: &cognitosync.GetIdentityPoolConfigurationOutput{IdentityPoolId: pool},
			call: func(ctx context.Context, c *Client) (any, error) {
				return settle(ctx, c.GetIdentityPoolConfiguration(ctx, &cognitosync.GetIdentityPoolConfigurationInput{IdentityPoolId: pool}))
			},
		},
		{
			op:     OpListDatasets,
			input:  "*cognitosync.ListDatasetsInput",
			output: &cognitosync.ListDatasetsOutput{Datasets: []types.Dataset{{DatasetName: name}}},
			call: func(ctx context.Context, c *Client) (any, error) {
				return settle(ctx, c.ListDatasets(ctx, &cognitosync.ListDatasetsInput{IdentityPoolId: pool, IdentityId: identity}))
			},
		},
		{
			op:     OpListIdentityPoolUsage,
			input:  "*cognitosync.ListIdentityPoolUsageInput",
			output: &cognitosync.ListIdentityPoolUsageOutput{IdentityPoolUsages: []types.IdentityPoolUsage{{IdentityPoolId: pool}}},
			call: func(ctx context.Context, c *Client) (any, error) {
				return settle(ctx, c.ListIdentityPoolUsage(ctx, &cognitosync.ListIdentityPoolUsageInput{}))
			},
		},
		{
			op:     OpListRecords,
			input:  "*cognitosync.ListRecordsInput",
			output: &cognitosync.ListRecordsOutput{SyncSessionToken: aws.String("session"), DatasetExists: true},
			call: func(ctx context.Context, c *Client) (any, error) {
				return settle(ctx, c.ListRecords(ctx, &cognitosync.ListRecordsInput{IdentityPoolId: pool, IdentityId: identity, DatasetName: name}))
			},
		},
		{
			op:     OpRegisterDevice,
			input:  "*cognitosync.RegisterDeviceInput",
			output: &cognitosync.RegisterDeviceOutput{DeviceId: aws.String("device-1")},
			call: func(ctx context.Context, c *Client) (any, error) {
				return settle(ctx, c.RegisterDevice(ctx, &cognitosync.RegisterDeviceInput{
					IdentityPoolId: pool, IdentityId: identity, Platform: types.PlatformGcm, Token: aws.String("push-token"),
				}))
			},
		},
		{
			op:     OpSetCognitoEvents,
			input:  "*cognitosync.SetCognitoEventsInput",
			output: &cognitosync.SetCognitoEventsOutput{},
			call: func(ctx context.Context, c *Client) (any, error) {
				return settle(ctx, c.SetCognitoEvents(ctx, &cognitosync.SetCognitoEventsInput{IdentityPoolId: pool, Events: map[string]string{}}))
			},
		},
		{
			op:     OpSetIdentityPoolConfiguration,
			input:  "*cognitosync.SetIdentityPoolConfigurationInput",
			output: &cognitosync.SetIdentityPoolConfigurationOutput{IdentityPoolId: pool},
			call: func(ctx context.Context, c *Client) (any, error) {
				return settle(ctx, c.SetIdentityPoolConfiguration(ctx, &cognitosync.SetIdentityPoolConfigurationInput{IdentityPoolId: pool}))
			},
		},
		{
			op:     OpSubscribeToDataset,
			input:  "*cognitosync.SubscribeToDatasetInput",
			output: &cognitosync.SubscribeToDatasetOutput{},
			call: func(ctx context.Context, c *Client) (any, error) {
				return settle(ctx, c.SubscribeToDataset(ctx, &cognitosync.SubscribeToDatasetInput{
					IdentityPoolId: pool, IdentityId: identity, DatasetName: name, DeviceId: aws.String("device-1"),
				}))
			},
		},
		{
			op:     OpUnsubscribeFromDataset,
			input:  "*cognitosync.UnsubscribeFromDatasetInput",
			output: &cognitosync.UnsubscribeFromDatasetOutput{},
			call: func(ctx context.Context, c *Client) (any, error) {
				return settle(ctx, c.UnsubscribeFromDataset(ctx, &cognitosync.UnsubscribeFromDatasetInput{
					IdentityPoolId: pool, IdentityId: identity, DatasetName: name, DeviceId: aws.String("device-1"),
				}))
			},
		},
		{
			op:     OpUpdateRecords,
			input:  "*cognitosync.UpdateRecordsInput",
			output: &cognitosync.UpdateRecordsOutput{Records: []types.Record{{Key: aws.String("k"), Value: aws.String("v"), SyncCount: aws.Int64(1)}}},
			call: func(ctx context.Context, c *Client) (any, error) {
				return settle(ctx, c.UpdateRecords(ctx, &cognitosync.UpdateRecordsInput{
					IdentityPoolId: pool, IdentityId: identity, DatasetName: name, SyncSessionToken: aws.String("session"),
					RecordPatches: []types.RecordPatch{{Op: types.OperationReplace, Key: aws.String("k"), Value: aws.String("v"), SyncCount: aws.Int64(0)}},
				}))
			},
		},
	}
}

func TestNew(t *testing.T) {
	t.Run("nil api panics", func(t *testing.T) {
		assert.Panics(t, func() { New(nil) })
	})

	t.Run("options are applied", func(t *testing.T) {
		cfg := Config{Region: "eu-west-1"}
		c := New(mocks.NewMockSyncAPI(t), WithConfig(cfg), nil)
		assert.Equal(t, cfg, c.Config())
	})
}

func TestNewFromConfig(t *testing.T) {
	c, err := NewFromConfig(context.Background(), Config{
		Region:          "us-east-1",
		Endpoint:        "http://127.0.0.1:4000",
		AccessKeyID:     "test",
		SecretAccessKey: "test",
	})
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.IsType(t, &cognitosync.Client{}, c.api)
	assert.Equal(t, "http://127.0.0.1:4000", c.Config().Endpoint)
}

func TestClient_Operations(t *testing.T) {
	for _, tc := range operationCases() {
		t.Run(string(tc.op), func(t *testing.T) {
			mockAPI := mocks.NewMockSyncAPI(t)
			mockAPI.On(string(tc.op), mock.Anything, mock.AnythingOfType(tc.input)).Return(tc.output, nil).Once()

			result, err := tc.call(context.Background(), New(mockAPI))

			require.NoError(t, err)
			assert.Same(t, tc.output, result)
		})
	}
}

func TestClient_OperationErrors(t *testing.T) {
	remote := map[Operation]error{
		OpBulkPublish:                  &types.DuplicateRequestException{Message: aws.String("in progress")},
		OpDeleteDataset:                &types.ResourceConflictException{Message: aws.String("conflict")},
		OpDescribeDataset:              &types.ResourceNotFoundException{Message: aws.String("missing")},
		OpDescribeIdentityPoolUsage:    &types.NotAuthorizedException{Message: aws.String("denied")},
		OpDescribeIdentityUsage:        &types.TooManyRequestsException{Message: aws.String("slow down")},
		OpGetBulkPublishDetails:        &types.InternalErrorException{Message: aws.String("boom")},
		OpGetCognitoEvents:             &types.InvalidParameterException{Message: aws.String("bad")},
		OpGetIdentityPoolConfiguration: &types.ResourceNotFoundException{Message: aws.String("missing")},
		OpListDatasets:                 &types.NotAuthorizedException{Message: aws.String("denied")},
		OpListIdentityPoolUsage:        &types.TooManyRequestsException{Message: aws.String("slow down")},
		OpListRecords:                  &types.InvalidParameterException{Message: aws.String("bad")},
		OpRegisterDevice:               &types.InvalidConfigurationException{Message: aws.String("no push")},
		OpSetCognitoEvents:             &types.ResourceNotFoundException{Message: aws.String("missing")},
		OpSetIdentityPoolConfiguration: &types.LimitExceededException{Message: aws.String("limit")},
		OpSubscribeToDataset:           &types.InvalidConfigurationException{Message: aws.String("no push")},
		OpUnsubscribeFromDataset:       &types.ResourceNotFoundException{Message: aws.String("missing")},
		OpUpdateRecords:                &types.LambdaThrottledException{Message: aws.String("throttled")},
	}

	for _, tc := range operationCases() {
		t.Run(string(tc.op), func(t *testing.T) {
			remoteErr := remote[tc.op]
			require.NotNil(t, remoteErr)

			mockAPI := mocks.NewMockSyncAPI(t)
			mockAPI.On(string(tc.op), mock.Anything, mock.AnythingOfType(tc.input)).Return(nil, remoteErr).Once()

			result, err := tc.call(context.Background(), New(mockAPI))

			require.Error(t, err)
			assert.Nil(t, result)

			var ce *Error
			require.ErrorAs(t, err, &ce)
			assert.Equal(t, tc.op, ce.Op)
			assert.True(t, ce.Remote())
			assert.True(t, ce.Declared(), "%s should be declared for %s", ce.Code, tc.op)
			assert.ErrorIs(t, err, remoteErr)
		})
	}
}

func TestClient_Validation(t *testing.T) {
	tests := []struct {
		name string
		call func(ctx context.Context, c *Client) (any, error)
	}{
		{
			name: "list datasets without identity",
			call: func(ctx context.Context, c *Client) (any, error) {
				return settle(ctx, c.ListDatasets(ctx, &cognitosync.ListDatasetsInput{IdentityPoolId: aws.String(testPoolID)}))
			},
		},
		{
			name: "describe dataset with empty name",
			call: func(ctx context.Context, c *Client) (any, error) {
				return settle(ctx, c.DescribeDataset(ctx, &cognitosync.DescribeDatasetInput{
					IdentityPoolId: aws.String(testPoolID), IdentityId: aws.String(testIdentityID), DatasetName: aws.String(""),
				}))
			},
		},
		{
			name: "bulk publish without pool",
			call: func(ctx context.Context, c *Client) (any, error) {
				return settle(ctx, c.BulkPublish(ctx, &cognitosync.BulkPublishInput{}))
			},
		},
		{
			name: "register device without platform",
			call: func(ctx context.Context, c *Client) (any, error) {
				return settle(ctx, c.RegisterDevice(ctx, &cognitosync.RegisterDeviceInput{
					IdentityPoolId: aws.String(testPoolID), IdentityId: aws.String(testIdentityID), Token: aws.String("t"),
				}))
			},
		},
		{
			name: "set events without events",
			call: func(ctx context.Context, c *Client) (any, error) {
				return settle(ctx, c.SetCognitoEvents(ctx, &cognitosync.SetCognitoEventsInput{IdentityPoolId: aws.String(testPoolID)}))
			},
		},
		{
			name: "update records without session token",
			call: func(ctx context.Context, c *Client) (any, error) {
				return settle(ctx, c.UpdateRecords(ctx, &cognitosync.UpdateRecordsInput{
					IdentityPoolId: aws.String(testPoolID), IdentityId: aws.String(testIdentityID), DatasetName: aws.String("abc"),
				}))
			},
		},
		{
			name: "update records with incomplete patch",
			call: func(ctx context.Context, c *Client) (any, error) {
				return settle(ctx, c.UpdateRecords(ctx, &cognitosync.UpdateRecordsInput{
					IdentityPoolId: aws.String(testPoolID), IdentityId: aws.String(testIdentityID), DatasetName: aws.String("abc"),
					SyncSessionToken: aws.String("session"),
					RecordPatches:    []types.RecordPatch{{Op: types.OperationReplace, Key: aws.String("k")}},
				}))
			},
		},
		{
			name: "nil input",
			call: func(ctx context.Context, c *Client) (any, error) {
				return settle(ctx, c.DeleteDataset(ctx, nil))
			},
		},
		{
			name: "subscribe without device",
			call: func(ctx context.Context, c *Client) (any, error) {
				return settle(ctx, c.SubscribeToDataset(ctx, &cognitosync.SubscribeToDatasetInput{
					IdentityPoolId: aws.String(testPoolID), IdentityId: aws.String(testIdentityID), DatasetName: aws.String("abc"),
				}))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No expectations: a request reaching the api fails the test.
			mockAPI := mocks.NewMockSyncAPI(t)

			result, err := tt.call(context.Background(), New(mockAPI))

			require.Error(t, err)
			assert.Nil(t, result)
			assert.Equal(t, ErrorValidation, CodeOf(err))
			mockAPI.AssertExpectations(t)
		})
	}
}

func TestClient_ValidationResolvesImmediately(t *testing.T) {
	c := New(mocks.NewMockSyncAPI(t))

	f := c.ListRecords(context.Background(), &cognitosync.ListRecordsInput{})

	assert.True(t, f.Resolved())
}

func TestClient_TransportFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "connection refused", err: errors.New("dial tcp 127.0.0.1:4000: connect: connection refused")},
		{name: "context deadline", err: context.DeadlineExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockAPI := mocks.NewMockSyncAPI(t)
			mockAPI.On("ListDatasets", mock.Anything, mock.AnythingOfType("*cognitosync.ListDatasetsInput")).Return(nil, tt.err)

			out, err := New(mockAPI).ListDatasets(context.Background(), &cognitosync.ListDatasetsInput{
				IdentityPoolId: aws.String(testPoolID),
				IdentityId:     aws.String(testIdentityID),
			}).Wait(context.Background())

			require.Error(t, err)
			assert.Nil(t, out)
			assert.Equal(t, ErrorTransport, CodeOf(err))
			assert.ErrorIs(t, err, tt.err)
			assert.True(t, IsRetryable(err))
		})
	}
}

func TestClient_PanicInTransport(t *testing.T) {
	mockAPI := mocks.NewMockSyncAPI(t)
	mockAPI.On("GetCognitoEvents", mock.Anything, mock.Anything).Panic("connection reset")

	out, err := New(mockAPI).GetCognitoEvents(context.Background(), &cognitosync.GetCognitoEventsInput{
		IdentityPoolId: aws.String(testPoolID),
	}).Wait(context.Background())

	require.Error(t, err)
	assert.Nil(t, out)
	assert.Equal(t, ErrorTransport, CodeOf(err))
}

func TestClient_EmptyResponse(t *testing.T) {
	mockAPI := mocks.NewMockSyncAPI(t)
	mockAPI.On("SubscribeToDataset", mock.Anything, mock.Anything).Return(nil, nil)

	out, err := New(mockAPI).SubscribeToDataset(context.Background(), &cognitosync.SubscribeToDatasetInput{
		IdentityPoolId: aws.String(testPoolID),
		IdentityId:     aws.String(testIdentityID),
		DatasetName:    aws.String("abc"),
		DeviceId:       aws.String("device-1"),
	}).Wait(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, out)
}

func TestClient_AbandonedWait(t *testing.T) {
	release := make(chan struct{})
	output := &cognitosync.DescribeDatasetOutput{Dataset: &types.Dataset{DatasetName: aws.String("abc")}}

	mockAPI := mocks.NewMockSyncAPI(t)
	mockAPI.On("DescribeDataset", mock.Anything, mock.Anything).Run(func(mock.Arguments) {
		<-release
	}).Return(output, nil).Once()

	f := New(mockAPI).DescribeDataset(context.Background(), &cognitosync.DescribeDatasetInput{
		IdentityPoolId: aws.String(testPoolID),
		IdentityId:     aws.String(testIdentityID),
		DatasetName:    aws.String("abc"),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := f.Wait(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.False(t, f.Resolved())

	close(release)
	out, err := f.Wait(context.Background())
	require.NoError(t, err)
	assert.Same(t, output, out)
}

func TestClient_DoesNotMutateRequest(t *testing.T) {
	mockAPI := mocks.NewMockSyncAPI(t)
	mockAPI.On("ListRecords", mock.Anything, mock.Anything).Return(&cognitosync.ListRecordsOutput{}, nil)

	in := &cognitosync.ListRecordsInput{
		IdentityPoolId: aws.String(testPoolID),
		IdentityId:     aws.String(testIdentityID),
		DatasetName:    aws.String("abc"),
		LastSyncCount:  aws.Int64(3),
	}
	want := *in

	_, err := New(mockAPI).ListRecords(context.Background(), in).Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, *in)
	mockAPI.AssertCalled(t, "ListRecords", mock.Anything, in)
}
