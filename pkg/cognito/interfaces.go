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

	"github.com/aws/aws-sdk-go-v2/service/cognitosync"
)

// SyncAPI defines the Cognito Sync operations the facade dispatches to.
// It is satisfied by the SDK client and by MemoryAPI, and mocked in tests.
type SyncAPI interface {
	BulkPublish(ctx context.Context, params *cognitosync.BulkPublishInput, optFns ...func(*cognitosync.Options)) (*cognitosync.BulkPublishOutput, error)
	DeleteDataset(ctx context.Context, params *cognitosync.DeleteDatasetInput, optFns ...func(*cognitosync.Options)) (*cognitosync.DeleteDatasetOutput, error)
	DescribeDataset(ctx context.Context, params *cognitosync.DescribeDatasetInput, optFns ...func(*cognitosync.Options)) (*cognitosync.DescribeDatasetOutput, error)
	DescribeIdentityPoolUsage(ctx context.Context, params *cognitosync.DescribeIdentityPoolUsageInput, optFns ...func(*cognitosync.Options)) (*cognitosync.DescribeIdentityPoolUsageOutput, error)
	DescribeIdentityUsage(ctx context.Context, params *cognitosync.DescribeIdentityUsageInput, optFns ...func(*cognitosync.Options)) (*cognitosync.DescribeIdentityUsageOutput, error)
	GetBulkPublishDetails(ctx context.Context, params *cognitosync.GetBulkPublishDetailsInput, optFns ...func(*cognitosync.Options)) (*cognitosync.GetBulkPublishDetailsOutput, error)
	GetCognitoEvents(ctx context.Context, params *cognitosync.GetCognitoEventsInput, optFns ...func(*cognitosync.Options)) (*cognitosync.GetCognitoEventsOutput, error)
	GetIdentityPoolConfiguration(ctx context.Context, params *cognitosync.GetIdentityPoolConfigurationInput, optFns ...func(*cognitosync.Options)) (*cognitosync.GetIdentityPoolConfigurationOutput, error)
	ListDatasets(ctx context.Context, params *cognitosync.ListDatasetsInput, optFns ...func(*cognitosync.Options)) (*cognitosync.ListDatasetsOutput, error)
	ListIdentityPoolUsage(ctx context.Context, params *cognitosync.ListIdentityPoolUsageInput, optFns ...func(*cognitosync.Options)) (*cognitosync.ListIdentityPoolUsageOutput, error)
	ListRecords(ctx context.Context, params *cognitosync.ListRecordsInput, optFns ...func(*cognitosync.Options)) (*cognitosync.ListRecordsOutput, error)
	RegisterDevice(ctx context.Context, params *cognitosync.RegisterDeviceInput, optFns ...func(*cognitosync.Options)) (*cognitosync.RegisterDeviceOutput, error)
	SetCognitoEvents(ctx context.Context, params *cognitosync.SetCognitoEventsInput, optFns ...func(*cognitosync.Options)) (*cognitosync.SetCognitoEventsOutput, error)
	SetIdentityPoolConfiguration(ctx context.Context, params *cognitosync.SetIdentityPoolConfigurationInput, optFns ...func(*cognitosync.Options)) (*cognitosync.SetIdentityPoolConfigurationOutput, error)
	SubscribeToDataset(ctx context.Context, params *cognitosync.SubscribeToDatasetInput, optFns ...func(*cognitosync.Options)) (*cognitosync.SubscribeToDatasetOutput, error)
	UnsubscribeFromDataset(ctx context.Context, params *cognitosync.UnsubscribeFromDatasetInput, optFns ...func(*cognitosync.Options)) (*cognitosync.UnsubscribeFromDatasetOutput, error)
	UpdateRecords(ctx context.Context, params *cognitosync.UpdateRecordsInput, optFns ...func(*cognitosync.Options)) (*cognitosync.UpdateRecordsOutput, error)
}

// Verify that *cognitosync.Client and MemoryAPI implement the SyncAPI interface
var (
	_ SyncAPI = (*cognitosync.Client)(nil)
	_ SyncAPI = (*MemoryAPI)(nil)
)
