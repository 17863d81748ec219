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
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cognitosync"
	"github.com/aws/aws-sdk-go-v2/service/cognitosync/types"
	"golang.org/x/sync/errgroup"

	"github.com/cogniteo/cognito-sync-client/pkg/dataset"
)

// DatasetClient implements dataset.Client on top of the facade for one
// identity pool. Calls block until the service answers.
type DatasetClient struct {
	client         *Client
	identityPoolID string
	// DeviceID is reported as the author of pushed changes when set.
	DeviceID string
	// Concurrency bounds PullAll; zero means 4.
	Concurrency int
}

var _ dataset.Client = (*DatasetClient)(nil)

// NewDatasetClient creates a dataset client for identityPoolID.
func NewDatasetClient(client *Client, identityPoolID string) (*DatasetClient, error) {
	if client == nil {
		return nil, fmt.Errorf("client cannot be nil")
	}
	if identityPoolID == "" {
		return nil, fmt.Errorf("identityPoolID cannot be empty")
	}
	return &DatasetClient{client: client, identityPoolID: identityPoolID}, nil
}

// List lists all datasets of an identity
func (d *DatasetClient) List(ctx context.Context, identityID string) ([]*dataset.Dataset, error) {
	if identityID == "" {
		return nil, fmt.Errorf("identityID cannot be empty")
	}

	var datasets []*dataset.Dataset
	var nextToken *string

	for {
		output, err := d.client.ListDatasets(ctx, &cognitosync.ListDatasetsInput{
			IdentityPoolId: aws.String(d.identityPoolID),
			IdentityId:     aws.String(identityID),
			NextToken:      nextToken,
		}).Wait(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list datasets: %w", err)
		}

		for i := range output.Datasets {
			datasets = append(datasets, fromDataset(&output.Datasets[i]))
		}

		nextToken = output.NextToken
		if nextToken == nil {
			break
		}
	}

	return datasets, nil
}

// Get retrieves a dataset's metadata
func (d *DatasetClient) Get(ctx context.Context, identityID, name string) (*dataset.Dataset, error) {
	output, err := d.client.DescribeDataset(ctx, &cognitosync.DescribeDatasetInput{
		IdentityPoolId: aws.String(d.identityPoolID),
		IdentityId:     aws.String(identityID),
		DatasetName:    aws.String(name),
	}).Wait(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to describe dataset %s: %w", name, err)
	}
	if output.Dataset == nil {
		return nil, fmt.Errorf("dataset %s: empty response", name)
	}
	return fromDataset(output.Dataset), nil
}

// Delete removes a dataset permanently
func (d *DatasetClient) Delete(ctx context.Context, identityID, name string) error {
	_, err := d.client.DeleteDataset(ctx, &cognitosync.DeleteDatasetInput{
		IdentityPoolId: aws.String(d.identityPoolID),
		IdentityId:     aws.String(identityID),
		DatasetName:    aws.String(name),
	}).Wait(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete dataset %s: %w", name, err)
	}
	return nil
}

// Pull retrieves every record changed after sinceSyncCount, following
// NextToken until the last page. The session token of the first page is the
// one returned.
func (d *DatasetClient) Pull(ctx context.Context, identityID, name string, sinceSyncCount int64) (*dataset.Snapshot, error) {
	snap := &dataset.Snapshot{Dataset: name}
	var nextToken *string
	var sessionToken *string

	for {
		output, err := d.client.ListRecords(ctx, &cognitosync.ListRecordsInput{
			IdentityPoolId:   aws.String(d.identityPoolID),
			IdentityId:       aws.String(identityID),
			DatasetName:      aws.String(name),
			LastSyncCount:    aws.Int64(sinceSyncCount),
			NextToken:        nextToken,
			SyncSessionToken: sessionToken,
		}).Wait(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list records of %s: %w", name, err)
		}

		if sessionToken == nil {
			sessionToken = output.SyncSessionToken
		}
		for _, rec := range output.Records {
			snap.Records = append(snap.Records, fromRecord(rec))
		}
		snap.SyncCount = aws.ToInt64(output.DatasetSyncCount)
		snap.Exists = output.DatasetExists
		snap.DeletedAfter = output.DatasetDeletedAfterRequestedSyncCount

		nextToken = output.NextToken
		if nextToken == nil {
			break
		}
	}

	snap.SessionToken = aws.ToString(sessionToken)
	return snap, nil
}

// Push applies patches using the session token of a previous Pull. A stale
// sync count fails the whole push with a conflict, see IsConflict.
func (d *DatasetClient) Push(ctx context.Context, identityID, name, sessionToken string, patches []dataset.Patch) ([]dataset.Record, error) {
	if sessionToken == "" {
		return nil, fmt.Errorf("sessionToken cannot be empty")
	}

	in := &cognitosync.UpdateRecordsInput{
		IdentityPoolId:   aws.String(d.identityPoolID),
		IdentityId:       aws.String(identityID),
		DatasetName:      aws.String(name),
		SyncSessionToken: aws.String(sessionToken),
		RecordPatches:    make([]types.RecordPatch, 0, len(patches)),
	}
	if d.DeviceID != "" {
		in.DeviceId = aws.String(d.DeviceID)
	}
	for _, p := range patches {
		patch := types.RecordPatch{
			Key:       aws.String(p.Key),
			SyncCount: aws.Int64(p.SyncCount),
			Op:        types.OperationRemove,
		}
		if p.Value != nil {
			patch.Op = types.OperationReplace
			patch.Value = aws.String(*p.Value)
		}
		in.RecordPatches = append(in.RecordPatches, patch)
	}

	output, err := d.client.UpdateRecords(ctx, in).Wait(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update records of %s: %w", name, err)
	}

	records := make([]dataset.Record, 0, len(output.Records))
	for _, rec := range output.Records {
		records = append(records, fromRecord(rec))
	}
	return records, nil
}

// PullAll pulls every dataset of an identity, several at a time.
func (d *DatasetClient) PullAll(ctx context.Context, identityID string) (map[string]*dataset.Snapshot, error) {
	datasets, err := d.List(ctx, identityID)
	if err != nil {
		return nil, err
	}

	limit := d.Concurrency
	if limit <= 0 {
		limit = 4
	}

	var mu sync.Mutex
	snapshots := make(map[string]*dataset.Snapshot, len(datasets))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for _, ds := range datasets {
		name := ds.Name
		g.Go(func() error {
			snap, err := d.Pull(gctx, identityID, name, 0)
			if err != nil {
				return err
			}
			mu.Lock()
			snapshots[name] = snap
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return snapshots, nil
}

func fromDataset(ds *types.Dataset) *dataset.Dataset {
	return &dataset.Dataset{
		Name:           aws.ToString(ds.DatasetName),
		IdentityID:     aws.ToString(ds.IdentityId),
		NumRecords:     aws.ToInt64(ds.NumRecords),
		DataStorage:    aws.ToInt64(ds.DataStorage),
		CreatedAt:      aws.ToTime(ds.CreationDate),
		LastModifiedAt: aws.ToTime(ds.LastModifiedDate),
		LastModifiedBy: aws.ToString(ds.LastModifiedBy),
	}
}

func fromRecord(rec types.Record) dataset.Record {
	out := dataset.Record{
		Key:            aws.ToString(rec.Key),
		SyncCount:      aws.ToInt64(rec.SyncCount),
		LastModifiedAt: aws.ToTime(rec.LastModifiedDate),
		LastModifiedBy: aws.ToString(rec.LastModifiedBy),
	}
	if rec.Value != nil {
		out.Value = aws.String(*rec.Value)
	}
	return out
}
