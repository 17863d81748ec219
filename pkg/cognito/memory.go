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
	"regexp"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cognitosync"
	"github.com/aws/aws-sdk-go-v2/service/cognitosync/types"
	"github.com/google/uuid"
)

// Service limits enforced by MemoryAPI.
const (
	MaxDatasetsPerIdentity = 20
	MaxRecordsPerDataset   = 1024
	MaxDatasetStorage      = 1 << 20

	// BulkPublishWindow is the minimum time between two successful bulk
	// publishes of the same pool.
	BulkPublishWindow = 24 * time.Hour

	// EventSyncTrigger is the only Cognito event the service knows.
	EventSyncTrigger = "SyncTrigger"
)

var datasetNamePattern = regexp.MustCompile(`^[a-zA-Z0-9_.:-]{1,128}$`)

// MemoryAPI implements SyncAPI in memory with the service's semantics and
// typed exceptions. It is meant for tests and local runs.
//
// Identity pools and identities come into existence the first time an
// identity-level call names them; pool-level reads of an unknown pool fail
// with ResourceNotFoundException.
type MemoryAPI struct {
	mu              sync.Mutex
	now             func() time.Time
	pageSize        int
	publishDuration time.Duration

	pools    map[string]*memPool
	sessions map[string]memSession
	failures map[Operation][]error
}

type memPool struct {
	id           string
	events       map[string]string
	streams      *types.CognitoStreams
	pushSync     *types.PushSync
	identities   map[string]*memIdentity
	publish      *memPublish
	syncSessions int64
	modified     time.Time
}

type memPublish struct {
	started time.Time
	status  types.BulkPublishStatus
}

type memIdentity struct {
	id          string
	datasets    map[string]*memDataset
	generations map[string]int64
	tombstones  map[string]int64
	devices     map[string]string
	modified    time.Time
}

type memDataset struct {
	name        string
	created     time.Time
	modified    time.Time
	modifiedBy  string
	syncCount   int64
	records     map[string]*memRecord
	subscribers map[string]struct{}
}

type memRecord struct {
	key            string
	value          *string
	syncCount      int64
	modified       time.Time
	deviceModified time.Time
	modifiedBy     string
}

type memSession struct {
	pool, identity, dataset string
	generation              int64
}

// MemoryOption configures a MemoryAPI.
type MemoryOption func(*MemoryAPI)

// WithClock sets the time source.
func WithClock(now func() time.Time) MemoryOption {
	return func(m *MemoryAPI) {
		m.now = now
	}
}

// WithPageSize sets how many items a list call returns per page.
func WithPageSize(n int) MemoryOption {
	return func(m *MemoryAPI) {
		if n > 0 {
			m.pageSize = n
		}
	}
}

// WithPublishDuration sets how long a bulk publish stays in progress.
func WithPublishDuration(d time.Duration) MemoryOption {
	return func(m *MemoryAPI) {
		m.publishDuration = d
	}
}

// NewMemoryAPI creates an empty in-memory service.
func NewMemoryAPI(opts ...MemoryOption) *MemoryAPI {
	m := &MemoryAPI{
		now:             time.Now,
		pageSize:        64,
		publishDuration: time.Minute,
		pools:           make(map[string]*memPool),
		sessions:        make(map[string]memSession),
		failures:        make(map[Operation][]error),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(m)
	}
	return m
}

// AddIdentityPool makes a pool known without touching any identity.
func (m *MemoryAPI) AddIdentityPool(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pool(id)
}

// FailNext makes the next call of op return err instead of running.
func (m *MemoryAPI) FailNext(op Operation, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures[op] = append(m.failures[op], err)
}

// begin locks the service and returns any injected or context failure.
// Callers must defer m.mu.Unlock().
func (m *MemoryAPI) begin(ctx context.Context, op Operation) error {
	m.mu.Lock()
	if err := ctx.Err(); err != nil {
		return err
	}
	if queued := m.failures[op]; len(queued) > 0 {
		m.failures[op] = queued[1:]
		return queued[0]
	}
	return nil
}

func (m *MemoryAPI) pool(id string) *memPool {
	p, ok := m.pools[id]
	if !ok {
		p = &memPool{
			id:         id,
			events:     make(map[string]string),
			identities: make(map[string]*memIdentity),
			modified:   m.now(),
		}
		m.pools[id] = p
	}
	return p
}

func (m *MemoryAPI) existingPool(id string) (*memPool, error) {
	p, ok := m.pools[id]
	if !ok {
		return nil, notFound("identity pool %s not found", id)
	}
	return p, nil
}

func (m *MemoryAPI) identity(poolID, identityID string) *memIdentity {
	p := m.pool(poolID)
	ident, ok := p.identities[identityID]
	if !ok {
		ident = &memIdentity{
			id:          identityID,
			datasets:    make(map[string]*memDataset),
			generations: make(map[string]int64),
			tombstones:  make(map[string]int64),
			devices:     make(map[string]string),
			modified:    m.now(),
		}
		p.identities[identityID] = ident
	}
	return ident
}

func (m *MemoryAPI) dataset(poolID, identityID, name string) (*memIdentity, *memDataset, error) {
	if !datasetNamePattern.MatchString(name) {
		return nil, nil, invalidParameter("invalid dataset name %q", name)
	}
	ident := m.identity(poolID, identityID)
	ds, ok := ident.datasets[name]
	if !ok {
		return ident, nil, notFound("dataset %s not found", name)
	}
	return ident, ds, nil
}

func (m *MemoryAPI) BulkPublish(ctx context.Context, in *cognitosync.BulkPublishInput, _ ...func(*cognitosync.Options)) (*cognitosync.BulkPublishOutput, error) {
	defer m.mu.Unlock()
	if err := m.begin(ctx, OpBulkPublish); err != nil {
		return nil, err
	}
	p, err := m.existingPool(aws.ToString(in.IdentityPoolId))
	if err != nil {
		return nil, err
	}

	now := m.now()
	if pub := p.publish; pub != nil {
		m.settlePublish(pub, now)
		switch {
		case pub.status == types.BulkPublishStatusInProgress:
			return nil, &types.DuplicateRequestException{Message: aws.String(fmt.Sprintf("bulk publish already in progress for %s", p.id))}
		case pub.status == types.BulkPublishStatusSucceeded && now.Before(pub.started.Add(m.publishDuration).Add(BulkPublishWindow)):
			return nil, &types.AlreadyStreamedException{Message: aws.String(fmt.Sprintf("identity pool %s was published less than 24 hours ago", p.id))}
		}
	}
	p.publish = &memPublish{started: now, status: types.BulkPublishStatusInProgress}
	m.settlePublish(p.publish, now)

	return &cognitosync.BulkPublishOutput{IdentityPoolId: aws.String(p.id)}, nil
}

func (m *MemoryAPI) settlePublish(pub *memPublish, now time.Time) {
	if pub.status == types.BulkPublishStatusInProgress && !now.Before(pub.started.Add(m.publishDuration)) {
		pub.status = types.BulkPublishStatusSucceeded
	}
}

func (m *MemoryAPI) GetBulkPublishDetails(ctx context.Context, in *cognitosync.GetBulkPublishDetailsInput, _ ...func(*cognitosync.Options)) (*cognitosync.GetBulkPublishDetailsOutput, error) {
	defer m.mu.Unlock()
	if err := m.begin(ctx, OpGetBulkPublishDetails); err != nil {
		return nil, err
	}
	p, err := m.existingPool(aws.ToString(in.IdentityPoolId))
	if err != nil {
		return nil, err
	}

	out := &cognitosync.GetBulkPublishDetailsOutput{
		IdentityPoolId:    aws.String(p.id),
		BulkPublishStatus: types.BulkPublishStatusNotStarted,
	}
	if pub := p.publish; pub != nil {
		m.settlePublish(pub, m.now())
		out.BulkPublishStatus = pub.status
		out.BulkPublishStartTime = aws.Time(pub.started)
		if pub.status == types.BulkPublishStatusSucceeded {
			out.BulkPublishCompleteTime = aws.Time(pub.started.Add(m.publishDuration))
		}
	}
	return out, nil
}

func (m *MemoryAPI) DeleteDataset(ctx context.Context, in *cognitosync.DeleteDatasetInput, _ ...func(*cognitosync.Options)) (*cognitosync.DeleteDatasetOutput, error) {
	defer m.mu.Unlock()
	if err := m.begin(ctx, OpDeleteDataset); err != nil {
		return nil, err
	}
	ident, ds, err := m.dataset(aws.ToString(in.IdentityPoolId), aws.ToString(in.IdentityId), aws.ToString(in.DatasetName))
	if err != nil {
		return nil, err
	}

	out := ds.toType(ident.id)
	delete(ident.datasets, ds.name)
	ident.generations[ds.name]++
	ident.tombstones[ds.name] = ds.syncCount
	ident.modified = m.now()

	return &cognitosync.DeleteDatasetOutput{Dataset: out}, nil
}

func (m *MemoryAPI) DescribeDataset(ctx context.Context, in *cognitosync.DescribeDatasetInput, _ ...func(*cognitosync.Options)) (*cognitosync.DescribeDatasetOutput, error) {
	defer m.mu.Unlock()
	if err := m.begin(ctx, OpDescribeDataset); err != nil {
		return nil, err
	}
	ident, ds, err := m.dataset(aws.ToString(in.IdentityPoolId), aws.ToString(in.IdentityId), aws.ToString(in.DatasetName))
	if err != nil {
		return nil, err
	}
	return &cognitosync.DescribeDatasetOutput{Dataset: ds.toType(ident.id)}, nil
}

func (m *MemoryAPI) DescribeIdentityPoolUsage(ctx context.Context, in *cognitosync.DescribeIdentityPoolUsageInput, _ ...func(*cognitosync.Options)) (*cognitosync.DescribeIdentityPoolUsageOutput, error) {
	defer m.mu.Unlock()
	if err := m.begin(ctx, OpDescribeIdentityPoolUsage); err != nil {
		return nil, err
	}
	p, err := m.existingPool(aws.ToString(in.IdentityPoolId))
	if err != nil {
		return nil, err
	}
	return &cognitosync.DescribeIdentityPoolUsageOutput{IdentityPoolUsage: p.usage()}, nil
}

func (m *MemoryAPI) DescribeIdentityUsage(ctx context.Context, in *cognitosync.DescribeIdentityUsageInput, _ ...func(*cognitosync.Options)) (*cognitosync.DescribeIdentityUsageOutput, error) {
	defer m.mu.Unlock()
	if err := m.begin(ctx, OpDescribeIdentityUsage); err != nil {
		return nil, err
	}
	p, err := m.existingPool(aws.ToString(in.IdentityPoolId))
	if err != nil {
		return nil, err
	}
	ident, ok := p.identities[aws.ToString(in.IdentityId)]
	if !ok {
		return nil, notFound("identity %s not found", aws.ToString(in.IdentityId))
	}

	var storage int64
	for _, ds := range ident.datasets {
		storage += ds.storage()
	}
	return &cognitosync.DescribeIdentityUsageOutput{
		IdentityUsage: &types.IdentityUsage{
			IdentityId:       aws.String(ident.id),
			IdentityPoolId:   aws.String(p.id),
			DataStorage:      aws.Int64(storage),
			LastModifiedDate: aws.Time(ident.modified),
		},
	}, nil
}

func (m *MemoryAPI) GetCognitoEvents(ctx context.Context, in *cognitosync.GetCognitoEventsInput, _ ...func(*cognitosync.Options)) (*cognitosync.GetCognitoEventsOutput, error) {
	defer m.mu.Unlock()
	if err := m.begin(ctx, OpGetCognitoEvents); err != nil {
		return nil, err
	}
	p, err := m.existingPool(aws.ToString(in.IdentityPoolId))
	if err != nil {
		return nil, err
	}
	events := make(map[string]string, len(p.events))
	for k, v := range p.events {
		events[k] = v
	}
	return &cognitosync.GetCognitoEventsOutput{Events: events}, nil
}

func (m *MemoryAPI) SetCognitoEvents(ctx context.Context, in *cognitosync.SetCognitoEventsInput, _ ...func(*cognitosync.Options)) (*cognitosync.SetCognitoEventsOutput, error) {
	defer m.mu.Unlock()
	if err := m.begin(ctx, OpSetCognitoEvents); err != nil {
		return nil, err
	}
	p, err := m.existingPool(aws.ToString(in.IdentityPoolId))
	if err != nil {
		return nil, err
	}
	for event := range in.Events {
		if event != EventSyncTrigger {
			return nil, invalidParameter("unknown event %q", event)
		}
	}
	for event, fn := range in.Events {
		if fn == "" {
			delete(p.events, event)
			continue
		}
		p.events[event] = fn
	}
	p.modified = m.now()
	return &cognitosync.SetCognitoEventsOutput{}, nil
}

func (m *MemoryAPI) GetIdentityPoolConfiguration(ctx context.Context, in *cognitosync.GetIdentityPoolConfigurationInput, _ ...func(*cognitosync.Options)) (*cognitosync.GetIdentityPoolConfigurationOutput, error) {
	defer m.mu.Unlock()
	if err := m.begin(ctx, OpGetIdentityPoolConfiguration); err != nil {
		return nil, err
	}
	p, err := m.existingPool(aws.ToString(in.IdentityPoolId))
	if err != nil {
		return nil, err
	}
	return &cognitosync.GetIdentityPoolConfigurationOutput{
		IdentityPoolId: aws.String(p.id),
		CognitoStreams: copyStreams(p.streams),
		PushSync:       copyPushSync(p.pushSync),
	}, nil
}

func (m *MemoryAPI) SetIdentityPoolConfiguration(ctx context.Context, in *cognitosync.SetIdentityPoolConfigurationInput, _ ...func(*cognitosync.Options)) (*cognitosync.SetIdentityPoolConfigurationOutput, error) {
	defer m.mu.Unlock()
	if err := m.begin(ctx, OpSetIdentityPoolConfiguration); err != nil {
		return nil, err
	}
	p, err := m.existingPool(aws.ToString(in.IdentityPoolId))
	if err != nil {
		return nil, err
	}
	if s := in.CognitoStreams; s != nil {
		if s.StreamingStatus == types.StreamingStatusEnabled && (aws.ToString(s.StreamName) == "" || aws.ToString(s.RoleArn) == "") {
			return nil, invalidParameter("enabled streams need a stream name and a role")
		}
		p.streams = copyStreams(s)
	}
	if ps := in.PushSync; ps != nil {
		p.pushSync = copyPushSync(ps)
	}
	p.modified = m.now()
	return &cognitosync.SetIdentityPoolConfigurationOutput{
		IdentityPoolId: aws.String(p.id),
		CognitoStreams: copyStreams(p.streams),
		PushSync:       copyPushSync(p.pushSync),
	}, nil
}

func (m *MemoryAPI) ListDatasets(ctx context.Context, in *cognitosync.ListDatasetsInput, _ ...func(*cognitosync.Options)) (*cognitosync.ListDatasetsOutput, error) {
	defer m.mu.Unlock()
	if err := m.begin(ctx, OpListDatasets); err != nil {
		return nil, err
	}
	ident := m.identity(aws.ToString(in.IdentityPoolId), aws.ToString(in.IdentityId))

	names := make([]string, 0, len(ident.datasets))
	for name := range ident.datasets {
		names = append(names, name)
	}
	sort.Strings(names)

	names, next, err := page(names, in.NextToken, m.pageSize)
	if err != nil {
		return nil, err
	}
	datasets := make([]types.Dataset, 0, len(names))
	for _, name := range names {
		datasets = append(datasets, *ident.datasets[name].toType(ident.id))
	}
	return &cognitosync.ListDatasetsOutput{Datasets: datasets, NextToken: next}, nil
}

func (m *MemoryAPI) ListIdentityPoolUsage(ctx context.Context, in *cognitosync.ListIdentityPoolUsageInput, _ ...func(*cognitosync.Options)) (*cognitosync.ListIdentityPoolUsageOutput, error) {
	defer m.mu.Unlock()
	if err := m.begin(ctx, OpListIdentityPoolUsage); err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(m.pools))
	for id := range m.pools {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	ids, next, err := page(ids, in.NextToken, m.pageSize)
	if err != nil {
		return nil, err
	}
	usages := make([]types.IdentityPoolUsage, 0, len(ids))
	for _, id := range ids {
		usages = append(usages, *m.pools[id].usage())
	}
	return &cognitosync.ListIdentityPoolUsageOutput{IdentityPoolUsages: usages, NextToken: next}, nil
}

func (m *MemoryAPI) ListRecords(ctx context.Context, in *cognitosync.ListRecordsInput, _ ...func(*cognitosync.Options)) (*cognitosync.ListRecordsOutput, error) {
	defer m.mu.Unlock()
	if err := m.begin(ctx, OpListRecords); err != nil {
		return nil, err
	}
	poolID, identityID, name := aws.ToString(in.IdentityPoolId), aws.ToString(in.IdentityId), aws.ToString(in.DatasetName)
	if !datasetNamePattern.MatchString(name) {
		return nil, invalidParameter("invalid dataset name %q", name)
	}
	ident := m.identity(poolID, identityID)
	p := m.pools[poolID]
	p.syncSessions++

	token := uuid.NewString()
	m.sessions[token] = memSession{pool: poolID, identity: identityID, dataset: name, generation: ident.generations[name]}

	since := aws.ToInt64(in.LastSyncCount)
	out := &cognitosync.ListRecordsOutput{SyncSessionToken: aws.String(token)}

	ds, ok := ident.datasets[name]
	if !ok {
		_, deleted := ident.tombstones[name]
		out.DatasetDeletedAfterRequestedSyncCount = deleted && since > 0
		out.DatasetSyncCount = aws.Int64(0)
		return out, nil
	}

	changed := make([]*memRecord, 0, len(ds.records))
	for _, rec := range ds.records {
		if rec.syncCount <= since {
			continue
		}
		if since == 0 && rec.value == nil {
			continue
		}
		changed = append(changed, rec)
	}
	sort.Slice(changed, func(i, j int) bool {
		if changed[i].syncCount != changed[j].syncCount {
			return changed[i].syncCount < changed[j].syncCount
		}
		return changed[i].key < changed[j].key
	})

	changed, next, err := page(changed, in.NextToken, m.pageSize)
	if err != nil {
		return nil, err
	}
	records := make([]types.Record, 0, len(changed))
	for _, rec := range changed {
		records = append(records, rec.toType())
	}

	out.Records = records
	out.NextToken = next
	out.DatasetExists = true
	out.DatasetSyncCount = aws.Int64(ds.syncCount)
	out.LastModifiedBy = aws.String(ds.modifiedBy)
	return out, nil
}

func (m *MemoryAPI) UpdateRecords(ctx context.Context, in *cognitosync.UpdateRecordsInput, _ ...func(*cognitosync.Options)) (*cognitosync.UpdateRecordsOutput, error) {
	defer m.mu.Unlock()
	if err := m.begin(ctx, OpUpdateRecords); err != nil {
		return nil, err
	}
	poolID, identityID, name := aws.ToString(in.IdentityPoolId), aws.ToString(in.IdentityId), aws.ToString(in.DatasetName)
	if !datasetNamePattern.MatchString(name) {
		return nil, invalidParameter("invalid dataset name %q", name)
	}
	session, ok := m.sessions[aws.ToString(in.SyncSessionToken)]
	if !ok || session.pool != poolID || session.identity != identityID || session.dataset != name {
		return nil, invalidParameter("invalid sync session token")
	}
	ident := m.identity(poolID, identityID)
	if ident.generations[name] != session.generation {
		return nil, notFound("dataset %s was deleted", name)
	}

	ds, exists := ident.datasets[name]
	if !exists {
		if len(ident.datasets) >= MaxDatasetsPerIdentity {
			return nil, limitExceeded("identity %s already has %d datasets", identityID, MaxDatasetsPerIdentity)
		}
		ds = &memDataset{
			name:        name,
			created:     m.now(),
			records:     make(map[string]*memRecord),
			subscribers: make(map[string]struct{}),
		}
	}

	// Check every patch before applying any of them.
	var changes []types.RecordPatch
	live, storage := ds.liveRecords(), ds.storage()
	for _, patch := range in.RecordPatches {
		rec := ds.records[aws.ToString(patch.Key)]
		var current int64
		if rec != nil {
			current = rec.syncCount
		}
		if aws.ToInt64(patch.SyncCount) != current {
			if patch.Op == types.OperationReplace && rec != nil && rec.value != nil && patch.Value != nil && *rec.value == *patch.Value {
				continue
			}
			return nil, &types.ResourceConflictException{Message: aws.String(fmt.Sprintf(
				"record %s: sync count %d is stale, current is %d", aws.ToString(patch.Key), aws.ToInt64(patch.SyncCount), current))}
		}
		switch patch.Op {
		case types.OperationReplace:
			if rec == nil || rec.value == nil {
				live++
			} else {
				storage -= int64(len(rec.key) + len(*rec.value))
			}
			storage += int64(len(aws.ToString(patch.Key)) + len(aws.ToString(patch.Value)))
		case types.OperationRemove:
			if rec == nil || rec.value == nil {
				continue
			}
			live--
			storage -= int64(len(rec.key) + len(*rec.value))
		default:
			return nil, invalidParameter("unknown patch operation %q", patch.Op)
		}
		changes = append(changes, patch)
	}
	if live > MaxRecordsPerDataset {
		return nil, limitExceeded("dataset %s would hold %d records, limit is %d", name, live, MaxRecordsPerDataset)
	}
	if storage > MaxDatasetStorage {
		return nil, limitExceeded("dataset %s would hold %d bytes, limit is %d", name, storage, MaxDatasetStorage)
	}

	now := m.now()
	by := aws.ToString(in.DeviceId)
	if by == "" {
		by = identityID
	}
	if len(changes) > 0 {
		ds.syncCount++
		ds.modified = now
		ds.modifiedBy = by
		ident.modified = now
	}
	for _, patch := range changes {
		key := aws.ToString(patch.Key)
		rec, ok := ds.records[key]
		if !ok {
			rec = &memRecord{key: key}
			ds.records[key] = rec
		}
		rec.value = nil
		if patch.Op == types.OperationReplace {
			rec.value = aws.String(aws.ToString(patch.Value))
		}
		rec.syncCount = ds.syncCount
		rec.modified = now
		rec.modifiedBy = by
		rec.deviceModified = now
		if patch.DeviceLastModifiedDate != nil {
			rec.deviceModified = *patch.DeviceLastModifiedDate
		}
	}
	if !exists && len(changes) > 0 {
		ident.datasets[name] = ds
		delete(ident.tombstones, name)
	}

	records := make([]types.Record, 0, len(in.RecordPatches))
	for _, patch := range in.RecordPatches {
		if rec, ok := ds.records[aws.ToString(patch.Key)]; ok {
			records = append(records, rec.toType())
		}
	}
	return &cognitosync.UpdateRecordsOutput{Records: records}, nil
}

func (m *MemoryAPI) RegisterDevice(ctx context.Context, in *cognitosync.RegisterDeviceInput, _ ...func(*cognitosync.Options)) (*cognitosync.RegisterDeviceOutput, error) {
	defer m.mu.Unlock()
	if err := m.begin(ctx, OpRegisterDevice); err != nil {
		return nil, err
	}
	p, err := m.existingPool(aws.ToString(in.IdentityPoolId))
	if err != nil {
		return nil, err
	}
	if p.pushSync == nil || len(p.pushSync.ApplicationArns) == 0 {
		return nil, invalidConfiguration("push sync is not configured for %s", p.id)
	}
	ident := m.identity(p.id, aws.ToString(in.IdentityId))

	key := string(in.Platform) + "/" + aws.ToString(in.Token)
	id, ok := ident.devices[key]
	if !ok {
		id = uuid.NewString()
		ident.devices[key] = id
	}
	return &cognitosync.RegisterDeviceOutput{DeviceId: aws.String(id)}, nil
}

func (m *MemoryAPI) SubscribeToDataset(ctx context.Context, in *cognitosync.SubscribeToDatasetInput, _ ...func(*cognitosync.Options)) (*cognitosync.SubscribeToDatasetOutput, error) {
	defer m.mu.Unlock()
	if err := m.begin(ctx, OpSubscribeToDataset); err != nil {
		return nil, err
	}
	ds, err := m.subscription(aws.ToString(in.IdentityPoolId), aws.ToString(in.IdentityId), aws.ToString(in.DatasetName), aws.ToString(in.DeviceId))
	if err != nil {
		return nil, err
	}
	ds.subscribers[aws.ToString(in.DeviceId)] = struct{}{}
	return &cognitosync.SubscribeToDatasetOutput{}, nil
}

func (m *MemoryAPI) UnsubscribeFromDataset(ctx context.Context, in *cognitosync.UnsubscribeFromDatasetInput, _ ...func(*cognitosync.Options)) (*cognitosync.UnsubscribeFromDatasetOutput, error) {
	defer m.mu.Unlock()
	if err := m.begin(ctx, OpUnsubscribeFromDataset); err != nil {
		return nil, err
	}
	deviceID := aws.ToString(in.DeviceId)
	ds, err := m.subscription(aws.ToString(in.IdentityPoolId), aws.ToString(in.IdentityId), aws.ToString(in.DatasetName), deviceID)
	if err != nil {
		return nil, err
	}
	if _, ok := ds.subscribers[deviceID]; !ok {
		return nil, notFound("device %s is not subscribed to %s", deviceID, ds.name)
	}
	delete(ds.subscribers, deviceID)
	return &cognitosync.UnsubscribeFromDatasetOutput{}, nil
}

// Subscribers lists the devices subscribed to a dataset.
func (m *MemoryAPI) Subscribers(poolID, identityID, name string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ds, err := m.dataset(poolID, identityID, name)
	if err != nil {
		return nil
	}
	ids := make([]string, 0, len(ds.subscribers))
	for id := range ds.subscribers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (m *MemoryAPI) subscription(poolID, identityID, name, deviceID string) (*memDataset, error) {
	p, err := m.existingPool(poolID)
	if err != nil {
		return nil, err
	}
	if p.pushSync == nil || len(p.pushSync.ApplicationArns) == 0 {
		return nil, invalidConfiguration("push sync is not configured for %s", poolID)
	}
	ident, ds, err := m.dataset(poolID, identityID, name)
	if err != nil {
		return nil, err
	}
	for _, id := range ident.devices {
		if id == deviceID {
			return ds, nil
		}
	}
	return nil, notFound("device %s not found", deviceID)
}

func (p *memPool) usage() *types.IdentityPoolUsage {
	var storage int64
	for _, ident := range p.identities {
		for _, ds := range ident.datasets {
			storage += ds.storage()
		}
	}
	return &types.IdentityPoolUsage{
		IdentityPoolId:    aws.String(p.id),
		DataStorage:       aws.Int64(storage),
		SyncSessionsCount: aws.Int64(p.syncSessions),
		LastModifiedDate:  aws.Time(p.modified),
	}
}

func (d *memDataset) liveRecords() int64 {
	var n int64
	for _, rec := range d.records {
		if rec.value != nil {
			n++
		}
	}
	return n
}

func (d *memDataset) storage() int64 {
	var n int64
	for _, rec := range d.records {
		if rec.value != nil {
			n += int64(len(rec.key) + len(*rec.value))
		}
	}
	return n
}

func (d *memDataset) toType(identityID string) *types.Dataset {
	return &types.Dataset{
		DatasetName:      aws.String(d.name),
		IdentityId:       aws.String(identityID),
		CreationDate:     aws.Time(d.created),
		LastModifiedDate: aws.Time(d.modified),
		LastModifiedBy:   aws.String(d.modifiedBy),
		NumRecords:       aws.Int64(d.liveRecords()),
		DataStorage:      aws.Int64(d.storage()),
	}
}

func (r *memRecord) toType() types.Record {
	rec := types.Record{
		Key:                    aws.String(r.key),
		SyncCount:              aws.Int64(r.syncCount),
		LastModifiedDate:       aws.Time(r.modified),
		LastModifiedBy:         aws.String(r.modifiedBy),
		DeviceLastModifiedDate: aws.Time(r.deviceModified),
	}
	if r.value != nil {
		rec.Value = aws.String(*r.value)
	}
	return rec
}

func copyStreams(s *types.CognitoStreams) *types.CognitoStreams {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}

func copyPushSync(p *types.PushSync) *types.PushSync {
	if p == nil {
		return nil
	}
	c := *p
	c.ApplicationArns = append([]string(nil), p.ApplicationArns...)
	return &c
}

// page slices items according to an offset NextToken.
func page[T any](items []T, token *string, size int) ([]T, *string, error) {
	start := 0
	if t := aws.ToString(token); t != "" {
		n, err := strconv.Atoi(t)
		if err != nil || n < 0 || n > len(items) {
			return nil, nil, invalidParameter("invalid next token %q", t)
		}
		start = n
	}
	end := min(start+size, len(items))
	var next *string
	if end < len(items) {
		next = aws.String(strconv.Itoa(end))
	}
	return items[start:end], next, nil
}

func notFound(format string, args ...any) error {
	return &types.ResourceNotFoundException{Message: aws.String(fmt.Sprintf(format, args...))}
}

func invalidParameter(format string, args ...any) error {
	return &types.InvalidParameterException{Message: aws.String(fmt.Sprintf(format, args...))}
}

func invalidConfiguration(format string, args ...any) error {
	return &types.InvalidConfigurationException{Message: aws.String(fmt.Sprintf(format, args...))}
}

func limitExceeded(format string, args ...any) error {
	return &types.LimitExceededException{Message: aws.String(fmt.Sprintf(format, args...))}
}
