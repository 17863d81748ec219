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

package dataset

import (
	"context"
	"time"
)

// Dataset represents the metadata of a dataset owned by one identity
type Dataset struct {
	Name           string
	IdentityID     string
	NumRecords     int64
	DataStorage    int64
	CreatedAt      time.Time
	LastModifiedAt time.Time
	LastModifiedBy string
}

// Record is one key-value pair of a dataset. A removed record has a nil Value.
type Record struct {
	Key            string
	Value          *string
	SyncCount      int64
	LastModifiedAt time.Time
	LastModifiedBy string
}

// Deleted reports whether the record was removed.
func (r Record) Deleted() bool {
	return r.Value == nil
}

// Patch changes one record. A nil Value removes the record. SyncCount is the
// last sync count the caller saw for that record, zero for a new one.
type Patch struct {
	Key       string
	Value     *string
	SyncCount int64
}

// Snapshot is the result of pulling a dataset's records.
type Snapshot struct {
	Dataset string
	// Records changed after the requested sync count.
	Records []Record
	// SyncCount is the dataset's current sync count.
	SyncCount int64
	// SessionToken must be passed to Push.
	SessionToken string
	Exists       bool
	// DeletedAfter is set when the dataset was deleted after the requested
	// sync count.
	DeletedAfter bool
}

// Client defines the interface for synchronizing the datasets of an identity
type Client interface {
	// List lists all datasets of an identity
	List(ctx context.Context, identityID string) ([]*Dataset, error)

	// Get retrieves a dataset's metadata
	Get(ctx context.Context, identityID, name string) (*Dataset, error)

	// Delete removes a dataset permanently
	Delete(ctx context.Context, identityID, name string) error

	// Pull retrieves the records changed after sinceSyncCount
	Pull(ctx context.Context, identityID, name string, sinceSyncCount int64) (*Snapshot, error)

	// Push applies patches using the session token of a previous Pull
	Push(ctx context.Context, identityID, name, sessionToken string, patches []Patch) ([]Record, error)
}
