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

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cognitosync"
	"github.com/go-logr/logr"

	"github.com/cogniteo/cognito-sync-client/internal/logger"
)

// Client is the Cognito Sync facade. Every method returns immediately with a
// Future; the request runs on its own goroutine against the bound SyncAPI.
// The client never retries and never mutates a request. It is safe for
// concurrent use.
type Client struct {
	api    SyncAPI
	config Config
	log    logr.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used when the call context carries none.
func WithLogger(log logr.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// WithConfig records the configuration the client was built from.
func WithConfig(cfg Config) Option {
	return func(c *Client) {
		c.config = cfg
	}
}

// New creates a client dispatching to api.
func New(api SyncAPI, opts ...Option) *Client {
	if api == nil {
		panic("cognito sync client: nil SyncAPI")
	}
	c := &Client{
		api: api,
		log: logger.Default(),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c
}

// NewFromConfig creates a client backed by the AWS SDK.
func NewFromConfig(ctx context.Context, cfg Config, opts ...Option) (*Client, error) {
	awsCfg, err := LoadAWSConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}

	api := cognitosync.NewFromConfig(awsCfg, func(o *cognitosync.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	return New(api, append([]Option{WithConfig(cfg)}, opts...)...), nil
}

// Config returns the configuration the client is bound to.
func (c *Client) Config() Config {
	return c.config
}

func (c *Client) logger(ctx context.Context) logr.Logger {
	if log, err := logr.FromContext(ctx); err == nil {
		return log
	}
	return c.log
}

// invoke is the single dispatch path behind every operation method.
func invoke[In, Out any](
	ctx context.Context,
	c *Client,
	op Operation,
	in *In,
	call func(context.Context, *In, ...func(*cognitosync.Options)) (*Out, error),
) *Future[Out] {
	log := c.logger(ctx).WithValues("operation", op)

	if in == nil {
		return resolvedFuture[Out](nil, Classify(op, newParams(string(op)+"Input").requireSet("input", false).err()))
	}
	if err := validate(in); err != nil {
		log.V(1).Info("request rejected", "error", err.Error())
		return resolvedFuture[Out](nil, Classify(op, err))
	}

	f := newFuture[Out]()
	go func() {
		defer func() {
			if r := recover(); r != nil {
				err := Classify(op, fmt.Errorf("transport panic: %v", r))
				log.Error(err, "request aborted")
				f.resolve(nil, err)
			}
		}()

		log.V(1).Info("dispatching request")
		out, err := call(ctx, in)
		if err != nil {
			err = Classify(op, err)
			log.V(1).Info("request failed", "code", CodeOf(err), "error", err.Error())
			f.resolve(nil, err)
			return
		}
		if out == nil {
			out = new(Out)
		}
		f.resolve(out, nil)
	}()
	return f
}

// BulkPublish starts exporting every dataset of an identity pool to its
// configured stream. Developer credentials only.
func (c *Client) BulkPublish(ctx context.Context, in *cognitosync.BulkPublishInput) *Future[cognitosync.BulkPublishOutput] {
	return invoke(ctx, c, OpBulkPublish, in, c.api.BulkPublish)
}

// DeleteDataset permanently deletes a dataset. Later operations on it fail
// with ErrorResourceNotFound.
func (c *Client) DeleteDataset(ctx context.Context, in *cognitosync.DeleteDatasetInput) *Future[cognitosync.DeleteDatasetOutput] {
	return invoke(ctx, c, OpDeleteDataset, in, c.api.DeleteDataset)
}

// DescribeDataset returns the metadata of a dataset.
func (c *Client) DescribeDataset(ctx context.Context, in *cognitosync.DescribeDatasetInput) *Future[cognitosync.DescribeDatasetOutput] {
	return invoke(ctx, c, OpDescribeDataset, in, c.api.DescribeDataset)
}

// DescribeIdentityPoolUsage returns usage details of an identity pool.
// Developer credentials only.
func (c *Client) DescribeIdentityPoolUsage(ctx context.Context, in *cognitosync.DescribeIdentityPoolUsageInput) *Future[cognitosync.DescribeIdentityPoolUsageOutput] {
	return invoke(ctx, c, OpDescribeIdentityPoolUsage, in, c.api.DescribeIdentityPoolUsage)
}

// DescribeIdentityUsage returns usage details of an identity.
func (c *Client) DescribeIdentityUsage(ctx context.Context, in *cognitosync.DescribeIdentityUsageInput) *Future[cognitosync.DescribeIdentityUsageOutput] {
	return invoke(ctx, c, OpDescribeIdentityUsage, in, c.api.DescribeIdentityUsage)
}

// GetBulkPublishDetails returns the status of the last bulk publish of a
// pool. Developer credentials only.
func (c *Client) GetBulkPublishDetails(ctx context.Context, in *cognitosync.GetBulkPublishDetailsInput) *Future[cognitosync.GetBulkPublishDetailsOutput] {
	return invoke(ctx, c, OpGetBulkPublishDetails, in, c.api.GetBulkPublishDetails)
}

// GetCognitoEvents returns the event to Lambda function mapping of a pool.
// Developer credentials only.
func (c *Client) GetCognitoEvents(ctx context.Context, in *cognitosync.GetCognitoEventsInput) *Future[cognitosync.GetCognitoEventsOutput] {
	return invoke(ctx, c, OpGetCognitoEvents, in, c.api.GetCognitoEvents)
}

// GetIdentityPoolConfiguration returns the push sync and streams settings of
// a pool. Developer credentials only.
func (c *Client) GetIdentityPoolConfiguration(ctx context.Context, in *cognitosync.GetIdentityPoolConfigurationInput) *Future[cognitosync.GetIdentityPoolConfigurationOutput] {
	return invoke(ctx, c, OpGetIdentityPoolConfiguration, in, c.api.GetIdentityPoolConfiguration)
}

// ListDatasets returns one page of the datasets of an identity.
func (c *Client) ListDatasets(ctx context.Context, in *cognitosync.ListDatasetsInput) *Future[cognitosync.ListDatasetsOutput] {
	return invoke(ctx, c, OpListDatasets, in, c.api.ListDatasets)
}

// ListIdentityPoolUsage returns one page of pool usage summaries.
// Developer credentials only.
func (c *Client) ListIdentityPoolUsage(ctx context.Context, in *cognitosync.ListIdentityPoolUsageInput) *Future[cognitosync.ListIdentityPoolUsageOutput] {
	return invoke(ctx, c, OpListIdentityPoolUsage, in, c.api.ListIdentityPoolUsage)
}

// ListRecords returns one page of records changed after LastSyncCount,
// together with the session token UpdateRecords needs.
func (c *Client) ListRecords(ctx context.Context, in *cognitosync.ListRecordsInput) *Future[cognitosync.ListRecordsOutput] {
	return invoke(ctx, c, OpListRecords, in, c.api.ListRecords)
}

// RegisterDevice registers a device for push sync notifications. Cognito
// Identity credentials only.
func (c *Client) RegisterDevice(ctx context.Context, in *cognitosync.RegisterDeviceInput) *Future[cognitosync.RegisterDeviceOutput] {
	return invoke(ctx, c, OpRegisterDevice, in, c.api.RegisterDevice)
}

// SetCognitoEvents sets Lambda functions for pool events; an empty value
// removes the mapping. Developer credentials only.
func (c *Client) SetCognitoEvents(ctx context.Context, in *cognitosync.SetCognitoEventsInput) *Future[cognitosync.SetCognitoEventsOutput] {
	return invoke(ctx, c, OpSetCognitoEvents, in, c.api.SetCognitoEvents)
}

// SetIdentityPoolConfiguration sets the push sync and streams settings of a
// pool. Developer credentials only.
func (c *Client) SetIdentityPoolConfiguration(ctx context.Context, in *cognitosync.SetIdentityPoolConfigurationInput) *Future[cognitosync.SetIdentityPoolConfigurationOutput] {
	return invoke(ctx, c, OpSetIdentityPoolConfiguration, in, c.api.SetIdentityPoolConfiguration)
}

// SubscribeToDataset subscribes a device to change notifications of a
// dataset. Cognito Identity credentials only.
func (c *Client) SubscribeToDataset(ctx context.Context, in *cognitosync.SubscribeToDatasetInput) *Future[cognitosync.SubscribeToDatasetOutput] {
	return invoke(ctx, c, OpSubscribeToDataset, in, c.api.SubscribeToDataset)
}

// UnsubscribeFromDataset removes a device subscription. Cognito Identity
// credentials only.
func (c *Client) UnsubscribeFromDataset(ctx context.Context, in *cognitosync.UnsubscribeFromDatasetInput) *Future[cognitosync.UnsubscribeFromDatasetOutput] {
	return invoke(ctx, c, OpUnsubscribeFromDataset, in, c.api.UnsubscribeFromDataset)
}

// UpdateRecords applies record patches. A patch whose sync count is behind
// the stored one fails the whole call with ErrorResourceConflict.
func (c *Client) UpdateRecords(ctx context.Context, in *cognitosync.UpdateRecordsInput) *Future[cognitosync.UpdateRecordsOutput] {
	return invoke(ctx, c, OpUpdateRecords, in, c.api.UpdateRecords)
}
