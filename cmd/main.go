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

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"github.com/avast/retry-go"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cognitosync"
	"github.com/aws/aws-sdk-go-v2/service/cognitosync/types"
	"github.com/go-logr/logr"

	"github.com/cogniteo/cognito-sync-client/internal/logger"
	"github.com/cogniteo/cognito-sync-client/pkg/cognito"
	"github.com/cogniteo/cognito-sync-client/pkg/dataset"
)

var (
	app = kingpin.New("cognito-sync", "Command line client for the Amazon Cognito Sync API.")

	profilesFile = app.Flag("profiles", "YAML file with named connection profiles.").Envar("COGNITO_SYNC_PROFILES").ExistingFile()
	useProfile   = app.Flag("use", "Profile to use from the profiles file.").Short('p').String()
	region       = app.Flag("region", "AWS region of the service endpoint.").Envar("AWS_REGION").String()
	endpoint     = app.Flag("endpoint", "Override the service endpoint URL.").String()
	poolID       = app.Flag("identity-pool-id", "Identity pool ID.").Envar("COGNITO_IDENTITY_POOL_ID").String()
	retries      = app.Flag("retries", "Retry throttled and transient failures this many times.").Default("0").Uint()
	timeout      = app.Flag("timeout", "Timeout of the whole command.").Default("30s").Duration()
	verbosity    = app.Flag("verbose", "Increase log verbosity.").Short('v').Counter()
	development  = app.Flag("development", "Human readable log output.").Bool()

	operationsCmd = app.Command("operations", "List the operations of the service.")

	listDatasetsCmd      = app.Command("list-datasets", "List the datasets of an identity.")
	listDatasetsIdentity = listDatasetsCmd.Flag("identity-id", "Identity ID.").Required().String()

	describeDatasetCmd      = app.Command("describe-dataset", "Describe a dataset.")
	describeDatasetIdentity = describeDatasetCmd.Flag("identity-id", "Identity ID.").Required().String()
	describeDatasetName     = describeDatasetCmd.Arg("dataset", "Dataset name.").Required().String()

	deleteDatasetCmd      = app.Command("delete-dataset", "Delete a dataset permanently.")
	deleteDatasetIdentity = deleteDatasetCmd.Flag("identity-id", "Identity ID.").Required().String()
	deleteDatasetName     = deleteDatasetCmd.Arg("dataset", "Dataset name.").Required().String()

	listRecordsCmd      = app.Command("list-records", "List the records of a dataset.")
	listRecordsIdentity = listRecordsCmd.Flag("identity-id", "Identity ID.").Required().String()
	listRecordsSince    = listRecordsCmd.Flag("since", "Only records changed after this sync count.").Default("0").Int64()
	listRecordsName     = listRecordsCmd.Arg("dataset", "Dataset name.").Required().String()

	pullAllCmd      = app.Command("pull-all", "Pull every dataset of an identity.")
	pullAllIdentity = pullAllCmd.Flag("identity-id", "Identity ID.").Required().String()

	updateRecordsCmd      = app.Command("update-records", "Set or remove records of a dataset.")
	updateRecordsIdentity = updateRecordsCmd.Flag("identity-id", "Identity ID.").Required().String()
	updateRecordsDevice   = updateRecordsCmd.Flag("device-id", "Device reported as the author of the change.").String()
	updateRecordsSet      = updateRecordsCmd.Flag("set", "Record to set, as key=value.").StringMap()
	updateRecordsRemove   = updateRecordsCmd.Flag("remove", "Record key to remove.").Strings()
	updateRecordsCounts   = updateRecordsCmd.Flag("sync-count", "Expected sync count of a record, as key=count. Defaults to the current one.").StringMap()
	updateRecordsName     = updateRecordsCmd.Arg("dataset", "Dataset name.").Required().String()

	poolUsageCmd     = app.Command("pool-usage", "Describe the usage of the identity pool.")
	listPoolUsageCmd = app.Command("list-pool-usage", "List the usage of every identity pool.")

	identityUsageCmd      = app.Command("identity-usage", "Describe the usage of an identity.")
	identityUsageIdentity = identityUsageCmd.Flag("identity-id", "Identity ID.").Required().String()

	bulkPublishCmd        = app.Command("bulk-publish", "Start a bulk publish of the identity pool.")
	bulkPublishDetailsCmd = app.Command("bulk-publish-details", "Show the status of the last bulk publish.")

	getEventsCmd = app.Command("get-events", "Show the Cognito events of the identity pool.")
	setEventsCmd = app.Command("set-events", "Set Cognito events, as event=lambda-arn. An empty ARN removes the event.")
	setEvents    = setEventsCmd.Arg("events", "Events to set.").Required().StringMap()

	getPoolConfigCmd      = app.Command("get-pool-config", "Show the push sync and streams configuration.")
	setPoolConfigCmd      = app.Command("set-pool-config", "Set the push sync and streams configuration.")
	setPoolPushRole       = setPoolConfigCmd.Flag("push-role-arn", "Role used to send push notifications.").String()
	setPoolApplications   = setPoolConfigCmd.Flag("application-arn", "SNS platform application ARN.").Strings()
	setPoolStreamName     = setPoolConfigCmd.Flag("stream-name", "Kinesis stream name.").String()
	setPoolStreamRole     = setPoolConfigCmd.Flag("stream-role-arn", "Role used to publish to the stream.").String()
	setPoolStreamingState = setPoolConfigCmd.Flag("streaming", "Streaming status.").Enum("ENABLED", "DISABLED")

	registerDeviceCmd      = app.Command("register-device", "Register a device for push sync.")
	registerDeviceIdentity = registerDeviceCmd.Flag("identity-id", "Identity ID.").Required().String()
	registerDevicePlatform = registerDeviceCmd.Flag("platform", "Push platform.").Required().Enum("APNS", "APNS_SANDBOX", "GCM", "ADM")
	registerDeviceToken    = registerDeviceCmd.Arg("token", "Push token of the device.").Required().String()

	subscribeCmd      = app.Command("subscribe", "Subscribe a device to a dataset.")
	subscribeIdentity = subscribeCmd.Flag("identity-id", "Identity ID.").Required().String()
	subscribeDevice   = subscribeCmd.Flag("device-id", "Device ID.").Required().String()
	subscribeName     = subscribeCmd.Arg("dataset", "Dataset name.").Required().String()

	unsubscribeCmd      = app.Command("unsubscribe", "Unsubscribe a device from a dataset.")
	unsubscribeIdentity = unsubscribeCmd.Flag("identity-id", "Identity ID.").Required().String()
	unsubscribeDevice   = unsubscribeCmd.Flag("device-id", "Device ID.").Required().String()
	unsubscribeName     = unsubscribeCmd.Arg("dataset", "Dataset name.").Required().String()
)

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	log := logger.New(func(o *logger.Options) {
		o.Verbosity = *verbosity
		o.Development = *development
	})
	logger.SetDefault(log)
	setupLog := log.WithName("setup")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	ctx, cancel = context.WithTimeout(ctx, *timeout)
	defer cancel()
	ctx = logger.NewContext(ctx, log)

	if command == operationsCmd.FullCommand() {
		if err := printOperations(os.Stdout); err != nil {
			setupLog.Error(err, "unable to print operations")
			os.Exit(1)
		}
		return
	}

	client, err := newClient(ctx, setupLog)
	if err != nil {
		setupLog.Error(err, "unable to create Cognito Sync client")
		os.Exit(1)
	}

	out, err := run(ctx, command, client)
	if err != nil {
		log.Error(err, "command failed", "command", command, "code", cognito.CodeOf(err))
		os.Exit(1)
	}
	if out != nil {
		if err := printJSON(os.Stdout, out); err != nil {
			setupLog.Error(err, "unable to write output")
			os.Exit(1)
		}
	}
}

// newClient resolves the client through a registry: the selected profile if
// there is one, the default configuration otherwise.
func newClient(ctx context.Context, log logr.Logger) (*cognito.Client, error) {
	overrides := func(cfg cognito.Config) cognito.Config {
		if *region != "" {
			cfg.Region = *region
		}
		if *endpoint != "" {
			cfg.Endpoint = *endpoint
		}
		return cfg
	}
	registry := cognito.NewRegistry(cognito.WithDefaultConfig(overrides(cognito.Config{})))

	if *profilesFile == "" {
		if *useProfile != "" {
			return nil, fmt.Errorf("--use needs --profiles")
		}
		return registry.Default(ctx)
	}

	f, err := os.Open(*profilesFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	profiles, err := cognito.LoadProfiles(f)
	if err != nil {
		return nil, err
	}

	name := *useProfile
	if name == "" {
		name = profiles.Default
	}
	if name == "" {
		return registry.Default(ctx)
	}
	cfg, ok := profiles.Profiles[name]
	if !ok {
		return nil, fmt.Errorf("profile %q not found in %s", name, *profilesFile)
	}
	log.V(1).Info("using profile", "profile", name, "region", cfg.Region, "endpoint", cfg.Endpoint)
	if _, err := registry.Register(ctx, name, overrides(cfg)); err != nil {
		return nil, err
	}
	client, ok := registry.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("profile %q is not registered", name)
	}
	return client, nil
}

// await waits for the future built by call, calling again on retryable
// failures when --retries allows it.
func await[T any](ctx context.Context, call func() *cognito.Future[T]) (*T, error) {
	var out *T
	err := retry.Do(
		func() error {
			var err error
			out, err = call().Wait(ctx)
			return err
		},
		retry.Context(ctx),
		retry.Attempts(*retries+1),
		retry.RetryIf(cognito.IsRetryable),
		retry.Delay(200*time.Millisecond),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			logger.FromContext(ctx).Info("retrying", "attempt", n+1, "code", cognito.CodeOf(err))
		}),
	)
	return out, err
}

func requirePool() (*string, error) {
	if *poolID == "" {
		return nil, fmt.Errorf("--identity-pool-id is required")
	}
	return aws.String(*poolID), nil
}

func run(ctx context.Context, command string, c *cognito.Client) (any, error) {
	if command == listPoolUsageCmd.FullCommand() {
		return listPoolUsage(ctx, c)
	}

	pool, err := requirePool()
	if err != nil {
		return nil, err
	}
	datasets, err := cognito.NewDatasetClient(c, *pool)
	if err != nil {
		return nil, err
	}

	switch command {
	case listDatasetsCmd.FullCommand():
		return datasets.List(ctx, *listDatasetsIdentity)

	case describeDatasetCmd.FullCommand():
		return datasets.Get(ctx, *describeDatasetIdentity, *describeDatasetName)

	case deleteDatasetCmd.FullCommand():
		return await(ctx, func() *cognito.Future[cognitosync.DeleteDatasetOutput] {
			return c.DeleteDataset(ctx, &cognitosync.DeleteDatasetInput{
				IdentityPoolId: pool,
				IdentityId:     deleteDatasetIdentity,
				DatasetName:    deleteDatasetName,
			})
		})

	case listRecordsCmd.FullCommand():
		return datasets.Pull(ctx, *listRecordsIdentity, *listRecordsName, *listRecordsSince)

	case pullAllCmd.FullCommand():
		return datasets.PullAll(ctx, *pullAllIdentity)

	case updateRecordsCmd.FullCommand():
		datasets.DeviceID = *updateRecordsDevice
		return updateRecords(ctx, datasets)

	case poolUsageCmd.FullCommand():
		return await(ctx, func() *cognito.Future[cognitosync.DescribeIdentityPoolUsageOutput] {
			return c.DescribeIdentityPoolUsage(ctx, &cognitosync.DescribeIdentityPoolUsageInput{IdentityPoolId: pool})
		})

	case identityUsageCmd.FullCommand():
		return await(ctx, func() *cognito.Future[cognitosync.DescribeIdentityUsageOutput] {
			return c.DescribeIdentityUsage(ctx, &cognitosync.DescribeIdentityUsageInput{
				IdentityPoolId: pool,
				IdentityId:     identityUsageIdentity,
			})
		})

	case bulkPublishCmd.FullCommand():
		// Not retried: a second attempt would only report a duplicate.
		return c.BulkPublish(ctx, &cognitosync.BulkPublishInput{IdentityPoolId: pool}).Wait(ctx)

	case bulkPublishDetailsCmd.FullCommand():
		return await(ctx, func() *cognito.Future[cognitosync.GetBulkPublishDetailsOutput] {
			return c.GetBulkPublishDetails(ctx, &cognitosync.GetBulkPublishDetailsInput{IdentityPoolId: pool})
		})

	case getEventsCmd.FullCommand():
		return await(ctx, func() *cognito.Future[cognitosync.GetCognitoEventsOutput] {
			return c.GetCognitoEvents(ctx, &cognitosync.GetCognitoEventsInput{IdentityPoolId: pool})
		})

	case setEventsCmd.FullCommand():
		return await(ctx, func() *cognito.Future[cognitosync.SetCognitoEventsOutput] {
			return c.SetCognitoEvents(ctx, &cognitosync.SetCognitoEventsInput{IdentityPoolId: pool, Events: *setEvents})
		})

	case getPoolConfigCmd.FullCommand():
		return await(ctx, func() *cognito.Future[cognitosync.GetIdentityPoolConfigurationOutput] {
			return c.GetIdentityPoolConfiguration(ctx, &cognitosync.GetIdentityPoolConfigurationInput{IdentityPoolId: pool})
		})

	case setPoolConfigCmd.FullCommand():
		in := poolConfigInput(pool)
		return await(ctx, func() *cognito.Future[cognitosync.SetIdentityPoolConfigurationOutput] {
			return c.SetIdentityPoolConfiguration(ctx, in)
		})

	case registerDeviceCmd.FullCommand():
		return await(ctx, func() *cognito.Future[cognitosync.RegisterDeviceOutput] {
			return c.RegisterDevice(ctx, &cognitosync.RegisterDeviceInput{
				IdentityPoolId: pool,
				IdentityId:     registerDeviceIdentity,
				Platform:       types.Platform(*registerDevicePlatform),
				Token:          registerDeviceToken,
			})
		})

	case subscribeCmd.FullCommand():
		return await(ctx, func() *cognito.Future[cognitosync.SubscribeToDatasetOutput] {
			return c.SubscribeToDataset(ctx, &cognitosync.SubscribeToDatasetInput{
				IdentityPoolId: pool,
				IdentityId:     subscribeIdentity,
				DatasetName:    subscribeName,
				DeviceId:       subscribeDevice,
			})
		})

	case unsubscribeCmd.FullCommand():
		return await(ctx, func() *cognito.Future[cognitosync.UnsubscribeFromDatasetOutput] {
			return c.UnsubscribeFromDataset(ctx, &cognitosync.UnsubscribeFromDatasetInput{
				IdentityPoolId: pool,
				IdentityId:     unsubscribeIdentity,
				DatasetName:    unsubscribeName,
				DeviceId:       unsubscribeDevice,
			})
		})
	}

	return nil, fmt.Errorf("unknown command %q", command)
}

func listPoolUsage(ctx context.Context, c *cognito.Client) ([]types.IdentityPoolUsage, error) {
	var usages []types.IdentityPoolUsage
	var nextToken *string
	for {
		output, err := await(ctx, func() *cognito.Future[cognitosync.ListIdentityPoolUsageOutput] {
			return c.ListIdentityPoolUsage(ctx, &cognitosync.ListIdentityPoolUsageInput{NextToken: nextToken})
		})
		if err != nil {
			return nil, err
		}
		usages = append(usages, output.IdentityPoolUsages...)
		nextToken = output.NextToken
		if nextToken == nil {
			return usages, nil
		}
	}
}

// updateRecords pulls the dataset to learn the session token and current
// sync counts, then pushes the requested changes.
func updateRecords(ctx context.Context, datasets *cognito.DatasetClient) ([]dataset.Record, error) {
	snap, err := datasets.Pull(ctx, *updateRecordsIdentity, *updateRecordsName, 0)
	if err != nil {
		return nil, err
	}
	current := make(map[string]int64, len(snap.Records))
	for _, rec := range snap.Records {
		current[rec.Key] = rec.SyncCount
	}
	syncCount := func(key string) (int64, error) {
		if s, ok := (*updateRecordsCounts)[key]; ok {
			return strconv.ParseInt(s, 10, 64)
		}
		return current[key], nil
	}

	var patches []dataset.Patch
	for key, value := range *updateRecordsSet {
		n, err := syncCount(key)
		if err != nil {
			return nil, fmt.Errorf("invalid sync count for %s: %w", key, err)
		}
		patches = append(patches, dataset.Patch{Key: key, Value: aws.String(value), SyncCount: n})
	}
	for _, key := range *updateRecordsRemove {
		n, err := syncCount(key)
		if err != nil {
			return nil, fmt.Errorf("invalid sync count for %s: %w", key, err)
		}
		patches = append(patches, dataset.Patch{Key: key, SyncCount: n})
	}
	if len(patches) == 0 {
		return nil, fmt.Errorf("nothing to update: use --set or --remove")
	}
	return datasets.Push(ctx, *updateRecordsIdentity, *updateRecordsName, snap.SessionToken, patches)
}

func poolConfigInput(pool *string) *cognitosync.SetIdentityPoolConfigurationInput {
	in := &cognitosync.SetIdentityPoolConfigurationInput{IdentityPoolId: pool}
	if *setPoolPushRole != "" || len(*setPoolApplications) > 0 {
		in.PushSync = &types.PushSync{ApplicationArns: *setPoolApplications}
		if *setPoolPushRole != "" {
			in.PushSync.RoleArn = setPoolPushRole
		}
	}
	if *setPoolStreamName != "" || *setPoolStreamRole != "" || *setPoolStreamingState != "" {
		in.CognitoStreams = &types.CognitoStreams{StreamingStatus: types.StreamingStatus(*setPoolStreamingState)}
		if *setPoolStreamName != "" {
			in.CognitoStreams.StreamName = setPoolStreamName
		}
		if *setPoolStreamRole != "" {
			in.CognitoStreams.RoleArn = setPoolStreamRole
		}
	}
	return in
}

func printOperations(w io.Writer) error {
	type row struct {
		Name        cognito.Operation   `json:"name"`
		Credentials string              `json:"credentials"`
		Errors      []cognito.ErrorCode `json:"errors"`
		Paginated   bool                `json:"paginated,omitempty"`
	}
	var rows []row
	for _, spec := range cognito.Operations() {
		rows = append(rows, row{
			Name:        spec.Name,
			Credentials: spec.Credentials.String(),
			Errors:      spec.Errors,
			Paginated:   spec.Paginated,
		})
	}
	return printJSON(w, rows)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
