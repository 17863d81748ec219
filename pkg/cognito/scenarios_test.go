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

package cognito_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cognitosync"
	"github.com/aws/aws-sdk-go-v2/service/cognitosync/types"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/cogniteo/cognito-sync-client/pkg/cognito"
)

const (
	poolID     = "us-east-1:4a4f6a9e-1111-4000-8000-00000000000a"
	identityID = "us-east-1:7c2b1d0e-2222-4000-8000-00000000000b"
)

var _ = Describe("Cognito Sync client", func() {
	ctx := context.Background()

	Context("When bound to the in-memory service", func() {
		var (
			registry *cognito.Registry
			client   *cognito.Client
			memory   *cognito.MemoryAPI
		)

		BeforeEach(func() {
			memory = cognito.NewMemoryAPI()
			registry = cognito.NewRegistry(cognito.WithFactory(func(_ context.Context, cfg cognito.Config) (*cognito.Client, error) {
				return cognito.New(memory, cognito.WithConfig(cfg), cognito.WithLogger(GinkgoLogr)), nil
			}))

			By("registering the client under test-key")
			_, err := registry.Register(ctx, "test-key", cognito.Config{Region: "us-east-1"})
			Expect(err).NotTo(HaveOccurred())

			var ok bool
			client, ok = registry.Lookup("test-key")
			Expect(ok).To(BeTrue())

			By("creating dataset abc")
			records, err := client.ListRecords(ctx, &cognitosync.ListRecordsInput{
				IdentityPoolId: aws.String(poolID),
				IdentityId:     aws.String(identityID),
				DatasetName:    aws.String("abc"),
			}).Wait(ctx)
			Expect(err).NotTo(HaveOccurred())
			_, err = client.UpdateRecords(ctx, &cognitosync.UpdateRecordsInput{
				IdentityPoolId:   aws.String(poolID),
				IdentityId:       aws.String(identityID),
				DatasetName:      aws.String("abc"),
				SyncSessionToken: records.SyncSessionToken,
				RecordPatches: []types.RecordPatch{
					{Op: types.OperationReplace, Key: aws.String("k"), Value: aws.String("v1"), SyncCount: aws.Int64(0)},
				},
			}).Wait(ctx)
			Expect(err).NotTo(HaveOccurred())
		})

		It("should list the datasets of an identity", func() {
			out, err := client.ListDatasets(ctx, &cognitosync.ListDatasetsInput{
				IdentityPoolId: aws.String(poolID),
				IdentityId:     aws.String(identityID),
			}).Wait(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(out.Datasets).To(HaveLen(1))
			Expect(aws.ToString(out.Datasets[0].DatasetName)).To(Equal("abc"))
		})

		It("should report a deleted dataset as not found", func() {
			_, err := client.DeleteDataset(ctx, &cognitosync.DeleteDatasetInput{
				IdentityPoolId: aws.String(poolID),
				IdentityId:     aws.String(identityID),
				DatasetName:    aws.String("abc"),
			}).Wait(ctx)
			Expect(err).NotTo(HaveOccurred())

			_, err = client.DescribeDataset(ctx, &cognitosync.DescribeDatasetInput{
				IdentityPoolId: aws.String(poolID),
				IdentityId:     aws.String(identityID),
				DatasetName:    aws.String("abc"),
			}).Wait(ctx)
			Expect(err).To(HaveOccurred())
			Expect(cognito.CodeOf(err)).To(Equal(cognito.ErrorResourceNotFound))
		})

		It("should reject a second bulk publish while one is running", func() {
			in := &cognitosync.BulkPublishInput{IdentityPoolId: aws.String(poolID)}

			_, err := client.BulkPublish(ctx, in).Wait(ctx)
			Expect(err).NotTo(HaveOccurred())

			_, err = client.BulkPublish(ctx, in).Wait(ctx)
			Expect(cognito.CodeOf(err)).To(Equal(cognito.ErrorDuplicateRequest))
		})

		It("should reject a patch with a stale sync count", func() {
			records, err := client.ListRecords(ctx, &cognitosync.ListRecordsInput{
				IdentityPoolId: aws.String(poolID),
				IdentityId:     aws.String(identityID),
				DatasetName:    aws.String("abc"),
			}).Wait(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(aws.ToInt64(records.DatasetSyncCount)).To(Equal(int64(1)))

			_, err = client.UpdateRecords(ctx, &cognitosync.UpdateRecordsInput{
				IdentityPoolId:   aws.String(poolID),
				IdentityId:       aws.String(identityID),
				DatasetName:      aws.String("abc"),
				SyncSessionToken: records.SyncSessionToken,
				RecordPatches: []types.RecordPatch{
					{Op: types.OperationReplace, Key: aws.String("k"), Value: aws.String("v2"), SyncCount: aws.Int64(0)},
				},
			}).Wait(ctx)
			Expect(cognito.IsConflict(err)).To(BeTrue())

			var conflict *types.ResourceConflictException
			Expect(err).To(BeAssignableToTypeOf(&cognito.Error{}))
			Expect(errors.As(err, &conflict)).To(BeTrue())
		})

		It("should reject an invalid request without dispatching it", func() {
			memory.FailNext(cognito.OpDescribeDataset, fmt.Errorf("must not be reached"))

			_, err := client.DescribeDataset(ctx, &cognitosync.DescribeDatasetInput{
				IdentityPoolId: aws.String(poolID),
				IdentityId:     aws.String(identityID),
			}).Wait(ctx)
			Expect(cognito.CodeOf(err)).To(Equal(cognito.ErrorValidation))

			By("consuming the injected failure with a valid request")
			_, err = client.DescribeDataset(ctx, &cognitosync.DescribeDatasetInput{
				IdentityPoolId: aws.String(poolID),
				IdentityId:     aws.String(identityID),
				DatasetName:    aws.String("abc"),
			}).Wait(ctx)
			Expect(err).To(MatchError(ContainSubstring("must not be reached")))
			Expect(cognito.CodeOf(err)).To(Equal(cognito.ErrorTransport))
		})

		It("should keep other keys when one is removed", func() {
			_, err := registry.Register(ctx, "other", cognito.Config{Region: "eu-west-1"})
			Expect(err).NotTo(HaveOccurred())

			registry.Remove("test-key")

			_, ok := registry.Lookup("test-key")
			Expect(ok).To(BeFalse())
			other, ok := registry.Lookup("other")
			Expect(ok).To(BeTrue())
			Expect(other.Config().Region).To(Equal("eu-west-1"))
		})
	})

	Context("When talking to the service over HTTP", func() {
		var (
			server   *httptest.Server
			client   *cognito.Client
			requests atomic.Int32
		)

		BeforeEach(func() {
			requests.Store(0)
			server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				requests.Add(1)
				switch {
				case r.Method == http.MethodGet && strings.HasSuffix(r.URL.Path, "/datasets"):
					w.Header().Set("Content-Type", "application/json")
					fmt.Fprintf(w, `{"Datasets":[{"DatasetName":"abc","IdentityId":%q,"LastModifiedBy":"device-1"}]}`, identityID)
				case strings.HasSuffix(r.URL.Path, "/datasets/missing"):
					writeServiceError(w, http.StatusNotFound, "ResourceNotFoundException")
				case strings.HasSuffix(r.URL.Path, "/datasets/busy"):
					writeServiceError(w, http.StatusTooManyRequests, "TooManyRequestsException")
				case strings.HasSuffix(r.URL.Path, "/datasets/novel"):
					writeServiceError(w, http.StatusBadRequest, "BrandNewException")
				case strings.HasSuffix(r.URL.Path, "/datasets/hangup"):
					conn, _, err := w.(http.Hijacker).Hijack()
					if err == nil {
						conn.Close()
					}
				default:
					w.WriteHeader(http.StatusNotImplemented)
				}
			}))
			DeferCleanup(server.Close)

			registry := cognito.NewRegistry()
			var err error
			client, err = registry.Register(ctx, "http", cognito.Config{
				Region:          "us-east-1",
				Endpoint:        server.URL,
				AccessKeyID:     "AKIDEXAMPLE",
				SecretAccessKey: "secret",
				MaxAttempts:     1,
			})
			Expect(err).NotTo(HaveOccurred())
		})

		describe := func(name string) (*cognitosync.DescribeDatasetOutput, error) {
			return client.DescribeDataset(ctx, &cognitosync.DescribeDatasetInput{
				IdentityPoolId: aws.String(poolID),
				IdentityId:     aws.String(identityID),
				DatasetName:    aws.String(name),
			}).Wait(ctx)
		}

		It("should decode a successful response", func() {
			out, err := client.ListDatasets(ctx, &cognitosync.ListDatasetsInput{
				IdentityPoolId: aws.String(poolID),
				IdentityId:     aws.String(identityID),
			}).Wait(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(out.Datasets).To(HaveLen(1))
			Expect(aws.ToString(out.Datasets[0].DatasetName)).To(Equal("abc"))
			Expect(aws.ToString(out.Datasets[0].LastModifiedBy)).To(Equal("device-1"))
		})

		It("should classify service errors by their wire code", func() {
			_, err := describe("missing")
			Expect(cognito.IsNotFound(err)).To(BeTrue())

			_, err = describe("busy")
			Expect(cognito.CodeOf(err)).To(Equal(cognito.ErrorTooManyRequests))
			Expect(cognito.IsRetryable(err)).To(BeTrue())

			_, err = describe("novel")
			Expect(cognito.CodeOf(err)).To(Equal(cognito.ErrorCode("BrandNew")))

			Expect(requests.Load()).To(Equal(int32(3)))
		})

		It("should report a dropped connection as a transport failure", func() {
			_, err := describe("hangup")
			Expect(err).To(HaveOccurred())
			Expect(cognito.CodeOf(err)).To(Equal(cognito.ErrorTransport))
		})

		It("should not send a request that fails validation", func() {
			_, err := describe("")
			Expect(cognito.CodeOf(err)).To(Equal(cognito.ErrorValidation))
			Expect(requests.Load()).To(BeZero())
		})
	})
})

func writeServiceError(w http.ResponseWriter, status int, code string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Amzn-ErrorType", code)
	w.WriteHeader(status)
	fmt.Fprintf(w, `{"message":"%s raised by test server"}`, code)
}
