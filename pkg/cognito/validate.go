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
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/cognitosync"
	"github.com/aws/aws-sdk-go-v2/service/cognitosync/types"
	"github.com/aws/smithy-go"
)

// params collects missing required fields for one input shape.
type params struct {
	smithy.InvalidParamsError
}

func newParams(shape string) *params {
	return &params{InvalidParamsError: smithy.InvalidParamsError{Context: shape}}
}

func (p *params) require(name string, v *string) *params {
	if v == nil || *v == "" {
		p.Add(smithy.NewErrParamRequired(name))
	}
	return p
}

func (p *params) requireSet(name string, set bool) *params {
	if !set {
		p.Add(smithy.NewErrParamRequired(name))
	}
	return p
}

func (p *params) err() error {
	if p.Len() > 0 {
		return p.InvalidParamsError
	}
	return nil
}

// validate checks presence of the required fields of a request. Anything
// deeper is left to the service.
func validate(in any) error {
	switch v := in.(type) {
	case nil:
		return smithy.InvalidParamsError{Context: "nil input"}
	case *cognitosync.BulkPublishInput:
		return newParams("BulkPublishInput").
			require("IdentityPoolId", v.IdentityPoolId).err()
	case *cognitosync.DeleteDatasetInput:
		return newParams("DeleteDatasetInput").
			require("IdentityPoolId", v.IdentityPoolId).
			require("IdentityId", v.IdentityId).
			require("DatasetName", v.DatasetName).err()
	case *cognitosync.DescribeDatasetInput:
		return newParams("DescribeDatasetInput").
			require("IdentityPoolId", v.IdentityPoolId).
			require("IdentityId", v.IdentityId).
			require("DatasetName", v.DatasetName).err()
	case *cognitosync.DescribeIdentityPoolUsageInput:
		return newParams("DescribeIdentityPoolUsageInput").
			require("IdentityPoolId", v.IdentityPoolId).err()
	case *cognitosync.DescribeIdentityUsageInput:
		return newParams("DescribeIdentityUsageInput").
			require("IdentityPoolId", v.IdentityPoolId).
			require("IdentityId", v.IdentityId).err()
	case *cognitosync.GetBulkPublishDetailsInput:
		return newParams("GetBulkPublishDetailsInput").
			require("IdentityPoolId", v.IdentityPoolId).err()
	case *cognitosync.GetCognitoEventsInput:
		return newParams("GetCognitoEventsInput").
			require("IdentityPoolId", v.IdentityPoolId).err()
	case *cognitosync.GetIdentityPoolConfigurationInput:
		return newParams("GetIdentityPoolConfigurationInput").
			require("IdentityPoolId", v.IdentityPoolId).err()
	case *cognitosync.ListDatasetsInput:
		return newParams("ListDatasetsInput").
			require("IdentityPoolId", v.IdentityPoolId).
			require("IdentityId", v.IdentityId).err()
	case *cognitosync.ListIdentityPoolUsageInput:
		return nil
	case *cognitosync.ListRecordsInput:
		return newParams("ListRecordsInput").
			require("IdentityPoolId", v.IdentityPoolId).
			require("IdentityId", v.IdentityId).
			require("DatasetName", v.DatasetName).err()
	case *cognitosync.RegisterDeviceInput:
		return newParams("RegisterDeviceInput").
			require("IdentityPoolId", v.IdentityPoolId).
			require("IdentityId", v.IdentityId).
			requireSet("Platform", v.Platform != "").
			require("Token", v.Token).err()
	case *cognitosync.SetCognitoEventsInput:
		return newParams("SetCognitoEventsInput").
			require("IdentityPoolId", v.IdentityPoolId).
			requireSet("Events", v.Events != nil).err()
	case *cognitosync.SetIdentityPoolConfigurationInput:
		return newParams("SetIdentityPoolConfigurationInput").
			require("IdentityPoolId", v.IdentityPoolId).err()
	case *cognitosync.SubscribeToDatasetInput:
		return newParams("SubscribeToDatasetInput").
			require("IdentityPoolId", v.IdentityPoolId).
			require("IdentityId", v.IdentityId).
			require("DatasetName", v.DatasetName).
			require("DeviceId", v.DeviceId).err()
	case *cognitosync.UnsubscribeFromDatasetInput:
		return newParams("UnsubscribeFromDatasetInput").
			require("IdentityPoolId", v.IdentityPoolId).
			require("IdentityId", v.IdentityId).
			require("DatasetName", v.DatasetName).
			require("DeviceId", v.DeviceId).err()
	case *cognitosync.UpdateRecordsInput:
		p := newParams("UpdateRecordsInput").
			require("IdentityPoolId", v.IdentityPoolId).
			require("IdentityId", v.IdentityId).
			require("DatasetName", v.DatasetName).
			require("SyncSessionToken", v.SyncSessionToken)
		for i, patch := range v.RecordPatches {
			validatePatch(p, i, patch)
		}
		return p.err()
	default:
		return fmt.Errorf("unsupported input type %T", in)
	}
}

func validatePatch(p *params, i int, patch types.RecordPatch) {
	field := fmt.Sprintf("RecordPatches[%d]", i)
	p.requireSet(field+".Op", patch.Op != "")
	p.require(field+".Key", patch.Key)
	p.requireSet(field+".SyncCount", patch.SyncCount != nil)
}
