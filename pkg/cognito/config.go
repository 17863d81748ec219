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
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"gopkg.in/yaml.v3"
)

// Config is the connection configuration a Client is bound to. It must not be
// modified once a Client has been built from it.
type Config struct {
	// Region is the AWS region of the Cognito Sync endpoint.
	Region string `yaml:"region"`
	// Endpoint overrides the resolved service endpoint, e.g. for a local twin.
	Endpoint string `yaml:"endpoint,omitempty"`
	// Profile selects a shared config profile.
	Profile string `yaml:"profile,omitempty"`

	// Static credentials. When AccessKeyID is empty the default credential
	// chain is used.
	AccessKeyID     string `yaml:"accessKeyId,omitempty"`
	SecretAccessKey string `yaml:"secretAccessKey,omitempty"`
	SessionToken    string `yaml:"sessionToken,omitempty"`

	// Credentials overrides every other credential setting.
	Credentials aws.CredentialsProvider `yaml:"-"`

	// MaxAttempts is handed to the SDK retryer. Zero keeps the SDK default;
	// one disables transport retries.
	MaxAttempts int `yaml:"maxAttempts,omitempty"`
}

// LoadAWSConfig resolves cfg into an aws.Config.
func LoadAWSConfig(ctx context.Context, cfg Config) (aws.Config, error) {
	var opts []func(*config.LoadOptions) error
	if cfg.Region != "" {
		opts = append(opts, config.WithRegion(cfg.Region))
	}
	if cfg.Profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(cfg.Profile))
	}
	switch {
	case cfg.Credentials != nil:
		opts = append(opts, config.WithCredentialsProvider(cfg.Credentials))
	case cfg.AccessKeyID != "":
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, cfg.SessionToken)))
	}
	if cfg.MaxAttempts > 0 {
		opts = append(opts, config.WithRetryMaxAttempts(cfg.MaxAttempts))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return awsCfg, nil
}

// Profiles maps registry keys to connection configurations.
type Profiles struct {
	Default  string            `yaml:"default,omitempty"`
	Profiles map[string]Config `yaml:"profiles"`
}

// LoadProfiles decodes a YAML profiles document:
//
//	default: prod
//	profiles:
//	  prod:
//	    region: us-east-1
//	  local:
//	    region: us-east-1
//	    endpoint: http://localhost:4000
//	    accessKeyId: test
//	    secretAccessKey: test
func LoadProfiles(r io.Reader) (*Profiles, error) {
	var p Profiles
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		if err == io.EOF {
			return &Profiles{Profiles: map[string]Config{}}, nil
		}
		return nil, fmt.Errorf("failed to decode profiles: %w", err)
	}
	if p.Profiles == nil {
		p.Profiles = map[string]Config{}
	}
	if p.Default != "" {
		if _, ok := p.Profiles[p.Default]; !ok {
			return nil, fmt.Errorf("default profile %q is not defined", p.Default)
		}
	}
	return &p, nil
}
