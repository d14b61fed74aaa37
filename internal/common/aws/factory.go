// internal/common/aws/factory.go
package aws

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsmiddleware "github.com/aws/aws-sdk-go-v2/aws/middleware"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/smithy-go/middleware"
)

// Target carries everything needed to build one service client.
type Target struct {
	Service     Service
	Region      string
	Credentials Credentials
	Endpoint    string
}

// Factory builds a fresh, uncached SDK client per Target. Retries are
// disabled so every dispatch issues exactly one request.
//
// HTTPClient should be an *awshttp.BuildableClient: a configured CA bundle
// (AWS_CA_BUNDLE or ca_bundle) can only be installed on a buildable client.
type Factory struct {
	HTTPClient  aws.HTTPClient
	UserAgent   string
	LoadOptions []func(*awsconfig.LoadOptions) error
}

func NewFactory(httpClient aws.HTTPClient) *Factory {
	return &Factory{HTTPClient: httpClient}
}

// WithUserAgent appends token ("name/version" or "name") to the User-Agent
// of every request.
func (f *Factory) WithUserAgent(token string) *Factory {
	c := *f
	c.UserAgent = token
	return &c
}

// NewClient returns the service-specific client, e.g. *sns.Client for ServiceSNS.
func (f *Factory) NewClient(ctx context.Context, t Target) (any, error) {
	build, ok := constructors[t.Service]
	if !ok {
		return nil, fmt.Errorf("unsupported service %q", t.Service)
	}
	if t.Region == "" {
		return nil, fmt.Errorf("region is required for %s", t.Service)
	}

	cfg, err := f.loadConfig(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config for %s: %w", t.Service, err)
	}
	return build(cfg, t.Endpoint), nil
}

func (f *Factory) loadConfig(ctx context.Context, t Target) (aws.Config, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(t.Region),
		awsconfig.WithRetryer(func() aws.Retryer { return aws.NopRetryer{} }),
	}
	if t.Credentials.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				t.Credentials.AccessKeyID,
				t.Credentials.SecretAccessKey,
				t.Credentials.SessionToken,
			),
		))
	}
	if f.HTTPClient != nil {
		opts = append(opts, awsconfig.WithHTTPClient(f.HTTPClient))
	}
	if f.UserAgent != "" {
		opts = append(opts, awsconfig.WithAPIOptions([]func(*middleware.Stack) error{
			userAgentOption(f.UserAgent),
		}))
	}
	opts = append(opts, f.LoadOptions...)

	return awsconfig.LoadDefaultConfig(ctx, opts...)
}

func userAgentOption(token string) func(*middleware.Stack) error {
	if name, version, ok := strings.Cut(token, "/"); ok {
		return awsmiddleware.AddUserAgentKeyValue(name, version)
	}
	return awsmiddleware.AddUserAgentKey(token)
}
