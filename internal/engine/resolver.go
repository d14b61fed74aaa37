package engine

import (
	"fmt"
	"strings"

	"cloudops-workers/internal/catalog"
	"cloudops-workers/internal/common/aws"
)

// Params are the universal invocation parameters.
type Params struct {
	Region      string
	Endpoint    string
	Credentials aws.Credentials
}

func (p Params) Target(service aws.Service) aws.Target {
	return aws.Target{
		Service:     service,
		Region:      p.Region,
		Credentials: p.Credentials,
		Endpoint:    p.Endpoint,
	}
}

// LogFields omits every secret; only the access key prefix is kept.
func (p Params) LogFields() map[string]interface{} {
	fields := map[string]interface{}{
		"region":           p.Region,
		"credentialSource": "default-chain",
	}
	if p.Endpoint != "" {
		fields["endpoint"] = p.Endpoint
	}
	if p.Credentials.AccessKeyID != "" {
		fields["credentialSource"] = "static"
		fields["accessKey"] = aws.RedactAccessKey(p.Credentials.AccessKeyID)
	}
	return fields
}

func (p Params) String() string {
	return fmt.Sprintf("Params{Region: %s, Endpoint: %s, Credentials: %s}", p.Region, p.Endpoint, p.Credentials)
}

func (p Params) GoString() string {
	return p.String()
}

// Invocation is the per-call split of a configuration mapping.
type Invocation struct {
	Params  Params
	Payload map[string]any
}

// Resolve splits config into universal parameters and the operation
// payload. Non-universal keys are copied verbatim into a new map; config
// itself is never modified.
func Resolve(config map[string]any) (*Invocation, error) {
	region, err := stringParam(config, catalog.KeyRegion, true)
	if err != nil {
		return nil, err
	}
	endpoint, err := stringParam(config, catalog.KeyEndpoint, false)
	if err != nil {
		return nil, err
	}

	creds, err := resolveCredentials(config)
	if err != nil {
		return nil, err
	}

	payload := make(map[string]any, len(config))
	for k, v := range config {
		if !catalog.IsUniversalKey(k) {
			payload[k] = v
		}
	}

	return &Invocation{
		Params: Params{
			Region:      region,
			Endpoint:    endpoint,
			Credentials: creds,
		},
		Payload: payload,
	}, nil
}

func resolveCredentials(config map[string]any) (aws.Credentials, error) {
	var creds aws.Credentials
	var err error

	if creds.AccessKeyID, err = stringParam(config, catalog.KeyAccessKeyID, false); err != nil {
		return creds, err
	}
	if creds.SecretAccessKey, err = stringParam(config, catalog.KeySecretAccessKey, false); err != nil {
		return creds, err
	}
	if creds.SessionToken, err = stringParam(config, catalog.KeySessionToken, false); err != nil {
		return creds, err
	}

	switch {
	case creds.AccessKeyID == "" && creds.SecretAccessKey != "":
		return aws.Credentials{}, &ConfigurationError{Field: catalog.KeyAccessKeyID, Reason: "required when secretAccessKey is set"}
	case creds.AccessKeyID != "" && creds.SecretAccessKey == "":
		return aws.Credentials{}, &ConfigurationError{Field: catalog.KeySecretAccessKey, Reason: "required when accessKeyId is set"}
	case creds.AccessKeyID == "" && creds.SessionToken != "":
		return aws.Credentials{}, &ConfigurationError{Field: catalog.KeySessionToken, Reason: "requires accessKeyId and secretAccessKey"}
	}
	return creds, nil
}

// stringParam treats a nil value like an absent key. The offending value is
// never included in the error.
func stringParam(config map[string]any, key string, required bool) (string, error) {
	raw, ok := config[key]
	if !ok || raw == nil {
		if required {
			return "", &ConfigurationError{Field: key, Reason: "is required"}
		}
		return "", nil
	}

	s, ok := raw.(string)
	if !ok {
		return "", &ConfigurationError{Field: key, Reason: fmt.Sprintf("must be a string, got %T", raw)}
	}
	if required && strings.TrimSpace(s) == "" {
		return "", &ConfigurationError{Field: key, Reason: "must not be empty"}
	}
	return s, nil
}
