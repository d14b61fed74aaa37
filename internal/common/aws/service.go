// internal/common/aws/service.go
package aws

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
)

// Service identifies a remote AWS service family.
type Service string

const (
	ServiceSNS Service = "sns"
	ServiceSES Service = "ses"
	ServiceSSM Service = "ssm"
	ServiceRDS Service = "rds"
	ServiceSTS Service = "sts"
)

type clientConstructor func(cfg aws.Config, endpoint string) any

var constructors = map[Service]clientConstructor{
	ServiceSNS: newSNSClient,
	ServiceSES: newSESClient,
	ServiceSSM: newSSMClient,
	ServiceRDS: newRDSClient,
	ServiceSTS: newSTSClient,
}

// Services returns every supported service, sorted.
func Services() []Service {
	out := make([]Service, 0, len(constructors))
	for s := range constructors {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ParseService maps a case-insensitive name onto a supported Service.
func ParseService(name string) (Service, error) {
	s := Service(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := constructors[s]; !ok {
		return "", fmt.Errorf("unsupported service %q", name)
	}
	return s, nil
}

func (s Service) String() string {
	return string(s)
}

// DisplayName is the human-facing product name.
func (s Service) DisplayName() string {
	switch s {
	case ServiceSNS:
		return "Amazon SNS"
	case ServiceSES:
		return "Amazon SES"
	case ServiceSSM:
		return "AWS Systems Manager"
	case ServiceRDS:
		return "Amazon RDS"
	case ServiceSTS:
		return "AWS STS"
	default:
		return string(s)
	}
}
