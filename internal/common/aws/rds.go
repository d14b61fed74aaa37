// internal/common/aws/rds.go
package aws

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rds"
)

func newRDSClient(cfg aws.Config, endpoint string) any {
	return rds.NewFromConfig(cfg, func(o *rds.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})
}
