// internal/common/http/client.go
package http

import (
	"time"

	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
)

// NewClient returns the transport every SDK client is built with. Its
// timeout is the only one applied to remote calls; zero means none.
// The client stays buildable so the SDK can install a custom CA bundle.
func NewClient(timeout time.Duration) *awshttp.BuildableClient {
	return awshttp.NewBuildableClient().WithTimeout(timeout)
}
