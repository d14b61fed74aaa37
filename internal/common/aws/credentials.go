// internal/common/aws/credentials.go
package aws

import (
	"regexp"
	"strings"
)

const redacted = "****"

// Credentials is an optional static key pair. The zero value means the
// default provider chain is used.
type Credentials struct {
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
}

func (c Credentials) IsZero() bool {
	return c.AccessKeyID == "" && c.SecretAccessKey == "" && c.SessionToken == ""
}

// String never includes the secret or session token.
func (c Credentials) String() string {
	if c.IsZero() {
		return "Credentials{default chain}"
	}
	return "Credentials{AccessKeyID: " + RedactAccessKey(c.AccessKeyID) + ", SecretAccessKey: " + redacted + "}"
}

func (c Credentials) GoString() string {
	return c.String()
}

// RedactAccessKey keeps the four character key-type prefix (AKIA, ASIA, ...).
func RedactAccessKey(id string) string {
	if len(id) <= 4 {
		return redacted
	}
	return id[:4] + redacted
}

var accessKeyPattern = regexp.MustCompile(`\b(AKIA|ASIA|AROA|AIDA)[A-Z0-9]{12,}\b`)

// Sanitize strips anything resembling an access key from msg, along with the
// literal values of any supplied credentials.
func Sanitize(msg string, creds Credentials) string {
	for _, secret := range []string{creds.SecretAccessKey, creds.SessionToken, creds.AccessKeyID} {
		if secret != "" {
			msg = strings.ReplaceAll(msg, secret, redacted)
		}
	}
	return accessKeyPattern.ReplaceAllString(msg, "${1}"+redacted)
}
