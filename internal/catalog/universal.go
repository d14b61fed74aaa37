package catalog

// Universal configuration keys accepted by every operation.
const (
	KeyRegion          = "region"
	KeyEndpoint        = "endpoint"
	KeyAccessKeyID     = "accessKeyId"
	KeySecretAccessKey = "secretAccessKey"
	KeySessionToken    = "sessionToken"
)

// UniversalFields returns a fresh copy on every call.
func UniversalFields() []Field {
	return []Field{
		str(KeyRegion, "Target region, e.g. us-east-1.").req(),
		str(KeyEndpoint, "Endpoint override replacing the service's default routing target."),
		str(KeyAccessKeyID, "Static access key id. Omit to use the default credential chain."),
		str(KeySecretAccessKey, "Static secret access key. Required together with accessKeyId."),
		str(KeySessionToken, "Optional session token for temporary credentials."),
	}
}

// IsUniversalKey reports whether key is consumed by the invocation
// parameters rather than passed to the operation.
func IsUniversalKey(key string) bool {
	switch key {
	case KeyRegion, KeyEndpoint, KeyAccessKeyID, KeySecretAccessKey, KeySessionToken:
		return true
	}
	return false
}
