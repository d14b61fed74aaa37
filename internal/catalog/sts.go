package catalog

import (
	"github.com/aws/aws-sdk-go-v2/service/sts"

	"cloudops-workers/internal/common/aws"
)

const categoryIdentity = "identity"

func stsOperations() []Descriptor {
	return []Descriptor{
		{
			Name:        "sts-get-caller-identity",
			Service:     aws.ServiceSTS,
			Action:      "GetCallerIdentity",
			DisplayName: "STS Get Caller Identity",
			Description: "Returns the account and principal behind the supplied credentials.",
			Category:    categoryIdentity,
			OutputSchema: []Field{
				str("Account", ""),
				str("Arn", ""),
				str("UserId", ""),
			},
			call: bind((*sts.Client).GetCallerIdentity),
		},
		{
			Name:        "sts-assume-role",
			Service:     aws.ServiceSTS,
			Action:      "AssumeRole",
			DisplayName: "STS Assume Role",
			Description: "Returns temporary credentials for a role.",
			Category:    categoryIdentity,
			InputFields: []Field{
				str("RoleArn", "").req(),
				str("RoleSessionName", "").req(),
				integer("DurationSeconds", "900 to the role's maximum session duration."),
				str("ExternalId", ""),
				str("Policy", "Inline session policy JSON."),
			},
			OutputSchema: []Field{
				obj("Credentials", "Temporary credentials.",
					str("AccessKeyId", ""),
					str("SecretAccessKey", ""),
					str("SessionToken", ""),
					str("Expiration", ""),
				),
				obj("AssumedRoleUser", "", str("Arn", ""), str("AssumedRoleId", "")),
				integer("PackedPolicySize", ""),
			},
			call: bind((*sts.Client).AssumeRole),
		},
	}
}
