package catalog

import (
	"github.com/aws/aws-sdk-go-v2/service/ssm"

	"cloudops-workers/internal/common/aws"
)

const categorySystems = "systems-management"

func ssmParameter(key string) Field {
	return obj(key, "",
		str("Name", ""),
		str("Type", "String, StringList or SecureString."),
		str("Value", ""),
		integer("Version", ""),
		str("LastModifiedDate", "RFC 3339 timestamp."),
		str("ARN", ""),
		str("DataType", ""),
	)
}

func ssmOperations() []Descriptor {
	return []Descriptor{
		{
			Name:        "ssm-get-parameter",
			Service:     aws.ServiceSSM,
			Action:      "GetParameter",
			DisplayName: "SSM Get Parameter",
			Description: "Returns one parameter by name.",
			Category:    categorySystems,
			InputFields: []Field{
				str("Name", "").req(),
				boolean("WithDecryption", "Decrypt SecureString values."),
			},
			OutputSchema: []Field{
				ssmParameter("Parameter"),
			},
			call: bind((*ssm.Client).GetParameter),
		},
		{
			Name:        "ssm-get-parameters",
			Service:     aws.ServiceSSM,
			Action:      "GetParameters",
			DisplayName: "SSM Get Parameters",
			Description: "Returns up to ten parameters by name.",
			Category:    categorySystems,
			InputFields: []Field{
				strList("Names", "").req(),
				boolean("WithDecryption", "Decrypt SecureString values."),
			},
			OutputSchema: []Field{
				list("Parameters", "", ssmParameter("")),
				strList("InvalidParameters", "Names that were not found."),
			},
			call: bind((*ssm.Client).GetParameters),
		},
		{
			Name:        "ssm-put-parameter",
			Service:     aws.ServiceSSM,
			Action:      "PutParameter",
			DisplayName: "SSM Put Parameter",
			Description: "Creates or updates a parameter.",
			Category:    categorySystems,
			InputFields: []Field{
				str("Name", "").req(),
				str("Value", "").req(),
				str("Type", "String, StringList or SecureString."),
				str("Description", ""),
				boolean("Overwrite", "Replace an existing value."),
				str("KeyId", "KMS key for SecureString values."),
				str("Tier", "Standard, Advanced or Intelligent-Tiering."),
				str("AllowedPattern", ""),
				str("DataType", ""),
				list("Tags", "", element(str("Key", "").req(), str("Value", "").req())),
			},
			OutputSchema: []Field{
				integer("Version", "New parameter version."),
				str("Tier", ""),
			},
			call: bind((*ssm.Client).PutParameter),
		},
		{
			Name:        "ssm-delete-parameter",
			Service:     aws.ServiceSSM,
			Action:      "DeleteParameter",
			DisplayName: "SSM Delete Parameter",
			Description: "Deletes a parameter.",
			Category:    categorySystems,
			InputFields: []Field{
				str("Name", "").req(),
			},
			call: bind((*ssm.Client).DeleteParameter),
		},
		{
			Name:        "ssm-send-command",
			Service:     aws.ServiceSSM,
			Action:      "SendCommand",
			DisplayName: "SSM Send Command",
			Description: "Runs a command document on managed instances.",
			Category:    categorySystems,
			InputFields: []Field{
				str("DocumentName", "e.g. AWS-RunShellScript.").req(),
				strList("InstanceIds", ""),
				list("Targets", "Tag or resource group based targeting.", element(
					str("Key", ""), strList("Values", ""),
				)),
				obj("Parameters", "Document parameters; each value is a list of strings."),
				str("Comment", ""),
				integer("TimeoutSeconds", "Seconds to wait for the command to start."),
				str("OutputS3BucketName", ""),
				str("MaxConcurrency", ""),
				str("MaxErrors", ""),
			},
			OutputSchema: []Field{
				obj("Command", "",
					str("CommandId", ""),
					str("DocumentName", ""),
					str("Status", ""),
					strList("InstanceIds", ""),
					str("RequestedDateTime", ""),
				),
			},
			call: bind((*ssm.Client).SendCommand),
		},
		{
			Name:        "ssm-get-command-invocation",
			Service:     aws.ServiceSSM,
			Action:      "GetCommandInvocation",
			DisplayName: "SSM Get Command Invocation",
			Description: "Returns the result of a command on one instance.",
			Category:    categorySystems,
			InputFields: []Field{
				str("CommandId", "").req(),
				str("InstanceId", "").req(),
				str("PluginName", ""),
			},
			OutputSchema: []Field{
				str("CommandId", ""),
				str("InstanceId", ""),
				str("Status", ""),
				str("StatusDetails", ""),
				integer("ResponseCode", ""),
				str("StandardOutputContent", ""),
				str("StandardErrorContent", ""),
				str("ExecutionStartDateTime", ""),
				str("ExecutionEndDateTime", ""),
			},
			call: bind((*ssm.Client).GetCommandInvocation),
		},
		{
			Name:        "ssm-describe-instance-information",
			Service:     aws.ServiceSSM,
			Action:      "DescribeInstanceInformation",
			DisplayName: "SSM Describe Instance Information",
			Description: "Returns one page of managed instance details.",
			Category:    categorySystems,
			InputFields: []Field{
				list("Filters", "", element(str("Key", "").req(), strList("Values", "").req())),
				integer("MaxResults", ""),
				str("NextToken", "Continuation token from a previous call."),
			},
			OutputSchema: []Field{
				list("InstanceInformationList", "", element(
					str("InstanceId", ""),
					str("PingStatus", ""),
					str("PlatformType", ""),
					str("PlatformName", ""),
					str("AgentVersion", ""),
					str("ComputerName", ""),
					str("IPAddress", ""),
				)),
				str("NextToken", "Present when more results exist."),
			},
			call: bind((*ssm.Client).DescribeInstanceInformation),
		},
	}
}
