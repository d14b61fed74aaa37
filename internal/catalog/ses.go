package catalog

import (
	"github.com/aws/aws-sdk-go-v2/service/ses"

	"cloudops-workers/internal/common/aws"
)

func sesDestination() Field {
	return obj("Destination", "Recipients of the message.",
		strList("ToAddresses", ""),
		strList("CcAddresses", ""),
		strList("BccAddresses", ""),
	)
}

func sesContent(key string) Field {
	return obj(key, "", str("Data", "").req(), str("Charset", ""))
}

func sesTags() Field {
	return list("Tags", "Message tags for event publishing.", element(str("Name", "").req(), str("Value", "").req()))
}

func sesMessageID() []Field {
	return []Field{str("MessageId", "Unique identifier of the sent message.")}
}

func sesOperations() []Descriptor {
	return []Descriptor{
		{
			Name:        "ses-send-email",
			Service:     aws.ServiceSES,
			Action:      "SendEmail",
			DisplayName: "SES Send Email",
			Description: "Composes and sends a formatted email.",
			Category:    categoryMessaging,
			InputFields: []Field{
				str("Source", "Verified sender address.").req(),
				sesDestination().req(),
				obj("Message", "Subject and body.",
					sesContent("Subject").req(),
					obj("Body", "", sesContent("Text"), sesContent("Html")).req(),
				).req(),
				strList("ReplyToAddresses", ""),
				str("ReturnPath", "Address that receives bounces."),
				str("ConfigurationSetName", ""),
				sesTags(),
			},
			OutputSchema: sesMessageID(),
			call:         bind((*ses.Client).SendEmail),
		},
		{
			Name:        "ses-send-raw-email",
			Service:     aws.ServiceSES,
			Action:      "SendRawEmail",
			DisplayName: "SES Send Raw Email",
			Description: "Sends a raw MIME message.",
			Category:    categoryMessaging,
			InputFields: []Field{
				obj("RawMessage", "", str("Data", "Base64 encoded MIME message.").req()).req(),
				str("Source", ""),
				strList("Destinations", ""),
				str("ConfigurationSetName", ""),
				sesTags(),
			},
			OutputSchema: sesMessageID(),
			call:         bind((*ses.Client).SendRawEmail),
		},
		{
			Name:        "ses-send-templated-email",
			Service:     aws.ServiceSES,
			Action:      "SendTemplatedEmail",
			DisplayName: "SES Send Templated Email",
			Description: "Sends an email rendered from a stored template.",
			Category:    categoryMessaging,
			InputFields: []Field{
				str("Source", "Verified sender address.").req(),
				sesDestination().req(),
				str("Template", "Template name.").req(),
				str("TemplateData", "JSON object of replacement values.").req(),
				strList("ReplyToAddresses", ""),
				str("ConfigurationSetName", ""),
				sesTags(),
			},
			OutputSchema: sesMessageID(),
			call:         bind((*ses.Client).SendTemplatedEmail),
		},
		{
			Name:        "ses-verify-email-identity",
			Service:     aws.ServiceSES,
			Action:      "VerifyEmailIdentity",
			DisplayName: "SES Verify Email Identity",
			Description: "Starts verification of an email address.",
			Category:    categoryMessaging,
			InputFields: []Field{
				str("EmailAddress", "").req(),
			},
			call: bind((*ses.Client).VerifyEmailIdentity),
		},
		{
			Name:        "ses-list-identities",
			Service:     aws.ServiceSES,
			Action:      "ListIdentities",
			DisplayName: "SES List Identities",
			Description: "Returns one page of verified identities.",
			Category:    categoryMessaging,
			InputFields: []Field{
				str("IdentityType", "EmailAddress or Domain."),
				integer("MaxItems", "Page size, at most 1000."),
				str("NextToken", "Continuation token from a previous call."),
			},
			OutputSchema: []Field{
				strList("Identities", ""),
				str("NextToken", "Present when more results exist."),
			},
			call: bind((*ses.Client).ListIdentities),
		},
		{
			Name:        "ses-get-send-quota",
			Service:     aws.ServiceSES,
			Action:      "GetSendQuota",
			DisplayName: "SES Get Send Quota",
			Description: "Returns the account's sending limits.",
			Category:    categoryMessaging,
			OutputSchema: []Field{
				num("Max24HourSend", ""),
				num("MaxSendRate", "Messages per second."),
				num("SentLast24Hours", ""),
			},
			call: bind((*ses.Client).GetSendQuota),
		},
	}
}
