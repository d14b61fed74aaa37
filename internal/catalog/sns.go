package catalog

import (
	"github.com/aws/aws-sdk-go-v2/service/sns"

	"cloudops-workers/internal/common/aws"
)

const categoryMessaging = "messaging"

func snsMessageAttributes() Field {
	return strMap("MessageAttributes", "Message attributes keyed by name; each value has DataType and StringValue or BinaryValue.")
}

func snsTags() Field {
	return list("Tags", "Tags to attach.", element(str("Key", "").req(), str("Value", "").req()))
}

func snsOperations() []Descriptor {
	return []Descriptor{
		{
			Name:        "sns-publish",
			Service:     aws.ServiceSNS,
			Action:      "Publish",
			DisplayName: "SNS Publish",
			Description: "Sends a message to a topic, a mobile endpoint, or a phone number.",
			Category:    categoryMessaging,
			InputFields: []Field{
				str("Message", "The message body.").req(),
				str("TopicArn", "Target topic. One of TopicArn, TargetArn or PhoneNumber is required."),
				str("TargetArn", "Target mobile endpoint."),
				str("PhoneNumber", "Target phone number in E.164 format."),
				str("Subject", "Subject line for email endpoints."),
				str("MessageStructure", "Set to json to send a different message per protocol."),
				snsMessageAttributes(),
				str("MessageDeduplicationId", "FIFO topics only."),
				str("MessageGroupId", "FIFO topics only."),
			},
			OutputSchema: []Field{
				str("MessageId", "Unique identifier assigned to the published message."),
				str("SequenceNumber", "FIFO topics only."),
			},
			call: bind((*sns.Client).Publish),
		},
		{
			Name:        "sns-publish-batch",
			Service:     aws.ServiceSNS,
			Action:      "PublishBatch",
			DisplayName: "SNS Publish Batch",
			Description: "Publishes up to ten messages to a topic in one request.",
			Category:    categoryMessaging,
			InputFields: []Field{
				str("TopicArn", "Target topic.").req(),
				list("PublishBatchRequestEntries", "Messages to publish.", element(
					str("Id", "Batch-unique entry id.").req(),
					str("Message", "The message body.").req(),
					str("Subject", ""),
					str("MessageStructure", ""),
					snsMessageAttributes(),
					str("MessageDeduplicationId", ""),
					str("MessageGroupId", ""),
				)).req(),
			},
			OutputSchema: []Field{
				list("Successful", "Entries that were published.", element(
					str("Id", ""), str("MessageId", ""), str("SequenceNumber", ""),
				)),
				list("Failed", "Entries that failed.", element(
					str("Id", ""), str("Code", ""), str("Message", ""), boolean("SenderFault", ""),
				)),
			},
			call: bind((*sns.Client).PublishBatch),
		},
		{
			Name:        "sns-create-topic",
			Service:     aws.ServiceSNS,
			Action:      "CreateTopic",
			DisplayName: "SNS Create Topic",
			Description: "Creates a topic, or returns the existing topic with the same name.",
			Category:    categoryMessaging,
			InputFields: []Field{
				str("Name", "Topic name. FIFO topic names end in .fifo.").req(),
				strMap("Attributes", "Topic attributes such as DisplayName or FifoTopic."),
				snsTags(),
				str("DataProtectionPolicy", "JSON data protection policy."),
			},
			OutputSchema: []Field{
				str("TopicArn", "ARN of the topic."),
			},
			call: bind((*sns.Client).CreateTopic),
		},
		{
			Name:        "sns-delete-topic",
			Service:     aws.ServiceSNS,
			Action:      "DeleteTopic",
			DisplayName: "SNS Delete Topic",
			Description: "Deletes a topic and all its subscriptions.",
			Category:    categoryMessaging,
			InputFields: []Field{
				str("TopicArn", "Topic to delete.").req(),
			},
			call: bind((*sns.Client).DeleteTopic),
		},
		{
			Name:        "sns-list-topics",
			Service:     aws.ServiceSNS,
			Action:      "ListTopics",
			DisplayName: "SNS List Topics",
			Description: "Returns one page of topics. Pass NextToken back in to get the next page.",
			Category:    categoryMessaging,
			InputFields: []Field{
				str("NextToken", "Continuation token from a previous call."),
			},
			OutputSchema: []Field{
				list("Topics", "", element(str("TopicArn", ""))),
				str("NextToken", "Present when more results exist."),
			},
			call: bind((*sns.Client).ListTopics),
		},
		{
			Name:        "sns-subscribe",
			Service:     aws.ServiceSNS,
			Action:      "Subscribe",
			DisplayName: "SNS Subscribe",
			Description: "Subscribes an endpoint to a topic.",
			Category:    categoryMessaging,
			InputFields: []Field{
				str("TopicArn", "Topic to subscribe to.").req(),
				str("Protocol", "http, https, email, email-json, sms, sqs, application, lambda or firehose.").req(),
				str("Endpoint", "Protocol-specific receiving endpoint. Distinct from the lowercase endpoint override."),
				strMap("Attributes", "Subscription attributes such as FilterPolicy or RawMessageDelivery."),
				boolean("ReturnSubscriptionArn", "Return the ARN even when the subscription is pending confirmation."),
			},
			OutputSchema: []Field{
				str("SubscriptionArn", ""),
			},
			call: bind((*sns.Client).Subscribe),
		},
		{
			Name:        "sns-unsubscribe",
			Service:     aws.ServiceSNS,
			Action:      "Unsubscribe",
			DisplayName: "SNS Unsubscribe",
			Description: "Deletes a subscription.",
			Category:    categoryMessaging,
			InputFields: []Field{
				str("SubscriptionArn", "Subscription to delete.").req(),
			},
			call: bind((*sns.Client).Unsubscribe),
		},
		{
			Name:        "sns-list-subscriptions-by-topic",
			Service:     aws.ServiceSNS,
			Action:      "ListSubscriptionsByTopic",
			DisplayName: "SNS List Subscriptions By Topic",
			Description: "Returns one page of the subscriptions of a topic.",
			Category:    categoryMessaging,
			InputFields: []Field{
				str("TopicArn", "").req(),
				str("NextToken", "Continuation token from a previous call."),
			},
			OutputSchema: []Field{
				list("Subscriptions", "", element(
					str("SubscriptionArn", ""), str("TopicArn", ""), str("Protocol", ""),
					str("Endpoint", ""), str("Owner", ""),
				)),
				str("NextToken", "Present when more results exist."),
			},
			call: bind((*sns.Client).ListSubscriptionsByTopic),
		},
		{
			Name:        "sns-get-topic-attributes",
			Service:     aws.ServiceSNS,
			Action:      "GetTopicAttributes",
			DisplayName: "SNS Get Topic Attributes",
			Description: "Returns all attributes of a topic.",
			Category:    categoryMessaging,
			InputFields: []Field{
				str("TopicArn", "").req(),
			},
			OutputSchema: []Field{
				strMap("Attributes", "Attribute values keyed by name."),
			},
			call: bind((*sns.Client).GetTopicAttributes),
		},
		{
			Name:        "sns-set-topic-attributes",
			Service:     aws.ServiceSNS,
			Action:      "SetTopicAttributes",
			DisplayName: "SNS Set Topic Attributes",
			Description: "Sets one attribute of a topic.",
			Category:    categoryMessaging,
			InputFields: []Field{
				str("TopicArn", "").req(),
				str("AttributeName", "e.g. DisplayName, Policy, DeliveryPolicy.").req(),
				str("AttributeValue", "New value. Omit to clear."),
			},
			call: bind((*sns.Client).SetTopicAttributes),
		},
		{
			Name:        "sns-create-platform-endpoint",
			Service:     aws.ServiceSNS,
			Action:      "CreatePlatformEndpoint",
			DisplayName: "SNS Create Platform Endpoint",
			Description: "Registers a device token with a platform application.",
			Category:    categoryMessaging,
			InputFields: []Field{
				str("PlatformApplicationArn", "").req(),
				str("Token", "Device token issued by the notification service.").req(),
				str("CustomUserData", "Arbitrary user data associated with the endpoint."),
				strMap("Attributes", ""),
			},
			OutputSchema: []Field{
				str("EndpointArn", ""),
			},
			call: bind((*sns.Client).CreatePlatformEndpoint),
		},
		{
			Name:        "sns-delete-endpoint",
			Service:     aws.ServiceSNS,
			Action:      "DeleteEndpoint",
			DisplayName: "SNS Delete Endpoint",
			Description: "Deletes a platform endpoint.",
			Category:    categoryMessaging,
			InputFields: []Field{
				str("EndpointArn", "").req(),
			},
			call: bind((*sns.Client).DeleteEndpoint),
		},
		{
			Name:        "sns-get-endpoint-attributes",
			Service:     aws.ServiceSNS,
			Action:      "GetEndpointAttributes",
			DisplayName: "SNS Get Endpoint Attributes",
			Description: "Returns the attributes of a platform endpoint.",
			Category:    categoryMessaging,
			InputFields: []Field{
				str("EndpointArn", "").req(),
			},
			OutputSchema: []Field{
				strMap("Attributes", "CustomUserData, Enabled and Token."),
			},
			call: bind((*sns.Client).GetEndpointAttributes),
		},
		{
			Name:        "sns-set-endpoint-attributes",
			Service:     aws.ServiceSNS,
			Action:      "SetEndpointAttributes",
			DisplayName: "SNS Set Endpoint Attributes",
			Description: "Updates the attributes of a platform endpoint.",
			Category:    categoryMessaging,
			InputFields: []Field{
				str("EndpointArn", "").req(),
				strMap("Attributes", "CustomUserData, Enabled and Token.").req(),
			},
			call: bind((*sns.Client).SetEndpointAttributes),
		},
		{
			Name:        "sns-list-endpoints-by-platform-application",
			Service:     aws.ServiceSNS,
			Action:      "ListEndpointsByPlatformApplication",
			DisplayName: "SNS List Endpoints By Platform Application",
			Description: "Returns one page of endpoints registered with a platform application.",
			Category:    categoryMessaging,
			InputFields: []Field{
				str("PlatformApplicationArn", "").req(),
				str("NextToken", "Continuation token from a previous call."),
			},
			OutputSchema: []Field{
				list("Endpoints", "", element(str("EndpointArn", ""), strMap("Attributes", ""))),
				str("NextToken", "Present when more results exist."),
			},
			call: bind((*sns.Client).ListEndpointsByPlatformApplication),
		},
	}
}
