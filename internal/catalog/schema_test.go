package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescriptor_InputJSONSchema(t *testing.T) {
	d, err := Default().Lookup("sns-publish")
	require.NoError(t, err)

	s := d.InputJSONSchema()
	assert.Equal(t, "object", s.Type)
	assert.False(t, s.AdditionalProperties)
	assert.Contains(t, s.Required, "region")
	assert.Contains(t, s.Required, "Message")
	assert.Contains(t, s.Properties, "endpoint")
	assert.Contains(t, s.Properties, "sessionToken")
	assert.Equal(t, "Topic Arn", s.Properties["TopicArn"].Title)
}

func TestDescriptor_NestedSchema(t *testing.T) {
	d, err := Default().Lookup("ses-send-email")
	require.NoError(t, err)

	s := d.InputJSONSchema()
	dest := s.Properties["Destination"]
	assert.Equal(t, "object", dest.Type)
	require.Contains(t, dest.Properties, "ToAddresses")
	to := dest.Properties["ToAddresses"]
	assert.Equal(t, "array", to.Type)
	require.NotNil(t, to.Items)
	assert.Equal(t, "string", to.Items.Type)

	msg := s.Properties["Message"]
	assert.ElementsMatch(t, []string{"Subject", "Body"}, msg.Required)
}

func TestDescriptor_OutputJSONSchema(t *testing.T) {
	d, err := Default().Lookup("sns-list-topics")
	require.NoError(t, err)

	s := d.OutputJSONSchema()
	assert.True(t, s.AdditionalProperties)
	assert.Contains(t, s.Properties, "NextToken")
	assert.Equal(t, "array", s.Properties["Topics"].Type)
}

func TestValidateInput(t *testing.T) {
	d, err := Default().Lookup("sns-publish")
	require.NoError(t, err)

	tests := []struct {
		name      string
		config    map[string]any
		wantValid bool
		wantField string
	}{
		{
			name:      "valid with override",
			config:    map[string]any{"region": "us-east-1", "endpoint": "http://localhost:4566", "TopicArn": "arn:x", "Message": "hi"},
			wantValid: true,
		},
		{
			name:      "missing region",
			config:    map[string]any{"TopicArn": "arn:x", "Message": "hi"},
			wantField: "region",
		},
		{
			name:      "unknown key",
			config:    map[string]any{"region": "us-east-1", "Message": "hi", "Topic": "arn:x"},
			wantField: "Topic",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ValidateInput(d, tt.config)
			require.NoError(t, err)
			assert.Equal(t, tt.wantValid, result.Valid)
			if !tt.wantValid {
				assert.True(t, result.HasErrors(tt.wantField), result.GetErrorMessages())
			}
		})
	}
}
