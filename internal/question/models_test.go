package question

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateInputYoutube(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantSet   bool
		wantValue *string
	}{
		{name: "absent", body: `{}`},
		{name: "explicit null", body: `{"youtube":null}`, wantSet: true},
		{name: "value", body: `{"youtube":"https://youtu.be/z"}`, wantSet: true, wantValue: strPtr("https://youtu.be/z")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var input UpdateInput
			require.NoError(t, json.Unmarshal([]byte(tt.body), &input))
			assert.Equal(t, tt.wantSet, input.Youtube.Set)
			assert.Equal(t, tt.wantValue, input.Youtube.Value)
		})
	}

	var input UpdateInput
	assert.Error(t, json.Unmarshal([]byte(`{"youtube":42}`), &input))
}

func strPtr(s string) *string { return &s }
