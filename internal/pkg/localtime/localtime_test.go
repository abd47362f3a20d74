//go:build unit

package localtime_test

import (
	"encoding/json"
	"testing"
	"time"

	"pricing-api/internal/pkg/localtime"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	want := time.Date(2020, 6, 14, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{name: "zone-less is UTC", input: "2020-06-14T10:00:00", want: want},
		{name: "RFC3339 UTC", input: "2020-06-14T10:00:00Z", want: want},
		{name: "RFC3339 with offset", input: "2020-06-14T12:00:00+02:00", want: want},
		{name: "surrounding spaces", input: " 2020-06-14T10:00:00 ", want: want},
		{name: "date only", input: "2020-06-14", wantErr: true},
		{name: "garbage", input: "yesterday", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := localtime.Parse(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got))
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestDateTimeJSON(t *testing.T) {
	var payload struct {
		At  localtime.DateTime  `json:"at"`
		Opt *localtime.DateTime `json:"opt"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"at":"2020-06-15T16:00:00","opt":null}`), &payload))
	assert.Equal(t, "2020-06-15T16:00:00", localtime.Format(payload.At.Time()))
	assert.Nil(t, payload.Opt)

	out, err := json.Marshal(payload.At)
	require.NoError(t, err)
	assert.JSONEq(t, `"2020-06-15T16:00:00"`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"at":"15/06/2020"}`), &payload))
}
