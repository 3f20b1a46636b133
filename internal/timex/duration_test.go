package timex

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{"duration string", `"3s"`, 3 * time.Second, false},
		{"compound string", `"1m30s"`, 90 * time.Second, false},
		{"integer nanoseconds", `5000000000`, 5 * time.Second, false},
		{"bad string", `"potato"`, 0, true},
		{"bad type", `{"x":1}`, 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tc.input), &d)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, d.Duration)
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	d := Duration{Duration: 3 * time.Second}
	data, err := json.Marshal(d)
	require.NoError(t, err)
	require.Equal(t, `"3s"`, string(data))
}
