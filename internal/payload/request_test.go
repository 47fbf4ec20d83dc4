package payload

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberUnmarshal(t *testing.T) {
	cases := map[string]struct {
		in   string
		want Number
	}{
		"integer":       {`42`, 42},
		"float":         {`42.5`, 42.5},
		"quoted number": {`"42"`, 42},
		"quoted float":  {`"42.5"`, 42.5},
		"empty string":  {`""`, 0},
		"null":          {`null`, 0},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			var n Number
			require.NoError(t, json.Unmarshal([]byte(tc.in), &n))
			assert.Equal(t, tc.want, n)
		})
	}
}

func TestNumberUnmarshalRejectsText(t *testing.T) {
	var n Number
	assert.Error(t, json.Unmarshal([]byte(`"lots"`), &n))
}

func TestPostJobRequestDecoding(t *testing.T) {
	body := `{
		"title": "Backend Engineer",
		"salary": "95000",
		"position": 2
	}`

	var req PostJobRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	assert.Equal(t, Number(95000), req.Salary)
	assert.Equal(t, Number(2), req.Position)
}
