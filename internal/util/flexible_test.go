package util

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexibleNumbers(t *testing.T) {
	type payload struct {
		ID    FlexUint   `json:"id"`
		Marks FlexFloat  `json:"marks"`
		Who   FlexString `json:"who"`
	}

	tests := []struct {
		name string
		body string
		want payload
	}{
		{name: "numbers", body: `{"id":7,"marks":8.5,"who":"a@b.com"}`, want: payload{7, 8.5, "a@b.com"}},
		{name: "numeric strings", body: `{"id":"7","marks":" 8.5 ","who":"a@b.com"}`, want: payload{7, 8.5, "a@b.com"}},
		{name: "null and empty", body: `{"id":null,"marks":"","who":null}`, want: payload{}},
		{name: "numeric student id", body: `{"who":1024}`, want: payload{Who: "1024"}},
		{name: "negative id clamps", body: `{"id":-3}`, want: payload{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got payload
			require.NoError(t, json.Unmarshal([]byte(tt.body), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFlexFloatLenientStrings(t *testing.T) {
	var f FlexFloat
	require.NoError(t, json.Unmarshal([]byte(`"ten"`), &f))
	assert.Zero(t, f)

	var u FlexUint
	require.NoError(t, json.Unmarshal([]byte(`"abc"`), &u))
	assert.Zero(t, u)

	// 类型完全不对的值仍然报错
	assert.Error(t, json.Unmarshal([]byte(`{"x":1}`), &f))
}
