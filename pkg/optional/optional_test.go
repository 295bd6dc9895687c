package optional

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

type patchBody struct {
	Name  Value[string] `json:"name"`
	Count Value[int64]  `json:"count"`
}

func TestValue_Unmarshal_Absent(t *testing.T) {
	var body patchBody
	require.NoError(t, json.Unmarshal([]byte(`{}`), &body))

	require.False(t, body.Name.IsSet())
	require.False(t, body.Name.IsNull())
	_, ok := body.Name.Get()
	require.False(t, ok)
}

func TestValue_Unmarshal_Null(t *testing.T) {
	var body patchBody
	require.NoError(t, json.Unmarshal([]byte(`{"name":null}`), &body))

	require.True(t, body.Name.IsSet())
	require.True(t, body.Name.IsNull())
	_, ok := body.Name.Get()
	require.False(t, ok)

	// count в теле не было — его состояние не затронуто.
	require.False(t, body.Count.IsSet())
}

func TestValue_Unmarshal_Present(t *testing.T) {
	var body patchBody
	require.NoError(t, json.Unmarshal([]byte(`{"name":"жим лёжа","count":42}`), &body))

	require.True(t, body.Name.IsSet())
	require.False(t, body.Name.IsNull())

	name, ok := body.Name.Get()
	require.True(t, ok)
	require.Equal(t, "жим лёжа", name)

	count, ok := body.Count.Get()
	require.True(t, ok)
	require.Equal(t, int64(42), count)
}

func TestValue_Unmarshal_TypeMismatch(t *testing.T) {
	var body patchBody
	require.Error(t, json.Unmarshal([]byte(`{"count":"not-a-number"}`), &body))
}

func TestValue_Constructors(t *testing.T) {
	v := Of(int64(7))
	require.True(t, v.IsSet())
	require.False(t, v.IsNull())
	got, ok := v.Get()
	require.True(t, ok)
	require.Equal(t, int64(7), got)

	n := Null[int64]()
	require.True(t, n.IsSet())
	require.True(t, n.IsNull())
	_, ok = n.Get()
	require.False(t, ok)
}

func TestValue_Marshal(t *testing.T) {
	body := patchBody{Name: Of("планка"), Count: Null[int64]()}
	data, err := json.Marshal(body)
	require.NoError(t, err)
	require.JSONEq(t, `{"name":"планка","count":null}`, string(data))
}
