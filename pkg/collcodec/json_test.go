package collcodec_test

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/trailnet/trail-chain/pkg/collcodec"
)

type sample struct {
	Name   string      `json:"name"`
	Amount sdkmath.Int `json:"amount"`
}

func TestJSONValueRoundTrip(t *testing.T) {
	requireT := require.New(t)

	codec := collcodec.JSONValue[sample]("sample")
	requireT.Equal("json(sample)", codec.ValueType())

	in := sample{Name: "trail", Amount: sdkmath.NewInt(1000)}
	b, err := codec.Encode(in)
	requireT.NoError(err)

	out, err := codec.Decode(b)
	requireT.NoError(err)
	requireT.Equal(in, out)

	jb, err := codec.EncodeJSON(in)
	requireT.NoError(err)
	requireT.JSONEq(string(b), string(jb))
}

func TestJSONValueDecodeInvalid(t *testing.T) {
	requireT := require.New(t)

	codec := collcodec.JSONValue[sample]("sample")
	_, err := codec.Decode([]byte("{not json"))
	requireT.Error(err)
	requireT.Contains(err.Error(), "failed to decode sample")
}
