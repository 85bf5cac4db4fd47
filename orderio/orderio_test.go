package orderio

import (
	"bytes"
	"testing"

	"github.com/flowdissect/nesdis/order"
	"github.com/stretchr/testify/require"
)

func TestTextRoundTrip(t *testing.T) {
	perm := order.Permutation{3, 1, 0, 2}
	var buf bytes.Buffer
	require.NoError(t, Save(&buf, perm))

	got, err := Load(&buf)
	require.NoError(t, err)
	require.Equal(t, perm, got)
}

func TestBinaryRoundTrip(t *testing.T) {
	perm := order.Permutation{4, 0, 3, 1, 2}
	var buf bytes.Buffer
	require.NoError(t, SaveBinary(&buf, perm))

	got, err := LoadBinary(&buf)
	require.NoError(t, err)
	require.Equal(t, perm, got)
}

func TestLoadRejectsMalformedText(t *testing.T) {
	r := bytes.NewBufferString("0\nabc\n2\n")
	_, err := Load(r)
	require.Error(t, err)
}

func TestLoadRejectsDuplicatePositions(t *testing.T) {
	r := bytes.NewBufferString("0\n0\n1\n")
	_, err := Load(r)
	require.Error(t, err)
}

func TestLoadBinaryRejectsNegativeCount(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, SaveBinary(&buf, order.Permutation{0}))
	raw := buf.Bytes()
	raw[0] = 0xFF // makes the little-endian int32 count negative
	raw[1] = 0xFF
	raw[2] = 0xFF
	raw[3] = 0xFF
	_, err := LoadBinary(bytes.NewReader(raw))
	require.Error(t, err)
}
