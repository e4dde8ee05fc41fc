package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInts_CoercesDecoderWidths(t *testing.T) {
	node := map[string]any{
		"statusCodes": []any{200, int64(201), uint64(204), "oops", nil},
	}
	assert.Equal(t, []int{200, 201, 204}, Ints(node, "statusCodes"),
		"non-integer entries are skipped")
}

func TestInts_AbsentKey(t *testing.T) {
	assert.Nil(t, Ints(map[string]any{}, "statusCodes"))
}

func TestInts_FromDecodedDocument(t *testing.T) {
	tree, err := decodeBytes([]byte("codes: [200, 204]\n"))
	require.NoError(t, err)
	assert.Equal(t, []int{200, 204}, Ints(tree, "codes"))
}
