package encoding

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voxelio/nbt/format"
	"github.com/voxelio/nbt/tag"
)

// fullTree exercises all 13 variants, including empty lists, compounds,
// arrays and zero-length strings.
func fullTree() tag.Tag {
	return tag.Compound{Name: "root", Items: []tag.Tag{
		tag.Byte{Name: "byte", Value: -128},
		tag.Short{Name: "short", Value: -32768},
		tag.Int{Name: "int", Value: 1 << 30},
		tag.Long{Name: "long", Value: -1},
		tag.Float{Name: "float", Value: 3.5},
		tag.Double{Name: "double", Value: -0.125},
		tag.ByteArray{Name: "bytes", Value: []byte{0, 1, 255}},
		tag.ByteArray{Name: "empty bytes", Value: []byte{}},
		tag.String{Name: "string", Value: "hello"},
		tag.String{Name: "empty string", Value: ""},
		tag.String{Name: "raw string", Value: string([]byte{0xC3, 0x28})},
		tag.List{Name: "list", Elem: format.TagShort, Items: []tag.Tag{
			tag.Short{Value: 1},
			tag.Short{Value: 2},
		}},
		tag.List{Name: "empty list", Elem: format.TagEnd, Items: []tag.Tag{}},
		tag.List{Name: "list of compounds", Elem: format.TagCompound, Items: []tag.Tag{
			tag.Compound{Items: []tag.Tag{tag.Int{Name: "x", Value: 9}}},
			tag.Compound{Items: []tag.Tag{}},
		}},
		tag.Compound{Name: "nested", Items: []tag.Tag{
			tag.Compound{Name: "deeper", Items: []tag.Tag{
				tag.Long{Name: "leaf", Value: 42},
			}},
		}},
		tag.IntArray{Name: "ints", Value: []int32{-1, 0, 1}},
		tag.LongArray{Name: "longs", Value: []int64{-1 << 62, 1 << 62}},
	}}
}

func TestRoundTrip_FullTree(t *testing.T) {
	want := fullTree()

	var buf bytes.Buffer
	require.NoError(t, NewEncoder(&buf).Encode(want))

	got, err := NewDecoder(bytes.NewReader(buf.Bytes())).Decode()
	require.NoError(t, err)
	require.Equal(t, normalize(want), got)
}

func TestRoundTrip_BytesStable(t *testing.T) {
	// Re-encoding a decoded stream must reproduce it byte for byte.
	var buf bytes.Buffer
	require.NoError(t, NewEncoder(&buf).Encode(fullTree()))
	wire := buf.Bytes()

	decoded, err := NewDecoder(bytes.NewReader(wire)).Decode()
	require.NoError(t, err)

	var again bytes.Buffer
	require.NoError(t, NewEncoder(&again).Encode(decoded))
	require.Equal(t, wire, again.Bytes())
}

func TestRoundTrip_SingleVariants(t *testing.T) {
	cases := []tag.Tag{
		tag.Byte{Name: "b", Value: 0},
		tag.Short{Name: "", Value: 300},
		tag.Int{Name: "i", Value: -7},
		tag.Long{Name: "l", Value: 1},
		tag.Float{Name: "f", Value: 0},
		tag.Double{Name: "d", Value: 1e300},
		tag.ByteArray{Name: "ba", Value: []byte{9}},
		tag.String{Name: "s", Value: "x"},
		tag.List{Name: "li", Elem: format.TagByte, Items: []tag.Tag{tag.Byte{Value: 1}}},
		tag.Compound{Name: "c", Items: []tag.Tag{tag.Byte{Name: "k", Value: 2}}},
		tag.IntArray{Name: "ia", Value: []int32{5}},
		tag.LongArray{Name: "la", Value: []int64{6}},
	}

	for _, want := range cases {
		t.Run(want.Type().String(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, NewEncoder(&buf).Encode(want))
			got, err := NewDecoder(bytes.NewReader(buf.Bytes())).Decode()
			require.NoError(t, err)
			require.Equal(t, normalize(want), got)
		})
	}
}

// normalize maps hand-built trees onto the decoder's slice conventions:
// the decoder always produces non-nil (possibly empty) slices for arrays
// and lists, and nil Items for an empty compound.
func normalize(t tag.Tag) tag.Tag {
	switch v := t.(type) {
	case tag.ByteArray:
		if v.Value == nil {
			v.Value = []byte{}
		}
		return v
	case tag.IntArray:
		if v.Value == nil {
			v.Value = []int32{}
		}
		return v
	case tag.LongArray:
		if v.Value == nil {
			v.Value = []int64{}
		}
		return v
	case tag.List:
		items := make([]tag.Tag, 0, len(v.Items))
		for _, c := range v.Items {
			items = append(items, normalize(c))
		}
		v.Items = items
		return v
	case tag.Compound:
		if len(v.Items) == 0 {
			v.Items = nil
			return v
		}
		items := make([]tag.Tag, 0, len(v.Items))
		for _, c := range v.Items {
			items = append(items, normalize(c))
		}
		v.Items = items
		return v
	default:
		return t
	}
}
