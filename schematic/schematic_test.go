package schematic

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voxelio/nbt/errs"
	"github.com/voxelio/nbt/tag"
)

// validRoot is a 2x1x3 schematic: six cells, flat index order
// (y*Length + z)*Width + x.
func validRoot() tag.Compound {
	return tag.Compound{Name: "Schematic", Items: []tag.Tag{
		tag.Short{Name: "Width", Value: 2},
		tag.Short{Name: "Height", Value: 1},
		tag.Short{Name: "Length", Value: 3},
		tag.ByteArray{Name: "Blocks", Value: []byte{10, 11, 12, 13, 14, 15}},
		tag.ByteArray{Name: "Data", Value: []byte{0, 1, 2, 3, 4, 5}},
	}}
}

func TestFromTag(t *testing.T) {
	sch, err := FromTag(validRoot())
	require.NoError(t, err)
	require.Equal(t, int16(2), sch.Width)
	require.Equal(t, int16(1), sch.Height)
	require.Equal(t, int16(3), sch.Length)
	require.Len(t, sch.Blocks, 6)
	require.Len(t, sch.Data, 6)
}

func TestFromTag_NotASchematic(t *testing.T) {
	// Wrong root variant.
	_, err := FromTag(tag.Short{Name: "Schematic", Value: 1})
	require.ErrorIs(t, err, errs.ErrNotASchematic)

	// Wrong root name.
	root := validRoot()
	root.Name = "Blueprint"
	_, err = FromTag(root)
	require.ErrorIs(t, err, errs.ErrNotASchematic)
}

func TestFromTag_MissingField(t *testing.T) {
	// Dropping any required field must error, never default to zero --
	// a zero dimension would silently corrupt spatial placement.
	for _, field := range []string{"Width", "Height", "Length", "Blocks", "Data"} {
		root := validRoot()
		kept := root.Items[:0:0]
		for _, item := range root.Items {
			if item.TagName() != field {
				kept = append(kept, item)
			}
		}
		root.Items = kept

		_, err := FromTag(root)
		require.ErrorIs(t, err, errs.ErrMissingField, "without %s", field)
	}
}

func TestFromTag_WrongFieldType(t *testing.T) {
	root := validRoot()
	root.Items[0] = tag.Int{Name: "Width", Value: 2}
	_, err := FromTag(root)
	require.ErrorIs(t, err, errs.ErrWrongFieldType)

	root = validRoot()
	root.Items[3] = tag.IntArray{Name: "Blocks", Value: []int32{1}}
	_, err = FromTag(root)
	require.ErrorIs(t, err, errs.ErrWrongFieldType)
}

func TestFromTag_SizeMismatch(t *testing.T) {
	root := validRoot()
	root.Items[3] = tag.ByteArray{Name: "Blocks", Value: []byte{1, 2}}
	_, err := FromTag(root)
	require.ErrorIs(t, err, errs.ErrSizeMismatch)

	root = validRoot()
	root.Items[4] = tag.ByteArray{Name: "Data", Value: []byte{}}
	_, err = FromTag(root)
	require.ErrorIs(t, err, errs.ErrSizeMismatch)
}

func TestFromTag_NegativeDimension(t *testing.T) {
	root := validRoot()
	root.Items[0] = tag.Short{Name: "Width", Value: -2}
	_, err := FromTag(root)
	require.ErrorIs(t, err, errs.ErrInvalidLength)
}

func TestSchematic_Index(t *testing.T) {
	sch, err := FromTag(validRoot())
	require.NoError(t, err)

	// For Width=2, Height=1, Length=3, coordinate (1,0,2) maps to
	// (0*3+2)*2+1 = 5.
	i, err := sch.Index(1, 0, 2)
	require.NoError(t, err)
	require.Equal(t, 5, i)

	i, err = sch.Index(0, 0, 0)
	require.NoError(t, err)
	require.Equal(t, 0, i)

	for _, c := range [][3]int{{2, 0, 0}, {0, 1, 0}, {0, 0, 3}, {-1, 0, 0}} {
		_, err = sch.Index(c[0], c[1], c[2])
		require.ErrorIs(t, err, errs.ErrOutOfBounds, "coordinate %v", c)
	}
}

func TestSchematic_BlockAt(t *testing.T) {
	sch, err := FromTag(validRoot())
	require.NoError(t, err)

	id, data, err := sch.BlockAt(1, 0, 2)
	require.NoError(t, err)
	require.Equal(t, byte(15), id)
	require.Equal(t, byte(5), data)
}

func TestSchematic_Place(t *testing.T) {
	sch, err := FromTag(validRoot())
	require.NoError(t, err)

	type placed struct {
		x, y, z  int
		id, data byte
	}
	var got []placed
	err = sch.Place(Origin{X: 100, Y: 64, Z: -20}, func(x, y, z int, id, data byte) error {
		got = append(got, placed{x, y, z, id, data})
		return nil
	})
	require.NoError(t, err)
	require.Len(t, got, 6)

	// Flat index order: X fastest, then Z, then Y; translated by origin.
	require.Equal(t, placed{100, 64, -20, 10, 0}, got[0])
	require.Equal(t, placed{101, 64, -20, 11, 1}, got[1])
	require.Equal(t, placed{100, 64, -19, 12, 2}, got[2])
	require.Equal(t, placed{101, 64, -18, 15, 5}, got[5])
}

func TestSchematic_Place_AbortsOnCallbackError(t *testing.T) {
	sch, err := FromTag(validRoot())
	require.NoError(t, err)

	boom := errors.New("world refused the block")
	calls := 0
	err = sch.Place(Origin{}, func(x, y, z int, id, data byte) error {
		calls++
		if calls == 3 {
			return boom
		}
		return nil
	})
	require.ErrorIs(t, err, boom)
	require.Equal(t, 3, calls)
}

func TestSchematic_ZeroVolume(t *testing.T) {
	root := tag.Compound{Name: "Schematic", Items: []tag.Tag{
		tag.Short{Name: "Width", Value: 0},
		tag.Short{Name: "Height", Value: 5},
		tag.Short{Name: "Length", Value: 5},
		tag.ByteArray{Name: "Blocks", Value: []byte{}},
		tag.ByteArray{Name: "Data", Value: []byte{}},
	}}

	sch, err := FromTag(root)
	require.NoError(t, err)

	err = sch.Place(Origin{}, func(x, y, z int, id, data byte) error {
		t.Fatal("no cells to place")
		return nil
	})
	require.NoError(t, err)
}
