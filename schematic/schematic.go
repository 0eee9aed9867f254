// Package schematic consumes decoded tag trees in the MCEdit schematic
// shape: a root compound named "Schematic" carrying Width/Height/Length
// dimensions and flattened Blocks/Data arrays.
//
// The package is a pure consumer of the tag model. World mutation stays
// external: Place walks the block volume and hands every (coordinate,
// blockID, blockData) triple to a caller-supplied callback, translated by
// a caller-supplied origin.
package schematic

import (
	"fmt"

	"github.com/voxelio/nbt/errs"
	"github.com/voxelio/nbt/tag"
)

// RootName is the required name of a schematic's root compound.
const RootName = "Schematic"

// Schematic is the extracted view of a schematic tag tree. Dimensions are
// the 16-bit values from the wire; Blocks and Data are the flattened
// per-cell block identifiers and metadata, both of length
// Width*Height*Length.
type Schematic struct {
	Width  int16
	Height int16
	Length int16
	Blocks []byte
	Data   []byte
}

// Origin is the world position a schematic is placed at; cell (0,0,0)
// lands on the origin and all other cells are translated relative to it.
type Origin struct {
	X int
	Y int
	Z int
}

// PlaceFunc receives one block during a placement walk. x, y, z are world
// coordinates (schematic coordinate plus origin). Returning a non-nil
// error aborts the walk.
type PlaceFunc func(x, y, z int, blockID, blockData byte) error

// FromTag extracts the schematic view from a decoded root tag.
//
// The root must be a Compound named "Schematic"; Width, Height and Length
// must be present as Short children and Blocks and Data as ByteArray
// children. Extraction is fail-fast: a missing field is an error, never a
// zero default, since a defaulted dimension would silently corrupt every
// spatial index computed from it.
//
// Error conditions:
//   - errs.ErrNotASchematic: root is not a Compound or not named "Schematic"
//   - errs.ErrMissingField: a required child is absent
//   - errs.ErrWrongFieldType: a required child has the wrong variant
//   - errs.ErrInvalidLength: a dimension is negative
//   - errs.ErrSizeMismatch: Blocks or Data length != Width*Height*Length
func FromTag(root tag.Tag) (*Schematic, error) {
	comp, ok := root.(tag.Compound)
	if !ok {
		return nil, fmt.Errorf("%w: root is %s", errs.ErrNotASchematic, root.Type())
	}
	if comp.Name != RootName {
		return nil, fmt.Errorf("%w: root compound is named %q", errs.ErrNotASchematic, comp.Name)
	}

	width, err := shortField(comp, "Width")
	if err != nil {
		return nil, err
	}
	height, err := shortField(comp, "Height")
	if err != nil {
		return nil, err
	}
	length, err := shortField(comp, "Length")
	if err != nil {
		return nil, err
	}
	if width < 0 || height < 0 || length < 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%dx%d", errs.ErrInvalidLength, width, height, length)
	}

	blocks, err := byteArrayField(comp, "Blocks")
	if err != nil {
		return nil, err
	}
	data, err := byteArrayField(comp, "Data")
	if err != nil {
		return nil, err
	}

	volume := int(width) * int(height) * int(length)
	if len(blocks) != volume {
		return nil, fmt.Errorf("%w: Blocks has %d entries, volume is %d", errs.ErrSizeMismatch, len(blocks), volume)
	}
	if len(data) != volume {
		return nil, fmt.Errorf("%w: Data has %d entries, volume is %d", errs.ErrSizeMismatch, len(data), volume)
	}

	return &Schematic{
		Width:  width,
		Height: height,
		Length: length,
		Blocks: blocks,
		Data:   data,
	}, nil
}

// shortField locates a direct child by name and requires the Short variant.
// Lookup is a linear scan; the import path is one-shot, so no index is kept.
func shortField(comp tag.Compound, name string) (int16, error) {
	child := comp.Child(name)
	if child == nil {
		return 0, fmt.Errorf("%w: %s", errs.ErrMissingField, name)
	}
	s, ok := child.(tag.Short)
	if !ok {
		return 0, fmt.Errorf("%w: %s is %s, want Short", errs.ErrWrongFieldType, name, child.Type())
	}

	return s.Value, nil
}

func byteArrayField(comp tag.Compound, name string) ([]byte, error) {
	child := comp.Child(name)
	if child == nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrMissingField, name)
	}
	a, ok := child.(tag.ByteArray)
	if !ok {
		return nil, fmt.Errorf("%w: %s is %s, want ByteArray", errs.ErrWrongFieldType, name, child.Type())
	}

	return a.Value, nil
}

// Index maps a schematic coordinate to its position in the flattened
// arrays: (y*Length + z)*Width + x.
func (s *Schematic) Index(x, y, z int) (int, error) {
	if x < 0 || x >= int(s.Width) || y < 0 || y >= int(s.Height) || z < 0 || z >= int(s.Length) {
		return 0, fmt.Errorf("%w: (%d,%d,%d) in %dx%dx%d",
			errs.ErrOutOfBounds, x, y, z, s.Width, s.Height, s.Length)
	}

	return (y*int(s.Length)+z)*int(s.Width) + x, nil
}

// BlockAt returns the block identifier and metadata at a schematic
// coordinate.
func (s *Schematic) BlockAt(x, y, z int) (blockID, blockData byte, err error) {
	i, err := s.Index(x, y, z)
	if err != nil {
		return 0, 0, err
	}

	return s.Blocks[i], s.Data[i], nil
}

// Place walks every cell of the schematic in flat index order (Y-major,
// then Z, then X) and passes it to fn translated by the origin. The walk
// aborts on the first callback error, which is returned unwrapped so
// callers can match their own error values.
func (s *Schematic) Place(origin Origin, fn PlaceFunc) error {
	i := 0
	for y := 0; y < int(s.Height); y++ {
		for z := 0; z < int(s.Length); z++ {
			for x := 0; x < int(s.Width); x++ {
				if err := fn(origin.X+x, origin.Y+y, origin.Z+z, s.Blocks[i], s.Data[i]); err != nil {
					return err
				}
				i++
			}
		}
	}

	return nil
}
