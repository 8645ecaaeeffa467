package vocab

import (
	"fmt"

	"gorgonia.org/tensor"
)

// IndexTensor copies a padded index matrix into a rows x cols int tensor
// for downstream numeric processing. All rows must share the width produced
// by WordsToPaddedIndices; an empty batch fails with ErrEmptyBatch.
func IndexTensor(padded [][]int) (*tensor.Dense, error) {
	if len(padded) == 0 || len(padded[0]) == 0 {
		return nil, ErrEmptyBatch
	}
	cols := len(padded[0])
	backing := make([]int, 0, len(padded)*cols)
	for i, row := range padded {
		if len(row) != cols {
			return nil, fmt.Errorf("row %d has length %d, want %d", i, len(row), cols)
		}
		backing = append(backing, row...)
	}
	return tensor.New(tensor.WithShape(len(padded), cols), tensor.WithBacking(backing)), nil
}

// OneHot expands a padded index matrix into a rows x cols x size float32
// tensor, the input layout consumed by sequence models. Indices outside
// [0, size) fail with *OutOfVocabularyError.
func OneHot(padded [][]int, size int) (*tensor.Dense, error) {
	if len(padded) == 0 || len(padded[0]) == 0 {
		return nil, ErrEmptyBatch
	}
	cols := len(padded[0])
	backing := make([]float32, len(padded)*cols*size)
	for i, row := range padded {
		if len(row) != cols {
			return nil, fmt.Errorf("row %d has length %d, want %d", i, len(row), cols)
		}
		for j, idx := range row {
			if idx < 0 {
				return nil, errNegativeIndex(idx)
			}
			if idx >= size {
				return nil, errIndexTooLarge(idx, size)
			}
			backing[(i*cols+j)*size+idx] = 1
		}
	}
	return tensor.New(tensor.WithShape(len(padded), cols, size), tensor.WithBacking(backing)), nil
}
