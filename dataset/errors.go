// SPDX-License-Identifier: MIT

package dataset

import "errors"

// ErrBadSize indicates a point count below zero or a dimension below one.
var ErrBadSize = errors.New("dataset: invalid size")

// ErrInvalidLabel indicates a label that is neither +1 nor -1.
var ErrInvalidLabel = errors.New("dataset: label must be +1 or -1")
