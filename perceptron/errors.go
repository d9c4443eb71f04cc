// SPDX-License-Identifier: MIT

package perceptron

import "errors"

// ErrNegativeEpochs indicates maxEpochs < 0. Zero epochs is valid.
var ErrNegativeEpochs = errors.New("perceptron: max epochs must be >= 0")
