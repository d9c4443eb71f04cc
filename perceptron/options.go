// SPDX-License-Identifier: MIT

package perceptron

// Option configures a Perceptron at construction.
type Option func(*options)

type options struct {
	// onUpdate runs after every recorded update with the new step.
	onUpdate func(Step)
	// onEpoch runs after every completed epoch with its update count.
	onEpoch func(epoch, updates int)
}

func defaultOptions() options {
	return options{
		onUpdate: func(Step) {},
		onEpoch:  func(int, int) {},
	}
}

// WithOnUpdate registers a hook called after each update. The Step it
// receives equals the one appended to Result.Steps but owns its Weights,
// so the hook may keep or modify it freely. Nil is ignored.
//
// Complexity: O(1) time, O(1) space.
func WithOnUpdate(fn func(Step)) Option {
	return func(o *options) {
		if fn != nil {
			o.onUpdate = fn
		}
	}
}

// WithOnEpoch registers a hook called after each completed epoch with the
// epoch number (1-based) and the number of updates it made. Nil is ignored.
//
// Complexity: O(1) time, O(1) space.
func WithOnEpoch(fn func(epoch, updates int)) Option {
	return func(o *options) {
		if fn != nil {
			o.onEpoch = fn
		}
	}
}
