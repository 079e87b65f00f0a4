// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrors_IsComparison(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
	}{
		{"ErrUnsupportedFormat", ErrUnsupportedFormat},
		{"ErrFormatMismatch", ErrFormatMismatch},
		{"ErrUnknownMode", ErrUnknownMode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if !errors.Is(fmt.Errorf("op: %w", tt.err), tt.err) {
				t.Errorf("errors.Is(wrapped, %s) = false, want true", tt.name)
			}

			for _, other := range tests {
				if other.name != tt.name && errors.Is(tt.err, other.err) {
					t.Errorf("errors.Is(%s, %s) = true, want false", tt.name, other.name)
				}
			}
		})
	}
}
