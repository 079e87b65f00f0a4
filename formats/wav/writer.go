// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"
)

// Write emits the encoded header followed by the payload, in that order.
func Write(w io.Writer, h Header, payload []byte) error {
	if _, err := w.Write(h.Encode()); err != nil {
		return fmt.Errorf("%w", err)
	}

	if len(payload) == 0 {
		return nil
	}

	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// WriteTo writes f as a complete WAV file.
func (f *File) WriteTo(w io.Writer) (int64, error) {
	if err := Write(w, f.Header, f.Payload); err != nil {
		return 0, err
	}

	return int64(HeaderSize + len(f.Payload)), nil
}
