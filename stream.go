package binresource

import (
	"errors"
	"fmt"
	"io"
)

var errWhence = errors.New("binresource: invalid whence")

// seekPayload seeks s relative to a payload starting at base and returns
// the resulting payload offset. Targets before base are rejected without
// moving the cursor.
func seekPayload(s io.Seeker, base, offset int64, whence int) (int64, error) {
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = base + offset
	case io.SeekCurrent:
		cur, err := s.Seek(0, io.SeekCurrent)
		if err != nil {
			return 0, err
		}
		abs = cur + offset
	case io.SeekEnd:
		end, err := streamEnd(s)
		if err != nil {
			return 0, err
		}
		abs = end + offset
	default:
		return 0, errWhence
	}
	if abs < base {
		return 0, fmt.Errorf("%w: payload offset %d", ErrSeekBeforePayload, abs-base)
	}
	n, err := s.Seek(abs, io.SeekStart)
	if err != nil {
		return 0, err
	}
	return n - base, nil
}

// streamEnd returns the absolute end offset of s, leaving the cursor where it was.
func streamEnd(s io.Seeker) (int64, error) {
	cur, err := s.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, err
	}
	end, err := s.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, err
	}
	if _, err := s.Seek(cur, io.SeekStart); err != nil {
		return 0, err
	}
	return end, nil
}

func closeStream(s any) error {
	if c, ok := s.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
