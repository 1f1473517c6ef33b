package gridspace

import "errors"

// Sentinel errors for gridspace construction and access.
var (
	// ErrZeroDimension indicates a Size component is zero or negative.
	ErrZeroDimension = errors.New("gridspace: size must have all positive components")

	// ErrBufferSizeMismatch indicates the supplied buffer's length does not
	// equal the linear extent implied by Size.
	ErrBufferSizeMismatch = errors.New("gridspace: buffer length does not match size")

	// ErrIndexOutOfBounds indicates an Index fell outside the view's Size,
	// including a rank mismatch between the two.
	ErrIndexOutOfBounds = errors.New("gridspace: index out of bounds")
)
