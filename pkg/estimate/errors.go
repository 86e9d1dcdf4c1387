package estimate

import "errors"

// ErrUnsupported is returned when a (GPU, runtime) combination has no
// efficiency factor to draw on — mlx requested against a GPU that never
// calibrated mlx factors, or requested on a non-Apple GPU outright (spec
// §3, §4.D, §7 "Unsupported").
var ErrUnsupported = errors.New("estimate: runtime not supported on this gpu")
