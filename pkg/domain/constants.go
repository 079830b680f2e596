package domain

// Mode identifies the kind of build.
type Mode string

const (
	ModeWatch   Mode = "watch"
	ModeUnwatch Mode = "unwatch"
)

// Option keys of the watch configuration object.
// They are also the mapstructure tags used when decoding option maps.
const (
	KeyOnChange       = "onChange"
	KeyDepth          = "depth"
	KeyWatchArrays    = "watchArrays"
	KeyWatchProps     = "watchProps"
	KeyTraverseArrays = "traverseArrays"
	KeyToWatch        = "toWatch"
)

// Unbounded is the depth value that disables the traversal depth limit.
const Unbounded = -1
