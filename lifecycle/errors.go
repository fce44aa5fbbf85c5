package lifecycle

import "fmt"

var (
	// ErrEmptyRequest is returned when a dispatch carries neither visible
	// text nor a mention. No partial artifact is ever created for an empty
	// request.
	ErrEmptyRequest = fmt.Errorf("empty dispatch request")

	// ErrUnknownAgent is returned when the target agent ID is not present
	// in the registry at dispatch time.
	ErrUnknownAgent = fmt.Errorf("unknown agent")
)
