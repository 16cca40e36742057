package health

import "context"

// StorePinger checks closure-store availability.
type StorePinger interface {
	Ping(ctx context.Context) error
}

// ICPinger checks information-content source availability.
type ICPinger interface {
	Ping(ctx context.Context) error
}
