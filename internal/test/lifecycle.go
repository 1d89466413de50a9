package test

import (
	"go.uber.org/fx"
)

// LifecycleRecorder captures fx hooks registered by the code under test so
// they can be invoked directly instead of through a full fx app.
type LifecycleRecorder struct {
	Hooks []fx.Hook
}

// Append stores the hook for later invocation.
func (l *LifecycleRecorder) Append(h fx.Hook) {
	l.Hooks = append(l.Hooks, h)
}

// ShutdownerStub records shutdown requests without tearing anything down.
type ShutdownerStub struct {
	Called chan struct{}
}

// Shutdown signals the Called channel, non-blocking.
func (s *ShutdownerStub) Shutdown(...fx.ShutdownOption) error {
	if s.Called != nil {
		select {
		case s.Called <- struct{}{}:
		default:
		}
	}
	return nil
}
