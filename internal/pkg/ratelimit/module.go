package ratelimit

import "go.uber.org/fx"

// Module provides the shared limiter instance.
var Module = fx.Provide(New)
