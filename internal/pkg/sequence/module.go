package sequence

import "go.uber.org/fx"

// Module provides the document number allocator.
var Module = fx.Provide(New)
