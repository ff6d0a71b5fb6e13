package operations

import (
	"github.com/smallbiznis/inkpress/internal/operations/repository"
	"go.uber.org/fx"
)

var Module = fx.Module("operations",
	fx.Provide(repository.Provide),
)
