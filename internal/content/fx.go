package content

import (
	"github.com/smallbiznis/inkpress/internal/content/repository"
	"go.uber.org/fx"
)

var Module = fx.Module("content",
	fx.Provide(repository.Provide),
)
