package member

import (
	"github.com/smallbiznis/inkpress/internal/member/repository"
	"go.uber.org/fx"
)

var Module = fx.Module("member",
	fx.Provide(repository.Provide),
	fx.Provide(repository.ProvideEvents),
)
