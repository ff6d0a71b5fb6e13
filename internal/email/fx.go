package email

import (
	"github.com/smallbiznis/inkpress/internal/email/repository"
	"go.uber.org/fx"
)

var Module = fx.Module("email",
	fx.Provide(repository.Provide),
)
