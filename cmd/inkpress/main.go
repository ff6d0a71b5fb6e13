package main

import (
	"github.com/smallbiznis/inkpress/internal/config"
	"github.com/smallbiznis/inkpress/internal/content"
	"github.com/smallbiznis/inkpress/internal/email"
	"github.com/smallbiznis/inkpress/internal/identity"
	"github.com/smallbiznis/inkpress/internal/logger"
	"github.com/smallbiznis/inkpress/internal/member"
	"github.com/smallbiznis/inkpress/internal/migration"
	"github.com/smallbiznis/inkpress/internal/operations"
	"github.com/smallbiznis/inkpress/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		// Core infrastructure
		config.Module,
		logger.Module,
		db.Module,
		migration.Module,

		// Domains
		content.Module,
		identity.Module,
		member.Module,
		email.Module,
		operations.Module,
	)
	app.Run()
}
