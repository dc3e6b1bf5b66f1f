package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/tallertech/tallertech/internal/config"
	"github.com/tallertech/tallertech/internal/migration"
	"github.com/tallertech/tallertech/internal/observability"
	"github.com/tallertech/tallertech/internal/seed"
	"github.com/tallertech/tallertech/internal/server"
	"github.com/tallertech/tallertech/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		observability.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		migration.Module,
		server.Module,
		seed.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
