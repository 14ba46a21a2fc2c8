package cmd

import (
	"moving/internal/adapters/out/postgres"
	"moving/internal/core/application/usecases/commands"
	"moving/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateMoveCommandHandler() commands.CreateMoveCommandHandler {
	var f commands.MoveUoWFactory = FuncMoveUoWFactory(func() commands.MoveUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateMoveCommandHandler(f)
}

func (c *CompositionRoot) CreateTransitionMoveStatusCommandHandler() commands.TransitionMoveStatusCommandHandler {
	var f commands.MoveUoWFactory = FuncMoveUoWFactory(func() commands.MoveUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransitionMoveStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateMoverCommandHandler() commands.CreateMoverCommandHandler {
	var f commands.MoverUoWFactory = FuncMoverUoWFactory(func() commands.MoverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateMoverCommandHandler(f)
}

func (c *CompositionRoot) CreateAddCrewMemberCommandHandler() commands.AddCrewMemberCommandHandler {
	var f commands.MoverUoWFactory = FuncMoverUoWFactory(func() commands.MoverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddCrewMemberCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignMoverCommandHandler() commands.AssignMoverCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignMoverCommandHandler(f)
}

func (c *CompositionRoot) CreateGetClientMovesQueryHandler() queries.GetClientMovesQueryHandler {
	return queries.NewGetClientMovesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUncompletedMovesQueryHandler() queries.GetUncompletedMovesQueryHandler {
	return queries.NewGetUncompletedMovesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMoverDashboardQueryHandler() queries.GetMoverDashboardQueryHandler {
	return queries.NewGetMoverDashboardQueryHandler(c.gormDB)
}

type FuncMoveUoWFactory func() commands.MoveUoW

func (f FuncMoveUoWFactory) Create() commands.MoveUoW {
	return f()
}

type FuncMoverUoWFactory func() commands.MoverUoW

func (f FuncMoverUoWFactory) Create() commands.MoverUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
