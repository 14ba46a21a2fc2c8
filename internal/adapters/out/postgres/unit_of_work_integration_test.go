package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	postgres_adapter "moving/internal/adapters/out/postgres"
	"moving/internal/adapters/out/postgres/moverepo"
	"moving/internal/adapters/out/postgres/moverrepo"
	"moving/internal/core/domain/model/kernel"
	"moving/internal/core/domain/model/move"
	"moving/internal/core/domain/model/mover"
	"moving/internal/core/ports"
)

// UnitOfWorkIntegrationTestSuite provides integration testing for the
// GORM-based Unit of Work implementation with a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes PostgreSQL container and database connection for all tests.
// Runs database migrations to prepare schema for unit of work operations.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&moverepo.MoveDTO{}, &moverrepo.MoverDTO{}, &moverrepo.CrewMemberDTO{})
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
// Truncates all tables to prevent test interference.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE moves, movers, crew_members").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWorkFactory_Create verifies factory creates unit of work instances
// with proper initialization and isolation between instances.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.MoveRepository(), "First instance should provide move repository")
	suite.NotNil(uow1.MoverRepository(), "First instance should provide mover repository")
	suite.NotNil(uow2.MoveRepository(), "Second instance should provide move repository")
	suite.NotNil(uow2.MoverRepository(), "Second instance should provide mover repository")
}

// TestUnitOfWork_TransactionLifecycle verifies proper transaction management
// including begin, commit, and rollback operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_TransactionErrors verifies commit and rollback fail without
// an active transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().ErrorIs(err, gorm.ErrInvalidTransaction, "Commit without begin should fail")

	err = uow.Rollback(ctx)
	suite.Require().ErrorIs(err, gorm.ErrInvalidTransaction, "Rollback without begin should fail")
}

// TestUnitOfWork_MoveWorkflow walks a move through booking, assignment, and a
// first status transition across several transactions.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_MoveWorkflow() {
	ctx := context.Background()

	// Book a move.
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	mv, err := move.NewMove(kernel.NewUUID(), kernel.NewUUID(), kernel.MoveTypeRegular)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.MoveRepository().Add(ctx, mv))

	m, err := mover.NewMover(kernel.NewUUID(), "user-workflow", "Smith & Sons", kernel.MoveTypeRegular)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.MoverRepository().Add(ctx, m))

	suite.Require().NoError(uow.Commit(ctx))

	// Assign the mover.
	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	loaded, err := uow.MoveRepository().Get(ctx, mv.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.AssignMover(m.ID()))
	suite.Require().NoError(uow.MoveRepository().Update(ctx, loaded))

	suite.Require().NoError(uow.Commit(ctx))

	// The assigned mover advances the move.
	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	loaded, err = uow.MoveRepository().Get(ctx, mv.ID())
	suite.Require().NoError(err)
	suite.Equal(move.StatusMoverAssigned, loaded.Status())

	from := loaded.Status()
	suite.Require().NoError(loaded.Progress(m.ID(), move.StatusMoverEnRoute))
	suite.Require().NoError(uow.MoveRepository().UpdateStatus(ctx, loaded, from))

	suite.Require().NoError(uow.Commit(ctx))

	final, err := suite.factory.Create().MoveRepository().Get(ctx, mv.ID())
	suite.Require().NoError(err)
	suite.Equal(move.StatusMoverEnRoute, final.Status())
}

// TestUnitOfWork_TransactionRollback verifies changes inside a rolled-back
// transaction never reach the database.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	mv, err := move.NewMove(kernel.NewUUID(), kernel.NewUUID(), kernel.MoveTypeLight)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.MoveRepository().Add(ctx, mv))

	suite.Require().NoError(uow.Rollback(ctx))

	_, err = suite.factory.Create().MoveRepository().Get(ctx, mv.ID())
	suite.Require().Error(err, "Rolled back move should not exist")
}

// TestUnitOfWork_StatusConflict verifies the conditional status write rejects
// a transition based on a stale read.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_StatusConflict() {
	ctx := context.Background()

	moverProfileID := kernel.NewUUID()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	mv, err := move.NewMove(kernel.NewUUID(), kernel.NewUUID(), kernel.MoveTypeLight)
	suite.Require().NoError(err)
	suite.Require().NoError(mv.AssignMover(moverProfileID))
	suite.Require().NoError(uow.MoveRepository().Add(ctx, mv))
	suite.Require().NoError(uow.Commit(ctx))

	// Two readers load the same state.
	first, err := suite.factory.Create().MoveRepository().Get(ctx, mv.ID())
	suite.Require().NoError(err)
	second, err := suite.factory.Create().MoveRepository().Get(ctx, mv.ID())
	suite.Require().NoError(err)

	// First writer wins.
	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	from := first.Status()
	suite.Require().NoError(first.Progress(moverProfileID, move.StatusMoverEnRoute))
	suite.Require().NoError(uow.MoveRepository().UpdateStatus(ctx, first, from))
	suite.Require().NoError(uow.Commit(ctx))

	// Second writer's read is now stale.
	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	from = second.Status()
	suite.Require().NoError(second.Progress(moverProfileID, move.StatusMoverEnRoute))
	err = uow.MoveRepository().UpdateStatus(ctx, second, from)
	suite.Require().ErrorIs(err, ports.ErrStatusConflict)
	suite.Require().NoError(uow.Rollback(ctx))
}

// TestUnitOfWork_CrewPersistence verifies crew members round-trip through the
// mover repository as part of the aggregate.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CrewPersistence() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	m, err := mover.NewMover(kernel.NewUUID(), "user-crew", "Heavy Lifters", kernel.MoveTypePremium)
	suite.Require().NoError(err)
	suite.Require().NoError(m.AddCrewMember("Alex Carter", "driver"))
	suite.Require().NoError(m.AddCrewMember("Sam Reed", "loader"))
	suite.Require().NoError(uow.MoverRepository().Add(ctx, m))
	suite.Require().NoError(uow.Commit(ctx))

	loaded, err := suite.factory.Create().MoverRepository().Get(ctx, m.ID())
	suite.Require().NoError(err)
	suite.Len(loaded.CrewMembers(), 2)
	suite.Equal("Heavy Lifters", loaded.Name())
	suite.Equal(kernel.MoveTypePremium, loaded.MaxTier())
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
