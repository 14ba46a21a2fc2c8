package moverrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"moving/internal/adapters/out/postgres/moverepo"
	"moving/internal/adapters/out/postgres/moverrepo"
	"moving/internal/core/domain/model/kernel"
	"moving/internal/core/domain/model/move"
	"moving/internal/core/domain/model/mover"
	"moving/internal/pkg/errs"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// MoverRepositoryIntegrationTestSuite provides integration tests for MoverRepository
// using PostgreSQL containers to verify database persistence behavior.
type MoverRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *moverrepo.GormMoverRepository
	tracker    *MockAggregateTracker
}

func (suite *MoverRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&moverepo.MoveDTO{}, &moverrepo.MoverDTO{}, &moverrepo.CrewMemberDTO{})
	suite.Require().NoError(err)
}

func (suite *MoverRepositoryIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE moves, movers, crew_members").Error
	suite.Require().NoError(err)

	// Create fresh repository and tracker for each test
	suite.tracker = new(MockAggregateTracker)
	suite.repository = moverrepo.NewGormMoverRepository(suite.db, suite.tracker)
}

func (suite *MoverRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *MoverRepositoryIntegrationTestSuite) newMover(userID string, maxTier kernel.MoveType) *mover.Mover {
	m, err := mover.NewMover(kernel.NewUUID(), userID, "Test Crew", maxTier)
	suite.Require().NoError(err)
	return m
}

// seedAssignedMove inserts a move in the given status assigned to the mover.
func (suite *MoverRepositoryIntegrationTestSuite) seedAssignedMove(m *mover.Mover, status move.Status) {
	moverID := m.ID().Bytes()
	dto := moverepo.MoveDTO{
		ID:             kernel.NewUUID().Bytes(),
		ClientID:       kernel.NewUUID().Bytes(),
		MoverProfileID: &moverID,
		MoveType:       kernel.MoveTypeRegular.String(),
		Status:         status.String(),
		CreatedAt:      time.Now().UTC(),
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)
}

func (suite *MoverRepositoryIntegrationTestSuite) TestAdd_ValidMover_Success() {
	ctx := context.Background()
	m := suite.newMover("user-1", kernel.MoveTypeRegular)
	suite.tracker.On("TrackAggregate", m.ID(), m).Once()

	err := suite.repository.Add(ctx, m)
	suite.Require().NoError(err)

	retrieved, err := suite.repository.Get(ctx, m.ID())
	suite.Require().NoError(err)
	suite.True(m.IsEqual(retrieved))
	suite.Equal("user-1", retrieved.UserID())
	suite.Equal(kernel.MoveTypeRegular, retrieved.MaxTier())
	suite.Empty(retrieved.CrewMembers())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *MoverRepositoryIntegrationTestSuite) TestGet_NonExistentMover_ReturnsNotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *MoverRepositoryIntegrationTestSuite) TestUpdate_AddCrewMembers_PersistsCrew() {
	ctx := context.Background()
	m := suite.newMover("user-2", kernel.MoveTypePremium)
	suite.tracker.On("TrackAggregate", m.ID(), m).Times(2)

	err := suite.repository.Add(ctx, m)
	suite.Require().NoError(err)

	suite.Require().NoError(m.AddCrewMember("Alex Carter", "driver"))
	suite.Require().NoError(m.AddCrewMember("Sam Reed", "loader"))

	err = suite.repository.Update(ctx, m)
	suite.Require().NoError(err)

	retrieved, err := suite.repository.Get(ctx, m.ID())
	suite.Require().NoError(err)
	suite.Require().Len(retrieved.CrewMembers(), 2)

	names := []string{retrieved.CrewMembers()[0].Name(), retrieved.CrewMembers()[1].Name()}
	suite.Contains(names, "Alex Carter")
	suite.Contains(names, "Sam Reed")
}

func (suite *MoverRepositoryIntegrationTestSuite) TestGetByUserID_ReturnsOwnedProfile() {
	ctx := context.Background()
	m := suite.newMover("user-3", kernel.MoveTypeLight)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	err := suite.repository.Add(ctx, m)
	suite.Require().NoError(err)

	retrieved, err := suite.repository.GetByUserID(ctx, "user-3")
	suite.Require().NoError(err)
	suite.True(m.IsEqual(retrieved))
}

func (suite *MoverRepositoryIntegrationTestSuite) TestGetByUserID_EmptyUserID_ReturnsRequiredError() {
	_, err := suite.repository.GetByUserID(context.Background(), "")

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrValueIsRequired)
}

func (suite *MoverRepositoryIntegrationTestSuite) TestGetByUserID_UnknownUser_ReturnsNotFound() {
	_, err := suite.repository.GetByUserID(context.Background(), "nobody")

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *MoverRepositoryIntegrationTestSuite) TestGetAllFree_ExcludesMoversWithActiveMoves() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	free := suite.newMover("user-free", kernel.MoveTypeRegular)
	busy := suite.newMover("user-busy", kernel.MoveTypeRegular)
	done := suite.newMover("user-done", kernel.MoveTypePremium)

	suite.Require().NoError(suite.repository.Add(ctx, free))
	suite.Require().NoError(suite.repository.Add(ctx, busy))
	suite.Require().NoError(suite.repository.Add(ctx, done))

	suite.seedAssignedMove(busy, move.StatusLoading)
	// Terminal moves do not keep a mover busy.
	suite.seedAssignedMove(done, move.StatusCompleted)
	suite.seedAssignedMove(done, move.StatusCancelledByClient)

	movers, err := suite.repository.GetAllFree(ctx)
	suite.Require().NoError(err)

	suite.Require().Len(movers, 2)
	ids := []string{movers[0].ID().String(), movers[1].ID().String()}
	suite.Contains(ids, free.ID().String())
	suite.Contains(ids, done.ID().String())
	suite.NotContains(ids, busy.ID().String())
}

func (suite *MoverRepositoryIntegrationTestSuite) TestGetAllFree_NoMovers_ReturnsEmpty() {
	movers, err := suite.repository.GetAllFree(context.Background())

	suite.Require().NoError(err)
	suite.Empty(movers)
}

func TestMoverRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(MoverRepositoryIntegrationTestSuite))
}
