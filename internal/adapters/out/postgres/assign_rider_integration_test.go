package postgres_test

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"zapshift/internal/adapters/out/postgres/pgtest"
	"zapshift/internal/core/application/usecases/commands"
	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/domain/model/parcel"
	"zapshift/internal/core/domain/model/rider"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

func (suite *UnitOfWorkIntegrationTestSuite) assignRiderHandler() commands.AssignRiderCommandHandler {
	factory := deliveryUoWFactory(func() commands.DeliveryUoW { return suite.factory.Create() })
	return commands.NewAssignRiderCommandHandler(
		factory,
		fixedClock{pgtest.BookedAt.Add(time.Hour)},
		nil,
		slog.New(slog.DiscardHandler),
		commands.DefaultMaxAttempts,
	)
}

type deliveryUoWFactory func() commands.DeliveryUoW

func (f deliveryUoWFactory) Create() commands.DeliveryUoW { return f() }

// assignConcurrently runs every command at once and returns their errors in
// command order.
func (suite *UnitOfWorkIntegrationTestSuite) assignConcurrently(cmds ...commands.AssignRiderCommand) []error {
	handler := suite.assignRiderHandler()
	results := make([]error, len(cmds))
	start := make(chan struct{})

	var wg sync.WaitGroup
	for i, cmd := range cmds {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, results[i] = handler.Handle(context.Background(), cmd)
		}()
	}
	close(start)
	wg.Wait()
	return results
}

func (suite *UnitOfWorkIntegrationTestSuite) assignCommand(parcelID, riderID kernel.UUID) commands.AssignRiderCommand {
	cmd, err := commands.NewAssignRiderCommand(parcelID, riderID, pgtest.Email(suite.T(), "admin@zapshift.io"))
	suite.Require().NoError(err)
	return cmd
}

func (suite *UnitOfWorkIntegrationTestSuite) TestAssignRiderCommandHandler_SameParcelTwoRiders_OneWins() {
	ctx := context.Background()
	p := pgtest.Parcel(suite.T(), "nadia@mail.com", "Dhaka", 1000, pgtest.BookedAt)
	karim := pgtest.ActiveRider(suite.T(), "Karim", "karim@zapshift.io", "Dhaka")
	rafi := pgtest.ActiveRider(suite.T(), "Rafi", "rafi@zapshift.io", "Dhaka")
	suite.seed(p, karim)
	suite.seed(nil, rafi)

	results := suite.assignConcurrently(
		suite.assignCommand(p.ID(), karim.ID()),
		suite.assignCommand(p.ID(), rafi.ID()),
	)

	winner, loser := 0, 1
	if results[0] != nil {
		winner, loser = 1, 0
	}
	suite.Require().NoError(results[winner])
	suite.Require().ErrorIs(results[loser], parcel.ErrParcelNotAssignable)

	check := suite.factory.Create()
	stored, err := check.ParcelRepository().Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Equal(parcel.RiderAssigned, stored.DeliveryStatus())

	riders := []*rider.Rider{karim, rafi}
	assigned, err := check.RiderRepository().Get(ctx, riders[winner].ID())
	suite.Require().NoError(err)
	suite.Equal(rider.InDelivery, assigned.WorkStatus())
	suite.Equal(assigned.ID(), stored.Rider().ID)

	free, err := check.RiderRepository().Get(ctx, riders[loser].ID())
	suite.Require().NoError(err)
	suite.Equal(rider.Idle, free.WorkStatus())

	var events int64
	suite.Require().NoError(suite.db.Table("tracking_events").Where("parcel_id = ?", p.ID().Google()).Count(&events).Error)
	suite.Equal(int64(1), events)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestAssignRiderCommandHandler_SameRiderTwoParcels_OneWins() {
	ctx := context.Background()
	first := pgtest.Parcel(suite.T(), "nadia@mail.com", "Dhaka", 1000, pgtest.BookedAt)
	second := pgtest.Parcel(suite.T(), "nadia@mail.com", "Sylhet", 1000, pgtest.BookedAt)
	karim := pgtest.ActiveRider(suite.T(), "Karim", "karim@zapshift.io", "Dhaka")
	suite.seed(first, karim)
	suite.seed(second, nil)

	results := suite.assignConcurrently(
		suite.assignCommand(first.ID(), karim.ID()),
		suite.assignCommand(second.ID(), karim.ID()),
	)

	winner, loser := 0, 1
	if results[0] != nil {
		winner, loser = 1, 0
	}
	suite.Require().NoError(results[winner])
	suite.Require().ErrorIs(results[loser], rider.ErrRiderUnavailable)

	parcels := []*parcel.Parcel{first, second}
	check := suite.factory.Create()
	won, err := check.ParcelRepository().Get(ctx, parcels[winner].ID())
	suite.Require().NoError(err)
	suite.Equal(parcel.RiderAssigned, won.DeliveryStatus())

	untouched, err := check.ParcelRepository().Get(ctx, parcels[loser].ID())
	suite.Require().NoError(err)
	suite.Equal(parcel.NotCollected, untouched.DeliveryStatus())
	suite.Nil(untouched.Rider())
}
