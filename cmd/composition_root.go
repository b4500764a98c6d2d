package cmd

import (
	"log/slog"
	"time"

	httpadapter "zapshift/internal/adapters/in/http"
	"zapshift/internal/adapters/out/clock"
	"zapshift/internal/adapters/out/identity"
	"zapshift/internal/adapters/out/payments"
	"zapshift/internal/adapters/out/postgres"
	"zapshift/internal/core/application/authz"
	"zapshift/internal/core/application/usecases/commands"
	"zapshift/internal/core/application/usecases/queries"
	"zapshift/internal/core/ports"

	"gorm.io/gorm"
)

const paymentGatewayTimeout = 10 * time.Second

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	clock      ports.Clock
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, publisher ports.EventPublisher, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		clock:      clock.System{},
		publisher:  publisher,
		logger:     logger,
	}
}

func (c *CompositionRoot) parcelUoWFactory() commands.ParcelUoWFactory {
	return FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) riderUoWFactory() commands.RiderUoWFactory {
	return FuncRiderUoWFactory(func() commands.RiderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) userUoWFactory() commands.UserUoWFactory {
	return FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) deliveryUoWFactory() commands.DeliveryUoWFactory {
	return FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) paymentUoWFactory() commands.PaymentUoWFactory {
	return FuncPaymentUoWFactory(func() commands.PaymentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateParcelCommandHandler() commands.CreateParcelCommandHandler {
	return commands.NewCreateParcelCommandHandler(
		c.parcelUoWFactory(), c.clock, c.publisher, c.logger, c.cfg.AssignMaxAttempts,
	)
}

func (c *CompositionRoot) CreateDeleteParcelCommandHandler() commands.DeleteParcelCommandHandler {
	return commands.NewDeleteParcelCommandHandler(c.deliveryUoWFactory(), c.logger, c.cfg.AssignMaxAttempts)
}

func (c *CompositionRoot) CreateAssignRiderCommandHandler() commands.AssignRiderCommandHandler {
	return commands.NewAssignRiderCommandHandler(
		c.deliveryUoWFactory(), c.clock, c.publisher, c.logger, c.cfg.AssignMaxAttempts,
	)
}

func (c *CompositionRoot) CreateAdvanceStatusCommandHandler() commands.AdvanceStatusCommandHandler {
	return commands.NewAdvanceStatusCommandHandler(
		c.deliveryUoWFactory(), c.clock, c.publisher, c.logger,
		c.cfg.ReleaseRiderOnDelivery, c.cfg.AssignMaxAttempts,
	)
}

func (c *CompositionRoot) CreateCashOutCommandHandler() commands.CashOutCommandHandler {
	return commands.NewCashOutCommandHandler(c.parcelUoWFactory(), c.clock, c.cfg.AssignMaxAttempts)
}

func (c *CompositionRoot) CreateDispatchRiderCommandHandler() commands.DispatchRiderCommandHandler {
	return commands.NewDispatchRiderCommandHandler(
		c.deliveryUoWFactory(), c.clock, c.publisher, c.logger, c.cfg.AssignMaxAttempts,
	)
}

func (c *CompositionRoot) CreateApplyRiderCommandHandler() commands.ApplyRiderCommandHandler {
	return commands.NewApplyRiderCommandHandler(c.riderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateReviewRiderCommandHandler() commands.ReviewRiderCommandHandler {
	return commands.NewReviewRiderCommandHandler(c.riderUoWFactory(), c.clock, c.logger, c.cfg.AssignMaxAttempts)
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	return commands.NewRegisterUserCommandHandler(c.userUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateUpdateUserRoleCommandHandler() commands.UpdateUserRoleCommandHandler {
	return commands.NewUpdateUserRoleCommandHandler(c.userUoWFactory())
}

func (c *CompositionRoot) CreateRecordPaymentCommandHandler() commands.RecordPaymentCommandHandler {
	return commands.NewRecordPaymentCommandHandler(
		c.paymentUoWFactory(), c.clock, c.publisher, c.logger, c.cfg.AssignMaxAttempts,
	)
}

func (c *CompositionRoot) CreateCreatePaymentIntentCommandHandler() (commands.CreatePaymentIntentCommandHandler, error) {
	processor, err := payments.NewStripeProcessor(
		c.cfg.PaymentAPIURL, c.cfg.PaymentGatewayKey, paymentGatewayTimeout, c.logger,
	)
	if err != nil {
		return commands.CreatePaymentIntentCommandHandler{}, err
	}
	return commands.NewCreatePaymentIntentCommandHandler(processor), nil
}

func (c *CompositionRoot) CreateAddTrackingEventCommandHandler() commands.AddTrackingEventCommandHandler {
	return commands.NewAddTrackingEventCommandHandler(c.parcelUoWFactory(), c.clock, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateListParcelsQueryHandler() queries.ListParcelsQueryHandler {
	return queries.NewListParcelsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetParcelQueryHandler() queries.GetParcelQueryHandler {
	return queries.NewGetParcelQueryHandler(c.uowFactory.Create().ParcelRepository())
}

func (c *CompositionRoot) CreateParcelStatusCountsQueryHandler() queries.ParcelStatusCountsQueryHandler {
	return queries.NewParcelStatusCountsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateRidersQueryHandler() queries.RidersQueryHandler {
	return queries.NewRidersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListRiderParcelsQueryHandler() queries.ListRiderParcelsQueryHandler {
	return queries.NewListRiderParcelsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUserRoleQueryHandler() queries.GetUserRoleQueryHandler {
	return queries.NewGetUserRoleQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListPaymentsQueryHandler() queries.ListPaymentsQueryHandler {
	return queries.NewListPaymentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListTrackingEventsQueryHandler() queries.ListTrackingEventsQueryHandler {
	return queries.NewListTrackingEventsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateIdentityVerifier() (*identity.JWTVerifier, error) {
	return identity.NewJWTVerifier(c.cfg.JWTSecret)
}

// CreateCallerResolver reads roles outside any transaction.
func (c *CompositionRoot) CreateCallerResolver() authz.Resolver {
	return authz.NewResolver(c.uowFactory.Create().UserRepository())
}

// CreateHTTPServer wires every use case into the HTTP adapter.
func (c *CompositionRoot) CreateHTTPServer() (*httpadapter.Server, error) {
	createPaymentIntent, err := c.CreateCreatePaymentIntentCommandHandler()
	if err != nil {
		return nil, err
	}

	return httpadapter.NewServer(httpadapter.Handlers{
		CreateParcel:        c.CreateCreateParcelCommandHandler(),
		DeleteParcel:        c.CreateDeleteParcelCommandHandler(),
		AssignRider:         c.CreateAssignRiderCommandHandler(),
		AdvanceStatus:       c.CreateAdvanceStatusCommandHandler(),
		CashOut:             c.CreateCashOutCommandHandler(),
		ApplyRider:          c.CreateApplyRiderCommandHandler(),
		ReviewRider:         c.CreateReviewRiderCommandHandler(),
		RegisterUser:        c.CreateRegisterUserCommandHandler(),
		UpdateUserRole:      c.CreateUpdateUserRoleCommandHandler(),
		RecordPayment:       c.CreateRecordPaymentCommandHandler(),
		CreatePaymentIntent: createPaymentIntent,
		AddTrackingEvent:    c.CreateAddTrackingEventCommandHandler(),

		ListParcels:        c.CreateListParcelsQueryHandler(),
		GetParcel:          c.CreateGetParcelQueryHandler(),
		ParcelStatusCounts: c.CreateParcelStatusCountsQueryHandler(),
		Riders:             c.CreateRidersQueryHandler(),
		ListRiderParcels:   c.CreateListRiderParcelsQueryHandler(),
		GetUserRole:        c.CreateGetUserRoleQueryHandler(),
		ListPayments:       c.CreateListPaymentsQueryHandler(),
		ListTrackingEvents: c.CreateListTrackingEventsQueryHandler(),
	}, c.logger), nil
}

type FuncParcelUoWFactory func() commands.ParcelUoW

func (f FuncParcelUoWFactory) Create() commands.ParcelUoW {
	return f()
}

type FuncRiderUoWFactory func() commands.RiderUoW

func (f FuncRiderUoWFactory) Create() commands.RiderUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncPaymentUoWFactory func() commands.PaymentUoW

func (f FuncPaymentUoWFactory) Create() commands.PaymentUoW {
	return f()
}
