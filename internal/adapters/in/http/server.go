package http

import (
	"context"
	"log/slog"
	"net/http"

	"zapshift/internal/core/application/usecases/commands"
	"zapshift/internal/core/application/usecases/queries"
	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/domain/model/parcel"
	"zapshift/internal/core/domain/model/payment"
	"zapshift/internal/core/domain/model/rider"
	"zapshift/internal/core/domain/model/tracking"
	"zapshift/internal/core/domain/model/user"
	"zapshift/internal/core/ports"
	"zapshift/internal/generated/servers"
	"zapshift/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Handler is the shape shared by command and query handlers.
type Handler[In, Out any] interface {
	Handle(ctx context.Context, in In) (Out, error)
}

type ParcelDeleter interface {
	Handle(ctx context.Context, cmd commands.DeleteParcelCommand) error
}

type UserRegistrar interface {
	Handle(ctx context.Context, cmd commands.RegisterUserCommand) (*user.User, bool, error)
}

type RiderLister interface {
	List(ctx context.Context, query queries.ListRidersQuery) ([]queries.RiderView, error)
	Available(ctx context.Context, query queries.ListAvailableRidersQuery) ([]queries.RiderView, error)
}

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	// Command handlers
	CreateParcel        Handler[commands.CreateParcelCommand, *parcel.Parcel]
	DeleteParcel        ParcelDeleter
	AssignRider         Handler[commands.AssignRiderCommand, *parcel.Parcel]
	AdvanceStatus       Handler[commands.AdvanceStatusCommand, *parcel.Parcel]
	CashOut             Handler[commands.CashOutCommand, *parcel.Parcel]
	ApplyRider          Handler[commands.ApplyRiderCommand, *rider.Rider]
	ReviewRider         Handler[commands.ReviewRiderCommand, *rider.Rider]
	RegisterUser        UserRegistrar
	UpdateUserRole      Handler[commands.UpdateUserRoleCommand, *user.User]
	RecordPayment       Handler[commands.RecordPaymentCommand, *payment.Payment]
	CreatePaymentIntent Handler[commands.CreatePaymentIntentCommand, ports.PaymentIntent]
	AddTrackingEvent    Handler[commands.AddTrackingEventCommand, tracking.Event]

	// Query handlers
	ListParcels        Handler[queries.ListParcelsQuery, []queries.ParcelView]
	GetParcel          Handler[queries.GetParcelQuery, queries.ParcelView]
	ParcelStatusCounts Handler[queries.ParcelStatusCountsQuery, []queries.StatusCount]
	Riders             RiderLister
	ListRiderParcels   Handler[queries.ListRiderParcelsQuery, []queries.ParcelView]
	GetUserRole        Handler[queries.GetUserRoleQuery, queries.UserRoleView]
	ListPayments       Handler[queries.ListPaymentsQuery, []queries.PaymentView]
	ListTrackingEvents Handler[queries.ListTrackingEventsQuery, []queries.TrackingEventView]
}

// Server implements servers.ServerInterface on top of the application use cases.
type Server struct {
	h      Handlers
	logger *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		h:      handlers,
		logger: logger.With("component", "HTTPServer"),
	}
}

func (s *Server) fail(ctx echo.Context, err error) error {
	return writeError(ctx, s.logger, err)
}

func (s *Server) bind(ctx echo.Context, body any) error {
	if err := ctx.Bind(body); err != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}
	return nil
}

// ListParcels handles GET /parcels.
func (s *Server) ListParcels(ctx echo.Context, params servers.ListParcelsParams) error {
	caller, err := authorize(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var deliveryStatus, paymentStatus string
	if params.DeliveryStatus != nil {
		deliveryStatus = string(*params.DeliveryStatus)
	}
	if params.PaymentStatus != nil {
		paymentStatus = string(*params.PaymentStatus)
	}

	query, err := queries.NewListParcelsQuery(caller, deref(params.Email), deliveryStatus, paymentStatus)
	if err != nil {
		return s.fail(ctx, err)
	}
	views, err := s.h.ListParcels.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, views)
}

// CreateParcel handles POST /parcels.
func (s *Server) CreateParcel(ctx echo.Context) error {
	caller, err := authorize(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.NewParcel
	if err := s.bind(ctx, &body); err != nil {
		return err
	}

	form := commands.ParcelBooking{
		Title:            body.Title,
		ParcelType:       string(body.ParcelType),
		SenderName:       body.SenderName,
		SenderDistrict:   body.SenderDistrict,
		ReceiverName:     body.ReceiverName,
		ReceiverContact:  deref(body.ReceiverContact),
		ReceiverAddress:  deref(body.ReceiverAddress),
		ReceiverDistrict: body.ReceiverDistrict,
		Cost:             body.Cost,
	}
	if body.WeightKg != nil {
		form.WeightKg = float64(*body.WeightKg)
	}

	cmd, err := commands.NewCreateParcelCommand(caller, form)
	if err != nil {
		return s.fail(ctx, err)
	}
	p, err := s.h.CreateParcel.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, queries.NewParcelView(p))
}

// GetParcelStatusCounts handles GET /parcels/status-counts.
func (s *Server) GetParcelStatusCounts(ctx echo.Context) error {
	if _, err := authorize(ctx); err != nil {
		return s.fail(ctx, err)
	}

	counts, err := s.h.ParcelStatusCounts.Handle(ctx.Request().Context(), queries.NewParcelStatusCountsQuery())
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, counts)
}

// GetParcel handles GET /parcels/{id}.
func (s *Server) GetParcel(ctx echo.Context, id servers.ParcelId) error {
	caller, err := authorize(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	parcelID, err := kernelID("id", id)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetParcelQuery(caller, parcelID)
	if err != nil {
		return s.fail(ctx, err)
	}
	view, err := s.h.GetParcel.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, view)
}

// DeleteParcel handles DELETE /parcels/{id}.
func (s *Server) DeleteParcel(ctx echo.Context, id servers.ParcelId) error {
	if _, err := authorize(ctx); err != nil {
		return s.fail(ctx, err)
	}
	parcelID, err := kernelID("id", id)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewDeleteParcelCommand(parcelID)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err := s.h.DeleteParcel.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// AssignRider handles PATCH /parcels/{id}/assign-rider.
func (s *Server) AssignRider(ctx echo.Context, id servers.ParcelId) error {
	caller, err := authorize(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.AssignRider
	if err := s.bind(ctx, &body); err != nil {
		return err
	}
	parcelID, err := kernelID("id", id)
	if err != nil {
		return s.fail(ctx, err)
	}
	riderID, err := kernelID("riderId", body.RiderId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewAssignRiderCommand(parcelID, riderID, caller.Email())
	if err != nil {
		return s.fail(ctx, err)
	}
	p, err := s.h.AssignRider.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, queries.NewParcelView(p))
}

// AdvanceParcelStatus handles PATCH /parcels/{id}/status.
func (s *Server) AdvanceParcelStatus(ctx echo.Context, id servers.ParcelId) error {
	caller, err := authorize(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.StatusChange
	if err := s.bind(ctx, &body); err != nil {
		return err
	}
	parcelID, err := kernelID("id", id)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewAdvanceStatusCommand(caller, parcelID, body.Status, deref(body.Location), deref(body.Message))
	if err != nil {
		return s.fail(ctx, err)
	}
	p, err := s.h.AdvanceStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, queries.NewParcelView(p))
}

// CashOutParcel handles PATCH /parcels/{id}/cashOut.
func (s *Server) CashOutParcel(ctx echo.Context, id servers.ParcelId) error {
	caller, err := authorize(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	parcelID, err := kernelID("id", id)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCashOutCommand(caller, parcelID)
	if err != nil {
		return s.fail(ctx, err)
	}
	p, err := s.h.CashOut.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, queries.NewParcelView(p))
}

// ListRiders handles GET /riders.
func (s *Server) ListRiders(ctx echo.Context, params servers.ListRidersParams) error {
	if _, err := authorize(ctx); err != nil {
		return s.fail(ctx, err)
	}

	var status string
	if params.Status != nil {
		status = string(*params.Status)
	}
	query, err := queries.NewListRidersQuery(status)
	if err != nil {
		return s.fail(ctx, err)
	}
	views, err := s.h.Riders.List(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, views)
}

// ApplyRider handles POST /riders.
func (s *Server) ApplyRider(ctx echo.Context) error {
	caller, err := authorize(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.NewRider
	if err := s.bind(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewApplyRiderCommand(caller, body.Name, deref(body.Phone), body.District)
	if err != nil {
		return s.fail(ctx, err)
	}
	r, err := s.h.ApplyRider.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, queries.NewRiderView(r))
}

// ListAvailableRiders handles GET /riders/available.
func (s *Server) ListAvailableRiders(ctx echo.Context, params servers.ListAvailableRidersParams) error {
	if _, err := authorize(ctx); err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewListAvailableRidersQuery(params.District)
	if err != nil {
		return s.fail(ctx, err)
	}
	views, err := s.h.Riders.Available(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, views)
}

// ReviewRider handles PATCH /riders/{id}/status.
func (s *Server) ReviewRider(ctx echo.Context, id openapi_types.UUID) error {
	if _, err := authorize(ctx); err != nil {
		return s.fail(ctx, err)
	}

	var body servers.StatusChange
	if err := s.bind(ctx, &body); err != nil {
		return err
	}
	riderID, err := kernelID("id", id)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewReviewRiderCommand(riderID, body.Status)
	if err != nil {
		return s.fail(ctx, err)
	}
	r, err := s.h.ReviewRider.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, queries.NewRiderView(r))
}

// ListRiderParcels handles GET /rider/parcels.
func (s *Server) ListRiderParcels(ctx echo.Context) error {
	return s.listRiderParcels(ctx, false)
}

// ListCompletedRiderParcels handles GET /rider/parcels/completed.
func (s *Server) ListCompletedRiderParcels(ctx echo.Context) error {
	return s.listRiderParcels(ctx, true)
}

func (s *Server) listRiderParcels(ctx echo.Context, completed bool) error {
	caller, err := authorize(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewListRiderParcelsQuery(caller, completed)
	if err != nil {
		return s.fail(ctx, err)
	}
	views, err := s.h.ListRiderParcels.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, views)
}

// RegisterUser handles POST /users. Answers 201 for a new user and 200 for a
// returning one.
func (s *Server) RegisterUser(ctx echo.Context) error {
	caller, err := authorize(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.RegisterUser
	if ctx.Request().ContentLength != 0 {
		if err := s.bind(ctx, &body); err != nil {
			return err
		}
	}

	cmd, err := commands.NewRegisterUserCommand(caller.Email(), deref(body.DisplayName))
	if err != nil {
		return s.fail(ctx, err)
	}
	u, created, err := s.h.RegisterUser.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	return ctx.JSON(status, queries.NewUserView(u))
}

// GetUserRole handles GET /users/role.
func (s *Server) GetUserRole(ctx echo.Context) error {
	caller, err := authorize(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetUserRoleQuery(caller)
	if err != nil {
		return s.fail(ctx, err)
	}
	view, err := s.h.GetUserRole.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, view)
}

// UpdateUserRole handles PATCH /users/{id}/role.
func (s *Server) UpdateUserRole(ctx echo.Context, id openapi_types.UUID) error {
	if _, err := authorize(ctx); err != nil {
		return s.fail(ctx, err)
	}

	var body servers.RoleChange
	if err := s.bind(ctx, &body); err != nil {
		return err
	}
	userID, err := kernelID("id", id)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewUpdateUserRoleCommand(userID, string(body.Role))
	if err != nil {
		return s.fail(ctx, err)
	}
	u, err := s.h.UpdateUserRole.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, queries.NewUserView(u))
}

// ListPayments handles GET /payments.
func (s *Server) ListPayments(ctx echo.Context, params servers.ListPaymentsParams) error {
	caller, err := authorize(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewListPaymentsQuery(caller, deref(params.Email))
	if err != nil {
		return s.fail(ctx, err)
	}
	views, err := s.h.ListPayments.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, views)
}

// RecordPayment handles POST /payments.
func (s *Server) RecordPayment(ctx echo.Context) error {
	caller, err := authorize(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.NewPayment
	if err := s.bind(ctx, &body); err != nil {
		return err
	}
	parcelID, err := kernelID("parcelId", body.ParcelId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewRecordPaymentCommand(
		caller,
		parcelID,
		body.Amount,
		deref(body.Currency),
		deref(body.PaymentMethod),
		body.TransactionId,
	)
	if err != nil {
		return s.fail(ctx, err)
	}
	p, err := s.h.RecordPayment.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, queries.NewPaymentView(p))
}

// CreatePaymentIntent handles POST /create-payment-intent.
func (s *Server) CreatePaymentIntent(ctx echo.Context) error {
	if _, err := authorize(ctx); err != nil {
		return s.fail(ctx, err)
	}

	var body servers.PaymentIntentRequest
	if err := s.bind(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewCreatePaymentIntentCommand(body.AmountInCents, deref(body.Currency))
	if err != nil {
		return s.fail(ctx, err)
	}
	intent, err := s.h.CreatePaymentIntent.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, servers.PaymentIntent{
		Id:           &intent.ID,
		ClientSecret: &intent.ClientSecret,
		Amount:       &intent.Amount,
		Currency:     &intent.Currency,
	})
}

// AddTrackingEvent handles POST /tracking.
func (s *Server) AddTrackingEvent(ctx echo.Context) error {
	caller, err := authorize(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.NewTrackingEvent
	if err := s.bind(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewAddTrackingEventCommand(
		caller,
		body.TrackingNumber,
		deref(body.Status),
		deref(body.Location),
		deref(body.Message),
	)
	if err != nil {
		return s.fail(ctx, err)
	}
	event, err := s.h.AddTrackingEvent.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, queries.NewTrackingEventView(event))
}

// ListTrackingEvents handles GET /tracking/{trackingNumber}. Public.
func (s *Server) ListTrackingEvents(ctx echo.Context, trackingNumber string) error {
	query, err := queries.NewListTrackingEventsQuery(trackingNumber)
	if err != nil {
		return s.fail(ctx, err)
	}
	views, err := s.h.ListTrackingEvents.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, views)
}

func kernelID(param string, id openapi_types.UUID) (kernel.UUID, error) {
	parsed, err := kernel.UUIDFromGoogle(id)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(param, err)
	}
	return parsed, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
