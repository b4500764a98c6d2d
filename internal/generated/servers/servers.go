// Package servers holds the HTTP contract built around the embedded OpenAPI
// document. Its echo route wrappers bind path and query parameters with
// oapi-codegen's runtime before calling ServerInterface. The layout follows
// oapi-codegen's echo output, but the file is maintained by hand and must stay
// in step with openapi.yaml.
package servers

import (
	_ "embed"
	"fmt"
	"net/http"
	"net/url"
	"path"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

const (
	BearerAuthScopes = "bearerAuth.Scopes"
)

// Defines values for DeliveryStatus.
const (
	Delivered              DeliveryStatus = "delivered"
	InTransit              DeliveryStatus = "in-transit"
	NotCollected           DeliveryStatus = "not-collected"
	RiderAssigned          DeliveryStatus = "rider-assigned"
	ServiceCenterDelivered DeliveryStatus = "service-center-delivered"
)

// Defines values for NewParcelParcelType.
const (
	Document    NewParcelParcelType = "document"
	NonDocument NewParcelParcelType = "non-document"
)

// Defines values for RoleChangeRole.
const (
	RoleChangeRoleAdmin RoleChangeRole = "admin"
	RoleChangeRoleRider RoleChangeRole = "rider"
	RoleChangeRoleUser  RoleChangeRole = "user"
)

// Defines values for ListParcelsParamsPaymentStatus.
const (
	ListParcelsParamsPaymentStatusPaid   ListParcelsParamsPaymentStatus = "paid"
	ListParcelsParamsPaymentStatusUnpaid ListParcelsParamsPaymentStatus = "unpaid"
)

// Defines values for ListRidersParamsStatus.
const (
	ListRidersParamsStatusActive   ListRidersParamsStatus = "active"
	ListRidersParamsStatusPending  ListRidersParamsStatus = "pending"
	ListRidersParamsStatusRejected ListRidersParamsStatus = "rejected"
)

// AssignRider defines model for AssignRider.
type AssignRider struct {
	RiderId openapi_types.UUID `json:"riderId"`
}

// DeliveryStatus defines model for DeliveryStatus.
type DeliveryStatus string

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewParcel defines model for NewParcel.
type NewParcel struct {
	Cost             int64               `json:"cost"`
	ParcelType       NewParcelParcelType `json:"parcelType"`
	ReceiverAddress  *string             `json:"receiverAddress,omitempty"`
	ReceiverContact  *string             `json:"receiverContact,omitempty"`
	ReceiverDistrict string              `json:"receiverDistrict"`
	ReceiverName     string              `json:"receiverName"`
	SenderDistrict   string              `json:"senderDistrict"`
	SenderName       string              `json:"senderName"`
	Title            string              `json:"title"`
	WeightKg         *float32            `json:"weightKg,omitempty"`
}

// NewParcelParcelType defines model for NewParcel.ParcelType.
type NewParcelParcelType string

// NewPayment defines model for NewPayment.
type NewPayment struct {
	Amount        int64              `json:"amount"`
	Currency      *string            `json:"currency,omitempty"`
	ParcelId      openapi_types.UUID `json:"parcelId"`
	PaymentMethod *string            `json:"paymentMethod,omitempty"`
	TransactionId string             `json:"transactionId"`
}

// NewRider defines model for NewRider.
type NewRider struct {
	District string  `json:"district"`
	Name     string  `json:"name"`
	Phone    *string `json:"phone,omitempty"`
}

// NewTrackingEvent defines model for NewTrackingEvent.
type NewTrackingEvent struct {
	Location       *string `json:"location,omitempty"`
	Message        *string `json:"message,omitempty"`
	Status         *string `json:"status,omitempty"`
	TrackingNumber string  `json:"trackingNumber"`
}

// PaymentIntentRequest defines model for PaymentIntentRequest.
type PaymentIntentRequest struct {
	AmountInCents int64   `json:"amountInCents"`
	Currency      *string `json:"currency,omitempty"`
}

// PaymentIntent defines model for PaymentIntent.
type PaymentIntent struct {
	Amount       *int64  `json:"amount,omitempty"`
	ClientSecret *string `json:"clientSecret,omitempty"`
	Currency     *string `json:"currency,omitempty"`
	Id           *string `json:"id,omitempty"`
}

// RegisterUser defines model for RegisterUser.
type RegisterUser struct {
	DisplayName *string `json:"displayName,omitempty"`
}

// RoleChange defines model for RoleChange.
type RoleChange struct {
	Role RoleChangeRole `json:"role"`
}

// RoleChangeRole defines model for RoleChange.Role.
type RoleChangeRole string

// StatusChange defines model for StatusChange.
type StatusChange struct {
	Location *string `json:"location,omitempty"`
	Message  *string `json:"message,omitempty"`
	Status   string  `json:"status"`
}

// ParcelId defines model for ParcelId.
type ParcelId = openapi_types.UUID

// ListParcelsParams defines parameters for ListParcels.
type ListParcelsParams struct {
	Email          *string                         `form:"email,omitempty" json:"email,omitempty"`
	DeliveryStatus *DeliveryStatus                 `form:"deliveryStatus,omitempty" json:"deliveryStatus,omitempty"`
	PaymentStatus  *ListParcelsParamsPaymentStatus `form:"paymentStatus,omitempty" json:"paymentStatus,omitempty"`
}

// ListParcelsParamsPaymentStatus defines parameters for ListParcels.
type ListParcelsParamsPaymentStatus string

// ListRidersParams defines parameters for ListRiders.
type ListRidersParams struct {
	Status *ListRidersParamsStatus `form:"status,omitempty" json:"status,omitempty"`
}

// ListRidersParamsStatus defines parameters for ListRiders.
type ListRidersParamsStatus string

// ListAvailableRidersParams defines parameters for ListAvailableRiders.
type ListAvailableRidersParams struct {
	District string `form:"district" json:"district"`
}

// ListPaymentsParams defines parameters for ListPayments.
type ListPaymentsParams struct {
	Email *string `form:"email,omitempty" json:"email,omitempty"`
}

// CreatePaymentIntentJSONRequestBody defines body for CreatePaymentIntent for application/json ContentType.
type CreatePaymentIntentJSONRequestBody = PaymentIntentRequest

// CreateParcelJSONRequestBody defines body for CreateParcel for application/json ContentType.
type CreateParcelJSONRequestBody = NewParcel

// AssignRiderJSONRequestBody defines body for AssignRider for application/json ContentType.
type AssignRiderJSONRequestBody = AssignRider

// AdvanceParcelStatusJSONRequestBody defines body for AdvanceParcelStatus for application/json ContentType.
type AdvanceParcelStatusJSONRequestBody = StatusChange

// RecordPaymentJSONRequestBody defines body for RecordPayment for application/json ContentType.
type RecordPaymentJSONRequestBody = NewPayment

// ApplyRiderJSONRequestBody defines body for ApplyRider for application/json ContentType.
type ApplyRiderJSONRequestBody = NewRider

// ReviewRiderJSONRequestBody defines body for ReviewRider for application/json ContentType.
type ReviewRiderJSONRequestBody = StatusChange

// AddTrackingEventJSONRequestBody defines body for AddTrackingEvent for application/json ContentType.
type AddTrackingEventJSONRequestBody = NewTrackingEvent

// RegisterUserJSONRequestBody defines body for RegisterUser for application/json ContentType.
type RegisterUserJSONRequestBody = RegisterUser

// UpdateUserRoleJSONRequestBody defines body for UpdateUserRole for application/json ContentType.
type UpdateUserRoleJSONRequestBody = RoleChange

// ServerInterface represents all server handlers.
type ServerInterface interface {

	// (POST /create-payment-intent)
	CreatePaymentIntent(ctx echo.Context) error

	// (GET /parcels)
	ListParcels(ctx echo.Context, params ListParcelsParams) error

	// (POST /parcels)
	CreateParcel(ctx echo.Context) error

	// (GET /parcels/status-counts)
	GetParcelStatusCounts(ctx echo.Context) error

	// (DELETE /parcels/{id})
	DeleteParcel(ctx echo.Context, id ParcelId) error

	// (GET /parcels/{id})
	GetParcel(ctx echo.Context, id ParcelId) error

	// (PATCH /parcels/{id}/assign-rider)
	AssignRider(ctx echo.Context, id ParcelId) error

	// (PATCH /parcels/{id}/cashOut)
	CashOutParcel(ctx echo.Context, id ParcelId) error

	// (PATCH /parcels/{id}/status)
	AdvanceParcelStatus(ctx echo.Context, id ParcelId) error

	// (GET /payments)
	ListPayments(ctx echo.Context, params ListPaymentsParams) error

	// (POST /payments)
	RecordPayment(ctx echo.Context) error

	// (GET /rider/parcels)
	ListRiderParcels(ctx echo.Context) error

	// (GET /rider/parcels/completed)
	ListCompletedRiderParcels(ctx echo.Context) error

	// (GET /riders)
	ListRiders(ctx echo.Context, params ListRidersParams) error

	// (POST /riders)
	ApplyRider(ctx echo.Context) error

	// (GET /riders/available)
	ListAvailableRiders(ctx echo.Context, params ListAvailableRidersParams) error

	// (PATCH /riders/{id}/status)
	ReviewRider(ctx echo.Context, id openapi_types.UUID) error

	// (POST /tracking)
	AddTrackingEvent(ctx echo.Context) error

	// (GET /tracking/{trackingNumber})
	ListTrackingEvents(ctx echo.Context, trackingNumber string) error

	// (POST /users)
	RegisterUser(ctx echo.Context) error

	// (GET /users/role)
	GetUserRole(ctx echo.Context) error

	// (PATCH /users/{id}/role)
	UpdateUserRole(ctx echo.Context, id openapi_types.UUID) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// CreatePaymentIntent converts echo context to params.
func (w *ServerInterfaceWrapper) CreatePaymentIntent(ctx echo.Context) error {
	var err error

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreatePaymentIntent(ctx)
	return err
}

// ListParcels converts echo context to params.
func (w *ServerInterfaceWrapper) ListParcels(ctx echo.Context) error {
	var err error

	ctx.Set(BearerAuthScopes, []string{})

	// Parameter object where we will unmarshal all parameters from the context
	var params ListParcelsParams
	// ------------- Optional query parameter "email" -------------

	err = runtime.BindQueryParameter("form", true, false, "email", ctx.QueryParams(), &params.Email)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter email: %s", err))
	}

	// ------------- Optional query parameter "deliveryStatus" -------------

	err = runtime.BindQueryParameter("form", true, false, "deliveryStatus", ctx.QueryParams(), &params.DeliveryStatus)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter deliveryStatus: %s", err))
	}

	// ------------- Optional query parameter "paymentStatus" -------------

	err = runtime.BindQueryParameter("form", true, false, "paymentStatus", ctx.QueryParams(), &params.PaymentStatus)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter paymentStatus: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListParcels(ctx, params)
	return err
}

// CreateParcel converts echo context to params.
func (w *ServerInterfaceWrapper) CreateParcel(ctx echo.Context) error {
	var err error

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreateParcel(ctx)
	return err
}

// GetParcelStatusCounts converts echo context to params.
func (w *ServerInterfaceWrapper) GetParcelStatusCounts(ctx echo.Context) error {
	var err error

	ctx.Set(BearerAuthScopes, []string{"admin"})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetParcelStatusCounts(ctx)
	return err
}

// DeleteParcel converts echo context to params.
func (w *ServerInterfaceWrapper) DeleteParcel(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "id" -------------
	var id ParcelId

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{"admin"})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.DeleteParcel(ctx, id)
	return err
}

// GetParcel converts echo context to params.
func (w *ServerInterfaceWrapper) GetParcel(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "id" -------------
	var id ParcelId

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetParcel(ctx, id)
	return err
}

// AssignRider converts echo context to params.
func (w *ServerInterfaceWrapper) AssignRider(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "id" -------------
	var id ParcelId

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{"admin"})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.AssignRider(ctx, id)
	return err
}

// CashOutParcel converts echo context to params.
func (w *ServerInterfaceWrapper) CashOutParcel(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "id" -------------
	var id ParcelId

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{"admin", "rider"})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CashOutParcel(ctx, id)
	return err
}

// AdvanceParcelStatus converts echo context to params.
func (w *ServerInterfaceWrapper) AdvanceParcelStatus(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "id" -------------
	var id ParcelId

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{"admin", "rider"})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.AdvanceParcelStatus(ctx, id)
	return err
}

// ListPayments converts echo context to params.
func (w *ServerInterfaceWrapper) ListPayments(ctx echo.Context) error {
	var err error

	ctx.Set(BearerAuthScopes, []string{})

	// Parameter object where we will unmarshal all parameters from the context
	var params ListPaymentsParams
	// ------------- Optional query parameter "email" -------------

	err = runtime.BindQueryParameter("form", true, false, "email", ctx.QueryParams(), &params.Email)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter email: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListPayments(ctx, params)
	return err
}

// RecordPayment converts echo context to params.
func (w *ServerInterfaceWrapper) RecordPayment(ctx echo.Context) error {
	var err error

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.RecordPayment(ctx)
	return err
}

// ListRiderParcels converts echo context to params.
func (w *ServerInterfaceWrapper) ListRiderParcels(ctx echo.Context) error {
	var err error

	ctx.Set(BearerAuthScopes, []string{"rider"})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListRiderParcels(ctx)
	return err
}

// ListCompletedRiderParcels converts echo context to params.
func (w *ServerInterfaceWrapper) ListCompletedRiderParcels(ctx echo.Context) error {
	var err error

	ctx.Set(BearerAuthScopes, []string{"rider"})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListCompletedRiderParcels(ctx)
	return err
}

// ListRiders converts echo context to params.
func (w *ServerInterfaceWrapper) ListRiders(ctx echo.Context) error {
	var err error

	ctx.Set(BearerAuthScopes, []string{"admin"})

	// Parameter object where we will unmarshal all parameters from the context
	var params ListRidersParams
	// ------------- Optional query parameter "status" -------------

	err = runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListRiders(ctx, params)
	return err
}

// ApplyRider converts echo context to params.
func (w *ServerInterfaceWrapper) ApplyRider(ctx echo.Context) error {
	var err error

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ApplyRider(ctx)
	return err
}

// ListAvailableRiders converts echo context to params.
func (w *ServerInterfaceWrapper) ListAvailableRiders(ctx echo.Context) error {
	var err error

	ctx.Set(BearerAuthScopes, []string{"admin"})

	// Parameter object where we will unmarshal all parameters from the context
	var params ListAvailableRidersParams
	// ------------- Required query parameter "district" -------------

	err = runtime.BindQueryParameter("form", true, true, "district", ctx.QueryParams(), &params.District)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter district: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListAvailableRiders(ctx, params)
	return err
}

// ReviewRider converts echo context to params.
func (w *ServerInterfaceWrapper) ReviewRider(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "id" -------------
	var id openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{"admin"})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ReviewRider(ctx, id)
	return err
}

// AddTrackingEvent converts echo context to params.
func (w *ServerInterfaceWrapper) AddTrackingEvent(ctx echo.Context) error {
	var err error

	ctx.Set(BearerAuthScopes, []string{"admin", "rider"})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.AddTrackingEvent(ctx)
	return err
}

// ListTrackingEvents converts echo context to params.
func (w *ServerInterfaceWrapper) ListTrackingEvents(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "trackingNumber" -------------
	var trackingNumber string

	err = runtime.BindStyledParameterWithOptions("simple", "trackingNumber", ctx.Param("trackingNumber"), &trackingNumber, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter trackingNumber: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListTrackingEvents(ctx, trackingNumber)
	return err
}

// RegisterUser converts echo context to params.
func (w *ServerInterfaceWrapper) RegisterUser(ctx echo.Context) error {
	var err error

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.RegisterUser(ctx)
	return err
}

// GetUserRole converts echo context to params.
func (w *ServerInterfaceWrapper) GetUserRole(ctx echo.Context) error {
	var err error

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetUserRole(ctx)
	return err
}

// UpdateUserRole converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateUserRole(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "id" -------------
	var id openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{"admin"})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.UpdateUserRole(ctx, id)
	return err
}

// This is a simple interface which specifies echo.Route addition functions which
// are present on both echo.Echo and echo.Group, since we want to allow using
// either of them for path registration
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// Registers handlers, and prepends BaseURL to the paths, so that the paths
// can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {

	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.POST(baseURL+"/create-payment-intent", wrapper.CreatePaymentIntent)
	router.GET(baseURL+"/parcels", wrapper.ListParcels)
	router.POST(baseURL+"/parcels", wrapper.CreateParcel)
	router.GET(baseURL+"/parcels/status-counts", wrapper.GetParcelStatusCounts)
	router.DELETE(baseURL+"/parcels/:id", wrapper.DeleteParcel)
	router.GET(baseURL+"/parcels/:id", wrapper.GetParcel)
	router.PATCH(baseURL+"/parcels/:id/assign-rider", wrapper.AssignRider)
	router.PATCH(baseURL+"/parcels/:id/cashOut", wrapper.CashOutParcel)
	router.PATCH(baseURL+"/parcels/:id/status", wrapper.AdvanceParcelStatus)
	router.GET(baseURL+"/payments", wrapper.ListPayments)
	router.POST(baseURL+"/payments", wrapper.RecordPayment)
	router.GET(baseURL+"/rider/parcels", wrapper.ListRiderParcels)
	router.GET(baseURL+"/rider/parcels/completed", wrapper.ListCompletedRiderParcels)
	router.GET(baseURL+"/riders", wrapper.ListRiders)
	router.POST(baseURL+"/riders", wrapper.ApplyRider)
	router.GET(baseURL+"/riders/available", wrapper.ListAvailableRiders)
	router.PATCH(baseURL+"/riders/:id/status", wrapper.ReviewRider)
	router.POST(baseURL+"/tracking", wrapper.AddTrackingEvent)
	router.GET(baseURL+"/tracking/:trackingNumber", wrapper.ListTrackingEvents)
	router.POST(baseURL+"/users", wrapper.RegisterUser)
	router.GET(baseURL+"/users/role", wrapper.GetUserRole)
	router.PATCH(baseURL+"/users/:id/role", wrapper.UpdateUserRole)

}

//go:embed openapi.yaml
var swaggerSpec []byte

// GetSwagger returns the OpenAPI document embedded in this package. Each call
// parses a fresh copy, so callers may modify the result.
func GetSwagger() (swagger *openapi3.T, err error) {
	loader := openapi3.NewLoader()
	loader.IsExternalRefsAllowed = false
	loader.ReadFromURIFunc = func(loader *openapi3.Loader, url *url.URL) ([]byte, error) {
		pathToFile := path.Clean(url.String())
		return nil, fmt.Errorf("external reference %q is not allowed", pathToFile)
	}

	swagger, err = loader.LoadFromData(swaggerSpec)
	if err != nil {
		return nil, fmt.Errorf("error loading Swagger: %w", err)
	}
	if err = swagger.Validate(loader.Context); err != nil {
		return nil, fmt.Errorf("error validating Swagger: %w", err)
	}
	return swagger, nil
}
