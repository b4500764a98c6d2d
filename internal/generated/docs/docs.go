// Package docs registers the API document with swag so echo-swagger can
// serve it under /swagger/.
package docs

import (
	"zapshift/internal/generated/servers"

	"github.com/swaggo/swag"
)

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "ZapShift parcel delivery API",
	Description:      "Parcels, riders, payments and live tracking.",
	InfoInstanceName: "swagger",
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	if doc, err := servers.GetSwagger(); err == nil {
		if raw, err := doc.MarshalJSON(); err == nil {
			SwaggerInfo.SwaggerTemplate = string(raw)
		}
	}
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
