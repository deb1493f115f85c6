// Package docs registers the OpenAPI document served under /swagger.
// Regenerate it with `swag init -g cmd/app/main.go` after changing handler annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "securityDefinitions": {
        "ApiKeyAuth": {"type": "apiKey", "name": "X-API-Key", "in": "header"}
    },
    "paths": {
        "/healthz": {"get": {"tags": ["health"], "summary": "Liveness check", "produces": ["application/json"],
            "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.HealthResponse"}}}}},
        "/readyz": {"get": {"tags": ["health"], "summary": "Readiness check", "produces": ["application/json"],
            "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.HealthResponse"}},
                          "503": {"description": "Store unreachable", "schema": {"$ref": "#/definitions/handler.HealthResponse"}}}}},
        "/version": {"get": {"tags": ["health"], "summary": "Build information", "produces": ["application/json"],
            "responses": {"200": {"description": "OK"}}}},
        "/api/v1/catalog": {"get": {"tags": ["farms"], "summary": "Crop catalog", "produces": ["application/json"],
            "responses": {"200": {"description": "OK"}}}},
        "/api/v1/farms": {"get": {"tags": ["farms"], "summary": "Ranked crops",
            "description": "Eligible crops first, then by profit per hour. Ties keep catalog order.",
            "produces": ["application/json"],
            "parameters": [{"type": "string", "description": "Profile", "name": "X-Profile-ID", "in": "header"},
                           {"type": "integer", "description": "Return only the first N crops", "name": "limit", "in": "query"}],
            "responses": {"200": {"description": "OK"}, "400": {"description": "Invalid profile", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}}}},
        "/api/v1/farms/{name}": {"get": {"tags": ["farms"], "summary": "Crop detail",
            "description": "return_on_investment is null and roi_defined false when the planting cost is zero",
            "produces": ["application/json"],
            "parameters": [{"type": "string", "description": "Crop name", "name": "name", "in": "path", "required": true},
                           {"type": "string", "description": "Profile", "name": "X-Profile-ID", "in": "header"}],
            "responses": {"200": {"description": "OK"}, "404": {"description": "Unknown crop", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}}}},
        "/api/v1/preferences": {
            "get": {"tags": ["preferences"], "summary": "Get preferences", "produces": ["application/json"],
                "parameters": [{"type": "string", "description": "Profile", "name": "X-Profile-ID", "in": "header"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Preferences"}}}},
            "patch": {"tags": ["preferences"], "summary": "Update preferences", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"type": "string", "description": "Profile", "name": "X-Profile-ID", "in": "header"},
                               {"description": "Fields to change", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.PreferencesUpdate"}}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Validation failed"}}}},
        "/api/v1/prices": {"get": {"tags": ["prices"], "summary": "Get prices", "produces": ["application/json"],
            "parameters": [{"type": "string", "description": "Profile", "name": "X-Profile-ID", "in": "header"}],
            "responses": {"200": {"description": "OK"}}}},
        "/api/v1/prices/{name}": {"put": {"tags": ["prices"], "summary": "Set crop price", "consumes": ["application/json"], "produces": ["application/json"],
            "parameters": [{"type": "string", "description": "Crop name", "name": "name", "in": "path", "required": true},
                           {"type": "string", "description": "Profile", "name": "X-Profile-ID", "in": "header"},
                           {"description": "Price as a number or text", "name": "request", "in": "body", "required": true, "schema": {"type": "object"}}],
            "responses": {"200": {"description": "OK"}, "404": {"description": "Unknown crop", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}}}}
    },
    "definitions": {
        "handler.ErrorResponse": {"type": "object", "properties": {"error": {"type": "string"}}},
        "handler.HealthResponse": {"type": "object", "properties": {"status": {"type": "string"}, "message": {"type": "string"}}},
        "domain.Preferences": {"type": "object", "properties": {
            "available_effort": {"type": "number"},
            "character_level": {"type": "integer"},
            "land_size": {"type": "string", "enum": ["small", "medium", "large"]},
            "prices": {"type": "object", "additionalProperties": {"type": "number"}}}},
        "domain.PreferencesUpdate": {"type": "object", "properties": {
            "available_effort": {"type": "number", "minimum": 0},
            "character_level": {"type": "integer", "minimum": 0},
            "land_size": {"type": "string", "enum": ["small", "medium", "large"]}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "FarmCalc API",
	Description:      "Crop profitability planner: ranks crops by profit per hour for a player's effort, level and land.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
