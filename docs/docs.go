// Package docs registers the OpenAPI description served at /swagger/*.
// Regenerate with: swag init -g cmd/server/main.go -o docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/auth/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Register a new user",
                "parameters": [{"description": "User registration details", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.registerRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.registerResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Login",
                "parameters": [{"description": "Login credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.loginRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.loginResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/auth/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Current identity",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.meResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/api/vendors": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["vendors"],
                "summary": "List vendors",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.vendorResponse"}}}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["vendors"],
                "summary": "Create a vendor",
                "parameters": [{"description": "Vendor", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.createVendorRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.vendorResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/api/vendors/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["vendors"],
                "summary": "Get a vendor",
                "parameters": [{"type": "integer", "description": "Vendor id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.vendorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/api/rules": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["rules"],
                "summary": "List depreciation rules",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.ruleResponse"}}}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["rules"],
                "summary": "Create a depreciation rule",
                "parameters": [{"description": "Depreciation rule", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.createRuleRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.ruleResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/api/assets": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["assets"],
                "summary": "List assets",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.assetResponse"}}}}
            }
        },
        "/api/assets/{vendorId}/{ruleId}": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["assets"],
                "summary": "Register an asset",
                "parameters": [
                    {"type": "integer", "description": "Vendor id", "name": "vendorId", "in": "path", "required": true},
                    {"type": "integer", "description": "Depreciation rule id", "name": "ruleId", "in": "path", "required": true},
                    {"description": "Asset", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.createAssetRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.assetResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/api/assets/status/{status}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["assets"],
                "summary": "List assets by status",
                "parameters": [{"type": "string", "description": "ACTIVE, MAINTENANCE, TRANSFERRED or DISPOSED", "name": "status", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.assetResponse"}}}}
            }
        },
        "/api/assets/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["assets"],
                "summary": "Get an asset with its current book value",
                "parameters": [{"type": "integer", "description": "Asset id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.assetDetailResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/api/assets/{id}/audit": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["assets"],
                "summary": "Audit trail of an asset (ADMIN)",
                "parameters": [
                    {"type": "integer", "description": "Asset id", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "description": "Maximum events, newest first (default 100)", "name": "limit", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.errorResponse"}}}
            }
        },
        "/api/events/{assetId}": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "Log a lifecycle event",
                "parameters": [
                    {"type": "integer", "description": "Asset id", "name": "assetId", "in": "path", "required": true},
                    {"description": "Lifecycle event", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.logEventRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.lifecycleEventResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/api/events/asset/{assetId}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "List an asset's lifecycle events, newest first",
                "parameters": [{"type": "integer", "description": "Asset id", "name": "assetId", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.lifecycleEventResponse"}}}}
            }
        },
        "/api/disposals": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["disposals"],
                "summary": "List disposals",
                "parameters": [{"type": "integer", "description": "Only disposals approved by this user id", "name": "approvedBy", "in": "query"}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.disposalResponse"}}}}
            }
        },
        "/api/disposals/request/{assetId}": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["disposals"],
                "summary": "Request disposal of an asset",
                "parameters": [
                    {"type": "integer", "description": "Asset id", "name": "assetId", "in": "path", "required": true},
                    {"type": "string", "description": "Replays the first result for 24h", "name": "Idempotency-Key", "in": "header"},
                    {"description": "Disposal", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.requestDisposalRequest"}}
                ],
                "responses": {
                    "200": {"description": "Replayed request", "schema": {"$ref": "#/definitions/handler.disposalResponse"}},
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.disposalResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "409": {"description": "Idempotency-Key reused for another asset or still in progress", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/api/disposals/approve/{disposalId}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["disposals"],
                "summary": "Approve a disposal (ADMIN)",
                "parameters": [{"type": "integer", "description": "Disposal id", "name": "disposalId", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.disposalResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/api/users/{id}/roles/{role}": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Grant a role (ADMIN)",
                "parameters": [
                    {"type": "integer", "description": "User id", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "Role name", "name": "role", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.userResponse"}}}
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Revoke a role (ADMIN)",
                "parameters": [
                    {"type": "integer", "description": "User id", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "Role name", "name": "role", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.userResponse"}}}
            }
        }
    },
    "definitions": {
        "handler.errorResponse": {"type": "object", "properties": {"error": {"type": "string"}}},
        "handler.registerRequest": {"type": "object", "properties": {"email": {"type": "string"}, "password": {"type": "string"}, "name": {"type": "string"}}},
        "handler.registerResponse": {"type": "object", "properties": {"id": {"type": "integer"}, "email": {"type": "string"}, "name": {"type": "string"}}},
        "handler.loginRequest": {"type": "object", "properties": {"email": {"type": "string"}, "password": {"type": "string"}}},
        "handler.loginResponse": {"type": "object", "properties": {"token": {"type": "string"}, "userId": {"type": "integer"}, "email": {"type": "string"}, "roles": {"type": "array", "items": {"type": "string"}}}},
        "handler.meResponse": {"type": "object", "properties": {"userId": {"type": "integer"}, "email": {"type": "string"}, "roles": {"type": "array", "items": {"type": "string"}}, "expiresAt": {"type": "string"}}},
        "handler.userResponse": {"type": "object", "properties": {"id": {"type": "integer"}, "email": {"type": "string"}, "name": {"type": "string"}, "roles": {"type": "array", "items": {"type": "string"}}}},
        "handler.createVendorRequest": {"type": "object", "properties": {"vendorName": {"type": "string"}, "contactEmail": {"type": "string"}, "phone": {"type": "string"}}},
        "handler.vendorResponse": {"type": "object", "properties": {"id": {"type": "integer"}, "vendorName": {"type": "string"}, "contactEmail": {"type": "string"}, "phone": {"type": "string"}, "createdAt": {"type": "string"}}},
        "handler.createRuleRequest": {"type": "object", "properties": {"ruleName": {"type": "string"}, "method": {"type": "string", "enum": ["STRAIGHT_LINE", "DECLINING_BALANCE"]}, "usefulLifeYears": {"type": "integer"}, "salvageValue": {"type": "number"}}},
        "handler.ruleResponse": {"type": "object", "properties": {"id": {"type": "integer"}, "ruleName": {"type": "string"}, "method": {"type": "string"}, "usefulLifeYears": {"type": "integer"}, "salvageValue": {"type": "number"}, "createdAt": {"type": "string"}}},
        "handler.createAssetRequest": {"type": "object", "properties": {"assetTag": {"type": "string"}, "assetName": {"type": "string"}, "purchaseDate": {"type": "string", "example": "2024-01-15"}, "purchaseCost": {"type": "number"}}},
        "handler.assetResponse": {"type": "object", "properties": {"id": {"type": "integer"}, "assetTag": {"type": "string"}, "assetName": {"type": "string"}, "purchaseDate": {"type": "string"}, "purchaseCost": {"type": "number"}, "status": {"type": "string"}, "vendorId": {"type": "integer"}, "depreciationRuleId": {"type": "integer"}, "createdAt": {"type": "string"}}},
        "handler.assetDetailResponse": {"type": "object", "properties": {"id": {"type": "integer"}, "assetTag": {"type": "string"}, "assetName": {"type": "string"}, "purchaseDate": {"type": "string"}, "purchaseCost": {"type": "number"}, "status": {"type": "string"}, "vendorId": {"type": "integer"}, "depreciationRuleId": {"type": "integer"}, "createdAt": {"type": "string"}, "bookValue": {"type": "number"}, "depreciationRule": {"$ref": "#/definitions/handler.ruleResponse"}}},
        "handler.logEventRequest": {"type": "object", "properties": {"eventType": {"type": "string"}, "eventDescription": {"type": "string"}, "eventDate": {"type": "string", "example": "2024-02-01"}}},
        "handler.lifecycleEventResponse": {"type": "object", "properties": {"id": {"type": "integer"}, "assetId": {"type": "integer"}, "eventType": {"type": "string"}, "eventDescription": {"type": "string"}, "eventDate": {"type": "string"}, "loggedAt": {"type": "string"}}},
        "handler.requestDisposalRequest": {"type": "object", "properties": {"disposalMethod": {"type": "string"}, "disposalValue": {"type": "number"}, "disposalDate": {"type": "string", "example": "2024-06-30"}}},
        "handler.disposalResponse": {"type": "object", "properties": {"id": {"type": "integer"}, "assetId": {"type": "integer"}, "disposalMethod": {"type": "string"}, "disposalValue": {"type": "number"}, "disposalDate": {"type": "string"}, "approvedBy": {"type": "integer"}, "approvedAt": {"type": "string"}, "createdAt": {"type": "string"}}}
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Asset Management API",
	Description:      "Vendors, assets, depreciation, lifecycle events and disposals behind bearer-token auth.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
