package docs

import (
	"github.com/swaggo/swag"
)

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "license": {
            "name": "MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/players": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Players"],
                "summary": "List players",
                "description": "Returns every player ordered by name ascending",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/PlayerListResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Players"],
                "summary": "Add a player",
                "parameters": [
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/PlayerInput"}}
                ],
                "responses": {
                    "201": {"description": "Player added", "schema": {"$ref": "#/definitions/PlayerResponse"}},
                    "400": {"description": "First validation error", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/players/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Players"],
                "summary": "Get a player",
                "parameters": [
                    {"type": "string", "in": "path", "name": "id", "required": true, "description": "Player ID"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/PlayerResponse"}},
                    "404": {"description": "Player not found", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Players"],
                "summary": "Update a player",
                "description": "Replaces the supplied fields only; at least one of name, age, marketValue is required",
                "parameters": [
                    {"type": "string", "in": "path", "name": "id", "required": true, "description": "Player ID"},
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/PlayerPatch"}}
                ],
                "responses": {
                    "200": {"description": "Player updated", "schema": {"$ref": "#/definitions/PlayerResponse"}},
                    "400": {"description": "First validation error", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "404": {"description": "Player not found", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["Players"],
                "summary": "Remove a player",
                "parameters": [
                    {"type": "string", "in": "path", "name": "id", "required": true, "description": "Player ID"}
                ],
                "responses": {
                    "200": {"description": "Player removed", "schema": {"$ref": "#/definitions/MessageResponse"}},
                    "404": {"description": "Player not found", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "Player": {
            "type": "object",
            "properties": {
                "id": {"type": "string", "example": "0b9f6a52-6d3c-4c53-9a59-5f0c1c7e2a11"},
                "name": {"type": "string", "example": "Jude Bellingham"},
                "age": {"type": "number", "example": 21},
                "marketValue": {"type": "number", "example": 180},
                "createdAt": {"type": "string", "format": "date-time"},
                "updatedAt": {"type": "string", "format": "date-time"}
            }
        },
        "PlayerInput": {
            "type": "object",
            "required": ["name", "age", "marketValue"],
            "properties": {
                "name": {"type": "string", "minLength": 3},
                "age": {"type": "number", "minimum": 16},
                "marketValue": {"type": "number", "minimum": 1, "description": "Millions"}
            }
        },
        "PlayerPatch": {
            "type": "object",
            "properties": {
                "name": {"type": "string", "minLength": 3},
                "age": {"type": "number", "minimum": 16},
                "marketValue": {"type": "number", "minimum": 1, "description": "Millions"}
            }
        },
        "PlayerResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": true},
                "message": {"type": "string"},
                "data": {
                    "type": "object",
                    "properties": {"player": {"$ref": "#/definitions/Player"}}
                }
            }
        },
        "PlayerListResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": true},
                "data": {
                    "type": "object",
                    "properties": {"players": {"type": "array", "items": {"$ref": "#/definitions/Player"}}}
                }
            }
        },
        "MessageResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": true},
                "message": {"type": "string", "example": "Player removed"}
            }
        },
        "ErrorResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": false},
                "error": {"type": "string", "example": "Player not found"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Rosterhub Player API",
	Description:      "CRUD endpoints for player records",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
