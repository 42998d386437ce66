// Package docs holds the OpenAPI document served under /swagger. It is
// maintained by hand in the layout swag init emits.
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
        "/expenses": {
            "get": {
                "description": "Sort by created_date, expense_date or total_amount. A leading \"-\" sorts descending with nulls last; ascending puts nulls first.",
                "produces": ["application/json"],
                "tags": ["expenses"],
                "summary": "List expenses",
                "parameters": [
                    {"type": "string", "default": "-created_date", "description": "Sort spec", "name": "sort", "in": "query"},
                    {"minimum": 0, "type": "integer", "description": "Maximum number of expenses", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Expense"}}},
                    "400": {"description": "Invalid limit", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Server error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["expenses"],
                "summary": "Create an expense",
                "parameters": [
                    {"description": "Expense details", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.ExpenseRequest"}}
                ],
                "responses": {
                    "201": {"description": "Expense created", "schema": {"$ref": "#/definitions/models.Expense"}},
                    "400": {"description": "Payer or participant does not exist", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "422": {"description": "Malformed body", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Server error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/expenses/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["expenses"],
                "summary": "Get an expense",
                "parameters": [
                    {"type": "integer", "description": "Expense ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Expense"}},
                    "400": {"description": "Invalid ID", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Expense not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            },
            "put": {
                "description": "Overwrites every field except created_date and swaps the participant set in one transaction.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["expenses"],
                "summary": "Replace an expense",
                "parameters": [
                    {"type": "integer", "description": "Expense ID", "name": "id", "in": "path", "required": true},
                    {"description": "Expense details", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.ExpenseRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Expense"}},
                    "400": {"description": "Invalid ID, payer or participants", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Expense not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "422": {"description": "Malformed body", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            },
            "delete": {
                "tags": ["expenses"],
                "summary": "Delete an expense",
                "parameters": [
                    {"type": "integer", "description": "Expense ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "Expense deleted"},
                    "400": {"description": "Invalid ID", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Expense not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/people": {
            "get": {
                "produces": ["application/json"],
                "tags": ["people"],
                "summary": "List people",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Person"}}},
                    "500": {"description": "Server error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["people"],
                "summary": "Create a person",
                "parameters": [
                    {"description": "Person details", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.PersonRequest"}}
                ],
                "responses": {
                    "201": {"description": "Person created", "schema": {"$ref": "#/definitions/models.Person"}},
                    "422": {"description": "Malformed body", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Server error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/people/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["people"],
                "summary": "Get a person",
                "parameters": [
                    {"type": "integer", "description": "Person ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Person"}},
                    "400": {"description": "Invalid ID", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Person not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            },
            "put": {
                "description": "Overwrites every field of the person. There is no partial update.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["people"],
                "summary": "Replace a person",
                "parameters": [
                    {"type": "integer", "description": "Person ID", "name": "id", "in": "path", "required": true},
                    {"description": "Person details", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.PersonRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Person"}},
                    "400": {"description": "Invalid ID", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Person not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "422": {"description": "Malformed body", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            },
            "delete": {
                "tags": ["people"],
                "summary": "Delete a person",
                "parameters": [
                    {"type": "integer", "description": "Person ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "Person deleted"},
                    "400": {"description": "Person is used in one or more expenses", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Person not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handlers.ErrorDetail": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"$ref": "#/definitions/handlers.ErrorDetail"}
            }
        },
        "handlers.ExpenseRequest": {
            "type": "object",
            "required": ["paid_by", "participants", "title", "total_amount"],
            "properties": {
                "category": {"type": "string", "maxLength": 100},
                "currency": {"type": "string"},
                "description": {"type": "string"},
                "expense_date": {"type": "string", "example": "2024-01-15"},
                "paid_by": {"type": "integer"},
                "participants": {"type": "array", "items": {"$ref": "#/definitions/handlers.ParticipantRequest"}},
                "split_method": {"type": "string", "maxLength": 50},
                "title": {"type": "string", "maxLength": 200},
                "total_amount": {"type": "number"}
            }
        },
        "handlers.ParticipantRequest": {
            "type": "object",
            "required": ["amount_owed"],
            "properties": {
                "amount_owed": {"type": "number"},
                "is_settled": {"type": "boolean"},
                "person_id": {"type": "integer"}
            }
        },
        "handlers.PersonRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {
                "avatar_color": {"type": "string"},
                "email": {"type": "string"},
                "name": {"type": "string", "maxLength": 200},
                "phone": {"type": "string", "maxLength": 50}
            }
        },
        "models.Expense": {
            "type": "object",
            "properties": {
                "category": {"type": "string"},
                "created_date": {"type": "string"},
                "currency": {"type": "string"},
                "description": {"type": "string"},
                "expense_date": {"type": "string", "example": "2024-01-15"},
                "id": {"type": "integer"},
                "paid_by": {"type": "integer"},
                "participants": {"type": "array", "items": {"$ref": "#/definitions/models.ExpenseParticipant"}},
                "split_method": {"type": "string"},
                "title": {"type": "string"},
                "total_amount": {"type": "number"}
            }
        },
        "models.ExpenseParticipant": {
            "type": "object",
            "properties": {
                "amount_owed": {"type": "number"},
                "is_settled": {"type": "boolean"},
                "person_id": {"type": "integer"}
            }
        },
        "models.Person": {
            "type": "object",
            "properties": {
                "avatar_color": {"type": "string"},
                "email": {"type": "string"},
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "phone": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8000",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Splitledger API",
	Description:      "Shared-expense ledger: people, expenses and the participant shares that split them.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
