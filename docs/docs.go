// Package docs holds the OpenAPI description served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/auth/token": {
            "post": {
                "description": "Issues a bearer token valid for 24 hours for the given username.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Authentication"],
                "summary": "Generate a JWT bearer token",
                "parameters": [
                    {"description": "Token request", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.TokenRequest"}}
                ],
                "responses": {
                    "200": {"description": "Token successfully generated", "schema": {"$ref": "#/definitions/dto.TokenResponse"}},
                    "400": {"description": "Invalid request parameters", "schema": {"$ref": "#/definitions/dto.ExceptionDetails"}},
                    "409": {"description": "Malformed request body", "schema": {"$ref": "#/definitions/dto.ExceptionDetails"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.ExceptionDetails"}}
                }
            }
        },
        "/api/customers": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Looks a customer up by CPF, formatted or digits only.",
                "produces": ["application/json"],
                "tags": ["Customers"],
                "summary": "Find a customer by CPF",
                "parameters": [
                    {"type": "string", "description": "Customer CPF", "name": "cpf", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "Customer details retrieved", "schema": {"$ref": "#/definitions/dto.CustomerView"}},
                    "400": {"description": "Missing or invalid CPF", "schema": {"$ref": "#/definitions/dto.ExceptionDetails"}},
                    "404": {"description": "Customer not found", "schema": {"$ref": "#/definitions/dto.ExceptionDetails"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Registers a customer with address and income. CPF and email must be unique.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Customers"],
                "summary": "Register a new customer",
                "parameters": [
                    {"description": "Customer registration request", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CustomerDto"}}
                ],
                "responses": {
                    "201": {"description": "Customer successfully registered", "schema": {"$ref": "#/definitions/dto.CustomerView"}},
                    "400": {"description": "Invalid request payload", "schema": {"$ref": "#/definitions/dto.ExceptionDetails"}},
                    "409": {"description": "Malformed body, or CPF or email already registered", "schema": {"$ref": "#/definitions/dto.ExceptionDetails"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.ExceptionDetails"}}
                }
            },
            "patch": {
                "security": [{"BearerAuth": []}],
                "description": "Changes first name, last name, income and address. CPF, email and password cannot be changed.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Customers"],
                "summary": "Update a customer",
                "parameters": [
                    {"minimum": 1, "type": "integer", "description": "Customer ID", "name": "customerId", "in": "query", "required": true},
                    {"description": "Customer update request", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CustomerUpdateDto"}}
                ],
                "responses": {
                    "200": {"description": "Customer updated", "schema": {"$ref": "#/definitions/dto.CustomerView"}},
                    "400": {"description": "Invalid request payload", "schema": {"$ref": "#/definitions/dto.ExceptionDetails"}},
                    "404": {"description": "Customer not found", "schema": {"$ref": "#/definitions/dto.ExceptionDetails"}},
                    "409": {"description": "Malformed body or immutable field supplied", "schema": {"$ref": "#/definitions/dto.ExceptionDetails"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.ExceptionDetails"}}
                }
            }
        },
        "/api/customers/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Retrieves a customer by id.",
                "produces": ["application/json"],
                "tags": ["Customers"],
                "summary": "Retrieve customer details",
                "parameters": [
                    {"minimum": 1, "type": "integer", "description": "Customer ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Customer details retrieved", "schema": {"$ref": "#/definitions/dto.CustomerView"}},
                    "400": {"description": "Invalid customer ID", "schema": {"$ref": "#/definitions/dto.ExceptionDetails"}},
                    "404": {"description": "Customer not found", "schema": {"$ref": "#/definitions/dto.ExceptionDetails"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.ExceptionDetails"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "description": "Deletes a customer together with all of their credits.",
                "tags": ["Customers"],
                "summary": "Delete a customer",
                "parameters": [
                    {"minimum": 1, "type": "integer", "description": "Customer ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "Customer deleted"},
                    "400": {"description": "Invalid customer ID", "schema": {"$ref": "#/definitions/dto.ExceptionDetails"}},
                    "404": {"description": "Customer not found", "schema": {"$ref": "#/definitions/dto.ExceptionDetails"}}
                }
            }
        },
        "/api/credits": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Lists every credit of a customer in issue order. An unknown customer yields an empty list.",
                "produces": ["application/json"],
                "tags": ["Credits"],
                "summary": "List a customer's credits",
                "parameters": [
                    {"minimum": 1, "type": "integer", "description": "Customer ID", "name": "customerId", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "Credits of the customer", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.CreditSummaryView"}}},
                    "400": {"description": "Missing or invalid customer ID", "schema": {"$ref": "#/definitions/dto.ExceptionDetails"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Issues a credit to an existing customer. The first installment must fall within three months.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Credits"],
                "summary": "Issue a credit",
                "parameters": [
                    {"description": "Credit request", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreditDto"}}
                ],
                "responses": {
                    "201": {"description": "Credit issued", "schema": {"$ref": "#/definitions/dto.CreditView"}},
                    "400": {"description": "Invalid request payload", "schema": {"$ref": "#/definitions/dto.ExceptionDetails"}},
                    "404": {"description": "Customer not found", "schema": {"$ref": "#/definitions/dto.ExceptionDetails"}},
                    "409": {"description": "Malformed body or first installment date outside the allowed window", "schema": {"$ref": "#/definitions/dto.ExceptionDetails"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.ExceptionDetails"}}
                }
            }
        },
        "/api/credits/{creditCode}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Retrieves a credit by its code. When customerId is given, the credit must belong to that customer.",
                "produces": ["application/json"],
                "tags": ["Credits"],
                "summary": "Retrieve a credit",
                "parameters": [
                    {"type": "string", "format": "uuid", "description": "Credit code", "name": "creditCode", "in": "path", "required": true},
                    {"type": "integer", "description": "Owning customer ID", "name": "customerId", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Credit retrieved", "schema": {"$ref": "#/definitions/dto.CreditView"}},
                    "400": {"description": "Invalid credit code or customer ID", "schema": {"$ref": "#/definitions/dto.ExceptionDetails"}},
                    "404": {"description": "Credit not found", "schema": {"$ref": "#/definitions/dto.ExceptionDetails"}},
                    "409": {"description": "Credit belongs to another customer", "schema": {"$ref": "#/definitions/dto.ExceptionDetails"}}
                }
            }
        }
    },
    "definitions": {
        "dto.CreditDto": {
            "type": "object",
            "required": ["creditValue", "dayFirstInstallment"],
            "properties": {
                "creditValue": {"type": "number", "example": 1500.00},
                "customerId": {"type": "integer", "example": 1},
                "dayFirstInstallment": {"type": "string", "example": "2026-12-01"},
                "numberOfInstallments": {"type": "integer", "example": 12}
            }
        },
        "dto.CreditSummaryView": {
            "type": "object",
            "properties": {
                "creditCode": {"type": "string", "format": "uuid"},
                "creditValue": {"type": "number", "example": 1500.00},
                "numberOfInstallments": {"type": "integer", "example": 12}
            }
        },
        "dto.CreditView": {
            "type": "object",
            "properties": {
                "creditCode": {"type": "string", "format": "uuid"},
                "creditValue": {"type": "number", "example": 1500.00},
                "dayFirstInstallment": {"type": "string", "example": "2026-12-01"},
                "emailCustomer": {"type": "string", "example": "ana@mail.com"},
                "incomeCustomer": {"type": "number", "example": 4500.00},
                "numberOfInstallments": {"type": "integer", "example": 12},
                "status": {"type": "string", "example": "IN_PROGRESS"}
            }
        },
        "dto.CustomerDto": {
            "type": "object",
            "required": ["cpf", "email", "firstName", "income", "lastName", "password", "street", "zipCode"],
            "properties": {
                "cpf": {"type": "string", "example": "52998224725"},
                "email": {"type": "string", "maxLength": 255, "example": "ana@mail.com"},
                "firstName": {"type": "string", "maxLength": 255, "example": "Ana"},
                "income": {"type": "number", "example": 4500.00},
                "lastName": {"type": "string", "maxLength": 255, "example": "Silva"},
                "password": {"type": "string", "maxLength": 72, "example": "s3cret"},
                "street": {"type": "string", "maxLength": 255, "example": "Rua Augusta"},
                "zipCode": {"type": "string", "maxLength": 20, "example": "01001000"}
            }
        },
        "dto.CustomerUpdateDto": {
            "type": "object",
            "required": ["firstName", "income", "lastName", "street", "zipCode"],
            "properties": {
                "firstName": {"type": "string", "maxLength": 255, "example": "Ana"},
                "income": {"type": "number", "example": 5000.00},
                "lastName": {"type": "string", "maxLength": 255, "example": "Souza"},
                "street": {"type": "string", "maxLength": 255, "example": "Av. Rio Branco"},
                "zipCode": {"type": "string", "maxLength": 20, "example": "20040002"}
            }
        },
        "dto.CustomerView": {
            "type": "object",
            "properties": {
                "cpf": {"type": "string", "example": "52998224725"},
                "email": {"type": "string", "example": "ana@mail.com"},
                "firstName": {"type": "string", "example": "Ana"},
                "id": {"type": "integer", "example": 1},
                "income": {"type": "number", "example": 4500.00},
                "lastName": {"type": "string", "example": "Silva"},
                "street": {"type": "string", "example": "Rua Augusta"},
                "zipCode": {"type": "string", "example": "01001000"}
            }
        },
        "dto.ExceptionDetails": {
            "type": "object",
            "properties": {
                "details": {"type": "object", "additionalProperties": {"type": "string"}},
                "exception": {"type": "string", "example": "ValidationError"},
                "status": {"type": "integer", "example": 400},
                "timestamp": {"type": "string"},
                "title": {"type": "string", "example": "Bad Request! Consult the documentation"}
            }
        },
        "dto.TokenRequest": {
            "type": "object",
            "required": ["username"],
            "properties": {
                "username": {"type": "string", "example": "admin"}
            }
        },
        "dto.TokenResponse": {
            "type": "object",
            "properties": {
                "token": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Credit Application API",
	Description:      "Customer registration and credit issuance.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
