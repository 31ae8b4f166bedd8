// Package api holds the swagger registration for the caseops API. The
// template mirrors the annotations in internal/handlers; regenerate with
// `swag init -g cmd/server/main.go -o docs/api` after route changes.
package api

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
    "paths": {
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Service health",
                "responses": {
                    "200": {"description": "OK"},
                    "503": {"description": "Service Unavailable"}
                }
            }
        },
        "/installations": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Installations"],
                "summary": "List installation cases",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Installations"],
                "summary": "Create an installation case",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}
            }
        },
        "/installations/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Installations"],
                "summary": "Get one installation case",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Installations"],
                "summary": "Update an installation case",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["Installations"],
                "summary": "Delete an installation case",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/maintenance": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Maintenance"],
                "summary": "List maintenance cases",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Maintenance"],
                "summary": "Create a maintenance case",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}
            }
        },
        "/maintenance/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Maintenance"],
                "summary": "Get one maintenance case",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Maintenance"],
                "summary": "Update a maintenance case",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["Maintenance"],
                "summary": "Delete a maintenance case",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/brands": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Lookups"],
                "summary": "List brands",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Lookups"],
                "summary": "Create a brand",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}
            }
        },
        "/brands/{id}": {
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Lookups"],
                "summary": "Update a brand",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["Lookups"],
                "summary": "Delete a brand",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/device-types": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Lookups"],
                "summary": "List device types",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Lookups"],
                "summary": "Create a device type",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}
            }
        },
        "/device-types/{id}": {
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Lookups"],
                "summary": "Update a device type",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["Lookups"],
                "summary": "Delete a device type",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/governorates": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Lookups"],
                "summary": "List governorates",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/users": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Users"],
                "summary": "List users",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Users"],
                "summary": "Create a user",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}
            }
        },
        "/users/by-email/{email}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Users"],
                "summary": "Find a user by email",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/users/{id}": {
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Users"],
                "summary": "Update a user",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["Users"],
                "summary": "Delete a user",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Users"],
                "summary": "Verify user credentials",
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:3000",
	BasePath:         "/api",
	Schemes:          []string{"http", "https"},
	Title:            "caseops API",
	Description:      "Field-service case database: installation and maintenance cases with brand, device type, and governorate lookups.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
