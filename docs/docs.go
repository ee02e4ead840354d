// Package docs contains swagger specification of imaging leads API
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
        "/api/submissions": {
            "post": {
                "description": "Stores lead form submitted by site visitor, referrer utm_source is kept",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "intake"
                ],
                "summary": "Submit lead",
                "parameters": [
                    {
                        "description": "Lead form",
                        "name": "lead",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/intake.LeadPayload"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/handlers.intakeResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handlers.intakeResponse"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/handlers.intakeResponse"
                        }
                    }
                }
            }
        },
        "/api/bookings": {
            "post": {
                "description": "Stores booking confirmation, only last four digits of card are kept",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "intake"
                ],
                "summary": "Submit booking",
                "parameters": [
                    {
                        "description": "Booking confirmation",
                        "name": "booking",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/intake.BookingPayload"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/handlers.intakeResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handlers.intakeResponse"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/handlers.intakeResponse"
                        }
                    }
                }
            }
        },
        "/api/bookings/orders": {
            "post": {
                "description": "Stores scan or photo of doctor's order, returned reference is sent with booking",
                "consumes": [
                    "multipart/form-data"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "intake"
                ],
                "summary": "Upload doctor's order",
                "parameters": [
                    {
                        "type": "file",
                        "description": "Doctor's order",
                        "name": "order",
                        "in": "formData",
                        "required": true
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/handlers.orderDocument"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/echo.HTTPError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/echo.HTTPError"
                        }
                    }
                }
            }
        },
        "/api/locations": {
            "get": {
                "description": "Returns imaging centers near zip code offering requested scan, cheapest first",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "locations"
                ],
                "summary": "Find imaging centers",
                "parameters": [
                    {
                        "type": "string",
                        "description": "5-digit ZIP code",
                        "name": "zip_code",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Imaging type",
                        "name": "imaging_type",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/model.ScanLocation"
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/validation.PayloadError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/echo.HTTPError"
                        }
                    }
                }
            }
        },
        "/api/auth/login": {
            "post": {
                "description": "Verifies provided credentials, signs access token for dashboard",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "auth"
                ],
                "summary": "Login staff",
                "parameters": [
                    {
                        "description": "Staff credentials",
                        "name": "login",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handlers.login"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handlers.session"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/echo.HTTPError"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/echo.HTTPError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/echo.HTTPError"
                        }
                    }
                }
            }
        },
        "/api/admin/submissions": {
            "get": {
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "description": "Returns filtered and sorted submissions, stats over all submissions and present imaging types",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "submissions"
                ],
                "summary": "Review submissions",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Search in zip, phone, type, body part and notes",
                        "name": "search",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Status",
                        "name": "status",
                        "in": "query",
                        "enum": [
                            "all",
                            "pending",
                            "processed",
                            "engaged"
                        ]
                    },
                    {
                        "type": "string",
                        "description": "Imaging type or all",
                        "name": "type",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "First day, YYYY-MM-DD",
                        "name": "from",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Last day, YYYY-MM-DD",
                        "name": "to",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Created at order",
                        "name": "sort",
                        "in": "query",
                        "enum": [
                            "desc",
                            "asc"
                        ]
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handlers.reviewPage"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/validation.PayloadError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/echo.HTTPError"
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "description": "Creates submission on behalf of visitor with explicit status",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "submissions"
                ],
                "summary": "New submission",
                "parameters": [
                    {
                        "description": "Submission data",
                        "name": "createSubmission",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handlers.createSubmission"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/handlers.submission"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/validation.PayloadError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/echo.HTTPError"
                        }
                    }
                }
            }
        },
        "/api/admin/submissions/export": {
            "get": {
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "description": "Streams filtered submissions as csv attachment",
                "produces": [
                    "text/csv"
                ],
                "tags": [
                    "submissions"
                ],
                "summary": "Export submissions",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Search in zip, phone, type, body part and notes",
                        "name": "search",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Status",
                        "name": "status",
                        "in": "query",
                        "enum": [
                            "all",
                            "pending",
                            "processed",
                            "engaged"
                        ]
                    },
                    {
                        "type": "string",
                        "description": "Imaging type or all",
                        "name": "type",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "First day, YYYY-MM-DD",
                        "name": "from",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Last day, YYYY-MM-DD",
                        "name": "to",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Created at order",
                        "name": "sort",
                        "in": "query",
                        "enum": [
                            "desc",
                            "asc"
                        ]
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/validation.PayloadError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/echo.HTTPError"
                        }
                    }
                }
            }
        },
        "/api/admin/submissions/{id}": {
            "get": {
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "description": "Returns single submission with provided id",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "submissions"
                ],
                "summary": "Get single submission by id",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Submission id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handlers.submission"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/validation.PayloadError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/echo.HTTPError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/echo.HTTPError"
                        }
                    }
                }
            },
            "put": {
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "description": "Sets status directly, rewrites notes if provided, empty notes clear them",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "submissions"
                ],
                "summary": "Edit submission",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Submission id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Status and notes",
                        "name": "editSubmission",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handlers.editSubmission"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handlers.submission"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/validation.PayloadError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/echo.HTTPError"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/echo.HTTPError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/echo.HTTPError"
                        }
                    }
                }
            },
            "patch": {
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "description": "Updates only provided flags and notes, engaged submission is always processed",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "submissions"
                ],
                "summary": "Patch submission",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Submission id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Flags and notes",
                        "name": "patchSubmission",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handlers.patchSubmission"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handlers.submission"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/validation.PayloadError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/echo.HTTPError"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/echo.HTTPError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/echo.HTTPError"
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "description": "Deletes submission, ticket issued by deletion request is required",
                "tags": [
                    "submissions"
                ],
                "summary": "Delete submission by id",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Submission id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Deletion ticket",
                        "name": "ticket",
                        "in": "query",
                        "required": true,
                        "format": "uuid"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "Successful status code"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/validation.PayloadError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/echo.HTTPError"
                        }
                    },
                    "412": {
                        "description": "Precondition Failed",
                        "schema": {
                            "$ref": "#/definitions/echo.HTTPError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/echo.HTTPError"
                        }
                    }
                }
            }
        },
        "/api/admin/submissions/{id}/cycle": {
            "post": {
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "description": "Moves submission pending -> processed -> engaged -> pending",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "submissions"
                ],
                "summary": "Cycle submission status",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Submission id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Expected version",
                        "name": "cycleSubmission",
                        "in": "body",
                        "schema": {
                            "$ref": "#/definitions/handlers.cycleSubmission"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handlers.submission"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/validation.PayloadError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/echo.HTTPError"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/echo.HTTPError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/echo.HTTPError"
                        }
                    }
                }
            }
        },
        "/api/admin/submissions/{id}/deletion": {
            "post": {
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "description": "Issues short-living ticket, which must be sent to confirm deletion",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "submissions"
                ],
                "summary": "Request deletion",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Submission id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/cache.DeletionTicket"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/validation.PayloadError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/echo.HTTPError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/echo.HTTPError"
                        }
                    }
                }
            }
        },
        "/api/admin/submissions/{id}/deletion/{ticket}": {
            "delete": {
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "description": "Drops deletion ticket, submission is kept untouched",
                "tags": [
                    "submissions"
                ],
                "summary": "Cancel deletion",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Submission id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Deletion ticket",
                        "name": "ticket",
                        "in": "path",
                        "required": true,
                        "format": "uuid"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "Successful status code"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/validation.PayloadError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/echo.HTTPError"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "cache.DeletionTicket": {
            "type": "object",
            "properties": {
                "ticket": {
                    "type": "string"
                },
                "submissionId": {
                    "type": "integer"
                },
                "expiresAt": {
                    "type": "string"
                }
            }
        },
        "echo.HTTPError": {
            "type": "object",
            "properties": {
                "message": {}
            }
        },
        "validation.Violation": {
            "type": "object",
            "properties": {
                "field": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                }
            }
        },
        "validation.PayloadError": {
            "type": "object",
            "properties": {
                "errors": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/validation.Violation"
                    }
                }
            }
        },
        "handlers.intakeResponse": {
            "type": "object",
            "properties": {
                "success": {
                    "type": "boolean"
                },
                "data": {},
                "error": {
                    "type": "string"
                },
                "violations": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/validation.Violation"
                    }
                }
            }
        },
        "handlers.orderDocument": {
            "type": "object",
            "properties": {
                "reference": {
                    "type": "string"
                }
            }
        },
        "handlers.login": {
            "type": "object",
            "properties": {
                "email": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                }
            },
            "required": [
                "email",
                "password"
            ]
        },
        "handlers.session": {
            "type": "object",
            "properties": {
                "accessToken": {
                    "type": "string"
                },
                "expiresAt": {
                    "type": "integer"
                }
            }
        },
        "handlers.submission": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "zip_code": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "imaging_type": {
                    "type": "string"
                },
                "full_name": {
                    "type": "string"
                },
                "body_part": {
                    "type": "string"
                },
                "has_order": {
                    "type": "boolean"
                },
                "utm_source": {
                    "type": "string"
                },
                "status": {
                    "type": "string",
                    "enum": [
                        "pending",
                        "processed",
                        "engaged"
                    ]
                },
                "notes": {
                    "type": "string"
                },
                "version": {
                    "type": "integer"
                },
                "created_at": {
                    "type": "string"
                },
                "processed": {
                    "type": "boolean"
                },
                "engaged": {
                    "type": "boolean"
                }
            }
        },
        "handlers.submissionRow": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "zip_code": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "imaging_type": {
                    "type": "string"
                },
                "full_name": {
                    "type": "string"
                },
                "body_part": {
                    "type": "string"
                },
                "has_order": {
                    "type": "boolean"
                },
                "utm_source": {
                    "type": "string"
                },
                "status": {
                    "type": "string",
                    "enum": [
                        "pending",
                        "processed",
                        "engaged"
                    ]
                },
                "notes": {
                    "type": "string"
                },
                "version": {
                    "type": "integer"
                },
                "created_at": {
                    "type": "string"
                },
                "processed": {
                    "type": "boolean"
                },
                "engaged": {
                    "type": "boolean"
                },
                "recent": {
                    "type": "boolean"
                }
            }
        },
        "handlers.reviewPage": {
            "type": "object",
            "properties": {
                "submissions": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/handlers.submissionRow"
                    }
                },
                "stats": {
                    "$ref": "#/definitions/review.Stats"
                },
                "types": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "review.Stats": {
            "type": "object",
            "properties": {
                "total": {
                    "type": "integer"
                },
                "pending": {
                    "type": "integer"
                },
                "processed": {
                    "type": "integer"
                },
                "engaged": {
                    "type": "integer"
                },
                "by_type": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "integer"
                    }
                }
            }
        },
        "handlers.createSubmission": {
            "type": "object",
            "properties": {
                "zip_code": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "imaging_type": {
                    "type": "string"
                },
                "full_name": {
                    "type": "string"
                },
                "body_part": {
                    "type": "string"
                },
                "has_order": {
                    "type": "boolean"
                },
                "utm_source": {
                    "type": "string"
                },
                "status": {
                    "type": "string",
                    "enum": [
                        "pending",
                        "processed",
                        "engaged"
                    ]
                },
                "notes": {
                    "type": "string"
                }
            },
            "required": [
                "zip_code",
                "phone",
                "imaging_type"
            ]
        },
        "handlers.editSubmission": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string",
                    "enum": [
                        "pending",
                        "processed",
                        "engaged"
                    ]
                },
                "notes": {
                    "type": "string"
                },
                "version": {
                    "type": "integer"
                }
            },
            "required": [
                "status"
            ]
        },
        "handlers.patchSubmission": {
            "type": "object",
            "properties": {
                "processed": {
                    "type": "boolean"
                },
                "engaged": {
                    "type": "boolean"
                },
                "notes": {
                    "type": "string"
                },
                "version": {
                    "type": "integer"
                }
            }
        },
        "handlers.cycleSubmission": {
            "type": "object",
            "properties": {
                "version": {
                    "type": "integer"
                }
            }
        },
        "intake.LeadPayload": {
            "type": "object",
            "properties": {
                "zip_code": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "imaging_type": {
                    "type": "string"
                },
                "body_part": {
                    "type": "string"
                },
                "has_order": {
                    "type": "boolean"
                },
                "full_name": {
                    "type": "string"
                },
                "referrer_url": {
                    "type": "string"
                }
            },
            "required": [
                "zip_code",
                "phone",
                "imaging_type"
            ]
        },
        "intake.BookingPayload": {
            "type": "object",
            "properties": {
                "imaging_center_name": {
                    "type": "string"
                },
                "imaging_center_address": {
                    "type": "string"
                },
                "imaging_center_phone": {
                    "type": "string"
                },
                "estimated_cost_range": {
                    "type": "string"
                },
                "availability_text": {
                    "type": "string"
                },
                "processed_availability": {
                    "type": "string"
                },
                "cardholder_name": {
                    "type": "string"
                },
                "billing_zip_code": {
                    "type": "string"
                },
                "card_number": {
                    "type": "string"
                },
                "has_order": {
                    "type": "boolean"
                },
                "order_provider_name": {
                    "type": "string"
                },
                "order_practice_name": {
                    "type": "string"
                },
                "order_location": {
                    "type": "string"
                },
                "will_obtain_order": {
                    "type": "boolean"
                },
                "order_document": {
                    "type": "string"
                }
            },
            "required": [
                "imaging_center_name"
            ]
        },
        "model.ScanLocation": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "address": {
                    "type": "string"
                },
                "city": {
                    "type": "string"
                },
                "state": {
                    "type": "string"
                },
                "zip_code": {
                    "type": "string"
                },
                "price": {
                    "type": "integer"
                },
                "availability": {
                    "type": "string"
                },
                "distance": {
                    "type": "number"
                },
                "lat": {
                    "type": "number"
                },
                "lng": {
                    "type": "number"
                },
                "type": {
                    "type": "string"
                },
                "provider": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                }
            }
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {
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
	Title:            "Imaging leads API",
	Description:      "Lead intake for medical imaging price comparison site and staff review dashboard.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
