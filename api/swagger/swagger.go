package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "SkillSwap API",
        "description": "Peer-to-peer skill exchange: catalog browsing, teacher matching, and class scheduling",
        "version": "0.1.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Catalog", "description": "Static skill catalog and teacher roster"},
        {"name": "Learning", "description": "Learning requests: matching and scheduling"},
        {"name": "Swaps", "description": "Active swaps built from scheduled classes"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"}
                }
            }
        },
        "/categories": {
            "get": {
                "tags": ["Catalog"],
                "summary": "List skill categories",
                "responses": {
                    "200": {"description": "Category list", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/skills": {
            "get": {
                "tags": ["Catalog"],
                "summary": "List skill listings",
                "parameters": [
                    {"name": "category", "in": "query", "type": "string", "description": "Filter by category name"},
                    {"name": "q", "in": "query", "type": "string", "description": "Free-text search"}
                ],
                "responses": {
                    "200": {"description": "Listing collection", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/teachers": {
            "get": {
                "tags": ["Catalog"],
                "summary": "List the provider roster",
                "responses": {
                    "200": {"description": "Roster", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/learning": {
            "get": {
                "tags": ["Learning"],
                "summary": "List learning requests",
                "responses": {
                    "200": {"description": "Learning collection", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Learning"],
                "summary": "File a learning request and match a teacher",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateLearningRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created request", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/learning/{id}/schedule": {
            "post": {
                "tags": ["Learning"],
                "summary": "Schedule a class for a matched learning request",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ScheduleSessionRequest"}}
                ],
                "responses": {
                    "200": {"description": "Scheduled request", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Unknown request", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Wrong lifecycle state", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/swaps/active": {
            "get": {
                "tags": ["Swaps"],
                "summary": "List active swaps",
                "responses": {
                    "200": {"description": "Active swap projection", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "CreateLearningRequest": {
            "type": "object",
            "required": ["skill_name", "category"],
            "properties": {
                "skill_name": {"type": "string", "minLength": 3},
                "category": {"type": "string"},
                "description": {"type": "string"},
                "defer": {"type": "boolean"}
            }
        },
        "ScheduleSessionRequest": {
            "type": "object",
            "required": ["date", "time"],
            "properties": {
                "date": {"type": "string", "example": "2025-06-01"},
                "time": {"type": "string", "example": "14:30"},
                "meeting_link": {"type": "string"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
