// Package docs holds the OpenAPI description of the HTTP API, registered
// with swag. Keep it in step with the handler annotations in internal/api.
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
        "/dashboard/plants": {
            "get": {
                "description": "Dashboard rows of every user's plants",
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "List all plants",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.PlantDashboardRecord"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/model.OperationResult"}}
                }
            }
        },
        "/dashboard/plants/user/{userId}": {
            "get": {
                "description": "Dashboard rows of one user's plants",
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "List a user's plants",
                "parameters": [{"type": "string", "description": "User ID", "name": "userId", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.PlantDashboardRecord"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/model.OperationResult"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/model.OperationResult"}}
                }
            }
        },
        "/dashboard/plants/{plantId}/health": {
            "get": {
                "description": "Evaluates FN_CALCULAR_INDICE_SAUDE_PLANTA; data is the index",
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Compute a plant's health index",
                "parameters": [{"type": "string", "description": "Plant ID", "name": "plantId", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.OperationResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/model.OperationResult"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/model.OperationResult"}}
                }
            }
        },
        "/dashboard/plants/{plantId}/status": {
            "get": {
                "description": "Evaluates FN_FORMATAR_STATUS_PLANTA; data is the label",
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Format a plant's status",
                "parameters": [{"type": "string", "description": "Plant ID", "name": "plantId", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.OperationResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/model.OperationResult"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/model.OperationResult"}}
                }
            }
        },
        "/monitoring/alerts": {
            "post": {
                "description": "Runs PRC_REGISTRAR_ALERTAS_CRITICOS for every plant",
                "produces": ["application/json"],
                "tags": ["monitoring"],
                "summary": "Register critical alerts",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.OperationResult"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/model.OperationResult"}}
                }
            }
        },
        "/monitoring/alerts/{plantId}": {
            "post": {
                "description": "Runs PRC_REGISTRAR_ALERTAS_CRITICOS for one plant",
                "produces": ["application/json"],
                "tags": ["monitoring"],
                "summary": "Register a plant's critical alerts",
                "parameters": [{"type": "string", "description": "Plant ID", "name": "plantId", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.OperationResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/model.OperationResult"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/model.OperationResult"}}
                }
            }
        },
        "/monitoring/process/{type}": {
            "post": {
                "description": "Runs PRC_BACKEND_PROCESSAMENTO_AUTO and waits for its report",
                "produces": ["application/json"],
                "tags": ["monitoring"],
                "summary": "Run batch processing",
                "parameters": [{"enum": ["COMPLETO", "ALERTAS", "LIMPEZA", "STATS"], "type": "string", "description": "Processing type, any case", "name": "type", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.OperationResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/model.OperationResult"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/model.OperationResult"}}
                }
            }
        },
        "/monitoring/process/{type}/async": {
            "post": {
                "description": "Queues PRC_BACKEND_PROCESSAMENTO_AUTO; data is the queued job",
                "produces": ["application/json"],
                "tags": ["monitoring"],
                "summary": "Queue batch processing",
                "parameters": [{"enum": ["COMPLETO", "ALERTAS", "LIMPEZA", "STATS"], "type": "string", "description": "Processing type, any case", "name": "type", "in": "path", "required": true}],
                "responses": {
                    "202": {"description": "Accepted", "schema": {"$ref": "#/definitions/model.OperationResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/model.OperationResult"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/model.OperationResult"}}
                }
            }
        },
        "/monitoring/jobs": {
            "get": {
                "description": "Most recent queued batch runs, newest first",
                "produces": ["application/json"],
                "tags": ["monitoring"],
                "summary": "List batch jobs",
                "parameters": [{"type": "integer", "description": "At most this many jobs (default and cap 50)", "name": "limit", "in": "query"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.OperationResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/model.OperationResult"}}
                }
            }
        },
        "/monitoring/jobs/{jobId}": {
            "get": {
                "description": "Status and outcome of one queued batch run",
                "produces": ["application/json"],
                "tags": ["monitoring"],
                "summary": "Get a batch job",
                "parameters": [{"type": "string", "description": "Job ID", "name": "jobId", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.OperationResult"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/model.OperationResult"}}
                }
            }
        }
    },
    "definitions": {
        "model.OperationResult": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "timestamp": {"type": "string", "example": "2024-05-01 14:03:22"},
                "operation_type": {"type": "string"},
                "data": {}
            }
        },
        "model.PlantDashboardRecord": {
            "type": "object",
            "properties": {
                "plant_id": {"type": "string"},
                "plant_name": {"type": "string"},
                "species": {"type": "string"},
                "pot_color": {"type": "string"},
                "start_date": {"type": "string", "example": "2024-05-01"},
                "user_id": {"type": "string"},
                "user_name": {"type": "string"},
                "email": {"type": "string"},
                "health_index": {"type": "number"},
                "status_category": {"type": "string", "enum": ["EXCELLENT", "GOOD", "WARNING", "CAUTION", "CRITICAL", "ERROR"]},
                "days_monitored": {"type": "integer"},
                "active_sensors": {"type": "integer"},
                "readings_last_24h": {"type": "integer"},
                "main_photo_url": {"type": "string"},
                "created_at": {"type": "string", "example": "2024-05-01 14:03:22"},
                "query_timestamp": {"type": "string", "example": "2024-05-01 14:03:22"}
            }
        },
        "model.BatchJob": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "job_type": {"type": "string", "enum": ["COMPLETO", "ALERTAS", "LIMPEZA", "STATS"]},
                "source": {"type": "string", "enum": ["API", "SCHEDULER"]},
                "status": {"type": "string", "enum": ["QUEUED", "RUNNING", "SUCCEEDED", "FAILED"]},
                "result": {"type": "string"},
                "error": {"type": "string"},
                "created_at": {"type": "string"},
                "started_at": {"type": "string"},
                "finished_at": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Metamorfose plant monitoring API",
	Description:      "REST access to the plant dashboard and monitoring routines.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
