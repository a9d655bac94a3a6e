package api

import (
	"net/http"

	"github.com/stockroom/items-api/internal/api/shared"
)

// itemSchema describes the item wire shape once so every operation below
// can reference it.
var itemSchema = map[string]interface{}{
	"type": "object",
	"properties": map[string]interface{}{
		"id": map[string]interface{}{
			"type":        "string",
			"description": "Server-generated identifier, immutable after creation",
		},
		"name": map[string]interface{}{
			"type": "string",
		},
		"description": map[string]interface{}{
			"type": "string",
		},
		"created_at": map[string]interface{}{
			"type":   "string",
			"format": "date-time",
		},
		"updated_at": map[string]interface{}{
			"type":   "string",
			"format": "date-time",
		},
	},
	"additionalProperties": true,
	"required":             []string{"id", "name"},
}

var errorSchema = map[string]interface{}{
	"type": "object",
	"properties": map[string]interface{}{
		"message": map[string]interface{}{
			"type":    "string",
			"example": "Item not found",
		},
		"trace_id": map[string]interface{}{
			"type": "string",
		},
	},
	"required": []string{"message"},
}

// OpenAPISpec builds the OpenAPI 3 document for the service. The paths
// mirror the routes registered on the router; the document is auxiliary
// and regenerated on each call.
func OpenAPISpec() map[string]interface{} {
	jsonContent := func(schema map[string]interface{}) map[string]interface{} {
		return map[string]interface{}{
			"application/json": map[string]interface{}{"schema": schema},
		}
	}
	itemRef := map[string]interface{}{"$ref": "#/components/schemas/Item"}
	errorRef := map[string]interface{}{"$ref": "#/components/schemas/Error"}
	notFound := map[string]interface{}{
		"description": "Item not found",
		"content":     jsonContent(errorRef),
	}
	idParam := map[string]interface{}{
		"name":     "id",
		"in":       "path",
		"required": true,
		"schema":   map[string]interface{}{"type": "string"},
	}

	return map[string]interface{}{
		"openapi": "3.0.0",
		"info": map[string]interface{}{
			"title":       "Items API",
			"version":     "1.0.0",
			"description": "CRUD over a single in-memory collection of item records",
		},
		"paths": map[string]interface{}{
			"/api/items": map[string]interface{}{
				"get": map[string]interface{}{
					"tags":    []string{"Items"},
					"summary": "List items",
					"responses": map[string]interface{}{
						"200": map[string]interface{}{
							"description": "All items in insertion order",
							"content": jsonContent(map[string]interface{}{
								"type":  "array",
								"items": itemRef,
							}),
						},
					},
				},
				"post": map[string]interface{}{
					"tags":    []string{"Items"},
					"summary": "Create an item",
					"requestBody": map[string]interface{}{
						"required": true,
						"content": jsonContent(map[string]interface{}{
							"type": "object",
							"properties": map[string]interface{}{
								"name":        map[string]interface{}{"type": "string"},
								"description": map[string]interface{}{"type": "string"},
							},
							"additionalProperties": true,
							"required":             []string{"name"},
						}),
					},
					"responses": map[string]interface{}{
						"201": map[string]interface{}{
							"description": "The created item, including its generated id",
							"content":     jsonContent(itemRef),
						},
						"400": map[string]interface{}{
							"description": "Missing name or malformed body",
							"content":     jsonContent(errorRef),
						},
					},
				},
			},
			"/api/items/{id}": map[string]interface{}{
				"get": map[string]interface{}{
					"tags":       []string{"Items"},
					"summary":    "Get an item by id",
					"parameters": []interface{}{idParam},
					"responses": map[string]interface{}{
						"200": map[string]interface{}{
							"description": "The matching item",
							"content":     jsonContent(itemRef),
						},
						"404": notFound,
					},
				},
				"put": map[string]interface{}{
					"tags":       []string{"Items"},
					"summary":    "Update an item",
					"parameters": []interface{}{idParam},
					"requestBody": map[string]interface{}{
						"required": true,
						"content": jsonContent(map[string]interface{}{
							"type":                 "object",
							"additionalProperties": true,
						}),
					},
					"responses": map[string]interface{}{
						"200": map[string]interface{}{
							"description": "The merged item",
							"content":     jsonContent(itemRef),
						},
						"404": notFound,
					},
				},
				"delete": map[string]interface{}{
					"tags":       []string{"Items"},
					"summary":    "Delete an item",
					"parameters": []interface{}{idParam},
					"responses": map[string]interface{}{
						"204": map[string]interface{}{
							"description": "Item deleted, no body",
						},
						"404": notFound,
					},
				},
			},
			"/health": map[string]interface{}{
				"get": map[string]interface{}{
					"tags":    []string{"System"},
					"summary": "Health check",
					"responses": map[string]interface{}{
						"200": map[string]interface{}{
							"description": "API is healthy",
						},
					},
				},
			},
		},
		"components": map[string]interface{}{
			"schemas": map[string]interface{}{
				"Item":  itemSchema,
				"Error": errorSchema,
			},
		},
	}
}

// OpenAPIHandler serves the OpenAPI document as JSON.
func OpenAPIHandler(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, OpenAPISpec())
}
