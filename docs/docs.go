//go:build swagger

// Package docs registers the OpenAPI description of the petra JSON API with
// swag. Regenerate with `swag init -g cmd/petra/docs.go -o docs` after
// changing handler annotations.
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
    "paths": {
        "/api/points": {
            "get": {
                "produces": ["application/json"],
                "tags": ["map"],
                "summary": "Demo detection points",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/types.PointsResponse"}}}
            }
        },
        "/api/points.geojson": {
            "get": {
                "produces": ["application/json"],
                "tags": ["map"],
                "summary": "Demo detection points as GeoJSON",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/evaluation": {
            "get": {
                "produces": ["application/json"],
                "tags": ["content"],
                "summary": "Model evaluation summary",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/predict": {
            "post": {
                "consumes": ["multipart/form-data", "application/json"],
                "produces": ["application/json"],
                "tags": ["predict"],
                "summary": "Forward an image to the inference service",
                "parameters": [
                    {"type": "file", "description": "Satellite image (JPG/PNG)", "name": "file", "in": "formData"},
                    {"description": "Image URL", "name": "body", "in": "body", "schema": {"$ref": "#/definitions/types.PredictURLRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.PredictResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "415": {"description": "Unsupported Media Type", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/types.PredictResponse"}},
                    "504": {"description": "Gateway Timeout", "schema": {"$ref": "#/definitions/types.PredictResponse"}}
                }
            }
        },
        "/api/preview": {
            "post": {
                "consumes": ["multipart/form-data"],
                "produces": ["image/png"],
                "tags": ["predict"],
                "summary": "Render a PNG thumbnail of an uploaded image",
                "parameters": [{"type": "file", "description": "Image", "name": "file", "in": "formData", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "415": {"description": "Unsupported Media Type", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "types.DemoPoint": {
            "type": "object",
            "properties": {
                "name": {"type": "string", "example": "Detection #1"},
                "lat": {"type": "number", "example": 26.315},
                "lon": {"type": "number", "example": 50.103},
                "conf": {"type": "number", "example": 0.91}
            }
        },
        "types.ViewState": {
            "type": "object",
            "properties": {
                "latitude": {"type": "number", "example": 26.35},
                "longitude": {"type": "number", "example": 50.05},
                "zoom": {"type": "number", "example": 6.5},
                "pitch": {"type": "number", "example": 30},
                "bearing": {"type": "number", "example": 0}
            }
        },
        "types.PointsResponse": {
            "type": "object",
            "properties": {
                "points": {"type": "array", "items": {"$ref": "#/definitions/types.DemoPoint"}},
                "view": {"$ref": "#/definitions/types.ViewState"}
            }
        },
        "types.PredictURLRequest": {
            "type": "object",
            "properties": {"url": {"type": "string", "example": "https://example.com/satellite.jpg"}}
        },
        "types.PredictResponse": {
            "type": "object",
            "properties": {
                "ok": {"type": "boolean", "example": true},
                "payload": {"description": "Decoded JSON body of the inference service, any JSON value"},
                "error": {"type": "string", "example": "500: internal error"},
                "kind": {"type": "string", "example": "status"},
                "status_code": {"type": "integer", "example": 500},
                "endpoint": {"type": "string", "example": "http://127.0.0.1:8000"}
            }
        },
        "types.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "invalid JSON body"},
                "code": {"type": "integer", "example": 400}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "petra API",
	Description:      "JSON API of the oil-spill detection dashboard.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
