// Package docs holds the swagger document served under /swagger.
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
        "/navigations/shortest-path": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["navigations"],
                "summary": "route through checkpoints in order",
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/rest.ShortestPathRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/rest.RouteResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/rest.ErrResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/rest.ErrResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/rest.ErrResponse"}}
                }
            }
        },
        "/navigations/adjust-route": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["navigations"],
                "summary": "reroute from a new position to the finish of an issued route",
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/rest.AdjustRouteRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/rest.RouteResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/rest.ErrResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/rest.ErrResponse"}}
                }
            }
        },
        "/navigations/nearest-segments": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["navigations"],
                "summary": "nearest road segments around a point",
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/rest.RoadSnappingRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/rest.RoadSnappingResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/rest.ErrResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/rest.ErrResponse"}}
                }
            }
        },
        "/navigations/mwms": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["navigations"],
                "summary": "mwms a route would pass",
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/rest.MwmsRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/rest.MwmsResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/rest.ErrResponse"}}
                }
            }
        }
    },
    "definitions": {
        "rest.Coord": {
            "type": "object",
            "properties": {"lat": {"type": "number"}, "lon": {"type": "number"}}
        },
        "datastructure.Segment": {
            "type": "object",
            "properties": {
                "mwm_id": {"type": "integer"},
                "feature_id": {"type": "integer"},
                "segment_idx": {"type": "integer"},
                "forward": {"type": "boolean"}
            }
        },
        "rest.ShortestPathRequest": {
            "type": "object",
            "properties": {"checkpoints": {"type": "array", "items": {"$ref": "#/definitions/rest.Coord"}}}
        },
        "rest.AdjustRouteRequest": {
            "type": "object",
            "properties": {
                "start": {"$ref": "#/definitions/rest.Coord"},
                "bearing": {"type": "number"},
                "passed_idx": {"type": "integer"},
                "route_token": {"type": "string"}
            }
        },
        "rest.RoadSnappingRequest": {
            "type": "object",
            "properties": {
                "lat": {"type": "number"},
                "lon": {"type": "number"},
                "radius": {"type": "number"},
                "k": {"type": "integer"}
            }
        },
        "rest.MwmsRequest": {
            "type": "object",
            "properties": {"start": {"$ref": "#/definitions/rest.Coord"}, "finish": {"$ref": "#/definitions/rest.Coord"}}
        },
        "rest.RouteResponse": {
            "type": "object",
            "properties": {
                "path": {"type": "string"},
                "overview": {"type": "string"},
                "points": {"type": "array", "items": {"$ref": "#/definitions/rest.Coord"}},
                "eta": {"type": "number"},
                "distance": {"type": "number"},
                "segments": {"type": "array", "items": {"$ref": "#/definitions/datastructure.Segment"}},
                "streets": {"type": "array", "items": {"type": "string"}},
                "modes": {"type": "array", "items": {"type": "string"}},
                "route_token": {"type": "string"}
            }
        },
        "rest.RoadSnappingResponse": {
            "type": "object",
            "properties": {
                "segments": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "properties": {
                            "segment": {"$ref": "#/definitions/datastructure.Segment"},
                            "projection": {"$ref": "#/definitions/rest.Coord"},
                            "distance": {"type": "number"}
                        }
                    }
                }
            }
        },
        "rest.MwmsResponse": {
            "type": "object",
            "properties": {"mwms": {"type": "array", "items": {"type": "integer"}}}
        },
        "rest.ErrResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "code": {"type": "integer"},
                "error": {"type": "string"},
                "validation": {"type": "array", "items": {"type": "string"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:5000",
	BasePath:         "/api",
	Schemes:          []string{"http"},
	Title:            "organicmaps route graph API",
	Description:      "road routing over mwm tiles with cross mwm leaps",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
