// Package docs holds the swagger spec served at /swagger/doc.json.
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
        "/attendees/signup": {
            "post": {
                "tags": ["attendees"],
                "summary": "Create an attendee account",
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Bad Request"},
                    "409": {"description": "Conflict"}
                }
            }
        },
        "/attendees/signin": {
            "post": {
                "tags": ["attendees"],
                "summary": "Sign in as an attendee",
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/attendees/events": {
            "get": {
                "tags": ["events"],
                "summary": "List all events",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/attendees/events/{event_id}/register": {
            "post": {
                "tags": ["registration"],
                "summary": "Register the authenticated attendee for an event",
                "parameters": [
                    {"type": "string", "name": "event_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"},
                    "409": {"description": "Conflict"},
                    "502": {"description": "Bad Gateway"}
                }
            }
        },
        "/attendees/sessions/{session_id}/join": {
            "post": {
                "tags": ["sessions"],
                "summary": "Join a session as the authenticated attendee",
                "parameters": [
                    {"type": "string", "name": "session_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"},
                    "409": {"description": "Conflict"}
                }
            }
        },
        "/attendees/sessions/{session_id}/polls/{poll_id}/vote": {
            "post": {
                "tags": ["polls"],
                "summary": "Record a vote on a session poll",
                "parameters": [
                    {"type": "string", "name": "session_id", "in": "path", "required": true},
                    {"type": "string", "name": "poll_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/organisers/events": {
            "post": {
                "tags": ["events"],
                "summary": "Create an event",
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/organisers/events/{event_id}/notify": {
            "post": {
                "tags": ["notifications"],
                "summary": "Broadcast a notification to all event attendees",
                "parameters": [
                    {"type": "string", "name": "event_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "404": {"description": "Not Found"},
                    "502": {"description": "Bad Gateway"}
                }
            }
        },
        "/organisers/sessions/{session_id}/assign-speaker": {
            "post": {
                "tags": ["scheduling"],
                "summary": "Assign a speaker to a session",
                "parameters": [
                    {"type": "string", "name": "session_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"},
                    "409": {"description": "Conflict"}
                }
            }
        },
        "/speakers/analytics": {
            "get": {
                "tags": ["scheduling"],
                "summary": "Fetch the authenticated speaker's analytics",
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/sponsors/booth": {
            "get": {
                "tags": ["sponsors"],
                "summary": "Fetch the authenticated sponsor's booth",
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Confera API",
	Description:      "Multi-role event management backend.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
