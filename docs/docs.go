package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "schemes": {{ marshal .Schemes }},
    "paths": {
        "/grants": {
            "get": {
                "tags": [
                    "grants"
                ],
                "summary": "List grants",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "title": "GrantListResponse"
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "grants"
                ],
                "summary": "Create a grant",
                "description": "Create an Active grant. Names are unique ignoring case.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "description": "Grant data",
                        "schema": {
                            "type": "object",
                            "title": "ports.GrantInput"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "type": "object",
                            "title": "entities.Grant"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "title": "ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "type": "object",
                            "title": "ErrorResponse"
                        }
                    }
                }
            }
        },
        "/grants/stats": {
            "get": {
                "tags": [
                    "grants"
                ],
                "summary": "Count grants by status",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "title": "ports.GrantStats"
                        }
                    }
                }
            }
        },
        "/grants/{grantName}": {
            "get": {
                "tags": [
                    "grants"
                ],
                "summary": "Get a grant by name",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "path",
                        "name": "grantName",
                        "type": "string",
                        "required": true,
                        "description": "Grant name"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "title": "entities.Grant"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "title": "ErrorResponse"
                        }
                    }
                }
            },
            "patch": {
                "tags": [
                    "grants"
                ],
                "summary": "Update a grant",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "path",
                        "name": "grantName",
                        "type": "string",
                        "required": true,
                        "description": "Grant name"
                    },
                    {
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "description": "Fields to update",
                        "schema": {
                            "type": "object",
                            "title": "ports.GrantUpdate"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "title": "entities.Grant"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "title": "ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "title": "ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "type": "object",
                            "title": "ErrorResponse"
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "grants"
                ],
                "summary": "Delete a grant",
                "parameters": [
                    {
                        "in": "path",
                        "name": "grantName",
                        "type": "string",
                        "required": true,
                        "description": "Grant name"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "title": "ErrorResponse"
                        }
                    }
                }
            }
        },
        "/reports": {
            "get": {
                "tags": [
                    "reports"
                ],
                "summary": "List reports",
                "description": "List every report in the current session",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            },
            "post": {
                "tags": [
                    "reports"
                ],
                "summary": "Create a report",
                "description": "Create a report; a blank name becomes \"Untitled Report\"",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "description": "Report data",
                        "schema": {
                            "type": "object",
                            "title": "ports.ReportInput"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "type": "object",
                            "title": "entities.Report"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "title": "ErrorResponse"
                        }
                    }
                }
            }
        },
        "/reports/{reportId}": {
            "get": {
                "tags": [
                    "reports"
                ],
                "summary": "Get a report page",
                "description": "Get the report overview with its sections and unassigned tasks",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "path",
                        "name": "reportId",
                        "type": "string",
                        "required": true,
                        "description": "Report ID"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "title": "ports.TemplateData"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "title": "ErrorResponse"
                        }
                    }
                }
            },
            "patch": {
                "tags": [
                    "reports"
                ],
                "summary": "Update a report",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "path",
                        "name": "reportId",
                        "type": "string",
                        "required": true,
                        "description": "Report ID"
                    },
                    {
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "description": "Fields to update",
                        "schema": {
                            "type": "object",
                            "title": "ports.ReportUpdate"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "title": "entities.Report"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "title": "ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "title": "ErrorResponse"
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "reports"
                ],
                "summary": "Delete a report",
                "parameters": [
                    {
                        "in": "path",
                        "name": "reportId",
                        "type": "string",
                        "required": true,
                        "description": "Report ID"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "title": "ErrorResponse"
                        }
                    }
                }
            }
        },
        "/reports/{reportId}/sections": {
            "post": {
                "tags": [
                    "sections"
                ],
                "summary": "Add a section",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "path",
                        "name": "reportId",
                        "type": "string",
                        "required": true,
                        "description": "Report ID"
                    },
                    {
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "description": "Section data",
                        "schema": {
                            "type": "object",
                            "title": "ports.SectionInput"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "type": "object",
                            "title": "entities.Section"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "title": "ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "title": "ErrorResponse"
                        }
                    }
                }
            }
        },
        "/reports/{reportId}/sections/{sectionId}": {
            "get": {
                "tags": [
                    "sections"
                ],
                "summary": "Get a section page",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "path",
                        "name": "reportId",
                        "type": "string",
                        "required": true,
                        "description": "Report ID"
                    },
                    {
                        "in": "path",
                        "name": "sectionId",
                        "type": "string",
                        "required": true,
                        "description": "Section ID"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "title": "ports.TemplateData"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "title": "ErrorResponse"
                        }
                    }
                }
            },
            "patch": {
                "tags": [
                    "sections"
                ],
                "summary": "Rename a section",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "path",
                        "name": "reportId",
                        "type": "string",
                        "required": true,
                        "description": "Report ID"
                    },
                    {
                        "in": "path",
                        "name": "sectionId",
                        "type": "string",
                        "required": true,
                        "description": "Section ID"
                    },
                    {
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "description": "Fields to update",
                        "schema": {
                            "type": "object",
                            "title": "ports.SectionUpdate"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "title": "entities.Section"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "title": "ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "title": "ErrorResponse"
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "sections"
                ],
                "summary": "Delete a section",
                "description": "Delete a section; its tasks move to the report's unassigned tasks",
                "parameters": [
                    {
                        "in": "path",
                        "name": "reportId",
                        "type": "string",
                        "required": true,
                        "description": "Report ID"
                    },
                    {
                        "in": "path",
                        "name": "sectionId",
                        "type": "string",
                        "required": true,
                        "description": "Section ID"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "title": "ErrorResponse"
                        }
                    }
                }
            }
        },
        "/reports/{reportId}/sections/{sectionId}/move-down": {
            "post": {
                "tags": [
                    "sections"
                ],
                "summary": "Move a section down",
                "parameters": [
                    {
                        "in": "path",
                        "name": "reportId",
                        "type": "string",
                        "required": true,
                        "description": "Report ID"
                    },
                    {
                        "in": "path",
                        "name": "sectionId",
                        "type": "string",
                        "required": true,
                        "description": "Section ID"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "title": "ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "type": "object",
                            "title": "ErrorResponse"
                        }
                    }
                }
            }
        },
        "/reports/{reportId}/sections/{sectionId}/move-up": {
            "post": {
                "tags": [
                    "sections"
                ],
                "summary": "Move a section up",
                "parameters": [
                    {
                        "in": "path",
                        "name": "reportId",
                        "type": "string",
                        "required": true,
                        "description": "Report ID"
                    },
                    {
                        "in": "path",
                        "name": "sectionId",
                        "type": "string",
                        "required": true,
                        "description": "Section ID"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "title": "ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "type": "object",
                            "title": "ErrorResponse"
                        }
                    }
                }
            }
        },
        "/reports/{reportId}/sections/{sectionId}/tasks": {
            "post": {
                "tags": [
                    "tasks"
                ],
                "summary": "Add a task",
                "description": "Add a task to a section, or to the report's unassigned tasks",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "path",
                        "name": "reportId",
                        "type": "string",
                        "required": true,
                        "description": "Report ID"
                    },
                    {
                        "in": "path",
                        "name": "sectionId",
                        "type": "string",
                        "required": true,
                        "description": "Section ID"
                    },
                    {
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "description": "Task data",
                        "schema": {
                            "type": "object",
                            "title": "ports.TaskInput"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "type": "object",
                            "title": "entities.Task"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "title": "ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "title": "ErrorResponse"
                        }
                    }
                }
            }
        },
        "/reports/{reportId}/sections/{sectionId}/tasks/{taskId}": {
            "get": {
                "tags": [
                    "tasks"
                ],
                "summary": "Get a task page",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "path",
                        "name": "reportId",
                        "type": "string",
                        "required": true,
                        "description": "Report ID"
                    },
                    {
                        "in": "path",
                        "name": "sectionId",
                        "type": "string",
                        "required": true,
                        "description": "Section ID"
                    },
                    {
                        "in": "path",
                        "name": "taskId",
                        "type": "string",
                        "required": true,
                        "description": "Task ID"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "title": "ports.TemplateData"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "title": "ErrorResponse"
                        }
                    }
                }
            },
            "patch": {
                "tags": [
                    "tasks"
                ],
                "summary": "Rename a task",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "path",
                        "name": "reportId",
                        "type": "string",
                        "required": true,
                        "description": "Report ID"
                    },
                    {
                        "in": "path",
                        "name": "sectionId",
                        "type": "string",
                        "required": true,
                        "description": "Section ID"
                    },
                    {
                        "in": "path",
                        "name": "taskId",
                        "type": "string",
                        "required": true,
                        "description": "Task ID"
                    },
                    {
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "description": "Fields to update",
                        "schema": {
                            "type": "object",
                            "title": "ports.TaskUpdate"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "title": "entities.Task"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "title": "ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "title": "ErrorResponse"
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "tasks"
                ],
                "summary": "Delete a task and its questions",
                "parameters": [
                    {
                        "in": "path",
                        "name": "reportId",
                        "type": "string",
                        "required": true,
                        "description": "Report ID"
                    },
                    {
                        "in": "path",
                        "name": "sectionId",
                        "type": "string",
                        "required": true,
                        "description": "Section ID"
                    },
                    {
                        "in": "path",
                        "name": "taskId",
                        "type": "string",
                        "required": true,
                        "description": "Task ID"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "title": "ErrorResponse"
                        }
                    }
                }
            }
        },
        "/reports/{reportId}/sections/{sectionId}/tasks/{taskId}/move": {
            "post": {
                "tags": [
                    "tasks"
                ],
                "summary": "Move a task to another section",
                "description": "Move a task to an existing section, a new section, or the unassigned tasks",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "path",
                        "name": "reportId",
                        "type": "string",
                        "required": true,
                        "description": "Report ID"
                    },
                    {
                        "in": "path",
                        "name": "sectionId",
                        "type": "string",
                        "required": true,
                        "description": "Section ID"
                    },
                    {
                        "in": "path",
                        "name": "taskId",
                        "type": "string",
                        "required": true,
                        "description": "Task ID"
                    },
                    {
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "description": "Destination",
                        "schema": {
                            "type": "object",
                            "title": "MoveTaskRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "title": "ports.TemplateData"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "title": "ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "title": "ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "type": "object",
                            "title": "ErrorResponse"
                        }
                    }
                }
            }
        },
        "/reports/{reportId}/sections/{sectionId}/tasks/{taskId}/move-down": {
            "post": {
                "tags": [
                    "tasks"
                ],
                "summary": "Move a task down within its list",
                "parameters": [
                    {
                        "in": "path",
                        "name": "reportId",
                        "type": "string",
                        "required": true,
                        "description": "Report ID"
                    },
                    {
                        "in": "path",
                        "name": "sectionId",
                        "type": "string",
                        "required": true,
                        "description": "Section ID"
                    },
                    {
                        "in": "path",
                        "name": "taskId",
                        "type": "string",
                        "required": true,
                        "description": "Task ID"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "title": "ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "type": "object",
                            "title": "ErrorResponse"
                        }
                    }
                }
            }
        },
        "/reports/{reportId}/sections/{sectionId}/tasks/{taskId}/move-up": {
            "post": {
                "tags": [
                    "tasks"
                ],
                "summary": "Move a task up within its list",
                "parameters": [
                    {
                        "in": "path",
                        "name": "reportId",
                        "type": "string",
                        "required": true,
                        "description": "Report ID"
                    },
                    {
                        "in": "path",
                        "name": "sectionId",
                        "type": "string",
                        "required": true,
                        "description": "Section ID"
                    },
                    {
                        "in": "path",
                        "name": "taskId",
                        "type": "string",
                        "required": true,
                        "description": "Task ID"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "title": "ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "type": "object",
                            "title": "ErrorResponse"
                        }
                    }
                }
            }
        },
        "/reports/{reportId}/sections/{sectionId}/tasks/{taskId}/questions": {
            "post": {
                "tags": [
                    "questions"
                ],
                "summary": "Add a question",
                "description": "Add a question to a task. The configuration is checked against the question type first.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "path",
                        "name": "reportId",
                        "type": "string",
                        "required": true,
                        "description": "Report ID"
                    },
                    {
                        "in": "path",
                        "name": "sectionId",
                        "type": "string",
                        "required": true,
                        "description": "Section ID"
                    },
                    {
                        "in": "path",
                        "name": "taskId",
                        "type": "string",
                        "required": true,
                        "description": "Task ID"
                    },
                    {
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "description": "Question data",
                        "schema": {
                            "type": "object",
                            "title": "QuestionRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "type": "object",
                            "title": "entities.Question"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "title": "ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "title": "ErrorResponse"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "type": "object",
                            "title": "ValidationErrorResponse"
                        }
                    }
                }
            }
        },
        "/reports/{reportId}/sections/{sectionId}/tasks/{taskId}/questions/{questionId}": {
            "get": {
                "tags": [
                    "questions"
                ],
                "summary": "Get a question",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "path",
                        "name": "reportId",
                        "type": "string",
                        "required": true,
                        "description": "Report ID"
                    },
                    {
                        "in": "path",
                        "name": "sectionId",
                        "type": "string",
                        "required": true,
                        "description": "Section ID"
                    },
                    {
                        "in": "path",
                        "name": "taskId",
                        "type": "string",
                        "required": true,
                        "description": "Task ID"
                    },
                    {
                        "in": "path",
                        "name": "questionId",
                        "type": "string",
                        "required": true,
                        "description": "Question ID"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "title": "entities.Question"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "title": "ErrorResponse"
                        }
                    }
                }
            },
            "patch": {
                "tags": [
                    "questions"
                ],
                "summary": "Update a question",
                "description": "Update a question. When config is given it replaces every type-specific option.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "path",
                        "name": "reportId",
                        "type": "string",
                        "required": true,
                        "description": "Report ID"
                    },
                    {
                        "in": "path",
                        "name": "sectionId",
                        "type": "string",
                        "required": true,
                        "description": "Section ID"
                    },
                    {
                        "in": "path",
                        "name": "taskId",
                        "type": "string",
                        "required": true,
                        "description": "Task ID"
                    },
                    {
                        "in": "path",
                        "name": "questionId",
                        "type": "string",
                        "required": true,
                        "description": "Question ID"
                    },
                    {
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "description": "Fields to update",
                        "schema": {
                            "type": "object",
                            "title": "ports.QuestionUpdate"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "title": "entities.Question"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "title": "ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "title": "ErrorResponse"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "type": "object",
                            "title": "ValidationErrorResponse"
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "questions"
                ],
                "summary": "Delete a question",
                "parameters": [
                    {
                        "in": "path",
                        "name": "reportId",
                        "type": "string",
                        "required": true,
                        "description": "Report ID"
                    },
                    {
                        "in": "path",
                        "name": "sectionId",
                        "type": "string",
                        "required": true,
                        "description": "Section ID"
                    },
                    {
                        "in": "path",
                        "name": "taskId",
                        "type": "string",
                        "required": true,
                        "description": "Task ID"
                    },
                    {
                        "in": "path",
                        "name": "questionId",
                        "type": "string",
                        "required": true,
                        "description": "Question ID"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "title": "ErrorResponse"
                        }
                    }
                }
            }
        },
        "/reports/{reportId}/sections/{sectionId}/tasks/{taskId}/questions/{questionId}/move-down": {
            "post": {
                "tags": [
                    "questions"
                ],
                "summary": "Move a question down",
                "parameters": [
                    {
                        "in": "path",
                        "name": "reportId",
                        "type": "string",
                        "required": true,
                        "description": "Report ID"
                    },
                    {
                        "in": "path",
                        "name": "sectionId",
                        "type": "string",
                        "required": true,
                        "description": "Section ID"
                    },
                    {
                        "in": "path",
                        "name": "taskId",
                        "type": "string",
                        "required": true,
                        "description": "Task ID"
                    },
                    {
                        "in": "path",
                        "name": "questionId",
                        "type": "string",
                        "required": true,
                        "description": "Question ID"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "title": "ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "type": "object",
                            "title": "ErrorResponse"
                        }
                    }
                }
            }
        },
        "/reports/{reportId}/sections/{sectionId}/tasks/{taskId}/questions/{questionId}/move-up": {
            "post": {
                "tags": [
                    "questions"
                ],
                "summary": "Move a question up",
                "parameters": [
                    {
                        "in": "path",
                        "name": "reportId",
                        "type": "string",
                        "required": true,
                        "description": "Report ID"
                    },
                    {
                        "in": "path",
                        "name": "sectionId",
                        "type": "string",
                        "required": true,
                        "description": "Section ID"
                    },
                    {
                        "in": "path",
                        "name": "taskId",
                        "type": "string",
                        "required": true,
                        "description": "Task ID"
                    },
                    {
                        "in": "path",
                        "name": "questionId",
                        "type": "string",
                        "required": true,
                        "description": "Question ID"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "title": "ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "type": "object",
                            "title": "ErrorResponse"
                        }
                    }
                }
            }
        },
        "/reports/{reportId}/unassigned-tasks": {
            "post": {
                "tags": [
                    "tasks"
                ],
                "summary": "Add a task",
                "description": "Add a task to a section, or to the report's unassigned tasks",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "path",
                        "name": "reportId",
                        "type": "string",
                        "required": true,
                        "description": "Report ID"
                    },
                    {
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "description": "Task data",
                        "schema": {
                            "type": "object",
                            "title": "ports.TaskInput"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "type": "object",
                            "title": "entities.Task"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "title": "ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "title": "ErrorResponse"
                        }
                    }
                }
            }
        },
        "/reports/{reportId}/unassigned-tasks/{taskId}": {
            "get": {
                "tags": [
                    "tasks"
                ],
                "summary": "Get a task page",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "path",
                        "name": "reportId",
                        "type": "string",
                        "required": true,
                        "description": "Report ID"
                    },
                    {
                        "in": "path",
                        "name": "taskId",
                        "type": "string",
                        "required": true,
                        "description": "Task ID"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "title": "ports.TemplateData"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "title": "ErrorResponse"
                        }
                    }
                }
            },
            "patch": {
                "tags": [
                    "tasks"
                ],
                "summary": "Rename a task",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "path",
                        "name": "reportId",
                        "type": "string",
                        "required": true,
                        "description": "Report ID"
                    },
                    {
                        "in": "path",
                        "name": "taskId",
                        "type": "string",
                        "required": true,
                        "description": "Task ID"
                    },
                    {
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "description": "Fields to update",
                        "schema": {
                            "type": "object",
                            "title": "ports.TaskUpdate"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "title": "entities.Task"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "title": "ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "title": "ErrorResponse"
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "tasks"
                ],
                "summary": "Delete a task and its questions",
                "parameters": [
                    {
                        "in": "path",
                        "name": "reportId",
                        "type": "string",
                        "required": true,
                        "description": "Report ID"
                    },
                    {
                        "in": "path",
                        "name": "taskId",
                        "type": "string",
                        "required": true,
                        "description": "Task ID"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "title": "ErrorResponse"
                        }
                    }
                }
            }
        },
        "/reports/{reportId}/unassigned-tasks/{taskId}/move": {
            "post": {
                "tags": [
                    "tasks"
                ],
                "summary": "Move a task to another section",
                "description": "Move a task to an existing section, a new section, or the unassigned tasks",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "path",
                        "name": "reportId",
                        "type": "string",
                        "required": true,
                        "description": "Report ID"
                    },
                    {
                        "in": "path",
                        "name": "taskId",
                        "type": "string",
                        "required": true,
                        "description": "Task ID"
                    },
                    {
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "description": "Destination",
                        "schema": {
                            "type": "object",
                            "title": "MoveTaskRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "title": "ports.TemplateData"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "title": "ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "title": "ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "type": "object",
                            "title": "ErrorResponse"
                        }
                    }
                }
            }
        },
        "/reports/{reportId}/unassigned-tasks/{taskId}/move-down": {
            "post": {
                "tags": [
                    "tasks"
                ],
                "summary": "Move a task down within its list",
                "parameters": [
                    {
                        "in": "path",
                        "name": "reportId",
                        "type": "string",
                        "required": true,
                        "description": "Report ID"
                    },
                    {
                        "in": "path",
                        "name": "taskId",
                        "type": "string",
                        "required": true,
                        "description": "Task ID"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "title": "ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "type": "object",
                            "title": "ErrorResponse"
                        }
                    }
                }
            }
        },
        "/reports/{reportId}/unassigned-tasks/{taskId}/move-up": {
            "post": {
                "tags": [
                    "tasks"
                ],
                "summary": "Move a task up within its list",
                "parameters": [
                    {
                        "in": "path",
                        "name": "reportId",
                        "type": "string",
                        "required": true,
                        "description": "Report ID"
                    },
                    {
                        "in": "path",
                        "name": "taskId",
                        "type": "string",
                        "required": true,
                        "description": "Task ID"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "title": "ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "type": "object",
                            "title": "ErrorResponse"
                        }
                    }
                }
            }
        },
        "/reports/{reportId}/unassigned-tasks/{taskId}/questions": {
            "post": {
                "tags": [
                    "questions"
                ],
                "summary": "Add a question",
                "description": "Add a question to a task. The configuration is checked against the question type first.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "path",
                        "name": "reportId",
                        "type": "string",
                        "required": true,
                        "description": "Report ID"
                    },
                    {
                        "in": "path",
                        "name": "taskId",
                        "type": "string",
                        "required": true,
                        "description": "Task ID"
                    },
                    {
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "description": "Question data",
                        "schema": {
                            "type": "object",
                            "title": "QuestionRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "type": "object",
                            "title": "entities.Question"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "title": "ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "title": "ErrorResponse"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "type": "object",
                            "title": "ValidationErrorResponse"
                        }
                    }
                }
            }
        },
        "/reports/{reportId}/unassigned-tasks/{taskId}/questions/{questionId}": {
            "get": {
                "tags": [
                    "questions"
                ],
                "summary": "Get a question",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "path",
                        "name": "reportId",
                        "type": "string",
                        "required": true,
                        "description": "Report ID"
                    },
                    {
                        "in": "path",
                        "name": "taskId",
                        "type": "string",
                        "required": true,
                        "description": "Task ID"
                    },
                    {
                        "in": "path",
                        "name": "questionId",
                        "type": "string",
                        "required": true,
                        "description": "Question ID"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "title": "entities.Question"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "title": "ErrorResponse"
                        }
                    }
                }
            },
            "patch": {
                "tags": [
                    "questions"
                ],
                "summary": "Update a question",
                "description": "Update a question. When config is given it replaces every type-specific option.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "path",
                        "name": "reportId",
                        "type": "string",
                        "required": true,
                        "description": "Report ID"
                    },
                    {
                        "in": "path",
                        "name": "taskId",
                        "type": "string",
                        "required": true,
                        "description": "Task ID"
                    },
                    {
                        "in": "path",
                        "name": "questionId",
                        "type": "string",
                        "required": true,
                        "description": "Question ID"
                    },
                    {
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "description": "Fields to update",
                        "schema": {
                            "type": "object",
                            "title": "ports.QuestionUpdate"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "title": "entities.Question"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "title": "ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "title": "ErrorResponse"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "type": "object",
                            "title": "ValidationErrorResponse"
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "questions"
                ],
                "summary": "Delete a question",
                "parameters": [
                    {
                        "in": "path",
                        "name": "reportId",
                        "type": "string",
                        "required": true,
                        "description": "Report ID"
                    },
                    {
                        "in": "path",
                        "name": "taskId",
                        "type": "string",
                        "required": true,
                        "description": "Task ID"
                    },
                    {
                        "in": "path",
                        "name": "questionId",
                        "type": "string",
                        "required": true,
                        "description": "Question ID"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "title": "ErrorResponse"
                        }
                    }
                }
            }
        },
        "/reports/{reportId}/unassigned-tasks/{taskId}/questions/{questionId}/move-down": {
            "post": {
                "tags": [
                    "questions"
                ],
                "summary": "Move a question down",
                "parameters": [
                    {
                        "in": "path",
                        "name": "reportId",
                        "type": "string",
                        "required": true,
                        "description": "Report ID"
                    },
                    {
                        "in": "path",
                        "name": "taskId",
                        "type": "string",
                        "required": true,
                        "description": "Task ID"
                    },
                    {
                        "in": "path",
                        "name": "questionId",
                        "type": "string",
                        "required": true,
                        "description": "Question ID"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "title": "ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "type": "object",
                            "title": "ErrorResponse"
                        }
                    }
                }
            }
        },
        "/reports/{reportId}/unassigned-tasks/{taskId}/questions/{questionId}/move-up": {
            "post": {
                "tags": [
                    "questions"
                ],
                "summary": "Move a question up",
                "parameters": [
                    {
                        "in": "path",
                        "name": "reportId",
                        "type": "string",
                        "required": true,
                        "description": "Report ID"
                    },
                    {
                        "in": "path",
                        "name": "taskId",
                        "type": "string",
                        "required": true,
                        "description": "Task ID"
                    },
                    {
                        "in": "path",
                        "name": "questionId",
                        "type": "string",
                        "required": true,
                        "description": "Question ID"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "title": "ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "type": "object",
                            "title": "ErrorResponse"
                        }
                    }
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{"http"},
	Title:            "GrantReports API",
	Description:      "Session-scoped report builder for grant monitoring forms",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
