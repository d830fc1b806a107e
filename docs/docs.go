// Package docs описание API в формате Swagger для /docs.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "termsOfService": "http://swagger.io/terms/",
        "contact": {
            "name": "API Support",
            "url": "http://www.swagger.io/support",
            "email": "support@swagger.io"
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
        "/health": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Health"
                ],
                "summary": "Проверка готовности",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                }
            }
        },
        "/trials": {
            "get": {
                "description": "Группы по дате окончания пробного периода по возрастанию, внутри группы по engagement_score по убыванию.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Trials"
                ],
                "summary": "Список пользователей пробного периода",
                "parameters": [
                    {
                        "type": "string",
                        "description": "all, subscribed, active, ending_today, ending_tomorrow, expired",
                        "name": "status",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "all, apprentice, electrician, employer, none",
                        "name": "role",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "all, hot, warm, cold",
                        "name": "engagement",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Подстрока имени или username",
                        "name": "search",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/analytics.ViewResult"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Неизвестное значение фильтра",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Ошибка загрузки данных",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/trials/refresh": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Trials"
                ],
                "summary": "Пересобрать список",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    },
                    "500": {
                        "description": "Ошибка загрузки данных",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/trials/hidden": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Trials"
                ],
                "summary": "Скрытые пользователи",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "type": "string"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "500": {
                        "description": "Ошибка сервера",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                }
            },
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Trials"
                ],
                "summary": "Вернуть скрытых пользователей",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    },
                    "500": {
                        "description": "Ошибка сервера",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/trials/{id}/timeline": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Trials"
                ],
                "summary": "Лента активности пользователя",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID пользователя",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/timeline.Timeline"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "404": {
                        "description": "Пользователь не найден",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Ошибка загрузки данных",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/trials/{id}/hide": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Trials"
                ],
                "summary": "Скрыть пользователя",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID пользователя",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    },
                    "404": {
                        "description": "Пользователь не найден",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Ошибка сервера",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/trials/{id}/remind": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Reminders"
                ],
                "summary": "Отправить письмо пользователю",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID пользователя",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Вид письма",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/single.Request"
                        }
                    }
                ],
                "responses": {
                    "202": {
                        "description": "Accepted",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.ReminderMessage"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Некорректный JSON",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Пользователь не найден",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Пользователь уже оформил подписку",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    },
                    "422": {
                        "description": "Ошибка валидации или нет адреса почты",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Ошибка публикации",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/trials/remind": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Reminders"
                ],
                "summary": "Массовая отправка писем",
                "parameters": [
                    {
                        "description": "Вид письма и получатели",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/bulk.Request"
                        }
                    }
                ],
                "responses": {
                    "202": {
                        "description": "Accepted",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/reminder.BulkResult"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Некорректный JSON",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    },
                    "422": {
                        "description": "Ошибка валидации",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Ошибка сервера",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "response.Response": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string"
                },
                "error": {
                    "type": "string"
                },
                "data": {}
            }
        },
        "response.ErrorResponse": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string",
                    "example": "Error"
                },
                "error": {
                    "type": "string",
                    "example": "invalid request body"
                }
            }
        },
        "models.Counters": {
            "type": "object",
            "properties": {
                "points": {
                    "type": "integer"
                },
                "streak": {
                    "type": "integer"
                },
                "study_sessions": {
                    "type": "integer"
                },
                "quotes_count": {
                    "type": "integer"
                },
                "certificate_count": {
                    "type": "integer"
                },
                "login_count": {
                    "type": "integer"
                },
                "unique_pages_visited": {
                    "type": "integer"
                },
                "feature_use_count": {
                    "type": "integer"
                },
                "total_seconds_tracked": {
                    "type": "integer"
                },
                "active_days": {
                    "type": "integer"
                },
                "last_activity": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "models.TrialUser": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "full_name": {
                    "type": "string"
                },
                "username": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "role": {
                    "type": "string",
                    "enum": [
                        "apprentice",
                        "electrician",
                        "employer",
                        "none"
                    ]
                },
                "subscribed": {
                    "type": "boolean"
                },
                "created_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "last_sign_in": {
                    "type": "string",
                    "format": "date-time"
                },
                "trial_end": {
                    "type": "string",
                    "format": "date-time"
                },
                "trial_status": {
                    "type": "string",
                    "enum": [
                        "active",
                        "ending_today",
                        "ending_tomorrow",
                        "expired",
                        "subscribed"
                    ]
                },
                "days_remaining": {
                    "type": "integer"
                },
                "engagement_score": {
                    "type": "integer"
                },
                "counters": {
                    "$ref": "#/definitions/models.Counters"
                }
            }
        },
        "view.Filter": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string"
                },
                "role": {
                    "type": "string"
                },
                "engagement": {
                    "type": "string"
                },
                "search": {
                    "type": "string"
                }
            }
        },
        "view.Group": {
            "type": "object",
            "properties": {
                "date": {
                    "type": "string",
                    "example": "2024-06-20"
                },
                "users": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.TrialUser"
                    }
                }
            }
        },
        "aggregator.Summary": {
            "type": "object",
            "properties": {
                "total": {
                    "type": "integer"
                },
                "by_status": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "integer"
                    }
                },
                "by_tier": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "integer"
                    }
                },
                "by_role": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "integer"
                    }
                },
                "conversion_rate": {
                    "type": "number"
                }
            }
        },
        "analytics.ViewResult": {
            "type": "object",
            "properties": {
                "generated_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "filter": {
                    "$ref": "#/definitions/view.Filter"
                },
                "groups": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/view.Group"
                    }
                },
                "total": {
                    "type": "integer"
                },
                "hidden_count": {
                    "type": "integer"
                },
                "summary": {
                    "$ref": "#/definitions/aggregator.Summary"
                }
            }
        },
        "models.ActivityItem": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "action_type": {
                    "type": "string"
                },
                "detail": {
                    "type": "string"
                },
                "extra_info": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "synthetic": {
                    "type": "boolean"
                }
            }
        },
        "models.ScoreBreakdown": {
            "type": "object",
            "properties": {
                "base_points": {
                    "type": "integer"
                },
                "streak_bonus": {
                    "type": "integer"
                },
                "study_bonus": {
                    "type": "integer"
                },
                "quote_bonus": {
                    "type": "integer"
                },
                "certificate_bonus": {
                    "type": "integer"
                },
                "time_bonus": {
                    "type": "integer"
                },
                "page_view_bonus": {
                    "type": "integer"
                },
                "login_bonus": {
                    "type": "integer"
                },
                "feature_bonus": {
                    "type": "integer"
                },
                "total": {
                    "type": "integer"
                }
            }
        },
        "timeline.Timeline": {
            "type": "object",
            "properties": {
                "user_id": {
                    "type": "string"
                },
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.ActivityItem"
                    }
                },
                "first_action": {
                    "$ref": "#/definitions/models.ActivityItem"
                },
                "breakdown": {
                    "$ref": "#/definitions/models.ScoreBreakdown"
                },
                "time_to_first_value": {
                    "description": "TimeToFirstValue то же время в виде \"1h 5m\".",
                    "type": "string"
                },
                "time_to_first_value_seconds": {
                    "description": "TimeToFirstValueSeconds время от регистрации до первого действия в секундах.",
                    "type": "integer"
                }
            }
        },
        "models.ReminderMessage": {
            "type": "object",
            "properties": {
                "message_id": {
                    "type": "string"
                },
                "batch_id": {
                    "type": "string"
                },
                "kind": {
                    "type": "string",
                    "enum": [
                        "reminder",
                        "offer"
                    ]
                },
                "user_id": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "full_name": {
                    "type": "string"
                },
                "username": {
                    "type": "string"
                },
                "trial_status": {
                    "type": "string"
                },
                "trial_end": {
                    "type": "string",
                    "format": "date-time"
                },
                "days_remaining": {
                    "type": "integer"
                }
            }
        },
        "single.Request": {
            "type": "object",
            "properties": {
                "kind": {
                    "type": "string",
                    "enum": [
                        "reminder",
                        "offer"
                    ],
                    "example": "reminder"
                }
            },
            "required": [
                "kind"
            ]
        },
        "bulk.Request": {
            "type": "object",
            "properties": {
                "kind": {
                    "type": "string",
                    "enum": [
                        "reminder",
                        "offer"
                    ],
                    "example": "offer"
                },
                "user_ids": {
                    "type": "array",
                    "minItems": 1,
                    "maxItems": 1000,
                    "items": {
                        "type": "string"
                    }
                }
            },
            "required": [
                "kind",
                "user_ids"
            ]
        },
        "reminder.BulkResult": {
            "type": "object",
            "properties": {
                "batch_id": {
                    "type": "string"
                },
                "kind": {
                    "type": "string"
                },
                "sent": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "failed": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "string"
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
	Schemes:          []string{},
	Title:            "Trial Tracker API",
	Description:      "API аналитики пробного периода: статусы, вовлечённость, ленты активности и напоминания",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
