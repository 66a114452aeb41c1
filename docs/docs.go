// Package docs holds the Swagger 2.0 document served at /swagger/doc.json.
// It mirrors the @-annotations on the handlers; regenerate it with
// swag init -g cmd/main.go -o docs after changing them.
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
		"/admin/events/pending": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"admin"
				],
				"summary": "Очередь модерации мероприятий",
				"responses": {
					"200": {
						"description": "Мероприятия в ожидании",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					},
					"401": {
						"description": "Неавторизован",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"403": {
						"description": "Нет прав",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/admin/events/{eventID}": {
			"delete": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Удаление из режима редактирования, без уведомления автора.",
				"produces": [
					"application/json"
				],
				"tags": [
					"admin"
				],
				"summary": "Удалить мероприятие",
				"parameters": [
					{
						"type": "integer",
						"description": "Event ID",
						"name": "eventID",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/services.ModerationResult"
						}
					},
					"404": {
						"description": "Мероприятие не найдено",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			},
			"patch": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"admin"
				],
				"summary": "Редактировать мероприятие",
				"parameters": [
					{
						"type": "integer",
						"description": "Event ID",
						"name": "eventID",
						"in": "path",
						"required": true
					},
					{
						"description": "Изменяемые поля",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/models.EventPatch"
						}
					}
				],
				"responses": {
					"200": {
						"description": "Обновленное мероприятие",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					},
					"400": {
						"description": "Некорректный запрос",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"404": {
						"description": "Мероприятие не найдено",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"422": {
						"description": "Ошибка валидации",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/admin/events/{eventID}/approve": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Публикует мероприятие и уведомляет автора заявки по email.",
				"produces": [
					"application/json"
				],
				"tags": [
					"admin"
				],
				"summary": "Одобрить мероприятие",
				"parameters": [
					{
						"type": "integer",
						"description": "Event ID",
						"name": "eventID",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/services.ModerationResult"
						}
					},
					"404": {
						"description": "Мероприятие не найдено",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"409": {
						"description": "Недопустимый переход статуса",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/admin/events/{eventID}/registrations": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"admin"
				],
				"summary": "Регистрации на мероприятие",
				"parameters": [
					{
						"type": "integer",
						"description": "Event ID",
						"name": "eventID",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "Регистрации",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					},
					"404": {
						"description": "Мероприятие не найдено",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/admin/events/{eventID}/registrations.csv": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"text/csv"
				],
				"tags": [
					"admin"
				],
				"summary": "Выгрузка регистраций мероприятия в CSV",
				"parameters": [
					{
						"type": "integer",
						"description": "Event ID",
						"name": "eventID",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "CSV",
						"schema": {
							"type": "file"
						}
					},
					"404": {
						"description": "Мероприятие не найдено",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/admin/events/{eventID}/reject": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Удаляет мероприятие и отправляет автору письмо об отказе.",
				"produces": [
					"application/json"
				],
				"tags": [
					"admin"
				],
				"summary": "Отклонить мероприятие из очереди модерации",
				"parameters": [
					{
						"type": "integer",
						"description": "Event ID",
						"name": "eventID",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/services.ModerationResult"
						}
					},
					"404": {
						"description": "Мероприятие не найдено",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/admin/users": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"admin"
				],
				"summary": "Список пользователей",
				"parameters": [
					{
						"type": "string",
						"description": "Фильтр по статусу (pending, approved)",
						"name": "state",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "Пользователи",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					},
					"400": {
						"description": "Неизвестный статус",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/admin/users/{email}/approve": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"admin"
				],
				"summary": "Одобрить пользователя",
				"parameters": [
					{
						"type": "string",
						"description": "Email пользователя",
						"name": "email",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/services.ModerationResult"
						}
					},
					"404": {
						"description": "Пользователь не найден",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"409": {
						"description": "Недопустимый переход статуса",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/admin/users/{email}/reject": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Удаляет пользователя и отправляет письмо об отказе.",
				"produces": [
					"application/json"
				],
				"tags": [
					"admin"
				],
				"summary": "Отклонить пользователя",
				"parameters": [
					{
						"type": "string",
						"description": "Email пользователя",
						"name": "email",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/services.ModerationResult"
						}
					},
					"404": {
						"description": "Пользователь не найден",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/auth/admin": {
			"post": {
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"auth"
				],
				"summary": "Вход администратора",
				"parameters": [
					{
						"description": "Пароль администратора",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/models.AdminLoginDraft"
						}
					}
				],
				"responses": {
					"200": {
						"description": "Токен и сессия",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					},
					"401": {
						"description": "Неверный пароль",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/auth/login": {
			"post": {
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"auth"
				],
				"summary": "Вход пользователя",
				"parameters": [
					{
						"description": "Email и пароль",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/models.LoginDraft"
						}
					}
				],
				"responses": {
					"200": {
						"description": "Токен и сессия",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					},
					"401": {
						"description": "Неверный email или пароль",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"403": {
						"description": "Аккаунт еще не одобрен",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/auth/register": {
			"post": {
				"description": "Создает пользователя в статусе ожидания модерации.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"auth"
				],
				"summary": "Регистрация организатора",
				"parameters": [
					{
						"description": "Данные регистрации",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/models.RegistrationDraft"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Пользователь создан",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					},
					"400": {
						"description": "Некорректный запрос",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"409": {
						"description": "Email уже занят",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"422": {
						"description": "Ошибка валидации",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					}
				}
			}
		},
		"/calendar": {
			"get": {
				"description": "Сетка начинается с воскресенья; в днях перечислены одобренные предстоящие мероприятия.",
				"produces": [
					"application/json"
				],
				"tags": [
					"calendar"
				],
				"summary": "Календарная сетка месяца",
				"parameters": [
					{
						"type": "integer",
						"description": "Год (по умолчанию текущий)",
						"name": "year",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Месяц 1-12 (по умолчанию текущий)",
						"name": "month",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "Сетка и ссылки на соседние месяцы",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					},
					"400": {
						"description": "Некорректные параметры",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/calendar.ics": {
			"get": {
				"description": "Если указан только год, выгружается весь год.",
				"produces": [
					"text/calendar"
				],
				"tags": [
					"calendar"
				],
				"summary": "Экспорт мероприятий в iCalendar",
				"parameters": [
					{
						"type": "integer",
						"description": "Год",
						"name": "year",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Месяц 1-12",
						"name": "month",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "ICS",
						"schema": {
							"type": "file"
						}
					},
					"400": {
						"description": "Некорректные параметры",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/dictionaries": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"events"
				],
				"summary": "Справочники видов спорта, уровней и типов мероприятий",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.Dictionaries"
						}
					}
				}
			}
		},
		"/events": {
			"get": {
				"description": "Возвращает предстоящие и прошедшие мероприятия с учетом фильтров.",
				"produces": [
					"application/json"
				],
				"tags": [
					"events"
				],
				"summary": "Список одобренных мероприятий",
				"parameters": [
					{
						"type": "string",
						"description": "Вид спорта (all - без фильтра)",
						"name": "sport",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Поиск по названию, месту, организатору и номеру мероприятия",
						"name": "search",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/services.EventLists"
						}
					},
					"500": {
						"description": "Внутренняя ошибка",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			},
			"post": {
				"description": "Мероприятие администратора публикуется сразу, остальные попадают на модерацию.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"events"
				],
				"summary": "Подать мероприятие",
				"parameters": [
					{
						"description": "Данные мероприятия",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/models.EventDraft"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Мероприятие создано",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					},
					"400": {
						"description": "Некорректный запрос",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"422": {
						"description": "Не заполнены обязательные поля",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					}
				}
			}
		},
		"/events/{eventID}": {
			"get": {
				"description": "Неодобренные мероприятия видны только администратору и автору заявки.",
				"produces": [
					"application/json"
				],
				"tags": [
					"events"
				],
				"summary": "Получить мероприятие по ID",
				"parameters": [
					{
						"type": "integer",
						"description": "Event ID",
						"name": "eventID",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "Мероприятие",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					},
					"400": {
						"description": "Некорректный ID",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"404": {
						"description": "Мероприятие не найдено",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/events/{eventID}/register": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"events"
				],
				"summary": "Записаться на мероприятие",
				"parameters": [
					{
						"type": "integer",
						"description": "Event ID",
						"name": "eventID",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"201": {
						"description": "Регистрация и обновленное мероприятие",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					},
					"400": {
						"description": "Некорректный ID",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"404": {
						"description": "Мероприятие не найдено",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"409": {
						"description": "Мест нет / регистрация закрыта",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/me": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"auth"
				],
				"summary": "Текущая сессия",
				"responses": {
					"200": {
						"description": "Сессия и профиль пользователя",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					},
					"401": {
						"description": "Неавторизован",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			},
			"patch": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"auth"
				],
				"summary": "Обновить профиль",
				"parameters": [
					{
						"description": "Изменяемые поля",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/models.UserPatch"
						}
					}
				],
				"responses": {
					"200": {
						"description": "Обновленный профиль",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					},
					"401": {
						"description": "Неавторизован",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"403": {
						"description": "Только для пользователей",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"422": {
						"description": "Ошибка валидации",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/me/registrations": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"auth"
				],
				"summary": "Мои регистрации на мероприятия",
				"responses": {
					"200": {
						"description": "Регистрации пользователя",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					},
					"401": {
						"description": "Неавторизован",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"403": {
						"description": "Только для пользователей",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/uploads/document": {
			"post": {
				"description": "Положение, регламент и т.п. Допустимы pdf, doc, docx, xls, xlsx.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"uploads"
				],
				"summary": "Загрузить документ",
				"parameters": [
					{
						"description": "Имя файла и содержимое в base64",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/services.UploadRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/services.UploadResponse"
						}
					},
					"400": {
						"description": "Недопустимый файл",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"500": {
						"description": "Ошибка хранилища",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/uploads/media": {
			"post": {
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"uploads"
				],
				"summary": "Загрузить фото или видео",
				"parameters": [
					{
						"description": "Имя файла, содержимое в base64 и тип (image|video)",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/services.UploadRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/services.UploadResponse"
						}
					},
					"400": {
						"description": "Недопустимый файл",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"500": {
						"description": "Ошибка хранилища",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		}
	},
	"definitions": {
		"models.AdminLoginDraft": {
			"type": "object",
			"properties": {
				"password": {
					"type": "string"
				}
			}
		},
		"models.Attachment": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"url": {
					"type": "string"
				}
			}
		},
		"models.Dictionaries": {
			"type": "object",
			"properties": {
				"event_levels": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/models.DictionaryEntry"
					}
				},
				"event_types": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/models.DictionaryEntry"
					}
				},
				"sports": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/models.DictionaryEntry"
					}
				}
			}
		},
		"models.DictionaryEntry": {
			"type": "object",
			"properties": {
				"label": {
					"type": "string"
				},
				"rank": {
					"type": "integer"
				},
				"value": {
					"type": "string"
				}
			}
		},
		"models.Event": {
			"type": "object",
			"properties": {
				"custom_sport": {
					"type": "string"
				},
				"date": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"documents": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/models.Attachment"
					}
				},
				"event_level": {
					"$ref": "#/definitions/models.EventLevel"
				},
				"event_number": {
					"type": "string"
				},
				"event_type": {
					"$ref": "#/definitions/models.EventType"
				},
				"id": {
					"type": "integer"
				},
				"location": {
					"type": "string"
				},
				"max_participants": {
					"type": "integer"
				},
				"max_spectators": {
					"type": "integer"
				},
				"media": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/models.Media"
					}
				},
				"organizer": {
					"type": "string"
				},
				"participants": {
					"type": "integer"
				},
				"result": {
					"type": "string"
				},
				"sport": {
					"$ref": "#/definitions/models.Sport"
				},
				"state": {
					"$ref": "#/definitions/models.ModerationState"
				},
				"status": {
					"$ref": "#/definitions/models.EventStatus"
				},
				"submitted_at": {
					"type": "string"
				},
				"submitted_by": {
					"type": "string"
				},
				"time": {
					"type": "string"
				},
				"title": {
					"type": "string"
				}
			}
		},
		"models.EventDraft": {
			"type": "object",
			"properties": {
				"custom_sport": {
					"type": "string"
				},
				"date": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"documents": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/models.Attachment"
					}
				},
				"event_level": {
					"$ref": "#/definitions/models.EventLevel"
				},
				"event_number": {
					"type": "string"
				},
				"event_type": {
					"$ref": "#/definitions/models.EventType"
				},
				"location": {
					"type": "string"
				},
				"max_participants": {
					"type": "integer"
				},
				"max_spectators": {
					"type": "integer"
				},
				"media": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/models.Media"
					}
				},
				"organizer": {
					"type": "string"
				},
				"result": {
					"type": "string"
				},
				"sport": {
					"$ref": "#/definitions/models.Sport"
				},
				"status": {
					"$ref": "#/definitions/models.EventStatus"
				},
				"time": {
					"type": "string"
				},
				"title": {
					"type": "string"
				}
			}
		},
		"models.EventLevel": {
			"type": "string",
			"enum": [
				"municipal",
				"intermunicipal",
				"regional",
				"interregional",
				"federal_district",
				"national",
				"european",
				"world"
			],
			"x-enum-varnames": [
				"LevelMunicipal",
				"LevelIntermunicipal",
				"LevelRegional",
				"LevelInterregional",
				"LevelFederalDistrict",
				"LevelNational",
				"LevelEuropean",
				"LevelWorld"
			]
		},
		"models.EventPatch": {
			"type": "object",
			"properties": {
				"custom_sport": {
					"type": "string"
				},
				"date": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"documents": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/models.Attachment"
					}
				},
				"event_level": {
					"$ref": "#/definitions/models.EventLevel"
				},
				"event_number": {
					"type": "string"
				},
				"event_type": {
					"$ref": "#/definitions/models.EventType"
				},
				"location": {
					"type": "string"
				},
				"max_participants": {
					"type": "integer"
				},
				"max_spectators": {
					"type": "integer"
				},
				"media": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/models.Media"
					}
				},
				"organizer": {
					"type": "string"
				},
				"result": {
					"type": "string"
				},
				"sport": {
					"$ref": "#/definitions/models.Sport"
				},
				"status": {
					"$ref": "#/definitions/models.EventStatus"
				},
				"time": {
					"type": "string"
				},
				"title": {
					"type": "string"
				}
			}
		},
		"models.EventStatus": {
			"type": "string",
			"enum": [
				"upcoming",
				"past"
			],
			"x-enum-varnames": [
				"EventStatusUpcoming",
				"EventStatusPast"
			]
		},
		"models.EventType": {
			"type": "string",
			"enum": [
				"local",
				"away"
			],
			"x-enum-varnames": [
				"EventTypeLocal",
				"EventTypeAway"
			]
		},
		"models.LoginDraft": {
			"type": "object",
			"properties": {
				"email": {
					"type": "string"
				},
				"password": {
					"type": "string"
				}
			}
		},
		"models.Media": {
			"type": "object",
			"properties": {
				"kind": {
					"$ref": "#/definitions/models.MediaKind"
				},
				"name": {
					"type": "string"
				},
				"url": {
					"type": "string"
				}
			}
		},
		"models.MediaKind": {
			"type": "string",
			"enum": [
				"image",
				"video"
			],
			"x-enum-varnames": [
				"MediaImage",
				"MediaVideo"
			]
		},
		"models.ModerationState": {
			"type": "string",
			"enum": [
				"pending",
				"approved",
				"deleted"
			],
			"x-enum-varnames": [
				"StatePending",
				"StateApproved",
				"StateDeleted"
			]
		},
		"models.RegistrationDraft": {
			"type": "object",
			"properties": {
				"birth_date": {
					"type": "string"
				},
				"company_name": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"inn": {
					"type": "string"
				},
				"legal_address": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"passport_issue_date": {
					"type": "string"
				},
				"passport_issued_by": {
					"type": "string"
				},
				"passport_number": {
					"type": "string"
				},
				"passport_series": {
					"type": "string"
				},
				"password": {
					"type": "string"
				},
				"phone": {
					"type": "string"
				},
				"user_type": {
					"$ref": "#/definitions/models.UserType"
				}
			}
		},
		"models.Sport": {
			"type": "string",
			"enum": [
				"all",
				"football",
				"basketball",
				"running",
				"volleyball",
				"tennis",
				"hockey",
				"swimming",
				"skiing",
				"other"
			],
			"x-enum-varnames": [
				"SportAll",
				"SportFootball",
				"SportBasketball",
				"SportRunning",
				"SportVolleyball",
				"SportTennis",
				"SportHockey",
				"SportSwimming",
				"SportSkiing",
				"SportOther"
			]
		},
		"models.User": {
			"type": "object",
			"properties": {
				"birth_date": {
					"type": "string"
				},
				"company_name": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"inn": {
					"type": "string"
				},
				"legal_address": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"passport_issue_date": {
					"type": "string"
				},
				"passport_issued_by": {
					"type": "string"
				},
				"passport_number": {
					"type": "string"
				},
				"passport_series": {
					"type": "string"
				},
				"phone": {
					"type": "string"
				},
				"state": {
					"$ref": "#/definitions/models.ModerationState"
				},
				"submitted_at": {
					"type": "string"
				},
				"user_type": {
					"$ref": "#/definitions/models.UserType"
				}
			}
		},
		"models.UserPatch": {
			"type": "object",
			"properties": {
				"company_name": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"legal_address": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"password": {
					"type": "string"
				},
				"phone": {
					"type": "string"
				}
			}
		},
		"models.UserType": {
			"type": "string",
			"enum": [
				"individual",
				"legal"
			],
			"x-enum-varnames": [
				"UserTypeIndividual",
				"UserTypeLegal"
			]
		},
		"services.EventLists": {
			"type": "object",
			"properties": {
				"past": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/models.Event"
					}
				},
				"upcoming": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/models.Event"
					}
				}
			}
		},
		"services.ModerationResult": {
			"type": "object",
			"properties": {
				"event": {
					"$ref": "#/definitions/models.Event"
				},
				"notification_error": {
					"type": "string"
				},
				"state": {
					"$ref": "#/definitions/models.ModerationState"
				},
				"user": {
					"$ref": "#/definitions/models.User"
				}
			}
		},
		"services.UploadRequest": {
			"type": "object",
			"properties": {
				"file_content": {
					"type": "string"
				},
				"file_name": {
					"type": "string"
				},
				"file_type": {
					"type": "string"
				}
			}
		},
		"services.UploadResponse": {
			"type": "object",
			"properties": {
				"file_id": {
					"type": "string"
				},
				"file_name": {
					"type": "string"
				},
				"file_type": {
					"$ref": "#/definitions/models.MediaKind"
				},
				"url": {
					"type": "string"
				}
			}
		}
	},
	"securityDefinitions": {
		"BearerAuth": {
			"description": "Введите \"Bearer\" и JWT токен.",
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
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Sports Calendar API",
	Description:      "Календарь спортивных мероприятий муниципального образования.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
