package models

import "errors"

// Общие ошибки приложения
var (
	// Ошибки ресурсов / БД
	ErrNotFound          = errors.New("resource not found")
	ErrPersistenceFailed = errors.New("failed to persist generated site data")

	// Ошибки генерации сайта
	ErrOrganizationNotFound = errors.New("organization not found")
	ErrUnknownSectionType   = errors.New("unknown section type")
	ErrPlanGenerationFailed = errors.New("site plan generation failed")
	ErrGenerationInProgress = errors.New("site generation is already in progress for this tenant")

	// Ошибки запросов
	ErrInvalidTenantID = errors.New("invalid tenant id")
	ErrBadRequest      = errors.New("bad request")

	// Ошибки аутентификации
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrTokenInvalid   = errors.New("token is invalid")
	ErrTokenMalformed = errors.New("token is malformed")
	ErrTokenExpired   = errors.New("token has expired")
)
