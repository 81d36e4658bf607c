package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates that the caller could not be authenticated.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates that the authenticated caller is not allowed to perform the operation.
var ErrForbidden = errors.New("forbidden")

// ErrInsufficientBalance indicates that a leave request exceeds the employee's remaining balance.
var ErrInsufficientBalance = errors.New("insufficient leave balance")

// ErrAlreadyProcessed indicates that a leave request has already been approved or rejected.
var ErrAlreadyProcessed = errors.New("leave request has already been processed")

// ErrHolidayOverlap indicates that a requested leave range overlaps a company holiday.
var ErrHolidayOverlap = errors.New("leave request overlaps with holidays")
