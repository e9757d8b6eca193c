package domain

import "errors"

var (
	ErrNotFound                  = errors.New("resource not found")
	ErrUnauthorized              = errors.New("unauthorized")
	ErrForbidden                 = errors.New("forbidden")
	ErrInvalidCredentials        = errors.New("invalid credentials")
	ErrUserInactive              = errors.New("user is inactive")
	ErrInvalidStatus             = errors.New("invalid status value")
	ErrDuplicateEmail            = errors.New("email already exists")
	ErrDuplicateTreeNumber       = errors.New("tree number already exists in project")
	ErrUnsupportedFileType       = errors.New("unsupported file type")
	ErrFileTooLarge              = errors.New("file exceeds maximum allowed size")
	ErrUploadFailed              = errors.New("file upload to storage failed")
	ErrUnknownReportType         = errors.New("unknown report type")
	ErrReportNotDecompiled       = errors.New("report has not been decompiled yet")
	ErrPDFExportUnavailable      = errors.New("pdf export is not yet available")
	ErrPasswordResetTokenInvalid = errors.New("password reset token is invalid or has already been used")
)
