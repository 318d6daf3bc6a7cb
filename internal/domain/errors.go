package domain

import "errors"

// ErrorKind - категория бизнес-ошибки, по ней транспорт выбирает статус ответа
type ErrorKind int

const (
	KindValidation ErrorKind = iota + 1
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
	KindUnavailable
)

// Error - бизнес-ошибка с сообщением для клиента
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// NewError создаёт бизнес-ошибку указанной категории
func NewError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// AsError извлекает бизнес-ошибку из цепочки err
func AsError(err error) (*Error, bool) {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr, true
	}
	return nil, false
}

// Определение бизнес-ошибок
var (
	ErrTenantNotFound         = NewError(KindNotFound, "tenant not found")
	ErrUserNotFound           = NewError(KindNotFound, "user not found")
	ErrEmployeeNotFound       = NewError(KindNotFound, "employee not found")
	ErrReviewerNotFound       = NewError(KindNotFound, "reviewer not found")
	ErrGoalNotFound           = NewError(KindNotFound, "goal not found")
	ErrReviewNotFound         = NewError(KindNotFound, "review not found")
	ErrLeaveRequestNotFound   = NewError(KindNotFound, "leave request not found")
	ErrTimesheetNotFound      = NewError(KindNotFound, "timesheet not found")
	ErrAnnouncementNotFound   = NewError(KindNotFound, "announcement not found")
	ErrRecognitionNotFound    = NewError(KindNotFound, "recognition not found")
	ErrOnboardingTaskNotFound = NewError(KindNotFound, "onboarding task not found")
	ErrDocumentNotFound       = NewError(KindNotFound, "document not found")
	ErrNoStoredFile           = NewError(KindNotFound, "document has no stored file")

	ErrDuplicateTenantName    = NewError(KindConflict, "tenant with this name already exists")
	ErrDuplicateUserEmail     = NewError(KindConflict, "user with this email already exists")
	ErrDuplicateEmployeeEmail = NewError(KindConflict, "employee with this email already exists")
	ErrEmployeeAlreadyLinked  = NewError(KindConflict, "employee already has a user account")

	ErrInvalidCredentials = NewError(KindUnauthorized, "invalid email or password")
	ErrInvalidToken       = NewError(KindUnauthorized, "invalid or expired token")
	ErrForbidden          = NewError(KindForbidden, "insufficient permissions")
	ErrTenantInactive     = NewError(KindForbidden, "tenant is inactive")

	ErrInvalidDate           = NewError(KindValidation, "dates must use the YYYY-MM-DD format")
	ErrDueDateNotFuture      = NewError(KindValidation, "due date must be in the future")
	ErrPastDueDateNotAllowed = NewError(KindValidation, "due date can only be in the past when status is Completed")
	ErrInvalidKeyResults     = NewError(KindValidation, "key results must be a list of strings")
	ErrInvalidDateRange      = NewError(KindValidation, "end date must not be before start date")
	ErrExpiryBeforePublish   = NewError(KindValidation, "expiry date must not be before publish date")
	ErrSelfRecognition       = NewError(KindValidation, "an employee cannot recognize themselves")
	ErrSelfReview            = NewError(KindValidation, "an employee cannot review themselves")
	ErrInvalidStorageKey     = NewError(KindValidation, "storage key does not belong to this tenant")

	ErrStorageUnavailable = NewError(KindUnavailable, "file storage is not configured")
)
