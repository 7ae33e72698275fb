package i18n

var ALLOW_LANG = map[string]bool{
	"sv": true,
	"en": true,
}

const DEFAULT_LANG = "sv"

const (
	ERROR_INTERNAL          = "error.internal"
	ERROR_NOT_FOUND         = "error.notfound"
	ERROR_INVALIDARGUMENT   = "error.invalidargument"
	ERROR_UNAUTHORIZED      = "error.unauthorized"
	ERROR_PERMISSION_DENIED = "error.permission.denied"
	ERROR_FORBIDDEN         = "error.forbidden"
	ERROR_EXIST             = "error.exist"
	ERROR_TOO_MANY_REQUESTS = "error.tooManyRequests"

	ERROR_SESSION_NOT_ACTIVE     = "error.session.not_active"
	ERROR_SESSION_ALREADY_ACTIVE = "error.session.already_active"
	ERROR_SESSION_ENDED          = "error.session.ended"
	ERROR_INVALID_MODE           = "error.invalid.mode"
	ERROR_INVALID_TOKEN          = "error.invalid.token"
)
