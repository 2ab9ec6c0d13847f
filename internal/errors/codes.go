package errors

// Error code constants returned in the "error" field of failure
// responses. Format: CATEGORY_SPECIFIC_DETAIL. The frontend maps these
// to display messages.

const (
	// ==================== Authentication (AUTH_) ====================
	AuthUnauthorized       = "AUTH_UNAUTHORIZED"        // no valid session
	AuthInvalidCredentials = "AUTH_INVALID_CREDENTIALS" // wrong email/password
	AuthTokenExpired       = "AUTH_TOKEN_EXPIRED"       // session expired
	AuthTokenInvalid       = "AUTH_TOKEN_INVALID"       // bad session token
	AuthOTPInvalid         = "AUTH_OTP_INVALID"         // wrong or expired OTP
	AuthEmailAlreadyExists = "AUTH_EMAIL_EXISTS"        // duplicate email

	// ==================== Authorization (AUTHZ_) ====================
	AuthzForbidden = "AUTHZ_FORBIDDEN" // operation not allowed

	// ==================== Validation (VALIDATION_) ====================
	ValidationInvalidInput = "VALIDATION_INVALID_INPUT" // malformed input
	ValidationRequired     = "VALIDATION_REQUIRED"      // missing fields

	// ==================== Resources (RESOURCE_) ====================
	ResourceNotFound      = "RESOURCE_NOT_FOUND"       // record absent
	ResourceAlreadyExists = "RESOURCE_ALREADY_EXISTS"  // duplicate

	// ==================== Uploads (UPLOAD_) ====================
	UploadInvalidFileType = "UPLOAD_INVALID_FILE_TYPE" // disallowed type
	UploadFailed          = "UPLOAD_FAILED"            // media store error
	UploadMalformedBody   = "UPLOAD_MALFORMED_BODY"    // bad multipart body

	// ==================== Mail (MAIL_) ====================
	MailDeliveryFailed = "MAIL_DELIVERY_FAILED" // SMTP relay error

	// ==================== Internal (INTERNAL_) ====================
	InternalServerError = "INTERNAL_SERVER_ERROR" // unexpected failure
	InternalExternalAPI = "INTERNAL_EXTERNAL_API" // upstream API error
)
