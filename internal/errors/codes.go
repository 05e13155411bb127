package errors

// Error code constants returned to the frontend.
// Format: CATEGORY_SPECIFIC_DETAIL; clients map these to display messages.

const (
	// ==================== Auth (AUTH_) ====================
	AuthUnauthorized       = "AUTH_UNAUTHORIZED"
	AuthInvalidCredentials = "AUTH_INVALID_CREDENTIALS"
	AuthTokenExpired       = "AUTH_TOKEN_EXPIRED"
	AuthTokenInvalid       = "AUTH_TOKEN_INVALID"
	AuthTokenRevoked       = "AUTH_TOKEN_REVOKED"
	AuthEmailAlreadyExists = "AUTH_EMAIL_EXISTS"

	// ==================== Authorization (AUTHZ_) ====================
	AuthzForbidden    = "AUTHZ_FORBIDDEN"
	AuthzAccessDenied = "AUTHZ_ACCESS_DENIED"
	AuthzAdminOnly    = "AUTHZ_ADMIN_ONLY"
	AuthzAdvisorOnly  = "AUTHZ_ADVISOR_ONLY"
	AuthzOwnerOnly    = "AUTHZ_OWNER_ONLY"

	// ==================== Validation (VALIDATION_) ====================
	ValidationInvalidInput  = "VALIDATION_INVALID_INPUT"
	ValidationInvalidID     = "VALIDATION_INVALID_ID"
	ValidationInvalidFormat = "VALIDATION_INVALID_FORMAT"
	ValidationRequired      = "VALIDATION_REQUIRED"

	// ==================== Resource (RESOURCE_) ====================
	ResourceNotFound      = "RESOURCE_NOT_FOUND"
	ResourceAlreadyExists = "RESOURCE_ALREADY_EXISTS"
	ResourceConflict      = "RESOURCE_CONFLICT"

	// ==================== Peace Seal (SEAL_) ====================
	SealCompanyNotFound         = "SEAL_COMPANY_NOT_FOUND"
	SealQuestionnaireNotFound   = "SEAL_QUESTIONNAIRE_NOT_FOUND"
	SealQuestionnaireLocked     = "SEAL_QUESTIONNAIRE_LOCKED"
	SealQuestionnaireIncomplete = "SEAL_QUESTIONNAIRE_INCOMPLETE"
	SealInvalidSection          = "SEAL_INVALID_SECTION"
	SealInvalidScore            = "SEAL_INVALID_SCORE"
	SealNotEligible             = "SEAL_NOT_ELIGIBLE"

	// ==================== Renewal (RENEWAL_) ====================
	RenewalNotFound  = "RENEWAL_NOT_FOUND"
	RenewalDuplicate = "RENEWAL_DUPLICATE"

	// ==================== Reward (REWARD_) ====================
	RewardNotFound = "REWARD_NOT_FOUND"

	// ==================== Issue (ISSUE_) ====================
	IssueNotFound       = "ISSUE_NOT_FOUND"
	IssueDeadlinePassed = "ISSUE_DEADLINE_PASSED"
	IssueAlreadyClosed  = "ISSUE_ALREADY_CLOSED"

	// ==================== Campaign (CAMPAIGN_) ====================
	CampaignNotFound = "CAMPAIGN_NOT_FOUND"
	CampaignInactive = "CAMPAIGN_INACTIVE"
	PledgeNotFound   = "PLEDGE_NOT_FOUND"

	// ==================== Upload (UPLOAD_) ====================
	UploadInvalidFileType = "UPLOAD_INVALID_FILE_TYPE"
	UploadFailed          = "UPLOAD_FAILED"

	// ==================== Server ====================
	InternalServerError = "INTERNAL_SERVER_ERROR"
)
