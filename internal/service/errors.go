package service

import "errors"

var (
	ErrInvalidInput           = errors.New("invalid input")
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrTenantSlugTaken        = errors.New("workspace slug already taken")
	ErrTenantNotFound         = errors.New("workspace not found")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrEmailNotVerified       = errors.New("email not verified")
	ErrInvalidToken           = errors.New("invalid or expired token")
	ErrMFARequired            = errors.New("mfa required")
	ErrInvalidMFACode         = errors.New("invalid mfa code")
	ErrMFANotConfigured       = errors.New("mfa not configured")
	ErrUserNotFound           = errors.New("user not found")

	ErrClientNotFound            = errors.New("client not found")
	ErrClientEmailExists         = errors.New("client with this email already exists")
	ErrClientHasActiveBookings   = errors.New("client has active bookings")
	ErrClientHasActiveMembership = errors.New("client has an active membership")
	ErrClientHasUnpaidInvoices   = errors.New("client has unpaid invoices")

	ErrVisitorNotFound      = errors.New("visitor not found")
	ErrVisitorCheckedIn     = errors.New("visitor is already checked in")
	ErrVisitorNotCheckedIn  = errors.New("visitor is not checked in")

	ErrBookingNotFound      = errors.New("booking not found")
	ErrBookingInvalidWindow = errors.New("booking must end after it starts")
	ErrBookingOverlap       = errors.New("resource is already booked for this time")
	ErrBookingNotCancelable = errors.New("booking cannot be cancelled in its current status")
	ErrBookingTransition    = errors.New("invalid booking status change")

	ErrMembershipNotFound   = errors.New("membership not found")
	ErrMembershipTransition = errors.New("invalid membership status change")

	ErrServiceOfferingNotFound = errors.New("service not found")

	ErrInvoiceNotFound     = errors.New("invoice not found")
	ErrInvoiceNumberExists = errors.New("invoice number already exists")
	ErrInvoiceTransition   = errors.New("invalid invoice status change")

	ErrLeadNotFound     = errors.New("lead not found")
	ErrLeadTransition   = errors.New("invalid lead status change")
	ErrLeadNotQualified = errors.New("only qualified leads can be converted")

	ErrOpportunityNotFound   = errors.New("opportunity not found")
	ErrOpportunityTransition = errors.New("invalid opportunity stage change")

	ErrQuotationNotFound     = errors.New("quotation not found")
	ErrQuotationNumberExists = errors.New("quotation number already exists")
	ErrQuotationTransition   = errors.New("invalid quotation status change")

	ErrAccessPointNotFound  = errors.New("access point not found")
	ErrInvalidControlAction = errors.New("unknown control action")
	ErrControlNotAllowed    = errors.New("control action not allowed in current state")

	ErrCredentialNotFound = errors.New("credential not found")
	ErrCredentialExists   = errors.New("an active credential with this type and value already exists")
	ErrCredentialSubject  = errors.New("credential must reference exactly one of user or visitor")

	ErrAlertNotFound = errors.New("alert not found")
)
