package domain

import "errors"

// Construction errors. A campaign that fails these checks is never created.
var (
	ErrInvalidTarget  = errors.New("target must be more than 0")
	ErrDeadlineInPast = errors.New("deadline can't be in the past")
)

// Authorization and time-gated rejections.
var (
	ErrUnauthorized        = errors.New("caller is not allowed to perform this action")
	ErrFundingClosed       = errors.New("cannot fund after deadline")
	ErrClaimBeforeDeadline = errors.New("cannot claim before deadline")
)

// Value policy rejections on Fund and the setters.
var (
	ErrOverallLimitExceeded  = errors.New("cannot exceed the maximum contribution limit")
	ErrBelowMinimumDonation  = errors.New("cannot accept donations below the minimum contribution limit")
	ErrPerDonorLimitExceeded = errors.New("cannot exceed the maximum contribution limit per donor")
	ErrNegativeAmount        = errors.New("amount must not be negative")
	ErrAmountOverflow        = errors.New("amount overflows the value unit")
)

var (
	// ErrTransferFailed wraps a custodian failure to pay out funds.
	ErrTransferFailed = errors.New("transfer failed")
	// ErrRecipientRejected is reported by custodians when a recipient
	// cannot accept funds.
	ErrRecipientRejected = errors.New("recipient cannot accept funds")
	// ErrInsufficientFunds is reported by custodians asked to pay out more
	// than the pool holds.
	ErrInsufficientFunds = errors.New("insufficient pooled funds")
	ErrCampaignNotFound  = errors.New("campaign not found")
)
