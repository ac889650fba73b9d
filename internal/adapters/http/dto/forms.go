package dto

import "github.com/jsamuelsen/storefront-web/internal/domain"

// AccountDetailsForm is posted by the account details page.
type AccountDetailsForm struct {
	Email      string `form:"email"      json:"email"      validate:"required,email"`
	Newsletter string `form:"newsletter" json:"newsletter"`
}

// Subscribed reports whether the newsletter checkbox was ticked.
func (f *AccountDetailsForm) Subscribed() bool {
	return domain.NewsletterChoice(f.Newsletter)
}

// AgreementForm is posted by the developer programme agreement page.
type AgreementForm struct {
	IAgree string `form:"i_agree" json:"i_agree"`
}

// Agreed reports whether the agreement checkbox was ticked.
func (f *AgreementForm) Agreed() bool {
	return f.IAgree == "on"
}

// UsernameForm is posted by the username registration page.
type UsernameForm struct {
	Username string `form:"username" json:"username" validate:"notblank"`
}
