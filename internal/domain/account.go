package domain

// Account is the publisher profile shown on the account pages.
type Account struct {
	Username             string `json:"username"`
	DisplayName          string `json:"displayname"`
	Email                string `json:"email"`
	ImageURL             string `json:"image"`
	NewsletterSubscribed bool   `json:"newsletter"`
}

// NewsletterChoice parses the "newsletter" form value of the account
// details form. Checkbox values "on", "true" and "1" subscribe.
func NewsletterChoice(value string) bool {
	switch value {
	case "on", "true", "1":
		return true
	default:
		return false
	}
}
