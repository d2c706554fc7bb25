package models

// ServiceOffering is one counseling service shown in the services grid.
// Title doubles as the iteration key and must be unique within the registry.
type ServiceOffering struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
}

// ContactChannels holds the literal telephone and email destinations of the practice
type ContactChannels struct {
	PhoneDisplay string `validate:"required"`
	PhoneURI     string `validate:"required,startswith=tel:"`
	Email        string `validate:"required,email"`
}

// MailtoURI returns the mailto link for the practice email
func (c ContactChannels) MailtoURI() string {
	return "mailto:" + c.Email
}
