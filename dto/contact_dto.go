package dto

// ContactRequest represents a contact-form submission.
type ContactRequest struct {
	Name        string `json:"name" binding:"required,min=2"`
	Email       string `json:"email" binding:"required,email"`
	Company     string `json:"company"`
	ContactType string `json:"contactType" binding:"required,oneof=general editorial advertising partnership technical other"`
	Subject     string `json:"subject" binding:"required,min=5"`
	Message     string `json:"message" binding:"required,min=10"`
}

// Department is one row of the static contact directory.
type Department struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// ContactInfo is the static contact-page payload.
type ContactInfo struct {
	Email        string       `json:"email"`
	Phone        string       `json:"phone"`
	Address      string       `json:"address"`
	WorkingHours string       `json:"workingHours"`
	ResponseTime string       `json:"responseTime"`
	Departments  []Department `json:"departments"`
}
