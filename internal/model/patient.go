package model

// Patient represents a patient record
type Patient struct {
	ID          int    `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	DOB         string `json:"dob"` // YYYY-MM-DD
}

// CreatePatientRequest is used for creating a new patient
type CreatePatientRequest struct {
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phoneNumber" binding:"required,e164"`
	DOB         string `json:"dob" binding:"required,datetime=2006-01-02"`
}

type UpdatePatientRequest struct {
	FirstName   *string `json:"firstName,omitempty"` // Pointers to allow partial updates
	LastName    *string `json:"lastName,omitempty"`
	Email       *string `json:"email,omitempty" binding:"omitempty,email"`
	PhoneNumber *string `json:"phoneNumber,omitempty" binding:"omitempty,e164"`
	DOB         *string `json:"dob,omitempty" binding:"omitempty,datetime=2006-01-02"`
}

// PatientPage is the paginated result shape returned by list queries
type PatientPage struct {
	Data  []Patient `json:"data"`
	Total int       `json:"total"`
	Pages int       `json:"pages"`
}
