package domain

import "time"

// Gender values accepted at signup.
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

// Contact methods. Exactly one of email/phone is populated on a user record,
// according to ContactMethod.
const (
	ContactEmail = "email"
	ContactPhone = "phone"
)

type User struct {
	UserID        string    `json:"id" dynamodbav:"user_id"`
	FullName      string    `json:"full_name" dynamodbav:"full_name"`
	DateOfBirth   time.Time `json:"date_of_birth" dynamodbav:"date_of_birth"`
	Gender        string    `json:"gender" dynamodbav:"gender"`
	ContactMethod string    `json:"contact_method" dynamodbav:"contact_method"`
	Email         *string   `json:"email,omitempty" dynamodbav:"email,omitempty"`
	Phone         *string   `json:"phone,omitempty" dynamodbav:"phone,omitempty"`
	PasswordHash  string    `json:"-" dynamodbav:"password_hash"`
	State         *string   `json:"state,omitempty" dynamodbav:"state,omitempty"`
	City          *string   `json:"city,omitempty" dynamodbav:"city,omitempty"`
	Consent       bool      `json:"consent" dynamodbav:"consent"`
	IsVerified    bool      `json:"is_verified" dynamodbav:"is_verified"`
	CreatedAt     time.Time `json:"created" dynamodbav:"created_at"`
	UpdatedAt     time.Time `json:"updated" dynamodbav:"updated_at"`
}

// Contact returns the populated contact address for the record's method.
func (u *User) Contact() string {
	if u.ContactMethod == ContactPhone && u.Phone != nil {
		return *u.Phone
	}
	if u.Email != nil {
		return *u.Email
	}
	return ""
}

type SignUpRequest struct {
	FullName      string  `json:"fullName" validate:"required"`
	DateOfBirth   string  `json:"dateOfBirth" validate:"required"` // expected format: YYYY-MM-DD
	Gender        string  `json:"gender" validate:"required,oneof=male female other"`
	ContactMethod string  `json:"contactMethod" validate:"required,oneof=email phone"`
	Email         *string `json:"email"`
	Phone         *string `json:"phone"`
	Password      string  `json:"password" validate:"required,min=8,max=72"`
	State         *string `json:"state"`
	City          *string `json:"city"`
	Consent       bool    `json:"consent"`
}
