package models

import "time"

// Client is one person in the care programme. The five appointment-kind
// field groups are independent of each other; dates are stored as
// YYYY-MM-DD strings and may be empty when nothing is booked.
type Client struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Name           string `gorm:"size:100;not null" json:"name"`
	PersonalNumber string `gorm:"size:20" json:"personal_number"`
	StreetAddress  string `gorm:"size:255" json:"street_address"`
	PostalCode     string `gorm:"size:10" json:"postal_code"`
	City           string `gorm:"size:100" json:"city"`
	StartDate      string `gorm:"size:10" json:"start_date"`
	Clinic         string `gorm:"size:100" json:"clinic"`

	InterventionStatus string `gorm:"size:20;default:'Planned'" json:"intervention_status"`
	Comments           string `gorm:"type:text" json:"comments"`

	NextDoctorAppointment string `gorm:"size:10" json:"next_doctor_appointment"`
	DoctorName            string `gorm:"size:100" json:"doctor_name"`
	DoctorDetails         string `gorm:"type:text" json:"doctor_details"`

	NextShortContact    string `gorm:"size:10" json:"next_short_contact"`
	ShortContactPerson  string `gorm:"size:100" json:"short_contact_person"`
	ShortContactDetails string `gorm:"type:text" json:"short_contact_details"`

	NextLongConversation    string `gorm:"size:10" json:"next_long_conversation"`
	LongConversationPerson  string `gorm:"size:100" json:"long_conversation_person"`
	LongConversationDetails string `gorm:"type:text" json:"long_conversation_details"`

	NextTest    string `gorm:"size:10" json:"next_test"`
	TestPerson  string `gorm:"size:100" json:"test_person"`
	TestDetails string `gorm:"type:text" json:"test_details"`

	NextMeeting    string `gorm:"size:10" json:"next_meeting"`
	MeetingPersons string `gorm:"size:100" json:"meeting_persons"`
	MeetingDetails string `gorm:"type:text" json:"meeting_details"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Intervention status values.
const (
	StatusPlanned   = "Planned"
	StatusCompleted = "Completed"
	StatusCanceled  = "Canceled"
)

func IsValidInterventionStatus(s string) bool {
	switch s {
	case StatusPlanned, StatusCompleted, StatusCanceled:
		return true
	}
	return false
}
