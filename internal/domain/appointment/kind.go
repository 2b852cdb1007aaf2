package appointment

import "github.com/sention-aktivitus/klientportal-api/internal/models"

// Kind is one of the five recurring contact types tracked per client.
type Kind string

const (
	KindDoctor           Kind = "doctor"
	KindShortContact     Kind = "short_contact"
	KindLongConversation Kind = "long_conversation"
	KindTest             Kind = "test"
	KindMeeting          Kind = "meeting"
)

// Kinds returns the contact types in their fixed order. The order also
// breaks ties between equal dates everywhere appointments are sorted.
func Kinds() []Kind {
	return []Kind{
		KindDoctor,
		KindShortContact,
		KindLongConversation,
		KindTest,
		KindMeeting,
	}
}

func ParseKind(s string) (Kind, bool) {
	switch Kind(s) {
	case KindDoctor, KindShortContact, KindLongConversation, KindTest, KindMeeting:
		return Kind(s), true
	}
	return "", false
}

// Label is the Swedish display name used throughout the portal.
func (k Kind) Label() string {
	switch k {
	case KindDoctor:
		return "Läkartid"
	case KindShortContact:
		return "Kort kontakt"
	case KindLongConversation:
		return "Långt samtal"
	case KindTest:
		return "Test"
	case KindMeeting:
		return "Möte"
	}
	return string(k)
}

// Fields returns the date, responsible person and free-text details a
// client carries for one contact type.
func Fields(c *models.Client, k Kind) (date, person, details string) {
	switch k {
	case KindDoctor:
		return c.NextDoctorAppointment, c.DoctorName, c.DoctorDetails
	case KindShortContact:
		return c.NextShortContact, c.ShortContactPerson, c.ShortContactDetails
	case KindLongConversation:
		return c.NextLongConversation, c.LongConversationPerson, c.LongConversationDetails
	case KindTest:
		return c.NextTest, c.TestPerson, c.TestDetails
	case KindMeeting:
		return c.NextMeeting, c.MeetingPersons, c.MeetingDetails
	}
	return "", "", ""
}

// SetFields writes one contact type's three fields back onto the client.
func SetFields(c *models.Client, k Kind, date, person, details string) {
	switch k {
	case KindDoctor:
		c.NextDoctorAppointment, c.DoctorName, c.DoctorDetails = date, person, details
	case KindShortContact:
		c.NextShortContact, c.ShortContactPerson, c.ShortContactDetails = date, person, details
	case KindLongConversation:
		c.NextLongConversation, c.LongConversationPerson, c.LongConversationDetails = date, person, details
	case KindTest:
		c.NextTest, c.TestPerson, c.TestDetails = date, person, details
	case KindMeeting:
		c.NextMeeting, c.MeetingPersons, c.MeetingDetails = date, person, details
	}
}
