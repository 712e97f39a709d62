package models

// NotificationGuest is one responding guest in a notification
type NotificationGuest struct {
	Name                string
	Attendance          string
	MealChoice          string
	DietaryRestrictions string
}

// RSVPNotification summarizes a submission for the couple
type RSVPNotification struct {
	Guests         []NotificationGuest
	Message        string
	RecipientEmail string
}
