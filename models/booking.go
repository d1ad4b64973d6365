package models

import "time"

// BookingStatus is persisted verbatim on booking documents.
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusApproved  BookingStatus = "approved"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// BookingStatuses lists every status a writer may produce.
var BookingStatuses = []BookingStatus{StatusPending, StatusApproved, StatusCompleted, StatusCancelled}

// Valid reports whether s is one of the four settable statuses.
func (s BookingStatus) Valid() bool {
	for _, st := range BookingStatuses {
		if s == st {
			return true
		}
	}
	return false
}

var statusLabels = map[BookingStatus]map[string]string{
	StatusPending:   {"en": "Pending", "he": "ממתין"},
	StatusApproved:  {"en": "Approved", "he": "מאושר"},
	StatusCompleted: {"en": "Completed", "he": "הושלם"},
	StatusCancelled: {"en": "Cancelled", "he": "בוטל"},
}

// Label returns the display label in lang ("en" or "he"); unknown statuses render as stored.
func (s BookingStatus) Label(lang string) string {
	labels, ok := statusLabels[s]
	if !ok {
		return string(s)
	}
	if l, ok := labels[lang]; ok {
		return l
	}
	return labels["en"]
}

// TimeSlots are the hour slots offered on the booking form.
var TimeSlots = []string{"09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00", "17:00"}

// Booking is a rental request stored in the bookings collection.
// CameraName and ImageURL are a snapshot of the product at booking time and
// are never re-synced with later product edits.
type Booking struct {
	ID              string        `bson:"id" json:"id"`
	FullName        string        `bson:"fullName" json:"fullName"`
	Email           string        `bson:"email" json:"email"`
	Phone           string        `bson:"phone" json:"phone"`
	Date            string        `bson:"date" json:"date"`
	Time            string        `bson:"time" json:"time"`
	Location        string        `bson:"location" json:"location"`
	CameraCount     string        `bson:"cameraCount" json:"cameraCount"`
	IncludeAssembly bool          `bson:"includeAssembly" json:"includeAssembly"`
	Comments        string        `bson:"comments" json:"comments"`
	CameraID        string        `bson:"cameraId" json:"cameraId"`
	CameraName      string        `bson:"cameraName" json:"cameraName"`
	ImageURL        string        `bson:"imageUrl" json:"imageUrl"`
	Status          BookingStatus `bson:"status" json:"status"`
	CreatedAt       time.Time     `bson:"createdAt" json:"createdAt"`
}

// BookingForm is the public booking form.
type BookingForm struct {
	FullName        string `json:"fullName"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	Location        string `json:"location"`
	CameraCount     string `json:"cameraCount"`
	IncludeAssembly bool   `json:"includeAssembly"`
	Comments        string `json:"comments"`
	CameraID        string `json:"cameraId"`
	CameraName      string `json:"cameraName"`
	ImageURL        string `json:"imageUrl"`
}

// Reset clears the form but keeps the product reference so the same camera can be booked again.
func (f BookingForm) Reset() BookingForm {
	return BookingForm{
		CameraCount: "1",
		CameraID:    f.CameraID,
		CameraName:  f.CameraName,
		ImageURL:    f.ImageURL,
	}
}
