package booking

import (
	"strings"

	"camerastore/models"
)

// Sortable booking fields.
const (
	SortCreatedAt = "createdAt"
	SortFullName  = "fullName"
	SortDate      = "date"
)

const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// SortState is the admin table's single sort key.
type SortState struct {
	Field string `json:"field"`
	Dir   string `json:"dir"`
}

// DefaultSort is newest bookings first.
var DefaultSort = SortState{Field: SortCreatedAt, Dir: SortDesc}

// Toggle clicking the same column flips direction; a new column starts descending.
func (s SortState) Toggle(field string) SortState {
	if field == s.Field {
		if s.Dir == SortDesc {
			return SortState{Field: field, Dir: SortAsc}
		}
		return SortState{Field: field, Dir: SortDesc}
	}
	return SortState{Field: field, Dir: SortDesc}
}

func ValidSortField(field string) bool {
	switch field {
	case SortCreatedAt, SortFullName, SortDate:
		return true
	}
	return false
}

// ListFilter is the admin bookings query.
type ListFilter struct {
	Status string // "" or "all" means every status
	Sort   SortState
	Query  string
}

// Search keeps bookings whose name, email, location or camera name contain q
// ignoring case, or whose phone contains q exactly.
func Search(bookings []models.Booking, q string) []models.Booking {
	if q == "" {
		return bookings
	}
	lower := strings.ToLower(q)
	out := make([]models.Booking, 0, len(bookings))
	for _, b := range bookings {
		if strings.Contains(strings.ToLower(b.FullName), lower) ||
			strings.Contains(strings.ToLower(b.Email), lower) ||
			strings.Contains(strings.ToLower(b.Location), lower) ||
			strings.Contains(strings.ToLower(b.CameraName), lower) ||
			strings.Contains(b.Phone, q) {
			out = append(out, b)
		}
	}
	return out
}
