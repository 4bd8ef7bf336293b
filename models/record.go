package models

// Canonical field names for the in-progress booking record, in the order the
// assistant asks for them.
const (
	FieldName        = "name"
	FieldEmail       = "email"
	FieldPhone       = "phone"
	FieldServiceType = "service_type"
	FieldDate        = "date"
	FieldTime        = "time"
)

// RequiredFields lists every field a booking needs, in canonical order.
var RequiredFields = []string{
	FieldName,
	FieldEmail,
	FieldPhone,
	FieldServiceType,
	FieldDate,
	FieldTime,
}

// BookingRecord is the partially-filled reservation data for one
// conversation. Empty string means the field has not been accepted yet.
type BookingRecord struct {
	Name        string `json:"name,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	ServiceType string `json:"service_type,omitempty"`
	Date        string `json:"date,omitempty"`
	Time        string `json:"time,omitempty"`
	Price       string `json:"price,omitempty"`
}

// Get returns the current value of a canonical field.
func (r *BookingRecord) Get(field string) string {
	switch field {
	case FieldName:
		return r.Name
	case FieldEmail:
		return r.Email
	case FieldPhone:
		return r.Phone
	case FieldServiceType:
		return r.ServiceType
	case FieldDate:
		return r.Date
	case FieldTime:
		return r.Time
	}
	return ""
}

// Set stores a validated value into a canonical field.
func (r *BookingRecord) Set(field, value string) {
	switch field {
	case FieldName:
		r.Name = value
	case FieldEmail:
		r.Email = value
	case FieldPhone:
		r.Phone = value
	case FieldServiceType:
		r.ServiceType = value
	case FieldDate:
		r.Date = value
	case FieldTime:
		r.Time = value
	}
}

// Has reports whether a canonical field has been accepted.
func (r *BookingRecord) Has(field string) bool {
	return r.Get(field) != ""
}

// Missing returns the unset required fields in canonical order.
func (r *BookingRecord) Missing() []string {
	var missing []string
	for _, f := range RequiredFields {
		if !r.Has(f) {
			missing = append(missing, f)
		}
	}
	return missing
}

// Complete reports whether every required field has been accepted.
func (r *BookingRecord) Complete() bool {
	return len(r.Missing()) == 0
}

// HasAny reports whether at least one required field has been accepted.
func (r *BookingRecord) HasAny() bool {
	for _, f := range RequiredFields {
		if r.Has(f) {
			return true
		}
	}
	return false
}
