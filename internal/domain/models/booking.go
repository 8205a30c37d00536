package models

// Booking is the canonical ride record shared by both backends. Identifiers
// are stored quote-stripped; Date, Time, and PaymentMethod are nil when the
// source recorded no usable value, so responses carry an explicit null instead
// of an empty string.
type Booking struct {
	Date          *string `json:"date"`
	Time          *string `json:"time"`
	BookingID     string  `json:"booking_id"`
	BookingStatus string  `json:"booking_status"`
	CustomerID    string  `json:"customer_id"`
	VehicleType   string  `json:"vehicle_type"`
	PaymentMethod *string `json:"payment_method"`
}

type StatusBreakdown struct {
	BookingStatus string `json:"booking_status"`
	Bookings      int64  `json:"bookings"`
}

type HourlyBookings struct {
	Hour           int   `json:"hour"`
	UniqueBookings int64 `json:"unique_bookings"`
}

type WeekdayBookings struct {
	WeekdayNum     int    `json:"weekday_num"`
	WeekdayName    string `json:"weekday_name"`
	UniqueBookings int64  `json:"unique_bookings"`
}

type MonthlyBookings struct {
	Month    string `json:"month"`
	Bookings int64  `json:"bookings"`
}

type VehicleTypeStats struct {
	VehicleType     string `json:"vehicle_type"`
	TotalBookings   int64  `json:"total_bookings"`
	UniqueCustomers int64  `json:"unique_customers"`
}

type PaymentMethodStats struct {
	PaymentMethod string `json:"payment_method"`
	TotalBookings int64  `json:"total_bookings"`
}

type TopCustomer struct {
	CustomerID    string `json:"customer_id"`
	TotalBookings int64  `json:"total_bookings"`
}

type CustomerPaymentMethod struct {
	CustomerID        string `json:"customer_id"`
	PaymentMethod     string `json:"payment_method"`
	BookingsForMethod int64  `json:"bookings_for_method"`
}

// BookingPage is the filtered listing result: the truncated rows plus the
// pre-truncation match count.
type BookingPage struct {
	Bookings   []Booking `json:"bookings"`
	TotalFound int64     `json:"total_found"`
	Returned   int       `json:"returned"`
}
