package dataobjects

import "time"

// Weekday is a day of the week as stored in the ride table
type Weekday string

// Days of the week
const (
	WeekdayMonday    Weekday = "Monday"
	WeekdayTuesday   Weekday = "Tuesday"
	WeekdayWednesday Weekday = "Wednesday"
	WeekdayThursday  Weekday = "Thursday"
	WeekdayFriday    Weekday = "Friday"
	WeekdaySaturday  Weekday = "Saturday"
	WeekdaySunday    Weekday = "Sunday"
)

// WeekdayFromInt converts an ISO weekday number (Monday = 1 through
// Sunday = 7) to a Weekday. Out-of-range values map to Monday.
func WeekdayFromInt(day int) Weekday {
	switch day {
	case 1:
		return WeekdayMonday
	case 2:
		return WeekdayTuesday
	case 3:
		return WeekdayWednesday
	case 4:
		return WeekdayThursday
	case 5:
		return WeekdayFriday
	case 6:
		return WeekdaySaturday
	case 7:
		return WeekdaySunday
	}
	return WeekdayMonday
}

// WeekdayFromTime returns the Weekday of the given point in time
func WeekdayFromTime(t time.Time) Weekday {
	day := int(t.Weekday())
	if day == 0 {
		day = 7
	}
	return WeekdayFromInt(day)
}

// VehicleType is the kind of a vehicle
type VehicleType string

// Vehicle types
const (
	VehicleTypeBus  VehicleType = "Bus"
	VehicleTypeTram VehicleType = "Tram"
)

// VehicleStatus indicates whether a vehicle is in service
type VehicleStatus string

// Vehicle statuses
const (
	VehicleStatusActive   VehicleStatus = "Active"
	VehicleStatusInactive VehicleStatus = "Inactive"
)

// TicketDiscountType distinguishes normal from discounted fares
type TicketDiscountType string

// Ticket discount types
const (
	TicketDiscountTypeNormal     TicketDiscountType = "Normal"
	TicketDiscountTypeDiscounted TicketDiscountType = "Discounted"
)

// TechnicalIssueStatus is the processing state of a technical issue
type TechnicalIssueStatus string

// Technical issue statuses
const (
	TechnicalIssueStatusReported   TechnicalIssueStatus = "Reported"
	TechnicalIssueStatusInProgress TechnicalIssueStatus = "InProgress"
	TechnicalIssueStatusResolved   TechnicalIssueStatus = "Resolved"
)

// FineStatus indicates whether a fine has been paid
type FineStatus string

// Fine statuses
const (
	FineStatusPaid   FineStatus = "Paid"
	FineStatusUnpaid FineStatus = "Unpaid"
)

// StopType is the kind of vehicles a stop serves
type StopType string

// Stop types
const (
	StopTypeBus     StopType = "Bus"
	StopTypeTram    StopType = "Tram"
	StopTypeBusTram StopType = "BusTram"
)
