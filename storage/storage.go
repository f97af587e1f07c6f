// Package storage provides the persistence backends of the seeder: a
// PostgreSQL store built on the dataobjects layer and an in-memory
// store for tests and dry runs.
package storage

import (
	"github.com/citytransit/transitseed/dataobjects"
)

// Store is the full persistence surface the orchestration layer drives:
// schema management, bulk deletion, and insert/list per entity kind.
// It is a superset of generator.Repository.
type Store interface {
	RecreateSchema() error
	ClearAll() error
	ClearTicketTypes() error

	Users() ([]*dataobjects.AppUser, error)
	InsertUser(user *dataobjects.AppUser) error
	DriversLicenses() ([]*dataobjects.DriversLicense, error)
	InsertDriversLicense(license *dataobjects.DriversLicense) error
	Drivers() ([]*dataobjects.Driver, error)
	InsertDriver(driver *dataobjects.Driver) error
	Passengers() ([]*dataobjects.Passenger, error)
	InsertPassenger(passenger *dataobjects.Passenger) error
	TicketInspectors() ([]*dataobjects.TicketInspector, error)
	InsertTicketInspector(inspector *dataobjects.TicketInspector) error
	Editors() ([]*dataobjects.Editor, error)
	InsertEditor(editor *dataobjects.Editor) error
	Vehicles() ([]*dataobjects.Vehicle, error)
	InsertVehicle(vehicle *dataobjects.Vehicle) error
	Stops() ([]*dataobjects.Stop, error)
	InsertStop(stop *dataobjects.Stop) error
	Paths() ([]*dataobjects.Path, error)
	InsertPath(path *dataobjects.Path) error
	Lines() ([]*dataobjects.Line, error)
	InsertLine(line *dataobjects.Line) error
	PathStops() ([]*dataobjects.PathStop, error)
	InsertPathStop(pathStop *dataobjects.PathStop) error
	Rides() ([]*dataobjects.Ride, error)
	InsertRide(ride *dataobjects.Ride) error
	TicketTypes() ([]*dataobjects.TicketType, error)
	InsertTicketType(ticketType *dataobjects.TicketType) error
	Purchases() ([]*dataobjects.Purchase, error)
	InsertPurchase(purchase *dataobjects.Purchase) error
	Tickets() ([]*dataobjects.Ticket, error)
	InsertTicket(ticket *dataobjects.Ticket) error
	Fines() ([]*dataobjects.Fine, error)
	InsertFine(fine *dataobjects.Fine) error
	Inspections() ([]*dataobjects.Inspection, error)
	InsertInspection(inspection *dataobjects.Inspection) error
	TechnicalIssues() ([]*dataobjects.TechnicalIssue, error)
	InsertTechnicalIssue(issue *dataobjects.TechnicalIssue) error
}
