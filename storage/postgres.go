package storage

import (
	"github.com/gbl08ma/sqalx"

	"github.com/citytransit/transitseed/dataobjects"
)

// Postgres is a Store over a PostgreSQL database, addressed through a
// sqalx node
type Postgres struct {
	node sqalx.Node
}

var _ Store = (*Postgres)(nil)

// NewPostgres returns a Postgres store over the given node
func NewPostgres(node sqalx.Node) *Postgres {
	return &Postgres{node: node}
}

// Node returns the underlying sqalx node
func (p *Postgres) Node() sqalx.Node {
	return p.node
}

// RecreateSchema drops and recreates all tables
func (p *Postgres) RecreateSchema() error {
	if err := dataobjects.DropSchema(p.node); err != nil {
		return err
	}
	return dataobjects.CreateSchema(p.node)
}

// ClearAll deletes all rows from all tables
func (p *Postgres) ClearAll() error {
	return dataobjects.ClearTables(p.node)
}

// ClearTicketTypes empties the fare catalog
func (p *Postgres) ClearTicketTypes() error {
	return dataobjects.ClearTable(p.node, "ticket_types")
}

// Users returns all users
func (p *Postgres) Users() ([]*dataobjects.AppUser, error) {
	return dataobjects.GetAppUsers(p.node)
}

// InsertUser persists the user
func (p *Postgres) InsertUser(user *dataobjects.AppUser) error {
	return user.Update(p.node)
}

// DriversLicenses returns all licenses
func (p *Postgres) DriversLicenses() ([]*dataobjects.DriversLicense, error) {
	return dataobjects.GetDriversLicenses(p.node)
}

// InsertDriversLicense persists the license
func (p *Postgres) InsertDriversLicense(license *dataobjects.DriversLicense) error {
	return license.Update(p.node)
}

// Drivers returns all drivers
func (p *Postgres) Drivers() ([]*dataobjects.Driver, error) {
	return dataobjects.GetDrivers(p.node)
}

// InsertDriver persists the driver
func (p *Postgres) InsertDriver(driver *dataobjects.Driver) error {
	return driver.Update(p.node)
}

// Passengers returns all passengers
func (p *Postgres) Passengers() ([]*dataobjects.Passenger, error) {
	return dataobjects.GetPassengers(p.node)
}

// InsertPassenger persists the passenger
func (p *Postgres) InsertPassenger(passenger *dataobjects.Passenger) error {
	return passenger.Update(p.node)
}

// TicketInspectors returns all inspectors
func (p *Postgres) TicketInspectors() ([]*dataobjects.TicketInspector, error) {
	return dataobjects.GetTicketInspectors(p.node)
}

// InsertTicketInspector persists the inspector
func (p *Postgres) InsertTicketInspector(inspector *dataobjects.TicketInspector) error {
	return inspector.Update(p.node)
}

// Editors returns all editors
func (p *Postgres) Editors() ([]*dataobjects.Editor, error) {
	return dataobjects.GetEditors(p.node)
}

// InsertEditor persists the editor
func (p *Postgres) InsertEditor(editor *dataobjects.Editor) error {
	return editor.Update(p.node)
}

// Vehicles returns all vehicles
func (p *Postgres) Vehicles() ([]*dataobjects.Vehicle, error) {
	return dataobjects.GetVehicles(p.node)
}

// InsertVehicle persists the vehicle
func (p *Postgres) InsertVehicle(vehicle *dataobjects.Vehicle) error {
	return vehicle.Update(p.node)
}

// Stops returns all stops
func (p *Postgres) Stops() ([]*dataobjects.Stop, error) {
	return dataobjects.GetStops(p.node)
}

// InsertStop persists the stop
func (p *Postgres) InsertStop(stop *dataobjects.Stop) error {
	return stop.Update(p.node)
}

// Paths returns all paths
func (p *Postgres) Paths() ([]*dataobjects.Path, error) {
	return dataobjects.GetPaths(p.node)
}

// InsertPath persists the path
func (p *Postgres) InsertPath(path *dataobjects.Path) error {
	return path.Update(p.node)
}

// Lines returns all lines
func (p *Postgres) Lines() ([]*dataobjects.Line, error) {
	return dataobjects.GetLines(p.node)
}

// InsertLine persists the line
func (p *Postgres) InsertLine(line *dataobjects.Line) error {
	return line.Update(p.node)
}

// PathStops returns all path stops
func (p *Postgres) PathStops() ([]*dataobjects.PathStop, error) {
	return dataobjects.GetPathStops(p.node)
}

// InsertPathStop persists the path stop
func (p *Postgres) InsertPathStop(pathStop *dataobjects.PathStop) error {
	return pathStop.Update(p.node)
}

// Rides returns all rides
func (p *Postgres) Rides() ([]*dataobjects.Ride, error) {
	return dataobjects.GetRides(p.node)
}

// InsertRide persists the ride
func (p *Postgres) InsertRide(ride *dataobjects.Ride) error {
	return ride.Update(p.node)
}

// TicketTypes returns the fare catalog
func (p *Postgres) TicketTypes() ([]*dataobjects.TicketType, error) {
	return dataobjects.GetTicketTypes(p.node)
}

// InsertTicketType persists the ticket type
func (p *Postgres) InsertTicketType(ticketType *dataobjects.TicketType) error {
	return ticketType.Update(p.node)
}

// Purchases returns all purchases
func (p *Postgres) Purchases() ([]*dataobjects.Purchase, error) {
	return dataobjects.GetPurchases(p.node)
}

// InsertPurchase persists the purchase
func (p *Postgres) InsertPurchase(purchase *dataobjects.Purchase) error {
	return purchase.Update(p.node)
}

// Tickets returns all tickets
func (p *Postgres) Tickets() ([]*dataobjects.Ticket, error) {
	return dataobjects.GetTickets(p.node)
}

// InsertTicket persists the ticket
func (p *Postgres) InsertTicket(ticket *dataobjects.Ticket) error {
	return ticket.Update(p.node)
}

// Fines returns all fines
func (p *Postgres) Fines() ([]*dataobjects.Fine, error) {
	return dataobjects.GetFines(p.node)
}

// InsertFine persists the fine
func (p *Postgres) InsertFine(fine *dataobjects.Fine) error {
	return fine.Update(p.node)
}

// Inspections returns all inspections
func (p *Postgres) Inspections() ([]*dataobjects.Inspection, error) {
	return dataobjects.GetInspections(p.node)
}

// InsertInspection persists the inspection
func (p *Postgres) InsertInspection(inspection *dataobjects.Inspection) error {
	return inspection.Update(p.node)
}

// TechnicalIssues returns all technical issues
func (p *Postgres) TechnicalIssues() ([]*dataobjects.TechnicalIssue, error) {
	return dataobjects.GetTechnicalIssues(p.node)
}

// InsertTechnicalIssue persists the technical issue
func (p *Postgres) InsertTechnicalIssue(issue *dataobjects.TechnicalIssue) error {
	return issue.Update(p.node)
}
