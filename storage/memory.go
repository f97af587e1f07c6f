package storage

import (
	"sync"

	"github.com/citytransit/transitseed/dataobjects"
)

// Memory is an in-process Store keeping every entity kind in a slice,
// with auto-assigned integer ids. It backs generator tests and the
// seed command's dry-run mode.
type Memory struct {
	mu sync.Mutex

	nextID map[string]int

	users       []*dataobjects.AppUser
	licenses    []*dataobjects.DriversLicense
	drivers     []*dataobjects.Driver
	passengers  []*dataobjects.Passenger
	inspectors  []*dataobjects.TicketInspector
	editors     []*dataobjects.Editor
	vehicles    []*dataobjects.Vehicle
	stops       []*dataobjects.Stop
	paths       []*dataobjects.Path
	lines       []*dataobjects.Line
	pathStops   []*dataobjects.PathStop
	rides       []*dataobjects.Ride
	ticketTypes []*dataobjects.TicketType
	purchases   []*dataobjects.Purchase
	tickets     []*dataobjects.Ticket
	fines       []*dataobjects.Fine
	inspections []*dataobjects.Inspection
	issues      []*dataobjects.TechnicalIssue
}

var _ Store = (*Memory)(nil)

// NewMemory returns an empty in-memory store
func NewMemory() *Memory {
	return &Memory{nextID: make(map[string]int)}
}

func (m *Memory) assignID(kind string, id *int) {
	if *id != 0 {
		return
	}
	m.nextID[kind]++
	*id = m.nextID[kind]
}

// RecreateSchema drops all stored entities
func (m *Memory) RecreateSchema() error {
	return m.ClearAll()
}

// ClearAll drops all stored entities
func (m *Memory) ClearAll() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID = make(map[string]int)
	m.users = nil
	m.licenses = nil
	m.drivers = nil
	m.passengers = nil
	m.inspectors = nil
	m.editors = nil
	m.vehicles = nil
	m.stops = nil
	m.paths = nil
	m.lines = nil
	m.pathStops = nil
	m.rides = nil
	m.ticketTypes = nil
	m.purchases = nil
	m.tickets = nil
	m.fines = nil
	m.inspections = nil
	m.issues = nil
	return nil
}

// ClearTicketTypes empties the fare catalog
func (m *Memory) ClearTicketTypes() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ticketTypes = nil
	return nil
}

// Users returns all users
func (m *Memory) Users() ([]*dataobjects.AppUser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*dataobjects.AppUser{}, m.users...), nil
}

// InsertUser stores the user, assigning an id if it has none
func (m *Memory) InsertUser(user *dataobjects.AppUser) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.assignID("app_users", &user.ID)
	m.users = append(m.users, user)
	return nil
}

// DriversLicenses returns all licenses
func (m *Memory) DriversLicenses() ([]*dataobjects.DriversLicense, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*dataobjects.DriversLicense{}, m.licenses...), nil
}

// InsertDriversLicense stores the license
func (m *Memory) InsertDriversLicense(license *dataobjects.DriversLicense) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.assignID("drivers_licenses", &license.ID)
	m.licenses = append(m.licenses, license)
	return nil
}

// Drivers returns all drivers
func (m *Memory) Drivers() ([]*dataobjects.Driver, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*dataobjects.Driver{}, m.drivers...), nil
}

// InsertDriver stores the driver
func (m *Memory) InsertDriver(driver *dataobjects.Driver) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.assignID("drivers", &driver.ID)
	m.drivers = append(m.drivers, driver)
	return nil
}

// Passengers returns all passengers
func (m *Memory) Passengers() ([]*dataobjects.Passenger, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*dataobjects.Passenger{}, m.passengers...), nil
}

// InsertPassenger stores the passenger
func (m *Memory) InsertPassenger(passenger *dataobjects.Passenger) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.assignID("passengers", &passenger.ID)
	m.passengers = append(m.passengers, passenger)
	return nil
}

// TicketInspectors returns all inspectors
func (m *Memory) TicketInspectors() ([]*dataobjects.TicketInspector, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*dataobjects.TicketInspector{}, m.inspectors...), nil
}

// InsertTicketInspector stores the inspector
func (m *Memory) InsertTicketInspector(inspector *dataobjects.TicketInspector) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.assignID("ticket_inspectors", &inspector.ID)
	m.inspectors = append(m.inspectors, inspector)
	return nil
}

// Editors returns all editors
func (m *Memory) Editors() ([]*dataobjects.Editor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*dataobjects.Editor{}, m.editors...), nil
}

// InsertEditor stores the editor
func (m *Memory) InsertEditor(editor *dataobjects.Editor) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.assignID("editors", &editor.ID)
	m.editors = append(m.editors, editor)
	return nil
}

// Vehicles returns all vehicles
func (m *Memory) Vehicles() ([]*dataobjects.Vehicle, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*dataobjects.Vehicle{}, m.vehicles...), nil
}

// InsertVehicle stores the vehicle
func (m *Memory) InsertVehicle(vehicle *dataobjects.Vehicle) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.assignID("vehicles", &vehicle.ID)
	m.vehicles = append(m.vehicles, vehicle)
	return nil
}

// Stops returns all stops
func (m *Memory) Stops() ([]*dataobjects.Stop, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*dataobjects.Stop{}, m.stops...), nil
}

// InsertStop stores the stop
func (m *Memory) InsertStop(stop *dataobjects.Stop) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.assignID("stops", &stop.ID)
	m.stops = append(m.stops, stop)
	return nil
}

// Paths returns all paths
func (m *Memory) Paths() ([]*dataobjects.Path, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*dataobjects.Path{}, m.paths...), nil
}

// InsertPath stores the path
func (m *Memory) InsertPath(path *dataobjects.Path) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.assignID("paths", &path.ID)
	m.paths = append(m.paths, path)
	return nil
}

// Lines returns all lines
func (m *Memory) Lines() ([]*dataobjects.Line, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*dataobjects.Line{}, m.lines...), nil
}

// InsertLine stores the line
func (m *Memory) InsertLine(line *dataobjects.Line) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.assignID("lines", &line.ID)
	m.lines = append(m.lines, line)
	return nil
}

// PathStops returns all path stops
func (m *Memory) PathStops() ([]*dataobjects.PathStop, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*dataobjects.PathStop{}, m.pathStops...), nil
}

// InsertPathStop stores the path stop
func (m *Memory) InsertPathStop(pathStop *dataobjects.PathStop) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pathStops = append(m.pathStops, pathStop)
	return nil
}

// Rides returns all rides
func (m *Memory) Rides() ([]*dataobjects.Ride, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*dataobjects.Ride{}, m.rides...), nil
}

// InsertRide stores the ride
func (m *Memory) InsertRide(ride *dataobjects.Ride) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.assignID("rides", &ride.ID)
	m.rides = append(m.rides, ride)
	return nil
}

// TicketTypes returns the fare catalog
func (m *Memory) TicketTypes() ([]*dataobjects.TicketType, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*dataobjects.TicketType{}, m.ticketTypes...), nil
}

// InsertTicketType stores the ticket type
func (m *Memory) InsertTicketType(ticketType *dataobjects.TicketType) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.assignID("ticket_types", &ticketType.ID)
	m.ticketTypes = append(m.ticketTypes, ticketType)
	return nil
}

// Purchases returns all purchases
func (m *Memory) Purchases() ([]*dataobjects.Purchase, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*dataobjects.Purchase{}, m.purchases...), nil
}

// InsertPurchase stores the purchase
func (m *Memory) InsertPurchase(purchase *dataobjects.Purchase) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.assignID("purchases", &purchase.ID)
	m.purchases = append(m.purchases, purchase)
	return nil
}

// Tickets returns all tickets
func (m *Memory) Tickets() ([]*dataobjects.Ticket, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*dataobjects.Ticket{}, m.tickets...), nil
}

// InsertTicket stores the ticket
func (m *Memory) InsertTicket(ticket *dataobjects.Ticket) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.assignID("tickets", &ticket.ID)
	m.tickets = append(m.tickets, ticket)
	return nil
}

// Fines returns all fines
func (m *Memory) Fines() ([]*dataobjects.Fine, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*dataobjects.Fine{}, m.fines...), nil
}

// InsertFine stores the fine
func (m *Memory) InsertFine(fine *dataobjects.Fine) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.assignID("fines", &fine.ID)
	m.fines = append(m.fines, fine)
	return nil
}

// Inspections returns all inspections
func (m *Memory) Inspections() ([]*dataobjects.Inspection, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*dataobjects.Inspection{}, m.inspections...), nil
}

// InsertInspection stores the inspection
func (m *Memory) InsertInspection(inspection *dataobjects.Inspection) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.assignID("inspections", &inspection.ID)
	m.inspections = append(m.inspections, inspection)
	return nil
}

// TechnicalIssues returns all technical issues
func (m *Memory) TechnicalIssues() ([]*dataobjects.TechnicalIssue, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*dataobjects.TechnicalIssue{}, m.issues...), nil
}

// InsertTechnicalIssue stores the technical issue
func (m *Memory) InsertTechnicalIssue(issue *dataobjects.TechnicalIssue) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.assignID("technical_issues", &issue.ID)
	m.issues = append(m.issues, issue)
	return nil
}
