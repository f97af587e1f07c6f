package dataobjects

import (
	"github.com/gbl08ma/sqalx"

	"fmt"
)

// tableDefs holds the DDL for every table, in dependency order: a table
// only references tables that appear before it.
var tableDefs = []struct {
	name string
	ddl  string
}{
	{"app_users", `CREATE TABLE IF NOT EXISTS app_users (
		id_user SERIAL PRIMARY KEY,
		login VARCHAR(255) UNIQUE NOT NULL,
		password VARCHAR(255) NOT NULL,
		email VARCHAR(255) UNIQUE NOT NULL,
		phone_number VARCHAR(20) NOT NULL,
		name VARCHAR(255) NOT NULL,
		surname VARCHAR(255) NOT NULL,
		CONSTRAINT valid_email CHECK (email ~* '^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,4}$')
	)`},
	{"drivers_licenses", `CREATE TABLE IF NOT EXISTS drivers_licenses (
		id_license SERIAL PRIMARY KEY,
		issued_on TIMESTAMP NOT NULL,
		expires_on TIMESTAMP NOT NULL,
		CONSTRAINT valid_dates CHECK (expires_on > issued_on)
	)`},
	{"drivers", `CREATE TABLE IF NOT EXISTS drivers (
		id_driver SERIAL PRIMARY KEY,
		fk_license INTEGER UNIQUE NOT NULL REFERENCES drivers_licenses (id_license) ON DELETE CASCADE ON UPDATE CASCADE,
		fk_user INTEGER UNIQUE NOT NULL REFERENCES app_users (id_user) ON DELETE CASCADE ON UPDATE CASCADE
	)`},
	{"stops", `CREATE TABLE IF NOT EXISTS stops (
		id_stop SERIAL PRIMARY KEY,
		name VARCHAR(255) UNIQUE NOT NULL,
		type VARCHAR(10) NOT NULL CHECK (type IN ('Bus', 'Tram', 'BusTram')),
		longitude DOUBLE PRECISION NOT NULL,
		latitude DOUBLE PRECISION NOT NULL,
		seating_available BOOLEAN NOT NULL,
		shelter BOOLEAN NOT NULL,
		CONSTRAINT valid_longitude CHECK (longitude BETWEEN -180 AND 180),
		CONSTRAINT valid_latitude CHECK (latitude BETWEEN -90 AND 90)
	)`},
	{"paths", `CREATE TABLE IF NOT EXISTS paths (
		id_path SERIAL PRIMARY KEY,
		distance DECIMAL(10,2) NOT NULL,
		number_of_stops INTEGER NOT NULL,
		estimated_travel_time INTEGER NOT NULL,
		CONSTRAINT valid_distance CHECK (distance > 0),
		CONSTRAINT valid_number_of_stops CHECK (number_of_stops > 2),
		CONSTRAINT valid_estimated_travel_time CHECK (estimated_travel_time > 0)
	)`},
	{"lines", `CREATE TABLE IF NOT EXISTS lines (
		id_line SERIAL PRIMARY KEY,
		number VARCHAR(10) UNIQUE NOT NULL,
		fk_main_path INTEGER NOT NULL REFERENCES paths (id_path) ON DELETE SET NULL ON UPDATE CASCADE,
		avg_frequency INTEGER NOT NULL,
		CONSTRAINT valid_frequency CHECK (avg_frequency > 0)
	)`},
	{"path_stops", `CREATE TABLE IF NOT EXISTS path_stops (
		id_path INTEGER NOT NULL REFERENCES paths (id_path) ON DELETE CASCADE ON UPDATE CASCADE,
		id_stop INTEGER NOT NULL REFERENCES stops (id_stop) ON DELETE CASCADE ON UPDATE CASCADE,
		path_minute INTEGER NOT NULL,
		PRIMARY KEY (id_path, id_stop),
		CONSTRAINT valid_path_minute CHECK (path_minute > 0)
	)`},
	{"vehicles", `CREATE TABLE IF NOT EXISTS vehicles (
		id_vehicle SERIAL PRIMARY KEY,
		vehicle_number INTEGER UNIQUE NOT NULL,
		last_technical_inspection TIMESTAMP NOT NULL,
		production_date TIMESTAMP NOT NULL,
		capacity INTEGER NOT NULL,
		type VARCHAR(10) NOT NULL CHECK (type IN ('Bus', 'Tram')),
		status VARCHAR(10) NOT NULL CHECK (status IN ('Active', 'Inactive')),
		air_conditioning BOOLEAN NOT NULL,
		CONSTRAINT valid_capacity CHECK (capacity > 0)
	)`},
	{"technical_issues", `CREATE TABLE IF NOT EXISTS technical_issues (
		id_technical_issue SERIAL PRIMARY KEY,
		description VARCHAR(255) NOT NULL,
		report_date TIMESTAMP NOT NULL,
		resolve_date TIMESTAMP,
		fk_driver INTEGER NOT NULL REFERENCES drivers (id_driver) ON DELETE SET NULL ON UPDATE CASCADE,
		fk_vehicle INTEGER NOT NULL REFERENCES vehicles (id_vehicle) ON DELETE CASCADE ON UPDATE CASCADE,
		status VARCHAR(10) NOT NULL CHECK (status IN ('Reported', 'InProgress', 'Resolved')),
		repair_cost DECIMAL(10,2),
		CONSTRAINT valid_repair_cost CHECK (repair_cost >= 0),
		CONSTRAINT valid_dates CHECK ((resolve_date IS NULL) OR (resolve_date >= report_date))
	)`},
	{"rides", `CREATE TABLE IF NOT EXISTS rides (
		id_ride SERIAL PRIMARY KEY,
		fk_line INTEGER NOT NULL REFERENCES lines (id_line) ON DELETE CASCADE ON UPDATE CASCADE,
		fk_path INTEGER NOT NULL REFERENCES paths (id_path) ON DELETE CASCADE ON UPDATE CASCADE,
		fk_vehicle INTEGER NOT NULL REFERENCES vehicles (id_vehicle) ON DELETE SET NULL ON UPDATE CASCADE,
		fk_driver INTEGER NOT NULL REFERENCES drivers (id_driver) ON DELETE SET NULL ON UPDATE CASCADE,
		weekday VARCHAR(10) NOT NULL CHECK (weekday IN ('Monday', 'Tuesday', 'Wednesday', 'Thursday', 'Friday', 'Saturday', 'Sunday')),
		start_time TIMESTAMP NOT NULL
	)`},
	{"ticket_inspectors", `CREATE TABLE IF NOT EXISTS ticket_inspectors (
		id_inspector SERIAL PRIMARY KEY,
		fk_user INTEGER NOT NULL REFERENCES app_users (id_user) ON DELETE CASCADE ON UPDATE CASCADE
	)`},
	{"inspections", `CREATE TABLE IF NOT EXISTS inspections (
		id_inspection SERIAL PRIMARY KEY,
		fk_ride INTEGER NOT NULL REFERENCES rides (id_ride) ON DELETE CASCADE ON UPDATE CASCADE,
		fk_inspector INTEGER NOT NULL REFERENCES ticket_inspectors (id_inspector) ON DELETE CASCADE ON UPDATE CASCADE,
		date TIMESTAMP NOT NULL,
		CONSTRAINT valid_date CHECK (date <= CURRENT_TIMESTAMP)
	)`},
	{"passengers", `CREATE TABLE IF NOT EXISTS passengers (
		id_passenger SERIAL PRIMARY KEY,
		fk_user INTEGER NOT NULL REFERENCES app_users (id_user) ON DELETE CASCADE ON UPDATE CASCADE
	)`},
	{"ticket_types", `CREATE TABLE IF NOT EXISTS ticket_types (
		id_ticket_type SERIAL PRIMARY KEY,
		name VARCHAR(255) UNIQUE NOT NULL,
		type VARCHAR(10) NOT NULL CHECK (type IN ('Normal', 'Discounted')),
		price DECIMAL(10,2) NOT NULL,
		validity_duration INTEGER NOT NULL,
		is_discounted BOOLEAN NOT NULL,
		CONSTRAINT valid_price CHECK (price > 0),
		CONSTRAINT valid_validity_duration CHECK (validity_duration > 0)
	)`},
	{"purchases", `CREATE TABLE IF NOT EXISTS purchases (
		id_purchase SERIAL PRIMARY KEY,
		date TIMESTAMP NOT NULL,
		amount DECIMAL(10,2) NOT NULL,
		CONSTRAINT valid_amount CHECK (amount > 0),
		CONSTRAINT valid_date CHECK (date <= CURRENT_TIMESTAMP)
	)`},
	{"tickets", `CREATE TABLE IF NOT EXISTS tickets (
		id_ticket SERIAL PRIMARY KEY,
		fk_passenger INTEGER NOT NULL REFERENCES passengers (id_passenger) ON DELETE CASCADE ON UPDATE CASCADE,
		fk_purchase INTEGER NOT NULL REFERENCES purchases (id_purchase) ON DELETE CASCADE ON UPDATE CASCADE,
		fk_ticket_type INTEGER NOT NULL REFERENCES ticket_types (id_ticket_type) ON DELETE SET NULL ON UPDATE CASCADE
	)`},
	{"fines", `CREATE TABLE IF NOT EXISTS fines (
		id_fine SERIAL PRIMARY KEY,
		fk_passenger INTEGER NOT NULL REFERENCES passengers (id_passenger) ON DELETE CASCADE ON UPDATE CASCADE,
		fk_inspector INTEGER NOT NULL REFERENCES ticket_inspectors (id_inspector) ON DELETE CASCADE ON UPDATE CASCADE,
		amount DECIMAL(10,2) NOT NULL,
		issue_date TIMESTAMP NOT NULL,
		status VARCHAR(10) NOT NULL CHECK (status IN ('Paid', 'Unpaid')),
		deadline TIMESTAMP NOT NULL,
		CONSTRAINT valid_deadline CHECK (deadline > issue_date),
		CONSTRAINT valid_amount CHECK (amount > 0)
	)`},
	{"editors", `CREATE TABLE IF NOT EXISTS editors (
		id_editor SERIAL PRIMARY KEY,
		fk_user INTEGER NOT NULL REFERENCES app_users (id_user) ON DELETE CASCADE ON UPDATE CASCADE
	)`},
}

// TableNames returns the table names in dependency order
func TableNames() []string {
	names := make([]string, len(tableDefs))
	for i, def := range tableDefs {
		names[i] = def.name
	}
	return names
}

// CreateSchema creates all tables that do not exist yet
func CreateSchema(node sqalx.Node) error {
	tx, err := node.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, def := range tableDefs {
		if _, err := tx.Exec(def.ddl); err != nil {
			return fmt.Errorf("CreateSchema: %s: %s", def.name, err)
		}
	}
	return tx.Commit()
}

// DropSchema drops all tables, in reverse dependency order
func DropSchema(node sqalx.Node) error {
	tx, err := node.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for i := len(tableDefs) - 1; i >= 0; i-- {
		if _, err := tx.Exec("DROP TABLE IF EXISTS " + tableDefs[i].name + " CASCADE"); err != nil {
			return fmt.Errorf("DropSchema: %s: %s", tableDefs[i].name, err)
		}
	}
	return tx.Commit()
}

// ClearTables deletes all rows from all tables, in reverse dependency
// order so that no foreign key constraint is violated
func ClearTables(node sqalx.Node) error {
	tx, err := node.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for i := len(tableDefs) - 1; i >= 0; i-- {
		if _, err := sdb.Delete(tableDefs[i].name).RunWith(tx).Exec(); err != nil {
			return fmt.Errorf("ClearTables: %s: %s", tableDefs[i].name, err)
		}
	}
	return tx.Commit()
}

// ClearTable deletes all rows from the given table
func ClearTable(node sqalx.Node, table string) error {
	tx, err := node.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := sdb.Delete(table).RunWith(tx).Exec(); err != nil {
		return fmt.Errorf("ClearTable: %s: %s", table, err)
	}
	return tx.Commit()
}
