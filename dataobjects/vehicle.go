package dataobjects

import (
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/gbl08ma/sqalx"
)

// Vehicle is a bus or tram of the fleet
type Vehicle struct {
	ID                      int
	VehicleNumber           int
	LastTechnicalInspection time.Time
	ProductionDate          time.Time
	Capacity                int
	Type                    VehicleType
	Status                  VehicleStatus
	AirConditioning         bool
}

// GetVehicles returns a slice with all registered vehicles
func GetVehicles(node sqalx.Node) ([]*Vehicle, error) {
	return getVehiclesWithSelect(node, sdb.Select())
}

func getVehiclesWithSelect(node sqalx.Node, sbuilder sq.SelectBuilder) ([]*Vehicle, error) {
	vehicles := []*Vehicle{}

	tx, err := node.Beginx()
	if err != nil {
		return vehicles, err
	}
	defer tx.Commit() // read-only tx

	rows, err := sbuilder.Columns("id_vehicle", "vehicle_number", "last_technical_inspection",
		"production_date", "capacity", "type", "status", "air_conditioning").
		From("vehicles").
		RunWith(tx).Query()
	if err != nil {
		return vehicles, fmt.Errorf("getVehiclesWithSelect: %s", err)
	}
	defer rows.Close()

	for rows.Next() {
		var vehicle Vehicle
		err := rows.Scan(
			&vehicle.ID,
			&vehicle.VehicleNumber,
			&vehicle.LastTechnicalInspection,
			&vehicle.ProductionDate,
			&vehicle.Capacity,
			&vehicle.Type,
			&vehicle.Status,
			&vehicle.AirConditioning)
		if err != nil {
			return vehicles, fmt.Errorf("getVehiclesWithSelect: %s", err)
		}
		vehicles = append(vehicles, &vehicle)
	}
	if err := rows.Err(); err != nil {
		return vehicles, fmt.Errorf("getVehiclesWithSelect: %s", err)
	}
	return vehicles, nil
}

// GetVehicle returns the Vehicle with the given ID
func GetVehicle(node sqalx.Node, id int) (*Vehicle, error) {
	s := sdb.Select().
		Where(sq.Eq{"id_vehicle": id})
	vehicles, err := getVehiclesWithSelect(node, s)
	if err != nil {
		return nil, err
	}
	if len(vehicles) == 0 {
		return nil, errors.New("Vehicle not found")
	}
	return vehicles[0], nil
}

// Update adds or updates the vehicle
func (vehicle *Vehicle) Update(node sqalx.Node) error {
	tx, err := node.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if vehicle.ID == 0 {
		err = sdb.Insert("vehicles").
			Columns("vehicle_number", "last_technical_inspection", "production_date",
				"capacity", "type", "status", "air_conditioning").
			Values(vehicle.VehicleNumber, vehicle.LastTechnicalInspection, vehicle.ProductionDate,
				vehicle.Capacity, vehicle.Type, vehicle.Status, vehicle.AirConditioning).
			Suffix("RETURNING id_vehicle").
			RunWith(tx).QueryRow().Scan(&vehicle.ID)
	} else {
		_, err = sdb.Update("vehicles").
			Set("vehicle_number", vehicle.VehicleNumber).
			Set("last_technical_inspection", vehicle.LastTechnicalInspection).
			Set("production_date", vehicle.ProductionDate).
			Set("capacity", vehicle.Capacity).
			Set("type", vehicle.Type).
			Set("status", vehicle.Status).
			Set("air_conditioning", vehicle.AirConditioning).
			Where(sq.Eq{"id_vehicle": vehicle.ID}).
			RunWith(tx).Exec()
	}
	if err != nil {
		return errors.New("AddVehicle: " + err.Error())
	}
	return tx.Commit()
}

// Delete deletes the vehicle
func (vehicle *Vehicle) Delete(node sqalx.Node) error {
	tx, err := node.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = sdb.Delete("vehicles").
		Where(sq.Eq{"id_vehicle": vehicle.ID}).RunWith(tx).Exec()
	if err != nil {
		return fmt.Errorf("RemoveVehicle: %s", err)
	}
	return tx.Commit()
}
