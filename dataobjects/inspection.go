package dataobjects

import (
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/gbl08ma/sqalx"
)

// Inspection is a ticket check performed on a ride
type Inspection struct {
	ID        int
	Ride      *Ride
	Inspector *TicketInspector
	Date      time.Time
}

// GetInspections returns a slice with all registered inspections
func GetInspections(node sqalx.Node) ([]*Inspection, error) {
	return getInspectionsWithSelect(node, sdb.Select())
}

func getInspectionsWithSelect(node sqalx.Node, sbuilder sq.SelectBuilder) ([]*Inspection, error) {
	inspections := []*Inspection{}

	tx, err := node.Beginx()
	if err != nil {
		return inspections, err
	}
	defer tx.Commit() // read-only tx

	rows, err := sbuilder.Columns("id_inspection", "fk_ride", "fk_inspector", "date").
		From("inspections").
		RunWith(tx).Query()
	if err != nil {
		return inspections, fmt.Errorf("getInspectionsWithSelect: %s", err)
	}
	defer rows.Close()

	var rideIDs, inspectorIDs []int
	for rows.Next() {
		var inspection Inspection
		var rideID, inspectorID int
		err := rows.Scan(
			&inspection.ID,
			&rideID,
			&inspectorID,
			&inspection.Date)
		if err != nil {
			return inspections, fmt.Errorf("getInspectionsWithSelect: %s", err)
		}
		inspections = append(inspections, &inspection)
		rideIDs = append(rideIDs, rideID)
		inspectorIDs = append(inspectorIDs, inspectorID)
	}
	if err := rows.Err(); err != nil {
		return inspections, fmt.Errorf("getInspectionsWithSelect: %s", err)
	}
	for i := range inspections {
		inspections[i].Ride, err = GetRide(tx, rideIDs[i])
		if err != nil {
			return inspections, fmt.Errorf("getInspectionsWithSelect: %s", err)
		}
		inspections[i].Inspector, err = GetTicketInspector(tx, inspectorIDs[i])
		if err != nil {
			return inspections, fmt.Errorf("getInspectionsWithSelect: %s", err)
		}
	}
	return inspections, nil
}

// GetInspection returns the Inspection with the given ID
func GetInspection(node sqalx.Node, id int) (*Inspection, error) {
	s := sdb.Select().
		Where(sq.Eq{"id_inspection": id})
	inspections, err := getInspectionsWithSelect(node, s)
	if err != nil {
		return nil, err
	}
	if len(inspections) == 0 {
		return nil, errors.New("Inspection not found")
	}
	return inspections[0], nil
}

// Update adds or updates the inspection
func (inspection *Inspection) Update(node sqalx.Node) error {
	tx, err := node.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if inspection.ID == 0 {
		err = sdb.Insert("inspections").
			Columns("fk_ride", "fk_inspector", "date").
			Values(inspection.Ride.ID, inspection.Inspector.ID, inspection.Date).
			Suffix("RETURNING id_inspection").
			RunWith(tx).QueryRow().Scan(&inspection.ID)
	} else {
		_, err = sdb.Update("inspections").
			Set("fk_ride", inspection.Ride.ID).
			Set("fk_inspector", inspection.Inspector.ID).
			Set("date", inspection.Date).
			Where(sq.Eq{"id_inspection": inspection.ID}).
			RunWith(tx).Exec()
	}
	if err != nil {
		return errors.New("AddInspection: " + err.Error())
	}
	return tx.Commit()
}

// Delete deletes the inspection
func (inspection *Inspection) Delete(node sqalx.Node) error {
	tx, err := node.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = sdb.Delete("inspections").
		Where(sq.Eq{"id_inspection": inspection.ID}).RunWith(tx).Exec()
	if err != nil {
		return fmt.Errorf("RemoveInspection: %s", err)
	}
	return tx.Commit()
}
