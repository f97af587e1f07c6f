package dataobjects

import (
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/gbl08ma/sqalx"
)

// Ride is one run of a line with a vehicle and a driver. The path is
// the line's main path; the weekday is derived from the start time.
type Ride struct {
	ID        int
	Line      *Line
	Path      *Path
	Vehicle   *Vehicle
	Driver    *Driver
	Weekday   Weekday
	StartTime time.Time
}

// GetRides returns a slice with all registered rides
func GetRides(node sqalx.Node) ([]*Ride, error) {
	return getRidesWithSelect(node, sdb.Select())
}

func getRidesWithSelect(node sqalx.Node, sbuilder sq.SelectBuilder) ([]*Ride, error) {
	rides := []*Ride{}

	tx, err := node.Beginx()
	if err != nil {
		return rides, err
	}
	defer tx.Commit() // read-only tx

	rows, err := sbuilder.Columns("id_ride", "fk_line", "fk_path", "fk_vehicle", "fk_driver", "weekday", "start_time").
		From("rides").
		RunWith(tx).Query()
	if err != nil {
		return rides, fmt.Errorf("getRidesWithSelect: %s", err)
	}
	defer rows.Close()

	var lineIDs, pathIDs, vehicleIDs, driverIDs []int
	for rows.Next() {
		var ride Ride
		var lineID, pathID, vehicleID, driverID int
		err := rows.Scan(
			&ride.ID,
			&lineID,
			&pathID,
			&vehicleID,
			&driverID,
			&ride.Weekday,
			&ride.StartTime)
		if err != nil {
			return rides, fmt.Errorf("getRidesWithSelect: %s", err)
		}
		rides = append(rides, &ride)
		lineIDs = append(lineIDs, lineID)
		pathIDs = append(pathIDs, pathID)
		vehicleIDs = append(vehicleIDs, vehicleID)
		driverIDs = append(driverIDs, driverID)
	}
	if err := rows.Err(); err != nil {
		return rides, fmt.Errorf("getRidesWithSelect: %s", err)
	}
	for i := range rides {
		rides[i].Line, err = GetLine(tx, lineIDs[i])
		if err != nil {
			return rides, fmt.Errorf("getRidesWithSelect: %s", err)
		}
		rides[i].Path, err = GetPath(tx, pathIDs[i])
		if err != nil {
			return rides, fmt.Errorf("getRidesWithSelect: %s", err)
		}
		rides[i].Vehicle, err = GetVehicle(tx, vehicleIDs[i])
		if err != nil {
			return rides, fmt.Errorf("getRidesWithSelect: %s", err)
		}
		rides[i].Driver, err = GetDriver(tx, driverIDs[i])
		if err != nil {
			return rides, fmt.Errorf("getRidesWithSelect: %s", err)
		}
	}
	return rides, nil
}

// GetRide returns the Ride with the given ID
func GetRide(node sqalx.Node, id int) (*Ride, error) {
	s := sdb.Select().
		Where(sq.Eq{"id_ride": id})
	rides, err := getRidesWithSelect(node, s)
	if err != nil {
		return nil, err
	}
	if len(rides) == 0 {
		return nil, errors.New("Ride not found")
	}
	return rides[0], nil
}

// Update adds or updates the ride
func (ride *Ride) Update(node sqalx.Node) error {
	tx, err := node.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if ride.ID == 0 {
		err = sdb.Insert("rides").
			Columns("fk_line", "fk_path", "fk_vehicle", "fk_driver", "weekday", "start_time").
			Values(ride.Line.ID, ride.Path.ID, ride.Vehicle.ID, ride.Driver.ID, ride.Weekday, ride.StartTime).
			Suffix("RETURNING id_ride").
			RunWith(tx).QueryRow().Scan(&ride.ID)
	} else {
		_, err = sdb.Update("rides").
			Set("fk_line", ride.Line.ID).
			Set("fk_path", ride.Path.ID).
			Set("fk_vehicle", ride.Vehicle.ID).
			Set("fk_driver", ride.Driver.ID).
			Set("weekday", ride.Weekday).
			Set("start_time", ride.StartTime).
			Where(sq.Eq{"id_ride": ride.ID}).
			RunWith(tx).Exec()
	}
	if err != nil {
		return errors.New("AddRide: " + err.Error())
	}
	return tx.Commit()
}

// Delete deletes the ride
func (ride *Ride) Delete(node sqalx.Node) error {
	tx, err := node.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = sdb.Delete("rides").
		Where(sq.Eq{"id_ride": ride.ID}).RunWith(tx).Exec()
	if err != nil {
		return fmt.Errorf("RemoveRide: %s", err)
	}
	return tx.Commit()
}
