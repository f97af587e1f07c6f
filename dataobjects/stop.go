package dataobjects

import (
	"errors"
	"fmt"
	"math"

	sq "github.com/Masterminds/squirrel"
	"github.com/gbl08ma/sqalx"
)

// Stop is a stop served by one or more lines
type Stop struct {
	ID               int
	Name             string
	Type             StopType
	Longitude        float64
	Latitude         float64
	SeatingAvailable bool
	Shelter          bool
}

// DistanceTo returns the Euclidean distance between the coordinates of
// this stop and the other one
func (stop *Stop) DistanceTo(other *Stop) float64 {
	return math.Hypot(stop.Latitude-other.Latitude, stop.Longitude-other.Longitude)
}

// GetStops returns a slice with all registered stops
func GetStops(node sqalx.Node) ([]*Stop, error) {
	return getStopsWithSelect(node, sdb.Select())
}

func getStopsWithSelect(node sqalx.Node, sbuilder sq.SelectBuilder) ([]*Stop, error) {
	stops := []*Stop{}

	tx, err := node.Beginx()
	if err != nil {
		return stops, err
	}
	defer tx.Commit() // read-only tx

	rows, err := sbuilder.Columns("id_stop", "name", "type", "longitude", "latitude", "seating_available", "shelter").
		From("stops").
		RunWith(tx).Query()
	if err != nil {
		return stops, fmt.Errorf("getStopsWithSelect: %s", err)
	}
	defer rows.Close()

	for rows.Next() {
		var stop Stop
		err := rows.Scan(
			&stop.ID,
			&stop.Name,
			&stop.Type,
			&stop.Longitude,
			&stop.Latitude,
			&stop.SeatingAvailable,
			&stop.Shelter)
		if err != nil {
			return stops, fmt.Errorf("getStopsWithSelect: %s", err)
		}
		stops = append(stops, &stop)
	}
	if err := rows.Err(); err != nil {
		return stops, fmt.Errorf("getStopsWithSelect: %s", err)
	}
	return stops, nil
}

// GetStop returns the Stop with the given ID
func GetStop(node sqalx.Node, id int) (*Stop, error) {
	s := sdb.Select().
		Where(sq.Eq{"id_stop": id})
	stops, err := getStopsWithSelect(node, s)
	if err != nil {
		return nil, err
	}
	if len(stops) == 0 {
		return nil, errors.New("Stop not found")
	}
	return stops[0], nil
}

// Update adds or updates the stop
func (stop *Stop) Update(node sqalx.Node) error {
	tx, err := node.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if stop.ID == 0 {
		err = sdb.Insert("stops").
			Columns("name", "type", "longitude", "latitude", "seating_available", "shelter").
			Values(stop.Name, stop.Type, stop.Longitude, stop.Latitude, stop.SeatingAvailable, stop.Shelter).
			Suffix("RETURNING id_stop").
			RunWith(tx).QueryRow().Scan(&stop.ID)
	} else {
		_, err = sdb.Update("stops").
			Set("name", stop.Name).
			Set("type", stop.Type).
			Set("longitude", stop.Longitude).
			Set("latitude", stop.Latitude).
			Set("seating_available", stop.SeatingAvailable).
			Set("shelter", stop.Shelter).
			Where(sq.Eq{"id_stop": stop.ID}).
			RunWith(tx).Exec()
	}
	if err != nil {
		return errors.New("AddStop: " + err.Error())
	}
	return tx.Commit()
}

// Delete deletes the stop
func (stop *Stop) Delete(node sqalx.Node) error {
	tx, err := node.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = sdb.Delete("stops").
		Where(sq.Eq{"id_stop": stop.ID}).RunWith(tx).Exec()
	if err != nil {
		return fmt.Errorf("RemoveStop: %s", err)
	}
	return tx.Commit()
}
