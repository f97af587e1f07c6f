package dataobjects

import (
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/gbl08ma/sqalx"
)

// PathStop places a stop on a path at the minute it is reached,
// counting from the start of the path. Path and stop together form the
// primary key.
type PathStop struct {
	Path       *Path
	Stop       *Stop
	PathMinute int
}

// GetPathStops returns a slice with all registered path stops
func GetPathStops(node sqalx.Node) ([]*PathStop, error) {
	return getPathStopsWithSelect(node, sdb.Select())
}

func getPathStopsWithSelect(node sqalx.Node, sbuilder sq.SelectBuilder) ([]*PathStop, error) {
	pathStops := []*PathStop{}

	tx, err := node.Beginx()
	if err != nil {
		return pathStops, err
	}
	defer tx.Commit() // read-only tx

	rows, err := sbuilder.Columns("id_path", "id_stop", "path_minute").
		From("path_stops").
		RunWith(tx).Query()
	if err != nil {
		return pathStops, fmt.Errorf("getPathStopsWithSelect: %s", err)
	}
	defer rows.Close()

	var pathIDs, stopIDs []int
	for rows.Next() {
		var pathStop PathStop
		var pathID, stopID int
		err := rows.Scan(
			&pathID,
			&stopID,
			&pathStop.PathMinute)
		if err != nil {
			return pathStops, fmt.Errorf("getPathStopsWithSelect: %s", err)
		}
		pathStops = append(pathStops, &pathStop)
		pathIDs = append(pathIDs, pathID)
		stopIDs = append(stopIDs, stopID)
	}
	if err := rows.Err(); err != nil {
		return pathStops, fmt.Errorf("getPathStopsWithSelect: %s", err)
	}
	for i := range pathStops {
		pathStops[i].Path, err = GetPath(tx, pathIDs[i])
		if err != nil {
			return pathStops, fmt.Errorf("getPathStopsWithSelect: %s", err)
		}
		pathStops[i].Stop, err = GetStop(tx, stopIDs[i])
		if err != nil {
			return pathStops, fmt.Errorf("getPathStopsWithSelect: %s", err)
		}
	}
	return pathStops, nil
}

// GetPathStopsForPath returns the path stops of the given path, ordered
// by the minute they are reached
func GetPathStopsForPath(node sqalx.Node, pathID int) ([]*PathStop, error) {
	s := sdb.Select().
		Where(sq.Eq{"id_path": pathID}).
		OrderBy("path_minute ASC")
	return getPathStopsWithSelect(node, s)
}

// Update adds or updates the path stop
func (pathStop *PathStop) Update(node sqalx.Node) error {
	tx, err := node.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = sdb.Insert("path_stops").
		Columns("id_path", "id_stop", "path_minute").
		Values(pathStop.Path.ID, pathStop.Stop.ID, pathStop.PathMinute).
		Suffix("ON CONFLICT (id_path, id_stop) DO UPDATE SET path_minute = ?",
			pathStop.PathMinute).
		RunWith(tx).Exec()

	if err != nil {
		return errors.New("AddPathStop: " + err.Error())
	}
	return tx.Commit()
}

// Delete deletes the path stop
func (pathStop *PathStop) Delete(node sqalx.Node) error {
	tx, err := node.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = sdb.Delete("path_stops").
		Where(sq.Eq{"id_path": pathStop.Path.ID, "id_stop": pathStop.Stop.ID}).
		RunWith(tx).Exec()
	if err != nil {
		return fmt.Errorf("RemovePathStop: %s", err)
	}
	return tx.Commit()
}
