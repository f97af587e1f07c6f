package dataobjects

import (
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/gbl08ma/sqalx"
)

// Path is a sequence of stops driven end to end; lines reference their
// main path and rides are recorded against the path actually taken
type Path struct {
	ID                  int
	Distance            float64
	NumberOfStops       int
	EstimatedTravelTime int
}

// GetPaths returns a slice with all registered paths
func GetPaths(node sqalx.Node) ([]*Path, error) {
	return getPathsWithSelect(node, sdb.Select())
}

func getPathsWithSelect(node sqalx.Node, sbuilder sq.SelectBuilder) ([]*Path, error) {
	paths := []*Path{}

	tx, err := node.Beginx()
	if err != nil {
		return paths, err
	}
	defer tx.Commit() // read-only tx

	rows, err := sbuilder.Columns("id_path", "distance", "number_of_stops", "estimated_travel_time").
		From("paths").
		RunWith(tx).Query()
	if err != nil {
		return paths, fmt.Errorf("getPathsWithSelect: %s", err)
	}
	defer rows.Close()

	for rows.Next() {
		var path Path
		err := rows.Scan(
			&path.ID,
			&path.Distance,
			&path.NumberOfStops,
			&path.EstimatedTravelTime)
		if err != nil {
			return paths, fmt.Errorf("getPathsWithSelect: %s", err)
		}
		paths = append(paths, &path)
	}
	if err := rows.Err(); err != nil {
		return paths, fmt.Errorf("getPathsWithSelect: %s", err)
	}
	return paths, nil
}

// GetPath returns the Path with the given ID
func GetPath(node sqalx.Node, id int) (*Path, error) {
	s := sdb.Select().
		Where(sq.Eq{"id_path": id})
	paths, err := getPathsWithSelect(node, s)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, errors.New("Path not found")
	}
	return paths[0], nil
}

// Update adds or updates the path
func (path *Path) Update(node sqalx.Node) error {
	tx, err := node.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if path.ID == 0 {
		err = sdb.Insert("paths").
			Columns("distance", "number_of_stops", "estimated_travel_time").
			Values(path.Distance, path.NumberOfStops, path.EstimatedTravelTime).
			Suffix("RETURNING id_path").
			RunWith(tx).QueryRow().Scan(&path.ID)
	} else {
		_, err = sdb.Update("paths").
			Set("distance", path.Distance).
			Set("number_of_stops", path.NumberOfStops).
			Set("estimated_travel_time", path.EstimatedTravelTime).
			Where(sq.Eq{"id_path": path.ID}).
			RunWith(tx).Exec()
	}
	if err != nil {
		return errors.New("AddPath: " + err.Error())
	}
	return tx.Commit()
}

// Delete deletes the path
func (path *Path) Delete(node sqalx.Node) error {
	tx, err := node.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = sdb.Delete("paths").
		Where(sq.Eq{"id_path": path.ID}).RunWith(tx).Exec()
	if err != nil {
		return fmt.Errorf("RemovePath: %s", err)
	}
	return tx.Commit()
}
