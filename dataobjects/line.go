package dataobjects

import (
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/gbl08ma/sqalx"
)

// Line is a numbered transit line with a main path
type Line struct {
	ID           int
	Number       string
	MainPath     *Path
	AvgFrequency int
}

// GetLines returns a slice with all registered lines
func GetLines(node sqalx.Node) ([]*Line, error) {
	return getLinesWithSelect(node, sdb.Select())
}

func getLinesWithSelect(node sqalx.Node, sbuilder sq.SelectBuilder) ([]*Line, error) {
	lines := []*Line{}

	tx, err := node.Beginx()
	if err != nil {
		return lines, err
	}
	defer tx.Commit() // read-only tx

	rows, err := sbuilder.Columns("id_line", "number", "fk_main_path", "avg_frequency").
		From("lines").
		RunWith(tx).Query()
	if err != nil {
		return lines, fmt.Errorf("getLinesWithSelect: %s", err)
	}
	defer rows.Close()

	var pathIDs []int
	for rows.Next() {
		var line Line
		var pathID int
		err := rows.Scan(
			&line.ID,
			&line.Number,
			&pathID,
			&line.AvgFrequency)
		if err != nil {
			return lines, fmt.Errorf("getLinesWithSelect: %s", err)
		}
		lines = append(lines, &line)
		pathIDs = append(pathIDs, pathID)
	}
	if err := rows.Err(); err != nil {
		return lines, fmt.Errorf("getLinesWithSelect: %s", err)
	}
	for i := range lines {
		lines[i].MainPath, err = GetPath(tx, pathIDs[i])
		if err != nil {
			return lines, fmt.Errorf("getLinesWithSelect: %s", err)
		}
	}
	return lines, nil
}

// GetLine returns the Line with the given ID
func GetLine(node sqalx.Node, id int) (*Line, error) {
	s := sdb.Select().
		Where(sq.Eq{"id_line": id})
	lines, err := getLinesWithSelect(node, s)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, errors.New("Line not found")
	}
	return lines[0], nil
}

// Stops returns the stops of this line's main path, ordered by the
// minute they are reached
func (line *Line) Stops(node sqalx.Node) ([]*PathStop, error) {
	s := sdb.Select().
		Where(sq.Eq{"id_path": line.MainPath.ID}).
		OrderBy("path_minute ASC")
	return getPathStopsWithSelect(node, s)
}

// Update adds or updates the line
func (line *Line) Update(node sqalx.Node) error {
	tx, err := node.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if line.ID == 0 {
		err = sdb.Insert("lines").
			Columns("number", "fk_main_path", "avg_frequency").
			Values(line.Number, line.MainPath.ID, line.AvgFrequency).
			Suffix("RETURNING id_line").
			RunWith(tx).QueryRow().Scan(&line.ID)
	} else {
		_, err = sdb.Update("lines").
			Set("number", line.Number).
			Set("fk_main_path", line.MainPath.ID).
			Set("avg_frequency", line.AvgFrequency).
			Where(sq.Eq{"id_line": line.ID}).
			RunWith(tx).Exec()
	}
	if err != nil {
		return errors.New("AddLine: " + err.Error())
	}
	return tx.Commit()
}

// Delete deletes the line
func (line *Line) Delete(node sqalx.Node) error {
	tx, err := node.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = sdb.Delete("lines").
		Where(sq.Eq{"id_line": line.ID}).RunWith(tx).Exec()
	if err != nil {
		return fmt.Errorf("RemoveLine: %s", err)
	}
	return tx.Commit()
}
