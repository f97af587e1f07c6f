package dataobjects

import (
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/gbl08ma/sqalx"
)

// TicketInspector is the ticket inspector role of a user account
type TicketInspector struct {
	ID   int
	User *AppUser
}

// GetTicketInspectors returns a slice with all registered inspectors
func GetTicketInspectors(node sqalx.Node) ([]*TicketInspector, error) {
	return getTicketInspectorsWithSelect(node, sdb.Select())
}

func getTicketInspectorsWithSelect(node sqalx.Node, sbuilder sq.SelectBuilder) ([]*TicketInspector, error) {
	inspectors := []*TicketInspector{}

	tx, err := node.Beginx()
	if err != nil {
		return inspectors, err
	}
	defer tx.Commit() // read-only tx

	rows, err := sbuilder.Columns("id_inspector", "fk_user").
		From("ticket_inspectors").
		RunWith(tx).Query()
	if err != nil {
		return inspectors, fmt.Errorf("getTicketInspectorsWithSelect: %s", err)
	}
	defer rows.Close()

	var userIDs []int
	for rows.Next() {
		var inspector TicketInspector
		var userID int
		err := rows.Scan(
			&inspector.ID,
			&userID)
		if err != nil {
			return inspectors, fmt.Errorf("getTicketInspectorsWithSelect: %s", err)
		}
		inspectors = append(inspectors, &inspector)
		userIDs = append(userIDs, userID)
	}
	if err := rows.Err(); err != nil {
		return inspectors, fmt.Errorf("getTicketInspectorsWithSelect: %s", err)
	}
	for i := range inspectors {
		inspectors[i].User, err = GetAppUser(tx, userIDs[i])
		if err != nil {
			return inspectors, fmt.Errorf("getTicketInspectorsWithSelect: %s", err)
		}
	}
	return inspectors, nil
}

// GetTicketInspector returns the TicketInspector with the given ID
func GetTicketInspector(node sqalx.Node, id int) (*TicketInspector, error) {
	s := sdb.Select().
		Where(sq.Eq{"id_inspector": id})
	inspectors, err := getTicketInspectorsWithSelect(node, s)
	if err != nil {
		return nil, err
	}
	if len(inspectors) == 0 {
		return nil, errors.New("TicketInspector not found")
	}
	return inspectors[0], nil
}

// Update adds or updates the inspector
func (inspector *TicketInspector) Update(node sqalx.Node) error {
	tx, err := node.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if inspector.ID == 0 {
		err = sdb.Insert("ticket_inspectors").
			Columns("fk_user").
			Values(inspector.User.ID).
			Suffix("RETURNING id_inspector").
			RunWith(tx).QueryRow().Scan(&inspector.ID)
	} else {
		_, err = sdb.Update("ticket_inspectors").
			Set("fk_user", inspector.User.ID).
			Where(sq.Eq{"id_inspector": inspector.ID}).
			RunWith(tx).Exec()
	}
	if err != nil {
		return errors.New("AddTicketInspector: " + err.Error())
	}
	return tx.Commit()
}

// Delete deletes the inspector
func (inspector *TicketInspector) Delete(node sqalx.Node) error {
	tx, err := node.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = sdb.Delete("ticket_inspectors").
		Where(sq.Eq{"id_inspector": inspector.ID}).RunWith(tx).Exec()
	if err != nil {
		return fmt.Errorf("RemoveTicketInspector: %s", err)
	}
	return tx.Commit()
}
