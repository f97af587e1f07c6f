package dataobjects

import (
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/gbl08ma/sqalx"
)

// Fine is a penalty issued to a passenger by a ticket inspector
type Fine struct {
	ID        int
	Passenger *Passenger
	Inspector *TicketInspector
	Amount    float64
	IssueDate time.Time
	Status    FineStatus
	Deadline  time.Time
}

// GetFines returns a slice with all registered fines
func GetFines(node sqalx.Node) ([]*Fine, error) {
	return getFinesWithSelect(node, sdb.Select())
}

func getFinesWithSelect(node sqalx.Node, sbuilder sq.SelectBuilder) ([]*Fine, error) {
	fines := []*Fine{}

	tx, err := node.Beginx()
	if err != nil {
		return fines, err
	}
	defer tx.Commit() // read-only tx

	rows, err := sbuilder.Columns("id_fine", "fk_passenger", "fk_inspector", "amount", "issue_date", "status", "deadline").
		From("fines").
		RunWith(tx).Query()
	if err != nil {
		return fines, fmt.Errorf("getFinesWithSelect: %s", err)
	}
	defer rows.Close()

	var passengerIDs, inspectorIDs []int
	for rows.Next() {
		var fine Fine
		var passengerID, inspectorID int
		err := rows.Scan(
			&fine.ID,
			&passengerID,
			&inspectorID,
			&fine.Amount,
			&fine.IssueDate,
			&fine.Status,
			&fine.Deadline)
		if err != nil {
			return fines, fmt.Errorf("getFinesWithSelect: %s", err)
		}
		fines = append(fines, &fine)
		passengerIDs = append(passengerIDs, passengerID)
		inspectorIDs = append(inspectorIDs, inspectorID)
	}
	if err := rows.Err(); err != nil {
		return fines, fmt.Errorf("getFinesWithSelect: %s", err)
	}
	for i := range fines {
		fines[i].Passenger, err = GetPassenger(tx, passengerIDs[i])
		if err != nil {
			return fines, fmt.Errorf("getFinesWithSelect: %s", err)
		}
		fines[i].Inspector, err = GetTicketInspector(tx, inspectorIDs[i])
		if err != nil {
			return fines, fmt.Errorf("getFinesWithSelect: %s", err)
		}
	}
	return fines, nil
}

// GetFine returns the Fine with the given ID
func GetFine(node sqalx.Node, id int) (*Fine, error) {
	s := sdb.Select().
		Where(sq.Eq{"id_fine": id})
	fines, err := getFinesWithSelect(node, s)
	if err != nil {
		return nil, err
	}
	if len(fines) == 0 {
		return nil, errors.New("Fine not found")
	}
	return fines[0], nil
}

// Update adds or updates the fine
func (fine *Fine) Update(node sqalx.Node) error {
	tx, err := node.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if fine.ID == 0 {
		err = sdb.Insert("fines").
			Columns("fk_passenger", "fk_inspector", "amount", "issue_date", "status", "deadline").
			Values(fine.Passenger.ID, fine.Inspector.ID, fine.Amount, fine.IssueDate, fine.Status, fine.Deadline).
			Suffix("RETURNING id_fine").
			RunWith(tx).QueryRow().Scan(&fine.ID)
	} else {
		_, err = sdb.Update("fines").
			Set("fk_passenger", fine.Passenger.ID).
			Set("fk_inspector", fine.Inspector.ID).
			Set("amount", fine.Amount).
			Set("issue_date", fine.IssueDate).
			Set("status", fine.Status).
			Set("deadline", fine.Deadline).
			Where(sq.Eq{"id_fine": fine.ID}).
			RunWith(tx).Exec()
	}
	if err != nil {
		return errors.New("AddFine: " + err.Error())
	}
	return tx.Commit()
}

// Delete deletes the fine
func (fine *Fine) Delete(node sqalx.Node) error {
	tx, err := node.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = sdb.Delete("fines").
		Where(sq.Eq{"id_fine": fine.ID}).RunWith(tx).Exec()
	if err != nil {
		return fmt.Errorf("RemoveFine: %s", err)
	}
	return tx.Commit()
}
