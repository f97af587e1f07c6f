package dataobjects

import (
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/gbl08ma/sqalx"
)

// Passenger is the passenger role of a user account
type Passenger struct {
	ID   int
	User *AppUser
}

// GetPassengers returns a slice with all registered passengers
func GetPassengers(node sqalx.Node) ([]*Passenger, error) {
	return getPassengersWithSelect(node, sdb.Select())
}

func getPassengersWithSelect(node sqalx.Node, sbuilder sq.SelectBuilder) ([]*Passenger, error) {
	passengers := []*Passenger{}

	tx, err := node.Beginx()
	if err != nil {
		return passengers, err
	}
	defer tx.Commit() // read-only tx

	rows, err := sbuilder.Columns("id_passenger", "fk_user").
		From("passengers").
		RunWith(tx).Query()
	if err != nil {
		return passengers, fmt.Errorf("getPassengersWithSelect: %s", err)
	}
	defer rows.Close()

	var userIDs []int
	for rows.Next() {
		var passenger Passenger
		var userID int
		err := rows.Scan(
			&passenger.ID,
			&userID)
		if err != nil {
			return passengers, fmt.Errorf("getPassengersWithSelect: %s", err)
		}
		passengers = append(passengers, &passenger)
		userIDs = append(userIDs, userID)
	}
	if err := rows.Err(); err != nil {
		return passengers, fmt.Errorf("getPassengersWithSelect: %s", err)
	}
	for i := range passengers {
		passengers[i].User, err = GetAppUser(tx, userIDs[i])
		if err != nil {
			return passengers, fmt.Errorf("getPassengersWithSelect: %s", err)
		}
	}
	return passengers, nil
}

// GetPassenger returns the Passenger with the given ID
func GetPassenger(node sqalx.Node, id int) (*Passenger, error) {
	s := sdb.Select().
		Where(sq.Eq{"id_passenger": id})
	passengers, err := getPassengersWithSelect(node, s)
	if err != nil {
		return nil, err
	}
	if len(passengers) == 0 {
		return nil, errors.New("Passenger not found")
	}
	return passengers[0], nil
}

// Update adds or updates the passenger
func (passenger *Passenger) Update(node sqalx.Node) error {
	tx, err := node.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if passenger.ID == 0 {
		err = sdb.Insert("passengers").
			Columns("fk_user").
			Values(passenger.User.ID).
			Suffix("RETURNING id_passenger").
			RunWith(tx).QueryRow().Scan(&passenger.ID)
	} else {
		_, err = sdb.Update("passengers").
			Set("fk_user", passenger.User.ID).
			Where(sq.Eq{"id_passenger": passenger.ID}).
			RunWith(tx).Exec()
	}
	if err != nil {
		return errors.New("AddPassenger: " + err.Error())
	}
	return tx.Commit()
}

// Delete deletes the passenger
func (passenger *Passenger) Delete(node sqalx.Node) error {
	tx, err := node.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = sdb.Delete("passengers").
		Where(sq.Eq{"id_passenger": passenger.ID}).RunWith(tx).Exec()
	if err != nil {
		return fmt.Errorf("RemovePassenger: %s", err)
	}
	return tx.Commit()
}
