package dataobjects

import (
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/gbl08ma/sqalx"
)

// TicketType is an entry of the fare catalog. ValidityDuration is in
// minutes, also for day tickets.
type TicketType struct {
	ID               int
	Name             string
	Type             TicketDiscountType
	Price            float64
	ValidityDuration int
	IsDiscounted     bool
}

// GetTicketTypes returns a slice with all registered ticket types
func GetTicketTypes(node sqalx.Node) ([]*TicketType, error) {
	return getTicketTypesWithSelect(node, sdb.Select())
}

func getTicketTypesWithSelect(node sqalx.Node, sbuilder sq.SelectBuilder) ([]*TicketType, error) {
	ticketTypes := []*TicketType{}

	tx, err := node.Beginx()
	if err != nil {
		return ticketTypes, err
	}
	defer tx.Commit() // read-only tx

	rows, err := sbuilder.Columns("id_ticket_type", "name", "type", "price", "validity_duration", "is_discounted").
		From("ticket_types").
		RunWith(tx).Query()
	if err != nil {
		return ticketTypes, fmt.Errorf("getTicketTypesWithSelect: %s", err)
	}
	defer rows.Close()

	for rows.Next() {
		var ticketType TicketType
		err := rows.Scan(
			&ticketType.ID,
			&ticketType.Name,
			&ticketType.Type,
			&ticketType.Price,
			&ticketType.ValidityDuration,
			&ticketType.IsDiscounted)
		if err != nil {
			return ticketTypes, fmt.Errorf("getTicketTypesWithSelect: %s", err)
		}
		ticketTypes = append(ticketTypes, &ticketType)
	}
	if err := rows.Err(); err != nil {
		return ticketTypes, fmt.Errorf("getTicketTypesWithSelect: %s", err)
	}
	return ticketTypes, nil
}

// GetTicketType returns the TicketType with the given ID
func GetTicketType(node sqalx.Node, id int) (*TicketType, error) {
	s := sdb.Select().
		Where(sq.Eq{"id_ticket_type": id})
	ticketTypes, err := getTicketTypesWithSelect(node, s)
	if err != nil {
		return nil, err
	}
	if len(ticketTypes) == 0 {
		return nil, errors.New("TicketType not found")
	}
	return ticketTypes[0], nil
}

// Update adds or updates the ticket type
func (ticketType *TicketType) Update(node sqalx.Node) error {
	tx, err := node.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if ticketType.ID == 0 {
		err = sdb.Insert("ticket_types").
			Columns("name", "type", "price", "validity_duration", "is_discounted").
			Values(ticketType.Name, ticketType.Type, ticketType.Price, ticketType.ValidityDuration, ticketType.IsDiscounted).
			Suffix("RETURNING id_ticket_type").
			RunWith(tx).QueryRow().Scan(&ticketType.ID)
	} else {
		_, err = sdb.Update("ticket_types").
			Set("name", ticketType.Name).
			Set("type", ticketType.Type).
			Set("price", ticketType.Price).
			Set("validity_duration", ticketType.ValidityDuration).
			Set("is_discounted", ticketType.IsDiscounted).
			Where(sq.Eq{"id_ticket_type": ticketType.ID}).
			RunWith(tx).Exec()
	}
	if err != nil {
		return errors.New("AddTicketType: " + err.Error())
	}
	return tx.Commit()
}

// Delete deletes the ticket type
func (ticketType *TicketType) Delete(node sqalx.Node) error {
	tx, err := node.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = sdb.Delete("ticket_types").
		Where(sq.Eq{"id_ticket_type": ticketType.ID}).RunWith(tx).Exec()
	if err != nil {
		return fmt.Errorf("RemoveTicketType: %s", err)
	}
	return tx.Commit()
}
