package dataobjects

import (
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/gbl08ma/sqalx"
)

// Ticket is a fare bought by a passenger, backed by a purchase record
type Ticket struct {
	ID         int
	Passenger  *Passenger
	Purchase   *Purchase
	TicketType *TicketType
}

// GetTickets returns a slice with all registered tickets
func GetTickets(node sqalx.Node) ([]*Ticket, error) {
	return getTicketsWithSelect(node, sdb.Select())
}

func getTicketsWithSelect(node sqalx.Node, sbuilder sq.SelectBuilder) ([]*Ticket, error) {
	tickets := []*Ticket{}

	tx, err := node.Beginx()
	if err != nil {
		return tickets, err
	}
	defer tx.Commit() // read-only tx

	rows, err := sbuilder.Columns("id_ticket", "fk_passenger", "fk_purchase", "fk_ticket_type").
		From("tickets").
		RunWith(tx).Query()
	if err != nil {
		return tickets, fmt.Errorf("getTicketsWithSelect: %s", err)
	}
	defer rows.Close()

	var passengerIDs, purchaseIDs, ticketTypeIDs []int
	for rows.Next() {
		var ticket Ticket
		var passengerID, purchaseID, ticketTypeID int
		err := rows.Scan(
			&ticket.ID,
			&passengerID,
			&purchaseID,
			&ticketTypeID)
		if err != nil {
			return tickets, fmt.Errorf("getTicketsWithSelect: %s", err)
		}
		tickets = append(tickets, &ticket)
		passengerIDs = append(passengerIDs, passengerID)
		purchaseIDs = append(purchaseIDs, purchaseID)
		ticketTypeIDs = append(ticketTypeIDs, ticketTypeID)
	}
	if err := rows.Err(); err != nil {
		return tickets, fmt.Errorf("getTicketsWithSelect: %s", err)
	}
	for i := range tickets {
		tickets[i].Passenger, err = GetPassenger(tx, passengerIDs[i])
		if err != nil {
			return tickets, fmt.Errorf("getTicketsWithSelect: %s", err)
		}
		tickets[i].Purchase, err = GetPurchase(tx, purchaseIDs[i])
		if err != nil {
			return tickets, fmt.Errorf("getTicketsWithSelect: %s", err)
		}
		tickets[i].TicketType, err = GetTicketType(tx, ticketTypeIDs[i])
		if err != nil {
			return tickets, fmt.Errorf("getTicketsWithSelect: %s", err)
		}
	}
	return tickets, nil
}

// GetTicket returns the Ticket with the given ID
func GetTicket(node sqalx.Node, id int) (*Ticket, error) {
	s := sdb.Select().
		Where(sq.Eq{"id_ticket": id})
	tickets, err := getTicketsWithSelect(node, s)
	if err != nil {
		return nil, err
	}
	if len(tickets) == 0 {
		return nil, errors.New("Ticket not found")
	}
	return tickets[0], nil
}

// Update adds or updates the ticket
func (ticket *Ticket) Update(node sqalx.Node) error {
	tx, err := node.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if ticket.ID == 0 {
		err = sdb.Insert("tickets").
			Columns("fk_passenger", "fk_purchase", "fk_ticket_type").
			Values(ticket.Passenger.ID, ticket.Purchase.ID, ticket.TicketType.ID).
			Suffix("RETURNING id_ticket").
			RunWith(tx).QueryRow().Scan(&ticket.ID)
	} else {
		_, err = sdb.Update("tickets").
			Set("fk_passenger", ticket.Passenger.ID).
			Set("fk_purchase", ticket.Purchase.ID).
			Set("fk_ticket_type", ticket.TicketType.ID).
			Where(sq.Eq{"id_ticket": ticket.ID}).
			RunWith(tx).Exec()
	}
	if err != nil {
		return errors.New("AddTicket: " + err.Error())
	}
	return tx.Commit()
}

// Delete deletes the ticket
func (ticket *Ticket) Delete(node sqalx.Node) error {
	tx, err := node.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = sdb.Delete("tickets").
		Where(sq.Eq{"id_ticket": ticket.ID}).RunWith(tx).Exec()
	if err != nil {
		return fmt.Errorf("RemoveTicket: %s", err)
	}
	return tx.Commit()
}
