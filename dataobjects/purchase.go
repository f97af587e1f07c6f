package dataobjects

import (
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/gbl08ma/sqalx"
)

// Purchase is the payment record behind a ticket
type Purchase struct {
	ID     int
	Date   time.Time
	Amount float64
}

// GetPurchases returns a slice with all registered purchases
func GetPurchases(node sqalx.Node) ([]*Purchase, error) {
	return getPurchasesWithSelect(node, sdb.Select())
}

func getPurchasesWithSelect(node sqalx.Node, sbuilder sq.SelectBuilder) ([]*Purchase, error) {
	purchases := []*Purchase{}

	tx, err := node.Beginx()
	if err != nil {
		return purchases, err
	}
	defer tx.Commit() // read-only tx

	rows, err := sbuilder.Columns("id_purchase", "date", "amount").
		From("purchases").
		RunWith(tx).Query()
	if err != nil {
		return purchases, fmt.Errorf("getPurchasesWithSelect: %s", err)
	}
	defer rows.Close()

	for rows.Next() {
		var purchase Purchase
		err := rows.Scan(
			&purchase.ID,
			&purchase.Date,
			&purchase.Amount)
		if err != nil {
			return purchases, fmt.Errorf("getPurchasesWithSelect: %s", err)
		}
		purchases = append(purchases, &purchase)
	}
	if err := rows.Err(); err != nil {
		return purchases, fmt.Errorf("getPurchasesWithSelect: %s", err)
	}
	return purchases, nil
}

// GetPurchase returns the Purchase with the given ID
func GetPurchase(node sqalx.Node, id int) (*Purchase, error) {
	s := sdb.Select().
		Where(sq.Eq{"id_purchase": id})
	purchases, err := getPurchasesWithSelect(node, s)
	if err != nil {
		return nil, err
	}
	if len(purchases) == 0 {
		return nil, errors.New("Purchase not found")
	}
	return purchases[0], nil
}

// Update adds or updates the purchase
func (purchase *Purchase) Update(node sqalx.Node) error {
	tx, err := node.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if purchase.ID == 0 {
		err = sdb.Insert("purchases").
			Columns("date", "amount").
			Values(purchase.Date, purchase.Amount).
			Suffix("RETURNING id_purchase").
			RunWith(tx).QueryRow().Scan(&purchase.ID)
	} else {
		_, err = sdb.Update("purchases").
			Set("date", purchase.Date).
			Set("amount", purchase.Amount).
			Where(sq.Eq{"id_purchase": purchase.ID}).
			RunWith(tx).Exec()
	}
	if err != nil {
		return errors.New("AddPurchase: " + err.Error())
	}
	return tx.Commit()
}

// Delete deletes the purchase
func (purchase *Purchase) Delete(node sqalx.Node) error {
	tx, err := node.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = sdb.Delete("purchases").
		Where(sq.Eq{"id_purchase": purchase.ID}).RunWith(tx).Exec()
	if err != nil {
		return fmt.Errorf("RemovePurchase: %s", err)
	}
	return tx.Commit()
}
