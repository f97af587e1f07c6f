package dataobjects

import (
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/gbl08ma/sqalx"
)

// Editor is the editor role of a user account
type Editor struct {
	ID   int
	User *AppUser
}

// GetEditors returns a slice with all registered editors
func GetEditors(node sqalx.Node) ([]*Editor, error) {
	return getEditorsWithSelect(node, sdb.Select())
}

func getEditorsWithSelect(node sqalx.Node, sbuilder sq.SelectBuilder) ([]*Editor, error) {
	editors := []*Editor{}

	tx, err := node.Beginx()
	if err != nil {
		return editors, err
	}
	defer tx.Commit() // read-only tx

	rows, err := sbuilder.Columns("id_editor", "fk_user").
		From("editors").
		RunWith(tx).Query()
	if err != nil {
		return editors, fmt.Errorf("getEditorsWithSelect: %s", err)
	}
	defer rows.Close()

	var userIDs []int
	for rows.Next() {
		var editor Editor
		var userID int
		err := rows.Scan(
			&editor.ID,
			&userID)
		if err != nil {
			return editors, fmt.Errorf("getEditorsWithSelect: %s", err)
		}
		editors = append(editors, &editor)
		userIDs = append(userIDs, userID)
	}
	if err := rows.Err(); err != nil {
		return editors, fmt.Errorf("getEditorsWithSelect: %s", err)
	}
	for i := range editors {
		editors[i].User, err = GetAppUser(tx, userIDs[i])
		if err != nil {
			return editors, fmt.Errorf("getEditorsWithSelect: %s", err)
		}
	}
	return editors, nil
}

// GetEditor returns the Editor with the given ID
func GetEditor(node sqalx.Node, id int) (*Editor, error) {
	s := sdb.Select().
		Where(sq.Eq{"id_editor": id})
	editors, err := getEditorsWithSelect(node, s)
	if err != nil {
		return nil, err
	}
	if len(editors) == 0 {
		return nil, errors.New("Editor not found")
	}
	return editors[0], nil
}

// Update adds or updates the editor
func (editor *Editor) Update(node sqalx.Node) error {
	tx, err := node.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if editor.ID == 0 {
		err = sdb.Insert("editors").
			Columns("fk_user").
			Values(editor.User.ID).
			Suffix("RETURNING id_editor").
			RunWith(tx).QueryRow().Scan(&editor.ID)
	} else {
		_, err = sdb.Update("editors").
			Set("fk_user", editor.User.ID).
			Where(sq.Eq{"id_editor": editor.ID}).
			RunWith(tx).Exec()
	}
	if err != nil {
		return errors.New("AddEditor: " + err.Error())
	}
	return tx.Commit()
}

// Delete deletes the editor
func (editor *Editor) Delete(node sqalx.Node) error {
	tx, err := node.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = sdb.Delete("editors").
		Where(sq.Eq{"id_editor": editor.ID}).RunWith(tx).Exec()
	if err != nil {
		return fmt.Errorf("RemoveEditor: %s", err)
	}
	return tx.Commit()
}
