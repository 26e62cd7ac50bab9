package store

import (
	"database/sql"
	"fmt"

	"github.com/llehouerou/rolodex/internal/contacts"
	dbutil "github.com/llehouerou/rolodex/internal/db"
)

var _ contacts.Source = (*Store)(nil)

// Sections returns every section with its contacts, in list order.
func (s *Store) Sections() ([]contacts.Section, error) {
	rows, err := s.db.Query(`
		SELECT s.id, s.title, c.name, c.photo
		FROM sections s
		LEFT JOIN contacts c ON c.section_id = s.id
		ORDER BY s.position, c.position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sections []contacts.Section
	lastID := int64(-1)
	for rows.Next() {
		var (
			id    int64
			title string
			name  sql.NullString
			photo sql.NullString
		)
		if err := rows.Scan(&id, &title, &name, &photo); err != nil {
			return nil, err
		}
		if id != lastID {
			sections = append(sections, contacts.Section{Title: title, Data: []contacts.Item{}})
			lastID = id
		}
		if name.Valid {
			cur := &sections[len(sections)-1]
			cur.Data = append(cur.Data, contacts.Item{
				Name:  name.String,
				Photo: dbutil.NullStringValue(photo),
			})
		}
	}
	return sections, rows.Err()
}

// Empty reports whether the store holds no sections.
func (s *Store) Empty() (bool, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM sections`).Scan(&n); err != nil {
		return false, err
	}
	return n == 0, nil
}

// Replace validates sections and swaps them in for the stored ones in a
// single transaction.
func (s *Store) Replace(sections []contacts.Section) error {
	if err := contacts.Validate(sections); err != nil {
		return err
	}
	return dbutil.WithTx(s.db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`DELETE FROM contacts`); err != nil {
			return err
		}
		if _, err := tx.Exec(`DELETE FROM sections`); err != nil {
			return err
		}
		for i, sec := range sections {
			res, err := tx.Exec(`INSERT INTO sections (position, title) VALUES (?, ?)`, i, sec.Title)
			if err != nil {
				return fmt.Errorf("insert section %q: %w", sec.Title, err)
			}
			sectionID, err := res.LastInsertId()
			if err != nil {
				return err
			}
			for j, item := range sec.Data {
				_, err := tx.Exec(`
					INSERT INTO contacts (section_id, position, name, photo)
					VALUES (?, ?, ?, ?)
				`, sectionID, j, item.Name, dbutil.NullString(item.Photo))
				if err != nil {
					return fmt.Errorf("insert contact %q: %w", item.Name, err)
				}
			}
		}
		return nil
	})
}

// Seed fills an empty store with sections. It reports whether anything was
// written; a store that already has sections is left untouched.
func (s *Store) Seed(sections []contacts.Section) (bool, error) {
	empty, err := s.Empty()
	if err != nil {
		return false, err
	}
	if !empty {
		return false, nil
	}
	if err := s.Replace(sections); err != nil {
		return false, err
	}
	return true, nil
}
