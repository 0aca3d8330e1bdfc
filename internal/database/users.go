// Jobly - Job and Company Listing Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobly

package database

import (
	"context"
	"time"

	"github.com/tomtom215/jobly/internal/database/query"
	"github.com/tomtom215/jobly/internal/models"
)

const userColumns = `username, first_name AS "firstName", last_name AS "lastName", email, is_admin AS "isAdmin"`

var userAliases = query.Aliases{
	"firstName": "first_name",
	"lastName":  "last_name",
	"isAdmin":   "is_admin",
}

// UserStore reads and updates the users table, keyed by username.
type UserStore struct {
	store
}

// NewUserStore creates a UserStore.
func NewUserStore(exec Executor, timeout time.Duration) *UserStore {
	return &UserStore{store{exec: exec, table: "users", timeout: timeout}}
}

func scanUser(r Rows, u *models.User) error {
	return r.Scan(&u.Username, &u.FirstName, &u.LastName, &u.Email, &u.IsAdmin)
}

// FindAll returns every user ordered by username.
func (s *UserStore) FindAll(ctx context.Context) ([]models.User, error) {
	stmt := "SELECT " + userColumns + " FROM users ORDER BY username"

	users := []models.User{}
	_, err := s.run(ctx, "select", stmt, nil, func(r Rows) error {
		var u models.User
		if err := scanUser(r, &u); err != nil {
			return err
		}
		users = append(users, u)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return users, nil
}

// Get returns the user with the given username.
func (s *UserStore) Get(ctx context.Context, username string) (*models.User, error) {
	stmt := "SELECT " + userColumns + " FROM users WHERE username = $1"

	var u models.User
	n, err := s.run(ctx, "select", stmt, []interface{}{username}, func(r Rows) error { return scanUser(r, &u) })
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, s.notFound(ctx, "user", "username", username)
	}
	return &u, nil
}

// Update applies a partial update to the user and returns the updated row.
func (s *UserStore) Update(ctx context.Context, username string, fields query.FieldMap) (*models.User, error) {
	set, err := query.PartialUpdate(fields, userAliases)
	if err != nil {
		return nil, s.rejectBadInput(ctx, "update", err)
	}

	stmt := "UPDATE users SET " + set.Join(", ") +
		" WHERE username = " + query.Placeholder(set.Next()) +
		" RETURNING " + userColumns

	var u models.User
	n, err := s.run(ctx, "update", stmt, set.Args(username), func(r Rows) error { return scanUser(r, &u) })
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, s.notFound(ctx, "user", "username", username)
	}
	return &u, nil
}

// Remove deletes the user.
func (s *UserStore) Remove(ctx context.Context, username string) error {
	n, err := s.run(ctx, "delete", "DELETE FROM users WHERE username = $1 RETURNING username", []interface{}{username}, nil)
	if err != nil {
		return err
	}
	if n == 0 {
		return s.notFound(ctx, "user", "username", username)
	}
	return nil
}
