package sqlengine

import (
	"context"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"

	"github.com/AntonStoeckl/locallibrary-go/catalog"
	"github.com/AntonStoeckl/locallibrary-go/catalog/sqlengine/internal/adapters"
)

const (
	operationCreateUser      = "create_user"
	operationDeleteUser      = "delete_user"
	operationUserByID        = "user_by_id"
	operationUserByUsername  = "user_by_username"
	operationUsersByIDs      = "users_by_ids"
	operationGrantPermission = "grant_permission"
)

func scanUser(rows adapters.DBRows) (catalog.User, error) {
	var rawID string
	var user catalog.User

	if err := rows.Scan(&rawID, &user.Username, &user.PasswordHash, &user.FirstName, &user.LastName, &user.IsSuperuser); err != nil {
		return catalog.User{}, err
	}

	id, err := parseID(rawID)
	if err != nil {
		return catalog.User{}, err
	}

	user.ID = id

	return user, nil
}

func (s *Store) selectUsers() *goqu.SelectDataset {
	return s.dialect.
		From(s.table(tableUser)).
		Select(colID, colUsername, colPassword, colFirstName, colLastName, colSuperuser).
		Order(goqu.C(colUsername).Asc())
}

// queryUsers loads users together with their permissions.
func (s *Store) queryUsers(ctx context.Context, q adapters.Querier, ds *goqu.SelectDataset) ([]catalog.User, error) {
	users := make([]catalog.User, 0)

	err := s.query(ctx, q, ds, func(rows adapters.DBRows) error {
		user, scanErr := scanUser(rows)
		if scanErr != nil {
			return scanErr
		}

		users = append(users, user)

		return nil
	})
	if err != nil || len(users) == 0 {
		return users, err
	}

	ids := make([]uuid.UUID, 0, len(users))
	for _, user := range users {
		ids = append(ids, user.ID)
	}

	permissions := make(map[uuid.UUID][]catalog.Permission, len(users))
	permQuery := s.dialect.
		From(s.table(tableUserPermission)).
		Select(colUserID, colCodename).
		Where(goqu.C(colUserID).In(idValues(ids))).
		Order(goqu.C(colCodename).Asc())

	err = s.query(ctx, q, permQuery, func(rows adapters.DBRows) error {
		var rawUserID, codename string
		if scanErr := rows.Scan(&rawUserID, &codename); scanErr != nil {
			return scanErr
		}

		userID, parseErr := parseID(rawUserID)
		if parseErr != nil {
			return parseErr
		}

		permissions[userID] = append(permissions[userID], catalog.Permission(codename))

		return nil
	})

	for i := range users {
		users[i].Permissions = permissions[users[i].ID]
	}

	return users, err
}

func (s *Store) insertPermission(ctx context.Context, tx adapters.Querier, userID uuid.UUID, perm catalog.Permission) error {
	insert := s.dialect.Insert(s.table(tableUserPermission)).Rows(goqu.Record{
		colUserID:   idValue(userID),
		colCodename: string(perm),
	})

	_, err := s.exec(ctx, tx, insert)

	return err
}

// CreateUser inserts a new user with their permissions.
// It fails with catalog.ErrDuplicateUsername when the username is taken.
func (s *Store) CreateUser(ctx context.Context, user catalog.User) error {
	return s.observe(ctx, operationCreateUser, func(ctx context.Context) error {
		return s.inTx(ctx, func(tx adapters.Querier) error {
			existing, err := s.count(ctx, tx, s.dialect.
				From(s.table(tableUser)).
				Select(goqu.COUNT(goqu.Star())).
				Where(goqu.C(colUsername).Eq(user.Username)))
			if err != nil {
				return err
			}

			if existing > 0 {
				return catalog.ErrDuplicateUsername
			}

			insert := s.dialect.Insert(s.table(tableUser)).Rows(goqu.Record{
				colID:        idValue(user.ID),
				colUsername:  user.Username,
				colPassword:  user.PasswordHash,
				colFirstName: user.FirstName,
				colLastName:  user.LastName,
				colSuperuser: user.IsSuperuser,
			})

			if _, err = s.exec(ctx, tx, insert); err != nil {
				return err
			}

			for _, perm := range user.Permissions {
				if err = s.insertPermission(ctx, tx, user.ID, perm); err != nil {
					return err
				}
			}

			return nil
		})
	})
}

// DeleteUser deletes a user, their permissions and sessions. Borrowed copies keep a null borrower.
func (s *Store) DeleteUser(ctx context.Context, id uuid.UUID) error {
	return s.observe(ctx, operationDeleteUser, func(ctx context.Context) error {
		return s.inTx(ctx, func(tx adapters.Querier) error {
			detach := s.dialect.
				Update(s.table(tableBookInstance)).
				Set(goqu.Record{colBorrowerID: nil}).
				Where(goqu.C(colBorrowerID).Eq(idValue(id)))

			if _, err := s.exec(ctx, tx, detach); err != nil {
				return err
			}

			for _, table := range []string{tableUserPermission, tableSession} {
				if _, err := s.exec(ctx, tx, s.dialect.Delete(s.table(table)).Where(goqu.C(colUserID).Eq(idValue(id)))); err != nil {
					return err
				}
			}

			return s.execExpectingRow(ctx, tx, s.dialect.Delete(s.table(tableUser)).Where(goqu.C(colID).Eq(idValue(id))))
		})
	})
}

// UserByID loads one user with their permissions.
func (s *Store) UserByID(ctx context.Context, id uuid.UUID) (catalog.User, error) {
	var user catalog.User

	err := s.observe(ctx, operationUserByID, func(ctx context.Context) error {
		var err error
		user, err = s.singleUser(ctx, s.db, s.selectUsers().Where(goqu.C(colID).Eq(idValue(id))))

		return err
	})

	return user, err
}

// UserByUsername loads one user with their permissions.
func (s *Store) UserByUsername(ctx context.Context, username string) (catalog.User, error) {
	var user catalog.User

	err := s.observe(ctx, operationUserByUsername, func(ctx context.Context) error {
		var err error
		user, err = s.singleUser(ctx, s.db, s.selectUsers().Where(goqu.C(colUsername).Eq(username)))

		return err
	})

	return user, err
}

func (s *Store) singleUser(ctx context.Context, q adapters.Querier, ds *goqu.SelectDataset) (catalog.User, error) {
	users, err := s.queryUsers(ctx, q, ds)
	if err != nil {
		return catalog.User{}, err
	}

	if len(users) == 0 {
		return catalog.User{}, catalog.ErrNotFound
	}

	return users[0], nil
}

// UsersByIDs loads the given users keyed by ID. Unknown IDs are skipped.
func (s *Store) UsersByIDs(ctx context.Context, ids ...uuid.UUID) (map[uuid.UUID]catalog.User, error) {
	result := make(map[uuid.UUID]catalog.User, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	err := s.observe(ctx, operationUsersByIDs, func(ctx context.Context) error {
		users, err := s.queryUsers(ctx, s.db, s.selectUsers().Where(goqu.C(colID).In(idValues(ids))))
		for _, user := range users {
			result[user.ID] = user
		}

		return err
	})

	return result, err
}

// GrantPermission grants perm to a user. Granting a permission twice is a no-op.
func (s *Store) GrantPermission(ctx context.Context, userID uuid.UUID, perm catalog.Permission) error {
	return s.observe(ctx, operationGrantPermission, func(ctx context.Context) error {
		return s.inTx(ctx, func(tx adapters.Querier) error {
			user, err := s.singleUser(ctx, tx, s.selectUsers().Where(goqu.C(colID).Eq(idValue(userID))))
			if err != nil {
				return err
			}

			for _, granted := range user.Permissions {
				if granted == perm {
					return nil
				}
			}

			return s.insertPermission(ctx, tx, userID, perm)
		})
	})
}
