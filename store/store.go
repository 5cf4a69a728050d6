// Package store connects to the data store and keeps settings that belong
// to the host rather than to the config file, such as the notification
// permission decision.
package store

import (
	"errors"
	"io/fs"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/pomo/internal/apperr"
	"github.com/ayoisaiah/pomo/internal/notify"
)

const (
	settingsBucket = "settings"
	permissionKey  = "notification_permission"
)

var (
	errPomoRunning = &apperr.Error{
		Message: "is pomo already running? Only one instance can be active at a time",
	}

	errInvalidPermission = &apperr.Error{
		Message: "invalid notification permission: %q",
	}
)

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
}

// Permission returns the stored notification permission. A missing entry is
// reported as notify.PermissionDefault.
func (c *Client) Permission() (notify.Permission, error) {
	p := notify.PermissionDefault

	err := c.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(settingsBucket)).Get([]byte(permissionKey))
		if len(v) == 0 {
			return nil
		}

		p = notify.Permission(v)

		return nil
	})
	if err != nil {
		return notify.PermissionDefault, err
	}

	if !p.Valid() {
		return notify.PermissionDefault, errInvalidPermission.Fmt(string(p))
	}

	return p, nil
}

// SetPermission stores the notification permission. Storing
// notify.PermissionDefault forgets the previous decision.
func (c *Client) SetPermission(p notify.Permission) error {
	if !p.Valid() {
		return errInvalidPermission.Fmt(string(p))
	}

	return c.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(settingsBucket))

		if p == notify.PermissionDefault {
			return b.Delete([]byte(permissionKey))
		}

		return b.Put([]byte(permissionKey), []byte(p))
	})
}

// openDB creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		pathToDB,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrDatabaseOpen) ||
			errors.Is(err, bolt.ErrTimeout) {
			return nil, errPomoRunning
		}

		return nil, err
	}

	return db, nil
}

// NewClient returns a wrapper to a BoltDB connection.
func NewClient(dbPath string) (*Client, error) {
	db, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	// Create the necessary buckets for storing data if they do not exist already
	err = db.Update(func(tx *bolt.Tx) error {
		_, err = tx.CreateBucketIfNotExists([]byte(settingsBucket))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Client{
		db,
	}, nil
}
