/*
Package store persists word sources across runs in a bolt database.

User-added sources are kept whole (lines and enabled flag) in the "source"
bucket, in the order they were first saved. Sources loaded from elsewhere
(the built-in list, files, remotes) only have their enabled flag remembered,
in the "state" bucket.
*/
package store

import (
	"reflect"
	"strings"

	"github.com/boltdb/bolt"
)

type DBFunc func(*Tx) error

// buckets lists every bucket with a Tx accessor.
func buckets() []string {
	bucketList := []string{}
	t := reflect.TypeOf(&Tx{})
	for i := 0; i < t.NumMethod(); i++ {
		name := t.Method(i).Name
		if !strings.HasSuffix(name, "Bucket") {
			continue
		}
		switch bucket := strings.ToLower(strings.TrimSuffix(name, "Bucket")); bucket {
		case "", "create", "delete":
		default:
			bucketList = append(bucketList, bucket)
		}
	}
	return bucketList
}

// Open opens (or creates) the database at path and makes sure every bucket exists.
func Open(path string) (*DB, error) {
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, err
	}

	store := &DB{db}
	err = store.Update(func(tx *Tx) error {
		for _, bucket := range buckets() {
			if _, err := tx.CreateBucketIfNotExists([]byte(bucket)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

type DB struct {
	*bolt.DB
}

func (db *DB) Update(f DBFunc) error {
	return db.DB.Update(func(tx *bolt.Tx) error { return f(&Tx{tx}) })
}

func (db *DB) View(f DBFunc) error {
	return db.DB.View(func(tx *bolt.Tx) error { return f(&Tx{tx}) })
}

type Tx struct {
	*bolt.Tx
}

func (tx *Tx) SourceBucket() *bolt.Bucket { return tx.Bucket([]byte("source")) }
func (tx *Tx) StateBucket() *bolt.Bucket  { return tx.Bucket([]byte("state")) }
