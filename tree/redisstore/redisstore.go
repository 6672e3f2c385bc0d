/*
Package redisstore provides an implementation of tree.Store that uses a
redis server as backend, so a tree grown by one process can be loaded
and used to predict by others.
*/
package redisstore

import (
	"context"
	"fmt"

	"github.com/sapling-ml/sapling/tree"
	"github.com/sapling-ml/sapling/tree/json"
	redis "gopkg.in/redis.v5"
)

type redisStore struct {
	prefix string
	rc     *redis.Client
}

/*
New returns a tree.Store that uses the given redis client as a backend.
It uses the given prefix to namespace the keys used on the redis client
to keep the store's data: a tree saved under name is kept JSON-encoded
at the key prefix:tree:name.
*/
func New(prefix string, rc *redis.Client) tree.Store {
	return &redisStore{prefix: prefix, rc: rc}
}

func (rs *redisStore) Save(ctx context.Context, name string, t *tree.Tree) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.MarshalTree(t)
	if err != nil {
		return fmt.Errorf("saving tree %s: %v", name, err)
	}
	err = rs.rc.Set(rs.key(name), data, 0).Err()
	if err != nil {
		return fmt.Errorf("saving tree %s: %v", name, err)
	}
	return nil
}

func (rs *redisStore) Load(ctx context.Context, name string) (*tree.Tree, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := rs.rc.Get(rs.key(name)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading tree %s: %v", name, err)
	}
	t, err := json.UnmarshalTree(data)
	if err != nil {
		return nil, fmt.Errorf("loading tree %s: %v", name, err)
	}
	return t, nil
}

func (rs *redisStore) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := rs.rc.Del(rs.key(name)).Err()
	if err != nil {
		return fmt.Errorf("deleting tree %s: %v", name, err)
	}
	return nil
}

func (rs *redisStore) Close(ctx context.Context) error {
	return rs.rc.Close()
}

func (rs *redisStore) key(name string) string {
	return fmt.Sprintf("%s:tree:%s", rs.prefix, name)
}
