package pg

import (
	"time"

	"github.com/uptrace/bun"
)

// EntryDao is a single key-value pair. The primary key is (namespace, key) and
// postgres orders bytea keys bytewise, which is the ordering Range exposes.
type EntryDao struct {
	bun.BaseModel `bun:"table:kv_entries,alias:kve"`

	Namespace string    `bun:"namespace,pk,type:varchar(64)"`
	Key       []byte    `bun:"key,pk,type:bytea"`
	Value     []byte    `bun:"value,type:bytea"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:current_timestamp"`
}
