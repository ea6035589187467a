package domain

import (
	"encoding/json"
	"time"
)

// Document is one row of the generic (collection, id) store. The collection
// name is caller-supplied and unvalidated; Data is opaque to the store and
// returned to clients verbatim.
type Document struct {
	Collection string
	ID         string
	Data       json.RawMessage
	CreatedAt  int64 // Unix milliseconds
}

// NowMillis returns the current time as Unix milliseconds, the timestamp
// resolution used for created_at throughout the store.
func NowMillis() int64 {
	return time.Now().UnixMilli()
}

// Flatten merges the document id into its payload, producing the
// {id, ...data} shape the HTTP API responds with. An "id" key inside Data is
// overwritten by the document id. Non-object payloads (arrays, scalars) are
// wrapped under a "value" key since they cannot carry an id of their own.
func (d Document) Flatten() (json.RawMessage, error) {
	obj := map[string]any{}
	if len(d.Data) > 0 {
		if err := json.Unmarshal(d.Data, &obj); err != nil {
			var v any
			if err2 := json.Unmarshal(d.Data, &v); err2 != nil {
				return nil, err2
			}
			obj = map[string]any{"value": v}
		}
	}
	obj["id"] = d.ID
	return json.Marshal(obj)
}
