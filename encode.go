package prospect

import (
	"encoding/json"
	"errors"
	"fmt"
)

// errFutureSnapshot reports a snapshot written by a newer schema version.
var errFutureSnapshot = errors.New("snapshot schema too new")

// This file contains code to serialize the client collection as a single
// snapshot. The whole collection is rewritten on every mutation, so the
// persisted value is always a serialization of exactly the in-memory list.

// snapshotVersion is the current snapshot schema version. The field did
// not exist in the first storage layout; it is the hook for future
// migrations.
const snapshotVersion = 1

// snapshot is the envelope persisted under the single storage key.
type snapshot struct {
	Version int      `json:"version"`
	Clients []Client `json:"clients"`
}

// encodeSnapshot serializes the client collection into the snapshot envelope.
func encodeSnapshot(clients []Client) ([]byte, error) {
	data, err := json.Marshal(snapshot{Version: snapshotVersion, Clients: clients})
	if err != nil {
		return nil, fmt.Errorf("persist error: cannot marshal snapshot: %w", err)
	}
	return data, nil
}

// decodeSnapshot parses a snapshot envelope back into a client collection.
//
// A snapshot written by a newer version of the tool is an error: silently
// recovering to an empty collection would clobber it on the next mutation.
func decodeSnapshot(data []byte) ([]Client, error) {
	var s snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("load error: cannot parse snapshot: %w", err)
	}
	if s.Version > snapshotVersion {
		return nil, fmt.Errorf("load error: snapshot version %d is newer than supported version %d: %w", s.Version, snapshotVersion, errFutureSnapshot)
	}
	return s.Clients, nil
}
