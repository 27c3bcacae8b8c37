package corevalue

// KVPair is one entry of a KV map, kept in insertion order.
type KVPair struct {
	Key   String
	Value any
}

// KV is an ordered-insertion key/value map: Put replaces an existing
// key's value in place (keeping its original position) or appends a new
// entry; PutList appends value to the slice stored at key, creating it on
// first use. Iteration is always in insertion order, the same ordering
// guarantee xgx-error's Ctx/With field accumulation relies on for
// reproducible log output.
type KV struct {
	pairs []KVPair
	index map[string]int
}

// NewKV creates an empty, ordered key/value map.
func NewKV() *KV {
	return &KV{index: make(map[string]int)}
}

// Put appends-or-replaces the value for key, preserving the position of
// an existing key.
func (kv *KV) Put(key String, value any) {
	if i, ok := kv.index[key.String()]; ok {
		kv.pairs[i].Value = value
		return
	}
	kv.index[key.String()] = len(kv.pairs)
	kv.pairs = append(kv.pairs, KVPair{Key: key, Value: value})
}

// PutList appends value to the []any stored at key, creating the list on
// first use (and replacing a non-list existing value with a fresh list
// containing just value).
func (kv *KV) PutList(key String, value any) {
	if i, ok := kv.index[key.String()]; ok {
		if existing, ok := kv.pairs[i].Value.([]any); ok {
			kv.pairs[i].Value = append(existing, value)
			return
		}
		kv.pairs[i].Value = []any{value}
		return
	}
	kv.Put(key, []any{value})
}

// Get returns the value stored at key and whether it was present.
func (kv *KV) Get(key String) (any, bool) {
	i, ok := kv.index[key.String()]
	if !ok {
		return nil, false
	}
	return kv.pairs[i].Value, true
}

// Len returns the number of distinct keys.
func (kv *KV) Len() int { return len(kv.pairs) }

// Pairs returns the entries in insertion order. Callers must not mutate
// the returned slice.
func (kv *KV) Pairs() []KVPair { return kv.pairs }
