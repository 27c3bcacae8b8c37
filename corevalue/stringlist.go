package corevalue

import "bytes"

// StringList is a list of String values with the join/split/dup helpers
// string-list consumers (path splitting, option-value lists) need.
type StringList struct {
	list *List[String]
}

// NewStringList creates an empty string list.
func NewStringList(alloc Allocator) *StringList {
	return &StringList{list: NewList[String](alloc)}
}

// Split divides s on every occurrence of sep into a new StringList.
func Split(s String, sep String, alloc Allocator) *StringList {
	sl := NewStringList(alloc)
	for _, part := range bytes.Split(s.Bytes(), sep.Bytes()) {
		sl.Append(NewStringBytes(part))
	}
	return sl
}

// Append adds s to the end of the list.
func (sl *StringList) Append(s String) { sl.list.Append(s) }

// Len returns the number of strings in the list.
func (sl *StringList) Len() int { return sl.list.Len() }

// Get returns the string at index i.
func (sl *StringList) Get(i int) String { return sl.list.Get(i) }

// Join concatenates every string in the list with sep between entries.
func (sl *StringList) Join(sep String) String {
	var buf bytes.Buffer
	for i := 0; i < sl.list.Len(); i++ {
		if i > 0 {
			buf.Write(sep.Bytes())
		}
		buf.Write(sl.list.Get(i).Bytes())
	}
	return NewStringBytes(buf.Bytes())
}

// Dup returns an independent copy of the list, duplicating every element.
func (sl *StringList) Dup(alloc Allocator) *StringList {
	out := NewStringList(alloc)
	for i := 0; i < sl.list.Len(); i++ {
		out.Append(sl.list.Get(i).Dup())
	}
	return out
}
