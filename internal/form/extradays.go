package form

import "strings"

// Entry is one row of the extra playable days list.
type Entry struct {
	Value   string
	Invalid bool
}

// ExtraDaysEditor manages the ordered list of one-off playable dates. The list
// never becomes empty. Every mutation re-derives validity and reports changes
// of the aggregate error flag to OnErrorsChange.
//
// ExtraDaysEditor is not safe for concurrent use; the controller serializes access.
type ExtraDaysEditor struct {
	entries []Entry
	valid   func(string) bool

	// OnErrorsChange is called whenever HasAnyError changes value.
	OnErrorsChange func(hasError bool)

	hasError bool
}

// NewExtraDaysEditor creates an editor holding a single empty entry.
func NewExtraDaysEditor(valid func(string) bool) *ExtraDaysEditor {
	return &ExtraDaysEditor{
		entries: []Entry{{}},
		valid:   valid,
	}
}

func (e *ExtraDaysEditor) check(value string) bool {
	v := strings.TrimSpace(value)
	return v != "" && !e.valid(v)
}

func (e *ExtraDaysEditor) notify() {
	hasError := false
	for _, entry := range e.entries {
		if entry.Invalid {
			hasError = true
			break
		}
	}
	if hasError == e.hasError {
		return
	}
	e.hasError = hasError
	if e.OnErrorsChange != nil {
		e.OnErrorsChange(hasError)
	}
}

// Entries returns a copy of the rows.
func (e *ExtraDaysEditor) Entries() []Entry {
	return append([]Entry(nil), e.entries...)
}

func (e *ExtraDaysEditor) Len() int {
	return len(e.entries)
}

// Reset replaces the list, revalidating every entry.
func (e *ExtraDaysEditor) Reset(values []string) {
	e.entries = e.entries[:0]
	for _, v := range values {
		e.entries = append(e.entries, Entry{Value: v, Invalid: e.check(v)})
	}
	if len(e.entries) == 0 {
		e.entries = append(e.entries, Entry{})
	}
	e.notify()
}

// Add appends an empty entry. It is refused while the last entry is blank.
func (e *ExtraDaysEditor) Add() bool {
	if strings.TrimSpace(e.entries[len(e.entries)-1].Value) == "" {
		return false
	}
	e.entries = append(e.entries, Entry{})
	e.notify()
	return true
}

// Remove deletes the entry at index. The sole remaining entry cannot be removed.
func (e *ExtraDaysEditor) Remove(index int) bool {
	if index < 0 || index >= len(e.entries) || len(e.entries) == 1 {
		return false
	}
	e.entries = append(e.entries[:index], e.entries[index+1:]...)
	e.notify()
	return true
}

// Update replaces the value at index and revalidates that entry only.
func (e *ExtraDaysEditor) Update(index int, value string) bool {
	if index < 0 || index >= len(e.entries) {
		return false
	}
	e.entries[index] = Entry{Value: value, Invalid: e.check(value)}
	e.notify()
	return true
}

// Revalidate re-runs the predicate over every entry. Dates can expire while
// the form is open, so this runs before each submit.
func (e *ExtraDaysEditor) Revalidate() {
	for i := range e.entries {
		e.entries[i].Invalid = e.check(e.entries[i].Value)
	}
	e.notify()
}

// HasAnyError reports whether any non-empty entry fails validation.
func (e *ExtraDaysEditor) HasAnyError() bool {
	return e.hasError
}

// Cleaned returns the trimmed, non-empty values in order.
func (e *ExtraDaysEditor) Cleaned() []string {
	out := make([]string, 0, len(e.entries))
	for _, entry := range e.entries {
		if v := strings.TrimSpace(entry.Value); v != "" {
			out = append(out, v)
		}
	}
	return out
}
