package ast

// Strings is the ordered, duplicate-free table of literal and identifier
// text of a Program. Ids are assigned in first-seen order and never change.
type Strings struct {
	values []string
	ids    map[string]int
}

// NewStrings returns an empty table
func NewStrings() *Strings {
	return &Strings{ids: make(map[string]int)}
}

// Intern returns the id of s, appending it on first sight
func (t *Strings) Intern(s string) int {
	if id, ok := t.ids[s]; ok {
		return id
	}
	id := len(t.values)
	t.values = append(t.values, s)
	t.ids[s] = id
	return id
}

// Lookup returns the id of s without interning it
func (t *Strings) Lookup(s string) (int, bool) {
	id, ok := t.ids[s]
	return id, ok
}

// At returns the string with the given id
func (t *Strings) At(id int) string {
	return t.values[id]
}

func (t *Strings) Len() int {
	return len(t.values)
}

// Values returns a copy of the table in id order
func (t *Strings) Values() []string {
	return append([]string(nil), t.values...)
}
