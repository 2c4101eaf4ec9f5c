package manager

import (
	"strings"

	"entrykeeper/internal/domain/entry"
)

// Field names one of the four draft fields.
type Field string

const (
	FieldName    Field = "name"
	FieldAddress Field = "address"
	FieldPIN     Field = "pin"
	FieldPhone   Field = "phone"
)

// Draft is the unsaved form state for creating or editing an entry.
// A draft either targets no entry (a create) or carries the id of the
// entry being edited; the target is explicit rather than inferred from
// a nullable id.
type Draft struct {
	Name    string
	Address string
	PIN     string
	Phone   string

	editID  string
	editing bool
}

// Set assigns one field. Unknown fields are ignored.
func (d *Draft) Set(field Field, value string) {
	switch field {
	case FieldName:
		d.Name = value
	case FieldAddress:
		d.Address = value
	case FieldPIN:
		d.PIN = value
	case FieldPhone:
		d.Phone = value
	}
}

// Fields returns the draft content as entry fields, exactly as entered.
func (d Draft) Fields() entry.Fields {
	return entry.Fields{
		Name:    d.Name,
		Address: d.Address,
		PIN:     d.PIN,
		Phone:   d.Phone,
	}
}

// Target reports the entry id being edited, if any.
func (d Draft) Target() (string, bool) {
	return d.editID, d.editing
}

// Submittable reports whether every field is non-empty after trimming
// surrounding whitespace.
func (d Draft) Submittable() bool {
	return strings.TrimSpace(d.Name) != "" &&
		strings.TrimSpace(d.Address) != "" &&
		strings.TrimSpace(d.PIN) != "" &&
		strings.TrimSpace(d.Phone) != ""
}

// Reset clears all fields and drops the edit target.
func (d *Draft) Reset() {
	*d = Draft{}
}

func (d *Draft) fill(e entry.Entry) {
	d.Name = e.Name
	d.Address = e.Address
	d.PIN = e.PIN
	d.Phone = e.Phone
	d.editID = e.ID
	d.editing = true
}
