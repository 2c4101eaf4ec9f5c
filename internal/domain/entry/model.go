package entry

import (
	"strings"
	"time"
)

// Entry is a persisted contact entry. The id is assigned by the store on
// creation and never changes afterwards.
type Entry struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	PIN       string    `json:"pin"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Fields carries the four mutable attributes of an entry. Create and
// update both take a full set; partial field updates are not supported.
type Fields struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	PIN     string `json:"pin"`
	Phone   string `json:"phone"`
}

// Validate checks that every field is non-empty after trimming.
func (f Fields) Validate() error {
	if strings.TrimSpace(f.Name) == "" ||
		strings.TrimSpace(f.Address) == "" ||
		strings.TrimSpace(f.PIN) == "" ||
		strings.TrimSpace(f.Phone) == "" {
		return ErrInvalidFields
	}
	return nil
}
