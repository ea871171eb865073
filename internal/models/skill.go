package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// SkillList holds a user's offered or wanted skill labels. Skills are opaque
// user-supplied strings with no canonical registry; the column stores them as
// a JSON array so they round-trip losslessly.
type SkillList []string

// Value implements driver.Valuer
func (s SkillList) Value() (driver.Value, error) {
	if s == nil {
		s = SkillList{}
	}
	return json.Marshal(s)
}

// Scan implements sql.Scanner
func (s *SkillList) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*s = SkillList{}
		return nil
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("unsupported skill list column type %T", value)
	}
}

// SkillSnapshot is the skill named on a swap request. It is a copied value,
// not a reference to the owner's profile, so later profile edits do not alter
// historical requests.
type SkillSnapshot struct {
	Name string `json:"name"`
}

// Value implements driver.Valuer
func (s SkillSnapshot) Value() (driver.Value, error) {
	return json.Marshal(s)
}

// Scan implements sql.Scanner
func (s *SkillSnapshot) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*s = SkillSnapshot{}
		return nil
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("unsupported skill snapshot column type %T", value)
	}
}
