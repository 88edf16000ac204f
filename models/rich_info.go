// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Teamgrid Authors

package models

// RichField is a single user-authored profile field: a named free-form
// value such as {"department": "design"} or {"title": "lead"}.
// Name is the unique key within one user's field list.
type RichField struct {
	// Name is the field key. Uniqueness is case-sensitive exact match.
	Name string `json:"name"`

	// Value is the field content. Fields submitted with an empty value are
	// dropped during normalization and never stored.
	Value string `json:"value"`
}

// Size returns the serialized size of the field in bytes: the byte length
// of Name plus the byte length of Value. This is the metric the size
// budget is enforced against.
func (f RichField) Size() int {
	return len(f.Name) + len(f.Value)
}

// RichInfo is the ordered sequence of rich profile fields scoped to one
// user. The zero value (nil Fields) and an empty list are equivalent on
// the wire: a user who never wrote rich info reads back an empty list,
// never an absence error.
type RichInfo struct {
	// UserID is the owner of the field set.
	UserID int64 `json:"user_id,omitempty"`

	// Fields is ordered as submitted by the owner. All names are unique.
	Fields []RichField `json:"fields"`
}

// Size returns the total serialized size of all fields in bytes.
func (ri RichInfo) Size() int {
	total := 0
	for _, f := range ri.Fields {
		total += f.Size()
	}
	return total
}

// TableName returns the name of the database table
// associated with the RichInfo model.
func (ri RichInfo) TableName() string {
	return "rich_info_fields"
}
