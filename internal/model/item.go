package model

// Item represents a single item row persisted in the database. The ID is a
// UUID string assigned exactly once, at creation, and never reassigned.
// Price is stored and returned verbatim as a string; the service performs
// no numeric validation or arithmetic on it.
//
// Fields:
//
//	ID     – items.id (CHAR(36) primary key)
//	UserID – items.user_id
//	Name   – items.name
//	Price  – items.price
type Item struct {
	ID     string `json:"id"`      // items.id
	UserID string `json:"user_id"` // items.user_id
	Name   string `json:"name"`    // items.name
	Price  string `json:"price"`   // items.price
}

// ItemCreate is the request payload for creating an item. All three fields
// are required. Pointers are used so that a field absent from the request
// body can be told apart from a field explicitly set to the empty string.
type ItemCreate struct {
	UserID *string `json:"user_id"`
	Name   *string `json:"name"`
	Price  *string `json:"price"`
}

// Missing returns the names of required fields absent from the payload, in
// declaration order. An empty result means the payload is complete.
func (in ItemCreate) Missing() []string {
	var missing []string
	if in.UserID == nil {
		missing = append(missing, "user_id")
	}
	if in.Name == nil {
		missing = append(missing, "name")
	}
	if in.Price == nil {
		missing = append(missing, "price")
	}
	return missing
}

// Item converts a complete payload into an Item with no ID assigned yet.
// Callers must check Missing first; a nil field here would panic.
func (in ItemCreate) Item() Item {
	return Item{
		UserID: *in.UserID,
		Name:   *in.Name,
		Price:  *in.Price,
	}
}

// ItemUpdate is the request payload for PUT/PATCH. Every field is optional;
// a nil pointer means "leave the stored value unchanged" while a non-nil
// pointer means "set this field", even when it points at the empty string.
type ItemUpdate struct {
	UserID *string `json:"user_id"`
	Name   *string `json:"name"`
	Price  *string `json:"price"`
}

// IsEmpty reports whether the patch supplies no fields at all. Such a patch
// is rejected before any storage access.
func (p ItemUpdate) IsEmpty() bool {
	return p.UserID == nil && p.Name == nil && p.Price == nil
}

// Apply merges the supplied fields of the patch into it, leaving the other
// fields and the ID untouched.
func (p ItemUpdate) Apply(it *Item) {
	if p.UserID != nil {
		it.UserID = *p.UserID
	}
	if p.Name != nil {
		it.Name = *p.Name
	}
	if p.Price != nil {
		it.Price = *p.Price
	}
}
