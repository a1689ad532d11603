package endpoint

// Order is the sort direction accepted by mirror listings.
type Order string

const (
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

// Links is the cursor block of every mirror page.
type Links struct {
	Next string `json:"next"`
}

// HasNext reports whether another page exists.
func (l Links) HasNext() bool {
	return l.Next != ""
}

// Int64 returns a pointer to v, for optional filters where zero is a valid
// value.
func Int64(v int64) *int64 {
	return &v
}

// Bool returns a pointer to v.
func Bool(v bool) *bool {
	return &v
}
