package auth

// Kind is the principal kind carried in every token. The three login
// categories are dispatched once at the middleware boundary instead of
// per-endpoint string comparisons.
type Kind string

const (
	KindEmployee Kind = "employee"
	KindCentre   Kind = "centre"
	KindAdmin    Kind = "admin"
)

// Valid reports whether k is one of the three known principal kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindEmployee, KindCentre, KindAdmin:
		return true
	}
	return false
}
