package domain

// PersonalBoard lists the orders owned by one actor.
type PersonalBoard struct {
	Owner string         `json:"owner"`
	Items []OrderSummary `json:"items"`
}

// BoardSet is one dispatcher board plus one board per technician that
// has at least one matching order.
type BoardSet struct {
	Dispatcher  PersonalBoard   `json:"dispatcher"`
	Technicians []PersonalBoard `json:"technicians"`
}
