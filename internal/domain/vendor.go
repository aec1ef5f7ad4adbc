package domain

type Vendor struct {
	ID          int     `json:"id" yaml:"id"`
	Name        string  `json:"name" yaml:"name"`
	Location    string  `json:"location" yaml:"location"`
	Phone       string  `json:"phone" yaml:"phone"`
	Rating      float64 `json:"rating" yaml:"rating"`
	TotalOrders int     `json:"totalOrders" yaml:"total_orders"`
	Verified    bool    `json:"verified" yaml:"verified"`
}
