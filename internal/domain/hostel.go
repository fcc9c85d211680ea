package domain

type Hostel struct {
	ID               string   `json:"id"`
	LandlordID       string   `json:"landlord_id"`
	Name             string   `json:"name"`
	Location         string   `json:"location"`
	PlotNumber       string   `json:"plot_number"`
	Description      string   `json:"description"`
	DistanceFromGate *float64 `json:"distance_from_gate,omitempty"`
	Images           []string `json:"images"`
	IsVerified       bool     `json:"is_verified"`
	CreatedAt        string   `json:"created_at"`
	UpdatedAt        string   `json:"updated_at"`
}

// Room belongs to exactly one hostel. IsVacant doubles as the
// reservation mutex: it is flipped to false in the same transaction
// that inserts a booking, and back to true on cancellation or
// landlord override.
type Room struct {
	ID            string   `json:"id"`
	HostelID      string   `json:"hostel_id"`
	RoomNumber    string   `json:"room_number"`
	PricePerMonth int64    `json:"price_per_month"`
	DepositAmount int64    `json:"deposit_amount"`
	IsVacant      bool     `json:"is_vacant"`
	Images        []string `json:"images"`
	Description   string   `json:"description"`
	CreatedAt     string   `json:"created_at"`
	UpdatedAt     string   `json:"updated_at"`
}

// VerifiedPlot is a row in the plot verification registry consulted
// during hostel listing creation.
type VerifiedPlot struct {
	ID         string `json:"id"`
	PlotNumber string `json:"plot_number"`
	Location   string `json:"location"`
	OwnerName  string `json:"owner_name"`
	VerifiedAt string `json:"verified_at"`
}
