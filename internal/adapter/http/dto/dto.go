package dto

// ImportAddressesRequest is the request body for adding addresses to the pool.
type ImportAddressesRequest struct {
	Addresses []string `json:"addresses" binding:"required,min=1,max=10000,dive,required,max=128"`
}

// ImportAddressesResponse reports how many submitted addresses were new.
type ImportAddressesResponse struct {
	Submitted int `json:"submitted"`
	Added     int `json:"added"`
}

// PoolStatsResponse is the response for pool statistics.
type PoolStatsResponse struct {
	PoolSize        int    `json:"pool_size"`
	AddressesPerDay int    `json:"addresses_per_day"`
	Network         string `json:"network"`
}

// DateParam binds the :date path segment.
type DateParam struct {
	Date string `uri:"date" binding:"required,iso_date"`
}

// WalletIDParam binds the :wallet_id path segment.
type WalletIDParam struct {
	WalletID string `uri:"wallet_id" binding:"required,wallet_id"`
}

// AssignmentResponse is the persisted address set for one day.
type AssignmentResponse struct {
	Date      string   `json:"date"`
	Addresses []string `json:"addresses"`
}

// EncounterResponse describes one wallet's encounter link. Dates are RFC 3339 in UTC.
type EncounterResponse struct {
	WalletID             string  `json:"wallet_id"`
	EncounterDate        *string `json:"encounter_date,omitempty"`
	FirstTransactionDate *string `json:"first_transaction_date,omitempty"`
}
