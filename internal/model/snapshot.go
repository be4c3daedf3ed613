package model

// Snapshot is the full persisted state in its backup form. The snapshot
// bridge must round-trip this losslessly.
type Snapshot struct {
	Transactions []Transaction      `json:"transactions"`
	Revenues     []Revenue          `json:"revenues"`
	Withdrawals  []Withdrawal       `json:"withdrawals"`
	ProLabore    ProLaboreSettings  `json:"proLabore"`
	Distribution DistributionConfig `json:"distribution"`
}
