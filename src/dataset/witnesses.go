package dataset

// WinnerProof is a row of the winner proof table.
type WinnerProof struct {
	Block        int    `json:"block"`
	Validator    string `json:"selected_validator"`
	WitnessValid bool   `json:"witness_valid"`
}

// LoserProof is a row of the loser proof table.
type LoserProof struct {
	Validator        string  `json:"validator"`
	StakePercent     float64 `json:"stake_percent"`
	ExpectedWins     float64 `json:"expected_wins"`
	ActualWins       float64 `json:"actual_wins"`
	FairnessVerified bool    `json:"fairness_verified"`
}

// PublicVerifier is a row of the public verification table.
type PublicVerifier struct {
	Verifier     string `json:"verifier"`
	HasSecretKey bool   `json:"has_secret_key"`
	CanVerify    bool   `json:"can_verify"`
}

// WinnerProofs ...
func WinnerProofs() []WinnerProof {
	return []WinnerProof{
		{1000, "A", true},
		{1001, "C", true},
		{1002, "B", true},
		{1003, "A", true},
		{1004, "D", true},
	}
}

// LoserProofs ...
func LoserProofs() []LoserProof {
	return []LoserProof{
		{"B", 20, 2, 2, true},
		{"D", 15, 1.5, 2, true},
		{"A", 25, 2.5, 2, true},
		{"C", 30, 3, 3, true},
		{"E", 10, 1, 1, true},
	}
}

// PublicVerifiers ...
func PublicVerifiers() []PublicVerifier {
	verifiers := make([]PublicVerifier, 5)
	for i := range verifiers {
		verifiers[i] = PublicVerifier{
			Verifier:  "User " + string(rune('1'+i)),
			CanVerify: true,
		}
	}
	return verifiers
}
