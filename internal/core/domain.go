package core

import "encoding/json"

type (
	// Category is a named bucket a transaction note can be classified
	// into. Identifiers are caller-assigned, not generated; uniqueness of
	// ID and Name within a category set is assumed but not enforced.
	Category struct {
		ID          int64  `json:"id"`
		Name        string `json:"name"`
		Description string `json:"description"`
	}

	// ProcessedTransaction is the record produced for a single note: the
	// resolved date, the recognized category id, and the note verbatim.
	// It is constructed fresh per call and never mutated afterwards.
	ProcessedTransaction struct {
		Date       string `json:"date"` // YYYY-MM-DD
		CategoryID int64  `json:"category_id"`
		Note       string `json:"note"`
	}
)

// ToJSON converts the transaction to JSON bytes
func (t ProcessedTransaction) ToJSON() ([]byte, error) {
	return json.Marshal(t)
}

// ProcessedTransactionFromJSON creates a transaction from JSON bytes
func ProcessedTransactionFromJSON(data []byte) (ProcessedTransaction, error) {
	var t ProcessedTransaction
	if err := json.Unmarshal(data, &t); err != nil {
		return ProcessedTransaction{}, err
	}
	return t, nil
}
