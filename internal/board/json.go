package board

import (
	"encoding/json"
	"fmt"
)

// MarshalJSON encodes the board as an array of 9 strings: "X", "O" or "".
func (that Board) MarshalJSON() ([]byte, error) {
	return json.Marshal(that.Cells())
}

func (that *Board) UnmarshalJSON(data []byte) error {
	var cells [Size]Mark
	if err := json.Unmarshal(data, &cells); err != nil {
		return fmt.Errorf("failed to unmarshal board: %w", err)
	}

	parsed, err := FromCells(cells)
	if err != nil {
		return err
	}

	*that = parsed
	return nil
}
