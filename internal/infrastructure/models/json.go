package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// mustJSON marshals v into a JSON column value. The inputs are in-memory
// structs, so a marshal failure is a programming error; fall back to an
// empty object rather than poisoning the row.
func mustJSON(v any) datatypes.JSON {
	b, err := json.Marshal(v)
	if err != nil {
		return datatypes.JSON([]byte("{}"))
	}
	return datatypes.JSON(b)
}

func fromJSON(data datatypes.JSON, v any) {
	if len(data) == 0 {
		return
	}
	_ = json.Unmarshal(data, v)
}
