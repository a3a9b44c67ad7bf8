package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"pokepc-dataset/core/utils"
)

// DexNum is a national dex number stored either as a JSON number (25) or as a
// zero-padded string ("0025"). The original representation is preserved.
type DexNum struct {
	raw      string
	isString bool
}

// NewDexNum creates a numeric dex number.
func NewDexNum(n int) DexNum {
	return DexNum{raw: strconv.Itoa(n)}
}

// ParseDexNum creates a string dex number.
func ParseDexNum(s string) DexNum {
	return DexNum{raw: s, isString: true}
}

// String returns the dex number as written in the document.
func (d DexNum) String() string {
	return d.raw
}

// IsString reports whether the document stored the dex number as a string.
func (d DexNum) IsString() bool {
	return d.isString
}

// Int returns the numeric value. Leading zeros are ignored; an unparsable value yields 0.
func (d DexNum) Int() int {
	return utils.ToInt(strings.TrimLeft(d.raw, "0"))
}

// Format left-pads the dex number with zeros to positions characters.
func (d DexNum) Format(positions int) string {
	if len(d.raw) >= positions {
		return d.raw
	}
	return strings.Repeat("0", positions-len(d.raw)) + d.raw
}

func (d DexNum) MarshalJSON() ([]byte, error) {
	if d.isString || d.raw == "" {
		return json.Marshal(d.raw)
	}
	return []byte(d.raw), nil
}

func (d *DexNum) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*d = DexNum{}
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*d = ParseDexNum(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("dexNum must be a number or string: %w", err)
	}
	i, err := n.Int64()
	if err != nil {
		return fmt.Errorf("dexNum must be an integer: %w", err)
	}
	*d = NewDexNum(int(i))
	return nil
}
