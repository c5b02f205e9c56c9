package catalog

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FlexFloat decodes from either a JSON number or a numeric string. The admin
// form posts numeric inputs as strings, so both arrive on the wire.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	s := strings.Trim(string(data), `"`)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("not a number: %s", string(data))
	}
	*f = FlexFloat(v)
	return nil
}

// FlexInt decodes from either a JSON number or a numeric string.
type FlexInt int

func (i *FlexInt) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	s := strings.Trim(string(data), `"`)
	v, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("not an integer: %s", string(data))
	}
	*i = FlexInt(v)
	return nil
}

// YesNo decodes a flag sent either as a bool or as the strings "yes"/"no".
type YesNo string

func (y *YesNo) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		if b {
			*y = "yes"
		} else {
			*y = "no"
		}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("not a flag: %s", string(data))
	}
	*y = YesNo(strings.ToLower(strings.TrimSpace(s)))
	return nil
}

// Valid reports whether the flag holds one of the two stored values.
func (y YesNo) Valid() bool {
	return y == "yes" || y == "no"
}

// ProductPayload is the wire shape for product create and partial update.
// Pointer fields distinguish "absent" from zero so Update can merge only
// what the caller supplied.
type ProductPayload struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Price       *FlexFloat `json:"price"`
	Discount    *FlexFloat `json:"discount"`
	Stock       *FlexInt   `json:"stock"`
	Category    *string    `json:"category"`
	Subcategory *string    `json:"subcategory"`
	Img         *[]string  `json:"img"`
	Arrival     *YesNo     `json:"arrival"`
}
