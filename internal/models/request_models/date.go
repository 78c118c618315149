package request_models

import (
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar day on the wire, formatted as 2006-01-02.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		return nil
	}
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return err
	}
	d.Time = parsed
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}
