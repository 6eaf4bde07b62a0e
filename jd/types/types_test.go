package types

import (
	"database/sql"
	"database/sql/driver"
	"encoding"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInterfaces(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	for _, value := range []any{Date{}, DateTime{}} {
		a.Implements((*Value)(nil), value)
		a.Implements((*json.Marshaler)(nil), value)
		a.Implements((*encoding.TextMarshaler)(nil), value)
		a.Implements((*driver.Valuer)(nil), value)
	}

	for _, value := range []any{new(Date), new(DateTime)} {
		a.Implements((*json.Unmarshaler)(nil), value)
		a.Implements((*encoding.TextUnmarshaler)(nil), value)
		a.Implements((*sql.Scanner)(nil), value)
	}
}
