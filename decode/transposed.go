package decode

import (
	"github.com/jksn-go/jksn/errs"
	"github.com/jksn-go/jksn/opcode"
	"github.com/jksn-go/jksn/value"
)

// handleTransposed decodes a family-0xA node: low nibble 0 is the
// Unspecified sentinel itself; any other value is a column count N,
// followed by N (column_key, column_values_array) pairs, pivoted back into
// row-major Maps (spec §4.3).
func (d *Decoder) handleTransposed(c *cursor, cfg *Options, low byte) (value.Value, error) {
	if low == opcode.TransposedUnspecified {
		return value.Unspecified(), nil
	}

	n, err := c.readCount(low, opcode.TransposedUint16, opcode.TransposedUint8, opcode.TransposedVarint)
	if err != nil {
		return value.Value{}, err
	}

	type column struct {
		key    value.Value
		values []value.Value
	}
	cols := make([]column, n)
	rowCount := 0
	for i := 0; i < n; i++ {
		key, err := d.decodeValue(c, cfg)
		if err != nil {
			return value.Value{}, err
		}
		colValue, err := d.decodeValue(c, cfg)
		if err != nil {
			return value.Value{}, err
		}
		if colValue.Kind() != value.KindArray {
			return value.Value{}, errs.NewDecodeError(errs.ErrColumnNotArray, colValue.Kind().String())
		}
		values := colValue.Array()
		cols[i] = column{key: key, values: values}
		if len(values) > rowCount {
			rowCount = len(values)
		}
	}

	rows := make([]value.Value, rowCount)
	rowEntries := make([][]value.MapEntry, rowCount)
	for _, col := range cols {
		for ri, cell := range col.values {
			if cell.Kind() == value.KindUnspecified {
				continue
			}
			rowEntries[ri] = append(rowEntries[ri], value.MapEntry{Key: col.key, Value: cell})
		}
	}
	for ri := range rows {
		rows[ri] = value.Map(rowEntries[ri])
	}

	return value.Array(rows), nil
}
